// Package sonarr provides a client for the Sonarr media-management REST API.
//
// The client issues plain JSON-over-HTTP requests against a single Sonarr
// instance, deserializes the responses into typed records, and keeps one
// piece of state: a cached aggregate of server status and disk usage,
// refreshed through Update.
//
// # Usage
//
// Create a client with the instance host and API key:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := sonarr.NewClient("sonarr.local", "your-api-key", logger,
//		sonarr.WithPort(8989),
//		sonarr.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//	app, err := client.Update(ctx, false)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(app.Info.Version)
//
// # Error handling
//
// Every failure mode is reported as a *Error: connection failures, non-2xx
// responses, malformed JSON and the empty system/status payload. Nothing is
// retried or swallowed; callers pick their own policy.
//
//	var apiErr *sonarr.Error
//	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
//		// bad API key
//	}
//
// # Concurrency
//
// The client holds no locks. The cached Application is only mutated by
// Update, so concurrent use of one Client from several goroutines requires
// external synchronization by the caller.
package sonarr
