package sonarr

import (
	"context"
	"encoding/json"
)

// API defines the interface for Sonarr operations.
type API interface {
	// Ping verifies the instance is reachable and the API key is accepted.
	Ping(ctx context.Context) error

	// Update refreshes the cached Application aggregate.
	Update(ctx context.Context, fullUpdate bool) (*Application, error)

	// Calendar retrieves upcoming episodes between the optional bounds.
	Calendar(ctx context.Context, start, end string) ([]Episode, error)

	// Commands queries all currently started commands.
	Commands(ctx context.Context) ([]CommandItem, error)

	// CommandStatus queries a previously started command.
	CommandStatus(ctx context.Context, commandID int64) (*CommandItem, error)

	// Queue retrieves all items currently downloading.
	Queue(ctx context.Context) ([]QueueItem, error)

	// Series retrieves every series in the library.
	Series(ctx context.Context) ([]SeriesItem, error)

	// Wanted retrieves one page of missing episodes.
	Wanted(ctx context.Context, opts *WantedOptions) (*WantedResults, error)

	// GetSeries looks up series matching a title.
	GetSeries(ctx context.Context, title string) ([]SeriesItem, error)

	// AddSeries adds a looked-up series to the collection.
	AddSeries(ctx context.Context, item SeriesItem) (json.RawMessage, error)

	// Close releases transport resources.
	Close() error
}
