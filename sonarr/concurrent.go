package sonarr

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// commandPollConcurrency limits parallel command status requests.
const commandPollConcurrency = 5

// CommandStatuses fetches snapshots for several commands with bounded
// concurrency. Results are returned in the order of the given ids; the first
// failing request cancels the rest.
//
// This method touches no client state and is safe to call while other
// goroutines use the same Client, as long as nobody calls Update
// concurrently.
func (c *Client) CommandStatuses(ctx context.Context, commandIDs ...int64) ([]CommandItem, error) {
	if len(commandIDs) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(commandPollConcurrency)

	results := make([]CommandItem, len(commandIDs))
	for i, id := range commandIDs {
		i, id := i, id
		g.Go(func() error {
			command, err := c.CommandStatus(ctx, id)
			if err != nil {
				return err
			}
			results[i] = *command
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
