package sonarr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Defaults for the wanted/missing page query.
const (
	DefaultWantedSortKey  = "airDateUtc"
	DefaultWantedPage     = 1
	DefaultWantedPageSize = 10
	DefaultWantedSortDir  = "desc"
)

// Ping verifies the instance is reachable and the API key is accepted.
func (c *Client) Ping(ctx context.Context) error {
	raw, err := c.request(ctx, http.MethodGet, "system/status", nil, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to Sonarr: %w", err)
	}
	if emptyPayload(raw) {
		return &Error{Message: "empty status payload", Err: ErrEmptyStatus}
	}
	return nil
}

// App returns the cached Application aggregate, or nil before the first
// successful Update.
func (c *Client) App() *Application {
	return c.app
}

// Update refreshes the cached Application. The first call, or any call with
// fullUpdate set, fetches system/status and diskspace and rebuilds the
// aggregate; later calls fetch diskspace only and merge it in, leaving Info
// untouched. A failed refresh leaves the previous cache intact.
func (c *Client) Update(ctx context.Context, fullUpdate bool) (*Application, error) {
	if c.app == nil || fullUpdate {
		raw, err := c.request(ctx, http.MethodGet, "system/status", nil, nil)
		if err != nil {
			return nil, err
		}
		if emptyPayload(raw) {
			return nil, &Error{Message: "empty status payload", Err: ErrEmptyStatus}
		}

		var status SystemStatus
		if err := decode(raw, &status); err != nil {
			return nil, err
		}

		diskspace, err := c.Diskspace(ctx)
		if err != nil {
			return nil, err
		}

		c.app = &Application{Info: status, DiskSpace: diskspace}
		c.logger.Debug().Str("version", status.Version).Msg("Refreshed Sonarr application info")
		return c.app, nil
	}

	diskspace, err := c.Diskspace(ctx)
	if err != nil {
		return nil, err
	}

	c.app.MergeDiskSpace(diskspace)
	return c.app, nil
}

// Diskspace retrieves disk usage for all configured volumes.
func (c *Client) Diskspace(ctx context.Context) ([]DiskSpace, error) {
	raw, err := c.request(ctx, http.MethodGet, "diskspace", nil, nil)
	if err != nil {
		return nil, err
	}

	var diskspace []DiskSpace
	if err := decode(raw, &diskspace); err != nil {
		return nil, err
	}
	return diskspace, nil
}

// Calendar retrieves upcoming episodes. Unsupplied bounds are omitted from
// the request entirely, in which case the server defaults to episodes airing
// today and tomorrow.
func (c *Client) Calendar(ctx context.Context, start, end string) ([]Episode, error) {
	params := url.Values{}
	if start != "" {
		params.Set("start", start)
	}
	if end != "" {
		params.Set("end", end)
	}

	raw, err := c.request(ctx, http.MethodGet, "calendar", params, nil)
	if err != nil {
		return nil, err
	}

	var episodes []Episode
	if err := decode(raw, &episodes); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(episodes)).Msg("Retrieved calendar episodes from Sonarr")
	return episodes, nil
}

// Commands queries the status of all currently started commands.
func (c *Client) Commands(ctx context.Context) ([]CommandItem, error) {
	raw, err := c.request(ctx, http.MethodGet, "command", nil, nil)
	if err != nil {
		return nil, err
	}

	var commands []CommandItem
	if err := decode(raw, &commands); err != nil {
		return nil, err
	}
	return commands, nil
}

// CommandStatus queries the status of a previously started command. An
// unknown id surfaces as the server's error response.
func (c *Client) CommandStatus(ctx context.Context, commandID int64) (*CommandItem, error) {
	raw, err := c.request(ctx, http.MethodGet, fmt.Sprintf("command/%d", commandID), nil, nil)
	if err != nil {
		return nil, err
	}

	var command CommandItem
	if err := decode(raw, &command); err != nil {
		return nil, err
	}
	return &command, nil
}

// Queue retrieves all items currently downloading.
func (c *Client) Queue(ctx context.Context) ([]QueueItem, error) {
	raw, err := c.request(ctx, http.MethodGet, "queue", nil, nil)
	if err != nil {
		return nil, err
	}

	var queue []QueueItem
	if err := decode(raw, &queue); err != nil {
		return nil, err
	}
	return queue, nil
}

// Series retrieves every series in the library.
func (c *Client) Series(ctx context.Context) ([]SeriesItem, error) {
	raw, err := c.request(ctx, http.MethodGet, "series", nil, nil)
	if err != nil {
		return nil, err
	}

	var series []SeriesItem
	if err := decode(raw, &series); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(series)).Msg("Retrieved series from Sonarr")
	return series, nil
}

// WantedOptions adjusts the wanted/missing page query. The zero value of
// each field falls back to its default; neither sort key nor direction is
// validated client-side, invalid values are rejected by the server.
type WantedOptions struct {
	SortKey  string
	Page     int
	PageSize int
	SortDir  string
}

// Wanted retrieves one page of missing episodes. A nil opts requests the
// first ten records sorted by air date, newest first.
func (c *Client) Wanted(ctx context.Context, opts *WantedOptions) (*WantedResults, error) {
	if opts == nil {
		opts = &WantedOptions{}
	}

	sortKey := opts.SortKey
	if sortKey == "" {
		sortKey = DefaultWantedSortKey
	}
	page := opts.Page
	if page == 0 {
		page = DefaultWantedPage
	}
	pageSize := opts.PageSize
	if pageSize == 0 {
		pageSize = DefaultWantedPageSize
	}
	sortDir := opts.SortDir
	if sortDir == "" {
		sortDir = DefaultWantedSortDir
	}

	params := url.Values{}
	params.Set("sortKey", sortKey)
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("sortDir", sortDir)

	raw, err := c.request(ctx, http.MethodGet, "wanted/missing", params, nil)
	if err != nil {
		return nil, err
	}

	var results WantedResults
	if err := decode(raw, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// GetSeries searches the indexers for series matching the given title and
// returns every match, not just the best one.
func (c *Client) GetSeries(ctx context.Context, title string) ([]SeriesItem, error) {
	params := url.Values{}
	params.Set("term", title)

	raw, err := c.request(ctx, http.MethodGet, "series/lookup", params, nil)
	if err != nil {
		return nil, err
	}

	var series []SeriesItem
	if err := decode(raw, &series); err != nil {
		return nil, err
	}

	c.logger.Debug().Str("term", title).Int("matches", len(series)).Msg("Looked up series on Sonarr")
	return series, nil
}

// AddSeries adds a previously looked-up series to the collection, monitored
// and searching for missing episodes. The call is not idempotent: adding the
// same series twice duplicates or errors, per server semantics. The raw
// server response is returned for inspection.
func (c *Client) AddSeries(ctx context.Context, item SeriesItem) (json.RawMessage, error) {
	payload := newAddSeriesRequest(item)

	raw, err := c.request(ctx, http.MethodPost, "series", nil, payload)
	if err != nil {
		return nil, err
	}

	c.logger.Info().Str("title", item.Title).Int64("tvdb_id", item.TvdbID).Msg("Added series to Sonarr")
	return raw, nil
}
