package sonarr

import (
	"time"
)

// SystemStatus describes the Sonarr server as reported by system/status.
type SystemStatus struct {
	Version        string `json:"version"`
	BuildTime      string `json:"buildTime,omitempty"`
	Branch         string `json:"branch,omitempty"`
	Authentication string `json:"authentication,omitempty"`
	StartupPath    string `json:"startupPath,omitempty"`
	AppData        string `json:"appData,omitempty"`
	OsName         string `json:"osName,omitempty"`
	OsVersion      string `json:"osVersion,omitempty"`
	RuntimeVersion string `json:"runtimeVersion,omitempty"`
	RuntimeName    string `json:"runtimeName,omitempty"`
	SqliteVersion  string `json:"sqliteVersion,omitempty"`
	URLBase        string `json:"urlBase,omitempty"`
	IsAdmin        bool   `json:"isAdmin,omitempty"`
	IsDebug        bool   `json:"isDebug,omitempty"`
	IsProduction   bool   `json:"isProduction,omitempty"`
}

// DiskSpace is one volume usage entry from the diskspace endpoint.
type DiskSpace struct {
	Path       string `json:"path"`
	Label      string `json:"label,omitempty"`
	FreeSpace  int64  `json:"freeSpace"`
	TotalSpace int64  `json:"totalSpace"`
}

// Application aggregates server status and disk usage. It is the client's
// cached view of the remote instance; see Client.Update for its lifecycle.
type Application struct {
	Info      SystemStatus `json:"info"`
	DiskSpace []DiskSpace  `json:"diskspace"`
}

// MergeDiskSpace replaces the disk usage entries while leaving Info intact.
func (a *Application) MergeDiskSpace(diskspace []DiskSpace) {
	a.DiskSpace = diskspace
}

// Episode is a single episode as returned by the calendar and
// wanted/missing endpoints.
type Episode struct {
	ID            int64     `json:"id"`
	SeriesID      int64     `json:"seriesId"`
	EpisodeFileID int64     `json:"episodeFileId,omitempty"`
	SeasonNumber  int       `json:"seasonNumber"`
	EpisodeNumber int       `json:"episodeNumber"`
	Title         string    `json:"title"`
	AirDate       string    `json:"airDate,omitempty"`
	AirDateUTC    time.Time `json:"airDateUtc"`
	Overview      string    `json:"overview,omitempty"`
	HasFile       bool      `json:"hasFile"`
	Monitored     bool      `json:"monitored"`
	Series        *Series   `json:"series,omitempty"`
}

// CommandItem is a point-in-time snapshot of a server-side background
// command, not a live handle.
type CommandItem struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Message         string    `json:"message,omitempty"`
	Priority        string    `json:"priority,omitempty"`
	Status          string    `json:"status"`
	Trigger         string    `json:"trigger,omitempty"`
	Queued          time.Time `json:"queued"`
	Started         time.Time `json:"started"`
	StateChangeTime time.Time `json:"stateChangeTime"`
}

// QueueItem is one item currently downloading.
type QueueItem struct {
	ID                      int64     `json:"id"`
	Title                   string    `json:"title"`
	Status                  string    `json:"status"`
	TrackedDownloadStatus   string    `json:"trackedDownloadStatus,omitempty"`
	Protocol                string    `json:"protocol,omitempty"`
	DownloadID              string    `json:"downloadId,omitempty"`
	Size                    float64   `json:"size"`
	SizeLeft                float64   `json:"sizeleft"`
	TimeLeft                string    `json:"timeleft,omitempty"`
	EstimatedCompletionTime time.Time `json:"estimatedCompletionTime"`
	Series                  *Series   `json:"series,omitempty"`
	Episode                 *Episode  `json:"episode,omitempty"`
}

// Image is a cover art reference attached to a series.
type Image struct {
	CoverType string `json:"coverType"`
	URL       string `json:"url"`
}

// Series is the summary portion of a series record.
type Series struct {
	ID          int64   `json:"id,omitempty"`
	Title       string  `json:"title"`
	SortTitle   string  `json:"sortTitle,omitempty"`
	TitleSlug   string  `json:"titleSlug"`
	Status      string  `json:"status,omitempty"`
	Overview    string  `json:"overview,omitempty"`
	Network     string  `json:"network,omitempty"`
	Year        int     `json:"year,omitempty"`
	TvdbID      int64   `json:"tvdbId"`
	TvRageID    int64   `json:"tvRageId,omitempty"`
	ImdbID      string  `json:"imdbId,omitempty"`
	SeasonCount int     `json:"seasonCount,omitempty"`
	Images      []Image `json:"images,omitempty"`
}

// Poster returns the URL of the series poster image, or an empty string
// when the server supplied none.
func (s *Series) Poster() string {
	for _, image := range s.Images {
		if image.CoverType == "poster" {
			return image.URL
		}
	}
	return ""
}

// SeasonStatistics holds per-season episode counts.
type SeasonStatistics struct {
	EpisodeFileCount  int     `json:"episodeFileCount"`
	EpisodeCount      int     `json:"episodeCount"`
	TotalEpisodeCount int     `json:"totalEpisodeCount"`
	SizeOnDisk        int64   `json:"sizeOnDisk,omitempty"`
	PercentOfEpisodes float64 `json:"percentOfEpisodes,omitempty"`
}

// Season is one season entry of a series.
type Season struct {
	SeasonNumber int               `json:"seasonNumber"`
	Monitored    bool              `json:"monitored"`
	Statistics   *SeasonStatistics `json:"statistics,omitempty"`
}

// SeriesItem is a series together with its season list, as returned by the
// series and series/lookup endpoints. Seasons are parsed once and never
// mutated afterwards.
type SeriesItem struct {
	Series
	Seasons []Season `json:"seasons"`
}

// WantedResults is one page of missing-episode search results.
type WantedResults struct {
	Page          int       `json:"page"`
	PageSize      int       `json:"pageSize"`
	SortKey       string    `json:"sortKey"`
	SortDirection string    `json:"sortDirection"`
	TotalRecords  int       `json:"totalRecords"`
	Records       []Episode `json:"records"`
}

// Defaults applied when adding a series to the collection.
const (
	DefaultQualityProfileID = 1
	DefaultRootFolderPath   = "/tv"
)

// AddSeriesOptions controls server-side behavior after a series is created.
type AddSeriesOptions struct {
	SearchForMissingEpisodes bool `json:"searchForMissingEpisodes"`
}

// AddSeriesRequest is the creation payload for POST series.
type AddSeriesRequest struct {
	Title            string           `json:"title"`
	QualityProfileID int64            `json:"qualityProfileId"`
	TitleSlug        string           `json:"titleSlug"`
	Images           []Image          `json:"images"`
	TvdbID           int64            `json:"tvdbId"`
	Path             string           `json:"path"`
	Seasons          []Season         `json:"seasons"`
	RootFolderPath   string           `json:"rootFolderPath"`
	Monitored        bool             `json:"monitored"`
	AddOptions       AddSeriesOptions `json:"addOptions"`
}

// newAddSeriesRequest derives the creation payload from a previously
// looked-up series: monitored, searching for missing episodes, stored under
// the default root folder.
func newAddSeriesRequest(item SeriesItem) AddSeriesRequest {
	return AddSeriesRequest{
		Title:            item.Title,
		QualityProfileID: DefaultQualityProfileID,
		TitleSlug:        item.TitleSlug,
		Images:           []Image{{CoverType: "poster", URL: item.Poster()}},
		TvdbID:           item.TvdbID,
		Path:             DefaultRootFolderPath + "/" + item.Title,
		Seasons:          item.Seasons,
		RootFolderPath:   DefaultRootFolderPath,
		Monitored:        true,
		AddOptions: AddSeriesOptions{
			SearchForMissingEpisodes: true,
		},
	}
}
