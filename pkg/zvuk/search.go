package zvuk

import (
	"context"

	"github.com/google/uuid"

	"github.com/zvuklib/zvuk-go/pkg/models"
)

const (
	// DefaultSearchLimit is the per-category page size when the caller
	// passes a non-positive limit.
	DefaultSearchLimit = 20

	// DefaultQuickSearchLimit is the typeahead page size.
	DefaultQuickSearchLimit = 10
)

// SearchParams selects search categories and cursors. NewSearchParams
// returns the stock configuration: every category on, limit 20.
type SearchParams struct {
	Limit         int
	WithTracks    bool
	WithArtists   bool
	WithReleases  bool
	WithPlaylists bool
	WithPodcasts  bool
	WithEpisodes  bool
	WithProfiles  bool
	WithBooks     bool

	// Cursors resume a category from a previous result's PageInfo.Next.
	TrackCursor    string
	ArtistCursor   string
	ReleaseCursor  string
	PlaylistCursor string
}

// NewSearchParams returns params with every category enabled and the
// default limit.
func NewSearchParams() SearchParams {
	return SearchParams{
		Limit:         DefaultSearchLimit,
		WithTracks:    true,
		WithArtists:   true,
		WithReleases:  true,
		WithPlaylists: true,
		WithPodcasts:  true,
		WithEpisodes:  true,
		WithProfiles:  true,
		WithBooks:     true,
	}
}

// Search runs a multi-category search. Categories switched off in params
// are nil in the result.
func (c *Client) Search(ctx context.Context, query string, params SearchParams) (*models.SearchResult, error) {
	if params.Limit <= 0 {
		params.Limit = DefaultSearchLimit
	}
	args := map[string]interface{}{
		"query":         query,
		"limit":         params.Limit,
		"withTracks":    params.WithTracks,
		"withArtists":   params.WithArtists,
		"withReleases":  params.WithReleases,
		"withPlaylists": params.WithPlaylists,
		"withPodcasts":  params.WithPodcasts,
		"withEpisodes":  params.WithEpisodes,
		"withProfiles":  params.WithProfiles,
		"withBooks":     params.WithBooks,
	}
	if params.TrackCursor != "" {
		args["trackCursor"] = params.TrackCursor
	}
	if params.ArtistCursor != "" {
		args["artistCursor"] = params.ArtistCursor
	}
	if params.ReleaseCursor != "" {
		args["releaseCursor"] = params.ReleaseCursor
	}
	if params.PlaylistCursor != "" {
		args["playlistCursor"] = params.PlaylistCursor
	}

	result, err := call[models.SearchResult](ctx, c, "search", args)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// QuickSearch runs the typeahead search, returning a single mixed-type
// list in relevance order. A non-positive limit means 10; an empty
// sessionID starts a fresh search session.
func (c *Client) QuickSearch(ctx context.Context, query string, limit int, sessionID string) (*models.QuickSearchResult, error) {
	if limit <= 0 {
		limit = DefaultQuickSearchLimit
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	result, err := call[models.QuickSearchResult](ctx, c, "quickSearch", map[string]interface{}{
		"query":           query,
		"limit":           limit,
		"searchSessionId": sessionID,
	})
	if err != nil {
		return nil, err
	}
	if result.SearchSessionID == "" {
		result.SearchSessionID = sessionID
	}
	return &result, nil
}
