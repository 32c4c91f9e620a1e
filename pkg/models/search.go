package models

// PageInfo carries the pagination cursors for one search category. An
// empty Next means the category is exhausted; Cursor echoes the position
// this page was fetched from.
type PageInfo struct {
	Total  int    `json:"total,omitempty"`
	Prev   string `json:"prev,omitempty"`
	Next   string `json:"next,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

// Page is one category's slice of a search result, in server order.
type Page[T any] struct {
	Page  PageInfo `json:"page"`
	Score float64  `json:"score,omitempty"`
	Items []T      `json:"items"`
}

// SearchResult is the multi-category search response. Categories the
// caller did not request are nil, never empty pages.
type SearchResult struct {
	SearchID  string                `json:"search_id,omitempty"`
	Tracks    *Page[SimpleTrack]    `json:"tracks,omitempty"`
	Artists   *Page[SimpleArtist]   `json:"artists,omitempty"`
	Releases  *Page[SimpleRelease]  `json:"releases,omitempty"`
	Playlists *Page[SimplePlaylist] `json:"playlists,omitempty"`
	Podcasts  *Page[SimplePodcast]  `json:"podcasts,omitempty"`
	Episodes  *Page[SimpleEpisode]  `json:"episodes,omitempty"`
	Profiles  *Page[SimpleProfile]  `json:"profiles,omitempty"`
	Books     *Page[SimpleBook]     `json:"books,omitempty"`
}

// QuickSearchResult is the typeahead response: a single mixed-type list
// ordered by relevance.
type QuickSearchResult struct {
	SearchSessionID string `json:"search_session_id,omitempty"`
	Content         []Item `json:"content"`
}
