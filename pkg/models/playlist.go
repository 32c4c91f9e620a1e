package models

// PlaylistItem is a reference to an item inside a playlist, as sent to
// playlist mutations.
type PlaylistItem struct {
	Type   ItemType `json:"type"`
	ItemID string   `json:"item_id"`
}

// TrackItems wraps track IDs as playlist items.
func TrackItems(trackIDs ...string) []PlaylistItem {
	items := make([]PlaylistItem, len(trackIDs))
	for i, id := range trackIDs {
		items[i] = PlaylistItem{Type: ItemTrack, ItemID: id}
	}
	return items
}

// SimplePlaylist is the brief playlist shape returned by listings and
// search.
type SimplePlaylist struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	IsPublic    bool   `json:"is_public,omitempty"`
	Duration    int    `json:"duration,omitempty"`
	Image       *Image `json:"image,omitempty"`
}

// Playlist is the full playlist shape with its track list.
type Playlist struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	SearchTitle string        `json:"search_title,omitempty"`
	Description string        `json:"description,omitempty"`
	UserID      string        `json:"user_id,omitempty"`
	IsPublic    bool          `json:"is_public,omitempty"`
	IsDeleted   bool          `json:"is_deleted,omitempty"`
	Shared      bool          `json:"shared,omitempty"`
	Branded     bool          `json:"branded,omitempty"`
	Duration    int           `json:"duration,omitempty"`
	Updated     int64         `json:"updated,omitempty"`
	Image       *Image        `json:"image,omitempty"`
	Tracks      []SimpleTrack `json:"tracks,omitempty"`
}

// SynthesisAuthor is one of the two profiles a blended playlist was built
// from, with the track IDs contributed by that profile.
type SynthesisAuthor struct {
	ID      string   `json:"id"`
	Name    string   `json:"name,omitempty"`
	Matches []string `json:"matches,omitempty"`
	Image   *Image   `json:"image,omitempty"`
}

// SynthesisPlaylist is a blended playlist generated from two users'
// collections.
type SynthesisPlaylist struct {
	ID      string            `json:"id"`
	Tracks  []SimpleTrack     `json:"tracks,omitempty"`
	Authors []SynthesisAuthor `json:"authors,omitempty"`
}
