package models

// SimpleTrack is the brief track shape embedded in releases, playlists and
// search results.
type SimpleTrack struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Duration    int            `json:"duration,omitempty"`
	Position    int            `json:"position,omitempty"`
	Availability int           `json:"availability,omitempty"`
	Artists     []SimpleArtist `json:"artists,omitempty"`
	ArtistNames []string       `json:"artist_names,omitempty"`
	Release     *SimpleRelease `json:"release,omitempty"`
	Image       *Image         `json:"image,omitempty"`
	Explicit    bool           `json:"explicit,omitempty"`
	Lyrics      bool           `json:"lyrics,omitempty"`
	HasFLAC     bool           `json:"has_flac,omitempty"`
}

// DurationText renders the track duration as "M:SS".
func (t *SimpleTrack) DurationText() string { return DurationString(t.Duration) }

// Track is the full track shape.
type Track struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	SearchTitle        string              `json:"search_title,omitempty"`
	Duration           int                 `json:"duration,omitempty"`
	Position           int                 `json:"position,omitempty"`
	Availability       int                 `json:"availability,omitempty"`
	Artists            []SimpleArtist      `json:"artists,omitempty"`
	ArtistNames        []string            `json:"artist_names,omitempty"`
	Release            *SimpleRelease      `json:"release,omitempty"`
	ArtistTemplate     string              `json:"artist_template,omitempty"`
	Credits            string              `json:"credits,omitempty"`
	Genres             []Genre             `json:"genres,omitempty"`
	Image              *Image              `json:"image,omitempty"`
	Explicit           bool                `json:"explicit,omitempty"`
	Lyrics             bool                `json:"lyrics,omitempty"`
	HasFLAC            bool                `json:"has_flac,omitempty"`
	Condition          string              `json:"condition,omitempty"`
	CollectionItemData *CollectionItemData `json:"collection_item_data,omitempty"`
}

// DurationText renders the track duration as "M:SS".
func (t *Track) DurationText() string { return DurationString(t.Duration) }

// IsLiked reports whether the current user has liked the track.
func (t *Track) IsLiked() bool { return t.CollectionItemData.IsLiked() }
