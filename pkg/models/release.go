package models

// SimpleRelease is the brief release shape embedded in tracks and artist
// pages.
type SimpleRelease struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Image       *Image         `json:"image,omitempty"`
	Date        string         `json:"date,omitempty"`
	Type        ReleaseType    `json:"type,omitempty"`
	Artists     []SimpleArtist `json:"artists,omitempty"`
	ArtistNames []string       `json:"artist_names,omitempty"`
}

// Release is the full release shape with its track list.
type Release struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	SearchTitle        string              `json:"search_title,omitempty"`
	Type               ReleaseType         `json:"type,omitempty"`
	Date               string              `json:"date,omitempty"`
	Image              *Image              `json:"image,omitempty"`
	Genres             []Genre             `json:"genres,omitempty"`
	Label              *Label              `json:"label,omitempty"`
	Artists            []SimpleArtist      `json:"artists,omitempty"`
	ArtistNames        []string            `json:"artist_names,omitempty"`
	Tracks             []SimpleTrack       `json:"tracks,omitempty"`
	Related            []SimpleRelease     `json:"related,omitempty"`
	ArtistTemplate     string              `json:"artist_template,omitempty"`
	Availability       int                 `json:"availability,omitempty"`
	Explicit           bool                `json:"explicit,omitempty"`
	CollectionItemData *CollectionItemData `json:"collection_item_data,omitempty"`
}

// IsLiked reports whether the current user has liked the release.
func (r *Release) IsLiked() bool { return r.CollectionItemData.IsLiked() }
