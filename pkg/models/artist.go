package models

// SimpleArtist is the brief artist shape embedded in tracks, releases and
// search results.
type SimpleArtist struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image *Image `json:"image,omitempty"`
}

// Artist is the full artist shape. Releases, PopularTracks and
// RelatedArtists are populated only when the caller asked for them; a nil
// slice means "not requested", never "empty by default".
type Artist struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	SearchTitle        string              `json:"search_title,omitempty"`
	Description        string              `json:"description,omitempty"`
	HasPage            bool                `json:"has_page,omitempty"`
	Image              *Image              `json:"image,omitempty"`
	SecondImage        *Image              `json:"second_image,omitempty"`
	Animation          *Animation          `json:"animation,omitempty"`
	Releases           []SimpleRelease     `json:"releases,omitempty"`
	PopularTracks      []SimpleTrack       `json:"popular_tracks,omitempty"`
	RelatedArtists     []SimpleArtist      `json:"related_artists,omitempty"`
	CollectionItemData *CollectionItemData `json:"collection_item_data,omitempty"`
}

// IsLiked reports whether the current user has liked the artist.
func (a *Artist) IsLiked() bool { return a.CollectionItemData.IsLiked() }
