package models

// CollectionEntry is one liked or hidden item reference: the ID plus the
// like metadata attached to it.
type CollectionEntry struct {
	ID           string `json:"id"`
	ItemStatus   string `json:"item_status,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
}

// Collection groups the user's liked item references by kind, in server
// order.
type Collection struct {
	Tracks             []CollectionEntry `json:"tracks,omitempty"`
	Releases           []CollectionEntry `json:"releases,omitempty"`
	Artists            []CollectionEntry `json:"artists,omitempty"`
	Playlists          []CollectionEntry `json:"playlists,omitempty"`
	SynthesisPlaylists []CollectionEntry `json:"synthesis_playlists,omitempty"`
	Podcasts           []CollectionEntry `json:"podcasts,omitempty"`
	Episodes           []CollectionEntry `json:"episodes,omitempty"`
	Profiles           []CollectionEntry `json:"profiles,omitempty"`
}

// IDs flattens the entries to their identifiers, preserving order.
func IDs(entries []CollectionEntry) []string {
	if entries == nil {
		return nil
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

// HiddenCollection holds references the user has hidden from
// recommendations.
type HiddenCollection struct {
	Tracks  []CollectionEntry `json:"tracks,omitempty"`
	Artists []CollectionEntry `json:"artists,omitempty"`
}
