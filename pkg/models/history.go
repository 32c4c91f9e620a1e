package models

// HistoryEntry is one listening-history record: a typed item reference
// plus when it was last listened to.
type HistoryEntry struct {
	ItemID       string   `json:"item_id"`
	Type         ItemType `json:"type"`
	LastListened string   `json:"last_listened,omitempty"`
}

// PlayedEpisode records how far into a podcast episode playback got.
type PlayedEpisode struct {
	ID         string `json:"id"`
	Position   int    `json:"position,omitempty"`
	IsFinished bool   `json:"is_finished,omitempty"`
	Updated    string `json:"updated,omitempty"`
}
