package models

// SimpleEpisode is the brief episode shape embedded in podcasts and
// listings.
type SimpleEpisode struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Duration      int    `json:"duration,omitempty"`
	PublishedAt   string `json:"publication_date,omitempty"`
	Image         *Image `json:"image,omitempty"`
	PodcastID     string `json:"podcast_id,omitempty"`
	Availability  int    `json:"availability,omitempty"`
	Explicit      bool   `json:"explicit,omitempty"`
}

// DurationText renders the episode duration as "M:SS".
func (e *SimpleEpisode) DurationText() string { return DurationString(e.Duration) }

// Episode is the full episode shape.
type Episode struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	Description        string              `json:"description,omitempty"`
	Duration           int                 `json:"duration,omitempty"`
	PublishedAt        string              `json:"publication_date,omitempty"`
	Image              *Image              `json:"image,omitempty"`
	Podcast            *SimplePodcast      `json:"podcast,omitempty"`
	Availability       int                 `json:"availability,omitempty"`
	Explicit           bool                `json:"explicit,omitempty"`
	CollectionItemData *CollectionItemData `json:"collection_item_data,omitempty"`
}

// IsLiked reports whether the current user has liked the episode.
func (e *Episode) IsLiked() bool { return e.CollectionItemData.IsLiked() }

// PodcastAuthor is the author shape attached to podcasts.
type PodcastAuthor struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// SimplePodcast is the brief podcast shape returned by listings and
// search.
type SimplePodcast struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Image    *Image          `json:"image,omitempty"`
	Authors  []PodcastAuthor `json:"authors,omitempty"`
	Explicit bool            `json:"explicit,omitempty"`
}

// Podcast is the full podcast shape with its episode list.
type Podcast struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	Description        string              `json:"description,omitempty"`
	Image              *Image              `json:"image,omitempty"`
	Authors            []PodcastAuthor     `json:"authors,omitempty"`
	Explicit           bool                `json:"explicit,omitempty"`
	Type               string              `json:"type,omitempty"`
	Availability       int                 `json:"availability,omitempty"`
	UpdatedDate        string              `json:"updated_date,omitempty"`
	Episodes           []SimpleEpisode     `json:"episodes,omitempty"`
	CollectionItemData *CollectionItemData `json:"collection_item_data,omitempty"`
}

// IsLiked reports whether the current user has liked the podcast.
func (p *Podcast) IsLiked() bool { return p.CollectionItemData.IsLiked() }
