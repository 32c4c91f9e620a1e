// Package models holds the typed domain objects materialized from API
// responses. Objects are plain immutable values: they are created once per
// response and never mutated in place afterwards.
package models

// Quality identifies an audio stream tier.
type Quality string

const (
	QualityMid  Quality = "mid"     // 128kbps MP3, always available
	QualityHigh Quality = "high"    // 320kbps MP3, requires subscription
	QualityFlac Quality = "flacdrm" // FLAC with DRM, requires subscription
)

// ReleaseType classifies a release.
type ReleaseType string

const (
	ReleaseAlbum       ReleaseType = "album"
	ReleaseSingle      ReleaseType = "single"
	ReleaseEP          ReleaseType = "ep"
	ReleaseCompilation ReleaseType = "compilation"
)

// ItemType tags entries of heterogeneous collection lists.
type ItemType string

const (
	ItemTrack    ItemType = "track"
	ItemRelease  ItemType = "release"
	ItemArtist   ItemType = "artist"
	ItemPlaylist ItemType = "playlist"
	ItemPodcast  ItemType = "podcast"
	ItemEpisode  ItemType = "episode"
	ItemProfile  ItemType = "profile"
	ItemBook     ItemType = "book"
	// ItemUnknown marks an entry whose discriminator the client does not
	// recognize. One exotic entry must not fail the whole list.
	ItemUnknown ItemType = "unknown"
)

// ItemStatusLiked is the item status the API reports for liked entries.
const ItemStatusLiked = "liked"

// OrderBy selects the sort field for collection listings.
type OrderBy string

const (
	OrderByAlphabet  OrderBy = "alphabet"
	OrderByArtist    OrderBy = "artist"
	OrderByDateAdded OrderBy = "dateAdded"
)

// OrderDirection selects the sort direction for collection listings.
type OrderDirection string

const (
	OrderAsc  OrderDirection = "asc"
	OrderDesc OrderDirection = "desc"
)
