package models

import (
	"encoding/json"
)

// Item is a tagged union over the catalogue item kinds that appear in
// mixed-type lists (typeahead results, collection matches, hidden lists).
// Exactly one of the typed fields is set, named by Type. Unrecognised
// kinds decode to ItemUnknown with Raw preserved, so a new upstream
// kind degrades to an opaque entry rather than an error.
type Item struct {
	Type ItemType

	Track    *SimpleTrack
	Release  *SimpleRelease
	Artist   *SimpleArtist
	Playlist *SimplePlaylist
	Podcast  *SimplePodcast
	Episode  *SimpleEpisode
	Profile  *SimpleProfile
	Book     *SimpleBook

	// Raw is the original object for unknown kinds.
	Raw json.RawMessage
}

// itemTag pulls out the discriminator. Responses use __typename for
// GraphQL unions and "type" for plain tagged objects; both are accepted.
type itemTag struct {
	Typename string `json:"__typename"`
	Type     string `json:"type"`
}

// typenameToItemType maps GraphQL type names to item kinds.
var typenameToItemType = map[string]ItemType{
	"Track":    ItemTrack,
	"Release":  ItemRelease,
	"Artist":   ItemArtist,
	"Playlist": ItemPlaylist,
	"Podcast":  ItemPodcast,
	"Episode":  ItemEpisode,
	"Profile":  ItemProfile,
	"Book":     ItemBook,
}

// UnmarshalJSON decodes the object into the typed field selected by its
// discriminator.
func (i *Item) UnmarshalJSON(data []byte) error {
	var tag itemTag
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}

	kind, ok := typenameToItemType[tag.Typename]
	if !ok {
		kind = ItemType(tag.Type)
	}

	switch kind {
	case ItemTrack:
		i.Track = &SimpleTrack{}
		i.Type = kind
		return json.Unmarshal(data, i.Track)
	case ItemRelease:
		i.Release = &SimpleRelease{}
		i.Type = kind
		return json.Unmarshal(data, i.Release)
	case ItemArtist:
		i.Artist = &SimpleArtist{}
		i.Type = kind
		return json.Unmarshal(data, i.Artist)
	case ItemPlaylist:
		i.Playlist = &SimplePlaylist{}
		i.Type = kind
		return json.Unmarshal(data, i.Playlist)
	case ItemPodcast:
		i.Podcast = &SimplePodcast{}
		i.Type = kind
		return json.Unmarshal(data, i.Podcast)
	case ItemEpisode:
		i.Episode = &SimpleEpisode{}
		i.Type = kind
		return json.Unmarshal(data, i.Episode)
	case ItemProfile:
		i.Profile = &SimpleProfile{}
		i.Type = kind
		return json.Unmarshal(data, i.Profile)
	case ItemBook:
		i.Book = &SimpleBook{}
		i.Type = kind
		return json.Unmarshal(data, i.Book)
	default:
		i.Type = ItemUnknown
		i.Raw = append(json.RawMessage(nil), data...)
		return nil
	}
}

// MarshalJSON writes back the typed field, or the preserved raw bytes for
// unknown kinds.
func (i Item) MarshalJSON() ([]byte, error) {
	switch i.Type {
	case ItemTrack:
		return json.Marshal(i.Track)
	case ItemRelease:
		return json.Marshal(i.Release)
	case ItemArtist:
		return json.Marshal(i.Artist)
	case ItemPlaylist:
		return json.Marshal(i.Playlist)
	case ItemPodcast:
		return json.Marshal(i.Podcast)
	case ItemEpisode:
		return json.Marshal(i.Episode)
	case ItemProfile:
		return json.Marshal(i.Profile)
	case ItemBook:
		return json.Marshal(i.Book)
	default:
		if i.Raw != nil {
			return i.Raw, nil
		}
		return []byte("null"), nil
	}
}

// ID returns the item's identifier regardless of kind; empty for unknown
// kinds.
func (i *Item) ID() string {
	switch i.Type {
	case ItemTrack:
		return i.Track.ID
	case ItemRelease:
		return i.Release.ID
	case ItemArtist:
		return i.Artist.ID
	case ItemPlaylist:
		return i.Playlist.ID
	case ItemPodcast:
		return i.Podcast.ID
	case ItemEpisode:
		return i.Episode.ID
	case ItemProfile:
		return i.Profile.ID
	case ItemBook:
		return i.Book.ID
	}
	return ""
}

// Title returns the item's display title regardless of kind; empty for
// unknown kinds.
func (i *Item) Title() string {
	switch i.Type {
	case ItemTrack:
		return i.Track.Title
	case ItemRelease:
		return i.Release.Title
	case ItemArtist:
		return i.Artist.Title
	case ItemPlaylist:
		return i.Playlist.Title
	case ItemPodcast:
		return i.Podcast.Title
	case ItemEpisode:
		return i.Episode.Title
	case ItemProfile:
		return i.Profile.Name
	case ItemBook:
		return i.Book.Title
	}
	return ""
}
