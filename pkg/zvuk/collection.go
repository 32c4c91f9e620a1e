package zvuk

import (
	"context"

	"github.com/zvuklib/zvuk-go/pkg/models"
)

// DefaultPodcastPageCount is the page size used when the caller passes a
// non-positive count to GetUserPaginatedPodcasts.
const DefaultPodcastPageCount = 20

// GetCollection fetches the whole of the user's liked-item references,
// grouped by kind.
func (c *Client) GetCollection(ctx context.Context) (*models.Collection, error) {
	col, err := call[models.Collection](ctx, c, "userCollection", nil)
	if err != nil {
		return nil, err
	}
	return &col, nil
}

// GetLikedTracks fetches the user's liked tracks. Zero values for orderBy
// and direction mean date-added, descending.
func (c *Client) GetLikedTracks(ctx context.Context, orderBy models.OrderBy, direction models.OrderDirection) ([]models.SimpleTrack, error) {
	if orderBy == "" {
		orderBy = models.OrderByDateAdded
	}
	if direction == "" {
		direction = models.OrderDesc
	}
	return call[[]models.SimpleTrack](ctx, c, "userTracks", map[string]interface{}{
		"orderBy":        string(orderBy),
		"orderDirection": string(direction),
	})
}

// GetUserPlaylists fetches the user's playlists as a mixed-type list:
// regular playlists and synthesis playlists, in server order.
func (c *Client) GetUserPlaylists(ctx context.Context) ([]models.Item, error) {
	return call[[]models.Item](ctx, c, "userPlaylists", nil)
}

// paginatedPodcasts is the wire shape of the paginated collection payload.
type paginatedPodcasts struct {
	Podcasts models.Page[models.SimplePodcast] `json:"podcasts"`
}

// GetUserPaginatedPodcasts fetches one page of the user's podcasts. A
// non-positive count means 20; an empty cursor starts from the beginning.
// The next page is fetched by passing back the result's PageInfo.Cursor.
func (c *Client) GetUserPaginatedPodcasts(ctx context.Context, count int, cursor string) (*models.Page[models.SimplePodcast], error) {
	if count <= 0 {
		count = DefaultPodcastPageCount
	}
	args := map[string]interface{}{"count": count}
	if cursor != "" {
		args["cursor"] = cursor
	}
	page, err := call[paginatedPodcasts](ctx, c, "userPaginatedPodcasts", args)
	if err != nil {
		return nil, err
	}
	return &page.Podcasts, nil
}

// AddToCollection likes an item.
func (c *Client) AddToCollection(ctx context.Context, id string, itemType models.ItemType) error {
	return c.invokeHas(ctx, "addItemToCollection", map[string]interface{}{
		"id":   id,
		"type": string(itemType),
	}, "add_item")
}

// RemoveFromCollection unlikes an item.
func (c *Client) RemoveFromCollection(ctx context.Context, id string, itemType models.ItemType) error {
	return c.invokeHas(ctx, "removeItemFromCollection", map[string]interface{}{
		"id":   id,
		"type": string(itemType),
	}, "remove_item")
}

// LikeTrack likes a track.
func (c *Client) LikeTrack(ctx context.Context, id string) error {
	return c.AddToCollection(ctx, id, models.ItemTrack)
}

// UnlikeTrack unlikes a track.
func (c *Client) UnlikeTrack(ctx context.Context, id string) error {
	return c.RemoveFromCollection(ctx, id, models.ItemTrack)
}

// LikeRelease likes a release.
func (c *Client) LikeRelease(ctx context.Context, id string) error {
	return c.AddToCollection(ctx, id, models.ItemRelease)
}

// UnlikeRelease unlikes a release.
func (c *Client) UnlikeRelease(ctx context.Context, id string) error {
	return c.RemoveFromCollection(ctx, id, models.ItemRelease)
}

// LikeArtist likes an artist.
func (c *Client) LikeArtist(ctx context.Context, id string) error {
	return c.AddToCollection(ctx, id, models.ItemArtist)
}

// UnlikeArtist unlikes an artist.
func (c *Client) UnlikeArtist(ctx context.Context, id string) error {
	return c.RemoveFromCollection(ctx, id, models.ItemArtist)
}

// LikePlaylist likes a playlist.
func (c *Client) LikePlaylist(ctx context.Context, id string) error {
	return c.AddToCollection(ctx, id, models.ItemPlaylist)
}

// UnlikePlaylist unlikes a playlist.
func (c *Client) UnlikePlaylist(ctx context.Context, id string) error {
	return c.RemoveFromCollection(ctx, id, models.ItemPlaylist)
}

// LikePodcast likes a podcast.
func (c *Client) LikePodcast(ctx context.Context, id string) error {
	return c.AddToCollection(ctx, id, models.ItemPodcast)
}

// UnlikePodcast unlikes a podcast.
func (c *Client) UnlikePodcast(ctx context.Context, id string) error {
	return c.RemoveFromCollection(ctx, id, models.ItemPodcast)
}
