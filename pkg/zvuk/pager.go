package zvuk

import (
	"context"

	"github.com/zvuklib/zvuk-go/pkg/models"
)

// PlaylistTracksPager walks a playlist's tracks page by page. Each Next
// call is one round trip; the pager never fetches ahead.
type PlaylistTracksPager struct {
	client     *Client
	playlistID string
	limit      int
	offset     int
	exhausted  bool
}

// NewPlaylistTracksPager builds a pager starting at the playlist's first
// track. A non-positive limit means 50.
func (c *Client) NewPlaylistTracksPager(playlistID string, limit int) *PlaylistTracksPager {
	if limit <= 0 {
		limit = DefaultPlaylistTracksLimit
	}
	return &PlaylistTracksPager{client: c, playlistID: playlistID, limit: limit}
}

// Next fetches the next page. It returns nil, nil once the playlist is
// exhausted.
func (p *PlaylistTracksPager) Next(ctx context.Context) ([]models.SimpleTrack, error) {
	if p.exhausted {
		return nil, nil
	}
	tracks, err := p.client.GetPlaylistTracks(ctx, p.playlistID, p.limit, p.offset)
	if err != nil {
		return nil, err
	}
	if len(tracks) < p.limit {
		p.exhausted = true
	}
	p.offset += len(tracks)
	if len(tracks) == 0 {
		return nil, nil
	}
	return tracks, nil
}

// UserPodcastsPager walks the user's podcast collection cursor by cursor.
type UserPodcastsPager struct {
	client    *Client
	count     int
	cursor    string
	exhausted bool
}

// NewUserPodcastsPager builds a pager over the user's podcasts. A
// non-positive count means 20.
func (c *Client) NewUserPodcastsPager(count int) *UserPodcastsPager {
	if count <= 0 {
		count = DefaultPodcastPageCount
	}
	return &UserPodcastsPager{client: c, count: count}
}

// Next fetches the next page. It returns nil, nil once the collection is
// exhausted.
func (p *UserPodcastsPager) Next(ctx context.Context) ([]models.SimplePodcast, error) {
	if p.exhausted {
		return nil, nil
	}
	page, err := p.client.GetUserPaginatedPodcasts(ctx, p.count, p.cursor)
	if err != nil {
		return nil, err
	}
	p.cursor = page.Page.Cursor
	if p.cursor == "" || len(page.Items) == 0 {
		p.exhausted = true
	}
	return page.Items, nil
}
