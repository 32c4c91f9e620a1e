package zvuk

import (
	"context"

	"github.com/zvuklib/zvuk-go/pkg/errors"
	"github.com/zvuklib/zvuk-go/pkg/models"
)

// DefaultPlaylistTracksLimit is the page size used when the caller passes
// a non-positive limit to GetPlaylistTracks.
const DefaultPlaylistTracksLimit = 50

// GetPlaylists fetches playlists by ID with their track lists, keyed by
// playlist ID.
func (c *Client) GetPlaylists(ctx context.Context, ids []string) (map[string]models.Playlist, error) {
	playlists, err := call[[]models.Playlist](ctx, c, "getPlaylists", map[string]interface{}{"ids": ids})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Playlist, len(playlists))
	for _, p := range playlists {
		byID[p.ID] = p
	}
	return byID, nil
}

// GetPlaylist fetches a single playlist.
func (c *Client) GetPlaylist(ctx context.Context, id string) (*models.Playlist, error) {
	playlists, err := c.GetPlaylists(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	p, ok := playlists[id]
	if !ok {
		return nil, errors.Errorf(errors.ErrNotFound, "playlist %s", id)
	}
	return &p, nil
}

// GetShortPlaylists fetches the brief playlist shapes without track
// lists, keyed by playlist ID.
func (c *Client) GetShortPlaylists(ctx context.Context, ids []string) (map[string]models.SimplePlaylist, error) {
	playlists, err := call[[]models.SimplePlaylist](ctx, c, "getShortPlaylist", map[string]interface{}{"ids": ids})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.SimplePlaylist, len(playlists))
	for _, p := range playlists {
		byID[p.ID] = p
	}
	return byID, nil
}

// GetPlaylistTracks fetches one page of a playlist's tracks in playlist
// order. A non-positive limit means 50; a negative offset means 0.
func (c *Client) GetPlaylistTracks(ctx context.Context, id string, limit, offset int) ([]models.SimpleTrack, error) {
	if limit <= 0 {
		limit = DefaultPlaylistTracksLimit
	}
	if offset < 0 {
		offset = 0
	}
	return call[[]models.SimpleTrack](ctx, c, "getPlaylistTracks", map[string]interface{}{
		"id":     id,
		"limit":  limit,
		"offset": offset,
	})
}

// CreatePlaylist creates a playlist with the given items and returns the
// new playlist's ID.
func (c *Client) CreatePlaylist(ctx context.Context, name string, items []models.PlaylistItem) (string, error) {
	return call[string](ctx, c, "createPlaylist", map[string]interface{}{
		"name":  name,
		"items": items,
	})
}

// DeletePlaylist deletes a playlist.
func (c *Client) DeletePlaylist(ctx context.Context, id string) error {
	return c.invokeHas(ctx, "deletePlaylist", map[string]interface{}{"id": id}, "delete")
}

// RenamePlaylist renames a playlist.
func (c *Client) RenamePlaylist(ctx context.Context, id, name string) error {
	return c.invokeHas(ctx, "renamePlaylist", map[string]interface{}{
		"id":   id,
		"name": name,
	}, "rename")
}

// AddTracksToPlaylist appends items to a playlist.
func (c *Client) AddTracksToPlaylist(ctx context.Context, id string, items []models.PlaylistItem) error {
	return c.invokeHas(ctx, "addTracksToPlaylist", map[string]interface{}{
		"id":    id,
		"items": items,
	}, "add_items")
}

// UpdatePlaylist replaces a playlist's name, visibility and contents in
// one call.
func (c *Client) UpdatePlaylist(ctx context.Context, id, name string, items []models.PlaylistItem, isPublic bool) error {
	return c.invokeHas(ctx, "updatePlaylist", map[string]interface{}{
		"id":       id,
		"name":     name,
		"items":    items,
		"isPublic": isPublic,
	}, "update")
}

// SetPlaylistPublic toggles a playlist's visibility.
func (c *Client) SetPlaylistPublic(ctx context.Context, id string, isPublic bool) error {
	return c.invokeHas(ctx, "setPlaylistToPublic", map[string]interface{}{
		"id":       id,
		"isPublic": isPublic,
	}, "set_public")
}

// BuildSynthesisPlaylist builds a blended playlist from two profiles'
// collections.
func (c *Client) BuildSynthesisPlaylist(ctx context.Context, firstAuthorID, secondAuthorID string) (*models.SynthesisPlaylist, error) {
	p, err := call[models.SynthesisPlaylist](ctx, c, "synthesisPlaylistBuild", map[string]interface{}{
		"firstAuthorId":  firstAuthorID,
		"secondAuthorId": secondAuthorID,
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetSynthesisPlaylists fetches blended playlists by ID, keyed by
// playlist ID.
func (c *Client) GetSynthesisPlaylists(ctx context.Context, ids []string) (map[string]models.SynthesisPlaylist, error) {
	playlists, err := call[[]models.SynthesisPlaylist](ctx, c, "synthesisPlaylist", map[string]interface{}{"ids": ids})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.SynthesisPlaylist, len(playlists))
	for _, p := range playlists {
		byID[p.ID] = p
	}
	return byID, nil
}
