package zvuk

import (
	"bytes"
	"context"
	"fmt"

	"github.com/zvuklib/zvuk-go/pkg/errors"
	"github.com/zvuklib/zvuk-go/pkg/models"
)

// GetTracks fetches tracks by ID, keyed by track ID.
func (c *Client) GetTracks(ctx context.Context, ids []string) (map[string]models.Track, error) {
	tracks, err := call[[]models.Track](ctx, c, "getTracks", map[string]interface{}{"ids": ids})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Track, len(tracks))
	for _, t := range tracks {
		byID[t.ID] = t
	}
	return byID, nil
}

// GetTrack fetches a single track. The gateway answers a single-ID lookup
// with either the object itself or a one-element list; both are accepted.
func (c *Client) GetTrack(ctx context.Context, id string) (*models.Track, error) {
	raw, err := c.invoke(ctx, "getTrack", map[string]interface{}{"ids": []string{id}})
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var tracks []models.Track
		if err := c.materializer.Decode(raw, &tracks); err != nil {
			return nil, err
		}
		if len(tracks) == 0 {
			return nil, errors.Errorf(errors.ErrNotFound, "track %s", id)
		}
		return &tracks[0], nil
	}
	var track models.Track
	if err := c.materializer.Decode(raw, &track); err != nil {
		return nil, err
	}
	return &track, nil
}

// GetFullTracks fetches tracks with their artist and release sub-objects
// included.
func (c *Client) GetFullTracks(ctx context.Context, ids []string) (map[string]models.Track, error) {
	tracks, err := call[[]models.Track](ctx, c, "getFullTrack", map[string]interface{}{
		"ids":          ids,
		"withArtists":  true,
		"withReleases": true,
	})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Track, len(tracks))
	for _, t := range tracks {
		byID[t.ID] = t
	}
	return byID, nil
}

// streamEntry is the wire shape of one media-contents element.
type streamEntry struct {
	Stream models.Stream `json:"stream"`
}

// GetStreams resolves stream metadata for the given track IDs. Entries
// come back in request order; the returned map is keyed by track ID.
func (c *Client) GetStreams(ctx context.Context, ids []string) (map[string]models.Stream, error) {
	entries, err := call[[]streamEntry](ctx, c, "getStream", map[string]interface{}{"ids": ids})
	if err != nil {
		return nil, err
	}
	if len(entries) != len(ids) {
		return nil, errors.Errorf(errors.ErrResponseShape,
			"requested %d streams, got %d", len(ids), len(entries))
	}
	byID := make(map[string]models.Stream, len(entries))
	for i, e := range entries {
		byID[ids[i]] = e.Stream
	}
	return byID, nil
}

// GetStreamURLs resolves direct media URLs for the given track IDs at the
// requested quality. An empty quality means high.
func (c *Client) GetStreamURLs(ctx context.Context, ids []string, quality models.Quality) (map[string]string, error) {
	if quality == "" {
		quality = models.QualityHigh
	}
	streams, err := c.GetStreams(ctx, ids)
	if err != nil {
		return nil, err
	}
	urls := make(map[string]string, len(streams))
	for id, s := range streams {
		u, err := s.URL(quality)
		if err != nil {
			return nil, fmt.Errorf("track %s: %w", id, err)
		}
		urls[id] = u
	}
	return urls, nil
}

// GetStreamURL resolves the direct media URL for one track. An empty
// quality means high.
func (c *Client) GetStreamURL(ctx context.Context, id string, quality models.Quality) (string, error) {
	if quality == "" {
		quality = models.QualityHigh
	}
	streams, err := c.GetStreams(ctx, []string{id})
	if err != nil {
		return "", err
	}
	s, ok := streams[id]
	if !ok {
		return "", errors.Errorf(errors.ErrNotFound, "no stream for track %s", id)
	}
	return s.URL(quality)
}
