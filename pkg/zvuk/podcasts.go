package zvuk

import (
	"context"

	"github.com/zvuklib/zvuk-go/pkg/errors"
	"github.com/zvuklib/zvuk-go/pkg/models"
)

// GetPodcasts fetches podcasts by ID, keyed by podcast ID.
func (c *Client) GetPodcasts(ctx context.Context, ids []string) (map[string]models.Podcast, error) {
	podcasts, err := call[[]models.Podcast](ctx, c, "getPodcasts", map[string]interface{}{"ids": ids})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Podcast, len(podcasts))
	for _, p := range podcasts {
		byID[p.ID] = p
	}
	return byID, nil
}

// GetPodcast fetches a single podcast.
func (c *Client) GetPodcast(ctx context.Context, id string) (*models.Podcast, error) {
	podcasts, err := c.GetPodcasts(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	p, ok := podcasts[id]
	if !ok {
		return nil, errors.Errorf(errors.ErrNotFound, "podcast %s", id)
	}
	return &p, nil
}

// GetEpisodes fetches podcast episodes by ID, keyed by episode ID.
func (c *Client) GetEpisodes(ctx context.Context, ids []string) (map[string]models.Episode, error) {
	episodes, err := call[[]models.Episode](ctx, c, "getEpisodes", map[string]interface{}{"ids": ids})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Episode, len(episodes))
	for _, e := range episodes {
		byID[e.ID] = e
	}
	return byID, nil
}

// GetEpisode fetches a single episode.
func (c *Client) GetEpisode(ctx context.Context, id string) (*models.Episode, error) {
	episodes, err := c.GetEpisodes(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	e, ok := episodes[id]
	if !ok {
		return nil, errors.Errorf(errors.ErrNotFound, "episode %s", id)
	}
	return &e, nil
}
