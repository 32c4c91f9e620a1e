package zvuk

import (
	"context"

	"github.com/zvuklib/zvuk-go/pkg/errors"
	"github.com/zvuklib/zvuk-go/pkg/models"
)

// ArtistParams selects which artist sub-objects to fetch. The zero value
// fetches only the artist itself; use DefaultArtistParams for the usual
// limits when turning sub-objects on.
type ArtistParams struct {
	WithReleases        bool
	ReleasesLimit       int
	ReleasesOffset      int
	WithPopularTracks   bool
	TracksLimit         int
	TracksOffset        int
	WithRelatedArtists  bool
	RelatedArtistsLimit int
	WithDescription     bool
}

// DefaultArtistParams returns the stock limits with every sub-object
// switched off.
func DefaultArtistParams() ArtistParams {
	return ArtistParams{
		ReleasesLimit:       100,
		TracksLimit:         100,
		RelatedArtistsLimit: 10,
	}
}

func (p ArtistParams) withDefaults() ArtistParams {
	if p.ReleasesLimit <= 0 {
		p.ReleasesLimit = 100
	}
	if p.TracksLimit <= 0 {
		p.TracksLimit = 100
	}
	if p.RelatedArtistsLimit <= 0 {
		p.RelatedArtistsLimit = 10
	}
	return p
}

// GetArtists fetches artists by ID, keyed by artist ID.
func (c *Client) GetArtists(ctx context.Context, ids []string, params ArtistParams) (map[string]models.Artist, error) {
	p := params.withDefaults()
	artists, err := call[[]models.Artist](ctx, c, "getArtists", map[string]interface{}{
		"ids":                 ids,
		"withReleases":        p.WithReleases,
		"releasesLimit":       p.ReleasesLimit,
		"releasesOffset":      p.ReleasesOffset,
		"withPopTracks":       p.WithPopularTracks,
		"tracksLimit":         p.TracksLimit,
		"tracksOffset":        p.TracksOffset,
		"withRelatedArtists":  p.WithRelatedArtists,
		"relatedArtistsLimit": p.RelatedArtistsLimit,
		"withDescription":     p.WithDescription,
	})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Artist, len(artists))
	for _, a := range artists {
		byID[a.ID] = a
	}
	return byID, nil
}

// GetArtist fetches a single artist.
func (c *Client) GetArtist(ctx context.Context, id string, params ArtistParams) (*models.Artist, error) {
	artists, err := c.GetArtists(ctx, []string{id}, params)
	if err != nil {
		return nil, err
	}
	a, ok := artists[id]
	if !ok {
		return nil, errors.Errorf(errors.ErrNotFound, "artist %s", id)
	}
	return &a, nil
}
