package zvuk

import (
	"context"

	"github.com/zvuklib/zvuk-go/pkg/errors"
	"github.com/zvuklib/zvuk-go/pkg/models"
)

// DefaultRelatedLimit caps the related-releases list fetched with each
// release.
const DefaultRelatedLimit = 10

// GetReleases fetches releases by ID with their track lists, keyed by
// release ID.
func (c *Client) GetReleases(ctx context.Context, ids []string) (map[string]models.Release, error) {
	releases, err := call[[]models.Release](ctx, c, "getReleases", map[string]interface{}{
		"ids":          ids,
		"relatedLimit": DefaultRelatedLimit,
	})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Release, len(releases))
	for _, r := range releases {
		byID[r.ID] = r
	}
	return byID, nil
}

// GetRelease fetches a single release.
func (c *Client) GetRelease(ctx context.Context, id string) (*models.Release, error) {
	releases, err := c.GetReleases(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	r, ok := releases[id]
	if !ok {
		return nil, errors.Errorf(errors.ErrNotFound, "release %s", id)
	}
	return &r, nil
}
