package zvuk

import (
	"context"

	"github.com/zvuklib/zvuk-go/pkg/models"
)

// GetHiddenCollection fetches the references the user has hidden from
// recommendations, grouped by kind.
func (c *Client) GetHiddenCollection(ctx context.Context) (*models.HiddenCollection, error) {
	col, err := call[models.HiddenCollection](ctx, c, "getAllHiddenCollection", nil)
	if err != nil {
		return nil, err
	}
	return &col, nil
}

// GetHiddenTracks fetches the user's hidden tracks as typed items, in
// server order.
func (c *Client) GetHiddenTracks(ctx context.Context) ([]models.Item, error) {
	return call[[]models.Item](ctx, c, "getHiddenTracks", nil)
}

// AddToHidden hides an item from recommendations.
func (c *Client) AddToHidden(ctx context.Context, id string, itemType models.ItemType) error {
	return c.invokeHas(ctx, "addItemToHidden", map[string]interface{}{
		"id":   id,
		"type": string(itemType),
	}, "add_item")
}

// RemoveFromHidden unhides an item.
func (c *Client) RemoveFromHidden(ctx context.Context, id string, itemType models.ItemType) error {
	return c.invokeHas(ctx, "removeItemFromHidden", map[string]interface{}{
		"id":   id,
		"type": string(itemType),
	}, "remove_item")
}

// HideTrack hides a track from recommendations.
func (c *Client) HideTrack(ctx context.Context, id string) error {
	return c.AddToHidden(ctx, id, models.ItemTrack)
}

// UnhideTrack unhides a track.
func (c *Client) UnhideTrack(ctx context.Context, id string) error {
	return c.RemoveFromHidden(ctx, id, models.ItemTrack)
}
