package zvuk

import (
	"context"

	"github.com/zvuklib/zvuk-go/pkg/models"
)

// GetListeningHistory fetches the user's listening history, most recent
// first in server order.
func (c *Client) GetListeningHistory(ctx context.Context) ([]models.HistoryEntry, error) {
	return call[[]models.HistoryEntry](ctx, c, "listeningHistory", nil)
}

// GetListenedEpisodes fetches playback positions for the podcast episodes
// the user has started.
func (c *Client) GetListenedEpisodes(ctx context.Context) ([]models.PlayedEpisode, error) {
	return call[[]models.PlayedEpisode](ctx, c, "listenedEpisodes", nil)
}

// HasUnreadNotifications reports whether unread notifications are
// waiting.
func (c *Client) HasUnreadNotifications(ctx context.Context) (bool, error) {
	return call[bool](ctx, c, "notificationsHasUnread", nil)
}
