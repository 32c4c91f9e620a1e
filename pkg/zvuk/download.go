package zvuk

import (
	"context"
	"io"
	"net/http"

	"github.com/zvuklib/zvuk-go/pkg/errors"
	"github.com/zvuklib/zvuk-go/pkg/models"
)

// Download resolves the stream URL for a track at the given quality and
// copies the media to w. Returns the number of bytes written. An empty
// quality means high.
func (c *Client) Download(ctx context.Context, w io.Writer, trackID string, quality models.Quality) (int64, error) {
	streamURL, err := c.GetStreamURL(ctx, trackID, quality)
	if err != nil {
		return 0, err
	}
	return c.DownloadURL(ctx, w, streamURL)
}

// DownloadURL copies the media at a previously resolved stream URL to w.
func (c *Client) DownloadURL(ctx context.Context, w io.Writer, streamURL string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streamURL, nil)
	if err != nil {
		return 0, errors.WrapError(err, errors.ErrValidation, "build download request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.doer.Do(req)
	if err != nil {
		return 0, errors.WrapError(err, errors.ErrNetwork, "download "+streamURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, errors.Errorf(errors.ErrNetwork, "download status %d", resp.StatusCode)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, errors.WrapError(err, errors.ErrNetwork, "copy media body")
	}
	return n, nil
}
