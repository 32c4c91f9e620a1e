// Package rest talks to the small non-GraphQL "tiny" API, which serves the
// user profile and hands out anonymous tokens.
package rest

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net"
	"net/http"

	"github.com/zvuklib/zvuk-go/pkg/core"
	"github.com/zvuklib/zvuk-go/pkg/errors"
)

// DefaultEndpoint is the production tiny API base URL.
const DefaultEndpoint = "https://zvuk.com/api/tiny"

// HTTPDoer is a minimal interface for HTTP clients
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client issues GET requests against the tiny API. Responses arrive as
// {"result": {...}}; Get returns the raw result payload.
type Client struct {
	doer    HTTPDoer
	baseURL string
	headers map[string]string
	codec   core.Codec
}

// NewClient builds a tiny API client. headers are applied to every request.
func NewClient(doer HTTPDoer, baseURL string, headers map[string]string, codec core.Codec) *Client {
	if baseURL == "" {
		baseURL = DefaultEndpoint
	}
	if codec == nil {
		codec = core.StdCodec
	}
	return &Client{doer: doer, baseURL: baseURL, headers: headers, codec: codec}
}

type envelope struct {
	Result json.RawMessage `json:"result"`
}

// Get fetches path and returns the raw "result" payload.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrNetwork, "build request")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, errors.WrapError(err, errors.ErrTimedOut, "GET "+path)
		}
		return nil, errors.WrapError(err, errors.ErrNetwork, "GET "+path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrNetwork, "read response body")
	}

	switch {
	case resp.StatusCode == 401 || resp.StatusCode == 403:
		return nil, errors.Errorf(errors.ErrUnauthorized, "status %d", resp.StatusCode)
	case resp.StatusCode == 404:
		return nil, errors.Errorf(errors.ErrNotFound, "status %d", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, errors.Errorf(errors.ErrNetwork, "status %d", resp.StatusCode)
	}

	var env envelope
	if err := c.codec.Unmarshal(body, &env); err != nil {
		return nil, errors.WrapError(err, errors.ErrResponseShape, "response is not valid JSON")
	}
	if len(env.Result) == 0 {
		return nil, errors.Errorf(errors.ErrResponseShape, "missing result field")
	}
	return env.Result, nil
}

func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}
