package graphql

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/zvuklib/zvuk-go/pkg/auth"
	"github.com/zvuklib/zvuk-go/pkg/core"
	"github.com/zvuklib/zvuk-go/pkg/errors"
)

const (
	// DefaultEndpoint is the production GraphQL endpoint.
	DefaultEndpoint = "https://zvuk.com/api/v1/graphql"

	// DefaultUserAgent masquerades as a desktop browser; the endpoint's
	// bot protection rejects obviously scripted agents.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// DefaultTimeout bounds a whole call unless overridden.
	DefaultTimeout = 10 * time.Second
)

// defaultHeaders are sent with every request. The Referer and Origin pair
// also matters for bot protection.
var defaultHeaders = map[string]string{
	"Accept":          "application/json, text/plain, */*",
	"Accept-Language": "ru-RU,ru;q=0.9,en-US;q=0.8,en;q=0.7",
	"Referer":         "https://zvuk.com/",
	"Origin":          "https://zvuk.com",
}

// HTTPDoer is a minimal interface for HTTP clients
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Transport issues exactly one HTTP POST per call and returns the raw
// status plus body. It never retries and keeps no mutable state across
// calls, so concurrent use needs no locking.
type Transport struct {
	doer        HTTPDoer
	endpoint    string
	userAgent   string
	authHandler auth.Handler
	codec       core.Codec
	logger      *zap.Logger
}

// Option configures a Transport.
type Option func(*Transport)

// WithHTTPDoer swaps the underlying HTTP client.
func WithHTTPDoer(doer HTTPDoer) Option {
	return func(t *Transport) { t.doer = doer }
}

// WithEndpoint overrides the GraphQL endpoint.
func WithEndpoint(endpoint string) Option {
	return func(t *Transport) { t.endpoint = endpoint }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(t *Transport) { t.userAgent = ua }
}

// WithAuthHandler sets the auth handler applied to every request.
func WithAuthHandler(h auth.Handler) Option {
	return func(t *Transport) { t.authHandler = h }
}

// WithCodec sets the JSON codec used for request bodies.
func WithCodec(c core.Codec) Option {
	return func(t *Transport) { t.codec = c }
}

// WithLogger attaches a logger. Logging is a collaborator, not part of the
// transport contract.
func WithLogger(l *zap.Logger) Option {
	return func(t *Transport) { t.logger = l }
}

// New builds a Transport with the given options applied in order.
func New(opts ...Option) *Transport {
	t := &Transport{
		doer:        &http.Client{Timeout: DefaultTimeout},
		endpoint:    DefaultEndpoint,
		userAgent:   DefaultUserAgent,
		authHandler: auth.Anonymous{},
		codec:       core.StdCodec,
		logger:      zap.NewNop(),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// NewHTTPClient builds an *http.Client with the given timeout and optional
// proxy URL. An empty proxyURL means a direct connection.
func NewHTTPClient(timeout time.Duration, proxyURL string) (*http.Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}
	if proxyURL != "" {
		parsed, err := url.Parse(proxyURL)
		if err != nil {
			return nil, errors.WrapError(err, errors.ErrValidation, "invalid proxy URL")
		}
		client.Transport = &http.Transport{Proxy: http.ProxyURL(parsed)}
	}
	return client, nil
}

// request is the wire body of a GraphQL call.
type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

// Do sends one GraphQL POST and returns the status code and body bytes.
// Timeouts surface as ErrTimedOut, other transport failures as ErrNetwork;
// both preserve the underlying cause in the error chain.
func (t *Transport) Do(ctx context.Context, document, operationName string, variables map[string]interface{}) (int, []byte, error) {
	body, err := t.codec.Marshal(request{
		Query:         document,
		OperationName: operationName,
		Variables:     variables,
	})
	if err != nil {
		return 0, nil, errors.WrapError(err, errors.ErrValidation, "marshal request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, errors.WrapError(err, errors.ErrNetwork, "build request")
	}

	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", t.userAgent)
	if t.authHandler != nil {
		if err := t.authHandler.ApplyAuth(req); err != nil {
			return 0, nil, err
		}
	}

	t.logger.Debug("graphql request", zap.String("operation", operationName))

	resp, err := t.doer.Do(req)
	if err != nil {
		if isTimeout(err) {
			return 0, nil, errors.WrapError(err, errors.ErrTimedOut, "operation "+operationName)
		}
		return 0, nil, errors.WrapError(err, errors.ErrNetwork, "operation "+operationName)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.WrapError(err, errors.ErrNetwork, "read response body")
	}

	t.logger.Debug("graphql response",
		zap.String("operation", operationName),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(raw)))

	return resp.StatusCode, raw, nil
}

func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}
