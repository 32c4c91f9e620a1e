// Package zvuk is the public client for the Zvuk streaming API. Every
// operation performs exactly one round trip: the request is assembled from
// the static catalog, posted over the GraphQL transport, classified, and
// the payload materialized into a typed model. Nothing is cached and
// nothing is retried.
package zvuk

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/zvuklib/zvuk-go/pkg/auth"
	"github.com/zvuklib/zvuk-go/pkg/catalog"
	"github.com/zvuklib/zvuk-go/pkg/core"
	"github.com/zvuklib/zvuk-go/pkg/errors"
	"github.com/zvuklib/zvuk-go/pkg/transport/graphql"
	"github.com/zvuklib/zvuk-go/pkg/transport/rest"
)

// credential lets SetToken replace the auth handler wholesale while calls
// in flight keep the handler they loaded. No lock is held during requests.
type credential struct {
	box atomic.Pointer[credentialBox]
}

type credentialBox struct {
	handler auth.Handler
	token   string
}

func (c *credential) ApplyAuth(req *http.Request) error {
	return c.box.Load().handler.ApplyAuth(req)
}

func (c *credential) current() *credentialBox { return c.box.Load() }

func (c *credential) set(token string) {
	box := &credentialBox{handler: auth.Anonymous{}, token: token}
	if token != "" {
		box.handler = auth.NewTokenAuth(token)
	}
	c.box.Store(box)
}

// Client talks to the Zvuk API. It is safe for concurrent use; the only
// mutable state is the credential, which SetToken replaces atomically.
type Client struct {
	catalog      *catalog.Catalog
	assembler    *core.Assembler
	transport    *graphql.Transport
	classifier   *core.Classifier
	materializer *core.Materializer
	codec        core.Codec
	doer         graphql.HTTPDoer
	tinyBase     string
	userAgent    string
	cred         *credential
	logger       *zap.Logger
}

type settings struct {
	token        string
	timeout      time.Duration
	proxyURL     string
	userAgent    string
	endpoint     string
	tinyEndpoint string
	fastJSON     bool
	logger       *zap.Logger
	doer         graphql.HTTPDoer
}

// Option configures a Client.
type Option func(*settings)

// WithToken sets the initial auth token. Without one, calls run
// anonymously; use GetAnonymousToken to bootstrap a session.
func WithToken(token string) Option {
	return func(s *settings) { s.token = token }
}

// WithTimeout bounds each call end to end. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithProxy routes all traffic through the given proxy URL.
func WithProxy(proxyURL string) Option {
	return func(s *settings) { s.proxyURL = proxyURL }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(s *settings) { s.userAgent = ua }
}

// WithEndpoint overrides the GraphQL endpoint, for tests.
func WithEndpoint(endpoint string) Option {
	return func(s *settings) { s.endpoint = endpoint }
}

// WithTinyEndpoint overrides the tiny API base URL, for tests.
func WithTinyEndpoint(endpoint string) Option {
	return func(s *settings) { s.tinyEndpoint = endpoint }
}

// WithFastJSON switches the JSON codec to the jsoniter implementation.
// Purely a performance knob; behavior is identical.
func WithFastJSON() Option {
	return func(s *settings) { s.fastJSON = true }
}

// WithLogger attaches a structured logger. The default discards
// everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithHTTPDoer swaps the HTTP client; overrides WithTimeout and WithProxy.
func WithHTTPDoer(doer graphql.HTTPDoer) Option {
	return func(s *settings) { s.doer = doer }
}

// NewClient builds a Client with the given options.
func NewClient(opts ...Option) (*Client, error) {
	s := settings{
		timeout:   graphql.DefaultTimeout,
		userAgent: graphql.DefaultUserAgent,
		logger:    zap.NewNop(),
	}
	for _, o := range opts {
		o(&s)
	}

	doer := s.doer
	if doer == nil {
		httpClient, err := graphql.NewHTTPClient(s.timeout, s.proxyURL)
		if err != nil {
			return nil, err
		}
		doer = httpClient
	}

	codec := core.StdCodec
	if s.fastJSON {
		codec = core.FastCodec
	}

	cred := &credential{}
	cred.set(s.token)

	tOpts := []graphql.Option{
		graphql.WithHTTPDoer(doer),
		graphql.WithUserAgent(s.userAgent),
		graphql.WithAuthHandler(cred),
		graphql.WithCodec(codec),
		graphql.WithLogger(s.logger),
	}
	if s.endpoint != "" {
		tOpts = append(tOpts, graphql.WithEndpoint(s.endpoint))
	}

	return &Client{
		catalog:      catalog.Default(),
		assembler:    core.NewAssembler(catalog.Default()),
		transport:    graphql.New(tOpts...),
		classifier:   core.NewClassifier(codec),
		materializer: core.NewMaterializer(codec),
		codec:        codec,
		doer:         doer,
		tinyBase:     s.tinyEndpoint,
		userAgent:    s.userAgent,
		cred:         cred,
		logger:       s.logger,
	}, nil
}

// SetToken replaces the credential for all subsequent calls. Calls already
// in flight finish with the token they started with.
func (c *Client) SetToken(token string) {
	c.cred.set(token)
}

// Token returns the current auth token, empty when anonymous.
func (c *Client) Token() string {
	return c.cred.current().token
}

// invoke runs the whole pipeline for one catalog operation and returns the
// payload located at the operation's key path.
func (c *Client) invoke(ctx context.Context, operation string, args map[string]interface{}) (json.RawMessage, error) {
	desc, vars, err := c.assembler.Assemble(operation, args)
	if err != nil {
		return nil, err
	}

	status, body, err := c.transport.Do(ctx, desc.Document, desc.Name, vars)
	if err != nil {
		return nil, err
	}

	env, err := c.classifier.Classify(status, body)
	if err != nil {
		return nil, err
	}

	return c.materializer.At(env.Data, desc.KeyPath...)
}

// invokeHas runs a mutation and reports whether the acknowledgement field
// is present and non-null under the operation's key path.
func (c *Client) invokeHas(ctx context.Context, operation string, args map[string]interface{}, ack string) error {
	raw, err := c.invoke(ctx, operation, args)
	if err != nil {
		return err
	}
	if !c.materializer.Has(raw, ack) {
		return errors.Errorf(errors.ErrResponseShape, "%s: missing %q acknowledgement", operation, ack)
	}
	return nil
}

// call decodes the payload of one operation into T.
func call[T any](ctx context.Context, c *Client, operation string, args map[string]interface{}) (T, error) {
	var out T
	raw, err := c.invoke(ctx, operation, args)
	if err != nil {
		return out, err
	}
	if err := c.materializer.Decode(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

// tiny builds a request helper for the tiny REST API carrying the current
// token, if any.
func (c *Client) tiny() *rest.Client {
	headers := map[string]string{
		"User-Agent": c.userAgent,
		"Accept":     "application/json",
	}
	if box := c.cred.current(); box.token != "" {
		headers["X-Auth-Token"] = box.token
	}
	return rest.NewClient(c.doer, c.tinyBase, headers, c.codec)
}
