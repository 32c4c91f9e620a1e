package zvuk

import (
	"context"

	"github.com/zvuklib/zvuk-go/pkg/core"
	"github.com/zvuklib/zvuk-go/pkg/errors"
	"github.com/zvuklib/zvuk-go/pkg/models"
	"github.com/zvuklib/zvuk-go/pkg/transport/graphql"
	"github.com/zvuklib/zvuk-go/pkg/transport/rest"
)

// profilePath is the tiny API endpoint serving the account profile. An
// unauthenticated request is answered with a fresh anonymous profile
// carrying a usable token.
const profilePath = "/profile"

// GetAnonymousToken fetches a fresh anonymous session token without a
// Client. Pass the token to NewClient via WithToken, or to SetToken.
func GetAnonymousToken(ctx context.Context, opts ...Option) (string, error) {
	s := settings{
		timeout:   graphql.DefaultTimeout,
		userAgent: graphql.DefaultUserAgent,
	}
	for _, o := range opts {
		o(&s)
	}

	doer := s.doer
	if doer == nil {
		httpClient, err := graphql.NewHTTPClient(s.timeout, s.proxyURL)
		if err != nil {
			return "", err
		}
		doer = httpClient
	}

	tiny := rest.NewClient(doer, s.tinyEndpoint, map[string]string{
		"User-Agent": s.userAgent,
		"Accept":     "application/json",
	}, core.StdCodec)

	raw, err := tiny.Get(ctx, profilePath)
	if err != nil {
		return "", err
	}
	var profile models.Profile
	if err := core.StdCodec.Unmarshal(raw, &profile); err != nil {
		return "", errors.WrapError(err, errors.ErrResponseShape, "decode profile")
	}
	if profile.Token == "" {
		return "", errors.Errorf(errors.ErrResponseShape, "profile carries no token")
	}
	return profile.Token, nil
}

// GetProfile fetches the account profile for the current token.
func (c *Client) GetProfile(ctx context.Context) (*models.Profile, error) {
	raw, err := c.tiny().Get(ctx, profilePath)
	if err != nil {
		return nil, err
	}
	var profile models.Profile
	if err := c.codec.Unmarshal(raw, &profile); err != nil {
		return nil, errors.WrapError(err, errors.ErrResponseShape, "decode profile")
	}
	return &profile, nil
}

// Init bootstraps the session: it fetches the profile for the current
// token, and when the client has no token yet it adopts the anonymous one
// the API hands out. Returns the resulting profile.
func (c *Client) Init(ctx context.Context) (*models.Profile, error) {
	profile, err := c.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if c.Token() == "" && profile.Token != "" {
		c.SetToken(profile.Token)
	}
	return profile, nil
}

// IsAuthorized reports whether the current token belongs to a registered
// account. It costs one profile round trip.
func (c *Client) IsAuthorized(ctx context.Context) (bool, error) {
	profile, err := c.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, errors.ErrUnauthorized) {
			return false, nil
		}
		return false, err
	}
	return profile.IsAuthorized(), nil
}

// GetProfileFollowersCount fetches follower counts for the given profile
// IDs, keyed by profile ID.
func (c *Client) GetProfileFollowersCount(ctx context.Context, ids []string) (map[string]int, error) {
	profiles, err := call[[]models.SimpleProfile](ctx, c, "profileFollowersCount", map[string]interface{}{"ids": ids})
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(profiles))
	for _, p := range profiles {
		counts[p.ID] = p.FollowersCount()
	}
	return counts, nil
}

// GetFollowingCount fetches how many profiles the given profile follows.
func (c *Client) GetFollowingCount(ctx context.Context, id string) (int, error) {
	return call[int](ctx, c, "followingCount", map[string]interface{}{"id": id})
}
