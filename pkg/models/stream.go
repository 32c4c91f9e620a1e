package models

import (
	"net/url"
	"strconv"
	"time"

	"github.com/zvuklib/zvuk-go/pkg/errors"
)

// Stream holds the per-quality media URLs returned for a track. URLs are
// short-lived; check IsExpired before reusing a stored stream.
type Stream struct {
	Mid         string `json:"mid,omitempty"`
	High        string `json:"high,omitempty"`
	FLACDRM     string `json:"flacdrm,omitempty"`
	Expire      int64  `json:"expire,omitempty"`
	ExpireDelta int64  `json:"expire_delta,omitempty"`
}

// URL returns the media URL for the requested quality. Missing High or
// FLACDRM mean the account's subscription does not cover that tier; a
// missing Mid (or an unknown quality name) is reported as unavailable.
func (s *Stream) URL(quality Quality) (string, error) {
	switch quality {
	case QualityMid:
		if s.Mid == "" {
			return "", errors.Errorf(errors.ErrQualityNotAvailable, "no %s stream for this track", quality)
		}
		return s.Mid, nil
	case QualityHigh:
		if s.High == "" {
			return "", errors.Errorf(errors.ErrSubscriptionRequired, "%s quality requires an active subscription", quality)
		}
		return s.High, nil
	case QualityFlac:
		if s.FLACDRM == "" {
			return "", errors.Errorf(errors.ErrSubscriptionRequired, "%s quality requires an active subscription", quality)
		}
		return s.FLACDRM, nil
	default:
		return "", errors.Errorf(errors.ErrQualityNotAvailable, "unknown quality %q", quality)
	}
}

// BestAvailable returns the highest-quality URL present, preferring
// flacdrm over high over mid.
func (s *Stream) BestAvailable() (Quality, string, error) {
	switch {
	case s.FLACDRM != "":
		return QualityFlac, s.FLACDRM, nil
	case s.High != "":
		return QualityHigh, s.High, nil
	case s.Mid != "":
		return QualityMid, s.Mid, nil
	}
	return "", "", errors.Errorf(errors.ErrQualityNotAvailable, "no stream URLs present")
}

// IsExpired reports whether the stream URLs have passed their expiry. The
// expiry is taken from the Expire field when set, otherwise from the
// "expire" query parameter of the first present URL. Streams with no
// discoverable expiry are treated as expired.
func (s *Stream) IsExpired(now time.Time) bool {
	exp := s.Expire
	if exp == 0 {
		for _, raw := range []string{s.Mid, s.High, s.FLACDRM} {
			if raw == "" {
				continue
			}
			u, err := url.Parse(raw)
			if err != nil {
				continue
			}
			if v := u.Query().Get("expire"); v != "" {
				if n, err := strconv.ParseInt(v, 10, 64); err == nil {
					exp = n
					break
				}
			}
		}
	}
	if exp == 0 {
		return true
	}
	// Expiry may come in milliseconds.
	if exp > 1e12 {
		exp /= 1000
	}
	return now.Unix() >= exp
}
