package core

import (
	"encoding/json"
	"strings"

	"github.com/zvuklib/zvuk-go/pkg/errors"
)

// GraphQLError is one entry of the errors array in a GraphQL envelope.
type GraphQLError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

// Envelope is the parsed GraphQL response envelope. Data stays raw so the
// materializer can descend it lazily.
type Envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// Classifier turns an HTTP status plus raw body into either a parsed
// envelope or a typed failure. The remote reports errors both at the HTTP
// layer and inside 200 bodies, so both must be inspected before concluding
// success. Specific conditions are checked before the generic ones so an
// actionable error is never masked.
type Classifier struct {
	codec Codec
}

// NewClassifier builds a Classifier using the given codec.
func NewClassifier(codec Codec) *Classifier {
	if codec == nil {
		codec = StdCodec
	}
	return &Classifier{codec: codec}
}

// Classify applies the decision table, first match wins.
func (c *Classifier) Classify(status int, body []byte) (*Envelope, error) {
	if status == 401 || status == 403 {
		return nil, errors.Errorf(errors.ErrUnauthorized, "status %d: %s", status, firstErrorMessage(c.codec, body))
	}

	if looksLikeBotBlock(body) {
		return nil, errors.Errorf(errors.ErrBotDetected, "request blocked, try a different User-Agent")
	}

	var env Envelope
	if err := c.codec.Unmarshal(body, &env); err != nil {
		if status < 200 || status > 299 {
			return nil, errors.Errorf(errors.ErrNetwork, "status %d with unparseable body", status)
		}
		return nil, errors.WrapError(err, errors.ErrResponseShape, "response is not valid JSON")
	}

	if len(env.Errors) > 0 {
		first := env.Errors[0]
		code := strings.ToUpper(first.Extensions.Code)
		msg := first.Message
		switch {
		case code == "UNAUTHORIZED" || code == "UNAUTHENTICATED" || code == "FORBIDDEN" ||
			strings.Contains(strings.ToLower(msg), "invalid token"):
			return nil, errors.Errorf(errors.ErrUnauthorized, "%s", messageOrCode(msg, code))
		case code == "NOT_FOUND":
			return nil, errors.Errorf(errors.ErrNotFound, "%s", messageOrCode(msg, code))
		case code == "SUBSCRIPTION_REQUIRED" || code == "PAYWALL":
			return nil, errors.Errorf(errors.ErrSubscriptionRequired, "%s", messageOrCode(msg, code))
		default:
			return nil, errors.Errorf(errors.ErrGraphQL, "%s", messageOrCode(msg, code))
		}
	}

	if status < 200 || status > 299 {
		switch status {
		case 400:
			return nil, errors.Errorf(errors.ErrBadRequest, "status %d", status)
		case 404:
			return nil, errors.Errorf(errors.ErrNotFound, "status %d", status)
		default:
			return nil, errors.Errorf(errors.ErrNetwork, "status %d", status)
		}
	}

	return &env, nil
}

// looksLikeBotBlock reports whether the body carries the bot-protection
// signature: an HTML page instead of JSON, or the literal block notice.
func looksLikeBotBlock(body []byte) bool {
	head := body
	if len(head) > 100 {
		head = head[:100]
	}
	if strings.Contains(strings.ToLower(string(head)), "<html") {
		return true
	}
	return strings.Contains(strings.ToLower(string(body)), "bot activity")
}

func firstErrorMessage(codec Codec, body []byte) string {
	var env Envelope
	if err := codec.Unmarshal(body, &env); err != nil || len(env.Errors) == 0 {
		return "unknown error"
	}
	return env.Errors[0].Message
}

func messageOrCode(msg, code string) string {
	if msg != "" {
		return msg
	}
	if code != "" {
		return code
	}
	return "unknown graphql error"
}
