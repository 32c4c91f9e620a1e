package core

import (
	"bytes"
	"encoding/json"

	"github.com/zvuklib/zvuk-go/pkg/errors"
)

// Materializer locates payloads inside a response envelope and converts them
// into typed values. A missing intermediate key is a loud ErrResponseShape,
// never a silent null: a shape mismatch means the remote schema changed.
type Materializer struct {
	codec Codec
}

// NewMaterializer builds a Materializer using the given codec.
func NewMaterializer(codec Codec) *Materializer {
	if codec == nil {
		codec = StdCodec
	}
	return &Materializer{codec: codec}
}

// At descends the key path through nested objects and returns the raw leaf.
func (m *Materializer) At(data json.RawMessage, path ...string) (json.RawMessage, error) {
	current := data
	for _, key := range path {
		if isNull(current) {
			return nil, errors.Errorf(errors.ErrResponseShape, "key %q: parent is null", key)
		}
		var obj map[string]json.RawMessage
		if err := m.codec.Unmarshal(current, &obj); err != nil {
			return nil, errors.WrapError(err, errors.ErrResponseShape, "key "+key+": parent is not an object")
		}
		next, ok := obj[key]
		if !ok {
			return nil, errors.Errorf(errors.ErrResponseShape, "missing key %q", key)
		}
		current = next
	}
	return current, nil
}

// Has reports whether the key path resolves to a present, non-null value.
// Mutation acknowledgements are signalled by field presence alone.
func (m *Materializer) Has(data json.RawMessage, path ...string) bool {
	leaf, err := m.At(data, path...)
	return err == nil && !isNull(leaf)
}

// Decode converts a raw leaf into v. v must be a fresh value: on error the
// caller discards it, so a half-populated object never escapes.
func (m *Materializer) Decode(raw json.RawMessage, v interface{}) error {
	if err := m.codec.Unmarshal(raw, v); err != nil {
		return errors.WrapError(err, errors.ErrResponseShape, "cannot decode payload")
	}
	return nil
}

// DecodeAt combines At and Decode.
func (m *Materializer) DecodeAt(data json.RawMessage, v interface{}, path ...string) error {
	leaf, err := m.At(data, path...)
	if err != nil {
		return err
	}
	return m.Decode(leaf, v)
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
