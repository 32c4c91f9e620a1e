package core

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// Codec abstracts the JSON implementation used by the pipeline. The fast
// codec is a drop-in knob with no behavioral difference; both sort map keys
// on marshal, which keeps assembled request bodies byte-identical for
// identical inputs.
type Codec interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

type stdCodec struct{}

func (stdCodec) Marshal(v interface{}) ([]byte, error)    { return json.Marshal(v) }
func (stdCodec) Unmarshal(d []byte, v interface{}) error  { return json.Unmarshal(d, v) }

type fastCodec struct{ api jsoniter.API }

func (c fastCodec) Marshal(v interface{}) ([]byte, error)   { return c.api.Marshal(v) }
func (c fastCodec) Unmarshal(d []byte, v interface{}) error { return c.api.Unmarshal(d, v) }

// StdCodec uses encoding/json.
var StdCodec Codec = stdCodec{}

// FastCodec uses jsoniter in its stdlib-compatible configuration.
var FastCodec Codec = fastCodec{api: jsoniter.ConfigCompatibleWithStandardLibrary}
