package core

import (
	"reflect"
	"strconv"

	"github.com/zvuklib/zvuk-go/pkg/catalog"
	"github.com/zvuklib/zvuk-go/pkg/errors"
)

// Assembler renders a logical operation into a GraphQL document plus a
// variables payload. Argument names are checked exactly against the
// descriptor before any network traffic: extras and missing required
// arguments are caller bugs, not API failures. Output is deterministic;
// nothing here injects timestamps or nonces.
type Assembler struct {
	cat *catalog.Catalog
}

// NewAssembler builds an Assembler over the given catalog.
func NewAssembler(cat *catalog.Catalog) *Assembler {
	return &Assembler{cat: cat}
}

// Assemble validates args against the operation descriptor and returns the
// descriptor together with the coerced variables map.
func (a *Assembler) Assemble(operation string, args map[string]interface{}) (*catalog.Descriptor, map[string]interface{}, error) {
	desc, err := a.cat.Lookup(operation)
	if err != nil {
		return nil, nil, err
	}

	for name := range args {
		if _, ok := desc.Arg(name); !ok {
			return nil, nil, errors.Errorf(errors.ErrValidation, "operation %q: unknown argument %q", operation, name)
		}
	}

	vars := make(map[string]interface{}, len(args))
	for _, decl := range desc.Args {
		value, present := args[decl.Name]
		if !present {
			if decl.Required {
				return nil, nil, errors.Errorf(errors.ErrValidation, "operation %q: missing required argument %q", operation, decl.Name)
			}
			continue
		}
		coerced, err := coerce(decl, value)
		if err != nil {
			return nil, nil, errors.WrapError(err, errors.ErrValidation, "operation "+operation+": argument "+decl.Name)
		}
		vars[decl.Name] = coerced
	}

	return desc, vars, nil
}

// coerce converts an argument value into the wire form the schema expects
// for its declared type. Identifiers in particular are always sent as
// strings, whatever numeric form the caller used.
func coerce(decl catalog.Arg, value interface{}) (interface{}, error) {
	switch decl.Type {
	case catalog.ArgID:
		return idString(value)
	case catalog.ArgIDs:
		return idStrings(value)
	case catalog.ArgString:
		s, ok := value.(string)
		if !ok {
			return nil, errors.Errorf(errors.ErrValidation, "expected string, got %T", value)
		}
		return s, nil
	case catalog.ArgInt:
		switch v := value.(type) {
		case int:
			return v, nil
		case int64:
			return v, nil
		default:
			return nil, errors.Errorf(errors.ErrValidation, "expected int, got %T", value)
		}
	case catalog.ArgBool:
		b, ok := value.(bool)
		if !ok {
			return nil, errors.Errorf(errors.ErrValidation, "expected bool, got %T", value)
		}
		return b, nil
	case catalog.ArgItems:
		if reflect.ValueOf(value).Kind() != reflect.Slice {
			return nil, errors.Errorf(errors.ErrValidation, "expected item list, got %T", value)
		}
		return value, nil
	default:
		return nil, errors.Errorf(errors.ErrValidation, "unknown argument type %q", decl.Type)
	}
}

func idString(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	default:
		return "", errors.Errorf(errors.ErrValidation, "expected identifier, got %T", value)
	}
}

func idStrings(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []int:
		out := make([]string, len(v))
		for i, id := range v {
			out[i] = strconv.Itoa(id)
		}
		return out, nil
	case []interface{}:
		out := make([]string, len(v))
		for i, id := range v {
			s, err := idString(id)
			if err != nil {
				return nil, err
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, errors.Errorf(errors.ErrValidation, "expected identifier list, got %T", value)
	}
}
