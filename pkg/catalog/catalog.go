package catalog

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/zvuklib/zvuk-go/pkg/errors"
)

//go:embed operations.yaml graphql/*.graphql
var assets embed.FS

// Catalog is the immutable set of operation descriptors. It is built once
// and never mutated, so concurrent reads need no synchronization.
type Catalog struct {
	ops map[string]*Descriptor
}

type index struct {
	Operations []*Descriptor `yaml:"operations"`
}

// Load parses the YAML index and resolves each descriptor's document from
// fsys. Every validation failure here is a programming error in the shipped
// catalog, not a recoverable API condition.
func Load(fsys fs.FS, indexFile string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, indexFile)
	if err != nil {
		return nil, fmt.Errorf("read catalog index: %w", err)
	}

	var idx index
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parse catalog index: %w", err)
	}

	ops := make(map[string]*Descriptor, len(idx.Operations))
	for _, d := range idx.Operations {
		if err := validate(d); err != nil {
			return nil, fmt.Errorf("operation %q: %w", d.Name, err)
		}
		if _, dup := ops[d.Name]; dup {
			return nil, fmt.Errorf("operation %q: duplicate name", d.Name)
		}
		doc, err := fs.ReadFile(fsys, "graphql/"+d.Document)
		if err != nil {
			return nil, fmt.Errorf("operation %q: document: %w", d.Name, err)
		}
		d.Document = string(doc)
		ops[d.Name] = d
	}

	return &Catalog{ops: ops}, nil
}

func validate(d *Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("empty name")
	}
	if d.Kind != KindQuery && d.Kind != KindMutation {
		return fmt.Errorf("unknown kind %q", d.Kind)
	}
	if d.Document == "" {
		return fmt.Errorf("missing document")
	}
	if len(d.KeyPath) == 0 {
		return fmt.Errorf("empty key path")
	}
	seen := make(map[string]bool, len(d.Args))
	for _, a := range d.Args {
		if a.Name == "" {
			return fmt.Errorf("argument with empty name")
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate argument %q", a.Name)
		}
		seen[a.Name] = true
		switch a.Type {
		case ArgString, ArgInt, ArgBool, ArgID, ArgIDs, ArgItems:
		default:
			return fmt.Errorf("argument %q: unknown type %q", a.Name, a.Type)
		}
	}
	return nil
}

// Lookup returns the descriptor for name. An unknown name is a caller bug,
// reported as ErrValidation before any network traffic happens.
func (c *Catalog) Lookup(name string) (*Descriptor, error) {
	d, ok := c.ops[name]
	if !ok {
		return nil, errors.Errorf(errors.ErrValidation, "unknown operation %q", name)
	}
	return d, nil
}

// Names returns the operation names in the catalog, in no particular order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.ops))
	for n := range c.ops {
		names = append(names, n)
	}
	return names
}

// Len reports the number of operations in the catalog.
func (c *Catalog) Len() int { return len(c.ops) }

var defaultCatalog *Catalog

func init() {
	c, err := Load(assets, "operations.yaml")
	if err != nil {
		panic("catalog: " + err.Error())
	}
	defaultCatalog = c
}

// Default returns the compiled-in catalog.
func Default() *Catalog { return defaultCatalog }
