package catalog

// Kind tells whether an operation is a GraphQL query or mutation.
type Kind string

const (
	KindQuery    Kind = "query"
	KindMutation Kind = "mutation"
)

// ArgType defines the wire type an operation argument must be coerced to.
type ArgType string

const (
	ArgString ArgType = "string"  // passed through as string
	ArgInt    ArgType = "int"     // integer
	ArgBool   ArgType = "bool"    // boolean
	ArgID     ArgType = "id"      // identifier, coerced to string form
	ArgIDs    ArgType = "ids"     // list of identifiers, coerced to strings
	ArgItems  ArgType = "items"   // list of {type, item_id} objects
)

// Arg declares one named parameter of an operation.
type Arg struct {
	Name     string  `yaml:"name"`
	Type     ArgType `yaml:"type"`
	Required bool    `yaml:"required,omitempty"`
}

// Descriptor is one static catalog entry: the operation name, its GraphQL
// document, the key path to the payload of interest inside the response
// data, and the declared argument shapes. Descriptors are loaded once at
// process start and shared read-only by all calls.
type Descriptor struct {
	Name     string   `yaml:"name"`
	Kind     Kind     `yaml:"kind"`
	Document string   `yaml:"document"` // file name under graphql/, replaced by contents on load
	KeyPath  []string `yaml:"key_path"`
	Args     []Arg    `yaml:"args,omitempty"`
}

// Arg returns the declared argument with the given name.
func (d *Descriptor) Arg(name string) (Arg, bool) {
	for _, a := range d.Args {
		if a.Name == name {
			return a, true
		}
	}
	return Arg{}, false
}
