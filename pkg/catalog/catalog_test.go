package catalog

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/zvuklib/zvuk-go/pkg/errors"
)

func TestDefaultCatalogLoads(t *testing.T) {
	cat := Default()
	if cat == nil {
		t.Fatal("Expected compiled-in catalog, got nil")
	}
	if cat.Len() == 0 {
		t.Fatal("Expected a non-empty catalog")
	}

	// Spot-check a few descriptors the client depends on.
	cases := []struct {
		name    string
		kind    Kind
		keyPath []string
	}{
		{"getTracks", KindQuery, []string{"get_tracks"}},
		{"getTrack", KindQuery, []string{"get_track"}},
		{"createPlaylist", KindMutation, []string{"playlist", "create"}},
		{"notificationsHasUnread", KindQuery, []string{"notification", "has_unread"}},
	}
	for _, tc := range cases {
		d, err := cat.Lookup(tc.name)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", tc.name, err)
			continue
		}
		if d.Kind != tc.kind {
			t.Errorf("%s: expected kind %q, got %q", tc.name, tc.kind, d.Kind)
		}
		if len(d.KeyPath) != len(tc.keyPath) {
			t.Errorf("%s: expected key path %v, got %v", tc.name, tc.keyPath, d.KeyPath)
			continue
		}
		for i := range tc.keyPath {
			if d.KeyPath[i] != tc.keyPath[i] {
				t.Errorf("%s: expected key path %v, got %v", tc.name, tc.keyPath, d.KeyPath)
				break
			}
		}
		if !strings.Contains(d.Document, string(tc.kind)) {
			t.Errorf("%s: document does not look like a %s", tc.name, tc.kind)
		}
	}
}

func TestLookupUnknownOperation(t *testing.T) {
	_, err := Default().Lookup("frobnicate")
	if !errors.Is(err, errors.ErrValidation) {
		t.Errorf("Expected ErrValidation for unknown operation, got %v", err)
	}
}

func TestEveryDocumentResolved(t *testing.T) {
	cat := Default()
	for _, name := range cat.Names() {
		d, err := cat.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", name, err)
		}
		if strings.HasSuffix(d.Document, ".graphql") {
			t.Errorf("%s: document was not resolved to its contents", name)
		}
		if !strings.Contains(d.Document, "query") && !strings.Contains(d.Document, "mutation") {
			t.Errorf("%s: document does not contain an operation definition", name)
		}
	}
}

func TestLoadRejectsBadCatalogs(t *testing.T) {
	doc := &fstest.MapFile{Data: []byte("query probe { probe { id } }")}

	cases := []struct {
		name  string
		index string
		want  string
	}{
		{
			name: "UnknownKind",
			index: `operations:
  - {name: probe, kind: subscription, document: probe.graphql, key_path: [probe]}`,
			want: "unknown kind",
		},
		{
			name: "MissingDocumentFile",
			index: `operations:
  - {name: probe, kind: query, document: absent.graphql, key_path: [probe]}`,
			want: "document",
		},
		{
			name: "EmptyKeyPath",
			index: `operations:
  - {name: probe, kind: query, document: probe.graphql, key_path: []}`,
			want: "key path",
		},
		{
			name: "DuplicateName",
			index: `operations:
  - {name: probe, kind: query, document: probe.graphql, key_path: [probe]}
  - {name: probe, kind: query, document: probe.graphql, key_path: [probe]}`,
			want: "duplicate",
		},
		{
			name: "DuplicateArgument",
			index: `operations:
  - name: probe
    kind: query
    document: probe.graphql
    key_path: [probe]
    args:
      - {name: id, type: id, required: true}
      - {name: id, type: id}`,
			want: "duplicate argument",
		},
		{
			name: "UnknownArgType",
			index: `operations:
  - name: probe
    kind: query
    document: probe.graphql
    key_path: [probe]
    args:
      - {name: id, type: uuid}`,
			want: "unknown type",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"operations.yaml": &fstest.MapFile{Data: []byte(tc.index)},
				"graphql/probe.graphql": doc,
			}
			_, err := Load(fsys, "operations.yaml")
			if err == nil {
				t.Fatal("Expected load to fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Expected error containing %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestLoadValidCatalog(t *testing.T) {
	fsys := fstest.MapFS{
		"operations.yaml": &fstest.MapFile{Data: []byte(`operations:
  - name: probe
    kind: query
    document: probe.graphql
    key_path: [probe, nested]
    args:
      - {name: ids, type: ids, required: true}
      - {name: limit, type: int}`)},
		"graphql/probe.graphql": &fstest.MapFile{Data: []byte("query probe($ids: [ID!]!) { probe { nested } }")},
	}

	cat, err := Load(fsys, "operations.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	d, err := cat.Lookup("probe")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if d.Document != "query probe($ids: [ID!]!) { probe { nested } }" {
		t.Errorf("Unexpected document: %q", d.Document)
	}
	arg, ok := d.Arg("limit")
	if !ok {
		t.Fatal("Expected limit argument to be declared")
	}
	if arg.Required {
		t.Error("Expected limit to be optional")
	}
}
