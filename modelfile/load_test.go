package modelfile_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"mibk.dev/yangfmt/modelfile"
	"mibk.dev/yangfmt/schema"
)

const twoModules = `
modules:
- name: m1
  namespace: urn:m1
  prefix: m
  yang-version: "1.1"
  imports:
  - module: m2
    prefix: b
    revision-date: "2020-01-01"
  revisions:
  - date: "2021-02-03"
    description: Initial.
  identities:
  - name: eth
    base: "b:iface"
  typedefs:
  - name: percent
    type:
      name: uint8
      range: 0..100
  nodes:
  - container: c1
    config: true
    children:
    - leaf: l1
      type: string
    - leaf: l2
      type: "b:name"
    - leaf: p
      type: percent
    - leaf: kind
      type:
        name: identityref
        base: "b:iface"
    - list: ls
      key: k2 k1
      ordered-by: user
      children:
      - leaf: k1
        type: string
      - leaf: k2
        type: int32
  - grouping: g
    children:
    - leaf: x
      status: deprecated
      type:
        name: enumeration
        enums:
        - name: zero
        - name: ten
          value: 10
        - name: eleven
- name: m2
  namespace: urn:m2
  prefix: m2
  identities:
  - name: iface
  typedefs:
  - name: name
    type:
      name: string
      length: 1..64
`

func TestLoad(t *testing.T) {
	b, err := modelfile.Load("two.yaml", []byte(twoModules))
	if err != nil {
		t.Fatal(err)
	}
	m1, m2 := b.Module("m1"), b.Module("m2")
	if m1 == nil || m2 == nil {
		t.Fatalf("modules not found: m1=%v m2=%v", m1, m2)
	}
	if b.Main() != m1 {
		t.Errorf("Main() = %s, want m1", b.Main().Name)
	}
	if m1.Version != schema.Version11 {
		t.Errorf("version = %v, want 1.1", m1.Version)
	}
	if got := m1.PrefixFor(m2); got != "b" {
		t.Errorf("PrefixFor(m2) = %q, want b", got)
	}
	if got := m1.Imports[0].RevisionDate; got != "2020-01-01" {
		t.Errorf("import revision-date = %q", got)
	}
	if got := m1.Identities[0].Base; got != m2.Identities[0] {
		t.Errorf("identity base = %v, want m2's iface", got)
	}

	c1 := m1.Nodes[0].(*schema.Container)
	if got := c1.Flags.Config(); got != schema.ConfigTrue {
		t.Errorf("c1 config = %v, want true", got)
	}
	l1 := c1.Children[0].(*schema.Leaf)
	if l1.Parent != schema.Node(c1) || l1.Module != m1 {
		t.Errorf("l1 back-references not set")
	}
	if got := l1.Flags.Config(); got != schema.ConfigTrue {
		t.Errorf("l1 config = %v, want inherited true", got)
	}
	if l1.Type.Kind != schema.String || l1.Type.Der != schema.Builtin(schema.String) {
		t.Errorf("l1 type = %+v", l1.Type)
	}

	l2 := c1.Children[1].(*schema.Leaf)
	if l2.Type.Der != m2.Typedefs[0] || l2.Type.Prefix != "b" || l2.Type.Kind != schema.String {
		t.Errorf("l2 type = %+v", l2.Type)
	}
	if diff := cmp.Diff(m2.Typedefs[0].Type.Info, schema.TypeInfo(&schema.Restrictions{Length: "1..64"})); diff != "" {
		t.Errorf("name typedef info: (-got +want)\n%s", diff)
	}

	p := c1.Children[2].(*schema.Leaf)
	if p.Type.Der != m1.Typedefs[0] || p.Type.Kind != schema.Uint8 {
		t.Errorf("p type = %+v", p.Type)
	}

	kind := c1.Children[3].(*schema.Leaf)
	if info, ok := kind.Type.Info.(*schema.IdentityRefInfo); !ok || info.Base != m2.Identities[0] {
		t.Errorf("kind type info = %#v", kind.Type.Info)
	}

	ls := c1.Children[4].(*schema.List)
	var keys []string
	for _, k := range ls.Keys {
		keys = append(keys, k.Name)
	}
	if diff := cmp.Diff(keys, []string{"k2", "k1"}); diff != "" {
		t.Errorf("keys: (-got +want)\n%s", diff)
	}
	if !ls.OrderedByUser {
		t.Errorf("ls is not ordered by user")
	}

	g := m1.Nodes[1].(*schema.Grouping)
	x := g.Children[0].(*schema.Leaf)
	if got := x.Flags.Config(); got != schema.ConfigUnset {
		t.Errorf("grouping member config = %v, want unset", got)
	}
	if got := x.Flags.Status(); got != schema.Deprecated {
		t.Errorf("x status = %v, want deprecated", got)
	}
	var values []int32
	for _, e := range x.Type.Info.(*schema.EnumInfo).Values {
		values = append(values, e.Value)
	}
	if diff := cmp.Diff(values, []int32{0, 10, 11}); diff != "" {
		t.Errorf("enum values: (-got +want)\n%s", diff)
	}
}

func TestBundleAdd(t *testing.T) {
	b, err := modelfile.Load("base.yaml", []byte(`
modules:
- name: base
  namespace: urn:base
  prefix: base
  typedefs:
  - name: counter
    type: uint32
`))
	if err != nil {
		t.Fatal(err)
	}

	err = b.Add("bad.yaml", []byte(`
modules:
- name: bad
  namespace: urn:bad
  prefix: bad
  nodes:
  - leaf: l
    type: unknown
`))
	if !errors.Is(err, modelfile.ErrUnresolved) {
		t.Fatalf("got err %v, want ErrUnresolved", err)
	}
	if b.Module("bad") != nil {
		t.Errorf("failed module stays in the bundle")
	}

	err = b.Add("user.yaml", []byte(`
modules:
- name: user
  namespace: urn:user
  prefix: u
  imports:
  - module: base
    prefix: bs
  nodes:
  - leaf-list: hits
    type: "bs:counter"
    max-elements: 3
`))
	if err != nil {
		t.Fatal(err)
	}
	user := b.Main()
	if user.Name != "user" {
		t.Fatalf("Main() = %s, want user", user.Name)
	}
	hits := user.Nodes[0].(*schema.LeafList)
	if hits.Type.Der != b.Module("base").Typedefs[0] || hits.Type.Kind != schema.Uint32 {
		t.Errorf("hits type = %+v", hits.Type)
	}
	if hits.MaxElements != 3 {
		t.Errorf("max-elements = %d, want 3", hits.MaxElements)
	}
	if n := len(b.Modules()); n != 2 {
		t.Errorf("bundle holds %d modules, want 2", n)
	}
}

func TestLoadErrors(t *testing.T) {
	const header = `
modules:
- name: m
  namespace: urn:m
  prefix: m
`
	tests := []struct {
		name     string
		body     string
		wantErr  error
		wantPath string
	}{{
		"unknown type",
		`
  nodes:
  - leaf: l
    type: foo
`,
		modelfile.ErrUnresolved, "/l",
	}, {
		"unknown prefix",
		`
  nodes:
  - container: c
    children:
    - leaf: l
      type: "x:foo"
`,
		modelfile.ErrUnresolved, "/c/l",
	}, {
		"unknown import",
		`
  imports:
  - module: nope
    prefix: n
`,
		modelfile.ErrUnresolved, "import nope",
	}, {
		"bad key",
		`
  nodes:
  - list: ls
    key: id
    children:
    - leaf: name
      type: string
`,
		modelfile.ErrUnresolved, "/ls",
	}, {
		"typedef cycle",
		`
  typedefs:
  - name: a
    type: b
  - name: b
    type: a
`,
		modelfile.ErrInvalid, "typedef a",
	}, {
		"misplaced field",
		`
  nodes:
  - container: c
    key: k
`,
		modelfile.ErrInvalid, "/c",
	}, {
		"two kinds",
		`
  nodes:
  - container: c
    leaf: l
`,
		modelfile.ErrInvalid, "/l",
	}, {
		"restriction of other type",
		`
  nodes:
  - leaf: l
    type:
      name: string
      range: 1..2
`,
		modelfile.ErrInvalid, "/l",
	}, {
		"unknown status",
		`
  nodes:
  - leaf: l
    status: retired
    type: string
`,
		modelfile.ErrInvalid, "/l",
	}, {
		"config in grouping",
		`
  nodes:
  - grouping: g
    config: false
`,
		modelfile.ErrInvalid, "/g",
	}, {
		"leaf without type",
		`
  nodes:
  - leaf: l
`,
		modelfile.ErrInvalid, "/l",
	}, {
		"enum value overflow",
		`
  nodes:
  - leaf: l
    type:
      name: enumeration
      enums:
      - name: a
        value: 2147483647
      - name: b
`,
		modelfile.ErrInvalid, "/l",
	}, {
		"duplicate enum value",
		`
  nodes:
  - leaf: l
    type:
      name: enumeration
      enums:
      - name: a
        value: 1
      - name: b
        value: 1
`,
		modelfile.ErrInvalid, "/l",
	}, {
		"bit position overflow",
		`
  nodes:
  - leaf: l
    type:
      name: bits
      bits:
      - name: x
      - name: y
        position: 4294967295
      - name: z
`,
		modelfile.ErrInvalid, "/l",
	}, {
		"duplicate bit position",
		`
  nodes:
  - leaf: l
    type:
      name: bits
      bits:
      - name: x
        position: 3
      - name: y
      - name: z
        position: 4
`,
		modelfile.ErrInvalid, "/l",
	}, {
		"decimal64 without fraction-digits",
		`
  nodes:
  - leaf: l
    type: decimal64
`,
		modelfile.ErrInvalid, "/l",
	}, {
		"fraction-digits too large",
		`
  typedefs:
  - name: d
    type:
      name: decimal64
      fraction-digits: 19
`,
		modelfile.ErrInvalid, "typedef d",
	}, {
		"fraction-digits on derived type",
		`
  typedefs:
  - name: d
    type:
      name: decimal64
      fraction-digits: 2
  nodes:
  - leaf: l
    type:
      name: d
      fraction-digits: 3
`,
		modelfile.ErrInvalid, "/l",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := modelfile.Load("m.yaml", []byte(header+strings.TrimPrefix(tt.body, "\n")))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got err %v, want %v", err, tt.wantErr)
			}
			var e *modelfile.Error
			if !errors.As(err, &e) {
				t.Fatalf("%v is not a *modelfile.Error", err)
			}
			if e.Module != "m" || e.Path != tt.wantPath {
				t.Errorf("got module %q path %q, want m %q", e.Module, e.Path, tt.wantPath)
			}
		})
	}
}

func TestStrict(t *testing.T) {
	const data = `
modules:
- name: m
  namespace: urn:m
  prefix: m
  organisation: ACME
`
	if _, err := modelfile.Load("m.yaml", []byte(data)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := modelfile.Load("m.yaml", []byte(data), modelfile.Strict()); err == nil {
		t.Fatalf("expected an error for an unknown field")
	}
}

func TestNoModules(t *testing.T) {
	_, err := modelfile.Load("empty.yaml", []byte("modules: []\n"))
	if !errors.Is(err, modelfile.ErrInvalid) {
		t.Errorf("got err %v, want ErrInvalid", err)
	}
}

func TestNestedGroupingConfig(t *testing.T) {
	const src = `
modules:
- name: m
  namespace: urn:m
  prefix: m
  nodes:
  - container: c
    config: false
    children:
    - grouping: g
      children:
      - leaf: l
        type: string
`
	b, err := modelfile.Load("m.yaml", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	g := b.Main().Nodes[0].(*schema.Container).Children[0].(*schema.Grouping)
	if got := g.Flags.Config(); got != schema.ConfigUnset {
		t.Errorf("grouping config = %v, want unset", got)
	}
	if got := g.Children[0].Info().Flags.Config(); got != schema.ConfigUnset {
		t.Errorf("grouping member config = %v, want unset", got)
	}
}
