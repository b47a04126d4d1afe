package schema_test

import (
	"testing"

	"mibk.dev/yangfmt/schema"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind schema.Kind
		want string
	}{
		{schema.ContainerKind, "container"},
		{schema.LeafListKind, "leaf-list"},
		{schema.UsesKind, "uses"},
		{schema.Kind(42), "Kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestKindSet(t *testing.T) {
	s := schema.Kinds(schema.LeafKind, schema.ListKind)
	for k := schema.ContainerKind; k <= schema.UsesKind; k++ {
		want := k == schema.LeafKind || k == schema.ListKind
		if got := s.Has(k); got != want {
			t.Errorf("Has(%v) = %v, want %v", k, got, want)
		}
	}
}

func TestFlags(t *testing.T) {
	tests := []struct {
		flags  schema.Flags
		status schema.Status
		config schema.Config
	}{
		{0, schema.StatusUnset, schema.ConfigUnset},
		{schema.StatusDeprecated | schema.ConfigRead, schema.Deprecated, schema.ConfigFalse},
		{schema.StatusObsolete | schema.StatusCurrent, schema.Current, schema.ConfigUnset},
		{schema.StatusObsolete | schema.StatusDeprecated | schema.ConfigWrite, schema.Deprecated, schema.ConfigTrue},
	}
	for _, tt := range tests {
		if got := tt.flags.Status(); got != tt.status {
			t.Errorf("%b: status %v, want %v", tt.flags, got, tt.status)
		}
		if got := tt.flags.Config(); got != tt.config {
			t.Errorf("%b: config %v, want %v", tt.flags, got, tt.config)
		}
	}

	f := schema.StatusCurrent | schema.ConfigWrite
	f = f.WithStatus(schema.Obsolete).WithConfig(schema.ConfigFalse)
	if f != schema.StatusObsolete|schema.ConfigRead {
		t.Errorf("got flags %b", f)
	}
	if f = f.WithConfig(schema.ConfigUnset); f&schema.ConfigMask != 0 {
		t.Errorf("config bits left: %b", f)
	}
}

func TestPrefixFor(t *testing.T) {
	a := &schema.Module{Name: "a", Prefix: "a"}
	b := &schema.Module{Name: "b", Prefix: "b"}
	c := &schema.Module{Name: "c", Prefix: "c"}
	a.Imports = []*schema.Import{{Module: b, Prefix: "bee"}}

	for _, tt := range []struct {
		other *schema.Module
		want  string
	}{
		{a, "a"},
		{b, "bee"},
		{c, "c"},
	} {
		if got := a.PrefixFor(tt.other); got != tt.want {
			t.Errorf("PrefixFor(%s) = %q, want %q", tt.other.Name, got, tt.want)
		}
	}
	if imp := a.Import("bee"); imp == nil || imp.Module != b {
		t.Errorf("Import(bee) = %v", imp)
	}
	if imp := a.Import("b"); imp != nil {
		t.Errorf("Import(b) = %v, want nil", imp)
	}
}

func TestParseTypeKind(t *testing.T) {
	for k := range schema.NumTypeKinds {
		kind := schema.TypeKind(k)
		got, ok := schema.ParseTypeKind(kind.String())
		if !ok || got != kind {
			t.Errorf("ParseTypeKind(%q) = %v, %v", kind, got, ok)
		}
		if def := schema.Builtin(kind); def.Name != kind.String() || def.Module != nil || def.Type.Kind != kind {
			t.Errorf("Builtin(%v) = %+v", kind, def)
		}
	}
	if _, ok := schema.ParseTypeKind("uint128"); ok {
		t.Errorf("parsed uint128")
	}
	if schema.String.IsInteger() || !schema.Uint64.IsInteger() {
		t.Errorf("IsInteger is wrong")
	}
}

func TestPath(t *testing.T) {
	c := &schema.Container{NodeInfo: schema.NodeInfo{Name: "c"}}
	l := &schema.List{NodeInfo: schema.NodeInfo{Name: "l", Parent: c}}
	leaf := &schema.Leaf{NodeInfo: schema.NodeInfo{Name: "x", Parent: l}}
	c.Children = []schema.Node{l}
	l.Children = []schema.Node{leaf}

	if got := schema.Path(leaf); got != "/c/l/x" {
		t.Errorf("Path = %q", got)
	}
	if got := schema.Children(leaf); got != nil {
		t.Errorf("leaf has children %v", got)
	}
	if got := len(schema.Children(c)); got != 1 {
		t.Errorf("container has %d children, want 1", got)
	}
}

// foreignNode looks like a node but is declared outside the package.
type foreignNode struct {
	schema.NodeInfo
}

func (*foreignNode) Kind() schema.Kind { return schema.LeafKind }

func TestNodeSetClosed(t *testing.T) {
	if _, ok := any(&foreignNode{}).(schema.Node); ok {
		t.Errorf("a type embedding NodeInfo implements Node")
	}
	for _, n := range []any{
		&schema.Container{}, &schema.Choice{}, &schema.Leaf{}, &schema.LeafList{},
		&schema.List{}, &schema.Grouping{}, &schema.Uses{},
	} {
		if _, ok := n.(schema.Node); !ok {
			t.Errorf("%T does not implement Node", n)
		}
	}
}
