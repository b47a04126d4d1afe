package modelfile

import (
	"math"
	"slices"
	"strings"

	"mibk.dev/yangfmt/schema"
)

// A scope holds the typedefs declared at one level of the tree.
type scope struct {
	parent   *scope
	typedefs map[string]*typedef
}

func (s *scope) lookup(name string) *typedef {
	for ; s != nil; s = s.parent {
		if td, ok := s.typedefs[name]; ok {
			return td
		}
	}
	return nil
}

// resolve resolves the typedefs declared by docs in declaration order.
func (s *scope) resolve(docs []*typedefDoc) error {
	for _, d := range docs {
		if err := s.typedefs[d.Name].resolve(); err != nil {
			return err
		}
	}
	return nil
}

type resolveState uint8

const (
	unresolved resolveState = iota
	resolving
	resolved
)

// typedef is a typedef whose type is resolved on first use.
type typedef struct {
	def   *schema.Typedef
	doc   *typedefDoc
	owner *module
	scope *scope
	path  string
	state resolveState
}

func (t *typedef) resolve() error {
	switch t.state {
	case resolved:
		return nil
	case resolving:
		return t.owner.errorf(t.path, ErrInvalid, "typedef %s derives from itself", t.def.Name)
	}
	t.state = resolving
	typ, err := t.owner.resolveType(t.scope, t.path, t.doc.Type)
	if err != nil {
		return err
	}
	t.def.Type = typ
	t.state = resolved
	return nil
}

func (m *module) declareScope(parent *scope, pathPrefix string, docs []*typedefDoc) (*scope, []*schema.Typedef, error) {
	sc := &scope{parent: parent, typedefs: make(map[string]*typedef)}
	var defs []*schema.Typedef
	for _, d := range docs {
		path := pathPrefix + "typedef " + d.Name
		if d.Name == "" {
			return nil, nil, m.errorf(pathPrefix+"typedef", ErrInvalid, "missing name")
		}
		if _, ok := schema.ParseTypeKind(d.Name); ok {
			return nil, nil, m.errorf(path, ErrInvalid, "typedef shadows a built-in type")
		}
		if _, dup := sc.typedefs[d.Name]; dup {
			return nil, nil, m.errorf(path, ErrInvalid, "typedef declared twice")
		}
		meta, err := m.meta(path, d.meta())
		if err != nil {
			return nil, nil, err
		}
		def := &schema.Typedef{Name: d.Name, Module: m.mod, Meta: meta}
		sc.typedefs[d.Name] = &typedef{
			def:   def,
			doc:   d,
			owner: m,
			scope: sc,
			path:  path,
		}
		defs = append(defs, def)
	}
	return sc, defs, nil
}

// resolveType resolves the type reference d made from scope sc.
func (m *module) resolveType(sc *scope, path string, d *typeDoc) (schema.Type, error) {
	var t schema.Type
	if d == nil || d.Name == "" {
		return t, m.errorf(path, ErrInvalid, "missing type")
	}
	owner, name, err := m.lookup(path, d.Name)
	if err != nil {
		return t, err
	}

	if k, ok := schema.ParseTypeKind(d.Name); ok {
		if k == schema.Decimal64 && (d.FractionDigits < 1 || d.FractionDigits > 18) {
			return t, m.errorf(path, ErrInvalid, "decimal64 needs fraction-digits in 1..18, got %d", d.FractionDigits)
		}
		t.Kind, t.Der = k, schema.Builtin(k)
	} else {
		var td *typedef
		if owner == m {
			td = sc.lookup(name)
		} else {
			td = owner.scope.typedefs[name]
		}
		if td == nil {
			return t, m.errorf(path, ErrUnresolved, "unknown type %q", d.Name)
		}
		if err := td.resolve(); err != nil {
			return t, err
		}
		t.Kind, t.Der = td.def.Type.Kind, td.def
		if owner != m {
			t.Prefix, _, _ = strings.Cut(d.Name, ":")
		}
	}

	t.Info, err = m.typeInfo(sc, path, t.Kind, d)
	return t, err
}

// typeFields lists the restrictions each base type takes.
func typeFields(k schema.TypeKind) []string {
	switch k {
	case schema.Enumeration:
		return []string{"enums"}
	case schema.IdentityRef:
		return []string{"base"}
	case schema.Bits:
		return []string{"bits"}
	case schema.Leafref:
		return []string{"path", "require-instance"}
	case schema.Union:
		return []string{"types"}
	case schema.Decimal64:
		return []string{"fraction-digits", "range"}
	case schema.String:
		return []string{"length", "patterns"}
	case schema.Binary:
		return []string{"length"}
	case schema.InstanceIdentifier:
		return []string{"require-instance"}
	}
	if k.IsInteger() {
		return []string{"range"}
	}
	return nil
}

func (m *module) typeInfo(sc *scope, path string, k schema.TypeKind, d *typeDoc) (schema.TypeInfo, error) {
	fields := d.fields()
	if len(fields) == 0 {
		return nil, nil
	}
	for _, f := range fields {
		if !slices.Contains(typeFields(k), f) {
			return nil, m.errorf(path, ErrInvalid, "type %s does not take %s", d.Name, f)
		}
	}

	switch k {
	case schema.Enumeration:
		return m.enums(path, d.Enums)
	case schema.IdentityRef:
		base, err := m.identity(path, d.Base)
		if err != nil {
			return nil, err
		}
		return &schema.IdentityRefInfo{Base: base}, nil
	case schema.Bits:
		return m.bits(path, d.Bits)
	case schema.Leafref:
		return &schema.LeafrefInfo{Path: d.Path, RequireInstance: d.RequireInstance}, nil
	case schema.Union:
		info := new(schema.UnionInfo)
		for _, member := range d.Types {
			typ, err := m.resolveType(sc, path, member)
			if err != nil {
				return nil, err
			}
			info.Types = append(info.Types, &typ)
		}
		return info, nil
	case schema.Decimal64:
		if _, builtin := schema.ParseTypeKind(d.Name); !builtin && d.FractionDigits != 0 {
			return nil, m.errorf(path, ErrInvalid, "type %s: fraction-digits can only be set on the built-in decimal64", d.Name)
		}
		return &schema.Decimal64Info{FractionDigits: d.FractionDigits, Range: d.Range}, nil
	case schema.InstanceIdentifier:
		return &schema.InstanceIdentifierInfo{RequireInstance: d.RequireInstance}, nil
	}
	return &schema.Restrictions{Range: d.Range, Length: d.Length, Patterns: d.Patterns}, nil
}

// enums assigns values to the enums that have none, counting up
// from the highest value so far.
func (m *module) enums(path string, docs []*enumDoc) (*schema.EnumInfo, error) {
	info := new(schema.EnumInfo)
	seen := make(map[string]bool)
	used := make(map[int32]bool)
	next := int64(0)
	for _, d := range docs {
		if d.Name == "" || seen[d.Name] {
			return nil, m.errorf(path, ErrInvalid, "bad or duplicate enum name %q", d.Name)
		}
		seen[d.Name] = true
		meta, err := m.meta(path, d.meta())
		if err != nil {
			return nil, err
		}
		var v int32
		switch {
		case d.Value != nil:
			v = *d.Value
		case next > math.MaxInt32:
			return nil, m.errorf(path, ErrInvalid, "enum %s: no value left after %d", d.Name, int32(math.MaxInt32))
		default:
			v = int32(next)
		}
		if used[v] {
			return nil, m.errorf(path, ErrInvalid, "enum %s: value %d already used", d.Name, v)
		}
		used[v] = true
		if int64(v) >= next {
			next = int64(v) + 1
		}
		info.Values = append(info.Values, &schema.Enum{Name: d.Name, Value: v, Meta: meta})
	}
	return info, nil
}

func (m *module) bits(path string, docs []*bitDoc) (*schema.BitsInfo, error) {
	info := new(schema.BitsInfo)
	seen := make(map[string]bool)
	used := make(map[uint32]bool)
	next := uint64(0)
	for _, d := range docs {
		if d.Name == "" || seen[d.Name] {
			return nil, m.errorf(path, ErrInvalid, "bad or duplicate bit name %q", d.Name)
		}
		seen[d.Name] = true
		meta, err := m.meta(path, d.meta())
		if err != nil {
			return nil, err
		}
		var pos uint32
		switch {
		case d.Position != nil:
			pos = *d.Position
		case next > math.MaxUint32:
			return nil, m.errorf(path, ErrInvalid, "bit %s: no position left after %d", d.Name, uint32(math.MaxUint32))
		default:
			pos = uint32(next)
		}
		if used[pos] {
			return nil, m.errorf(path, ErrInvalid, "bit %s: position %d already used", d.Name, pos)
		}
		used[pos] = true
		if uint64(pos) >= next {
			next = uint64(pos) + 1
		}
		info.Bits = append(info.Bits, &schema.Bit{Name: d.Name, Position: pos, Meta: meta})
	}
	return info, nil
}
