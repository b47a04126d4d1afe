package schema

//go:generate go tool stringer -type TypeKind -linecomment

// TypeKind is the built-in base type a Type is derived from.
type TypeKind uint8

const (
	Binary             TypeKind = iota // binary
	Bits                               // bits
	Boolean                            // boolean
	Decimal64                          // decimal64
	Empty                              // empty
	Enumeration                        // enumeration
	IdentityRef                        // identityref
	InstanceIdentifier                 // instance-identifier
	Int8                               // int8
	Int16                              // int16
	Int32                              // int32
	Int64                              // int64
	Leafref                            // leafref
	String                             // string
	Uint8                              // uint8
	Uint16                             // uint16
	Uint32                             // uint32
	Uint64                             // uint64
	Union                              // union
)

const NumTypeKinds = int(Union) + 1

// ParseTypeKind returns the kind of the built-in type called name.
func ParseTypeKind(name string) (TypeKind, bool) {
	for k := TypeKind(0); int(k) < NumTypeKinds; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// IsInteger reports whether k is one of the int and uint kinds.
func (k TypeKind) IsInteger() bool {
	switch k {
	case Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64:
		return true
	}
	return false
}

var builtins [NumTypeKinds]*Typedef

func init() {
	for k := range builtins {
		kind := TypeKind(k)
		builtins[k] = &Typedef{
			Name: kind.String(),
			Type: Type{Kind: kind},
		}
	}
}

// Builtin returns the definition of the built-in type of kind k.
// Built-in definitions belong to no module and must not be modified.
func Builtin(k TypeKind) *Typedef { return builtins[k] }

// Type is a type reference as it appears in a leaf, leaf-list or typedef.
type Type struct {
	// Kind is the built-in base of the type, after following
	// all typedefs.
	Kind TypeKind

	// Der is the definition the type names directly.
	Der *Typedef

	// Prefix is the prefix the type was referenced with,
	// if it comes from another module.
	Prefix string

	// Info holds the restrictions and sub-statements of the type.
	// It is nil when the reference adds none.
	Info TypeInfo
}

// TypeInfo is the kind-specific part of a Type. The implementations are
// *EnumInfo, *IdentityRefInfo, *BitsInfo, *LeafrefInfo, *UnionInfo,
// *Decimal64Info, *Restrictions and *InstanceIdentifierInfo.
type TypeInfo interface {
	isTypeInfo()
}

type EnumInfo struct {
	Values []*Enum
}

type Enum struct {
	Name  string
	Value int32
	Meta
}

type IdentityRefInfo struct {
	Base *Identity
}

type BitsInfo struct {
	Bits []*Bit
}

type Bit struct {
	Name     string
	Position uint32
	Meta
}

type LeafrefInfo struct {
	Path string

	// RequireInstance is nil unless the statement is given.
	RequireInstance *bool
}

type UnionInfo struct {
	Types []*Type
}

type Decimal64Info struct {
	FractionDigits int
	Range          string
}

// Restrictions covers the integer kinds, string and binary.
type Restrictions struct {
	Range    string
	Length   string
	Patterns []string
}

type InstanceIdentifierInfo struct {
	RequireInstance *bool
}

func (*EnumInfo) isTypeInfo()               {}
func (*IdentityRefInfo) isTypeInfo()        {}
func (*BitsInfo) isTypeInfo()               {}
func (*LeafrefInfo) isTypeInfo()            {}
func (*UnionInfo) isTypeInfo()              {}
func (*Decimal64Info) isTypeInfo()          {}
func (*Restrictions) isTypeInfo()           {}
func (*InstanceIdentifierInfo) isTypeInfo() {}
