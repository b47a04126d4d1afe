package schema

// Version is the value of the yang-version statement.
type Version uint8

const (
	VersionUnset Version = iota
	Version1
	Version11
)

func (v Version) String() string {
	switch v {
	case Version1:
		return "1"
	case Version11:
		return "1.1"
	default:
		return ""
	}
}

type Module struct {
	Name      string
	Namespace string
	Prefix    string
	Version   Version

	Imports  []*Import
	Includes []*Include

	Organization string
	Contact      string
	Description  string
	Reference    string

	Revisions  []*Revision
	Identities []*Identity
	Typedefs   []*Typedef

	// Nodes holds the top-level data definitions in declaration order.
	Nodes []Node
}

// PrefixFor returns the prefix under which m refers to other:
// the prefix of the matching import, or other's own prefix
// if m does not import it.
func (m *Module) PrefixFor(other *Module) string {
	if other == m {
		return m.Prefix
	}
	for _, imp := range m.Imports {
		if imp.Module == other {
			return imp.Prefix
		}
	}
	return other.Prefix
}

// Import finds the import declared with prefix.
func (m *Module) Import(prefix string) *Import {
	for _, imp := range m.Imports {
		if imp.Prefix == prefix {
			return imp
		}
	}
	return nil
}

type Import struct {
	Module       *Module
	Prefix       string
	RevisionDate string
}

type Include struct {
	Submodule    *Submodule
	RevisionDate string
}

type Submodule struct {
	Name      string
	BelongsTo *Module
}

type Revision struct {
	Date        string
	Description string
	Reference   string
}

// Meta is the metadata common to most statements.
type Meta struct {
	Flags       Flags
	Description string
	Reference   string
}

type Identity struct {
	Name   string
	Module *Module
	Meta

	// Base is nil for identities without a base.
	Base *Identity
}

type Typedef struct {
	Name string

	// Module is nil for the built-in types.
	Module *Module
	Meta

	Type Type
}
