package schema

//go:generate go tool stringer -type Kind -linecomment

// Kind identifies the variant of a Node.
type Kind uint8

const (
	ContainerKind Kind = iota // container
	ChoiceKind                // choice
	LeafKind                  // leaf
	LeafListKind              // leaf-list
	ListKind                  // list
	GroupingKind              // grouping
	UsesKind                  // uses
)

// KindSet is a set of node kinds.
type KindSet uint16

func Kinds(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

func (s KindSet) Has(k Kind) bool { return s&(1<<k) != 0 }

// Node is a schema node. The set of implementations is closed:
// *Container, *Choice, *Leaf, *LeafList, *List, *Grouping and *Uses.
type Node interface {
	Kind() Kind
	Info() *NodeInfo
	isNode()
}

// NodeInfo holds what all nodes have in common.
type NodeInfo struct {
	Name string

	// Module and Parent are back-references. Parent is nil for
	// top-level nodes.
	Module *Module
	Parent Node

	Meta
}

func (n *NodeInfo) Info() *NodeInfo { return n }

type Container struct {
	NodeInfo
	Presence string
	Typedefs []*Typedef
	Children []Node
}

type Choice struct {
	NodeInfo
	Default   string
	Mandatory bool
	Children  []Node
}

type Leaf struct {
	NodeInfo
	Type      Type
	Units     string
	Default   string
	Mandatory bool
}

type LeafList struct {
	NodeInfo
	Type          Type
	Units         string
	MinElements   int
	MaxElements   int // 0 means unbounded
	OrderedByUser bool
}

type List struct {
	NodeInfo

	// Keys reference child leaves in declaration order.
	Keys          []*Leaf
	Typedefs      []*Typedef
	MinElements   int
	MaxElements   int
	OrderedByUser bool
	Children      []Node
}

type Grouping struct {
	NodeInfo
	Typedefs []*Typedef
	Children []Node
}

type Uses struct {
	NodeInfo
}

func (*Container) Kind() Kind { return ContainerKind }
func (*Choice) Kind() Kind    { return ChoiceKind }
func (*Leaf) Kind() Kind      { return LeafKind }
func (*LeafList) Kind() Kind  { return LeafListKind }
func (*List) Kind() Kind      { return ListKind }
func (*Grouping) Kind() Kind  { return GroupingKind }
func (*Uses) Kind() Kind      { return UsesKind }

func (*Container) isNode() {}
func (*Choice) isNode()    {}
func (*Leaf) isNode()      {}
func (*LeafList) isNode()  {}
func (*List) isNode()      {}
func (*Grouping) isNode()  {}
func (*Uses) isNode()      {}

// Children returns the child nodes of n, or nil for the variants
// that have none.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Container:
		return n.Children
	case *Choice:
		return n.Children
	case *List:
		return n.Children
	case *Grouping:
		return n.Children
	}
	return nil
}

// Typedefs returns the typedefs scoped to n.
func Typedefs(n Node) []*Typedef {
	switch n := n.(type) {
	case *Container:
		return n.Typedefs
	case *List:
		return n.Typedefs
	case *Grouping:
		return n.Typedefs
	}
	return nil
}

// Path returns the slash-separated names from the top-level
// ancestor of n down to n.
func Path(n Node) string {
	if n == nil {
		return ""
	}
	info := n.Info()
	if info.Parent == nil {
		return "/" + info.Name
	}
	return Path(info.Parent) + "/" + info.Name
}
