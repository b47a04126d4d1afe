package yang

import (
	"strconv"
	"strings"

	"mibk.dev/yangfmt/schema"
)

var (
	// dataKinds may appear at the top level and inside containers,
	// lists and groupings.
	dataKinds = schema.Kinds(
		schema.ChoiceKind,
		schema.ContainerKind,
		schema.LeafKind,
		schema.LeafListKind,
		schema.ListKind,
		schema.UsesKind,
		schema.GroupingKind,
	)

	// caseKinds may appear directly inside a choice.
	caseKinds = schema.Kinds(
		schema.ContainerKind,
		schema.LeafKind,
		schema.LeafListKind,
		schema.ListKind,
	)
)

func (p *printer) nodes(depth int, nodes []schema.Node, allowed schema.KindSet) {
	for _, n := range nodes {
		p.node(depth, n, allowed)
	}
}

// node prints n if its kind is in allowed.
func (p *printer) node(depth int, n schema.Node, allowed schema.KindSet) {
	if p.err != nil || !allowed.Has(n.Kind()) {
		return
	}
	switch n := n.(type) {
	case *schema.Container:
		p.container(depth, n)
	case *schema.Choice:
		p.choice(depth, n)
	case *schema.Leaf:
		p.leaf(depth, n)
	case *schema.LeafList:
		p.leafList(depth, n)
	case *schema.List:
		p.list(depth, n)
	case *schema.Grouping:
		p.grouping(depth, n)
	case *schema.Uses:
		p.uses(depth, n)
	}
}

func (p *printer) container(depth int, n *schema.Container) {
	p.open(depth, "container", p.ident(n.Name))
	p.configMeta(depth+1, n)
	if n.Presence != "" {
		p.stmt(depth+1, "presence", p.quote(n.Presence))
	}
	p.typedefs(depth+1, n.Typedefs)
	p.nodes(depth+1, n.Children, dataKinds)
	p.close(depth)
}

func (p *printer) choice(depth int, n *schema.Choice) {
	p.open(depth, "choice", p.ident(n.Name))
	p.configMeta(depth+1, n)
	if n.Default != "" {
		p.stmt(depth+1, "default", p.ident(n.Default))
	}
	if n.Mandatory {
		p.stmt(depth+1, "mandatory", p.quote("true"))
	}
	p.nodes(depth+1, n.Children, caseKinds)
	p.close(depth)
}

func (p *printer) leaf(depth int, n *schema.Leaf) {
	p.open(depth, "leaf", p.ident(n.Name))
	p.configMeta(depth+1, n)
	p.typ(depth+1, &n.Type)
	if n.Units != "" {
		p.stmt(depth+1, "units", p.quote(n.Units))
	}
	if n.Default != "" {
		p.stmt(depth+1, "default", p.quote(n.Default))
	}
	if n.Mandatory {
		p.stmt(depth+1, "mandatory", p.quote("true"))
	}
	p.close(depth)
}

func (p *printer) leafList(depth int, n *schema.LeafList) {
	p.open(depth, "leaf-list", p.ident(n.Name))
	p.configMeta(depth+1, n)
	p.typ(depth+1, &n.Type)
	if n.Units != "" {
		p.stmt(depth+1, "units", p.quote(n.Units))
	}
	p.elements(depth+1, n.MinElements, n.MaxElements, n.OrderedByUser)
	p.close(depth)
}

func (p *printer) list(depth int, n *schema.List) {
	p.open(depth, "list", p.ident(n.Name))
	p.configMeta(depth+1, n)
	if len(n.Keys) > 0 {
		names := make([]string, len(n.Keys))
		for i, k := range n.Keys {
			names[i] = k.Name
		}
		p.stmt(depth+1, "key", p.quote(strings.Join(names, " ")))
	}
	p.elements(depth+1, n.MinElements, n.MaxElements, n.OrderedByUser)
	p.typedefs(depth+1, n.Typedefs)
	p.nodes(depth+1, n.Children, dataKinds)
	p.close(depth)
}

func (p *printer) elements(depth, minElems, maxElems int, userOrder bool) {
	if minElems > 0 {
		p.stmt(depth, "min-elements", strconv.Itoa(minElems))
	}
	if maxElems > 0 {
		p.stmt(depth, "max-elements", strconv.Itoa(maxElems))
	}
	if userOrder {
		p.stmt(depth, "ordered-by", "user")
	}
}

// Groupings carry no config statement.
func (p *printer) grouping(depth int, n *schema.Grouping) {
	p.open(depth, "grouping", p.ident(n.Name))
	p.meta(depth+1, &n.Meta)
	p.typedefs(depth+1, n.Typedefs)
	p.nodes(depth+1, n.Children, dataKinds)
	p.close(depth)
}

func (p *printer) uses(depth int, n *schema.Uses) {
	p.open(depth, "uses", p.ident(n.Name))
	p.meta(depth+1, &n.Meta)
	p.close(depth)
}

// configMeta prints the config statement of n, unless n inherits
// the same value from its parent, followed by the common metadata.
func (p *printer) configMeta(depth int, n schema.Node) {
	info := n.Info()
	if info.Parent == nil || info.Parent.Info().Flags&schema.ConfigMask != info.Flags&schema.ConfigMask {
		if c := info.Flags.Config(); c != schema.ConfigUnset {
			p.stmt(depth, "config", p.quote(c.String()))
		}
	}
	p.meta(depth, &info.Meta)
}

// meta prints status, description and reference.
func (p *printer) meta(depth int, m *schema.Meta) {
	if s := m.Flags.Status(); s != schema.StatusUnset {
		p.stmt(depth, "status", p.quote(s.String()))
	}
	p.optText(depth, "description", m.Description)
	p.optText(depth, "reference", m.Reference)
}
