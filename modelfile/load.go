package modelfile

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"mibk.dev/yangfmt/schema"
)

type Option func(*config)

type config struct {
	strict bool
}

// Strict makes loading fail on keys the model format does not know.
func Strict() Option { return func(c *config) { c.strict = true } }

// A Bundle holds the modules loaded so far. A module may import the
// modules of earlier files and of its own file.
type Bundle struct {
	mods  map[string]*module
	order []*schema.Module
	main  *schema.Module
}

func NewBundle() *Bundle {
	return &Bundle{mods: make(map[string]*module)}
}

// Load loads the model file data into a new bundle. The name is used
// in error messages.
func Load(name string, data []byte, opts ...Option) (*Bundle, error) {
	b := NewBundle()
	if err := b.Add(name, data, opts...); err != nil {
		return nil, err
	}
	return b, nil
}

// Main returns the first module of the file added last.
func (b *Bundle) Main() *schema.Module { return b.main }

// Module returns the module called name, or nil.
func (b *Bundle) Module(name string) *schema.Module {
	if m, ok := b.mods[name]; ok {
		return m.mod
	}
	return nil
}

// Modules returns all modules in load order.
func (b *Bundle) Modules() []*schema.Module { return b.order }

// Add loads the modules of another model file into b. If loading
// fails, b is left as it was.
func (b *Bundle) Add(name string, data []byte, opts ...Option) (err error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	var decodeOpts []yaml.DecodeOption
	if cfg.strict {
		decodeOpts = append(decodeOpts, yaml.DisallowUnknownField())
	}

	var doc fileDoc
	if err := yaml.UnmarshalWithOptions(data, &doc, decodeOpts...); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if len(doc.Modules) == 0 {
		return fmt.Errorf("%s: %w: no modules", name, ErrInvalid)
	}

	var mods []*module
	defer func() {
		if err != nil {
			for _, m := range mods {
				delete(b.mods, m.mod.Name)
			}
		}
	}()
	for _, d := range doc.Modules {
		m, err := b.declare(d)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		mods = append(mods, m)
	}

	// Each step runs over all modules of the file before the next
	// one starts, so modules can refer to each other.
	steps := []func(*module) error{
		(*module).header,
		(*module).declareIdentities,
		(*module).resolveIdentities,
		(*module).declareTypedefs,
		(*module).resolveTypedefs,
		(*module).buildNodes,
	}
	for _, step := range steps {
		for _, m := range mods {
			if err := step(m); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}

	for _, m := range mods {
		b.order = append(b.order, m.mod)
	}
	b.main = mods[0].mod
	return nil
}

func (b *Bundle) declare(d *moduleDoc) (*module, error) {
	if d == nil || d.Name == "" {
		return nil, fmt.Errorf("%w: module without a name", ErrInvalid)
	}
	m := &module{
		b:   b,
		doc: d,
		mod: &schema.Module{
			Name:         d.Name,
			Namespace:    d.Namespace,
			Prefix:       d.Prefix,
			Organization: d.Organization,
			Contact:      d.Contact,
			Description:  d.Description,
			Reference:    d.Reference,
		},
	}
	if _, dup := b.mods[d.Name]; dup {
		return nil, m.errorf("", ErrInvalid, "module loaded twice")
	}
	if d.Namespace == "" {
		return nil, m.errorf("", ErrInvalid, "missing namespace")
	}
	if d.Prefix == "" {
		return nil, m.errorf("", ErrInvalid, "missing prefix")
	}
	switch d.YangVersion {
	case "":
	case "1":
		m.mod.Version = schema.Version1
	case "1.1":
		m.mod.Version = schema.Version11
	default:
		return nil, m.errorf("", ErrInvalid, "unknown yang-version %q", d.YangVersion)
	}
	b.mods[d.Name] = m
	return m, nil
}

// module is the loading state of a single module.
type module struct {
	b   *Bundle
	doc *moduleDoc
	mod *schema.Module

	identities map[string]*schema.Identity
	scope      *scope
}

func (m *module) errorf(path string, kind error, format string, args ...any) error {
	return &Error{
		Module: m.mod.Name,
		Path:   path,
		Err:    fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)),
	}
}

func (m *module) header() error {
	for _, d := range m.doc.Imports {
		path := "import " + d.Module
		dep, ok := m.b.mods[d.Module]
		if !ok || dep == m {
			return m.errorf(path, ErrUnresolved, "module %q is not loaded", d.Module)
		}
		if d.Prefix == "" {
			return m.errorf(path, ErrInvalid, "missing prefix")
		}
		if d.Prefix == m.mod.Prefix || m.mod.Import(d.Prefix) != nil {
			return m.errorf(path, ErrInvalid, "prefix %q already in use", d.Prefix)
		}
		m.mod.Imports = append(m.mod.Imports, &schema.Import{
			Module:       dep.mod,
			Prefix:       d.Prefix,
			RevisionDate: d.RevisionDate,
		})
	}
	for _, d := range m.doc.Includes {
		if d.Submodule == "" {
			return m.errorf("include", ErrInvalid, "missing submodule name")
		}
		m.mod.Includes = append(m.mod.Includes, &schema.Include{
			Submodule:    &schema.Submodule{Name: d.Submodule, BelongsTo: m.mod},
			RevisionDate: d.RevisionDate,
		})
	}
	for _, d := range m.doc.Revisions {
		if d.Date == "" {
			return m.errorf("revision", ErrInvalid, "missing date")
		}
		m.mod.Revisions = append(m.mod.Revisions, &schema.Revision{
			Date:        d.Date,
			Description: d.Description,
			Reference:   d.Reference,
		})
	}
	return nil
}

func (m *module) meta(path string, d metaDoc) (schema.Meta, error) {
	meta := schema.Meta{Description: d.Description, Reference: d.Reference}
	if d.Status != "" {
		s, ok := schema.ParseStatus(d.Status)
		if !ok {
			return meta, m.errorf(path, ErrInvalid, "unknown status %q", d.Status)
		}
		meta.Flags = meta.Flags.WithStatus(s)
	}
	return meta, nil
}

// lookup splits a possibly prefixed reference and finds the module
// the prefix stands for.
func (m *module) lookup(path, ref string) (*module, string, error) {
	prefix, name, ok := strings.Cut(ref, ":")
	if !ok {
		return m, ref, nil
	}
	if prefix == m.mod.Prefix {
		return m, name, nil
	}
	imp := m.mod.Import(prefix)
	if imp == nil {
		return nil, "", m.errorf(path, ErrUnresolved, "unknown prefix %q", prefix)
	}
	return m.b.mods[imp.Module.Name], name, nil
}

func (m *module) declareIdentities() error {
	m.identities = make(map[string]*schema.Identity)
	for _, d := range m.doc.Identities {
		path := "identity " + d.Name
		if d.Name == "" {
			return m.errorf("identity", ErrInvalid, "missing name")
		}
		if _, dup := m.identities[d.Name]; dup {
			return m.errorf(path, ErrInvalid, "identity declared twice")
		}
		meta, err := m.meta(path, d.meta())
		if err != nil {
			return err
		}
		id := &schema.Identity{Name: d.Name, Module: m.mod, Meta: meta}
		m.identities[d.Name] = id
		m.mod.Identities = append(m.mod.Identities, id)
	}
	return nil
}

func (m *module) resolveIdentities() error {
	for i, d := range m.doc.Identities {
		if d.Base == "" {
			continue
		}
		base, err := m.identity("identity "+d.Name, d.Base)
		if err != nil {
			return err
		}
		m.mod.Identities[i].Base = base
	}
	for _, id := range m.mod.Identities {
		seen := make(map[*schema.Identity]bool)
		for b := id; b != nil; b = b.Base {
			if seen[b] {
				return m.errorf("identity "+id.Name, ErrInvalid, "identity derives from itself")
			}
			seen[b] = true
		}
	}
	return nil
}

func (m *module) identity(path, ref string) (*schema.Identity, error) {
	owner, name, err := m.lookup(path, ref)
	if err != nil {
		return nil, err
	}
	id, ok := owner.identities[name]
	if !ok {
		return nil, m.errorf(path, ErrUnresolved, "unknown identity %q", ref)
	}
	return id, nil
}

func (m *module) declareTypedefs() error {
	sc, defs, err := m.declareScope(nil, "", m.doc.Typedefs)
	if err != nil {
		return err
	}
	m.scope = sc
	m.mod.Typedefs = defs
	return nil
}

func (m *module) resolveTypedefs() error {
	return m.scope.resolve(m.doc.Typedefs)
}

func (m *module) buildNodes() error {
	nodes, err := m.nodes(nil, m.scope, m.doc.Nodes)
	if err != nil {
		return err
	}
	m.mod.Nodes = nodes
	return nil
}

func (m *module) nodes(parent schema.Node, sc *scope, docs []*nodeDoc) ([]schema.Node, error) {
	var nodes []schema.Node
	seen := make(map[string]bool)
	for _, d := range docs {
		if d == nil {
			continue
		}
		n, err := m.node(parent, sc, d)
		if err != nil {
			return nil, err
		}
		if n.Kind() != schema.UsesKind {
			if name := n.Info().Name; seen[name] {
				return nil, m.errorf(schema.Path(n), ErrInvalid, "node declared twice")
			}
			seen[n.Info().Name] = true
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (m *module) node(parent schema.Node, sc *scope, d *nodeDoc) (schema.Node, error) {
	kind, name, err := d.kind()
	path := schema.Path(parent) + "/" + name
	if err != nil {
		return nil, m.errorf(path, ErrInvalid, "%v", err)
	}
	if err := d.check(kind); err != nil {
		return nil, m.errorf(path, ErrInvalid, "%v", err)
	}

	info := schema.NodeInfo{Name: name, Module: m.mod, Parent: parent}
	if info.Meta, err = m.meta(path, d.meta()); err != nil {
		return nil, err
	}
	switch {
	case d.Config != nil:
		c := schema.ConfigFalse
		if *d.Config {
			c = schema.ConfigTrue
		}
		info.Flags = info.Flags.WithConfig(c)
	case kind == schema.GroupingKind:
		// Groupings are not data; their members get no config.
	case parent != nil:
		info.Flags = info.Flags.WithConfig(parent.Info().Flags.Config())
	}

	switch kind {
	case schema.ContainerKind:
		c := &schema.Container{NodeInfo: info, Presence: d.Presence}
		c.Typedefs, c.Children, err = m.body(c, sc, path, d)
		return c, err
	case schema.ChoiceKind:
		ch := &schema.Choice{NodeInfo: info, Default: d.Default, Mandatory: d.Mandatory}
		ch.Children, err = m.nodes(ch, sc, d.Children)
		return ch, err
	case schema.LeafKind:
		typ, err := m.resolveType(sc, path, d.Type)
		if err != nil {
			return nil, err
		}
		return &schema.Leaf{
			NodeInfo:  info,
			Type:      typ,
			Units:     d.Units,
			Default:   d.Default,
			Mandatory: d.Mandatory,
		}, nil
	case schema.LeafListKind:
		typ, err := m.resolveType(sc, path, d.Type)
		if err != nil {
			return nil, err
		}
		userOrder, err := m.elements(path, d)
		if err != nil {
			return nil, err
		}
		return &schema.LeafList{
			NodeInfo:      info,
			Type:          typ,
			Units:         d.Units,
			MinElements:   d.MinElements,
			MaxElements:   d.MaxElements,
			OrderedByUser: userOrder,
		}, nil
	case schema.ListKind:
		l := &schema.List{NodeInfo: info, MinElements: d.MinElements, MaxElements: d.MaxElements}
		if l.OrderedByUser, err = m.elements(path, d); err != nil {
			return nil, err
		}
		if l.Typedefs, l.Children, err = m.body(l, sc, path, d); err != nil {
			return nil, err
		}
		l.Keys, err = m.keys(path, l, d.Key)
		return l, err
	case schema.GroupingKind:
		g := &schema.Grouping{NodeInfo: info}
		g.Typedefs, g.Children, err = m.body(g, sc, path, d)
		return g, err
	default:
		return &schema.Uses{NodeInfo: info}, nil
	}
}

// body loads the typedefs and the children of n.
func (m *module) body(n schema.Node, sc *scope, path string, d *nodeDoc) ([]*schema.Typedef, []schema.Node, error) {
	inner, defs, err := m.declareScope(sc, path+"/", d.Typedefs)
	if err != nil {
		return nil, nil, err
	}
	if err := inner.resolve(d.Typedefs); err != nil {
		return nil, nil, err
	}
	children, err := m.nodes(n, inner, d.Children)
	return defs, children, err
}

// elements checks the element bounds of d and reports
// whether it is ordered by user.
func (m *module) elements(path string, d *nodeDoc) (userOrder bool, err error) {
	if d.MinElements < 0 || d.MaxElements < 0 {
		return false, m.errorf(path, ErrInvalid, "negative element bound")
	}
	if d.MaxElements != 0 && d.MinElements > d.MaxElements {
		return false, m.errorf(path, ErrInvalid, "min-elements %d exceeds max-elements %d", d.MinElements, d.MaxElements)
	}
	switch d.OrderedBy {
	case "", "system":
		return false, nil
	case "user":
		return true, nil
	}
	return false, m.errorf(path, ErrInvalid, "unknown ordered-by %q", d.OrderedBy)
}

func (m *module) keys(path string, l *schema.List, key string) ([]*schema.Leaf, error) {
	var keys []*schema.Leaf
	for _, name := range strings.Fields(key) {
		i := slices.IndexFunc(l.Children, func(n schema.Node) bool {
			return n.Kind() == schema.LeafKind && n.Info().Name == name
		})
		if i < 0 {
			return nil, m.errorf(path, ErrUnresolved, "key %q is not a child leaf", name)
		}
		keys = append(keys, l.Children[i].(*schema.Leaf))
	}
	return keys, nil
}

var nodeKinds = []struct {
	kind schema.Kind
	name func(*nodeDoc) string
}{
	{schema.ContainerKind, func(d *nodeDoc) string { return d.Container }},
	{schema.ChoiceKind, func(d *nodeDoc) string { return d.Choice }},
	{schema.LeafKind, func(d *nodeDoc) string { return d.Leaf }},
	{schema.LeafListKind, func(d *nodeDoc) string { return d.LeafList }},
	{schema.ListKind, func(d *nodeDoc) string { return d.List }},
	{schema.GroupingKind, func(d *nodeDoc) string { return d.Grouping }},
	{schema.UsesKind, func(d *nodeDoc) string { return d.Uses }},
}

func (d *nodeDoc) kind() (kind schema.Kind, name string, err error) {
	n := 0
	for _, k := range nodeKinds {
		if s := k.name(d); s != "" {
			kind, name = k.kind, s
			n++
		}
	}
	switch n {
	case 0:
		return 0, "", errors.New("node without a kind")
	case 1:
		return kind, name, nil
	}
	return 0, name, errors.New("node of several kinds")
}

var nodeFields = map[schema.Kind][]string{
	schema.ContainerKind: {"config", "presence", "typedefs", "children"},
	schema.ChoiceKind:    {"config", "default", "mandatory", "children"},
	schema.LeafKind:      {"config", "type", "units", "default", "mandatory"},
	schema.LeafListKind:  {"config", "type", "units", "min-elements", "max-elements", "ordered-by"},
	schema.ListKind:      {"config", "key", "min-elements", "max-elements", "ordered-by", "typedefs", "children"},
	schema.GroupingKind:  {"typedefs", "children"},
	schema.UsesKind:      nil,
}

// check reports fields that do not apply to nodes of kind k.
func (d *nodeDoc) check(k schema.Kind) error {
	for _, f := range d.fields() {
		if !slices.Contains(nodeFields[k], f) {
			return fmt.Errorf("%v does not take %s", k, f)
		}
	}
	return nil
}

func (d *nodeDoc) fields() []string {
	var fields []string
	add := func(set bool, name string) {
		if set {
			fields = append(fields, name)
		}
	}
	add(d.Config != nil, "config")
	add(d.Type != nil, "type")
	add(d.Units != "", "units")
	add(d.Default != "", "default")
	add(d.Mandatory, "mandatory")
	add(d.Presence != "", "presence")
	add(d.Key != "", "key")
	add(d.MinElements != 0, "min-elements")
	add(d.MaxElements != 0, "max-elements")
	add(d.OrderedBy != "", "ordered-by")
	add(len(d.Typedefs) > 0, "typedefs")
	add(len(d.Children) > 0, "children")
	return fields
}
