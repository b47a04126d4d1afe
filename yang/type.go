package yang

import (
	"bufio"
	"bytes"
	"strconv"

	"mibk.dev/yangfmt/schema"
)

type body uint8

const (
	noBody body = iota + 1
	enumBody
	identityBody
	bitsBody
	leafrefBody
	unionBody
	decimalBody
	rangeBody
	stringBody
	lengthBody
	instanceBody
)

// typeBodies tells what the block of each base type kind holds.
var typeBodies = [...]body{
	schema.Binary:             lengthBody,
	schema.Bits:               bitsBody,
	schema.Boolean:            noBody,
	schema.Decimal64:          decimalBody,
	schema.Empty:              noBody,
	schema.Enumeration:        enumBody,
	schema.IdentityRef:        identityBody,
	schema.InstanceIdentifier: instanceBody,
	schema.Int8:               rangeBody,
	schema.Int16:              rangeBody,
	schema.Int32:              rangeBody,
	schema.Int64:              rangeBody,
	schema.Leafref:            leafrefBody,
	schema.String:             stringBody,
	schema.Uint8:              rangeBody,
	schema.Uint16:             rangeBody,
	schema.Uint32:             rangeBody,
	schema.Uint64:             rangeBody,
	schema.Union:              unionBody,
}

// A compile error here means typeBodies is missing a kind.
var _ = [1]struct{}{}[len(typeBodies)-schema.NumTypeKinds]

func (p *printer) typ(depth int, t *schema.Type) {
	name := p.typeName(t)
	var body []byte
	if t.Info != nil {
		body = p.render(func() { p.typeBody(depth+1, t) })
	}
	if len(body) == 0 && p.opts&CompactTypes != 0 {
		p.stmt(depth, "type", name)
		return
	}
	p.open(depth, "type", name)
	p.write(string(body))
	p.close(depth)
}

// render returns what f prints instead of writing it out.
func (p *printer) render(f func()) []byte {
	var buf bytes.Buffer
	w := p.w
	p.w = bufio.NewWriter(&buf)
	f()
	p.w.Flush() // a bytes.Buffer does not fail
	p.w = w
	return buf.Bytes()
}

// typeName returns the name of the type's definition, prefixed
// if the definition comes from another module.
func (p *printer) typeName(t *schema.Type) string {
	der := t.Der
	if der == nil {
		der = schema.Builtin(t.Kind)
	}
	if der.Module == nil || der.Module == p.mod {
		return p.ident(der.Name)
	}
	prefix := t.Prefix
	if prefix == "" {
		prefix = p.mod.PrefixFor(der.Module)
	}
	return p.ident(prefix + ":" + der.Name)
}

// identityName returns the name of id as referred to from module from.
func identityName(from *schema.Module, id *schema.Identity) string {
	if id.Module == nil || id.Module == from {
		return id.Name
	}
	return from.PrefixFor(id.Module) + ":" + id.Name
}

func (p *printer) typeBody(depth int, t *schema.Type) {
	switch typeBodies[t.Kind] {
	case noBody:
	case enumBody:
		info, ok := t.Info.(*schema.EnumInfo)
		if !ok {
			return
		}
		for _, e := range info.Values {
			p.open(depth, "enum", p.quote(e.Name))
			p.meta(depth+1, &e.Meta)
			p.stmt(depth+1, "value", strconv.FormatInt(int64(e.Value), 10))
			p.close(depth)
		}
	case identityBody:
		info, ok := t.Info.(*schema.IdentityRefInfo)
		if !ok || info.Base == nil {
			return
		}
		p.stmt(depth, "base", p.ident(identityName(p.mod, info.Base)))
	case bitsBody:
		info, ok := t.Info.(*schema.BitsInfo)
		if !ok {
			return
		}
		for _, b := range info.Bits {
			p.open(depth, "bit", p.ident(b.Name))
			p.meta(depth+1, &b.Meta)
			p.stmt(depth+1, "position", strconv.FormatUint(uint64(b.Position), 10))
			p.close(depth)
		}
	case leafrefBody:
		info, ok := t.Info.(*schema.LeafrefInfo)
		if !ok {
			return
		}
		if info.Path != "" {
			p.stmt(depth, "path", p.quote(info.Path))
		}
		p.requireInstance(depth, info.RequireInstance)
	case unionBody:
		info, ok := t.Info.(*schema.UnionInfo)
		if !ok {
			return
		}
		for _, member := range info.Types {
			p.typ(depth, member)
		}
	case decimalBody:
		info, ok := t.Info.(*schema.Decimal64Info)
		if !ok {
			return
		}
		if info.FractionDigits > 0 {
			p.stmt(depth, "fraction-digits", strconv.Itoa(info.FractionDigits))
		}
		if info.Range != "" {
			p.stmt(depth, "range", p.quote(info.Range))
		}
	case rangeBody:
		r, ok := t.Info.(*schema.Restrictions)
		if !ok {
			return
		}
		if r.Range != "" {
			p.stmt(depth, "range", p.quote(r.Range))
		}
	case lengthBody, stringBody:
		r, ok := t.Info.(*schema.Restrictions)
		if !ok {
			return
		}
		if r.Length != "" {
			p.stmt(depth, "length", p.quote(r.Length))
		}
		if typeBodies[t.Kind] == stringBody {
			for _, pat := range r.Patterns {
				p.stmt(depth, "pattern", p.quote(pat))
			}
		}
	case instanceBody:
		info, ok := t.Info.(*schema.InstanceIdentifierInfo)
		if !ok {
			return
		}
		p.requireInstance(depth, info.RequireInstance)
	}
}

func (p *printer) requireInstance(depth int, v *bool) {
	if v != nil {
		p.stmt(depth, "require-instance", strconv.FormatBool(*v))
	}
}

func (p *printer) typedefs(depth int, tpdfs []*schema.Typedef) {
	for _, td := range tpdfs {
		p.typedef(depth, td)
	}
}

func (p *printer) typedef(depth int, td *schema.Typedef) {
	p.open(depth, "typedef", p.ident(td.Name))
	p.meta(depth+1, &td.Meta)
	p.typ(depth+1, &td.Type)
	p.close(depth)
}

func (p *printer) identity(depth int, id *schema.Identity) {
	p.open(depth, "identity", p.ident(id.Name))
	p.meta(depth+1, &id.Meta)
	if id.Base != nil {
		p.stmt(depth+1, "base", p.ident(identityName(id.Module, id.Base)))
	}
	p.close(depth)
}
