package yang

import (
	"bufio"
	"io"
	"strings"

	"mibk.dev/yangfmt/schema"
)

type Options uint8

const (
	// CompactTypes causes a type with no sub-statements to be printed
	// as a single statement instead of an empty block.
	CompactTypes Options = 1 << iota

	// TextSpacing separates every description, reference and other
	// quoted text block from the next statement by an empty line.
	TextSpacing

	// Colorize highlights keywords, identifiers and strings
	// with ANSI escape sequences.
	Colorize

	// Standard is the default style.
	Standard = CompactTypes
)

// Fprint prints m to w in YANG syntax.
func Fprint(w io.Writer, m *schema.Module, options Options) error {
	p := &printer{
		w:    bufio.NewWriter(w),
		mod:  m,
		opts: options,
	}
	if options&Colorize != 0 {
		p.colors = NewColors()
	}
	p.module(m)
	if p.err != nil {
		return p.err
	}
	return p.w.Flush()
}

const indentUnit = "  "

func indent(depth int) string { return strings.Repeat(indentUnit, depth) }

type printer struct {
	w      *bufio.Writer
	mod    *schema.Module
	opts   Options
	colors *Colors

	err error // sticky
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = p.w.WriteString(s)
}

// line writes s on a line of its own.
func (p *printer) line(depth int, s string) {
	p.write(indent(depth) + s + "\n")
}

// stmt writes a simple statement: keyword arg;
func (p *printer) stmt(depth int, keyword, arg string) {
	p.line(depth, p.paint(KeywordColor, keyword)+" "+arg+";")
}

// open starts a block: keyword arg {
func (p *printer) open(depth int, keyword, arg string) {
	p.line(depth, p.paint(KeywordColor, keyword)+" "+arg+" "+p.paint(BraceColor, "{"))
}

func (p *printer) close(depth int) {
	p.line(depth, p.paint(BraceColor, "}"))
}

func (p *printer) paint(attr ColorAttr, s string) string {
	return p.colors.Color(attr, s)
}

func (p *printer) ident(name string) string {
	return p.paint(IdentColor, name)
}

func (p *printer) quote(s string) string {
	return p.paint(StringColor, `"`+s+`"`)
}

// text prints a quoted text statement such as description.
// The argument starts on the line after label.
func (p *printer) text(depth int, label, text string) {
	p.line(depth, p.paint(KeywordColor, label))
	p.write(quoteText(text, depth+1, func(s string) string {
		return p.paint(StringColor, s)
	}))
	if p.opts&TextSpacing != 0 {
		p.write("\n")
	}
}

// optText is like text but prints nothing for empty text.
func (p *printer) optText(depth int, label, text string) {
	if text != "" {
		p.text(depth, label, text)
	}
}

// quoteText returns text wrapped in double quotes and terminated by
// a semicolon, with every line indented to depth. Line breaks and the
// content of each line are kept as they are; no escaping is done.
// Empty lines are not indented. If paint is not nil, it is applied to
// the content of each line.
func quoteText(text string, depth int, paint func(string) string) string {
	var b strings.Builder
	prefix := indent(depth)
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if i == 0 {
			ln = `"` + ln
		}
		if i == len(lines)-1 {
			ln += `";`
		}
		if ln != "" {
			if paint != nil {
				ln = paint(ln)
			}
			b.WriteString(prefix)
			b.WriteString(ln)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (p *printer) module(m *schema.Module) {
	const depth = 1

	p.open(0, "module", p.ident(m.Name))
	p.stmt(depth, "namespace", p.quote(m.Namespace))
	p.stmt(depth, "prefix", p.quote(m.Prefix))
	if m.Version != schema.VersionUnset {
		p.stmt(depth, "yang-version", p.quote(m.Version.String()))
	}

	for _, imp := range m.Imports {
		p.open(depth, "import", p.ident(imp.Module.Name))
		p.stmt(depth+1, "prefix", p.quote(imp.Prefix))
		if imp.RevisionDate != "" {
			p.stmt(depth+1, "revision-date", p.ident(imp.RevisionDate))
		}
		p.close(depth)
	}

	for _, inc := range m.Includes {
		if inc.RevisionDate == "" {
			p.stmt(depth, "include", p.ident(inc.Submodule.Name))
			continue
		}
		p.open(depth, "include", p.ident(inc.Submodule.Name))
		p.stmt(depth+1, "revision-date", p.ident(inc.RevisionDate))
		p.close(depth)
	}

	p.optText(depth, "organization", m.Organization)
	p.optText(depth, "contact", m.Contact)
	p.optText(depth, "description", m.Description)
	p.optText(depth, "reference", m.Reference)

	for _, rev := range m.Revisions {
		if rev.Description == "" && rev.Reference == "" {
			p.stmt(depth, "revision", p.ident(rev.Date))
			continue
		}
		p.open(depth, "revision", p.ident(rev.Date))
		p.optText(depth+1, "description", rev.Description)
		p.optText(depth+1, "reference", rev.Reference)
		p.close(depth)
	}

	for _, id := range m.Identities {
		p.identity(depth, id)
	}
	p.typedefs(depth, m.Typedefs)
	p.nodes(depth, m.Nodes, dataKinds)

	p.close(0)
}
