package yang

import "github.com/fatih/color"

type ColorAttr int

const (
	KeywordColor ColorAttr = iota
	IdentColor
	StringColor
	BraceColor
)

// Colors maps the parts of the output to colouring functions.
// A nil *Colors leaves the text untouched.
type Colors struct {
	Map map[ColorAttr]func(...any) string
}

func NewColors() *Colors {
	colors := &Colors{Map: map[ColorAttr]func(...any) string{}}
	for attr, c := range map[ColorAttr]*color.Color{
		KeywordColor: color.New(color.FgBlue, color.Bold),
		IdentColor:   color.RGB(196, 96, 16),
		StringColor:  color.RGB(8, 196, 16),
		BraceColor:   color.RGB(255, 0, 196),
	} {
		// The caller decides whether colours are wanted,
		// regardless of what stdout is connected to.
		c.EnableColor()
		colors.Map[attr] = c.SprintFunc()
	}
	return colors
}

func (c *Colors) Color(attr ColorAttr, s string) string {
	if c == nil {
		return s
	}
	f := c.Map[attr]
	if f == nil {
		return s
	}
	return f(s)
}
