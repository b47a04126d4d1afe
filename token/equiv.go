package token

import (
	"fmt"
	"io"
)

// Args returns the significant tokens of the YANG text read from r.
// Whitespace and comments are dropped, and quoted strings joined by +
// are folded into a single String token whose Text is the joined value.
// Ident and String tokens carry their Value in Text.
func Args(r io.Reader) ([]Token, error) {
	scan := NewScanner(r)
	var toks []Token
	concat := false
	for {
		tok := scan.Next()
		switch tok.Type {
		case EOF:
			if err := scan.Err(); err != nil {
				return nil, err
			}
			if concat {
				return nil, &ScanError{tok.Pos, fmt.Errorf("dangling +")}
			}
			return toks, nil
		case Whitespace, Comment:
			continue
		case Plus:
			if n := len(toks); n == 0 || toks[n-1].Type != String {
				return nil, &ScanError{tok.Pos, fmt.Errorf("unexpected +")}
			}
			concat = true
			continue
		case String:
			tok.Text = tok.Value()
			if concat {
				toks[len(toks)-1].Text += tok.Text
				concat = false
				continue
			}
		case Ident, Lbrace, Rbrace, Semicolon:
			if concat {
				return nil, &ScanError{tok.Pos, fmt.Errorf("unexpected %v after +", tok)}
			}
		case Illegal:
			return nil, &ScanError{tok.Pos, fmt.Errorf("illegal token %q", tok.Text)}
		}
		toks = append(toks, tok)
	}
}

// Equivalent reports whether the YANG texts read from a and b consist
// of the same statements with the same arguments. Layout, comments,
// quoting style and the indentation of multi-line strings are ignored.
func Equivalent(a, b io.Reader) (bool, error) {
	x, err := Args(a)
	if err != nil {
		return false, err
	}
	y, err := Args(b)
	if err != nil {
		return false, err
	}
	if len(x) != len(y) {
		return false, nil
	}
	for i := range x {
		if !sameArg(x[i], y[i]) {
			return false, nil
		}
	}
	return true, nil
}

func sameArg(a, b Token) bool {
	switch {
	case a.Type == Ident || a.Type == String:
		return (b.Type == Ident || b.Type == String) && a.Text == b.Text
	default:
		return a.Type == b.Type
	}
}
