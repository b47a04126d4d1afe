package format

import (
	"bytes"
	"fmt"

	"mibk.dev/yangfmt/token"
)

// checkSyntax reports the first place where src is not a well-formed
// sequence of YANG statements. Every statement is a keyword, at most
// one argument, and either a semicolon or a block.
func checkSyntax(filename string, src []byte) error {
	toks, err := token.Args(bytes.NewReader(src))
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	errorf := func(tok token.Token, format string, args ...any) error {
		return fmt.Errorf("%s:%v: %s", filename, tok.Pos, fmt.Sprintf(format, args...))
	}

	depth := 0
	for i := 0; i < len(toks); {
		tok := toks[i]
		if tok.Type == token.Rbrace {
			if depth == 0 {
				return errorf(tok, "unexpected }")
			}
			depth--
			i++
			continue
		}
		if tok.Type != token.Ident {
			return errorf(tok, "expected keyword, found %v", tok)
		}
		i++
		if i < len(toks) && (toks[i].Type == token.Ident || toks[i].Type == token.String) {
			i++
		}
		if i == len(toks) {
			return errorf(tok, "statement %s not terminated", tok.Text)
		}
		switch end := toks[i]; end.Type {
		case token.Semicolon:
		case token.Lbrace:
			depth++
		default:
			return errorf(end, "unexpected %v in statement %s", end, tok.Text)
		}
		i++
	}
	if depth > 0 {
		return fmt.Errorf("%s: %d unclosed blocks", filename, depth)
	}
	return nil
}
