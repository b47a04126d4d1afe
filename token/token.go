package token

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type ScanError struct {
	Pos Pos
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("line:%v: %v", e.Pos, e.Err)
}

type Pos struct {
	Line, Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Type Type
	Text string
	Pos  Pos
}

func (t Token) String() string {
	switch t.Type {
	case EOF, Lbrace, Rbrace, Semicolon, Plus:
		return t.Type.String()
	default:
		return fmt.Sprintf("%v(%q)", t.Type, t.Text)
	}
}

//go:generate go tool stringer -type Type -linecomment

type Type uint

const (
	Illegal Type = iota
	EOF
	Whitespace
	Comment

	// Ident is an unquoted string: a keyword, an identifier
	// or any other unquoted argument.
	Ident
	String

	Lbrace    // {
	Rbrace    // }
	Semicolon // ;
	Plus      // +
)

// Value returns the string a String or Ident token stands for.
// Quotes are removed, escape sequences in double-quoted strings are
// replaced, and in multi-line double-quoted strings the whitespace
// before each line break and the indentation of the following line
// up to the column of the opening quote are removed.
func (t Token) Value() string {
	if t.Type != String || len(t.Text) < 2 {
		return t.Text
	}
	s := t.Text[1 : len(t.Text)-1]
	if t.Text[0] == '\'' {
		return s
	}

	lines := strings.Split(s, "\n")
	for i := range lines {
		if i < len(lines)-1 {
			lines[i] = strings.TrimRight(lines[i], " \t")
		}
		if i > 0 {
			lines[i] = trimIndent(lines[i], t.Pos.Column)
		}
	}
	return unescape(strings.Join(lines, "\n"))
}

// trimIndent removes at most n leading spaces or tabs from s.
func trimIndent(s string, n int) string {
	i := 0
	for i < len(s) && i < n && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[i:]
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '"', '\\':
			b.WriteByte(s[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

const eof = -1

type Scanner struct {
	r    *bufio.Reader
	done bool
	err  error

	line, col   int
	lastLineLen int
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		r:    bufio.NewReader(r),
		line: 1,
		col:  1,
	}
}

func (s *Scanner) Next() (tok Token) {
	pos := s.pos()
	tok = s.scanAny()
	switch tok.Type {
	case Lbrace, Rbrace, Semicolon, Plus:
		tok.Text = tok.Type.String()
	}
	tok.Pos = pos
	return tok
}

func (s *Scanner) Err() error { return s.err }

func (s *Scanner) errorf(format string, args ...interface{}) Token {
	if s.err == nil {
		s.err = &ScanError{s.pos(), fmt.Errorf(format, args...)}
	}
	return Token{Type: EOF}
}

func (s *Scanner) pos() Pos { return Pos{Line: s.line, Column: s.col} }

func (s *Scanner) read() rune {
	if s.done {
		return eof
	}
	r, _, err := s.r.ReadRune()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		s.done = true
		return eof
	}
	if r == '\n' {
		s.line++
		s.lastLineLen, s.col = s.col, 1
	} else {
		s.col++
	}
	return r
}

func (s *Scanner) unread() {
	if s.done {
		return
	}
	if err := s.r.UnreadRune(); err != nil {
		// UnreadRune returns an error only on invalid use.
		panic(err)
	}
	s.col--
	if s.col == 0 {
		s.col = s.lastLineLen
		s.line--
	}
}

func (s *Scanner) peek() rune {
	r := s.read()
	s.unread()
	return r
}

func (s *Scanner) scanAny() Token {
	switch r := s.read(); r {
	case eof:
		return Token{Type: EOF}
	case '/':
		switch s.peek() {
		case '/':
			s.read()
			return s.scanLineComment()
		case '*':
			s.read()
			return s.scanBlockComment()
		}
		return Token{Type: Ident, Text: "/" + s.scanUnquoted()}
	case ' ', '\t', '\r', '\n':
		s.unread()
		return s.scanWhitespace()
	case '{':
		return Token{Type: Lbrace}
	case '}':
		return Token{Type: Rbrace}
	case ';':
		return Token{Type: Semicolon}
	case '\'':
		return s.scanSingleQuoted()
	case '"':
		return s.scanDoubleQuoted()
	default:
		s.unread()
		id := s.scanUnquoted()
		if id == "+" {
			return Token{Type: Plus}
		}
		return Token{Type: Ident, Text: id}
	}
}

func (s *Scanner) scanLineComment() Token {
	var b strings.Builder
	for {
		switch r := s.read(); r {
		default:
			b.WriteRune(r)
		case '\n', eof:
			s.unread()
			return Token{Type: Comment, Text: "//" + b.String()}
		}
	}
}

func (s *Scanner) scanBlockComment() Token {
	var b strings.Builder
	for {
		switch r := s.read(); {
		default:
			b.WriteRune(r)
		case r == '*' && s.peek() == '/':
			s.read()
			return Token{Type: Comment, Text: "/*" + b.String() + "*/"}
		case r == eof:
			return s.errorf("unterminated block comment")
		}
	}
}

// scanUnquoted reads an unquoted string. It ends at whitespace,
// a quote, a brace, a semicolon or the start of a comment.
func (s *Scanner) scanUnquoted() string {
	var b strings.Builder
	for {
		if next, _ := s.r.Peek(2); len(next) == 2 && next[0] == '/' && (next[1] == '/' || next[1] == '*') {
			return b.String()
		}
		switch r := s.read(); r {
		case ' ', '\t', '\r', '\n', '"', '\'', '{', '}', ';', eof:
			s.unread()
			return b.String()
		default:
			b.WriteRune(r)
		}
	}
}

func (s *Scanner) scanWhitespace() Token {
	var b strings.Builder
	for {
		switch r := s.read(); r {
		case ' ', '\t', '\r', '\n':
			b.WriteRune(r)
		default:
			s.unread()
			return Token{Type: Whitespace, Text: b.String()}
		}
	}
}

func (s *Scanner) scanSingleQuoted() Token {
	var b strings.Builder
	for {
		r := s.read()
		switch r {
		case '\'':
			return Token{Type: String, Text: "'" + b.String() + "'"}
		case eof:
			return s.errorf("string not terminated")
		}
		b.WriteRune(r)
	}
}

func (s *Scanner) scanDoubleQuoted() Token {
	var b strings.Builder
	for {
		r := s.read()
		b.WriteRune(r)
		switch r {
		case '\\':
			b.WriteRune(s.read())
		case '"':
			return Token{Type: String, Text: `"` + b.String()}
		case eof:
			return s.errorf("string not terminated")
		}
	}
}
