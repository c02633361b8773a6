package gatenet

import (
	"strings"
	"unicode"
)

// Scanner turns source text into tokens one call at a time. The cursor only
// moves forward; the parser keeps its own single token of lookahead.
type Scanner struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // 1-based line of the next rune
	col  int // 1-based column of the next rune; resets on newline
}

func NewScanner(src string) *Scanner {
	return &Scanner{src: []rune(src), line: 1, col: 1}
}

func (s *Scanner) location() Location {
	return Location{Line: s.line, Column: s.col}
}

// peek returns the rune at the current position without advancing.
func (s *Scanner) peek() rune {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

// advance consumes one rune and returns it.
func (s *Scanner) advance() rune {
	if s.pos >= len(s.src) {
		return 0
	}
	r := s.src[s.pos]
	s.pos++
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

// skipSpace discards whitespace up to but not including the next newline;
// newlines are tokens of their own.
func (s *Scanner) skipSpace() {
	for s.pos < len(s.src) {
		r := s.peek()
		if r == '\n' || !unicode.IsSpace(r) {
			break
		}
		s.advance()
	}
}

// skipLineComment discards everything from the current '#' through and
// including the next newline. The newline is swallowed, not emitted.
func (s *Scanner) skipLineComment() {
	for s.pos < len(s.src) {
		if s.advance() == '\n' {
			break
		}
	}
}

// Next returns the next token in the source. Once the cursor passes the
// last rune it returns EOF on this and every later call.
func (s *Scanner) Next() (Token, error) {
	s.skipSpace()
	loc := s.location()
	if s.pos >= len(s.src) {
		return Token{Type: EOF}, nil
	}
	r := s.peek()
	switch {
	case unicode.IsLetter(r):
		return s.scanIdent()
	case r == '#':
		s.skipLineComment()
		return s.Next()
	case r == ',':
		s.advance()
		return Token{Type: COMMA}, nil
	case r == '(':
		s.advance()
		return Token{Type: LPAREN}, nil
	case r == ')':
		s.advance()
		return Token{Type: RPAREN}, nil
	case r == '\n':
		s.advance()
		return Token{Type: NEWLINE}, nil
	}
	return Token{}, &UnexpectedCharError{Char: r, Loc: loc}
}

// scanIdent collects a maximal run of letters, digits and underscores, then
// resolves it against the keyword set. The first rune must be a letter.
func (s *Scanner) scanIdent() (Token, error) {
	loc := s.location()
	start := s.pos
	for s.pos < len(s.src) {
		r := s.peek()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		s.advance()
	}
	text := string(s.src[start:s.pos])
	if text == "" {
		return Token{}, &InvalidIdentError{Text: text, Loc: loc}
	}
	if tt, ok := keywords[strings.ToUpper(text)]; ok {
		return Token{Type: tt}, nil
	}
	return Token{Type: IDENTIFIER, Text: text}, nil
}

// ScanAll tokenizes src in full; the returned slice ends with the EOF token.
func ScanAll(src string) ([]Token, error) {
	s := NewScanner(src)
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
