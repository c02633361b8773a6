package gatenet

import "fmt"

// Location is a 1-based position in the source text, used for error
// reporting only; tokens themselves do not carry positions.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("line %d, column %d", l.Line, l.Column)
}

// UnexpectedCharError reports a character outside the accepted set.
type UnexpectedCharError struct {
	Char rune
	Loc  Location
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("unexpected character %q at %s", e.Char, e.Loc)
}

// InvalidIdentError reports an identifier scan that produced no characters.
// Unreachable as long as the scanner only starts one on a letter.
type InvalidIdentError struct {
	Text string
	Loc  Location
}

func (e *InvalidIdentError) Error() string {
	return fmt.Sprintf("invalid identifier %q at %s", e.Text, e.Loc)
}

// SyntaxError reports the first structural mismatch found by the parser.
// The message names the expected construct and the token actually found.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Msg
}
