package gatenet

import "fmt"

// TokenType identifies the category of a scanned token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	// Punctuation. Newlines are significant: they terminate the
	// INPUTS/OUTPUTS lists and separate component statements.
	NEWLINE
	COMMA
	LPAREN
	RPAREN

	// Structural keywords
	INPUTS
	OUTPUTS
	IN
	OUT
	SUBCIRCUIT
	END

	// Gate keywords
	AND
	OR
	NOT
	NAND
	NOR
	XOR
	XNOR

	IDENTIFIER // signal, instance, or subcircuit name
)

var tokenNames = [...]string{
	EOF:        "EOF",
	NEWLINE:    "NEWLINE",
	COMMA:      "COMMA",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	INPUTS:     "INPUTS",
	OUTPUTS:    "OUTPUTS",
	IN:         "IN",
	OUT:        "OUT",
	SUBCIRCUIT: "SUBCIRCUIT",
	END:        "END",
	AND:        "AND",
	OR:         "OR",
	NOT:        "NOT",
	NAND:       "NAND",
	NOR:        "NOR",
	XOR:        "XOR",
	XNOR:       "XNOR",
	IDENTIFIER: "IDENTIFIER",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// keywords maps the case-folded source text of a keyword to its TokenType.
// Keyword matching is case-insensitive; the scanner upper-cases the scanned
// word before the lookup.
var keywords = map[string]TokenType{
	"INPUTS":     INPUTS,
	"OUTPUTS":    OUTPUTS,
	"IN":         IN,
	"OUT":        OUT,
	"SUBCIRCUIT": SUBCIRCUIT,
	"END":        END,
	"AND":        AND,
	"OR":         OR,
	"NOT":        NOT,
	"NAND":       NAND,
	"NOR":        NOR,
	"XOR":        XOR,
	"XNOR":       XNOR,
}

// Token is a single lexical unit produced by the Scanner. Text is set only
// for IDENTIFIER tokens and preserves the original source case.
type Token struct {
	Type TokenType
	Text string
}

func (t Token) String() string {
	if t.Type == IDENTIFIER {
		return fmt.Sprintf("IDENTIFIER %q", t.Text)
	}
	return t.Type.String()
}
