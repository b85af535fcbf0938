package gilles

import (
	"fmt"
	"strconv"
)

// --- Tokens ----------------------------------------------------------------

// Token represents an input token. Tokens are produced by a scanner and
// reflect terminals of the GILLES grammar. Once matched by a parser, a token
// moves into the parse tree.
//
// An example would be a token for a variable name:
//
//    Kind   = VARNAME      // terminal category
//    Lexeme = "count"      // lexeme how it appeared in the input stream
//    Line   = 3            // one-based line of the first character
//    Column = 5            // one-based column of the first character
//    Span   = 67…72        // byte offsets in the input stream
//
type Token struct {
	Kind   TerminalKind
	Lexeme string
	Line   int
	Column int
	Span   Span
}

// MakeToken creates a token without span information.
func MakeToken(kind TerminalKind, lexeme string, line, col int) Token {
	return Token{
		Kind:   kind,
		Lexeme: lexeme,
		Line:   line,
		Column: col,
	}
}

// EpsilonToken is the sentinel token for ε-leaves of a parse tree.
// It is never produced by a scanner.
func EpsilonToken() Token {
	return Token{Kind: EPSILON, Lexeme: "ε"}
}

// Position returns "line:column" for a token.
func (t Token) Position() string {
	return strconv.Itoa(t.Line) + ":" + strconv.Itoa(t.Column)
}

// String returns a token as "KIND(lexeme)", as used in diagnostics.
func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Lexeme)
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input run. Every token
// tracks which input positions its lexeme covers, and parse tree nodes
// derive their extent from their leaves. A span denotes a start position
// and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other. A null span is
// neutral.
func (s Span) Extend(other Span) Span {
	if other.IsNull() {
		return s
	}
	if s.IsNull() {
		return other
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
