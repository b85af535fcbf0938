package predictive

import (
	"fmt"

	"github.com/npillmayer/gilles"
	"github.com/npillmayer/gilles/ll"
)

// ParseError is returned for input which does not conform to the GILLES
// grammar.
type ParseError struct {
	Token       gilles.Token          // the offending look-ahead
	NonTerminal ll.NonTerminal        // non-terminal being expanded, if any
	Expected    []gilles.TerminalKind // acceptable kinds, sorted
}

// NewParseError creates a parse error for look-ahead tok. Expected kinds are
// sorted and de-duplicated.
func NewParseError(tok gilles.Token, n ll.NonTerminal, expected ...gilles.TerminalKind) *ParseError {
	return &ParseError{
		Token:       tok,
		NonTerminal: n,
		Expected:    ll.NewKindSet(expected...).Kinds(),
	}
}

func (e *ParseError) Error() string {
	var exp string
	if len(e.Expected) == 1 {
		exp = e.Expected[0].String()
	} else {
		exp = "one of " + ll.NewKindSet(e.Expected...).String()
	}
	return fmt.Sprintf("Syntax error at line %d column %d: expected %s, got %s",
		e.Token.Line, e.Token.Column, exp, e.Token)
}

// Expects is a predicate: is k among the expected kinds?
func (e *ParseError) Expects(k gilles.TerminalKind) bool {
	for _, x := range e.Expected {
		if x == k {
			return true
		}
	}
	return false
}
