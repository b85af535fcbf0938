package gilleslang

import (
	"github.com/npillmayer/gilles/ll/parsetree"
	"github.com/npillmayer/gilles/ll/pda"
	"github.com/npillmayer/gilles/ll/predictive"
	"github.com/npillmayer/gilles/ll/ruletrace"
)

// Parse parses a GILLES program with the recursive-descent parser. It
// returns the parse tree, or a *scanner.LexError or *predictive.ParseError.
//
// Rule trace output goes to stdout unless redirected by an option.
func Parse(input string, opts ...predictive.Option) (*parsetree.Node, error) {
	scan, err := Scanner(input)
	if err != nil {
		return nil, err
	}
	p, err := predictive.NewParser(scan, opts...)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// ParseWithTable parses a GILLES program with the table-driven parser of
// package pda. Results are identical to those of Parse.
func ParseWithTable(input string, opts ...pda.Option) (*parsetree.Node, error) {
	scan, err := Scanner(input)
	if err != nil {
		return nil, err
	}
	p, err := pda.NewParser(scan, opts...)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// Trace parses a GILLES program and returns the numbers of the rules
// applied, without any trace output. On failure, the rules applied up to
// the error are returned together with the error.
func Trace(input string) ([]int, error) {
	scan, err := Scanner(input)
	if err != nil {
		return nil, err
	}
	p, err := predictive.NewParser(scan, predictive.WithSink(nil),
		predictive.WithTraceMode(ruletrace.NumbersOnly))
	if err != nil {
		return nil, err
	}
	_, err = p.Parse()
	return p.Trace(), err
}
