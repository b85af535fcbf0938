/*
Package scanner defines an interface for scanners to be used with the GILLES
parsers.

A default implementation is provided as an adapter for lexmachine, living in
sub-package `lexmach`. For testing, Replay creates a tokenizer over a fixed
list of tokens.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/gilles"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gilles.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gilles.scanner")
}

// Tokenizer is a scanner interface. Parsers pull one token at a time.
// At the end of input, NextToken returns a token of kind gilles.EOF, and
// keeps doing so on subsequent calls. Lexical failures are reported as
// errors, usually of type *LexError.
type Tokenizer interface {
	NextToken() (gilles.Token, error)
}

// --- Lexical errors --------------------------------------------------------

// LexError is returned by tokenizers for input which does not form a token.
type LexError struct {
	Line   int    // one-based line of the offending input
	Column int    // one-based column of the offending input
	Offset int    // byte offset of the offending input
	Text   string // offending input, possibly truncated
}

func (e *LexError) Error() string {
	return fmt.Sprintf("Lexical error at line %d column %d: unexpected input %q",
		e.Line, e.Column, e.Text)
}

// --- Replaying tokenizer ---------------------------------------------------

// ReplayTokenizer is a tokenizer over a fixed list of tokens. Create one
// with Replay.
type ReplayTokenizer struct {
	tokens []gilles.Token
	pos    int
	err    error
}

var _ Tokenizer = (*ReplayTokenizer)(nil)

// Replay creates a tokenizer which returns tokens in order, followed by EOF.
// Tokens without a position are placed on line 1, with their index+1 as the
// column, so diagnostics point to the offending token.
//
// If tokens already end with an EOF token, no extra EOF is appended.
func Replay(tokens ...gilles.Token) *ReplayTokenizer {
	toks := make([]gilles.Token, 0, len(tokens)+1)
	for i, t := range tokens {
		if t.Line == 0 {
			t.Line, t.Column = 1, i+1
		}
		toks = append(toks, t)
		if t.Kind == gilles.EOF {
			break
		}
	}
	if len(toks) == 0 || toks[len(toks)-1].Kind != gilles.EOF {
		toks = append(toks, gilles.MakeToken(gilles.EOF, "", 1, len(toks)+1))
	}
	return &ReplayTokenizer{tokens: toks}
}

// ReplayKinds is a shortcut for replaying tokens with kinds only. Tokens
// carrying a value get a lexeme derived from their kind.
func ReplayKinds(kinds ...gilles.TerminalKind) *ReplayTokenizer {
	tokens := make([]gilles.Token, len(kinds))
	for i, k := range kinds {
		tokens[i] = gilles.Token{Kind: k, Lexeme: sampleLexeme(k)}
	}
	return Replay(tokens...)
}

func sampleLexeme(k gilles.TerminalKind) string {
	switch k {
	case gilles.PROGNAME:
		return "P"
	case gilles.VARNAME:
		return "x"
	case gilles.NUMBER:
		return "1"
	case gilles.EOF:
		return ""
	}
	return k.Display()
}

// FailWith makes the tokenizer return err instead of EOF, once all tokens
// have been delivered.
func (rt *ReplayTokenizer) FailWith(err error) *ReplayTokenizer {
	rt.err = err
	rt.tokens = rt.tokens[:len(rt.tokens)-1]
	return rt
}

// NextToken is part of interface Tokenizer.
func (rt *ReplayTokenizer) NextToken() (gilles.Token, error) {
	if rt.pos >= len(rt.tokens) {
		if rt.err != nil {
			return gilles.Token{}, rt.err
		}
		return rt.tokens[len(rt.tokens)-1], nil // EOF, repeatedly
	}
	t := rt.tokens[rt.pos]
	rt.pos++
	tracer().Debugf("replay token %s at %s", t, t.Position())
	return t, nil
}

// Delivered returns the number of tokens handed out so far.
func (rt *ReplayTokenizer) Delivered() int {
	return rt.pos
}
