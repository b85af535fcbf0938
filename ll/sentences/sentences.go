/*
Package sentences generates random sentences of the GILLES grammar, together
with the leftmost derivation producing them. It is used to test parsers
against each other and against the grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sentences

import (
	"math/rand"

	"github.com/npillmayer/gilles"
	"github.com/npillmayer/gilles/ll"
)

// Rules which lead out of recursion, used once a derivation gets too deep.
var escape = map[ll.NonTerminal]int{
	ll.Code:           3,
	ll.Instruction:    8,
	ll.ExprArithPrime: 13,
	ll.ProdPrime:      17,
	ll.Atom:           21,
	ll.IfTail:         23,
	ll.CondPrime:      30,
	ll.SimpleCond:     32,
	ll.Comp:           33,
}

// DefaultDepth is the nesting depth after which derivations are steered
// towards termination.
const DefaultDepth = 5

// Sentence is a sequence of terminals derived from <Program>.
type Sentence struct {
	Kinds      []gilles.TerminalKind // the terminals, without EOF
	Derivation []int                 // rule numbers of the leftmost derivation
}

// Generator produces random sentences by random leftmost derivations.
type Generator struct {
	rnd   *rand.Rand
	depth int
}

// NewGenerator creates a generator with a fixed seed, so runs are
// reproducible.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rnd:   rand.New(rand.NewSource(seed)),
		depth: DefaultDepth,
	}
}

// Next derives a new random program.
func (g *Generator) Next() Sentence {
	s := Sentence{}
	g.derive(ll.Program, 0, &s)
	return s
}

func (g *Generator) derive(n ll.NonTerminal, depth int, s *Sentence) {
	alts := ll.ProductionsFor(n)
	r := alts[g.rnd.Intn(len(alts))]
	if depth > g.depth && len(alts) > 1 {
		r = ll.Rule(escape[n])
	}
	s.Derivation = append(s.Derivation, r.Number)
	for _, sym := range r.RHS {
		if sym.IsTerminal() {
			s.Kinds = append(s.Kinds, sym.Terminal)
		} else {
			g.derive(sym.NonTerm, depth+1, s)
		}
	}
}

// Mutate drops the token at a random position and, with a probability of
// one half, inserts a random token in its place. The result may or may not
// be a valid program.
func (g *Generator) Mutate(kinds []gilles.TerminalKind) []gilles.TerminalKind {
	if len(kinds) == 0 {
		return kinds
	}
	at := g.rnd.Intn(len(kinds))
	mutated := append([]gilles.TerminalKind(nil), kinds[:at]...)
	if g.rnd.Intn(2) == 0 {
		// any kind except EOF and ε
		mutated = append(mutated, gilles.TerminalKind(2+g.rnd.Intn(gilles.TerminalCount-2)))
	}
	return append(mutated, kinds[at+1:]...)
}
