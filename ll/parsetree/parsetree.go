/*
Package parsetree implements the concrete parse tree produced by the GILLES
parsers.

A tree is built bottom-up while a parser returns from its descent: leaves
carry matched tokens, internal nodes carry the non-terminal of the applied
production, and ε productions contribute a single ε leaf. Once built, a tree
is read-only.

    Program[LET, PROGNAME("P"), BE, Code[ε], END]

Trees may be walked with a Listener, which is called in pre-order, i.e.
in the order of a leftmost derivation. Derivation replays this order to
recover the sequence of rules applied.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parsetree

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/gilles"
	"github.com/npillmayer/gilles/ll"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gilles.tree'.
func tracer() tracing.Trace {
	return tracing.Select("gilles.tree")
}

// Node is a node of a parse tree. A node is either a leaf holding a token,
// or an internal node labeled with a non-terminal and holding at least one
// child. Leaves have Label ll.NoNonTerminal.
type Node struct {
	Label    ll.NonTerminal
	Token    gilles.Token
	Children []*Node
}

// Leaf creates a leaf for a matched token.
func Leaf(tok gilles.Token) *Node {
	return &Node{Token: tok}
}

// Epsilon creates the leaf for an ε production.
func Epsilon() *Node {
	return &Node{Token: gilles.EpsilonToken()}
}

// Inner creates an internal node. It panics if no children are given, as
// every production contributes at least one child (an ε leaf for empty
// productions).
func Inner(label ll.NonTerminal, children ...*Node) *Node {
	if len(children) == 0 {
		panic(fmt.Sprintf("parse tree node %s without children", label))
	}
	return &Node{
		Label:    label,
		Children: children,
	}
}

// IsLeaf is a predicate.
func (n *Node) IsLeaf() bool {
	return n.Label == ll.NoNonTerminal
}

// IsEpsilon is a predicate: is n an ε leaf?
func (n *Node) IsEpsilon() bool {
	return n.IsLeaf() && n.Token.Kind == gilles.EPSILON
}

// Symbol returns the grammar symbol n stands for.
func (n *Node) Symbol() ll.Symbol {
	if n.IsLeaf() {
		return ll.T(n.Token.Kind)
	}
	return ll.N(n.Label)
}

// Production returns the grammar rule which produced an internal node, or
// nil for leaves.
func (n *Node) Production() *ll.Production {
	if n.IsLeaf() {
		return nil
	}
	var rhs []ll.Symbol
	if !(len(n.Children) == 1 && n.Children[0].IsEpsilon()) {
		rhs = make([]ll.Symbol, len(n.Children))
		for i, ch := range n.Children {
			rhs[i] = ch.Symbol()
		}
	}
	return ll.Lookup(n.Label, rhs)
}

// Leaves returns the leaves of n from left to right, including ε leaves.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.collectLeaves(&leaves)
	return leaves
}

func (n *Node) collectLeaves(leaves *[]*Node) {
	if n.IsLeaf() {
		*leaves = append(*leaves, n)
		return
	}
	for _, ch := range n.Children {
		ch.collectLeaves(leaves)
	}
}

// Tokens returns the matched tokens below n, without ε.
func (n *Node) Tokens() []gilles.Token {
	var toks []gilles.Token
	for _, l := range n.Leaves() {
		if !l.IsEpsilon() {
			toks = append(toks, l.Token)
		}
	}
	return toks
}

// Span returns the extent of input covered by n.
func (n *Node) Span() gilles.Span {
	if n.IsLeaf() {
		return n.Token.Span
	}
	var span gilles.Span
	for _, ch := range n.Children {
		span = span.Extend(ch.Span())
	}
	return span
}

// Height returns the number of levels of the tree rooted at n.
func (n *Node) Height() int {
	h := 0
	for _, ch := range n.Children {
		if chh := ch.Height(); chh > h {
			h = chh
		}
	}
	return h + 1
}

// String renders the tree rooted at n in bracket form, e.g.
//
//     Code[Instruction[Input[IN, LPAREN, VARNAME("x"), RPAREN]], COLUMN, Code[ε]]
//
func (n *Node) String() string {
	var b strings.Builder
	n.format(&b)
	return b.String()
}

func (n *Node) format(b *strings.Builder) {
	if n.IsLeaf() {
		b.WriteString(leafString(n.Token))
		return
	}
	b.WriteString(n.Label.Name())
	b.WriteByte('[')
	for i, ch := range n.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		ch.format(b)
	}
	b.WriteByte(']')
}

func leafString(tok gilles.Token) string {
	switch {
	case tok.Kind == gilles.EPSILON:
		return gilles.EPSILON.Display()
	case tok.Kind.HasValue():
		return fmt.Sprintf("%s(%q)", tok.Kind, tok.Lexeme)
	}
	return tok.Kind.String()
}

// Fingerprint returns a structural hash of the tree rooted at n. Trees
// with equal labels, tokens and shape have equal fingerprints.
func (n *Node) Fingerprint() string {
	h, err := structhash.Hash(n, 1)
	if err != nil {
		tracer().Errorf("cannot fingerprint parse tree: %v", err)
		return ""
	}
	return h
}

// Equal is a predicate: are n and other structurally equal?
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Label != other.Label || n.Token != other.Token || len(n.Children) != len(other.Children) {
		return false
	}
	for i, ch := range n.Children {
		if !ch.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}
