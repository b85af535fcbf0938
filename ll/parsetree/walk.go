package parsetree

import (
	"github.com/npillmayer/gilles"
	"github.com/npillmayer/gilles/ll"
	"github.com/npillmayer/schuko/tracing"
)

// --- Derivation listener ---------------------------------------------------

// Listener is a type for walking a parse tree. Walk calls Enter for every
// internal node before its children, and Terminal for every leaf, so the
// sequence of calls follows the leftmost derivation of the tree.
type Listener interface {
	Enter(n *Node, rule *ll.Production, level int)
	Terminal(tok gilles.Token, span gilles.Span, level int)
}

// --- Tree walker -----------------------------------------------------------

// Walk traverses the tree rooted at n in pre-order, calling listener for
// every node. Walk does nothing for a nil tree.
func Walk(n *Node, listener Listener) {
	if n == nil || listener == nil {
		return
	}
	walk(n, listener, 0)
}

func walk(n *Node, listener Listener, level int) {
	if n.IsLeaf() {
		listener.Terminal(n.Token, n.Token.Span, level)
		return
	}
	listener.Enter(n, n.Production(), level)
	for _, ch := range n.Children {
		walk(ch, listener, level+1)
	}
}

// --- Derivation ------------------------------------------------------------

type derivation struct {
	rules []int
}

func (d *derivation) Enter(n *Node, rule *ll.Production, level int) {
	if rule == nil {
		tracer().Errorf("node %s does not match any grammar rule", n.Label)
		d.rules = append(d.rules, 0)
		return
	}
	d.rules = append(d.rules, rule.Number)
}

func (d *derivation) Terminal(gilles.Token, gilles.Span, int) {}

// Derivation reconstructs the sequence of rule numbers applied to produce
// the tree rooted at root. For a tree returned by a GILLES parser this is
// the leftmost derivation, and equal to the parser's rule trace. Nodes which
// match no rule of the grammar contribute a 0.
func Derivation(root *Node) []int {
	d := &derivation{}
	Walk(root, d)
	return d.rules
}

// --- Dumping ---------------------------------------------------------------

type dumper struct {
	t tracing.Trace
}

func (d dumper) Enter(n *Node, rule *ll.Production, level int) {
	d.t.Debugf("%s%s", indent(level), n.Label)
}

func (d dumper) Terminal(tok gilles.Token, span gilles.Span, level int) {
	d.t.Debugf("%s%s %s", indent(level), leafString(tok), span)
}

func indent(level int) string {
	b := make([]byte, 2*level)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// Dump writes the tree rooted at n to the tracer, one node per line,
// indented by depth. Nothing is written unless the tracer is at
// debug level.
func Dump(n *Node) {
	t := tracer()
	if t.GetTraceLevel() < tracing.LevelDebug {
		return
	}
	t.Debugf("--- parse tree ---------------------")
	Walk(n, dumper{t: t})
	t.Debugf("------------------------------------")
}

var _ Listener = &derivation{}
var _ Listener = dumper{}
