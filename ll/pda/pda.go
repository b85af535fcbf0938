/*
Package pda provides a table-driven LL(1) parser for GILLES.

Where package predictive uses the call stack of Go as the pushdown store,
this parser keeps an explicit stack of grammar symbols and drives it from
the parse table of package ll:

    TOS is a terminal a:      match a against the look-ahead, pop
    TOS is a non-terminal N:  pop N, push the RHS of table[N, look-ahead] reversed

Both parsers accept the same language, trace the same rules in the same
order, and build identical parse trees. They report identical errors: the
expected set of a failing non-terminal is its table row, which is the union
of its predict sets. A non-terminal with a single production starting with
a terminal is expanded without consulting the table, as the
recursive-descent parser does. All others dispatch on the look-ahead.

Usage

    p, err := pda.NewParser(tokenizer, pda.WithTraceMode(ruletrace.Full))
    if err != nil {
        … // lexical error on the first token
    }
    tree, err := p.Parse()

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pda

import (
	"errors"
	"fmt"
	"os"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/gilles"
	"github.com/npillmayer/gilles/ll"
	"github.com/npillmayer/gilles/ll/parsetree"
	"github.com/npillmayer/gilles/ll/predictive"
	"github.com/npillmayer/gilles/ll/ruletrace"
	"github.com/npillmayer/gilles/ll/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gilles.parser'.
func tracer() tracing.Trace {
	return tracing.Select("gilles.parser")
}

// ErrNotLL1 is returned by NewParser if the parse table has conflicts.
var ErrNotLL1 = errors.New("parse table has conflicts")

// Parser is a table-driven LL(1) parser. Create one with NewParser.
type Parser struct {
	tok     scanner.Tokenizer
	current gilles.Token // the look-ahead
	table   *ll.Table
	stack   *arraystack.Stack // pushdown store of stackitems
	values  []*parsetree.Node // nodes waiting for their parent
	rules   *ruletrace.RuleTracer
	sink    ruletrace.Sink
	mode    ruletrace.Mode
	started bool
}

// We store grammar symbols on the stack, each remembering the
// non-terminal it has been predicted for. A production completed marker
// sits below the symbols of each RHS; when it is popped, the parse tree
// node for the production is created.
type stackitem struct {
	sym      ll.Symbol
	from     ll.NonTerminal // LHS of the production sym stems from
	complete *ll.Production // non-nil for completion markers
}

func (item stackitem) String() string {
	if item.complete != nil {
		return fmt.Sprintf("✓%d", item.complete.Number)
	}
	return item.sym.String()
}

// Option configures a parser.
type Option func(p *Parser)

// WithSink sets the sink for trace output. The default is stdout. A nil
// sink suppresses trace output.
func WithSink(sink ruletrace.Sink) Option {
	return func(p *Parser) {
		p.sink = sink
	}
}

// WithTraceMode sets the trace mode. The default is taken from the
// configuration (see ruletrace.DefaultMode).
func WithTraceMode(mode ruletrace.Mode) Option {
	return func(p *Parser) {
		p.mode = mode
	}
}

// NewParser creates a parser pulling tokens from tok. It reads the first
// token right away; a lexical error on it is returned unchanged.
func NewParser(tok scanner.Tokenizer, opts ...Option) (*Parser, error) {
	p := &Parser{
		tok:   tok,
		table: ll.LL1Table(),
		stack: arraystack.New(),
		sink:  ruletrace.WriterSink(os.Stdout),
		mode:  ruletrace.DefaultMode(),
	}
	if len(p.table.Conflicts()) > 0 {
		tracer().Errorf("LL(1)-parser not initialized")
		return nil, ErrNotLL1
	}
	for _, opt := range opts {
		opt(p)
	}
	p.rules = ruletrace.New(p.sink, p.mode)
	if err := p.consume(); err != nil {
		return nil, err
	}
	return p, nil
}

// SetTraceMode switches between NumbersOnly and Full trace output. It has
// no effect once parsing has started.
func (p *Parser) SetTraceMode(mode ruletrace.Mode) {
	if p.started {
		tracer().Errorf("cannot change trace mode of a running parser")
		return
	}
	p.mode = mode
	p.rules.SetMode(mode)
}

// Trace returns the numbers of the rules applied so far, in order.
func (p *Parser) Trace() []int {
	return p.rules.Rules()
}

// Parse parses a GILLES program, starting from <Program>. After the END of
// the program, the input must be exhausted.
//
// Parse returns the root of the parse tree, or either a *predictive.ParseError
// or the error of the tokenizer. A second call returns predictive.ErrParserUsed.
func (p *Parser) Parse() (*parsetree.Node, error) {
	if p.started {
		return nil, predictive.ErrParserUsed
	}
	p.started = true
	defer p.rules.Done()
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	p.stack.Push(stackitem{sym: ll.N(ll.Program)})
	for !p.stack.Empty() {
		top, _ := p.stack.Pop()
		item := top.(stackitem)
		tracer().Debugf("TOS = %s, look-ahead = %s", item, p.current)
		switch {
		case item.complete != nil:
			p.reduce(item.complete)
		case item.sym.IsTerminal():
			if err := p.match(item.sym.Terminal, item.from); err != nil {
				return nil, err
			}
		default:
			n := item.sym.NonTerm
			r := p.table.Rule(n, p.current.Kind)
			if rule := leadingTerminalRule(n); rule != nil {
				r = rule.Number // a mismatch will surface at the leading terminal
			}
			if r == 0 {
				return nil, p.fail(predictive.NewParseError(p.current, n, p.table.Row(n)...))
			}
			p.predict(ll.Rule(r))
		}
	}
	if p.current.Kind != gilles.EOF {
		return nil, p.fail(predictive.NewParseError(p.current, ll.NoNonTerminal, gilles.EOF))
	}
	if len(p.values) != 1 {
		panic(fmt.Sprintf("LL(1) parser left %d nodes", len(p.values)))
	}
	root := p.values[0]
	parsetree.Dump(root)
	return root, nil
}

// leadingTerminalRule returns the production of n if it is the only one and
// its RHS starts with a terminal. Such a non-terminal is expanded without
// consulting the look-ahead. Otherwise it returns nil.
func leadingTerminalRule(n ll.NonTerminal) *ll.Production {
	alts := ll.ProductionsFor(n)
	if len(alts) != 1 || alts[0].IsEpsilon() || !alts[0].RHS[0].IsTerminal() {
		return nil
	}
	return alts[0]
}

func (p *Parser) consume() error {
	t, err := p.tok.NextToken()
	if err != nil {
		tracer().Errorf("%v", err)
		return err
	}
	tracer().Debugf("look-ahead is %s at %s", t, t.Position())
	p.current = t
	return nil
}

func (p *Parser) match(k gilles.TerminalKind, from ll.NonTerminal) error {
	if p.current.Kind != k {
		return p.fail(predictive.NewParseError(p.current, from, k))
	}
	p.values = append(p.values, parsetree.Leaf(p.current))
	return p.consume()
}

// predict replaces a non-terminal by the RHS of rule. The RHS is pushed in
// reverse order, so its first symbol ends up on top of the stack.
func (p *Parser) predict(rule *ll.Production) {
	p.rules.Apply(rule)
	p.stack.Push(stackitem{complete: rule})
	if rule.IsEpsilon() {
		p.values = append(p.values, parsetree.Epsilon())
		return
	}
	for i := len(rule.RHS) - 1; i >= 0; i-- {
		p.stack.Push(stackitem{sym: rule.RHS[i], from: rule.LHS})
	}
}

// reduce collects the nodes of a completed RHS
//
//    [TOP]  Xn ... X1  ...
//
// into a parse tree node for the LHS of rule.
func (p *Parser) reduce(rule *ll.Production) {
	arity := len(rule.RHS)
	if rule.IsEpsilon() {
		arity = 1
	}
	at := len(p.values) - arity
	children := append([]*parsetree.Node(nil), p.values[at:]...)
	p.values = append(p.values[:at], parsetree.Inner(rule.LHS, children...))
}

func (p *Parser) fail(err *predictive.ParseError) error {
	tracer().Errorf("%v", err)
	return err
}
