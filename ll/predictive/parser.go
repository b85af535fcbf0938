package predictive

import (
	"errors"
	"os"

	"github.com/npillmayer/gilles"
	"github.com/npillmayer/gilles/ll"
	"github.com/npillmayer/gilles/ll/parsetree"
	"github.com/npillmayer/gilles/ll/ruletrace"
	"github.com/npillmayer/gilles/ll/scanner"
)

// ErrParserUsed is returned by Parse if it is called more than once.
var ErrParserUsed = errors.New("parser has already been used")

// Parser is a recursive-descent parser for GILLES. Create one with
// NewParser.
type Parser struct {
	tok     scanner.Tokenizer
	current gilles.Token // the look-ahead
	rules   *ruletrace.RuleTracer
	sink    ruletrace.Sink
	mode    ruletrace.Mode
	started bool
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
		tok:  tok,
		sink: ruletrace.WriterSink(os.Stdout),
		mode: ruletrace.DefaultMode(),
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
// Parse returns the root of the parse tree, or either a *ParseError or the
// error of the tokenizer. In case of an error, rules traced so far remain
// in the sink.
func (p *Parser) Parse() (*parsetree.Node, error) {
	if p.started {
		return nil, ErrParserUsed
	}
	p.started = true
	defer p.rules.Done()
	root, err := p.program()
	if err != nil {
		return nil, err
	}
	if p.current.Kind != gilles.EOF {
		return nil, p.fail(NewParseError(p.current, ll.NoNonTerminal, gilles.EOF))
	}
	parsetree.Dump(root)
	return root, nil
}

// --- Look-ahead ------------------------------------------------------------

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

// match checks the look-ahead to be of kind k, captures it into a leaf and
// advances. n is the non-terminal currently expanded.
func (p *Parser) match(k gilles.TerminalKind, n ll.NonTerminal) (*parsetree.Node, error) {
	if p.current.Kind != k {
		return nil, p.fail(NewParseError(p.current, n, k))
	}
	leaf := parsetree.Leaf(p.current)
	if err := p.consume(); err != nil {
		return nil, err
	}
	return leaf, nil
}

// unexpected creates the error for a look-ahead outside of all predict
// sets of n.
func (p *Parser) unexpected(n ll.NonTerminal) error {
	return p.fail(NewParseError(p.current, n, ll.Analysis().Expected(n).Kinds()...))
}

func (p *Parser) fail(err *ParseError) error {
	tracer().Errorf("%v", err)
	return err
}

// --- Expansions ------------------------------------------------------------

// expansion collects the children of a node while the right-hand side of a
// production is parsed. The first error stops the expansion.
type expansion struct {
	p        *Parser
	lhs      ll.NonTerminal
	children []*parsetree.Node
	err      error
}

// expand reports rule to the tracer and starts an expansion for it.
func (p *Parser) expand(lhs ll.NonTerminal, rule int) *expansion {
	p.rules.Apply(ll.Rule(rule))
	return &expansion{p: p, lhs: lhs}
}

func (x *expansion) t(k gilles.TerminalKind) *expansion {
	if x.err == nil {
		var leaf *parsetree.Node
		if leaf, x.err = x.p.match(k, x.lhs); x.err == nil {
			x.children = append(x.children, leaf)
		}
	}
	return x
}

func (x *expansion) n(descend func() (*parsetree.Node, error)) *expansion {
	if x.err == nil {
		var child *parsetree.Node
		if child, x.err = descend(); x.err == nil {
			x.children = append(x.children, child)
		}
	}
	return x
}

func (x *expansion) epsilon() *expansion {
	x.children = append(x.children, parsetree.Epsilon())
	return x
}

func (x *expansion) node() (*parsetree.Node, error) {
	if x.err != nil {
		return nil, x.err
	}
	return parsetree.Inner(x.lhs, x.children...), nil
}

// --- Non-terminals ---------------------------------------------------------

// [1] <Program> → LET [ProgName] BE <Code> END
func (p *Parser) program() (*parsetree.Node, error) {
	return p.expand(ll.Program, 1).
		t(gilles.LET).t(gilles.PROGNAME).t(gilles.BE).n(p.code).t(gilles.END).
		node()
}

func (p *Parser) code() (*parsetree.Node, error) {
	switch p.current.Kind {
	case gilles.IF, gilles.WHILE, gilles.OUTPUT, gilles.INPUT, gilles.VARNAME:
		return p.expand(ll.Code, 2).n(p.instruction).t(gilles.COLUMN).n(p.code).node()
	case gilles.END, gilles.ELSE:
		return p.expand(ll.Code, 3).epsilon().node()
	}
	return nil, p.unexpected(ll.Code)
}

func (p *Parser) instruction() (*parsetree.Node, error) {
	switch p.current.Kind {
	case gilles.VARNAME:
		return p.expand(ll.Instruction, 4).n(p.assign).node()
	case gilles.IF:
		return p.expand(ll.Instruction, 5).n(p.ifStmt).node()
	case gilles.WHILE:
		return p.expand(ll.Instruction, 6).n(p.while).node()
	case gilles.OUTPUT:
		return p.expand(ll.Instruction, 7).n(p.output).node()
	case gilles.INPUT:
		return p.expand(ll.Instruction, 8).n(p.input).node()
	}
	return nil, p.unexpected(ll.Instruction)
}

// [9] <Assign> → [VarName] = <ExprArith>
func (p *Parser) assign() (*parsetree.Node, error) {
	return p.expand(ll.Assign, 9).t(gilles.VARNAME).t(gilles.ASSIGN).n(p.exprArith).node()
}

func (p *Parser) exprArith() (*parsetree.Node, error) {
	switch p.current.Kind {
	case gilles.MINUS, gilles.LPAREN, gilles.VARNAME, gilles.NUMBER:
		return p.expand(ll.ExprArith, 10).n(p.prod).n(p.exprArithPrime).node()
	}
	return nil, p.unexpected(ll.ExprArith)
}

func (p *Parser) exprArithPrime() (*parsetree.Node, error) {
	switch p.current.Kind {
	case gilles.PLUS:
		return p.expand(ll.ExprArithPrime, 11).t(gilles.PLUS).n(p.prod).n(p.exprArithPrime).node()
	case gilles.MINUS:
		return p.expand(ll.ExprArithPrime, 12).t(gilles.MINUS).n(p.prod).n(p.exprArithPrime).node()
	case gilles.COLUMN, gilles.RPAREN, gilles.RBRACK, gilles.EQUAL, gilles.SMALEQ,
		gilles.SMALLER, gilles.IMPLIES, gilles.PIPE:
		return p.expand(ll.ExprArithPrime, 13).epsilon().node()
	}
	return nil, p.unexpected(ll.ExprArithPrime)
}

func (p *Parser) prod() (*parsetree.Node, error) {
	switch p.current.Kind {
	case gilles.MINUS, gilles.LPAREN, gilles.VARNAME, gilles.NUMBER:
		return p.expand(ll.Prod, 14).n(p.atom).n(p.prodPrime).node()
	}
	return nil, p.unexpected(ll.Prod)
}

func (p *Parser) prodPrime() (*parsetree.Node, error) {
	switch p.current.Kind {
	case gilles.TIMES:
		return p.expand(ll.ProdPrime, 15).t(gilles.TIMES).n(p.atom).n(p.prodPrime).node()
	case gilles.DIV:
		return p.expand(ll.ProdPrime, 16).t(gilles.DIV).n(p.atom).n(p.prodPrime).node()
	case gilles.PLUS, gilles.MINUS, gilles.COLUMN, gilles.RPAREN, gilles.RBRACK,
		gilles.EQUAL, gilles.SMALEQ, gilles.SMALLER, gilles.IMPLIES, gilles.PIPE:
		return p.expand(ll.ProdPrime, 17).epsilon().node()
	}
	return nil, p.unexpected(ll.ProdPrime)
}

func (p *Parser) atom() (*parsetree.Node, error) {
	switch p.current.Kind {
	case gilles.MINUS:
		return p.expand(ll.Atom, 18).t(gilles.MINUS).n(p.atom).node()
	case gilles.LPAREN:
		return p.expand(ll.Atom, 19).t(gilles.LPAREN).n(p.exprArith).t(gilles.RPAREN).node()
	case gilles.VARNAME:
		return p.expand(ll.Atom, 20).t(gilles.VARNAME).node()
	case gilles.NUMBER:
		return p.expand(ll.Atom, 21).t(gilles.NUMBER).node()
	}
	return nil, p.unexpected(ll.Atom)
}

// [22] <If> → IF { <Cond> } THEN <Code> <IfTail>
func (p *Parser) ifStmt() (*parsetree.Node, error) {
	return p.expand(ll.If, 22).
		t(gilles.IF).t(gilles.LBRACK).n(p.cond).t(gilles.RBRACK).
		t(gilles.THEN).n(p.code).n(p.ifTail).
		node()
}

func (p *Parser) ifTail() (*parsetree.Node, error) {
	switch p.current.Kind {
	case gilles.END:
		return p.expand(ll.IfTail, 23).t(gilles.END).node()
	case gilles.ELSE:
		return p.expand(ll.IfTail, 24).t(gilles.ELSE).n(p.code).t(gilles.END).node()
	}
	return nil, p.unexpected(ll.IfTail)
}

// [25] <While> → WHILE { <Cond> } REPEAT <Code> END
func (p *Parser) while() (*parsetree.Node, error) {
	return p.expand(ll.While, 25).
		t(gilles.WHILE).t(gilles.LBRACK).n(p.cond).t(gilles.RBRACK).
		t(gilles.REPEAT).n(p.code).t(gilles.END).
		node()
}

// [26] <Output> → OUT ( [VarName] )
func (p *Parser) output() (*parsetree.Node, error) {
	return p.expand(ll.Output, 26).
		t(gilles.OUTPUT).t(gilles.LPAREN).t(gilles.VARNAME).t(gilles.RPAREN).
		node()
}

// [27] <Input> → IN ( [VarName] )
func (p *Parser) input() (*parsetree.Node, error) {
	return p.expand(ll.Input, 27).
		t(gilles.INPUT).t(gilles.LPAREN).t(gilles.VARNAME).t(gilles.RPAREN).
		node()
}

func (p *Parser) cond() (*parsetree.Node, error) {
	switch p.current.Kind {
	case gilles.PIPE, gilles.MINUS, gilles.LPAREN, gilles.VARNAME, gilles.NUMBER:
		return p.expand(ll.Cond, 28).n(p.simpleCond).n(p.condPrime).node()
	}
	return nil, p.unexpected(ll.Cond)
}

func (p *Parser) condPrime() (*parsetree.Node, error) {
	switch p.current.Kind {
	case gilles.IMPLIES:
		return p.expand(ll.CondPrime, 29).t(gilles.IMPLIES).n(p.cond).node()
	case gilles.RBRACK, gilles.PIPE:
		return p.expand(ll.CondPrime, 30).epsilon().node()
	}
	return nil, p.unexpected(ll.CondPrime)
}

func (p *Parser) simpleCond() (*parsetree.Node, error) {
	switch p.current.Kind {
	case gilles.PIPE:
		return p.expand(ll.SimpleCond, 31).t(gilles.PIPE).n(p.cond).t(gilles.PIPE).node()
	case gilles.MINUS, gilles.LPAREN, gilles.VARNAME, gilles.NUMBER:
		return p.expand(ll.SimpleCond, 32).n(p.exprArith).n(p.comp).n(p.exprArith).node()
	}
	return nil, p.unexpected(ll.SimpleCond)
}

func (p *Parser) comp() (*parsetree.Node, error) {
	switch p.current.Kind {
	case gilles.EQUAL:
		return p.expand(ll.Comp, 33).t(gilles.EQUAL).node()
	case gilles.SMALEQ:
		return p.expand(ll.Comp, 34).t(gilles.SMALEQ).node()
	case gilles.SMALLER:
		return p.expand(ll.Comp, 35).t(gilles.SMALLER).node()
	}
	return nil, p.unexpected(ll.Comp)
}
