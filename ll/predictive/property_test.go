package predictive

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/gilles"
	"github.com/npillmayer/gilles/ll"
	"github.com/npillmayer/gilles/ll/parsetree"
	"github.com/npillmayer/gilles/ll/ruletrace"
	"github.com/npillmayer/gilles/ll/scanner"
	"github.com/npillmayer/gilles/ll/sentences"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func quiet() func() {
	t := tracing.Select("gilles.parser")
	level := t.GetTraceLevel()
	t.SetTraceLevel(tracing.LevelError)
	return func() { t.SetTraceLevel(level) }
}

func parseKinds(kinds []gilles.TerminalKind) (*parsetree.Node, []int, *scanner.ReplayTokenizer, error) {
	tok := scanner.ReplayKinds(kinds...)
	p, err := NewParser(tok, WithSink(nil))
	if err != nil {
		return nil, nil, tok, err
	}
	tree, err := p.Parse()
	return tree, p.Trace(), tok, err
}

func TestRandomProgramsAreAccepted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilles.parser")
	defer teardown()
	defer quiet()()
	//
	gen := sentences.NewGenerator(1234)
	for i := 0; i < 200; i++ {
		s := gen.Next()
		kinds, rules := s.Kinds, s.Derivation
		tree, trace, _, err := parseKinds(kinds)
		if err != nil {
			t.Fatalf("Program #%d %v not accepted: %v", i, kinds, err)
		}
		if !reflect.DeepEqual(trace, rules) {
			t.Errorf("Program #%d: trace %v differs from generating derivation %v", i, trace, rules)
		}
		if d := parsetree.Derivation(tree); !reflect.DeepEqual(d, trace) {
			t.Errorf("Program #%d: tree derivation %v differs from trace %v", i, d, trace)
		}
		var leaves []gilles.TerminalKind
		for _, tok := range tree.Tokens() {
			leaves = append(leaves, tok.Kind)
		}
		if !reflect.DeepEqual(leaves, kinds) {
			t.Errorf("Program #%d: leaves %v do not reproduce input %v", i, leaves, kinds)
		}
	}
}

func TestDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilles.parser")
	defer teardown()
	defer quiet()()
	//
	gen := sentences.NewGenerator(99)
	for i := 0; i < 50; i++ {
		kinds := gen.Next().Kinds
		tree1, trace1, _, err1 := parseKinds(kinds)
		tree2, trace2, _, err2 := parseKinds(kinds)
		if err1 != nil || err2 != nil {
			t.Fatalf("Program #%d not accepted: %v, %v", i, err1, err2)
		}
		if !reflect.DeepEqual(trace1, trace2) {
			t.Errorf("Program #%d: traces differ", i)
		}
		if tree1.Fingerprint() != tree2.Fingerprint() || !tree1.Equal(tree2) {
			t.Errorf("Program #%d: trees differ", i)
		}
	}
}

// Mutating a valid program by dropping or replacing a token either yields
// another valid program, or an error located at the look-ahead.
func TestErrorLocality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilles.parser")
	defer teardown()
	defer quiet()()
	//
	gen := sentences.NewGenerator(4711)
	failures := 0
	for i := 0; i < 300; i++ {
		mutated := gen.Mutate(gen.Next().Kinds)
		_, _, tok, err := parseKinds(mutated)
		if err == nil {
			continue
		}
		failures++
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("Expected a syntax error, got %v", err)
		}
		// the look-ahead is the last token delivered
		if perr.Token.Column != tok.Delivered() {
			t.Errorf("Mutation #%d: error reported at column %d, look-ahead is token %d",
				i, perr.Token.Column, tok.Delivered())
		}
		if perr.Expects(perr.Token.Kind) {
			t.Errorf("Mutation #%d: offending token %s is in expected set %v",
				i, perr.Token, perr.Expected)
		}
		if perr.Token.Kind != gilles.EOF && mutated[perr.Token.Column-1] != perr.Token.Kind {
			t.Errorf("Mutation #%d: error token %s is not at input position %d",
				i, perr.Token, perr.Token.Column)
		}
	}
	if failures == 0 {
		t.Errorf("Expected some mutations to be rejected")
	}
}

// The hand-written dispatch must agree with the LL(1) table computed from
// the grammar.
func TestDispatchAgreesWithTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilles.parser")
	defer teardown()
	defer quiet()()
	//
	table := ll.LL1Table()
	for _, n := range ll.NonTerminals() {
		method := dispatchOf(n)
		for _, la := range gilles.Terminals() {
			p := &Parser{
				tok:     scanner.ReplayKinds(),
				current: gilles.Token{Kind: la},
				rules:   ruletrace.New(nil, ruletrace.NumbersOnly),
			}
			_, _ = method(p)
			trace := p.Trace()
			rule := table.Rule(n, la)
			if rule == 0 {
				if len(trace) > 0 && len(ll.ProductionsFor(n)) > 1 {
					t.Errorf("(%s, %s): dispatch chose rule %d, table has none", n, la, trace[0])
				}
				continue
			}
			if len(trace) == 0 || trace[0] != rule {
				t.Errorf("(%s, %s): expected dispatch to rule %d, trace is %v", n, la, rule, trace)
			}
		}
	}
}

func dispatchOf(n ll.NonTerminal) func(*Parser) (*parsetree.Node, error) {
	return map[ll.NonTerminal]func(*Parser) (*parsetree.Node, error){
		ll.Program:        (*Parser).program,
		ll.Code:           (*Parser).code,
		ll.Instruction:    (*Parser).instruction,
		ll.Assign:         (*Parser).assign,
		ll.If:             (*Parser).ifStmt,
		ll.IfTail:         (*Parser).ifTail,
		ll.While:          (*Parser).while,
		ll.Output:         (*Parser).output,
		ll.Input:          (*Parser).input,
		ll.ExprArith:      (*Parser).exprArith,
		ll.ExprArithPrime: (*Parser).exprArithPrime,
		ll.Prod:           (*Parser).prod,
		ll.ProdPrime:      (*Parser).prodPrime,
		ll.Atom:           (*Parser).atom,
		ll.Cond:           (*Parser).cond,
		ll.CondPrime:      (*Parser).condPrime,
		ll.SimpleCond:     (*Parser).simpleCond,
		ll.Comp:           (*Parser).comp,
	}[n]
}
