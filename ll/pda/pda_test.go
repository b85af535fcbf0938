package pda

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/gilles"
	"github.com/npillmayer/gilles/ll"
	"github.com/npillmayer/gilles/ll/parsetree"
	"github.com/npillmayer/gilles/ll/predictive"
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

type outcome struct {
	tree  *parsetree.Node
	trace string
	err   error
}

func runPDA(kinds []gilles.TerminalKind) outcome {
	sink := &ruletrace.BufferSink{}
	p, err := NewParser(scanner.ReplayKinds(kinds...), WithSink(sink),
		WithTraceMode(ruletrace.NumbersOnly))
	if err != nil {
		return outcome{err: err}
	}
	tree, err := p.Parse()
	return outcome{tree, sink.String(), err}
}

func runPredictive(kinds []gilles.TerminalKind) outcome {
	sink := &ruletrace.BufferSink{}
	p, err := predictive.NewParser(scanner.ReplayKinds(kinds...), predictive.WithSink(sink),
		predictive.WithTraceMode(ruletrace.NumbersOnly))
	if err != nil {
		return outcome{err: err}
	}
	tree, err := p.Parse()
	return outcome{tree, sink.String(), err}
}

func agree(t *testing.T, label string, kinds []gilles.TerminalKind) (outcome, bool) {
	t.Helper()
	a, b := runPDA(kinds), runPredictive(kinds)
	if a.trace != b.trace {
		t.Errorf("%s: traces differ: %q vs %q", label, a.trace, b.trace)
		return a, false
	}
	if (a.tree == nil) != (b.tree == nil) || (a.tree != nil && !a.tree.Equal(b.tree)) {
		t.Errorf("%s: trees differ:\n%s\n%s", label, a.tree, b.tree)
		return a, false
	}
	if !reflect.DeepEqual(a.err, b.err) {
		t.Errorf("%s: errors differ: %v vs %v", label, a.err, b.err)
		return a, false
	}
	return a, true
}

func TestMinimalProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilles.parser")
	defer teardown()
	//
	o := runPDA([]gilles.TerminalKind{gilles.LET, gilles.PROGNAME, gilles.BE, gilles.END})
	if o.err != nil {
		t.Fatal(o.err)
	}
	if o.trace != "1 3 \n" {
		t.Errorf("Expected trace \"1 3 \\n\", is %q", o.trace)
	}
	if o.tree.String() != `Program[LET, PROGNAME("P"), BE, Code[ε], END]` {
		t.Errorf("Unexpected tree %s", o.tree)
	}
}

func TestSingleAssignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilles.parser")
	defer teardown()
	//
	o := runPDA([]gilles.TerminalKind{gilles.LET, gilles.PROGNAME, gilles.BE,
		gilles.VARNAME, gilles.ASSIGN, gilles.NUMBER, gilles.COLUMN, gilles.END})
	if o.err != nil {
		t.Fatal(o.err)
	}
	if o.trace != "1 2 4 9 10 14 21 17 13 3 \n" {
		t.Errorf("Unexpected trace %q", o.trace)
	}
	if d := parsetree.Derivation(o.tree); !reflect.DeepEqual(d, []int{1, 2, 4, 9, 10, 14, 21, 17, 13, 3}) {
		t.Errorf("Unexpected tree derivation %v", d)
	}
}

func TestMissingSeparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilles.parser")
	defer teardown()
	//
	o := runPDA([]gilles.TerminalKind{gilles.LET, gilles.PROGNAME, gilles.BE,
		gilles.VARNAME, gilles.ASSIGN, gilles.NUMBER,
		gilles.VARNAME, gilles.ASSIGN, gilles.NUMBER, gilles.COLUMN, gilles.END})
	var perr *predictive.ParseError
	if !errors.As(o.err, &perr) {
		t.Fatalf("Expected a syntax error, got %v", o.err)
	}
	if perr.Token.Column != 7 || perr.NonTerminal != ll.ProdPrime {
		t.Errorf("Expected error in column 7 in <Prod'>, got %v in %s", perr, perr.NonTerminal)
	}
	if !perr.Expects(gilles.COLUMN) || perr.Expects(gilles.VARNAME) {
		t.Errorf("Unexpected expected set %v", perr.Expected)
	}
	if o.trace != "1 2 4 9 10 14 21 \n" {
		t.Errorf("Expected partial trace to be kept, is %q", o.trace)
	}
}

func TestBadStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilles.parser")
	defer teardown()
	//
	o := runPDA([]gilles.TerminalKind{gilles.PROGNAME, gilles.PROGNAME, gilles.BE, gilles.END})
	var perr *predictive.ParseError
	if !errors.As(o.err, &perr) {
		t.Fatalf("Expected a syntax error, got %v", o.err)
	}
	if perr.NonTerminal != ll.Program || !reflect.DeepEqual(perr.Expected, []gilles.TerminalKind{gilles.LET}) {
		t.Errorf("Expected {LET} in <Program>, got %v", perr)
	}
	if o.trace != "1 \n" {
		t.Errorf("Expected rule 1 to be traced before the mismatch, trace is %q", o.trace)
	}
}

// <ExprArith>, <Prod> and <Cond> have a single production, but it starts with
// a non-terminal. A bad look-ahead must fail in them, before their rule is
// traced.
func TestSingleProductionDispatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilles.parser")
	defer teardown()
	//
	tests := []struct {
		label    string
		kinds    []gilles.TerminalKind
		trace    string
		nonterm  ll.NonTerminal
		offender gilles.TerminalKind
		column   int
	}{
		{"empty expression", []gilles.TerminalKind{gilles.LET, gilles.PROGNAME, gilles.BE,
			gilles.VARNAME, gilles.ASSIGN, gilles.COLUMN, gilles.END},
			"1 2 4 9 \n", ll.ExprArith, gilles.COLUMN, 6},
		{"empty condition", []gilles.TerminalKind{gilles.LET, gilles.PROGNAME, gilles.BE,
			gilles.WHILE, gilles.LBRACK, gilles.RBRACK, gilles.REPEAT, gilles.END,
			gilles.COLUMN, gilles.END},
			"1 2 6 25 \n", ll.Cond, gilles.RBRACK, 6},
		{"empty factor", []gilles.TerminalKind{gilles.LET, gilles.PROGNAME, gilles.BE,
			gilles.VARNAME, gilles.ASSIGN, gilles.NUMBER, gilles.PLUS, gilles.COLUMN, gilles.END},
			"1 2 4 9 10 14 21 17 11 \n", ll.Prod, gilles.COLUMN, 8},
	}
	for _, test := range tests {
		o, ok := agree(t, test.label, test.kinds)
		if !ok {
			continue
		}
		if o.trace != test.trace {
			t.Errorf("%s: expected trace %q, is %q", test.label, test.trace, o.trace)
		}
		var perr *predictive.ParseError
		if !errors.As(o.err, &perr) {
			t.Errorf("%s: expected a syntax error, got %v", test.label, o.err)
			continue
		}
		if perr.NonTerminal != test.nonterm || perr.Token.Kind != test.offender ||
			perr.Token.Column != test.column {
			t.Errorf("%s: expected %s at column %d in %s, got %s at column %d in %s",
				test.label, test.offender, test.column, test.nonterm,
				perr.Token.Kind, perr.Token.Column, perr.NonTerminal)
		}
		if !reflect.DeepEqual(perr.Expected, ll.LL1Table().Row(test.nonterm)) {
			t.Errorf("%s: expected set %v differs from table row", test.label, perr.Expected)
		}
	}
}

func TestTrailingInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilles.parser")
	defer teardown()
	//
	o := runPDA([]gilles.TerminalKind{gilles.LET, gilles.PROGNAME, gilles.BE, gilles.END, gilles.VARNAME})
	var perr *predictive.ParseError
	if !errors.As(o.err, &perr) || !reflect.DeepEqual(perr.Expected, []gilles.TerminalKind{gilles.EOF}) {
		t.Errorf("Expected EOF to be expected, got %v", o.err)
	}
}

func TestLexErrorPropagates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilles.parser")
	defer teardown()
	//
	lexerr := &scanner.LexError{Line: 1, Column: 2, Offset: 1, Text: "#"}
	p, err := NewParser(scanner.ReplayKinds(gilles.LET).FailWith(lexerr), WithSink(nil))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = p.Parse(); err != lexerr {
		t.Errorf("Expected lexical error to propagate unchanged, got %v", err)
	}
	if _, err = p.Parse(); err != predictive.ErrParserUsed {
		t.Errorf("Expected second call to Parse to fail")
	}
}

func TestFullTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilles.parser")
	defer teardown()
	//
	sink := &ruletrace.BufferSink{}
	p, _ := NewParser(scanner.ReplayKinds(gilles.LET, gilles.PROGNAME, gilles.BE, gilles.END),
		WithSink(sink))
	p.SetTraceMode(ruletrace.Full)
	if _, err := p.Parse(); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(sink.String(), "\n"), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[1], "   [3]  <Code>") {
		t.Errorf("Unexpected full trace:\n%s", sink.String())
	}
}

func TestAgreementOnRandomPrograms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilles.parser")
	defer teardown()
	defer quiet()()
	//
	gen := sentences.NewGenerator(2022)
	for i := 0; i < 200; i++ {
		s := gen.Next()
		o, ok := agree(t, "Program", s.Kinds)
		if ok && o.err != nil {
			t.Errorf("Program #%d %v not accepted: %v", i, s.Kinds, o.err)
		}
		if ok && o.err == nil && !reflect.DeepEqual(parsetree.Derivation(o.tree), s.Derivation) {
			t.Errorf("Program #%d: tree does not reflect the generating derivation", i)
		}
	}
}

func TestAgreementOnMutatedPrograms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilles.parser")
	defer teardown()
	defer quiet()()
	//
	gen := sentences.NewGenerator(7)
	rejected := 0
	for i := 0; i < 300; i++ {
		mutated := gen.Mutate(gen.Next().Kinds)
		if o, ok := agree(t, "Mutation", mutated); ok && o.err != nil {
			rejected++
		}
	}
	if rejected == 0 {
		t.Errorf("Expected some mutations to be rejected")
	}
}
