package ll

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/gilles"
)

// --- Non-terminals ---------------------------------------------------------

// NonTerminal is the label of an internal parse tree node and the left-hand
// side of a production. The set of non-terminals is closed.
type NonTerminal int

// Non-terminals of GILLES. NoNonTerminal is the zero value and labels
// nothing.
const (
	NoNonTerminal NonTerminal = iota
	Program
	Code
	Instruction
	Assign
	If
	IfTail
	While
	Output
	Input
	ExprArith
	ExprArithPrime
	Prod
	ProdPrime
	Atom
	Cond
	CondPrime
	SimpleCond
	Comp
	nonTerminalCount
)

var nonTerminalNames = [...]string{
	NoNonTerminal:  "",
	Program:        "Program",
	Code:           "Code",
	Instruction:    "Instruction",
	Assign:         "Assign",
	If:             "If",
	IfTail:         "IfTail",
	While:          "While",
	Output:         "Output",
	Input:          "Input",
	ExprArith:      "ExprArith",
	ExprArithPrime: "ExprArithPrime",
	Prod:           "Prod",
	ProdPrime:      "ProdPrime",
	Atom:           "Atom",
	Cond:           "Cond",
	CondPrime:      "CondPrime",
	SimpleCond:     "SimpleCond",
	Comp:           "Comp",
}

// pretty names drop "Prime" in favour of a tick
var prettyNames = [...]string{
	NoNonTerminal:  "<>",
	Program:        "<Program>",
	Code:           "<Code>",
	Instruction:    "<Instruction>",
	Assign:         "<Assign>",
	If:             "<If>",
	IfTail:         "<IfTail>",
	While:          "<While>",
	Output:         "<Output>",
	Input:          "<Input>",
	ExprArith:      "<ExprArith>",
	ExprArithPrime: "<ExprArith'>",
	Prod:           "<Prod>",
	ProdPrime:      "<Prod'>",
	Atom:           "<Atom>",
	Cond:           "<Cond>",
	CondPrime:      "<Cond'>",
	SimpleCond:     "<SimpleCond>",
	Comp:           "<Comp>",
}

// NonTerminalCount is the number of non-terminals, not counting NoNonTerminal.
const NonTerminalCount = int(nonTerminalCount) - 1

// NonTerminals returns all non-terminals in declaration order, starting
// with the start symbol Program.
func NonTerminals() []NonTerminal {
	nts := make([]NonTerminal, 0, NonTerminalCount)
	for n := Program; n < nonTerminalCount; n++ {
		nts = append(nts, n)
	}
	return nts
}

// IsValid is a predicate: is n a declared non-terminal?
func (n NonTerminal) IsValid() bool {
	return n > NoNonTerminal && n < nonTerminalCount
}

// Name returns the identifier-like name of n, e.g. "ExprArithPrime".
func (n NonTerminal) Name() string {
	if n < 0 || n >= nonTerminalCount {
		return "<invalid>"
	}
	return nonTerminalNames[n]
}

// String returns the pretty name of n, e.g. "<ExprArith'>".
func (n NonTerminal) String() string {
	if n < 0 || n >= nonTerminalCount {
		return "<invalid>"
	}
	return prettyNames[n]
}

// --- Grammar symbols -------------------------------------------------------

// Symbol is a grammar symbol, either a terminal or a non-terminal.
type Symbol struct {
	Terminal gilles.TerminalKind
	NonTerm  NonTerminal
}

// T wraps a terminal kind into a grammar symbol.
func T(k gilles.TerminalKind) Symbol {
	return Symbol{Terminal: k}
}

// N wraps a non-terminal into a grammar symbol.
func N(n NonTerminal) Symbol {
	return Symbol{NonTerm: n}
}

// IsTerminal is a predicate.
func (sym Symbol) IsTerminal() bool {
	return sym.NonTerm == NoNonTerminal
}

func (sym Symbol) String() string {
	if sym.IsTerminal() {
		return sym.Terminal.Display()
	}
	return sym.NonTerm.String()
}

// --- Productions -----------------------------------------------------------

// Production is a numbered grammar rule LHS → RHS. An ε-production has an
// empty RHS.
type Production struct {
	Number int
	LHS    NonTerminal
	RHS    []Symbol
}

// IsEpsilon is a predicate: is this an ε-production?
func (r *Production) IsEpsilon() bool {
	return len(r.RHS) == 0
}

// RHSString renders the right-hand side of r the way it is printed by the
// rule tracer, e.g. "+ <Prod> <ExprArith'>". ε-productions render as "ε".
func (r *Production) RHSString() string {
	if r.IsEpsilon() {
		return gilles.EPSILON.Display()
	}
	parts := make([]string, len(r.RHS))
	for i, sym := range r.RHS {
		parts[i] = sym.String()
	}
	return strings.Join(parts, " ")
}

func (r *Production) String() string {
	return fmt.Sprintf("[%d] %s → %s", r.Number, r.LHS, r.RHSString())
}

// --- The catalog ------------------------------------------------------------

var catalog []*Production
var byLHS map[NonTerminal][]*Production
var catalogOnce sync.Once

// ruleBuilder helps building the catalog, one rule at a time:
//
//    b.LHS(Code).N(Instruction).T(gilles.COLUMN).N(Code).End()   // Code → Instruction : Code
//    b.LHS(Code).Epsilon()                                       // Code → ε
//
type ruleBuilder struct {
	rules   []*Production
	current *Production
}

func (b *ruleBuilder) LHS(n NonTerminal) *ruleBuilder {
	b.current = &Production{
		Number: len(b.rules) + 1,
		LHS:    n,
	}
	return b
}

func (b *ruleBuilder) N(n NonTerminal) *ruleBuilder {
	b.current.RHS = append(b.current.RHS, N(n))
	return b
}

func (b *ruleBuilder) T(k gilles.TerminalKind) *ruleBuilder {
	b.current.RHS = append(b.current.RHS, T(k))
	return b
}

func (b *ruleBuilder) End() {
	b.rules = append(b.rules, b.current)
	b.current = nil
}

func (b *ruleBuilder) Epsilon() {
	b.End()
}

// The numbering of this grammar is authoritative for the rule tracer.
// Do not re-order.
func buildCatalog() {
	catalogOnce.Do(func() {
		b := &ruleBuilder{}
		b.LHS(Program).T(gilles.LET).T(gilles.PROGNAME).T(gilles.BE).N(Code).T(gilles.END).End() // 1
		b.LHS(Code).N(Instruction).T(gilles.COLUMN).N(Code).End()                              // 2
		b.LHS(Code).Epsilon()                                                                  // 3
		b.LHS(Instruction).N(Assign).End()                                                     // 4
		b.LHS(Instruction).N(If).End()                                                         // 5
		b.LHS(Instruction).N(While).End()                                                      // 6
		b.LHS(Instruction).N(Output).End()                                                     // 7
		b.LHS(Instruction).N(Input).End()                                                      // 8
		b.LHS(Assign).T(gilles.VARNAME).T(gilles.ASSIGN).N(ExprArith).End()                    // 9
		b.LHS(ExprArith).N(Prod).N(ExprArithPrime).End()                                       // 10
		b.LHS(ExprArithPrime).T(gilles.PLUS).N(Prod).N(ExprArithPrime).End()                   // 11
		b.LHS(ExprArithPrime).T(gilles.MINUS).N(Prod).N(ExprArithPrime).End()                  // 12
		b.LHS(ExprArithPrime).Epsilon()                                                        // 13
		b.LHS(Prod).N(Atom).N(ProdPrime).End()                                                 // 14
		b.LHS(ProdPrime).T(gilles.TIMES).N(Atom).N(ProdPrime).End()                            // 15
		b.LHS(ProdPrime).T(gilles.DIV).N(Atom).N(ProdPrime).End()                              // 16
		b.LHS(ProdPrime).Epsilon()                                                             // 17
		b.LHS(Atom).T(gilles.MINUS).N(Atom).End()                                              // 18
		b.LHS(Atom).T(gilles.LPAREN).N(ExprArith).T(gilles.RPAREN).End()                       // 19
		b.LHS(Atom).T(gilles.VARNAME).End()                                                    // 20
		b.LHS(Atom).T(gilles.NUMBER).End()                                                     // 21
		b.LHS(If).T(gilles.IF).T(gilles.LBRACK).N(Cond).T(gilles.RBRACK).
			T(gilles.THEN).N(Code).N(IfTail).End() // 22
		b.LHS(IfTail).T(gilles.END).End()                             // 23
		b.LHS(IfTail).T(gilles.ELSE).N(Code).T(gilles.END).End()      // 24
		b.LHS(While).T(gilles.WHILE).T(gilles.LBRACK).N(Cond).T(gilles.RBRACK).
			T(gilles.REPEAT).N(Code).T(gilles.END).End() // 25
		b.LHS(Output).T(gilles.OUTPUT).T(gilles.LPAREN).T(gilles.VARNAME).T(gilles.RPAREN).End() // 26
		b.LHS(Input).T(gilles.INPUT).T(gilles.LPAREN).T(gilles.VARNAME).T(gilles.RPAREN).End()   // 27
		b.LHS(Cond).N(SimpleCond).N(CondPrime).End()                                             // 28
		b.LHS(CondPrime).T(gilles.IMPLIES).N(Cond).End()                                         // 29
		b.LHS(CondPrime).Epsilon()                                                               // 30
		b.LHS(SimpleCond).T(gilles.PIPE).N(Cond).T(gilles.PIPE).End()                            // 31
		b.LHS(SimpleCond).N(ExprArith).N(Comp).N(ExprArith).End()                                // 32
		b.LHS(Comp).T(gilles.EQUAL).End()                                                        // 33
		b.LHS(Comp).T(gilles.SMALEQ).End()                                                       // 34
		b.LHS(Comp).T(gilles.SMALLER).End()                                                      // 35
		catalog = b.rules
		byLHS = make(map[NonTerminal][]*Production, NonTerminalCount)
		for _, r := range catalog {
			byLHS[r.LHS] = append(byLHS[r.LHS], r)
		}
		tracer().Debugf("GILLES grammar catalog has %d rules", len(catalog))
	})
}

// RuleCount returns the number of productions in the grammar.
func RuleCount() int {
	buildCatalog()
	return len(catalog)
}

// Rule returns production number n, or nil if there is no such rule.
// Rules are numbered starting from 1.
func Rule(n int) *Production {
	buildCatalog()
	if n < 1 || n > len(catalog) {
		return nil
	}
	return catalog[n-1]
}

// Rules returns all productions, ordered by number. Clients must not modify
// the productions.
func Rules() []*Production {
	buildCatalog()
	return append([]*Production(nil), catalog...)
}

// ProductionsFor returns the productions with left-hand side n, ordered by
// number.
func ProductionsFor(n NonTerminal) []*Production {
	buildCatalog()
	return append([]*Production(nil), byLHS[n]...)
}

// Lookup finds the unique production with left-hand side lhs and right-hand
// side rhs. Lookup returns nil if there is none.
func Lookup(lhs NonTerminal, rhs []Symbol) *Production {
	buildCatalog()
	for _, r := range byLHS[lhs] {
		if len(r.RHS) != len(rhs) {
			continue
		}
		match := true
		for i, sym := range r.RHS {
			if sym != rhs[i] {
				match = false
				break
			}
		}
		if match {
			return r
		}
	}
	return nil
}

// WidestLHS returns the width in characters of the widest pretty name of a
// left-hand side.
func WidestLHS() int {
	buildCatalog()
	w := 0
	for _, r := range catalog {
		if l := len([]rune(r.LHS.String())); l > w {
			w = l
		}
	}
	return w
}
