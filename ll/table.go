package ll

import (
	"fmt"
	"sync"

	"github.com/npillmayer/gilles"
	"github.com/npillmayer/gilles/ll/sparse"
)

// Table is an LL(1) parse table: for a non-terminal on top of the stack and
// a look-ahead terminal, it tells which production to expand. Rows are
// indexed by NonTerminal, columns by gilles.TerminalKind.
type Table struct {
	m *sparse.IntMatrix
}

// Conflict describes a table cell claimed by two productions.
type Conflict struct {
	N     NonTerminal
	La    gilles.TerminalKind
	Rules [2]int
}

func (c Conflict) String() string {
	return fmt.Sprintf("conflict at (%s, %s): rules %d and %d", c.N, c.La, c.Rules[0], c.Rules[1])
}

var table *Table
var tableOnce sync.Once

// LL1Table returns the LL(1) parse table of the GILLES grammar, constructed
// from the predict sets of Analysis().
func LL1Table() *Table {
	tableOnce.Do(func() {
		ga := Analysis()
		m := sparse.NewIntMatrix(int(nonTerminalCount), gilles.TerminalCount, sparse.DefaultNullValue)
		for _, r := range catalog {
			for _, la := range ga.Predict(r.Number) {
				m.Add(int(r.LHS), int(la), int32(r.Number))
			}
		}
		table = &Table{m: m}
		for _, c := range table.Conflicts() {
			tracer().Errorf("GILLES grammar is not LL(1): %s", c)
		}
	})
	return table
}

// Rule returns the number of the production to expand for non-terminal n
// under look-ahead la, or 0 if there is none.
func (t *Table) Rule(n NonTerminal, la gilles.TerminalKind) int {
	if !n.IsValid() || !la.IsValid() {
		return 0
	}
	v := t.m.Value(int(n), int(la))
	if v == t.m.NullValue() {
		return 0
	}
	return int(v)
}

// Row returns all look-aheads with an entry for n, in order.
func (t *Table) Row(n NonTerminal) []gilles.TerminalKind {
	var kinds []gilles.TerminalKind
	t.m.EachInRow(int(n), func(j int, a, b int32) {
		kinds = append(kinds, gilles.TerminalKind(j))
	})
	return kinds
}

// Conflicts returns all cells claimed by more than one production.
func (t *Table) Conflicts() []Conflict {
	var conflicts []Conflict
	for _, n := range NonTerminals() {
		t.m.EachInRow(int(n), func(j int, a, b int32) {
			if b != t.m.NullValue() {
				conflicts = append(conflicts, Conflict{
					N:     n,
					La:    gilles.TerminalKind(j),
					Rules: [2]int{int(a), int(b)},
				})
			}
		})
	}
	return conflicts
}

// Size returns the number of cells set.
func (t *Table) Size() int {
	return t.m.ValueCount()
}
