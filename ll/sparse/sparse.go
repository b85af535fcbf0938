/*
Package sparse implements a small type for sparse integer matrices, as
needed for parse tables. A parse table is indexed by non-terminal and
terminal, and most of its cells are empty.

Cells hold a single int32 or a pair of them. A pair signals that two values
competed for the cell; for a parse table this is a conflict between two
grammar rules.

Cells are stored row by row, each row sorted by column. Rows of a parse
table are short, and lookups do a binary search within a row.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = math.MinInt32

// IntMatrix is a sparse m x n matrix of int32 values.
//
//     M := NewIntMatrix(10, 10, -1)  // -1 marks empty cells
//     M.Set(2, 3, 4711)
//     M.Add(2, 3, 123)               // cell (2,3) now holds a pair
//     M.IsPair(2, 3)                 // true
//     M.Value(5, 5)                  // -1
//
// Cells cannot be deleted.
type IntMatrix struct {
	rows    [][]cell
	cols    int
	nullval int32
	count   int
}

type cell struct {
	col  int
	a, b int32
}

// NewIntMatrix creates a matrix of size m x n. Empty cells read as nullValue.
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		rows:    make([][]cell, m),
		cols:    n,
		nullval: nullValue,
	}
}

// M returns the row count.
func (m *IntMatrix) M() int {
	return len(m.rows)
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.cols
}

// NullValue returns the value of empty cells.
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of cells set.
func (m *IntMatrix) ValueCount() int {
	return m.count
}

func (m *IntMatrix) inRange(i, j int) bool {
	return i >= 0 && i < len(m.rows) && j >= 0 && j < m.cols
}

// search returns the index of column j in row i, or where it would have to
// be inserted.
func (m *IntMatrix) search(i, j int) (int, bool) {
	row := m.rows[i]
	k := sort.Search(len(row), func(k int) bool { return row[k].col >= j })
	return k, k < len(row) && row[k].col == j
}

// Value returns the first value at (i,j), or NullValue. Indices out of
// range read as empty.
func (m *IntMatrix) Value(i, j int) int32 {
	a, _ := m.Values(i, j)
	return a
}

// Values returns both values at (i,j). Missing values read as NullValue.
func (m *IntMatrix) Values(i, j int) (int32, int32) {
	if !m.inRange(i, j) {
		return m.nullval, m.nullval
	}
	if k, found := m.search(i, j); found {
		c := m.rows[i][k]
		return c.a, c.b
	}
	return m.nullval, m.nullval
}

// IsPair is a predicate: does (i,j) hold two values?
func (m *IntMatrix) IsPair(i, j int) bool {
	_, b := m.Values(i, j)
	return b != m.nullval
}

// Set stores value at (i,j), dropping anything stored there before.
// It panics if (i,j) is out of range.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	c := m.cell(i, j)
	c.a, c.b = value, m.nullval
	return m
}

// Add stores value at (i,j). If the cell is already set, value becomes the
// second value of a pair; a third value replaces the second one.
// It panics if (i,j) is out of range.
func (m *IntMatrix) Add(i, j int, value int32) *IntMatrix {
	c := m.cell(i, j)
	if c.a == m.nullval {
		c.a = value
	} else {
		c.b = value
	}
	return m
}

// cell returns the cell at (i,j), creating an empty one if necessary.
func (m *IntMatrix) cell(i, j int) *cell {
	if !m.inRange(i, j) {
		panic(fmt.Sprintf("sparse matrix index (%d,%d) out of range %dx%d", i, j, len(m.rows), m.cols))
	}
	k, found := m.search(i, j)
	if !found {
		row := append(m.rows[i], cell{})
		copy(row[k+1:], row[k:])
		row[k] = cell{col: j, a: m.nullval, b: m.nullval}
		m.rows[i] = row
		m.count++
	}
	return &m.rows[i][k]
}

// EachInRow calls f for every cell set in row i, in column order.
func (m *IntMatrix) EachInRow(i int, f func(j int, a, b int32)) {
	if i < 0 || i >= len(m.rows) {
		return
	}
	for _, c := range m.rows[i] {
		f(c.col, c.a, c.b)
	}
}

// String lists all cells set, one per line, for debugging.
func (m *IntMatrix) String() string {
	var b strings.Builder
	for i := range m.rows {
		m.EachInRow(i, func(j int, v, w int32) {
			if w == m.nullval {
				fmt.Fprintf(&b, "(%d,%d)=%d\n", i, j, v)
			} else {
				fmt.Fprintf(&b, "(%d,%d)=[%d,%d]\n", i, j, v, w)
			}
		})
	}
	return b.String()
}
