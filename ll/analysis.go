package ll

import (
	"strings"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/gilles"
)

// === Terminal sets ==========================================================

// KindSet is an ordered set of terminal kinds. Iteration order is the
// declaration order of the kinds, which makes diagnostics stable.
type KindSet struct {
	set *treeset.Set
}

// We need this for the set of terminals. It sorts kinds by value.
func kindComparator(k1, k2 interface{}) int {
	return utils.IntComparator(int(k1.(gilles.TerminalKind)), int(k2.(gilles.TerminalKind)))
}

// NewKindSet creates a set containing kinds.
func NewKindSet(kinds ...gilles.TerminalKind) *KindSet {
	s := &KindSet{set: treeset.NewWith(kindComparator)}
	s.Add(kinds...)
	return s
}

// Add inserts kinds into s.
func (s *KindSet) Add(kinds ...gilles.TerminalKind) {
	for _, k := range kinds {
		s.set.Add(k)
	}
}

// Union adds all members of other to s. It returns true if s changed.
func (s *KindSet) Union(other *KindSet) bool {
	if other == nil {
		return false
	}
	size := s.set.Size()
	s.set.Add(other.set.Values()...)
	return s.set.Size() != size
}

// Contains is a predicate.
func (s *KindSet) Contains(k gilles.TerminalKind) bool {
	return s.set.Contains(k)
}

// Size returns the number of kinds in s.
func (s *KindSet) Size() int {
	return s.set.Size()
}

// Kinds returns the members of s in order.
func (s *KindSet) Kinds() []gilles.TerminalKind {
	vals := s.set.Values()
	kinds := make([]gilles.TerminalKind, len(vals))
	for i, v := range vals {
		kinds[i] = v.(gilles.TerminalKind)
	}
	return kinds
}

// Intersects is a predicate: do s and other share a member?
func (s *KindSet) Intersects(other *KindSet) bool {
	it := other.set.Iterator()
	for it.Next() {
		if s.set.Contains(it.Value()) {
			return true
		}
	}
	return false
}

func (s *KindSet) String() string {
	kinds := s.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// === Grammar analysis =======================================================

// LLAnalysis holds FIRST and FOLLOW sets, nullability and predict sets of
// the GILLES grammar. Create with Analysis().
type LLAnalysis struct {
	first    map[NonTerminal]*KindSet
	follow   map[NonTerminal]*KindSet
	nullable map[NonTerminal]bool
	predict  []*KindSet // indexed by rule number
}

var analysis *LLAnalysis
var analysisOnce sync.Once

// Analysis returns the static analysis of the GILLES grammar. It is computed
// on first use and shared afterwards; clients must treat it as read-only.
func Analysis() *LLAnalysis {
	analysisOnce.Do(func() {
		buildCatalog()
		ga := &LLAnalysis{
			first:    make(map[NonTerminal]*KindSet, NonTerminalCount),
			follow:   make(map[NonTerminal]*KindSet, NonTerminalCount),
			nullable: make(map[NonTerminal]bool, NonTerminalCount),
		}
		for _, n := range NonTerminals() {
			ga.first[n] = NewKindSet()
			ga.follow[n] = NewKindSet()
		}
		ga.computeFirst()
		ga.computeFollow()
		ga.computePredict()
		analysis = ga
	})
	return analysis
}

// Iterate until no FIRST set and no nullable flag changes any more.
func (ga *LLAnalysis) computeFirst() {
	changed := true
	for changed {
		changed = false
		for _, r := range catalog {
			set, nullable := ga.firstOfSequence(r.RHS)
			if ga.first[r.LHS].Union(set) {
				changed = true
			}
			if nullable && !ga.nullable[r.LHS] {
				ga.nullable[r.LHS] = true
				changed = true
			}
		}
	}
}

// Iterate until no FOLLOW set changes any more. EOF follows the start
// symbol.
func (ga *LLAnalysis) computeFollow() {
	ga.follow[Program].Add(gilles.EOF)
	changed := true
	for changed {
		changed = false
		for _, r := range catalog {
			for i, B := range r.RHS {
				if B.IsTerminal() {
					continue
				}
				rest, nullable := ga.firstOfSequence(r.RHS[i+1:])
				if ga.follow[B.NonTerm].Union(rest) {
					changed = true
				}
				if nullable && ga.follow[B.NonTerm].Union(ga.follow[r.LHS]) {
					changed = true
				}
			}
		}
	}
}

func (ga *LLAnalysis) computePredict() {
	ga.predict = make([]*KindSet, len(catalog)+1)
	for _, r := range catalog {
		set, nullable := ga.firstOfSequence(r.RHS)
		if nullable {
			set.Union(ga.follow[r.LHS])
		}
		ga.predict[r.Number] = set
		tracer().Debugf("PREDICT(%d) = %s", r.Number, set)
	}
}

// firstOfSequence computes FIRST(X1 … Xn) without ε, and whether the
// sequence derives ε.
func (ga *LLAnalysis) firstOfSequence(syms []Symbol) (*KindSet, bool) {
	set := NewKindSet()
	for _, sym := range syms {
		if sym.IsTerminal() {
			set.Add(sym.Terminal)
			return set, false
		}
		set.Union(ga.first[sym.NonTerm])
		if !ga.nullable[sym.NonTerm] {
			return set, false
		}
	}
	return set, true
}

// First returns FIRST(sym), not including ε. Use Nullable to check if a
// non-terminal derives ε.
func (ga *LLAnalysis) First(sym Symbol) []gilles.TerminalKind {
	if sym.IsTerminal() {
		return []gilles.TerminalKind{sym.Terminal}
	}
	return ga.first[sym.NonTerm].Kinds()
}

// Follow returns FOLLOW(n).
func (ga *LLAnalysis) Follow(n NonTerminal) []gilles.TerminalKind {
	if s, ok := ga.follow[n]; ok {
		return s.Kinds()
	}
	return nil
}

// Nullable is a predicate: does n derive ε?
func (ga *LLAnalysis) Nullable(n NonTerminal) bool {
	return ga.nullable[n]
}

// Predict returns the predict set of production number rule, i.e.
// FIRST(RHS) plus FOLLOW(LHS) if the RHS derives ε.
func (ga *LLAnalysis) Predict(rule int) []gilles.TerminalKind {
	if rule < 1 || rule >= len(ga.predict) {
		return nil
	}
	return ga.predict[rule].Kinds()
}

// PredictSet is like Predict, but returns the set itself.
func (ga *LLAnalysis) PredictSet(rule int) *KindSet {
	if rule < 1 || rule >= len(ga.predict) {
		return NewKindSet()
	}
	s := NewKindSet()
	s.Union(ga.predict[rule])
	return s
}

// Expected returns the union of the predict sets of all productions for n,
// i.e. every look-ahead for which n can be expanded.
func (ga *LLAnalysis) Expected(n NonTerminal) *KindSet {
	s := NewKindSet()
	for _, r := range byLHS[n] {
		s.Union(ga.predict[r.Number])
	}
	return s
}

// Select returns the numbers of all productions for n whose predict set
// contains look-ahead la. For an LL(1) grammar the result has at most one
// element.
func (ga *LLAnalysis) Select(n NonTerminal, la gilles.TerminalKind) []int {
	var rules []int
	for _, r := range byLHS[n] {
		if ga.predict[r.Number].Contains(la) {
			rules = append(rules, r.Number)
		}
	}
	return rules
}
