package sentences

import (
	"reflect"
	"testing"

	"github.com/npillmayer/gilles"
	"github.com/npillmayer/gilles/ll"
)

func TestSentencesStartWithProgram(t *testing.T) {
	g := NewGenerator(1)
	for i := 0; i < 100; i++ {
		s := g.Next()
		if s.Derivation[0] != 1 {
			t.Fatalf("Expected derivation to start with rule 1, is %v", s.Derivation)
		}
		if s.Kinds[0] != gilles.LET || s.Kinds[len(s.Kinds)-1] != gilles.END {
			t.Errorf("Expected LET … END, is %v", s.Kinds)
		}
	}
}

// Replaying a derivation must reproduce the sentence.
func TestDerivationReproducesSentence(t *testing.T) {
	g := NewGenerator(2)
	for i := 0; i < 100; i++ {
		s := g.Next()
		rules := s.Derivation
		var kinds []gilles.TerminalKind
		var expand func(n ll.NonTerminal)
		expand = func(n ll.NonTerminal) {
			r := ll.Rule(rules[0])
			rules = rules[1:]
			if r.LHS != n {
				t.Fatalf("Rule %s does not expand %s", r, n)
			}
			for _, sym := range r.RHS {
				if sym.IsTerminal() {
					kinds = append(kinds, sym.Terminal)
				} else {
					expand(sym.NonTerm)
				}
			}
		}
		expand(ll.Program)
		if len(rules) != 0 || !reflect.DeepEqual(kinds, s.Kinds) {
			t.Errorf("Derivation %v does not reproduce %v", s.Derivation, s.Kinds)
		}
	}
}

func TestReproducible(t *testing.T) {
	s1, s2 := NewGenerator(42).Next(), NewGenerator(42).Next()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("Expected equal seeds to produce equal sentences")
	}
}

func TestMutate(t *testing.T) {
	g := NewGenerator(3)
	kinds := []gilles.TerminalKind{gilles.LET, gilles.PROGNAME, gilles.BE, gilles.END}
	for i := 0; i < 20; i++ {
		m := g.Mutate(kinds)
		if len(m) < len(kinds)-1 || len(m) > len(kinds) {
			t.Errorf("Unexpected mutation %v", m)
		}
		for _, k := range m {
			if k == gilles.EOF || k == gilles.EPSILON {
				t.Errorf("Mutation introduced %s", k)
			}
		}
	}
	if len(kinds) != 4 || kinds[3] != gilles.END {
		t.Errorf("Mutate must not change its argument")
	}
}
