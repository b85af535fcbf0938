package ll

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/gilles"
	"golang.org/x/exp/ebnf"
)

// Lexical productions for the terminals which carry a value.
const lexicalProductions = `progname = upper { upper | lower | digit | "_" } .
varname = lower { upper | lower | digit } .
number = digit { digit } .
upper = "A" … "Z" .
lower = "a" … "z" .
digit = "0" … "9" .
`

// EBNF renders the grammar in the EBNF notation of package
// golang.org/x/exp/ebnf, one production per non-terminal. An ε-production
// turns the other alternatives of its non-terminal into an option:
//
//    Code = [ Instruction ":" Code ] .
//
func EBNF() string {
	var b strings.Builder
	for _, n := range NonTerminals() {
		var alts []string
		optional := false
		for _, r := range ProductionsFor(n) {
			if r.IsEpsilon() {
				optional = true
				continue
			}
			syms := make([]string, len(r.RHS))
			for i, sym := range r.RHS {
				syms[i] = ebnfSymbol(sym)
			}
			alts = append(alts, strings.Join(syms, " "))
		}
		rhs := strings.Join(alts, " | ")
		if optional {
			rhs = "[ " + rhs + " ]"
		}
		fmt.Fprintf(&b, "%s = %s .\n", n.Name(), rhs)
	}
	b.WriteString(lexicalProductions)
	return b.String()
}

func ebnfSymbol(sym Symbol) string {
	if !sym.IsTerminal() {
		return sym.NonTerm.Name()
	}
	switch sym.Terminal {
	case gilles.PROGNAME:
		return "progname"
	case gilles.VARNAME:
		return "varname"
	case gilles.NUMBER:
		return "number"
	case gilles.ASSIGN:
		return `( "=" | ":=" )`
	}
	return strconv.Quote(sym.Terminal.Display())
}

// VerifyEBNF parses the output of EBNF and checks that every production is
// defined and reachable from Program.
func VerifyEBNF() error {
	g, err := ebnf.Parse("gilles.ebnf", strings.NewReader(EBNF()))
	if err != nil {
		return err
	}
	if err = ebnf.Verify(g, Program.Name()); err != nil {
		tracer().Errorf("EBNF of GILLES does not verify: %v", err)
		return err
	}
	return nil
}
