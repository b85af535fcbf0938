/*
Package ll holds the grammar of GILLES and its static analysis.

The Grammar Catalog

GILLES is recognized by a fixed LL(1) grammar of 35 numbered productions.
The numbering is the one printed by the rule tracer; it is the sole source
of truth for trace output. The catalog is a process-wide read-only value.

    r := ll.Rule(10)
    fmt.Println(r)      // [10] <ExprArith> → <Prod> <ExprArith'>

Binary operators are left-factored into X / X' pairs (ExprArith/ExprArith',
Prod/Prod', Cond/Cond'), and the optional ELSE of an IF is factored into
<IfTail>.

Static Grammar Analysis

Analysis computes FIRST and FOLLOW sets for the grammar, determines the
nullable non-terminals and derives the predict set of every production.
The predictive parser bakes these sets into its dispatch code; the analysis
is here to check that the hand-written dispatch is right, to drive the
table-based parser of package pda, and to produce stable diagnostics.

    ga := ll.Analysis()
    for _, N := range ll.NonTerminals() {
        fmt.Printf("FOLLOW(%s) = %v\n", N, ga.Follow(N))
    }

    // Output (excerpt):
    FOLLOW(<Code>) = [END ELSE]

LL1Table arranges the predict sets into a parse table. A grammar is LL(1)
if and only if no table cell holds more than one rule.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gilles.ll'.
func tracer() tracing.Trace {
	return tracing.Select("gilles.ll")
}
