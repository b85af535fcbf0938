/*
Package predictive implements a recursive-descent LL(1) parser for GILLES.

The parser has one method per non-terminal of the grammar in package ll.
Each method inspects the single token of look-ahead, selects the production
whose predict set contains it, reports the production to the rule tracer,
and descends into the right-hand side. The call stack serves as the
pushdown store.

    p, err := predictive.NewParser(tokenizer, predictive.WithTraceMode(ruletrace.Full))
    if err != nil {
        … // lexical error on the first token
    }
    tree, err := p.Parse()

Errors are fatal: the first token which does not fit the grammar ends the
parse with a *ParseError, and a lexical error ends it with the error of the
tokenizer, unchanged. There is no error recovery. Rules traced before the
failure are not taken back.

A Parser is meant to be used for one input only and is not safe for
concurrent use. The grammar tables it relies on are immutable and shared.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predictive

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gilles.parser'.
func tracer() tracing.Trace {
	return tracing.Select("gilles.parser")
}
