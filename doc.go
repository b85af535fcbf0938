/*
Package gilles is a front-end for GILLES, a small imperative teaching
language used in compiler-construction courses.

GILLES is parsed by a predictive LL(1) parser. Given source code, the parser
produces a concrete parse tree and a trace of the grammar rules applied, in
leftmost-derivation order. Package structure is as follows:

■ ll: Package ll holds the numbered GILLES grammar and its static analysis
(FIRST/FOLLOW sets, LL(1) table). Sub-packages implement the recursive-descent
parser (predictive), an equivalent table-driven parser (pda), parse trees,
the rule tracer and the scanner interface.

■ gilleslang: Package gilleslang defines GILLES tokens and a lexmachine-based
lexer, and offers a one-call Parse.

■ cmd/gilles: A command line tool printing rule traces and parse trees.

The base package contains the token model shared by all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gilles
