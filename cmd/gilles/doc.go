/*
Command gilles parses GILLES programs and prints the grammar rules applied,
followed by the parse tree.

Usage:

    gilles [flags] program.gls
    gilles -i

The flags are:

    -v             print full rules instead of rule numbers
    -trace level   trace level [Debug|Info|Error]
    -fingerprint   print a fingerprint of the parse tree
    -table         use the table-driven parser instead of recursive descent
    -i             start an interactive session
    -ebnf          print the grammar in EBNF and exit

In interactive mode every line is parsed as a complete program. Enter ':v'
to toggle full rule output and ':q' (or <ctrl>D) to quit.

The exit status is 0 for a valid program, 1 for a usage error, 2 for a
lexical or syntax error and 3 if the program could not be read.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gilles.cli'.
func tracer() tracing.Trace {
	return tracing.Select("gilles.cli")
}
