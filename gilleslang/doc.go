/*
Package gilleslang provides the lexical structure of GILLES and ties it to
the parsers of package ll.

GILLES is a small teaching language:

    LET Gcd BE
        IN ( a ) : IN ( b ) :
        WHILE { | a < b | -> | b < a | } REPEAT     $ until a equals b
            IF { a < b } THEN b := b - a : ELSE a := a - b : END :
        END :
        OUT ( a ) :
    END

Keywords are upper case, program names start with an upper-case letter,
variable names with a lower-case letter. Comments run from '$' to the end
of the line, or are enclosed in '!!'. Every instruction is terminated by
a colon.

Clients usually call Parse, which lexes and parses a program in one go:

    tree, err := gilleslang.Parse(input, predictive.WithTraceMode(ruletrace.Full))

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gilleslang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gilles.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gilles.scanner")
}
