/*
Package lexmach connects the lexmachine scanner generator to the GILLES
parsers.

See https://github.com/timtadh/lexmachine for lexmachine itself.

An LMAdapter compiles a DFA from three sources, in this order:

    keywords     matched verbatim, e.g. "LET", "WHILE"
    literals     operators and punctuation, e.g. ":=", "(", escaped for the DFA
    init         a function adding the remaining patterns to the lexer

lexmachine prefers the longest match, and among matches of equal length the
pattern added first. Keywords therefore win over a name pattern for "LET",
but "LETTER" is still a name.

Every token name used must map to a terminal kind:

    ids := map[string]gilles.TerminalKind{"LET": gilles.LET, ":=": gilles.ASSIGN, …}
    adapter, err := lexmach.NewLMAdapter(func(lexer *lexmachine.Lexer) {
        lexer.Add([]byte(`[a-z]+`), lexmach.MakeToken("VARNAME", gilles.VARNAME))
        lexer.Add([]byte(`( |\n)+`), lexmach.Skip)
    }, []string{":="}, []string{"LET"}, ids)

Each input gets its own scanner, which implements scanner.Tokenizer. Tokens
carry one-based line and column numbers, computed from byte offsets, and
their byte span. At the end of input NextToken keeps returning EOF.

    scan, _ := adapter.Scanner(input)
    tok, err := scan.NextToken()

Input which no pattern matches yields a *scanner.LexError. The scanner skips
the offending input, so clients may go on calling NextToken.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
