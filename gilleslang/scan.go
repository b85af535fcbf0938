package gilleslang

import (
	"fmt"
	"sync"

	"github.com/npillmayer/gilles"
	"github.com/npillmayer/gilles/ll/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal lexemes
var literals = []string{":=", "==", "<=", "->", "=", ":", "(", ")", "{", "}",
	"+", "-", "*", "/", "|", "<"}

// The keyword tokens
var keywords = []string{"LET", "BE", "END", "IF", "THEN", "ELSE", "WHILE",
	"REPEAT", "OUT", "IN"}

// tokenIds will be set in initTokens()
var tokenIds map[string]gilles.TerminalKind // A map from the token names to their terminal kinds

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = map[string]gilles.TerminalKind{
			"PROGNAME": gilles.PROGNAME,
			"VARNAME":  gilles.VARNAME,
			"NUMBER":   gilles.NUMBER,
			"LET":      gilles.LET,
			"BE":       gilles.BE,
			"END":      gilles.END,
			"IF":       gilles.IF,
			"THEN":     gilles.THEN,
			"ELSE":     gilles.ELSE,
			"WHILE":    gilles.WHILE,
			"REPEAT":   gilles.REPEAT,
			"OUT":      gilles.OUTPUT,
			"IN":       gilles.INPUT,
			":=":       gilles.ASSIGN,
			"=":        gilles.ASSIGN,
			"==":       gilles.EQUAL,
			"<=":       gilles.SMALEQ,
			"<":        gilles.SMALLER,
			"->":       gilles.IMPLIES,
			":":        gilles.COLUMN,
			"(":        gilles.LPAREN,
			")":        gilles.RPAREN,
			"{":        gilles.LBRACK,
			"}":        gilles.RBRACK,
			"+":        gilles.PLUS,
			"-":        gilles.MINUS,
			"*":        gilles.TIMES,
			"/":        gilles.DIV,
			"|":        gilles.PIPE,
		}
	})
}

// Token returns a token name and its terminal kind.
func Token(t string) (string, gilles.TerminalKind) {
	initTokens()
	k, ok := tokenIds[t]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", t))
	}
	return t, k
}

var lexer *lexmach.LMAdapter
var lexerErr error
var lexerOnce sync.Once // monitors one-time compilation of the DFA

// Lexer returns the lexmachine lexer for GILLES. The DFA is compiled on
// first use and shared afterwards.
func Lexer() (*lexmach.LMAdapter, error) {
	lexerOnce.Do(func() {
		initTokens()
		tracer().Infof("Creating lexer")
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`\$[^\n]*`), lexmach.Skip)          // skip line comments
			lexer.Add([]byte(`!!([^!]|![^!])*!!`), lexmach.Skip) // skip block comments
			lexer.Add([]byte(`[A-Z]([a-z]|[A-Z]|[0-9]|_)*`), makeToken("PROGNAME"))
			lexer.Add([]byte(`[a-z]([a-z]|[A-Z]|[0-9])*`), makeToken("VARNAME"))
			lexer.Add([]byte(`[0-9]+`), makeToken("NUMBER"))
			lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		}
		lexer, lexerErr = lexmach.NewLMAdapter(init, literals, keywords, tokenIds)
	})
	return lexer, lexerErr
}

// Scanner creates a tokenizer for a GILLES program.
func Scanner(input string) (*lexmach.LMScanner, error) {
	lex, err := Lexer()
	if err != nil {
		return nil, err
	}
	return lex.Scanner(input)
}

// Tokens scans input completely. It returns the tokens up to, but not
// including, EOF, and stops at the first lexical error.
func Tokens(input string) ([]gilles.Token, error) {
	scan, err := Scanner(input)
	if err != nil {
		return nil, err
	}
	var toks []gilles.Token
	for {
		t, err := scan.NextToken()
		if err != nil {
			return toks, err
		}
		if t.Kind == gilles.EOF {
			return toks, nil
		}
		toks = append(toks, t)
	}
}

func makeToken(s string) lexmachine.Action {
	return lexmach.MakeToken(Token(s))
}
