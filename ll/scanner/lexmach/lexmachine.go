package lexmach

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/gilles"
	"github.com/npillmayer/gilles/ll/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'gilles.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gilles.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals (':', '==', …), a list of keywords ("LET", "IF", …) and a
// map for translating token strings to their terminal kinds.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string,
	tokenIds map[string]gilles.TerminalKind) (*LMAdapter, error) {
	//
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(name), MakeToken(name, kindOf(name, tokenIds)))
	}
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, kindOf(lit, tokenIds)))
	}
	if init != nil {
		init(adapter.Lexer)
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

func kindOf(name string, tokenIds map[string]gilles.TerminalKind) gilles.TerminalKind {
	k, ok := tokenIds[name]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", name))
	}
	return k
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	text := []byte(input)
	s, err := lm.Lexer.Scanner(text)
	if err != nil {
		return &LMScanner{}, err
	}
	lms := &LMScanner{scanner: s, text: text, lineStarts: []int{0}}
	for i, b := range text {
		if b == '\n' {
			lms.lineStarts = append(lms.lineStarts, i+1)
		}
	}
	return lms, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner    *lexmachine.Scanner
	text       []byte
	lineStarts []int // byte offsets of line starts
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// NextToken is part of the Tokenizer interface.
//
// Unmatched input is returned as a *scanner.LexError. The scanner will
// advance behind the offending input, so scanning may continue.
func (lms *LMScanner) NextToken() (gilles.Token, error) {
	if lms.scanner == nil {
		return lms.eof(), nil
	}
	tok, err, eos := lms.scanner.Next()
	if err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			lexerr := lms.lexError(ui)
			tracer().Errorf("scanner error: %v", lexerr)
			lms.scanner.TC = lexerr.Offset + len(lexerr.Text)
			return gilles.Token{}, lexerr
		}
		tracer().Errorf("scanner error: %v", err)
		return gilles.Token{}, err
	}
	if eos {
		return lms.eof(), nil
	}
	token := tok.(*lexmachine.Token)
	line, col := lms.position(token.TC)
	t := gilles.Token{
		Kind:   gilles.TerminalKind(token.Type),
		Lexeme: string(token.Lexeme),
		Line:   line,
		Column: col,
		Span:   gilles.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	}
	tracer().Debugf("token %s at %s %s", t, t.Position(), t.Span)
	return t, nil
}

// lexError extracts the unmatched text, at least one rune. The text ends at
// a rune boundary.
func (lms *LMScanner) lexError(ui *machines.UnconsumedInput) *scanner.LexError {
	from := ui.StartTC
	if from > len(lms.text) {
		from = len(lms.text)
	}
	to := ui.FailTC
	if _, size := utf8.DecodeRune(lms.text[from:]); to < from+size {
		to = from + size
	}
	if to > len(lms.text) {
		to = len(lms.text)
	}
	for to < len(lms.text) && !utf8.RuneStart(lms.text[to]) {
		to++
	}
	line, col := lms.position(from)
	return &scanner.LexError{
		Line:   line,
		Column: col,
		Offset: from,
		Text:   string(lms.text[from:to]),
	}
}

// position returns the one-based line and column of a byte offset.
// Columns count bytes.
func (lms *LMScanner) position(offset int) (int, int) {
	line := sort.Search(len(lms.lineStarts), func(i int) bool {
		return lms.lineStarts[i] > offset
	})
	if line == 0 {
		return 1, offset + 1
	}
	return line, offset - lms.lineStarts[line-1] + 1
}

// eof creates an EOF token positioned just behind the input.
func (lms *LMScanner) eof() gilles.Token {
	line, col := lms.position(len(lms.text))
	t := gilles.MakeToken(gilles.EOF, "", line, col)
	t.Span = gilles.Span{uint64(len(lms.text)), uint64(len(lms.text))}
	return t
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, kind gilles.TerminalKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}
