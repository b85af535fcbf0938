package gilles

// TerminalKind is the category of a token, i.e. a terminal symbol of the
// GILLES grammar. The set of kinds is closed.
type TerminalKind int

// Terminal symbols of GILLES. EPSILON is a sentinel for empty productions
// and is never produced by a scanner.
const (
	EOF TerminalKind = iota
	EPSILON
	LET
	PROGNAME
	BE
	END
	COLUMN // statement separator ':'
	ASSIGN
	LPAREN
	RPAREN
	MINUS
	PLUS
	TIMES
	DIV
	IF
	THEN
	ELSE
	WHILE
	REPEAT
	OUTPUT
	INPUT
	VARNAME
	NUMBER
	LBRACK
	RBRACK
	IMPLIES
	PIPE
	EQUAL
	SMALEQ
	SMALLER
	terminalCount
)

var terminalNames = [...]string{
	EOF:      "EOF",
	EPSILON:  "EPSILON",
	LET:      "LET",
	PROGNAME: "PROGNAME",
	BE:       "BE",
	END:      "END",
	COLUMN:   "COLUMN",
	ASSIGN:   "ASSIGN",
	LPAREN:   "LPAREN",
	RPAREN:   "RPAREN",
	MINUS:    "MINUS",
	PLUS:     "PLUS",
	TIMES:    "TIMES",
	DIV:      "DIV",
	IF:       "IF",
	THEN:     "THEN",
	ELSE:     "ELSE",
	WHILE:    "WHILE",
	REPEAT:   "REPEAT",
	OUTPUT:   "OUTPUT",
	INPUT:    "INPUT",
	VARNAME:  "VARNAME",
	NUMBER:   "NUMBER",
	LBRACK:   "LBRACK",
	RBRACK:   "RBRACK",
	IMPLIES:  "IMPLIES",
	PIPE:     "PIPE",
	EQUAL:    "EQUAL",
	SMALEQ:   "SMALEQ",
	SMALLER:  "SMALLER",
}

// display forms, as they appear in the right-hand sides of printed rules
var terminalDisplay = [...]string{
	EOF:      "EOF",
	EPSILON:  "ε",
	LET:      "LET",
	PROGNAME: "[ProgName]",
	BE:       "BE",
	END:      "END",
	COLUMN:   ":",
	ASSIGN:   "=",
	LPAREN:   "(",
	RPAREN:   ")",
	MINUS:    "-",
	PLUS:     "+",
	TIMES:    "*",
	DIV:      "/",
	IF:       "IF",
	THEN:     "THEN",
	ELSE:     "ELSE",
	WHILE:    "WHILE",
	REPEAT:   "REPEAT",
	OUTPUT:   "OUT",
	INPUT:    "IN",
	VARNAME:  "[VarName]",
	NUMBER:   "[Number]",
	LBRACK:   "{",
	RBRACK:   "}",
	IMPLIES:  "->",
	PIPE:     "|",
	EQUAL:    "==",
	SMALEQ:   "<=",
	SMALLER:  "<",
}

// TerminalCount is the number of terminal kinds, including EOF and EPSILON.
const TerminalCount = int(terminalCount)

// Terminals returns all terminal kinds in declaration order.
func Terminals() []TerminalKind {
	kinds := make([]TerminalKind, TerminalCount)
	for i := range kinds {
		kinds[i] = TerminalKind(i)
	}
	return kinds
}

// IsValid is a predicate: is k one of the declared terminals?
func (k TerminalKind) IsValid() bool {
	return k >= 0 && k < terminalCount
}

func (k TerminalKind) String() string {
	if !k.IsValid() {
		return "<invalid>"
	}
	return terminalNames[k]
}

// Display returns the form of a terminal used when printing grammar rules,
// e.g. "[VarName]" or ":".
func (k TerminalKind) Display() string {
	if !k.IsValid() {
		return "<invalid>"
	}
	return terminalDisplay[k]
}

// HasValue is a predicate: does the lexeme of a token of kind k carry
// information beyond its kind? This is true for names and numbers.
func (k TerminalKind) HasValue() bool {
	return k == PROGNAME || k == VARNAME || k == NUMBER
}
