package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
)

// repl starts interactive mode. Every line is a complete program.
func (s *session) repl() int {
	rl, err := readline.New("gilles> ")
	if err != nil {
		tracer().Errorf("%v", err)
		return exitIO
	}
	defer rl.Close()
	s.out = rl.Stdout()
	pterm.Info.Println("Welcome to GILLES")
	tracer().Infof("Quit with :q or <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if quit := s.eval(line); quit {
			break
		}
	}
	println("Good bye!")
	return exitOK
}

// eval handles one line of input. It returns true if the user asked to
// quit.
func (s *session) eval(line string) bool {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false
	case ":q":
		return true
	case ":v":
		s.verbose = !s.verbose
		if s.verbose {
			pterm.Info.Println("full rule output")
		} else {
			pterm.Info.Println("rule numbers only")
		}
		return false
	}
	_, _ = s.process(line) // errors have been printed
	return false
}
