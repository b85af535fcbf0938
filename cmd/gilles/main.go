package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/npillmayer/gilles/gilleslang"
	"github.com/npillmayer/gilles/ll"
	"github.com/npillmayer/gilles/ll/parsetree"
	"github.com/npillmayer/gilles/ll/pda"
	"github.com/npillmayer/gilles/ll/predictive"
	"github.com/npillmayer/gilles/ll/ruletrace"
	"github.com/npillmayer/gilles/ll/scanner"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// Exit codes
const (
	exitOK = iota
	exitUsage
	exitSyntax
	exitIO
)

// Tracers configured from the -trace flag
var traceKeys = []string{"gilles.cli", "gilles.ll", "gilles.parser", "gilles.scanner", "gilles.tree"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run is main() without the exit, writing regular output to out.
func run(args []string, out io.Writer) int {
	flags := flag.NewFlagSet("gilles", flag.ContinueOnError)
	flags.SetOutput(out)
	verbose := flags.Bool("v", false, "print full rules instead of rule numbers")
	tlevel := flags.String("trace", "Error", "Trace level [Debug|Info|Error]")
	fingerprint := flags.Bool("fingerprint", false, "print a fingerprint of the parse tree")
	table := flags.Bool("table", false, "use the table-driven parser")
	interactive := flags.Bool("i", false, "start an interactive session")
	grammar := flags.Bool("ebnf", false, "print the grammar in EBNF and exit")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	initDisplay()
	if err := initConfig(*tlevel, *verbose); err != nil {
		pterm.Error.Println(err.Error())
		return exitUsage
	}
	if *grammar {
		return printGrammar(out)
	}
	s := &session{
		out:         out,
		verbose:     ruletrace.DefaultMode() == ruletrace.Full,
		table:       *table,
		fingerprint: *fingerprint,
	}
	if *interactive {
		if flags.NArg() > 0 {
			flags.Usage()
			return exitUsage
		}
		return s.repl()
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return exitUsage
	}
	input, err := ioutil.ReadFile(flags.Arg(0))
	if err != nil {
		pterm.Error.Println(fmt.Errorf("cannot read program: %w", err).Error())
		return exitIO
	}
	tracer().Infof("Parsing %s", flags.Arg(0))
	if _, err = s.process(string(input)); err != nil {
		return exitCode(err)
	}
	return exitOK
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// initConfig sets up a koanf configuration from the command line flags,
// makes it the global configuration and connects tracing to Go's log.
func initConfig(tlevel string, verbose bool) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := koanfadapter.New(nil, "", nil)
	gconf.Initialize(conf)
	conf.Set("tracing.adapter", "go")
	conf.Set(ruletrace.ConfigKeyFullTrace, verbose)
	conf.Set("trace.root", tlevel)
	for _, key := range traceKeys {
		conf.Set("trace."+key, tlevel)
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("Trace level is %s", tlevel)
	return nil
}

// printGrammar writes the grammar in EBNF, after checking it.
func printGrammar(out io.Writer) int {
	if err := ll.VerifyEBNF(); err != nil {
		pterm.Error.Println(err.Error())
		return exitSyntax
	}
	if _, err := io.WriteString(out, ll.EBNF()); err != nil {
		tracer().Errorf("cannot write grammar: %v", err)
		pterm.Error.Println(err.Error())
		return exitIO
	}
	return exitOK
}

// exitCode maps an error from parsing to an exit code.
func exitCode(err error) int {
	var lexerr *scanner.LexError
	var perr *predictive.ParseError
	if errors.As(err, &lexerr) || errors.As(err, &perr) {
		return exitSyntax
	}
	return exitIO
}

// session holds the settings for parsing one or more programs.
type session struct {
	out         io.Writer
	verbose     bool
	table       bool
	fingerprint bool
}

// process parses a program, printing the rule trace and the tree, or the
// error.
func (s *session) process(input string) (*parsetree.Node, error) {
	tree, err := s.parse(input)
	if err != nil {
		pterm.Error.Println(err.Error())
		return nil, err
	}
	if err = printTree(s.out, tree); err != nil {
		tracer().Errorf("cannot render tree: %v", err)
	}
	if s.fingerprint {
		fmt.Fprintf(s.out, "fingerprint %s\n", tree.Fingerprint())
	}
	return tree, nil
}

func (s *session) parse(input string) (*parsetree.Node, error) {
	sink := ruletrace.WriterSink(s.out)
	mode := ruletrace.NumbersOnly
	if s.verbose {
		mode = ruletrace.Full
	}
	if s.table {
		return gilleslang.ParseWithTable(input, pda.WithSink(sink), pda.WithTraceMode(mode))
	}
	return gilleslang.Parse(input, predictive.WithSink(sink), predictive.WithTraceMode(mode))
}
