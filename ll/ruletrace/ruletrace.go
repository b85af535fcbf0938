/*
Package ruletrace reports the grammar rules applied by a GILLES parser.

Every time a parser expands a non-terminal, it hands the production to a
RuleTracer before descending into the right-hand side. The tracer renders
the rule to a Sink, either as its bare number or as a full, aligned line:

    NumbersOnly:  1 2 4 9 10 14 21 17 13 3
    Full:            [1]  <Program>      →  LET [ProgName] BE <Code> END
                     [3]  <Code>         →  ε

A trace is never rewound: if parsing fails, the rules applied up to the
failure have already been written.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ruletrace

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/gilles/ll"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gilles.tree'.
func tracer() tracing.Trace {
	return tracing.Select("gilles.tree")
}

// Mode selects the rendering of applied rules.
type Mode int

// Trace modes. NumbersOnly is the default.
const (
	NumbersOnly Mode = iota
	Full
)

func (m Mode) String() string {
	if m == Full {
		return "Full"
	}
	return "NumbersOnly"
}

// ConfigKeyFullTrace is the configuration key which, if set to true,
// switches the default trace mode to Full.
const ConfigKeyFullTrace = "gilles.trace.full"

// DefaultMode returns the trace mode from the global configuration.
func DefaultMode() Mode {
	if gconf.GetBool(ConfigKeyFullTrace) {
		return Full
	}
	return NumbersOnly
}

// --- Sinks -----------------------------------------------------------------

// Sink receives rendered trace output.
type Sink interface {
	WriteFragment(s string) // write s as is
	WriteLine(s string)     // write s, followed by a newline
}

type writerSink struct {
	w io.Writer
}

// WriterSink adapts an io.Writer to a Sink. Write errors are traced and
// otherwise ignored.
func WriterSink(w io.Writer) Sink {
	return writerSink{w: w}
}

func (ws writerSink) WriteFragment(s string) {
	if _, err := io.WriteString(ws.w, s); err != nil {
		tracer().Errorf("rule trace output: %v", err)
	}
}

func (ws writerSink) WriteLine(s string) {
	ws.WriteFragment(s + "\n")
}

// BufferSink is a Sink collecting trace output in memory.
type BufferSink struct {
	buf bytes.Buffer
}

// WriteFragment is part of interface Sink.
func (bs *BufferSink) WriteFragment(s string) {
	bs.buf.WriteString(s)
}

// WriteLine is part of interface Sink.
func (bs *BufferSink) WriteLine(s string) {
	bs.buf.WriteString(s)
	bs.buf.WriteByte('\n')
}

// String returns the output collected so far.
func (bs *BufferSink) String() string {
	return bs.buf.String()
}

// Reset clears the buffer.
func (bs *BufferSink) Reset() {
	bs.buf.Reset()
}

var _ Sink = writerSink{}
var _ Sink = &BufferSink{}

// --- Rule tracer -----------------------------------------------------------

// RuleTracer renders applied productions to a sink and remembers their
// numbers.
type RuleTracer struct {
	sink     Sink
	mode     Mode
	rules    []int
	numWidth int // width of rule number field
	lhsWidth int // width of LHS field
}

// New creates a rule tracer writing to sink.
func New(sink Sink, mode Mode) *RuleTracer {
	return &RuleTracer{
		sink:     sink,
		mode:     mode,
		numWidth: 1 + len(strconv.Itoa(ll.RuleCount())),
		lhsWidth: 2 + ll.WidestLHS(),
	}
}

// Mode returns the current trace mode.
func (rt *RuleTracer) Mode() Mode {
	return rt.mode
}

// SetMode switches the trace mode.
func (rt *RuleTracer) SetMode(mode Mode) {
	rt.mode = mode
}

// Apply reports that production r is about to be expanded.
func (rt *RuleTracer) Apply(r *ll.Production) {
	rt.rules = append(rt.rules, r.Number)
	tracer().Debugf("apply %s", r)
	if rt.sink == nil {
		return
	}
	if rt.mode == Full {
		rt.sink.WriteLine(rt.FullLine(r))
		return
	}
	rt.sink.WriteFragment(strconv.Itoa(r.Number) + " ")
}

// Done terminates the trace. In NumbersOnly mode it writes the terminating
// newline.
func (rt *RuleTracer) Done() {
	if rt.sink != nil && rt.mode == NumbersOnly {
		rt.sink.WriteLine("")
	}
}

// Rules returns the numbers of all productions applied so far.
func (rt *RuleTracer) Rules() []int {
	return append([]int(nil), rt.rules...)
}

// FullLine renders a production the way it appears in a Full trace:
//
//    "   [N]" + pad + LHS + pad + "→  " + RHS
//
// The number field is padded to one more than the digits of the largest
// rule number, the LHS field to two more than the widest LHS.
func (rt *RuleTracer) FullLine(r *ll.Production) string {
	num := strconv.Itoa(r.Number)
	lhs := r.LHS.String()
	return fmt.Sprintf("   [%s]%s%s%s→  %s",
		num, pad(rt.numWidth-len(num)),
		lhs, pad(rt.lhsWidth-len([]rune(lhs))),
		r.RHSString())
}

func pad(n int) string {
	if n < 1 {
		return ""
	}
	return strings.Repeat(" ", n)
}
