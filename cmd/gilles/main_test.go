package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/gilles"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

func writeProgram(t *testing.T, program string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.gls")
	if err := ioutil.WriteFile(path, []byte(program), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUsage(t *testing.T) {
	defer trace2go.Teardown()
	//
	out := &bytes.Buffer{}
	if code := run([]string{}, out); code != exitUsage {
		t.Errorf("Expected exit code %d without arguments, got %d", exitUsage, code)
	}
	if code := run([]string{"-nope", "x.gls"}, out); code != exitUsage {
		t.Errorf("Expected exit code %d for unknown flag, got %d", exitUsage, code)
	}
	if code := run([]string{"a.gls", "b.gls"}, out); code != exitUsage {
		t.Errorf("Expected exit code %d for two programs, got %d", exitUsage, code)
	}
}

func TestMissingFile(t *testing.T) {
	defer trace2go.Teardown()
	//
	out := &bytes.Buffer{}
	path := filepath.Join(t.TempDir(), "does-not-exist.gls")
	if code := run([]string{path}, out); code != exitIO {
		t.Errorf("Expected exit code %d, got %d", exitIO, code)
	}
}

func TestValidProgram(t *testing.T) {
	defer trace2go.Teardown()
	//
	out := &bytes.Buffer{}
	path := writeProgram(t, "LET P BE x := 1 : END\n")
	if code := run([]string{"-fingerprint", path}, out); code != exitOK {
		t.Fatalf("Expected exit code %d, got %d", exitOK, code)
	}
	s := out.String()
	if !strings.HasPrefix(s, "1 2 4 9 10 14 21 17 13 3 \n") {
		t.Errorf("Expected output to start with the rule trace, is %q", s)
	}
	for _, part := range []string{"Program [1]", "Assign [9]", `NUMBER "1"`, "fingerprint "} {
		if !strings.Contains(s, part) {
			t.Errorf("Expected output to contain %q, is\n%s", part, s)
		}
	}
}

func TestFullTraceFlag(t *testing.T) {
	defer trace2go.Teardown()
	//
	out := &bytes.Buffer{}
	path := writeProgram(t, "LET P BE END")
	if code := run([]string{"-v", path}, out); code != exitOK {
		t.Fatalf("Expected exit code %d, got %d", exitOK, code)
	}
	if !strings.HasPrefix(out.String(), "   [1]  <Program>      →  LET [ProgName] BE <Code> END\n") {
		t.Errorf("Expected full rules, got\n%s", out.String())
	}
}

func TestSyntaxAndLexErrors(t *testing.T) {
	defer trace2go.Teardown()
	//
	for _, program := range []string{"LET P BE x := 1 END", "LET P BE x := # : END", "BEGIN P BE END"} {
		out := &bytes.Buffer{}
		path := writeProgram(t, program)
		if code := run([]string{path}, out); code != exitSyntax {
			t.Errorf("Expected exit code %d for %q, got %d", exitSyntax, program, code)
		}
	}
}

func TestTableParserGivesSameOutput(t *testing.T) {
	defer trace2go.Teardown()
	//
	path := writeProgram(t, "LET P BE WHILE { x < 10 } REPEAT x := x + 1 : END : END")
	out1, out2 := &bytes.Buffer{}, &bytes.Buffer{}
	if code := run([]string{"-fingerprint", path}, out1); code != exitOK {
		t.Fatalf("Expected exit code %d, got %d", exitOK, code)
	}
	if code := run([]string{"-table", "-fingerprint", path}, out2); code != exitOK {
		t.Fatalf("Expected exit code %d, got %d", exitOK, code)
	}
	if out1.String() != out2.String() {
		t.Errorf("Parsers produce different output:\n%s\n%s", out1, out2)
	}
}

func TestEval(t *testing.T) {
	out := &bytes.Buffer{}
	s := &session{out: out}
	if s.eval("  ") || s.eval(":v") {
		t.Errorf("Expected only :q to quit")
	}
	if !s.verbose {
		t.Errorf("Expected :v to switch to full rule output")
	}
	s.eval("LET P BE END")
	if !strings.Contains(out.String(), "<Code>         →  ε") {
		t.Errorf("Expected full rules, got\n%s", out.String())
	}
	out.Reset()
	s.eval(":v")
	s.eval("LET P BE END")
	if !strings.HasPrefix(out.String(), "1 3 \n") {
		t.Errorf("Expected rule numbers, got\n%s", out.String())
	}
	if !s.eval(":q") {
		t.Errorf("Expected :q to quit")
	}
}

func TestLeafText(t *testing.T) {
	if s := leafText(gilles.EpsilonToken()); s != "ε" {
		t.Errorf("Expected ε, got %q", s)
	}
	if s := leafText(gilles.MakeToken(gilles.NUMBER, "1", 1, 2)); s != `NUMBER "1"  1:2` {
		t.Errorf("Unexpected leaf text %q", s)
	}
	if s := leafText(gilles.MakeToken(gilles.END, "END", 3, 1)); s != "END  3:1" {
		t.Errorf("Unexpected leaf text %q", s)
	}
	if l := leveledList(nil); len(l) != 0 {
		t.Errorf("Expected empty list for empty tree")
	}
}

func TestEBNFFlag(t *testing.T) {
	defer trace2go.Teardown()
	//
	out := &bytes.Buffer{}
	if code := run([]string{"-ebnf"}, out); code != exitOK {
		t.Fatalf("Expected exit code %d, got %d", exitOK, code)
	}
	if !strings.HasPrefix(out.String(), `Program = "LET" progname "BE" Code "END" .`) {
		t.Errorf("Expected grammar to start with <Program>, is\n%s", out.String())
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("device full")
}

func TestEBNFWriteError(t *testing.T) {
	defer trace2go.Teardown()
	//
	if code := run([]string{"-ebnf"}, brokenWriter{}); code != exitIO {
		t.Errorf("Expected exit code %d for a failing output, got %d", exitIO, code)
	}
}
