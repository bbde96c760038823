// Package lox wires the scanner, parser and interpreter into one pipeline.
package lox

import (
	"fmt"
	"io"
	"os"
	"strings"

	"glox/internal/interpreter"
	"glox/internal/parser"
	"glox/internal/scanner"
)

// Dump selects a debug listing written while a source runs.
type Dump uint8

const (
	DumpTokens Dump = 1 << iota
	DumpAST
	DumpEnv
)

var dumpNames = map[string]Dump{
	"tokens": DumpTokens,
	"ast":    DumpAST,
	"env":    DumpEnv,
}

// ParseDump maps a dump name ("tokens", "ast" or "env") to its flag.
func ParseDump(name string) (Dump, error) {
	d, ok := dumpNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown dump %q (want tokens, ast or env)", name)
	}
	return d, nil
}

type Options struct {
	Dumps Dump
	// DumpOut receives the debug listings. Defaults to stderr.
	DumpOut io.Writer
}

// Run scans, parses and interprets source against interp. Each stage stops
// at its first error and the error is returned unchanged.
func Run(source string, interp *interpreter.Interpreter, opts Options) error {
	out := opts.DumpOut
	if out == nil {
		out = os.Stderr
	}

	toks, err := scanner.Scan(source)
	if err != nil {
		return err
	}
	if opts.Dumps&DumpTokens != 0 {
		for _, tok := range toks {
			fmt.Fprintln(out, tok)
		}
	}

	stmts, err := parser.Parse(toks)
	if err != nil {
		return err
	}
	if opts.Dumps&DumpAST != 0 {
		for _, stmt := range stmts {
			fmt.Fprintln(out, stmt)
		}
	}

	err = interp.Interpret(stmts)
	if opts.Dumps&DumpEnv != 0 {
		DumpEnvironment(out, interp.Env())
	}
	return err
}

// RunFresh runs source on a new interpreter printing to stdout.
func RunFresh(source string, stdout io.Writer, opts Options) error {
	return Run(source, interpreter.New(stdout), opts)
}

// DumpEnvironment writes one "name = value" line per binding, sorted by name.
func DumpEnvironment(w io.Writer, env *interpreter.Environment) {
	for _, name := range env.Keys() {
		v, _ := env.Get(name)
		fmt.Fprintf(w, "%s = %s\n", name, v)
	}
}
