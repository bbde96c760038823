package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/tevino/abool/v2"

	"glox/internal/interpreter"
	"glox/internal/lox"
)

type repl struct {
	in          *bufio.Reader
	out         io.Writer
	errOut      io.Writer
	rep         *reporter
	cfg         Config
	interactive bool

	interp *interpreter.Interpreter
	// interrupted is set by the first Ctrl-C and cleared by the next line read.
	interrupted *abool.AtomicBool
}

func newREPL(in io.Reader, out, errOut io.Writer, rep *reporter, cfg Config) *repl {
	return &repl{
		in:          bufio.NewReader(in),
		out:         out,
		errOut:      errOut,
		rep:         rep,
		cfg:         cfg,
		interactive: isTerminal(in),
		interp:      interpreter.New(out),
		interrupted: abool.New(),
	}
}

// run reads and runs lines until EOF or an empty line.
func (r *repl) run() error {
	if r.interactive {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt)
		defer signal.Stop(sigs)
		go r.watchInterrupts(sigs)

		fmt.Fprintln(r.out, "glox repl, empty line or Ctrl-D to exit")
	}

	for {
		if r.interactive {
			fmt.Fprint(r.out, r.cfg.Prompt)
		}

		line, err := r.in.ReadString('\n')
		r.interrupted.UnSet()
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		if strings.TrimSpace(line) == "" {
			return nil
		}
		r.runLine(line)

		if err != nil { // EOF after a final unterminated line
			return nil
		}
	}
}

func (r *repl) watchInterrupts(sigs <-chan os.Signal) {
	for range sigs {
		if r.onInterrupt() {
			fmt.Fprintln(r.out)
			os.Exit(130)
		}
		fmt.Fprintln(r.out, "\n(press Ctrl-C again or enter an empty line to exit)")
		fmt.Fprint(r.out, r.cfg.Prompt)
	}
}

// onInterrupt reports whether this Ctrl-C follows another one with no line
// read in between, which ends the session.
func (r *repl) onInterrupt() bool {
	return !r.interrupted.SetToIf(false, true)
}

// runLine runs one line and reports any error; errors never end the session.
func (r *repl) runLine(line string) {
	if strings.TrimSpace(line) == ":env" {
		lox.DumpEnvironment(r.out, r.interp.Env())
		return
	}

	interp := r.interp
	if !r.cfg.Persist {
		interp = interpreter.New(r.out)
		r.interp = interp
	}

	if err := lox.Run(line, interp, r.cfg.options(r.errOut)); err != nil {
		r.rep.report(err)
	}
}
