package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"glox/internal/loxerr"
)

const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitIOErr    = 74
	exitSoftware = 70
)

// reporter prints pipeline errors as "[line N] Category: message".
type reporter struct {
	w        io.Writer
	line     *color.Color
	category *color.Color
}

func newReporter(w io.Writer, mode string) *reporter {
	r := &reporter{
		w:        w,
		line:     color.New(color.Faint),
		category: color.New(color.FgRed, color.Bold),
	}

	enable := false
	switch mode {
	case colorAlways:
		enable = true
	case colorAuto:
		enable = isTerminal(w) && os.Getenv("NO_COLOR") == ""
	}
	if enable {
		r.line.EnableColor()
		r.category.EnableColor()
	} else {
		r.line.DisableColor()
		r.category.DisableColor()
	}

	return r
}

func (r *reporter) report(err error) {
	var lerr *loxerr.Error
	if errors.As(err, &lerr) {
		fmt.Fprintf(r.w, "%s %s: %s\n",
			r.line.Sprintf("[line %d]", lerr.Line),
			r.category.Sprint(lerr.Category),
			lerr.Message)
		return
	}
	fmt.Fprintf(r.w, "%s: %v\n", r.category.Sprint("error"), err)
}

// exitCode maps a run error to the file runner's process status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	category, ok := loxerr.CategoryOf(err)
	if !ok {
		return exitIOErr
	}
	switch category {
	case loxerr.RuntimeError:
		return exitSoftware
	default:
		return exitDataErr
	}
}

type fder interface {
	Fd() uintptr
}

func isTerminal(w any) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
