// Package report formats diagnostics.Error values for the terminal: a
// file:line:col header, the Code, and the message, colorized when stdout
// is a real terminal (the NO_COLOR convention and a non-tty both disable
// color, following the same detection the evaluator's term builtins use).
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/catseye/Dieter/internal/diagnostics"
)

var (
	codeColor    = color.New(color.FgRed, color.Bold)
	fileColor    = color.New(color.FgCyan)
	messageColor = color.New(color.FgWhite)
)

func init() {
	if !colorEnabled() {
		color.NoColor = true
	}
}

func colorEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Print writes one diagnostic per line to w.
func Print(w io.Writer, errs []*diagnostics.Error) {
	for _, e := range errs {
		PrintOne(w, e)
	}
}

// PrintOne writes a single diagnostic in "file:line:col: code: message" form.
func PrintOne(w io.Writer, e *diagnostics.Error) {
	pos := fmt.Sprintf("%d:%d", e.Token.Line, e.Token.Column)
	if e.File != "" {
		pos = e.File + ":" + pos
	}
	fmt.Fprintf(w, "%s: %s: %s\n",
		fileColor.Sprint(pos),
		codeColor.Sprint(string(e.Code)),
		messageColor.Sprint(e.Message),
	)
}

// Summary writes a one-line count of how many diagnostics were reported,
// using go-humanize so large counts from a big multi-file build still
// read naturally ("1,204 errors" rather than "1204 errors").
func Summary(w io.Writer, errs []*diagnostics.Error) {
	if len(errs) == 0 {
		fmt.Fprintln(w, "no errors")
		return
	}
	noun := "error"
	if len(errs) != 1 {
		noun = "errors"
	}
	fmt.Fprintf(w, "%s %s\n", humanize.Comma(int64(len(errs))), noun)
}
