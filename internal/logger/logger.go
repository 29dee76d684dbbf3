// Package logger prints colored status lines for each setup step.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Status icons rendered in front of step messages.
const (
	IconSuccess = "✔"
	IconSkip    = "–"
	IconFailure = "✖"
	IconPrompt  = "?"
)

var (
	out = io.Writer(os.Stdout)

	green   = color.New(color.FgGreen)
	magenta = color.New(color.FgHiMagenta)
	red     = color.New(color.FgRed)
	cyan    = color.New(color.FgCyan)
	faint   = color.New(color.Faint)

	debugEnabled bool
)

// Init sets the output writer and toggles debug logging.
func Init(w io.Writer, enableDebug bool) {
	if w != nil {
		out = w
	}
	debugEnabled = enableDebug
}

// Info prints an informational line.
func Info(format string, a ...any) {
	fmt.Fprintf(out, format+"\n", a...)
}

// Warn prints a warning line in magenta.
func Warn(format string, a ...any) {
	magenta.Fprintf(out, format+"\n", a...)
}

// Debug prints a cyan line when debug logging is enabled.
func Debug(format string, a ...any) {
	if !debugEnabled {
		return
	}
	cyan.Fprintf(out, format+"\n", a...)
}

// Success prints a completed step.
func Success(format string, a ...any) {
	green.Fprint(out, IconSuccess+" ")
	fmt.Fprintf(out, format+"\n", a...)
}

// Skip prints a step that was intentionally not performed.
func Skip(format string, a ...any) {
	faint.Fprintf(out, IconSkip+" "+format+"\n", a...)
}

// Failure prints a fatal error line.
func Failure(err error) {
	red.Fprint(out, IconFailure+" ")
	fmt.Fprintln(out, err.Error())
}
