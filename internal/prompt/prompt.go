// Package prompt is the interaction layer: yes/no confirmations and
// single-choice menus. Callers depend on the Prompter interface; Terminal
// talks to a user, Auto accepts every confirmation for --yes runs.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/tsconfig-presets/tsconfig-presets/internal/logger"
	"golang.org/x/term"
)

// ErrAborted is returned when the user gives no answer (empty selection or
// end of input).
var ErrAborted = errors.New("prompt aborted")

// Option is one entry of a selection menu.
type Option struct {
	Label       string
	Description string
}

// Prompter asks the user questions.
type Prompter interface {
	// Confirm asks a yes/no question. An empty answer selects defaultYes.
	Confirm(message string, defaultYes bool) (bool, error)
	// Select presents options and returns the chosen index.
	Select(message string, options []Option) (int, error)
}

// Terminal reads answers line by line from an input stream.
type Terminal struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewTerminal returns a Terminal prompter reading from r and writing to w.
func NewTerminal(r io.Reader, w io.Writer) *Terminal {
	return &Terminal{reader: bufio.NewReader(r), w: w}
}

var (
	questionMark = color.New(color.FgCyan, color.Bold).SprintFunc()
	hint         = color.New(color.Faint).SprintFunc()
)

// Confirm asks until it gets y/yes, n/no, or an empty line.
func (t *Terminal) Confirm(message string, defaultYes bool) (bool, error) {
	choices := "y/N"
	if defaultYes {
		choices = "Y/n"
	}

	for {
		fmt.Fprintf(t.w, "%s %s %s ", questionMark(logger.IconPrompt), message, hint("("+choices+")"))

		line, err := t.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(t.w, "Please answer y or n.\n")
	}
}

// Select prints a numbered menu. An empty answer aborts.
func (t *Terminal) Select(message string, options []Option) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("no options to select from")
	}

	fmt.Fprintf(t.w, "%s %s\n", questionMark(logger.IconPrompt), message)
	for i, opt := range options {
		if opt.Description != "" {
			fmt.Fprintf(t.w, "  %d) %s %s\n", i+1, opt.Label, hint("- "+opt.Description))
		} else {
			fmt.Fprintf(t.w, "  %d) %s\n", i+1, opt.Label)
		}
	}
	fmt.Fprintf(t.w, "Enter number [1-%d]: ", len(options))

	line, err := t.readLine()
	if err != nil {
		return 0, err
	}
	if line == "" {
		return 0, ErrAborted
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(options) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(options))
	}
	return num - 1, nil
}

// readLine returns the next trimmed line. End of input without any text
// is reported as ErrAborted.
func (t *Terminal) readLine() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(t.w)
			return "", ErrAborted
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Auto accepts every confirmation and delegates selections to Next.
type Auto struct {
	Next Prompter
	w    io.Writer
}

// NewAuto returns an Auto prompter that reports accepted questions on w.
func NewAuto(next Prompter, w io.Writer) *Auto {
	return &Auto{Next: next, w: w}
}

// Confirm always answers yes.
func (a *Auto) Confirm(message string, _ bool) (bool, error) {
	if a.w != nil {
		fmt.Fprintf(a.w, "%s %s %s\n", questionMark(logger.IconPrompt), message, hint("(yes)"))
	}
	return true, nil
}

// Select delegates to the wrapped prompter.
func (a *Auto) Select(message string, options []Option) (int, error) {
	if a.Next == nil {
		return 0, ErrAborted
	}
	return a.Next.Select(message, options)
}

// IsTerminal reports whether r is a file attached to an interactive terminal.
// Pipes, regular files and in-memory readers are not.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
