package prompt

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/tsconfig-presets/tsconfig-presets/internal/logger"
)

var presetOptions = []Option{
	{Label: "base", Description: "Strict defaults"},
	{Label: "node", Description: "Node.js"},
	{Label: "react", Description: "React"},
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"full yes", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"empty uses default yes", "\n", true, true},
		{"empty uses default no", "\n", false, false},
		{"retries on junk", "maybe\ny\n", false, true},
		{"answer without newline", "y", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewTerminal(strings.NewReader(tt.input), &out)
			got, err := p.Confirm("Install dependencies?", tt.defaultYes)
			if err != nil {
				t.Fatalf("Confirm error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "Install dependencies?") {
				t.Errorf("question not printed: %q", out.String())
			}
		})
	}
}

func TestConfirm_EOFAborts(t *testing.T) {
	p := NewTerminal(strings.NewReader(""), &bytes.Buffer{})
	_, err := p.Confirm("Continue?", true)
	if !errors.Is(err, ErrAborted) {
		t.Errorf("Confirm() error = %v, want ErrAborted", err)
	}
}

func TestSelect(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminal(strings.NewReader("2\n"), &out)

	idx, err := p.Select("Which preset?", presetOptions)
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if idx != 1 {
		t.Errorf("Select() = %d, want 1", idx)
	}
	for _, want := range []string{"1) base", "2) node", "Node.js", "[1-3]"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("menu missing %q:\n%s", want, out.String())
		}
	}
}

func TestSelect_EmptyAborts(t *testing.T) {
	for _, input := range []string{"\n", ""} {
		p := NewTerminal(strings.NewReader(input), &bytes.Buffer{})
		_, err := p.Select("Which preset?", presetOptions)
		if !errors.Is(err, ErrAborted) {
			t.Errorf("Select(%q) error = %v, want ErrAborted", input, err)
		}
	}
}

func TestSelect_InvalidNumber(t *testing.T) {
	p := NewTerminal(strings.NewReader("9\n"), &bytes.Buffer{})
	_, err := p.Select("Which preset?", presetOptions)
	if err == nil || !strings.Contains(err.Error(), "invalid selection") {
		t.Errorf("Select() error = %v, want invalid selection", err)
	}
}

func TestAuto(t *testing.T) {
	var out bytes.Buffer
	next := NewTerminal(strings.NewReader("3\n"), &out)
	a := NewAuto(next, &out)

	ok, err := a.Confirm("Overwrite?", false)
	if err != nil || !ok {
		t.Errorf("Auto.Confirm() = %v, %v; want true", ok, err)
	}
	if !strings.Contains(out.String(), "Overwrite?") {
		t.Errorf("auto-accepted question should be echoed: %q", out.String())
	}

	idx, err := a.Select("Which preset?", presetOptions)
	if err != nil || idx != 2 {
		t.Errorf("Auto.Select() = %d, %v; want 2", idx, err)
	}

	if _, err := NewAuto(nil, nil).Select("x", presetOptions); !errors.Is(err, ErrAborted) {
		t.Errorf("Auto without Next should abort, got %v", err)
	}
}

func TestIsTerminalOnRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdin")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}

func TestIsTerminalOnReaders(t *testing.T) {
	if IsTerminal(strings.NewReader("y\n")) {
		t.Error("an in-memory reader is not a terminal")
	}
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()
	if IsTerminal(r) {
		t.Error("a pipe is not a terminal")
	}
}

func TestQuestionsUsePromptIcon(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var out bytes.Buffer
	if _, err := NewTerminal(strings.NewReader("y\n"), &out).Confirm("Continue?", false); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), logger.IconPrompt+" Continue?") {
		t.Errorf("output = %q", out.String())
	}
}
