package scripts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tserrors "github.com/tsconfig-presets/tsconfig-presets/internal/errors"
	"github.com/tsconfig-presets/tsconfig-presets/internal/manifest"
	"github.com/tsconfig-presets/tsconfig-presets/internal/prompt"
	"github.com/tsconfig-presets/tsconfig-presets/internal/prompt/prompttest"
)

func loadProject(t *testing.T, content string) (*manifest.Manifest, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, manifest.FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := manifest.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return m, path
}

func TestEnsureTypecheck_AlreadySet(t *testing.T) {
	content := `{"scripts": {"typecheck": "tsc -b --noEmit"}}`
	m, path := loadProject(t, content)
	p := &prompttest.Scripted{}

	changed, err := EnsureTypecheck(m, p)
	if err != nil || changed {
		t.Fatalf("EnsureTypecheck() = %v, %v", changed, err)
	}
	if p.Asked() != 0 {
		t.Errorf("no prompt expected, asked %v", p.Questions)
	}
	data, _ := os.ReadFile(path)
	if string(data) != content {
		t.Errorf("file must not be rewritten, got %q", data)
	}
}

func TestEnsureTypecheck_AddsMissingScript(t *testing.T) {
	m, path := loadProject(t, `{"name":"app","scripts":{"build":"vite build"}}`)
	p := &prompttest.Scripted{Answers: []prompttest.Answer{{Yes: true}}}

	changed, err := EnsureTypecheck(m, p)
	if err != nil || !changed {
		t.Fatalf("EnsureTypecheck() = %v, %v", changed, err)
	}
	if !strings.HasPrefix(p.Questions[0], "Add a") {
		t.Errorf("question = %q", p.Questions[0])
	}

	data, _ := os.ReadFile(path)
	want := "{\n  \"name\": \"app\",\n  \"scripts\": {\n    \"build\": \"vite build\",\n    \"typecheck\": \"tsc -b --noEmit\"\n  }\n}\n"
	if string(data) != want {
		t.Errorf("package.json = %q, want %q", data, want)
	}
}

func TestEnsureTypecheck_ConflictMentionsOldValue(t *testing.T) {
	m, path := loadProject(t, `{"scripts":{"typecheck":"tsc --noEmit"}}`)
	p := &prompttest.Scripted{Answers: []prompttest.Answer{{Yes: true}}}

	if _, err := EnsureTypecheck(m, p); err != nil {
		t.Fatalf("EnsureTypecheck: %v", err)
	}
	if !strings.Contains(p.Questions[0], `"tsc --noEmit"`) {
		t.Errorf("question should mention the existing command: %q", p.Questions[0])
	}

	reloaded, err := manifest.Load(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if cmd, _ := reloaded.Script(TypecheckName); cmd != TypecheckCommand {
		t.Errorf("typecheck = %q, want %q", cmd, TypecheckCommand)
	}
}

func TestEnsureTypecheck_Declined(t *testing.T) {
	content := `{"scripts":{"typecheck":"tsc"}}`
	m, path := loadProject(t, content)
	p := &prompttest.Scripted{Answers: []prompttest.Answer{{Yes: false}}}

	changed, err := EnsureTypecheck(m, p)
	if err != nil || changed {
		t.Fatalf("EnsureTypecheck() = %v, %v", changed, err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != content {
		t.Errorf("declined update must leave the file untouched, got %q", data)
	}
	if cmd, _ := m.Script(TypecheckName); cmd != "tsc" {
		t.Errorf("in-memory manifest changed: %q", cmd)
	}
}

func TestEnsureTypecheck_EndOfInput(t *testing.T) {
	content := `{"name":"app"}`
	m, path := loadProject(t, content)
	p := &prompttest.Scripted{Answers: []prompttest.Answer{{Err: prompt.ErrAborted}}}

	changed, err := EnsureTypecheck(m, p)
	if changed || tserrors.GetCode(err) != tserrors.EAborted {
		t.Fatalf("EnsureTypecheck() = %v, %v; want code %s", changed, err, tserrors.EAborted)
	}
	if data, _ := os.ReadFile(path); string(data) != content {
		t.Errorf("aborted update must leave the file untouched, got %q", data)
	}
}
