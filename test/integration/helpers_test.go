//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // TSCONFIG_PRESETS_HOME, holds config.yaml
	BinDir     string // prepended to PATH, holds fake package managers
	ProjectDir string // the project being set up
	LogPath    string // every fake package manager invocation is appended here
}

// setupTestEnv creates isolated temp directories and points the tool's home
// and PATH at them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake package managers are shell scripts")
	}

	env := &testEnv{
		HomeDir:    t.TempDir(),
		BinDir:     t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	env.LogPath = filepath.Join(env.BinDir, "calls.log")

	t.Setenv("TSCONFIG_PRESETS_HOME", env.HomeDir)
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("npm_config_user_agent", "")

	return env
}

// installFakePackageManager writes an executable named name into the bin dir.
// It logs its arguments and then replaces package.json with installed, or
// exits with exitCode when that is non-zero.
func installFakePackageManager(t *testing.T, env *testEnv, name, installed string, exitCode int) {
	t.Helper()

	var body strings.Builder
	body.WriteString("#!/bin/sh\n")
	body.WriteString(`echo "$0 $*" >> "` + env.LogPath + "\"\n")
	if exitCode != 0 {
		body.WriteString("exit " + strconv.Itoa(exitCode) + "\n")
	} else {
		body.WriteString("cat > package.json <<'JSON'\n" + installed + "\nJSON\n")
	}

	path := filepath.Join(env.BinDir, name)
	if err := os.WriteFile(path, []byte(body.String()), 0755); err != nil {
		t.Fatalf("writing fake %s: %v", name, err)
	}
}

// calls returns the logged package manager invocations, without the binary path.
func calls(t *testing.T, env *testEnv) []string {
	t.Helper()
	data, err := os.ReadFile(env.LogPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading call log: %v", err)
	}
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		out = append(out, strings.TrimPrefix(line, env.BinDir+string(os.PathSeparator)))
	}
	return out
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
