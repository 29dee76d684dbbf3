// Package pkgmanager detects which Node package manager governs a project
// and builds the commands used to add development dependencies with it.
package pkgmanager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Name identifies a package manager.
type Name string

// Supported package managers.
const (
	NPM  Name = "npm"
	PNPM Name = "pnpm"
	Yarn Name = "yarn"
	Bun  Name = "bun"
)

// UserAgentEnv is the variable npm-compatible clients set for child processes,
// e.g. "pnpm/9.1.0 npm/? node/v20.11.0 darwin arm64".
const UserAgentEnv = "npm_config_user_agent"

// lockfiles are checked in order within each directory.
var lockfiles = []struct {
	file string
	name Name
}{
	{"pnpm-lock.yaml", PNPM},
	{"yarn.lock", Yarn},
	{"bun.lockb", Bun},
	{"bun.lock", Bun},
	{"package-lock.json", NPM},
	{"npm-shrinkwrap.json", NPM},
}

// Parse converts a string to a known Name.
func Parse(s string) (Name, bool) {
	switch n := Name(strings.ToLower(strings.TrimSpace(s))); n {
	case NPM, PNPM, Yarn, Bun:
		return n, true
	}
	return "", false
}

// Detect returns the package manager for the project at cwd. It never fails:
// lockfile detection is tried first, then the user-agent hint, then npm.
func Detect(cwd, userAgent string) Name {
	if name, ok := FromLockfiles(cwd); ok {
		return name
	}
	return FromUserAgent(userAgent)
}

// FromLockfiles walks from dir up to the filesystem root and reports the
// package manager named by the first packageManager field or lockfile found.
func FromLockfiles(dir string) (Name, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		if name, ok := fromPackageManagerField(dir); ok {
			return name, true
		}
		for _, lf := range lockfiles {
			if _, err := os.Stat(filepath.Join(dir, lf.file)); err == nil {
				return lf.name, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// fromPackageManagerField reads the corepack "packageManager" field,
// e.g. "pnpm@9.1.0", from dir/package.json.
func fromPackageManagerField(dir string) (Name, bool) {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return "", false
	}
	var pkg struct {
		PackageManager string `json:"packageManager"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil || pkg.PackageManager == "" {
		return "", false
	}
	name, _, _ := strings.Cut(pkg.PackageManager, "@")
	return Parse(name)
}

// FromUserAgent inspects the invoking client's user-agent string and falls
// back to npm when no known prefix matches.
func FromUserAgent(userAgent string) Name {
	for _, name := range []Name{PNPM, Yarn, Bun, NPM} {
		if strings.HasPrefix(userAgent, string(name)) {
			return name
		}
	}
	return NPM
}

// InstallArgs returns the executable and arguments that add pkgs as
// development dependencies with the given package manager. Unknown names
// use npm.
func InstallArgs(name Name, pkgs []string) (string, []string) {
	var args []string
	switch name {
	case PNPM:
		args = []string{"add", "-D"}
	case Yarn:
		args = []string{"add", "-D"}
	case Bun:
		args = []string{"add", "-d"}
	default:
		name = NPM
		args = []string{"install", "-D"}
	}
	return string(name), append(args, pkgs...)
}
