// Package bundle exposes the tool's own npm package, which ships inside the
// binary: package.json and the shareable configs under configs/ that its
// exports point at. It is the source of the tool's published version, of the
// TypeScript range consumer projects are expected to install, and of the
// files a project's tsconfig.json extends.
package bundle

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/Masterminds/semver/v3"
)

//go:embed package.json configs
var packageFS embed.FS

// Info is the subset of the bundled package.json the CLI consults.
type Info struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Exports          map[string]string `json:"exports"`
	PeerDependencies map[string]string `json:"peerDependencies"`
}

// Files returns the published package contents rooted at the package
// directory, e.g. "package.json" and "configs/node.json".
func Files() fs.FS {
	return packageFS
}

// Load parses the embedded package.json.
func Load() (*Info, error) {
	data, err := fs.ReadFile(packageFS, "package.json")
	if err != nil {
		return nil, fmt.Errorf("reading bundled package.json: %w", err)
	}
	return Parse(data)
}

// Parse decodes package.json bytes into an Info.
func Parse(data []byte) (*Info, error) {
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("parsing bundled package.json: %w", err)
	}
	return &info, nil
}

// OwnVersion returns the tool's version when it is a valid semantic version.
// The second return value is false for empty or malformed versions.
func (i *Info) OwnVersion() (*semver.Version, bool) {
	if i == nil || i.Version == "" {
		return nil, false
	}
	v, err := semver.StrictNewVersion(strings.TrimPrefix(i.Version, "v"))
	if err != nil {
		return nil, false
	}
	return v, true
}

// PeerRange returns the declared peer dependency range for name, or fallback
// when the bundled manifest does not declare one.
func (i *Info) PeerRange(name, fallback string) string {
	if i != nil {
		if r := strings.TrimSpace(i.PeerDependencies[name]); r != "" {
			return r
		}
	}
	return fallback
}

// ExportPath resolves a module specifier such as "tsconfig-presets/node"
// through the package's exports to a slash-separated path inside Files(),
// e.g. "configs/node.json".
func (i *Info) ExportPath(specifier string) (string, bool) {
	if i == nil || i.Name == "" {
		return "", false
	}
	subpath := "."
	if specifier != i.Name {
		rest, ok := strings.CutPrefix(specifier, i.Name+"/")
		if !ok {
			return "", false
		}
		subpath = "./" + rest
	}
	target, ok := i.Exports[subpath]
	if !ok {
		return "", false
	}
	return path.Clean(strings.TrimPrefix(target, "./")), true
}
