package deps

import (
	"github.com/tsconfig-presets/tsconfig-presets/internal/branding"
	"github.com/tsconfig-presets/tsconfig-presets/internal/bundle"
	"github.com/tsconfig-presets/tsconfig-presets/internal/logger"
	"github.com/tsconfig-presets/tsconfig-presets/internal/manifest"
)

const (
	// TypeScriptPackage is the type-checker the presets are written for.
	TypeScriptPackage = "typescript"
	// FallbackTypeScriptRange is used when the bundled package.json declares
	// no TypeScript peer range.
	FallbackTypeScriptRange = ">=5.0.0"
	// LatestTag is installed when the tool's own version is unknown.
	LatestTag = "latest"
)

// Requirement is a package slated for installation.
type Requirement struct {
	Name    string
	Version string
}

// String renders the requirement as a package-manager argument, "name@version".
func (r Requirement) String() string {
	return r.Name + "@" + r.Version
}

// PendingList is an ordered set of requirements keyed by package name.
type PendingList struct {
	items []Requirement
}

// Add queues r. A requirement for a name already queued replaces it in place.
func (l *PendingList) Add(r Requirement) {
	for i, existing := range l.items {
		if existing.Name == r.Name {
			l.items[i] = r
			return
		}
	}
	l.items = append(l.items, r)
}

// Items returns the queued requirements in insertion order.
func (l *PendingList) Items() []Requirement {
	out := make([]Requirement, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of queued requirements.
func (l *PendingList) Len() int {
	return len(l.items)
}

// Specs returns the "name@version" form of every queued requirement.
func (l *PendingList) Specs() []string {
	specs := make([]string, len(l.items))
	for i, r := range l.items {
		specs[i] = r.String()
	}
	return specs
}

// ToolPackage returns the npm name of the tool, preferring the bundled
// manifest's name.
func ToolPackage(tool *bundle.Info) string {
	if tool != nil && tool.Name != "" {
		return tool.Name
	}
	return branding.PackageName()
}

// Plan computes the requirements m is missing.
//
// TypeScript is queued at the bundled peer range when the project declares
// none. The tool package is queued at ^<own version> (or "latest" when the
// own version is unknown) when undeclared, and re-queued at ^<own version>
// when the lowest version its declared range admits is older than ours.
func Plan(m *manifest.Manifest, tool *bundle.Info) *PendingList {
	pending := &PendingList{}

	if !m.Declares(TypeScriptPackage) {
		pending.Add(Requirement{
			Name:    TypeScriptPackage,
			Version: tool.PeerRange(TypeScriptPackage, FallbackTypeScriptRange),
		})
	}

	toolName := ToolPackage(tool)
	own, ownKnown := tool.OwnVersion()
	declared, isDeclared := m.DeclaredRange(toolName)

	switch {
	case !isDeclared && ownKnown:
		pending.Add(Requirement{Name: toolName, Version: "^" + own.String()})
	case !isDeclared:
		pending.Add(Requirement{Name: toolName, Version: LatestTag})
	case ownKnown:
		lowest, err := MinVersion(declared)
		if err != nil {
			logger.Debug("not checking %s range %q: %v", toolName, declared, err)
			break
		}
		if lowest.LessThan(own) {
			pending.Add(Requirement{Name: toolName, Version: "^" + own.String()})
		}
	}

	return pending
}
