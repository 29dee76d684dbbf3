package manifest

// FileName is the manifest file looked up in the project directory.
const FileName = "package.json"

// Manifest is the typed view of a project's package.json.
type Manifest struct {
	Name            string            `json:"name,omitempty"`
	Version         string            `json:"version,omitempty"`
	PackageManager  string            `json:"packageManager,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`

	// Path is the file the manifest was loaded from.
	Path string `json:"-"`

	doc object
}

// Declares reports whether name appears in dependencies or devDependencies.
func (m *Manifest) Declares(name string) bool {
	_, ok := m.DeclaredRange(name)
	return ok
}

// DeclaredRange returns the version range declared for name. dependencies
// takes precedence over devDependencies.
func (m *Manifest) DeclaredRange(name string) (string, bool) {
	if v, ok := m.Dependencies[name]; ok {
		return v, true
	}
	if v, ok := m.DevDependencies[name]; ok {
		return v, true
	}
	return "", false
}

// DependencyNames returns the union of dependency and devDependency names.
func (m *Manifest) DependencyNames() map[string]bool {
	names := make(map[string]bool, len(m.Dependencies)+len(m.DevDependencies))
	for name := range m.Dependencies {
		names[name] = true
	}
	for name := range m.DevDependencies {
		names[name] = true
	}
	return names
}

// Script returns the command registered under name.
func (m *Manifest) Script(name string) (string, bool) {
	cmd, ok := m.Scripts[name]
	return cmd, ok
}
