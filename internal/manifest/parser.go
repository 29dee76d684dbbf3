package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tserrors "github.com/tsconfig-presets/tsconfig-presets/internal/errors"
)

// Load reads and validates the package.json in dir.
// It fails with E_MANIFEST_NOT_FOUND when the file is absent and with
// E_INVALID_MANIFEST when it is not a well-formed manifest.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, tserrors.Newf(tserrors.EManifestNotFound, "%s not found in %s", FileName, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, tserrors.Wrap(tserrors.EInvalidManifest, "invalid "+path, err)
	}
	if !result.Valid {
		return nil, tserrors.Newf(tserrors.EInvalidManifest, "invalid %s: %s", path, result.Summary())
	}

	m, err := Parse(data)
	if err != nil {
		return nil, tserrors.Wrap(tserrors.EInvalidManifest, "invalid "+path, err)
	}
	m.Path = path
	return m, nil
}

// Parse decodes package.json content without schema validation.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m.doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return &m, nil
}

// SetScript sets scripts[name] in both the typed view and the document that
// Save writes. Existing script order is kept; a new script is appended.
func (m *Manifest) SetScript(name, command string) error {
	scripts := object{}
	if raw, ok := m.doc.get("scripts"); ok {
		if err := json.Unmarshal(raw, &scripts); err != nil {
			return fmt.Errorf("decoding scripts: %w", err)
		}
	}

	value, err := encodeString(command)
	if err != nil {
		return err
	}
	scripts.set(name, value)

	raw, err := scripts.MarshalJSON()
	if err != nil {
		return err
	}
	m.doc.set("scripts", raw)

	if m.Scripts == nil {
		m.Scripts = make(map[string]string)
	}
	m.Scripts[name] = command
	return nil
}

// Marshal renders the manifest as 2-space indented JSON with a trailing newline.
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m.doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save overwrites the file the manifest was loaded from.
func (m *Manifest) Save() error {
	if m.Path == "" {
		return tserrors.New(tserrors.EPersistFailed, "manifest has no file path")
	}
	data, err := m.Marshal()
	if err != nil {
		return tserrors.Wrap(tserrors.EPersistFailed, "encoding "+m.Path, err)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(m.Path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(m.Path, data, mode); err != nil {
		return tserrors.Wrap(tserrors.EPersistFailed, "writing "+m.Path, err)
	}
	return nil
}

// Summary joins validation issues into a single line.
func (r *ValidationResult) Summary() string {
	parts := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		if issue.Path != "" {
			parts = append(parts, issue.Path+": "+issue.Message)
		} else {
			parts = append(parts, issue.Message)
		}
	}
	return strings.Join(parts, "; ")
}
