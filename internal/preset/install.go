package preset

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	tserrors "github.com/tsconfig-presets/tsconfig-presets/internal/errors"
)

//go:embed all:presets
var presetFS embed.FS

// Bundled returns the preset trees shipped in the binary, one top-level
// directory per preset.
func Bundled() fs.FS {
	sub, err := fs.Sub(presetFS, "presets")
	if err != nil {
		panic(fmt.Sprintf("bundled presets: %v", err))
	}
	return sub
}

// Copy writes every file of preset p from fsys into dest, overwriting files
// that already exist. It returns the slash-separated paths it wrote.
func Copy(fsys fs.FS, p Preset, dest string) ([]string, error) {
	root := string(p)

	info, err := fs.Stat(fsys, root)
	if err != nil || !info.IsDir() {
		return nil, tserrors.Newf(tserrors.EPresetNotFound,
			"preset %q is missing from this installation; reinstall the tool", p)
	}

	var written []string
	err = fs.WalkDir(fsys, root, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := name[len(root):]
		if rel == "" {
			return os.MkdirAll(dest, 0755)
		}
		rel = rel[1:] // drop the leading "/"
		target := filepath.Join(dest, filepath.FromSlash(rel))

		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		if err := copyFile(fsys, name, target); err != nil {
			return err
		}
		written = append(written, path.Clean(rel))
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("copying preset %s to %s: %w", p, dest, err)
	}
	return written, nil
}

// copyFile replaces dst with the contents of src.
func copyFile(fsys fs.FS, src, dst string) error {
	data, err := fs.ReadFile(fsys, src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
