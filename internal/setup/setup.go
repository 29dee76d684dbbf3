// Package setup runs the steps that bring a project onto a preset, in order:
// read package.json, detect the package manager, install missing
// dependencies, pick the preset, add the typecheck script, copy the preset
// files. The first failing step ends the run.
package setup

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/tsconfig-presets/tsconfig-presets/internal/bundle"
	"github.com/tsconfig-presets/tsconfig-presets/internal/deps"
	"github.com/tsconfig-presets/tsconfig-presets/internal/logger"
	"github.com/tsconfig-presets/tsconfig-presets/internal/manifest"
	"github.com/tsconfig-presets/tsconfig-presets/internal/pkgmanager"
	"github.com/tsconfig-presets/tsconfig-presets/internal/preset"
	"github.com/tsconfig-presets/tsconfig-presets/internal/prompt"
	"github.com/tsconfig-presets/tsconfig-presets/internal/runner"
	"github.com/tsconfig-presets/tsconfig-presets/internal/scripts"
)

// Options are the per-run inputs.
type Options struct {
	// Dir is the project directory containing package.json.
	Dir string
	// Preset is the preset named on the command line, if any.
	Preset string
	// NonInteractive auto-accepts confirmations and detected presets.
	NonInteractive bool
	// PackageManager overrides detection when it names a known manager.
	PackageManager string
	// UserAgent is the npm_config_user_agent hint used when no lockfile is found.
	UserAgent string
}

// Setup holds the collaborators a run depends on.
type Setup struct {
	Prompter prompt.Prompter
	Runner   runner.Runner
	Presets  fs.FS
	Tool     *bundle.Info
}

// Result summarizes a completed run.
type Result struct {
	Preset         preset.Preset
	PackageManager pkgmanager.Name
	Installed      []string
	ScriptUpdated  bool
	Files          []string
}

// Run executes every step against opts.Dir.
func (s *Setup) Run(ctx context.Context, opts Options) (*Result, error) {
	m, err := manifest.Load(opts.Dir)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded %s (name=%q version=%q packageManager=%q)", m.Path, m.Name, m.Version, m.PackageManager)

	result := &Result{PackageManager: s.packageManager(opts)}
	logger.Debug("using package manager %s", result.PackageManager)

	pending := deps.Plan(m, s.Tool)
	reconciler := &deps.Reconciler{
		Dir:            opts.Dir,
		PackageManager: result.PackageManager,
		NonInteractive: opts.NonInteractive,
		Prompter:       s.Prompter,
		Runner:         s.Runner,
	}
	installed, err := reconciler.Install(ctx, pending)
	if err != nil {
		return nil, err
	}
	if installed {
		result.Installed = pending.Specs()
		// The package manager rewrote package.json.
		if m, err = manifest.Load(opts.Dir); err != nil {
			return nil, fmt.Errorf("reloading after install: %w", err)
		}
	} else if pending.Len() == 0 {
		logger.Skip("Dependencies already up to date")
	}

	chosen, err := preset.Resolve(m, opts.Preset, opts.NonInteractive, s.Prompter)
	if err != nil {
		return nil, err
	}
	result.Preset = chosen

	if result.ScriptUpdated, err = scripts.EnsureTypecheck(m, s.Prompter); err != nil {
		return nil, err
	}

	files, err := preset.Copy(s.Presets, chosen, opts.Dir)
	if err != nil {
		return nil, err
	}
	result.Files = files
	logger.Success("Copied %s preset (%d files)", chosen, len(files))

	return result, nil
}

func (s *Setup) packageManager(opts Options) pkgmanager.Name {
	if opts.PackageManager != "" {
		if name, ok := pkgmanager.Parse(opts.PackageManager); ok {
			return name
		}
		logger.Warn("Ignoring unknown package manager %q", opts.PackageManager)
	}
	return pkgmanager.Detect(opts.Dir, opts.UserAgent)
}
