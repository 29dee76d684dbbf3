package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tsconfig-presets/tsconfig-presets/internal/bundle"
	"github.com/tsconfig-presets/tsconfig-presets/internal/config"
	"github.com/tsconfig-presets/tsconfig-presets/internal/deps"
	"github.com/tsconfig-presets/tsconfig-presets/internal/manifest"
	"github.com/tsconfig-presets/tsconfig-presets/internal/pkgmanager"
	"github.com/tsconfig-presets/tsconfig-presets/internal/scripts"
)

var doctorDir string

func init() {
	doctorCmd.Flags().StringVarP(&doctorDir, "dir", "C", "", "Project directory (default: current directory)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether a project is set up for type-checking",
	Long: `Run diagnostic checks against a project without changing it.

Reports the package manager in use, whether package.json is valid, which
dependencies setup would install, the typecheck script, and whether a
tsconfig.json is present.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := doctorDir
		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}
			dir = cwd
		}

		tool, err := bundle.Load()
		if err != nil {
			return err
		}

		r := &doctorReport{w: cmd.OutOrStdout()}
		r.run(dir, tool)
		if r.failed > 0 {
			return fmt.Errorf("%d check(s) failed", r.failed)
		}
		return nil
	},
}

type doctorReport struct {
	w      io.Writer
	failed int
}

func (r *doctorReport) ok(format string, a ...any) {
	fmt.Fprintf(r.w, "  [ OK ] "+format+"\n", a...)
}

func (r *doctorReport) miss(format string, a ...any) {
	r.failed++
	fmt.Fprintf(r.w, "  [MISS] "+format+"\n", a...)
}

func (r *doctorReport) warn(format string, a ...any) {
	fmt.Fprintf(r.w, "  [WARN] "+format+"\n", a...)
}

func (r *doctorReport) fail(format string, a ...any) {
	r.failed++
	fmt.Fprintf(r.w, "  [FAIL] "+format+"\n", a...)
}

func (r *doctorReport) run(dir string, tool *bundle.Info) {
	pm := pkgmanager.Detect(dir, os.Getenv(pkgmanager.UserAgentEnv))
	if override, ok := pkgmanager.Parse(config.PackageManager()); ok {
		pm = override
	}

	fmt.Fprintln(r.w, "Runtime check:")
	r.checkBinary("node")
	r.checkBinary(string(pm))

	fmt.Fprintln(r.w, "Project check:")
	m, err := manifest.Load(dir)
	if err != nil {
		r.fail("%v", err)
		return
	}
	r.ok("%s is valid", manifest.FileName)

	pending := deps.Plan(m, tool)
	if pending.Len() == 0 {
		r.ok("dependencies are up to date")
	}
	for _, req := range pending.Items() {
		r.miss("%s needs to be installed", req)
	}
	r.checkInstalledTool(dir, tool)

	switch cmd, ok := m.Script(scripts.TypecheckName); {
	case !ok:
		r.miss("no %q script", scripts.TypecheckName)
	case cmd != scripts.TypecheckCommand:
		r.warn("%q script runs %q instead of %q", scripts.TypecheckName, cmd, scripts.TypecheckCommand)
	default:
		r.ok("%q script runs %q", scripts.TypecheckName, cmd)
	}

	r.checkTsconfig(dir, tool)
}

// checkTsconfig verifies that every extends entry naming the tool's package
// resolves to a config the package exports.
func (r *doctorReport) checkTsconfig(dir string, tool *bundle.Info) {
	data, err := os.ReadFile(filepath.Join(dir, "tsconfig.json"))
	if err != nil {
		r.miss("tsconfig.json not found")
		return
	}
	r.ok("tsconfig.json found")

	var cfg struct {
		Extends json.RawMessage `json:"extends"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		r.warn("not checking tsconfig.json extends: %v", err)
		return
	}
	var extends []string
	if len(cfg.Extends) > 0 {
		var one string
		if err := json.Unmarshal(cfg.Extends, &one); err == nil {
			extends = []string{one}
		} else if err := json.Unmarshal(cfg.Extends, &extends); err != nil {
			r.warn("tsconfig.json extends is neither a string nor an array")
			return
		}
	}

	name := deps.ToolPackage(tool)
	for _, ext := range extends {
		if ext != name && !strings.HasPrefix(ext, name+"/") {
			continue
		}
		target, ok := tool.ExportPath(ext)
		if !ok {
			r.fail("tsconfig.json extends %s, which %s does not export", ext, name)
			continue
		}
		if _, err := fs.Stat(bundle.Files(), target); err != nil {
			r.fail("tsconfig.json extends %s, but %s is missing from %s", ext, target, name)
			continue
		}
		r.ok("tsconfig.json extends %s", ext)
	}
}

func (r *doctorReport) checkBinary(name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		r.miss("%s not found", name)
		return
	}
	r.ok("%s found at %s", name, path)
}

// checkInstalledTool compares the copy of the tool under node_modules, whose
// presets the project's tsconfig.json extends, with this binary's version.
func (r *doctorReport) checkInstalledTool(dir string, tool *bundle.Info) {
	name := deps.ToolPackage(tool)
	data, err := os.ReadFile(filepath.Join(dir, "node_modules", filepath.FromSlash(name), manifest.FileName))
	if err != nil {
		r.warn("%s is not installed in node_modules", name)
		return
	}
	installed, err := bundle.Parse(data)
	if err != nil {
		r.warn("%s in node_modules: %v", name, err)
		return
	}

	cmp, err := deps.CompareVersions(installed.Version, tool.Version)
	switch {
	case err != nil:
		r.warn("cannot compare %s versions: %v", name, err)
	case cmp < 0:
		r.warn("installed %s %s is older than %s", name, installed.Version, tool.Version)
	default:
		r.ok("%s %s installed", name, installed.Version)
	}
}
