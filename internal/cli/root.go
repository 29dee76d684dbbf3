package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tsconfig-presets/tsconfig-presets/internal/branding"
	"github.com/tsconfig-presets/tsconfig-presets/internal/bundle"
	"github.com/tsconfig-presets/tsconfig-presets/internal/config"
	tserrors "github.com/tsconfig-presets/tsconfig-presets/internal/errors"
	"github.com/tsconfig-presets/tsconfig-presets/internal/logger"
	"github.com/tsconfig-presets/tsconfig-presets/internal/pkgmanager"
	"github.com/tsconfig-presets/tsconfig-presets/internal/preset"
	"github.com/tsconfig-presets/tsconfig-presets/internal/prompt"
	"github.com/tsconfig-presets/tsconfig-presets/internal/runner"
	"github.com/tsconfig-presets/tsconfig-presets/internal/setup"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagYes   bool
	flagDir   string
	flagDebug bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [preset]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` sets up a project to type-check with a shared TypeScript preset.

It installs TypeScript and the preset package with the project's package
manager, adds a "typecheck" script to package.json, and copies the preset's
tsconfig files into the project. Without a preset argument the preset is
detected from the project's dependencies, or picked from a menu.

Presets: ` + presetList(),
	Args:          validatePresetArg,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(cmd.OutOrStdout(), flagDebug)
		config.Load()
	},
	RunE: runSetup,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Accept all confirmations and the detected preset")
	rootCmd.Flags().StringVarP(&flagDir, "dir", "C", "", "Project directory (default: current directory)")
}

// Execute runs the root command with build info injected via ldflags.
// A failing command is reported on stdout behind a failure icon.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		logger.Failure(err)
		if coded, ok := tserrors.As(err); ok {
			logger.Debug("error code %s %v", coded.Code, coded.Details)
		}
	}
	return err
}

func validatePresetArg(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return tserrors.Newf(tserrors.EUsage, "expected at most one preset, got %d arguments", len(args))
	}
	if len(args) == 1 {
		if _, ok := preset.Parse(args[0]); !ok {
			return preset.UnknownError(args[0])
		}
	}
	return nil
}

func runSetup(cmd *cobra.Command, args []string) error {
	dir := flagDir
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

	nonInteractive := flagYes || config.AssumeYes()
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()

	var p prompt.Prompter = prompt.NewTerminal(in, out)
	if nonInteractive {
		next := p
		if !prompt.IsTerminal(in) {
			// Nobody is there to pick from the menu.
			next = nil
		}
		p = prompt.NewAuto(next, out)
	}

	s := &setup.Setup{
		Prompter: p,
		Runner:   runner.New(),
		Presets:  preset.Bundled(),
		Tool:     tool,
	}

	opts := setup.Options{
		Dir:            dir,
		NonInteractive: nonInteractive,
		PackageManager: config.PackageManager(),
		UserAgent:      os.Getenv(pkgmanager.UserAgentEnv),
	}
	if len(args) == 1 {
		opts.Preset = args[0]
	}

	result, err := s.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	logger.Info("\nDone. Run `%s run typecheck` to type-check the project.", result.PackageManager)
	return nil
}

func presetList() string {
	return strings.Join(preset.Names(), ", ")
}
