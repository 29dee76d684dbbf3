package main

import (
	"os"

	"github.com/tsconfig-presets/tsconfig-presets/internal/cli"
	tserrors "github.com/tsconfig-presets/tsconfig-presets/internal/errors"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		os.Exit(tserrors.ExitCode(err))
	}
}
