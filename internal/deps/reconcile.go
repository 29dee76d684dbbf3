package deps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tserrors "github.com/tsconfig-presets/tsconfig-presets/internal/errors"
	"github.com/tsconfig-presets/tsconfig-presets/internal/logger"
	"github.com/tsconfig-presets/tsconfig-presets/internal/pkgmanager"
	"github.com/tsconfig-presets/tsconfig-presets/internal/prompt"
	"github.com/tsconfig-presets/tsconfig-presets/internal/runner"
)

// Reconciler installs the requirements returned by Plan.
type Reconciler struct {
	Dir            string
	PackageManager pkgmanager.Name
	NonInteractive bool
	Prompter       prompt.Prompter
	Runner         runner.Runner
}

// Install confirms and installs pending. It returns true when the install
// command ran successfully, false when nothing was pending or the user
// declined. A failed or unstartable install is fatal.
func (r *Reconciler) Install(ctx context.Context, pending *PendingList) (bool, error) {
	if pending == nil || pending.Len() == 0 {
		return false, nil
	}

	specs := pending.Specs()
	if !r.NonInteractive {
		ok, err := r.Prompter.Confirm("Install "+strings.Join(specs, ", ")+"?", true)
		if err != nil {
			return false, tserrors.Wrap(tserrors.EAborted, "confirming install", err)
		}
		if !ok {
			logger.Skip("Skipped installing %s", strings.Join(specs, ", "))
			return false, nil
		}
	}

	bin, args := pkgmanager.InstallArgs(r.PackageManager, specs)
	command := bin + " " + strings.Join(args, " ")
	logger.Debug("running %s in %s", command, r.Dir)

	code, err := r.Runner.Run(ctx, r.Dir, bin, args)
	if err != nil {
		return false, tserrors.Wrap(tserrors.ESpawnFailed, "could not start "+bin, err)
	}
	if code != 0 {
		return false, tserrors.NewWithDetails(tserrors.EInstallFailed,
			fmt.Sprintf("%s exited with code %d", command, code),
			map[string]string{"exit_code": strconv.Itoa(code), "command": command})
	}

	logger.Success("Installed %s", strings.Join(specs, ", "))
	return true, nil
}
