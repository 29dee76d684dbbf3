// Package scripts keeps the project's "typecheck" npm script in line with
// the command the presets are designed for.
package scripts

import (
	"fmt"

	tserrors "github.com/tsconfig-presets/tsconfig-presets/internal/errors"
	"github.com/tsconfig-presets/tsconfig-presets/internal/logger"
	"github.com/tsconfig-presets/tsconfig-presets/internal/manifest"
	"github.com/tsconfig-presets/tsconfig-presets/internal/prompt"
)

const (
	// TypecheckName is the script key written to package.json.
	TypecheckName = "typecheck"
	// TypecheckCommand builds every project reference without emitting output.
	TypecheckCommand = "tsc -b --noEmit"
)

// EnsureTypecheck sets scripts.typecheck to TypecheckCommand after asking p.
// It reports whether package.json was rewritten. An existing matching script
// is left alone without asking.
func EnsureTypecheck(m *manifest.Manifest, p prompt.Prompter) (bool, error) {
	existing, ok := m.Script(TypecheckName)
	if ok && existing == TypecheckCommand {
		logger.Skip("%s script already set", TypecheckName)
		return false, nil
	}

	question := fmt.Sprintf("Add a %q script running %q?", TypecheckName, TypecheckCommand)
	if ok {
		question = fmt.Sprintf("Replace the %q script %q with %q?", TypecheckName, existing, TypecheckCommand)
	}

	confirmed, err := p.Confirm(question, true)
	if err != nil {
		return false, tserrors.Wrap(tserrors.EAborted, "confirming "+TypecheckName+" script", err)
	}
	if !confirmed {
		logger.Skip("Left the %s script unchanged", TypecheckName)
		return false, nil
	}

	if err := m.SetScript(TypecheckName, TypecheckCommand); err != nil {
		return false, err
	}
	if err := m.Save(); err != nil {
		return false, err
	}

	logger.Success("Set %s script to %q", TypecheckName, TypecheckCommand)
	return true, nil
}
