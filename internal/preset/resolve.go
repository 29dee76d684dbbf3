package preset

import (
	"fmt"

	tserrors "github.com/tsconfig-presets/tsconfig-presets/internal/errors"
	"github.com/tsconfig-presets/tsconfig-presets/internal/logger"
	"github.com/tsconfig-presets/tsconfig-presets/internal/manifest"
	"github.com/tsconfig-presets/tsconfig-presets/internal/prompt"
)

// Resolve picks the preset to install.
//
// An explicit name is used as-is and must be a known preset. Otherwise the
// manifest's dependencies are matched against Rules; a detected preset is
// returned directly when nonInteractive, or offered for confirmation.
// Declining, or detecting nothing, falls through to a menu of all presets.
func Resolve(m *manifest.Manifest, explicit string, nonInteractive bool, p prompt.Prompter) (Preset, error) {
	if explicit != "" {
		preset, ok := Parse(explicit)
		if !ok {
			return "", UnknownError(explicit)
		}
		return preset, nil
	}

	if detected, ok := Detect(m); ok {
		if nonInteractive {
			logger.Debug("detected %s preset from dependencies", detected)
			return detected, nil
		}

		use, err := p.Confirm(fmt.Sprintf("Detected a %s project. Use the %s preset?", detected, detected), true)
		if err != nil {
			return "", tserrors.Wrap(tserrors.ENoPresetChosen, "no preset chosen", err)
		}
		if use {
			return detected, nil
		}
	}

	idx, err := p.Select("Which preset do you want to use?", options())
	if err != nil {
		return "", tserrors.Wrap(tserrors.ENoPresetChosen, "no preset chosen (pass one of "+validChoices()+")", err)
	}
	return all[idx], nil
}
