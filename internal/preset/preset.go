// Package preset defines the closed set of bundled TypeScript presets, picks
// one for a project, and copies its files into place.
package preset

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	tserrors "github.com/tsconfig-presets/tsconfig-presets/internal/errors"
	"github.com/tsconfig-presets/tsconfig-presets/internal/prompt"
)

// Preset names a bundled configuration directory.
type Preset string

// The bundled presets, in menu order.
const (
	Base        Preset = "base"
	Node        Preset = "node"
	React       Preset = "react"
	ReactNative Preset = "react-native"
	Workers     Preset = "workers"
)

var all = []Preset{Base, Node, React, ReactNative, Workers}

var descriptions = map[Preset]string{
	Base:        "Strict compiler defaults for any TypeScript project",
	Node:        "Node.js libraries, CLIs and servers",
	React:       "React applications built with Vite or Next.js",
	ReactNative: "React Native and Expo applications",
	Workers:     "Cloudflare Workers",
}

// All returns every preset in menu order.
func All() []Preset {
	out := make([]Preset, len(all))
	copy(out, all)
	return out
}

// Names returns the preset names in menu order.
func Names() []string {
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = string(p)
	}
	return names
}

// Parse returns the preset named s.
func Parse(s string) (Preset, bool) {
	for _, p := range all {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// Description returns the one-line summary shown in menus.
func (p Preset) Description() string {
	return descriptions[p]
}

func (p Preset) String() string {
	return string(p)
}

// Suggest returns the preset name that best fuzzy-matches s, e.g. "rn" →
// react-native.
func Suggest(s string) (Preset, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	matches := fuzzy.Find(s, Names())
	if len(matches) == 0 {
		return "", false
	}
	return all[matches[0].Index], true
}

// UnknownError reports name as an invalid preset, with a suggestion when one
// is close enough.
func UnknownError(name string) error {
	msg := fmt.Sprintf("unknown preset %q", name)
	details := map[string]string{"preset": name}
	if suggestion, ok := Suggest(name); ok {
		msg += fmt.Sprintf(" (did you mean %s?)", suggestion)
		details["suggestion"] = string(suggestion)
	}
	msg += "; valid presets: " + validChoices()
	return tserrors.NewWithDetails(tserrors.EInvalidPreset, msg, details)
}

func options() []prompt.Option {
	opts := make([]prompt.Option, len(all))
	for i, p := range all {
		opts[i] = prompt.Option{Label: string(p), Description: p.Description()}
	}
	return opts
}

func validChoices() string {
	return strings.Join(Names(), ", ")
}
