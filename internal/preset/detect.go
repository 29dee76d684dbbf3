package preset

import "github.com/tsconfig-presets/tsconfig-presets/internal/manifest"

// Rule maps dependency names that mark a kind of project to its preset.
type Rule struct {
	Preset  Preset
	Markers []string
}

// Rules are evaluated in order; the first match wins. A React Native app
// also depends on react and therefore resolves to React.
var Rules = []Rule{
	{Preset: React, Markers: []string{"react", "react-dom", "vite", "next", "@vitejs/plugin-react"}},
	{Preset: ReactNative, Markers: []string{"react-native", "expo"}},
	{Preset: Workers, Markers: []string{"wrangler", "@cloudflare/workers-types"}},
}

// Detect returns the preset of the first rule whose markers appear among
// the manifest's dependencies or devDependencies.
func Detect(m *manifest.Manifest) (Preset, bool) {
	if m == nil {
		return "", false
	}
	declared := m.DependencyNames()
	for _, rule := range Rules {
		for _, marker := range rule.Markers {
			if declared[marker] {
				return rule.Preset, true
			}
		}
	}
	return "", false
}
