// Package deps computes which development dependencies a project is missing
// for the presets to work (TypeScript and the preset package itself) and
// installs them with the project's package manager after confirmation.
package deps
