// Package cli defines the Cobra command tree. The root command performs the
// preset setup; list, doctor, version and config are auxiliary subcommands.
// Commands only parse flags and wire collaborators; the work happens in
// internal/setup and the packages it calls.
package cli
