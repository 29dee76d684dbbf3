// Package manifest reads, validates, and writes a project's package.json.
// Dependency maps, scripts, and version are exposed as typed fields; every
// other top-level member is carried through untouched and written back in
// its original position.
package manifest
