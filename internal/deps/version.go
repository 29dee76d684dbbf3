package deps

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// operators that may prefix a comparator, longest first.
var operators = []string{">=", "<=", "=>", "=<", "!=", "~>", ">", "<", "=", "^", "~"}

// MinVersion returns the lowest version that satisfies the npm-style range r,
// e.g. "^2.0.0" → 2.0.0, ">1.2.3" → 1.2.4, "1.x || >=3" → 1.0.0.
// Ranges that are not version ranges (dist-tags, "workspace:*", file or git
// specifiers) return an error.
func MinVersion(r string) (*semver.Version, error) {
	r = strings.TrimSpace(r)
	if r == "" {
		r = "*"
	}

	c, err := semver.NewConstraint(r)
	if err != nil {
		return nil, fmt.Errorf("parsing range %q: %w", r, err)
	}

	for _, floor := range []string{"0.0.0", "0.0.0-0"} {
		v := semver.MustParse(floor)
		if c.Check(v) {
			return v, nil
		}
	}

	var lowest *semver.Version
	for _, set := range strings.Split(r, "||") {
		for _, comp := range comparators(set) {
			for _, v := range candidates(comp) {
				if !c.Check(v) {
					continue
				}
				if lowest == nil || v.LessThan(lowest) {
					lowest = v
				}
			}
		}
	}
	if lowest == nil {
		return nil, fmt.Errorf("no version satisfies range %q", r)
	}
	return lowest, nil
}

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b. A leading "v" is tolerated.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

// comparators splits one "||" alternative into individual comparators,
// re-attaching operators written with a space (">= 1.2.3") and dropping the
// dash of hyphen ranges.
func comparators(set string) []string {
	fields := strings.Fields(strings.ReplaceAll(set, ",", " "))

	var out []string
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		if f == "-" {
			continue
		}
		if isOperator(f) && i+1 < len(fields) {
			f += fields[i+1]
			i++
		}
		out = append(out, f)
	}
	return out
}

func isOperator(s string) bool {
	for _, op := range operators {
		if s == op {
			return true
		}
	}
	return false
}

// candidates returns the versions that could be the lower bound of comp.
// Upper-bound and exclusion comparators contribute nothing.
func candidates(comp string) []*semver.Version {
	op := ""
	for _, o := range operators {
		if strings.HasPrefix(comp, o) {
			op = o
			break
		}
	}
	switch op {
	case "<", "<=", "=<", "!=":
		return nil
	}

	v, err := floorVersion(strings.TrimPrefix(comp, op))
	if err != nil {
		return nil
	}
	if op != ">" {
		return []*semver.Version{v}
	}

	patch, minor, major := v.IncPatch(), v.IncMinor(), v.IncMajor()
	return []*semver.Version{&patch, &minor, &major}
}

// floorVersion turns a possibly partial version ("1", "1.2.x", "*") into the
// lowest concrete version it covers.
func floorVersion(s string) (*semver.Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")

	var parts []string
	for _, p := range strings.Split(s, ".") {
		if p == "x" || p == "X" || p == "*" || p == "" {
			break
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return semver.MustParse("0.0.0"), nil
	}
	return semver.NewVersion(strings.Join(parts, "."))
}
