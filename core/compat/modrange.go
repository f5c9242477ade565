package compat

import "strings"

// Range is the game version range encoded in an OSL module version. An
// unbounded range applies to every game version.
type Range struct {
	Min       string
	Max       string
	Unbounded bool
}

// ParseRange extracts the range of a module version. Two encodings exist:
// <base>+mc<min>#<max> and <base>+mc<min>-mc<max>. Versions without an mc
// token are unbounded; ok is false when a token is present but malformed.
func ParseRange(v string) (r Range, ok bool) {
	parts := splitTrimmed(v, "mc")

	switch len(parts) {
	case 2:
		bounds := splitTrimmed(parts[1], "#")
		if len(bounds) != 2 || bounds[0] == "" || bounds[1] == "" {
			return Range{}, false
		}
		return Range{Min: bounds[0], Max: bounds[1]}, true
	case 3:
		if len(parts[1]) < 2 || parts[2] == "" {
			return Range{}, false
		}
		return Range{Min: parts[1][:len(parts[1])-1], Max: parts[2]}, true
	default:
		return Range{Unbounded: true}, true
	}
}

// splitTrimmed splits like strings.Split but drops trailing empty fields.
func splitTrimmed(s, sep string) []string {
	parts := strings.Split(s, sep)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
