package version

import (
	"fmt"
	"strconv"
	"strings"
)

// ForGeneration appends the -gen<N> suffix used by artifacts of generation 2
// and later.
func ForGeneration(s string, generation int) string {
	if generation <= 1 {
		return s
	}
	return fmt.Sprintf("%s-gen%d", s, generation)
}

// ParseGeneration parses a "gen<N>" path token.
func ParseGeneration(s string) (int, error) {
	rest, ok := strings.CutPrefix(s, "gen")
	if !ok {
		return 0, fmt.Errorf("invalid generation %q", s)
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid generation %q", s)
	}
	return n, nil
}
