package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Page returns items after skipping skip entries, at most limit of them. A
// limit of zero means no limit. The result never aliases items.
func Page[T any](items []T, limit, skip int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && limit < end-skip {
		end = skip + limit
	}
	out := make([]T, end-skip)
	copy(out, items[skip:end])
	return out
}

// ParseNonNegative parses an optional non-negative integer query value. An
// empty value yields def.
func ParseNonNegative(name, value string, def int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative", name)
	}
	return n, nil
}
