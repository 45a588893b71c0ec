package utils

import (
	"strconv"
	"strings"
)

// ParseQueryList handles both repeated and comma-separated query params.
// Example:
//
//	?city=Riyadh,Jeddah   → ["Riyadh","Jeddah"]
//	?city=Riyadh&city=Jeddah  → ["Riyadh","Jeddah"]
func ParseQueryList(q map[string][]string, key string) []string {
	values := q[key]

	if len(values) == 0 {
		return nil
	}

	// If single value contains commas, split it
	if len(values) == 1 && strings.Contains(values[0], ",") {
		parts := strings.Split(values[0], ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}

	// Otherwise return the values as-is
	cleaned := make([]string, len(values))
	for i, v := range values {
		cleaned[i] = strings.TrimSpace(v)
	}
	return cleaned
}

// ParsePositiveInt coerces a query param to a positive integer, falling back
// to the default on empty, non-numeric, zero or negative input. Filter
// parsing never errors out a request.
func ParsePositiveInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// ParseNonNegativeFloat coerces a query param to a float >= 0, falling back
// to 0 (no filter) on invalid input.
func ParseNonNegativeFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseBool treats "1" and "true" (any case) as true, everything else false.
func ParseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true"
}
