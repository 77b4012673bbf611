// Package strutil holds small string helpers shared by handlers and services:
// lenient query-parameter conversion, diacritic folding for search, and slug
// generation.
package strutil

import "strconv"

// ConvertToInt converts a string to int, returning 0 when it does not parse.
// Query parameters are optional, so a bad value falls back to the default.
func ConvertToInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

// ConvertToInt64 converts a string to int64, returning 0 when it does not parse.
func ConvertToInt64(value string) int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
