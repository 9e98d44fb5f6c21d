package validation

import (
	"strconv"
	"strings"
)

// SanitizeInput sanitizes user input by removing potentially dangerous characters
func SanitizeInput(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Trim whitespace
	input = strings.TrimSpace(input)

	return input
}

// FoldKey returns the case-folded form used to index names
func FoldKey(s string) string {
	return strings.ToUpper(s)
}

// EqualFold reports whether two names are equal ignoring case. Two names
// are equal exactly when their FoldKey forms are, even if upper-casing
// changes their byte length.
func EqualFold(lhs, rhs string) bool {
	return FoldKey(lhs) == FoldKey(rhs)
}

// ContainsFold reports whether substr is within s, ignoring case
func ContainsFold(s, substr string) bool {
	return strings.Contains(FoldKey(s), FoldKey(substr))
}

// ParseSelection converts a 1-based menu answer into a 0-based index.
// Anything that is not a number in [1, count] yields ok=false.
func ParseSelection(input string, count int) (int, bool) {
	n, err := strconv.Atoi(SanitizeInput(input))
	if err != nil {
		return 0, false
	}

	index := n - 1
	if index < 0 || index >= count {
		return 0, false
	}
	return index, true
}
