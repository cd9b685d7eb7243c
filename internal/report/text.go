package report

import (
	"strings"
	"unicode"
)

// normalizeSpace collapses multiple spaces into one and trims the string.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// wordTokens lowercases s and splits it on anything that is not a letter or digit.
func wordTokens(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// matchesPattern reports whether a free-text place name contains pattern.
// Patterns of three letters or fewer ("us", "uk", "eu") must match a whole word
// so that "Australia" does not read as "us".
func matchesPattern(lower string, tokens []string, pattern string) bool {
	if pattern == "" {
		return false
	}
	if len(pattern) > 3 || strings.Contains(pattern, " ") {
		return strings.Contains(lower, pattern)
	}
	for _, t := range tokens {
		if t == pattern {
			return true
		}
	}
	return false
}

// containsFold is a case-insensitive strings.Contains.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
