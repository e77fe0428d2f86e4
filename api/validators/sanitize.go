package validators

import (
	"strings"
	"unicode/utf8"
)

// SanitizeString trims input and caps it at maxLen bytes; maxLen <= 0 disables the cap.
func SanitizeString(input string, maxLen int) string {
	return truncate(strings.TrimSpace(input), maxLen)
}

// truncate caps s at maxLen bytes without splitting a UTF-8 sequence.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
