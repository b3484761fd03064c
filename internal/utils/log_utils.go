package utils

import (
	"strings"
	"unicode"
)

// MaxLogStringLength caps user-provided strings in log lines.
const MaxLogStringLength = 200

// SanitizeLogString makes a user-controlled string safe for logging: it
// truncates long values, strips control characters and escapes format
// specifiers so the value cannot forge log lines.
func SanitizeLogString(input string) string {
	if input == "" {
		return ""
	}

	if len(input) > MaxLogStringLength {
		input = input[:MaxLogStringLength] + "... (truncated)"
	}

	input = strings.ReplaceAll(input, "\r\n", "\n")
	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, input)

	return strings.ReplaceAll(sanitized, "%", "%%")
}
