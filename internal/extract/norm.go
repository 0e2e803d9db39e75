package extract

import "strings"

// Norm normalizes raw cell text: non-breaking spaces become regular spaces,
// then surrounding whitespace is trimmed. Word table cells are full of
// U+00A0, which would otherwise defeat every comparison downstream.
func Norm(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\u00a0", " "))
}
