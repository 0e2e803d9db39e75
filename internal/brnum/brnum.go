// Package brnum parses and formats numbers in Brazilian-Portuguese
// convention: '.' groups thousands, ',' marks the decimal.
package brnum

import (
	"strconv"
	"strings"
)

// ParseFloat converts a pt-BR formatted numeric string ("1.234,56", "10,5",
// "100") into a float64. The second return value reports whether the input
// parsed; on failure the value is 0. Callers that tolerate bad input (the
// consolidator does, by policy) use the zero and count the failure instead
// of aborting.
func ParseFloat(s string) (float64, bool) {
	clean := strings.ReplaceAll(s, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")
	v, err := strconv.ParseFloat(strings.TrimSpace(clean), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatFloat renders v with exactly two decimal digits in pt-BR convention:
// 1234.56 becomes "1.234,56". The number is first built with ','-grouping
// and '.'-decimal, then both markers are swapped in a single pass so the
// separators never collide mid-substitution.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)

	// strings.Replacer scans the input once, so the swap cannot cascade.
	return separatorSwap.Replace(b.String())
}

var separatorSwap = strings.NewReplacer(",", ".", ".", ",")
