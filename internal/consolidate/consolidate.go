// Package consolidate groups extracted rows by code, sums their quantities
// and renders the totals back into pt-BR format in natural code order.
package consolidate

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lpereira/tabitens/internal/brnum"
	"github.com/lpereira/tabitens/internal/extract"
)

// Entry is one consolidated (code, formatted total) pair.
type Entry struct {
	Code  string
	Total string
}

// Consolidate sums the parsed quantity of every row sharing a code and
// returns one Entry per distinct code, sorted in natural order (numeric
// segments compare as numbers, so "17.2" < "17.10").
//
// Quantities that fail to parse contribute zero instead of aborting the
// run; the second return value counts those fallbacks so callers can
// surface a data-quality warning. The result is a pure function of rows:
// permuting the input changes neither totals nor order.
func Consolidate(rows []extract.Row) ([]Entry, int) {
	sums := make(map[string]float64)
	fallbacks := 0

	for _, r := range rows {
		v, ok := brnum.ParseFloat(r.Quantity)
		if !ok {
			fallbacks++
		}
		sums[r.Code] += v
	}

	codes := make([]string, 0, len(sums))
	for code := range sums {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		return naturalLess(codes[i], codes[j])
	})

	entries := make([]Entry, 0, len(codes))
	for _, code := range codes {
		entries = append(entries, Entry{
			Code:  code,
			Total: brnum.FormatFloat(sums[code]),
		})
	}
	return entries, fallbacks
}

var digitRun = regexp.MustCompile(`\d+`)

// naturalLess compares two codes by their alternating digit and non-digit
// segments: digit runs compare as numbers, everything else as literal text.
// Digit runs order before non-digit runs, and a code that is a prefix of
// another orders first.
func naturalLess(a, b string) bool {
	as, bs := splitSegments(a), splitSegments(b)
	for i := 0; i < len(as) && i < len(bs); i++ {
		x, y := as[i], bs[i]
		if x == y {
			continue
		}
		xd, yd := isDigits(x), isDigits(y)
		switch {
		case xd && yd:
			// Numerically equal runs ("017" vs "17") defer to later segments.
			if less, eq := digitsCompare(x, y); !eq {
				return less
			}
		case xd != yd:
			return xd
		default:
			return x < y
		}
	}
	return len(as) < len(bs)
}

// splitSegments cuts s into maximal runs of digits and non-digits.
func splitSegments(s string) []string {
	var segs []string
	last := 0
	for _, loc := range digitRun.FindAllStringIndex(s, -1) {
		if loc[0] > last {
			segs = append(segs, s[last:loc[0]])
		}
		segs = append(segs, s[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(s) {
		segs = append(segs, s[last:])
	}
	return segs
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// digitsCompare compares two digit runs numerically without converting
// them: leading zeros are ignored, then a shorter run is smaller, then the
// runs compare lexicographically. Never overflows, whatever the code looks
// like.
func digitsCompare(a, b string) (less, equal bool) {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return len(a) < len(b), false
	}
	return a < b, a == b
}
