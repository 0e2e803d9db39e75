package extract

import "regexp"

// codePattern accepts hierarchical numeric codes like "17.4", "13.12",
// "2.24" — one digit run, optionally a dot and a second run. Multi-dot
// codes ("1.2.3"), alphabetic codes and negatives are all rejected.
var codePattern = regexp.MustCompile(`^\s*\d+(?:\.\d+)?\s*$`)

// IsCode reports whether s is a valid item code.
func IsCode(s string) bool {
	return codePattern.MatchString(s)
}
