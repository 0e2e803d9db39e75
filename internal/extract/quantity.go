package extract

import (
	"regexp"
	"strings"
)

// quantityPattern finds the first numeric token in a row, trying shapes in
// priority order: thousands-grouped decimal ("1.234,56"), plain decimal
// ("10,5"), bare integer.
var quantityPattern = regexp.MustCompile(`(\d{1,3}(?:\.\d{3})*,\d+|\d+,\d+|\d+)`)

// quantityColumn is the 0-based index of the column that usually holds the
// quantity in an "Itens" table.
const quantityColumn = 2

// PickQuantity selects the quantity value for one row of normalized cells.
// It prefers the fixed quantity column; when that cell is missing, empty or
// the not-available marker, it falls back to scanning the whole row for the
// first numeric token. The column position is usually stable but merged or
// shifted cells do happen, and the fallback recovers those rows.
//
// Returns "" when no quantity can be determined; the caller treats that as
// a skip condition, never an error.
func PickQuantity(cells []string) string {
	if len(cells) > quantityColumn {
		q := Norm(cells[quantityColumn])
		if q != "" && !IsNotAvailable(q) {
			return q
		}
	}

	joined := strings.Join(cells, " ")
	if m := quantityPattern.FindString(joined); m != "" {
		return m
	}
	return ""
}
