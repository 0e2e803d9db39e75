// Package extract implements the row-extraction core: cell normalization,
// code validation, quantity picking, table classification and the row
// extractor that turns a classified table into accepted rows plus structured
// skip records.
package extract

import (
	"strings"

	"github.com/lpereira/tabitens/internal/doc"
)

// NotAvailable is the marker spreadsheet formulas leave behind when a lookup
// failed. Cells equal to it (case-insensitive) are treated as empty.
const NotAvailable = "#N/D"

// IsNotAvailable reports whether a normalized cell holds the not-available
// marker.
func IsNotAvailable(s string) bool {
	return strings.EqualFold(s, NotAvailable)
}

// Row is one accepted (code, quantity) pair. Quantity keeps its original
// textual form; parsing happens only at consolidation time so the detail
// sheet shows exactly what the document said.
type Row struct {
	Code     string
	Quantity string
}

// SkipReason identifies why a data row was rejected.
type SkipReason string

const (
	SkipEmptyRow      SkipReason = "skip_empty_row"
	SkipCodeEmptyOrND SkipReason = "skip_code_empty_or_ND"
	SkipCodeInvalid   SkipReason = "skip_code_invalid"
	SkipQtyEmptyOrND  SkipReason = "skip_qty_empty_or_ND"
)

// SkipRecord describes one rejected row. Table and RowIndex are 1-based
// (RowIndex starts at 2: row 1 is the header), matching how the rows appear
// in the source document and in the run log.
type SkipRecord struct {
	Table    int
	RowIndex int
	Reason   SkipReason
	Value    string // Offending value, or "" when there is none
}

// TableRows extracts the accepted rows from a table already classified as a
// target table. tableIndex is the 1-based position of the table in the
// document, used only for skip records.
//
// Every rejected row produces exactly one SkipRecord — rows are never
// silently dropped, so accepted + skipped always equals the number of data
// rows processed. Repeated codes are all kept: consolidation, not
// extraction, is where aggregation happens.
func TableRows(t doc.Table, tableIndex int) ([]Row, []SkipRecord) {
	var rows []Row
	var skips []SkipRecord

	for i, raw := range t.DataRows() {
		rowIndex := i + 2 // 1-based, row 1 is the header

		if len(raw) == 0 {
			skips = append(skips, SkipRecord{tableIndex, rowIndex, SkipEmptyRow, ""})
			continue
		}

		cells := make([]string, len(raw))
		for j, c := range raw {
			cells[j] = Norm(c)
		}

		code := cells[0]
		if code == "" || IsNotAvailable(code) {
			skips = append(skips, SkipRecord{tableIndex, rowIndex, SkipCodeEmptyOrND, ""})
			continue
		}
		if !IsCode(code) {
			skips = append(skips, SkipRecord{tableIndex, rowIndex, SkipCodeInvalid, code})
			continue
		}

		qty := PickQuantity(cells)
		if qty == "" || IsNotAvailable(qty) {
			skips = append(skips, SkipRecord{tableIndex, rowIndex, SkipQtyEmptyOrND, code})
			continue
		}

		rows = append(rows, Row{
			Code:     strings.TrimSpace(code),
			Quantity: strings.TrimSpace(qty),
		})
	}

	return rows, skips
}
