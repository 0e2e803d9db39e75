package extract

import (
	"strings"

	"github.com/lpereira/tabitens/internal/doc"
)

// headerKeyword is the single header-cell value that marks a target table.
const headerKeyword = "itens"

// IsItensTable reports whether t is a target "Itens" table. Only the header
// row is inspected: the table matches iff any header cell's normalized text
// equals "itens" case-insensitively. Empty tables never match.
func IsItensTable(t doc.Table) bool {
	header := t.Header()
	if header == nil {
		return false
	}
	for _, cell := range header {
		if strings.EqualFold(Norm(cell), headerKeyword) {
			return true
		}
	}
	return false
}
