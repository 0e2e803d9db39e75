package doc

// Table is an ordered sequence of rows of cell text. Row 0 is the header
// row and is never emitted as data by the extraction core.
type Table struct {
	Rows [][]string
}

// Document is the minimal view of a parsed file the extraction core works
// on: a name and the tables found in it, in document order. Readers fill
// it; the core never touches the underlying format library.
type Document struct {
	Name   string  // Source name (usually the filename)
	Tables []Table // All tables in the document, target or not
}

// Header returns the table's header row, or nil for an empty table.
func (t Table) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// DataRows returns the rows after the header, or nil if there are none.
func (t Table) DataRows() [][]string {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}
