package reader

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/lpereira/tabitens/internal/doc"
)

// CSVReader handles CSV files. The whole file is one table with the first
// record as its header row. Brazilian exports commonly use ';' and are
// sometimes still ISO8859-1 encoded, hence the two knobs.
type CSVReader struct {
	Delimiter rune
	Latin1    bool
}

func (p *CSVReader) Read(r io.Reader, filename string) (*doc.Document, error) {
	if p.Latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}

	reader := csv.NewReader(r)
	if p.Delimiter != 0 {
		reader.Comma = p.Delimiter
	}
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // Ragged rows are the extractor's problem.

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	d := &doc.Document{Name: baseName(filename)}
	if len(records) > 0 {
		d.Tables = append(d.Tables, doc.Table{Rows: records})
	}

	return d, nil
}
