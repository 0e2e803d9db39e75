package reader

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/lpereira/tabitens/internal/doc"
)

// PDFReader handles PDF files. PDF carries no table markup, so tables are
// reconstructed from positioned text: each text row's fragments become
// cells, consecutive rows with at least two fragments form a table, and a
// prose (single-fragment) row or a page break ends it.
type PDFReader struct{}

func (p *PDFReader) Read(r io.Reader, filename string) (*doc.Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "tabitens-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	d := &doc.Document{Name: baseName(filename)}

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}

		var current doc.Table
		flush := func() {
			if len(current.Rows) > 0 {
				d.Tables = append(d.Tables, current)
				current = doc.Table{}
			}
		}

		for _, row := range rows {
			cells := rowCells(row)
			if len(cells) < 2 {
				flush() // A prose line breaks the table.
				continue
			}
			current.Rows = append(current.Rows, cells)
		}
		flush() // Tables never span page breaks.
	}

	return d, nil
}

// rowCells turns one positioned text row into cells, left to right.
// Fragments separated by less than one em stay in the same cell; a larger
// horizontal gap starts the next cell.
func rowCells(row *pdflib.Row) []string {
	texts := make([]pdflib.Text, len(row.Content))
	copy(texts, row.Content)
	sort.Slice(texts, func(i, j int) bool { return texts[i].X < texts[j].X })

	var cells []string
	var cell strings.Builder
	prevEnd := 0.0

	flush := func() {
		if s := strings.TrimSpace(cell.String()); s != "" {
			cells = append(cells, s)
		}
		cell.Reset()
	}

	for _, t := range texts {
		if t.S == "" {
			continue
		}
		gap := t.X - prevEnd
		em := t.FontSize
		if em <= 0 {
			em = 10
		}
		if cell.Len() > 0 && gap > em {
			flush()
		} else if cell.Len() > 0 && gap > em/4 {
			cell.WriteByte(' ')
		}
		cell.WriteString(t.S)
		prevEnd = t.X + t.W
	}
	flush()

	return cells
}
