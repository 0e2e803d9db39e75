package reader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/lpereira/tabitens/internal/doc"
)

// DOCXReader handles .docx files.
type DOCXReader struct{}

func (p *DOCXReader) Read(r io.Reader, filename string) (*doc.Document, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "tabitens-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	parsed, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	d := &doc.Document{Name: baseName(filename)}

	for _, item := range parsed.Document.Body.Items {
		tbl, ok := item.(*docx.Table)
		if !ok {
			continue
		}
		var t doc.Table
		for _, tr := range tbl.TableRows {
			var row []string
			for _, tc := range tr.TableCells {
				row = append(row, docxCellText(tc))
			}
			t.Rows = append(t.Rows, row)
		}
		d.Tables = append(d.Tables, t)
	}

	return d, nil
}

// docxCellText joins the text of all paragraphs in a table cell.
func docxCellText(tc *docx.WTableCell) string {
	var parts []string
	for _, para := range tc.Paragraphs {
		if t := docxParagraphText(para); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
