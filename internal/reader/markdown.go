package reader

import (
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/lpereira/tabitens/internal/doc"
)

// MarkdownReader handles Markdown files, reading GFM pipe tables via the
// goldmark table extension.
type MarkdownReader struct{}

func (p *MarkdownReader) Read(r io.Reader, filename string) (*doc.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(src))

	d := &doc.Document{Name: baseName(filename)}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		tbl, ok := n.(*east.Table)
		if !ok {
			continue
		}
		var t doc.Table
		// Children are the header row followed by the data rows; cells are
		// the children of each row node.
		for rowNode := tbl.FirstChild(); rowNode != nil; rowNode = rowNode.NextSibling() {
			var row []string
			for cell := rowNode.FirstChild(); cell != nil; cell = cell.NextSibling() {
				if _, ok := cell.(*east.TableCell); ok {
					row = append(row, strings.TrimSpace(string(cell.Text(src))))
				}
			}
			if row != nil {
				t.Rows = append(t.Rows, row)
			}
		}
		if len(t.Rows) > 0 {
			d.Tables = append(d.Tables, t)
		}
	}

	return d, nil
}
