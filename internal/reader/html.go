package reader

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/lpereira/tabitens/internal/doc"
)

// HTMLReader handles HTML files.
type HTMLReader struct{}

func (p *HTMLReader) Read(r io.Reader, filename string) (*doc.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	d := &doc.Document{Name: baseName(filename)}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			if t := parseHTMLTable(n); len(t.Rows) > 0 {
				d.Tables = append(d.Tables, t)
			}
			return // Nested tables inside cells are not descended into.
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return d, nil
}

// parseHTMLTable collects the <tr> rows of a table, looking through
// <thead>/<tbody>/<tfoot> wrappers. Cells come from <th> and <td> alike;
// row 0 is the header by position, whatever tag it used.
func parseHTMLTable(table *html.Node) doc.Table {
	var t doc.Table

	var collect func(*html.Node)
	collect = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "thead", "tbody", "tfoot":
				collect(c)
			case "tr":
				var row []string
				for cell := c.FirstChild; cell != nil; cell = cell.NextSibling {
					if cell.Type == html.ElementNode && (cell.Data == "td" || cell.Data == "th") {
						row = append(row, textContent(cell))
					}
				}
				if row != nil {
					t.Rows = append(t.Rows, row)
				}
			}
		}
	}
	collect(table)

	return t
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}
