// Package reader turns document files into the rows-of-cells model the
// extraction core consumes. Each supported format has its own reader; none
// of the format libraries leak past this package.
package reader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/lpereira/tabitens/internal/doc"
)

// Reader converts raw document bytes into a doc.Document.
type Reader interface {
	Read(r io.Reader, filename string) (*doc.Document, error)
}

// Options carries per-format knobs a reader may need.
type Options struct {
	CSVDelimiter rune // Field delimiter for CSV input (default ';')
	CSVLatin1    bool // Decode CSV as ISO8859-1
}

// SupportedExtensions lists file extensions this tool can read tables from.
var SupportedExtensions = map[string]bool{
	".docx": true,
	".html": true,
	".htm":  true,
	".md":   true,
	".csv":  true,
	".pdf":  true,
}

// ForFile returns the appropriate reader for a filename.
func ForFile(filename string, opt Options) (Reader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx":
		return &DOCXReader{}, nil
	case ".html", ".htm":
		return &HTMLReader{}, nil
	case ".md", ".markdown":
		return &MarkdownReader{}, nil
	case ".csv":
		delim := opt.CSVDelimiter
		if delim == 0 {
			delim = ';'
		}
		return &CSVReader{Delimiter: delim, Latin1: opt.CSVLatin1}, nil
	case ".pdf":
		return &PDFReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension %q (supported: .docx .html .md .csv .pdf)", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".markdown" {
		return true
	}
	return SupportedExtensions[ext]
}

func baseName(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}
