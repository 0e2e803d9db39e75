// Package pipeline drives the extraction core over a whole document:
// classify every table, extract rows from the target ones, consolidate, and
// collect the run metadata the report writers need.
package pipeline

import (
	"errors"
	"log/slog"

	"github.com/lpereira/tabitens/internal/consolidate"
	"github.com/lpereira/tabitens/internal/doc"
	"github.com/lpereira/tabitens/internal/extract"
)

// ErrNoRows is returned when no "Itens" table yielded a single valid row.
// It is a terminal condition the caller must report, not a crash: the run
// itself completed and Meta still describes what was seen.
var ErrNoRows = errors.New(`no valid rows found in any "Itens" table`)

// Meta aggregates the counts and skip records of one extraction run.
type Meta struct {
	TablesTotal    int // All tables seen in the document
	ItensTables    int // Tables classified as targets
	RowsExtracted  int
	RowsIgnored    int
	Skips          []extract.SkipRecord
	ParseFallbacks int // Quantities that failed to parse and summed as zero
}

// Result is everything one run produces, handed read-only to the writers.
type Result struct {
	Rows         []extract.Row
	Consolidated []consolidate.Entry
	Meta         Meta
}

// Run extracts and consolidates all target tables of d. Synchronous and
// single-pass; the only error is ErrNoRows, in which case the returned
// Result is still valid so callers can report the counts.
func Run(d *doc.Document, log *slog.Logger) (*Result, error) {
	res := &Result{}
	res.Meta.TablesTotal = len(d.Tables)

	for i, t := range d.Tables {
		tableIndex := i + 1
		if !extract.IsItensTable(t) {
			continue
		}
		res.Meta.ItensTables++

		rows, skips := extract.TableRows(t, tableIndex)
		res.Rows = append(res.Rows, rows...)
		res.Meta.Skips = append(res.Meta.Skips, skips...)

		for _, s := range skips {
			log.Debug("row skipped",
				"table", s.Table,
				"row", s.RowIndex,
				"reason", string(s.Reason),
				"value", s.Value,
			)
		}
		log.Debug("table extracted", "table", tableIndex, "rows", len(rows), "skipped", len(skips))
	}

	res.Meta.RowsExtracted = len(res.Rows)
	res.Meta.RowsIgnored = len(res.Meta.Skips)

	res.Consolidated, res.Meta.ParseFallbacks = consolidate.Consolidate(res.Rows)
	if res.Meta.ParseFallbacks > 0 {
		log.Warn("unparseable quantities summed as zero", "count", res.Meta.ParseFallbacks)
	}

	log.Info("extraction finished",
		"source", d.Name,
		"tables_total", res.Meta.TablesTotal,
		"itens_tables", res.Meta.ItensTables,
		"rows_extracted", res.Meta.RowsExtracted,
		"rows_ignored", res.Meta.RowsIgnored,
	)

	if len(res.Rows) == 0 {
		return res, ErrNoRows
	}
	return res, nil
}
