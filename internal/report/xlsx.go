// Package report renders an extraction result into its output artifacts:
// an xlsx workbook and a plain-text run log.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lpereira/tabitens/internal/consolidate"
	"github.com/lpereira/tabitens/internal/extract"
)

const (
	detailSheet       = "Itens"
	consolidatedSheet = "Consolidado"
)

// WorkbookOptions tunes the rendered workbook.
type WorkbookOptions struct {
	MaxColWidth int // Cap for fitted column widths; <=0 means 40
}

// WriteWorkbook writes the detail and consolidated sheets to an xlsx file at
// path. Both sheets get a frozen header row and columns fitted to their
// longest value.
func WriteWorkbook(path string, rows []extract.Row, consolidated []consolidate.Entry, opt WorkbookOptions) error {
	f := excelize.NewFile()
	defer f.Close()

	detail := make([][]string, 0, len(rows)+1)
	detail = append(detail, []string{"Codigo", "Quantidade"})
	for _, r := range rows {
		detail = append(detail, []string{r.Code, r.Quantity})
	}

	cons := make([][]string, 0, len(consolidated)+1)
	cons = append(cons, []string{"Codigo", "Quantidade Total"})
	for _, e := range consolidated {
		cons = append(cons, []string{e.Code, e.Total})
	}

	if err := f.SetSheetName("Sheet1", detailSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeSheet(f, detailSheet, detail, opt); err != nil {
		return fmt.Errorf("write sheet %s: %w", detailSheet, err)
	}

	if _, err := f.NewSheet(consolidatedSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := writeSheet(f, consolidatedSheet, cons, opt); err != nil {
		return fmt.Errorf("write sheet %s: %w", consolidatedSheet, err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]string, opt WorkbookOptions) error {
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		start, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, start, &cells); err != nil {
			return err
		}
	}

	// Keep the header visible while scrolling.
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	return fitColumns(f, sheet, rows, opt.MaxColWidth)
}

// fitColumns sizes each column to its longest value plus padding, capped.
func fitColumns(f *excelize.File, sheet string, rows [][]string, maxWidth int) error {
	if maxWidth <= 0 {
		maxWidth = 40
	}

	var widths []int
	for _, row := range rows {
		for j, v := range row {
			for j >= len(widths) {
				widths = append(widths, 0)
			}
			if n := len([]rune(v)); n > widths[j] {
				widths[j] = n
			}
		}
	}

	for j, w := range widths {
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		width := w + 2
		if width > maxWidth {
			width = maxWidth
		}
		if err := f.SetColWidth(sheet, col, col, float64(width)); err != nil {
			return err
		}
	}
	return nil
}
