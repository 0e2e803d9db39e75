package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lpereira/tabitens/internal/doc"
	"github.com/lpereira/tabitens/internal/pipeline"
	"github.com/lpereira/tabitens/internal/reader"
	"github.com/lpereira/tabitens/internal/report"
)

var (
	outPath string
	logPath string
	noLog   bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <input>",
	Short: "Extract 'Itens' tables into an xlsx workbook and a run log",
	Long: `Extract reads the input document, pulls the (code, quantity) rows out of
every table whose header contains "Itens", and writes:

  - an xlsx workbook: sheet "Itens" with the raw rows and sheet
    "Consolidado" with per-code totals in natural code order
  - a text log with run counts and every skipped row

Examples:
  tabitens extract medicao.docx
  tabitens extract medicao.docx -o saida.xlsx --log saida_log.txt
  tabitens extract planilha.csv --no-log`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&outPath, "out", "o", "", "output .xlsx path (default: input name with .xlsx)")
	extractCmd.Flags().StringVar(&logPath, "log", "", "run log path (default: output name + _log.txt)")
	extractCmd.Flags().BoolVar(&noLog, "no-log", false, "do not write the run log")
}

func runExtract(cmd *cobra.Command, args []string) error {
	input := args[0]
	log := newLogger()

	document, err := readDocument(input)
	if err != nil {
		return err
	}

	res, err := pipeline.Run(document, log)
	if errors.Is(err, pipeline.ErrNoRows) {
		return fmt.Errorf("%w (document had %d tables, %d classified as 'Itens')",
			err, res.Meta.TablesTotal, res.Meta.ItensTables)
	}
	if err != nil {
		return err
	}

	out := outPath
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + ".xlsx"
	}
	if err := report.WriteWorkbook(out, res.Rows, res.Consolidated, report.WorkbookOptions{
		MaxColWidth: cfg.MaxColWidth,
	}); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	log.Info("workbook written", "path", out)

	if !noLog {
		lp := logPath
		if lp == "" {
			lp = strings.TrimSuffix(out, filepath.Ext(out)) + "_log.txt"
		}
		f, err := os.Create(lp)
		if err != nil {
			return fmt.Errorf("create log file: %w", err)
		}
		werr := report.WriteLog(f, filepath.Base(input), time.Now(), res)
		if cerr := f.Close(); werr == nil {
			werr = cerr
		}
		if werr != nil {
			return fmt.Errorf("write log file: %w", werr)
		}
		log.Info("run log written", "path", lp)
	}

	return nil
}

// readDocument opens the input file and parses it with the reader matching
// its extension.
func readDocument(input string) (*doc.Document, error) {
	rd, err := reader.ForFile(input, readerOptions())
	if err != nil {
		return nil, err
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	document, err := rd.Read(f, filepath.Base(input))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(input), err)
	}
	return document, nil
}

func readerOptions() reader.Options {
	return reader.Options{
		CSVDelimiter: rune(cfg.CSVDelimiter[0]),
		CSVLatin1:    cfg.CSVLatin1,
	}
}
