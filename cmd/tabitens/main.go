// Package main implements the tabitens CLI: extraction and consolidation of
// "Itens" tables from documents into an xlsx workbook and a run log.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lpereira/tabitens/internal/config"
)

var (
	cfg config.Config
	// version information
	version = "dev"
)

func main() {
	cfg = config.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tabitens",
	Short: "Extract and consolidate 'Itens' tables from documents",
	Long: `tabitens reads the tables of a document (.docx, .html, .md, .csv, .pdf),
keeps only those whose header row contains "Itens", extracts validated
(code, quantity) rows and writes an xlsx workbook with a detail sheet and a
consolidated per-code sheet, plus a plain-text run log.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(inspectCmd)
}

// newLogger builds the slog logger the pipeline reports through,
// according to TABITENS_LOG_FORMAT and TABITENS_LOG_LEVEL.
func newLogger() *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
