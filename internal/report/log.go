package report

import (
	"fmt"
	"io"
	"time"

	"github.com/lpereira/tabitens/internal/pipeline"
)

// WriteLog renders the human-readable run log: source, counts, skip details
// and both row listings.
func WriteLog(w io.Writer, source string, now time.Time, res *pipeline.Result) error {
	meta := res.Meta

	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	p("LOG - Extração de Tabelas 'Itens'\n")
	p("Arquivo: %s\n", source)
	p("Data/hora: %s\n\n", now.Format("2006-01-02T15:04:05"))

	p("Tabelas totais no documento: %d\n", meta.TablesTotal)
	p("Tabelas identificadas como 'Itens': %d\n", meta.ItensTables)
	p("Linhas extraídas (total): %d\n", meta.RowsExtracted)
	p("Linhas ignoradas: %d\n", meta.RowsIgnored)
	if meta.ParseFallbacks > 0 {
		p("Quantidades não numéricas somadas como zero: %d\n", meta.ParseFallbacks)
	}
	p("\n")

	if len(meta.Skips) > 0 {
		p("Detalhes ignorados (tabela, linha, motivo, valor):\n")
		for _, s := range meta.Skips {
			p("- T%d L%d: %s %s\n", s.Table, s.RowIndex, s.Reason, s.Value)
		}
		p("\n")
	}

	p("=== LOG CONSOLIDADO (Soma por Código) ===\n")
	p("(Codigo | Quantidade Total)\n")
	for _, e := range res.Consolidated {
		p("%s | %s\n", e.Code, e.Total)
	}
	p("\n")

	p("=== LOG DETALHADO (Extração Original) ===\n")
	p("(Codigo | Quantidade)\n")
	for _, r := range res.Rows {
		p("%s | %s\n", r.Code, r.Quantity)
	}

	return err
}
