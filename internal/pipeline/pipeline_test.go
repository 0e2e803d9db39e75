package pipeline

import (
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/lpereira/tabitens/internal/consolidate"
	"github.com/lpereira/tabitens/internal/doc"
	"github.com/lpereira/tabitens/internal/extract"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_SingleTargetTable(t *testing.T) {
	d := &doc.Document{
		Name: "medicao.docx",
		Tables: []doc.Table{{Rows: [][]string{
			{"Itens", "Qtd"},
			{"17.1", "", "5,00"},
			{"17.1", "", "3,50"},
			{"#N/D", "", "1"},
		}}},
	}

	res, err := Run(d, testLogger())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	wantRows := []extract.Row{
		{Code: "17.1", Quantity: "5,00"},
		{Code: "17.1", Quantity: "3,50"},
	}
	if !reflect.DeepEqual(res.Rows, wantRows) {
		t.Errorf("rows = %v, want %v", res.Rows, wantRows)
	}

	wantCons := []consolidate.Entry{{Code: "17.1", Total: "8,50"}}
	if !reflect.DeepEqual(res.Consolidated, wantCons) {
		t.Errorf("consolidated = %v, want %v", res.Consolidated, wantCons)
	}

	m := res.Meta
	if m.TablesTotal != 1 || m.ItensTables != 1 || m.RowsExtracted != 2 || m.RowsIgnored != 1 {
		t.Errorf("unexpected meta: %+v", m)
	}
	if len(m.Skips) != 1 || m.Skips[0].Reason != extract.SkipCodeEmptyOrND {
		t.Errorf("expected single skip_code_empty_or_ND, got %v", m.Skips)
	}
}

func TestRun_IgnoresNonTargetTables(t *testing.T) {
	d := &doc.Document{
		Name: "mixed.docx",
		Tables: []doc.Table{
			{Rows: [][]string{{"Resumo", "Valor"}, {"17.1", "x", "99,00"}}},
			{Rows: [][]string{{"Itens", "Qtd"}, {"2.1", "", "1,00"}}},
			{Rows: [][]string{{"Itens", "Qtd"}, {"2.1", "", "2,00"}}},
		},
	}

	res, err := Run(d, testLogger())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Meta.TablesTotal != 3 || res.Meta.ItensTables != 2 {
		t.Errorf("meta = %+v, want 3 tables / 2 targets", res.Meta)
	}
	// Rows from the non-target table never appear, duplicates across target
	// tables are summed.
	wantCons := []consolidate.Entry{{Code: "2.1", Total: "3,00"}}
	if !reflect.DeepEqual(res.Consolidated, wantCons) {
		t.Errorf("consolidated = %v, want %v", res.Consolidated, wantCons)
	}
}

func TestRun_SkipRecordsCarryTableIndex(t *testing.T) {
	d := &doc.Document{
		Tables: []doc.Table{
			{Rows: [][]string{{"Outros"}}},
			{Rows: [][]string{{"Itens"}, {"not-a-code", "", "1"}, {"5", "", "2"}}},
		},
	}

	res, err := Run(d, testLogger())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Meta.Skips) != 1 {
		t.Fatalf("expected one skip, got %v", res.Meta.Skips)
	}
	s := res.Meta.Skips[0]
	if s.Table != 2 || s.RowIndex != 2 || s.Reason != extract.SkipCodeInvalid {
		t.Errorf("unexpected skip record: %+v", s)
	}
}

func TestRun_NoTargetTables(t *testing.T) {
	d := &doc.Document{
		Name: "other.docx",
		Tables: []doc.Table{
			{Rows: [][]string{{"Nome", "Valor"}, {"a", "b"}}},
		},
	}

	res, err := Run(d, testLogger())
	if !errors.Is(err, ErrNoRows) {
		t.Fatalf("expected ErrNoRows, got %v", err)
	}
	if res == nil {
		t.Fatal("result must still be returned with ErrNoRows")
	}
	if res.Meta.TablesTotal != 1 || res.Meta.ItensTables != 0 {
		t.Errorf("unexpected meta: %+v", res.Meta)
	}
}

func TestRun_TargetTableWithNoValidRows(t *testing.T) {
	d := &doc.Document{
		Tables: []doc.Table{
			{Rows: [][]string{{"Itens", "Qtd"}, {"#N/D", "", "1"}}},
		},
	}

	res, err := Run(d, testLogger())
	if !errors.Is(err, ErrNoRows) {
		t.Fatalf("expected ErrNoRows, got %v", err)
	}
	if res.Meta.ItensTables != 1 || res.Meta.RowsIgnored != 1 {
		t.Errorf("unexpected meta: %+v", res.Meta)
	}
}

func TestRun_CountsParseFallbacks(t *testing.T) {
	d := &doc.Document{
		Tables: []doc.Table{
			// Quantity column holds a token the locale parser cannot read;
			// the picker accepts it, consolidation falls back to zero.
			{Rows: [][]string{{"Itens", "Qtd"}, {"17.1", "", "1,2,3"}}},
		},
	}

	res, err := Run(d, testLogger())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Meta.ParseFallbacks != 1 {
		t.Errorf("expected 1 parse fallback, got %d", res.Meta.ParseFallbacks)
	}
	wantCons := []consolidate.Entry{{Code: "17.1", Total: "0,00"}}
	if !reflect.DeepEqual(res.Consolidated, wantCons) {
		t.Errorf("consolidated = %v, want %v", res.Consolidated, wantCons)
	}
}
