package doc

import (
	"reflect"
	"testing"
)

func TestTableHeader(t *testing.T) {
	if got := (Table{}).Header(); got != nil {
		t.Errorf("empty table header = %v, want nil", got)
	}
	tbl := Table{Rows: [][]string{{"Itens", "Qtd"}, {"1.1", "2"}}}
	if got := tbl.Header(); !reflect.DeepEqual(got, []string{"Itens", "Qtd"}) {
		t.Errorf("header = %v", got)
	}
}

func TestTableDataRows(t *testing.T) {
	if got := (Table{Rows: [][]string{{"only header"}}}).DataRows(); got != nil {
		t.Errorf("header-only table data rows = %v, want nil", got)
	}
	tbl := Table{Rows: [][]string{{"h"}, {"a"}, {"b"}}}
	if got := len(tbl.DataRows()); got != 2 {
		t.Errorf("data rows = %d, want 2", got)
	}
}
