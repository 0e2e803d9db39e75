package consolidate

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/lpereira/tabitens/internal/extract"
)

func TestConsolidate_SumsByCode(t *testing.T) {
	rows := []extract.Row{
		{Code: "17.1", Quantity: "5,00"},
		{Code: "17.1", Quantity: "3,50"},
		{Code: "2.24", Quantity: "1.234,56"},
	}

	entries, fallbacks := Consolidate(rows)
	if fallbacks != 0 {
		t.Errorf("expected no parse fallbacks, got %d", fallbacks)
	}

	want := []Entry{
		{"2.24", "1.234,56"},
		{"17.1", "8,50"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Consolidate = %v, want %v", entries, want)
	}
}

func TestConsolidate_NaturalOrder(t *testing.T) {
	rows := []extract.Row{
		{Code: "17.10", Quantity: "1"},
		{Code: "2.1", Quantity: "1"},
		{Code: "17.2", Quantity: "1"},
	}

	entries, _ := Consolidate(rows)
	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.Code
	}

	want := []string{"2.1", "17.2", "17.10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sorted codes = %v, want %v", got, want)
	}
}

func TestConsolidate_OrderIndependent(t *testing.T) {
	rows := []extract.Row{
		{Code: "17.1", Quantity: "5,00"},
		{Code: "17.10", Quantity: "2,00"},
		{Code: "17.1", Quantity: "3,50"},
		{Code: "2.24", Quantity: "1.000,00"},
		{Code: "17.10", Quantity: "0,25"},
	}

	base, baseFallbacks := Consolidate(rows)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]extract.Row, len(rows))
		copy(shuffled, rows)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		entries, fallbacks := Consolidate(shuffled)
		if !reflect.DeepEqual(entries, base) || fallbacks != baseFallbacks {
			t.Fatalf("permutation %d changed the result: %v vs %v", i, entries, base)
		}
	}
}

func TestConsolidate_UnparseableCountsAsZero(t *testing.T) {
	rows := []extract.Row{
		{Code: "17.1", Quantity: "5,00"},
		{Code: "17.1", Quantity: "garbage"},
		{Code: "3", Quantity: "lixo"},
	}

	entries, fallbacks := Consolidate(rows)
	if fallbacks != 2 {
		t.Errorf("expected 2 parse fallbacks, got %d", fallbacks)
	}

	want := []Entry{
		{"3", "0,00"},
		{"17.1", "5,00"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Consolidate = %v, want %v", entries, want)
	}
}

func TestConsolidate_Empty(t *testing.T) {
	entries, fallbacks := Consolidate(nil)
	if len(entries) != 0 || fallbacks != 0 {
		t.Errorf("expected empty result, got %v (%d fallbacks)", entries, fallbacks)
	}
}

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"2.1", "17.2", true},
		{"17.2", "17.10", true},
		{"17.10", "17.100", true},
		{"17.2", "2.1", false},
		{"17.2", "17.2", false},
		{"17", "17.1", true},   // prefix orders first
		{"9", "10", true},      // numeric, not lexicographic
		{"017.2", "17.10", true}, // leading zeros ignored
		{"1a", "1b", true},     // literal segments compare as text
		{"1", "a", true},       // digits order before non-digits
	}
	for _, tc := range tests {
		if got := naturalLess(tc.a, tc.b); got != tc.want {
			t.Errorf("naturalLess(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
