package pipeline

import (
	"testing"
	"time"
)

func TestSortByDate(t *testing.T) {
	pipe := NewPipeline(time.UTC)
	txs := []Transaction{
		{ID: "b", Date: "2024-01-15"},
		{ID: "a", Date: "2024-01-15"},
		{ID: "c", Date: "2024-02-01"},
	}

	t.Run("newest first", func(t *testing.T) {
		got, err := pipe.SortByDate(txs, SortNewestFirst)
		if err != nil {
			t.Fatalf("SortByDate() error = %v", err)
		}
		want := []string{"c", "a", "b"}
		for i := range want {
			if got[i].ID != want[i] {
				t.Fatalf("order = %v, want %v", ids(got), want)
			}
		}
	})

	t.Run("oldest first", func(t *testing.T) {
		got, err := pipe.SortByDate(txs, SortOldestFirst)
		if err != nil {
			t.Fatalf("SortByDate() error = %v", err)
		}
		want := []string{"a", "b", "c"}
		for i := range want {
			if got[i].ID != want[i] {
				t.Fatalf("order = %v, want %v", ids(got), want)
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := pipe.SortByDate(nil, SortNewestFirst)
		if err != nil {
			t.Fatalf("SortByDate() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %d transactions, want 0", len(got))
		}
	})

	t.Run("input untouched", func(t *testing.T) {
		if _, err := pipe.SortByDate(txs, SortNewestFirst); err != nil {
			t.Fatalf("SortByDate() error = %v", err)
		}
		if txs[0].ID != "b" {
			t.Errorf("input slice was reordered: %v", ids(txs))
		}
	})
}

func ids(txs []Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.ID
	}
	return out
}

func TestTotal(t *testing.T) {
	txs := []Transaction{
		{Amount: -5000},
		{Amount: 2000},
		{Amount: -1500},
	}
	if got := Total(txs); got != -4500 {
		t.Errorf("Total() = %d, want -4500", got)
	}
	if got := Total(nil); got != 0 {
		t.Errorf("Total(nil) = %d, want 0", got)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		milliunits int64
		currency   string
		want       string
	}{
		{-12340, "CAD", "-12.34 CAD"},
		{12340, "CAD", "12.34 CAD"},
		{0, "USD", "0.00 USD"},
		{-999, "CAD", "-0.99 CAD"},
		{1000000, "EUR", "1000.00 EUR"},
		{-20050, "CAD", "-20.05 CAD"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatAmount(tt.milliunits, tt.currency); got != tt.want {
				t.Errorf("FormatAmount(%d, %q) = %q, want %q", tt.milliunits, tt.currency, got, tt.want)
			}
		})
	}
}
