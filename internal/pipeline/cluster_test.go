package pipeline

import (
	"testing"
	"time"
)

func mustValidate(t *testing.T, txs []Transaction) []datedTransaction {
	t.Helper()
	dated, err := validateBatch(txs, time.UTC)
	if err != nil {
		t.Fatalf("validateBatch() error = %v", err)
	}
	return dated
}

func groupIDs(group []datedTransaction) []string {
	ids := make([]string, len(group))
	for i, tx := range group {
		ids[i] = tx.ID
	}
	return ids
}

func TestGroupByConsecutiveDates(t *testing.T) {
	t.Run("groups transactions within the gap", func(t *testing.T) {
		txs := []Transaction{
			{ID: "1", Date: "2024-01-15", Amount: -5000},
			{ID: "2", Date: "2024-01-16", Amount: -3000},
			{ID: "3", Date: "2024-01-18", Amount: -2000},
			{ID: "4", Date: "2024-01-25", Amount: -4000},
			{ID: "5", Date: "2024-01-26", Amount: -2000},
			{ID: "6", Date: "2024-01-28", Amount: -3000},
		}

		groups := groupByConsecutiveDates(mustValidate(t, txs), 3)
		if len(groups) != 2 {
			t.Fatalf("got %d groups, want 2", len(groups))
		}
		if len(groups[0]) != 3 || len(groups[1]) != 3 {
			t.Errorf("group sizes = %d, %d; want 3, 3", len(groups[0]), len(groups[1]))
		}
	})

	t.Run("rejects single-date groups", func(t *testing.T) {
		txs := []Transaction{
			{ID: "1", Date: "2024-01-15", Amount: -5000},
			{ID: "2", Date: "2024-01-15", Amount: -3000},
			{ID: "3", Date: "2024-01-20", Amount: -2000},
		}

		groups := groupByConsecutiveDates(mustValidate(t, txs), 2)
		if len(groups) != 0 {
			t.Errorf("got %d groups, want 0", len(groups))
		}
	})

	t.Run("accepts a two-date pair", func(t *testing.T) {
		txs := []Transaction{
			{ID: "1", Date: "2024-01-15", Amount: -5000},
			{ID: "2", Date: "2024-01-16", Amount: -3000},
		}

		groups := groupByConsecutiveDates(mustValidate(t, txs), 2)
		if len(groups) != 1 || len(groups[0]) != 2 {
			t.Fatalf("groups = %v", groups)
		}
	})

	t.Run("rejects three transactions on one date", func(t *testing.T) {
		txs := []Transaction{
			{ID: "1", Date: "2024-01-15", Amount: -5000},
			{ID: "2", Date: "2024-01-15", Amount: -3000},
			{ID: "3", Date: "2024-01-15", Amount: -2000},
		}

		groups := groupByConsecutiveDates(mustValidate(t, txs), 2)
		if len(groups) != 0 {
			t.Errorf("got %d groups, want 0", len(groups))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if groups := groupByConsecutiveDates(nil, 2); len(groups) != 0 {
			t.Errorf("got %d groups, want 0", len(groups))
		}
	})

	t.Run("gap zero only chains same-day transactions", func(t *testing.T) {
		txs := []Transaction{
			{ID: "1", Date: "2024-01-15", Amount: -5000},
			{ID: "2", Date: "2024-01-15", Amount: -3000},
			{ID: "3", Date: "2024-01-16", Amount: -2000},
		}

		// The Jan 16 transaction breaks off into its own group, so no group
		// ever reaches two distinct dates.
		groups := groupByConsecutiveDates(mustValidate(t, txs), 0)
		if len(groups) != 0 {
			t.Errorf("got %d groups, want 0", len(groups))
		}
	})

	t.Run("gap measured against the immediately preceding transaction", func(t *testing.T) {
		// Each consecutive pair is 2 days apart even though the whole run
		// spans 6 days.
		txs := []Transaction{
			{ID: "1", Date: "2024-01-10", Amount: -1000},
			{ID: "2", Date: "2024-01-12", Amount: -1000},
			{ID: "3", Date: "2024-01-14", Amount: -1000},
			{ID: "4", Date: "2024-01-16", Amount: -1000},
		}

		groups := groupByConsecutiveDates(mustValidate(t, txs), 2)
		if len(groups) != 1 || len(groups[0]) != 4 {
			t.Fatalf("groups = %d, want one group of 4", len(groups))
		}
	})

	t.Run("sorts by date with id tie-break", func(t *testing.T) {
		txs := []Transaction{
			{ID: "b", Date: "2024-01-15", Amount: -1000},
			{ID: "a", Date: "2024-01-15", Amount: -1000},
			{ID: "c", Date: "2024-01-16", Amount: -1000},
		}

		groups := groupByConsecutiveDates(mustValidate(t, txs), 1)
		if len(groups) != 1 {
			t.Fatalf("got %d groups, want 1", len(groups))
		}
		ids := groupIDs(groups[0])
		want := []string{"a", "b", "c"}
		for i := range want {
			if ids[i] != want[i] {
				t.Fatalf("order = %v, want %v", ids, want)
			}
		}
	})

	t.Run("emitted transactions are a subset of the input", func(t *testing.T) {
		txs := []Transaction{
			{ID: "1", Date: "2024-01-15", Amount: -5000},
			{ID: "2", Date: "2024-01-16", Amount: -3000},
			{ID: "3", Date: "2024-02-20", Amount: -2000},
		}

		groups := groupByConsecutiveDates(mustValidate(t, txs), 2)
		var total int
		for _, g := range groups {
			total += len(g)
		}
		if total >= len(txs) {
			t.Errorf("emitted %d transactions, want fewer than %d (lone Feb transaction dropped)", total, len(txs))
		}
	})
}

func TestShouldIncludeInTrip(t *testing.T) {
	tests := []struct {
		name     string
		tx       Transaction
		settings Settings
		want     bool
	}{
		{
			name:     "includes negative transactions by default",
			tx:       Transaction{Amount: -5000, CategoryName: "Food"},
			settings: DefaultSettings,
			want:     true,
		},
		{
			name:     "excludes positive amounts when configured",
			tx:       Transaction{Amount: 5000, CategoryName: "Food"},
			settings: Settings{MaxDaysBetween: 2, ExcludePositiveTransactions: true},
			want:     false,
		},
		{
			name:     "includes positive amounts otherwise",
			tx:       Transaction{Amount: 5000, CategoryName: "Food"},
			settings: DefaultSettings,
			want:     true,
		},
		{
			name:     "excludes bills",
			tx:       Transaction{Amount: -5000, CategoryName: "Electric Bill"},
			settings: DefaultSettings,
			want:     false,
		},
		{
			name:     "excludes transfer-flagged transactions",
			tx:       Transaction{Amount: -5000, HasTransferTag: true},
			settings: DefaultSettings,
			want:     false,
		},
		{
			name:     "excludes raw transfer memos",
			tx:       Transaction{Amount: -5000, Memo: "moving money #Transfer"},
			settings: DefaultSettings,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldIncludeInTrip(tt.tx, tt.settings); got != tt.want {
				t.Errorf("ShouldIncludeInTrip() = %v, want %v", got, tt.want)
			}
		})
	}
}
