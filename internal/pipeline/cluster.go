package pipeline

import (
	"sort"
	"strings"

	"cloud.google.com/go/civil"
)

// IncludeFunc decides whether a transaction participates in trip clustering.
type IncludeFunc func(tx Transaction, settings Settings) bool

// ShouldIncludeInTrip is the default inclusion predicate: it drops bills,
// anything carrying a transfer tag (flagged or still raw in the memo), and,
// when configured, inflows.
func ShouldIncludeInTrip(tx Transaction, settings Settings) bool {
	if settings.ExcludePositiveTransactions && tx.Amount > 0 {
		return false
	}
	if IsBillTransaction(tx) {
		return false
	}
	if tx.HasTransferTag {
		return false
	}
	// The memo may not have been through hashtag extraction yet.
	if strings.Contains(strings.ToLower(tx.Memo), transferTag) {
		return false
	}
	return true
}

// groupByConsecutiveDates buckets transactions into contiguous date-proximity
// groups. Transactions are stable-sorted by date, ties broken by id, then
// walked in order: a gap larger than maxDaysBetween to the immediately
// preceding transaction closes the current group. Only groups spanning at
// least two distinct calendar dates qualify; the rest are dropped, never
// merged into a neighbour.
func groupByConsecutiveDates(txs []datedTransaction, maxDaysBetween int) [][]datedTransaction {
	if len(txs) == 0 {
		return nil
	}

	sorted := make([]datedTransaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].date != sorted[j].date {
			return sorted[i].date.Before(sorted[j].date)
		}
		return sorted[i].ID < sorted[j].ID
	})

	var groups [][]datedTransaction
	current := []datedTransaction{sorted[0]}
	for _, tx := range sorted[1:] {
		prev := current[len(current)-1]
		if daysBetween(tx.date, prev.date) <= maxDaysBetween {
			current = append(current, tx)
			continue
		}
		if hasMultipleDates(current) {
			groups = append(groups, current)
		}
		current = []datedTransaction{tx}
	}
	if hasMultipleDates(current) {
		groups = append(groups, current)
	}
	return groups
}

// hasMultipleDates reports whether a group spans at least two distinct
// calendar dates. Single-transaction groups never qualify.
func hasMultipleDates(group []datedTransaction) bool {
	if len(group) < 2 {
		return false
	}
	unique := make(map[civil.Date]struct{}, len(group))
	for _, tx := range group {
		unique[tx.date] = struct{}{}
	}
	return len(unique) >= 2
}
