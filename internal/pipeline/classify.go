package pipeline

import (
	"strings"
)

// IsBillTransaction reports whether a transaction looks like a recurring bill:
// its category name or category group name contains "bill", case-insensitively.
// Missing category fields are treated as empty strings.
func IsBillTransaction(tx Transaction) bool {
	category := strings.ToLower(tx.CategoryName)
	categoryGroup := strings.ToLower(tx.CategoryGroupName)
	return strings.Contains(category, "bill") || strings.Contains(categoryGroup, "bill")
}

// IsTransferTransaction reports whether a transaction appears to be one leg of
// a cross-ledger transfer: some other transaction (different id) from a
// different source carries the same absolute amount within the match window.
// With no candidate set there is nothing to match against, so the result is
// always false. Returns a *ValidationError if any date fails to parse.
func (p *Pipeline) IsTransferTransaction(tx Transaction, allTransactions []Transaction) (bool, error) {
	if len(allTransactions) == 0 {
		return false, nil
	}
	date, err := parseDate(tx.Date, p.loc)
	if err != nil {
		return false, &ValidationError{TransactionID: tx.ID, Field: "date", Err: err}
	}
	dated, err := validateBatch(allTransactions, p.loc)
	if err != nil {
		return false, err
	}
	target := datedTransaction{Transaction: tx, date: date}
	return matchesTransfer(target, dated), nil
}

// matchesTransfer is the pairwise transfer check against pre-validated
// candidates.
func matchesTransfer(tx datedTransaction, candidates []datedTransaction) bool {
	amount := absAmount(tx.Amount)
	for _, other := range candidates {
		if other.ID == tx.ID {
			continue
		}
		if other.Source == tx.Source {
			continue
		}
		if absAmount(other.Amount) != amount {
			continue
		}
		if daysBetween(tx.date, other.date) <= transferMatchWindowDays {
			return true
		}
	}
	return false
}

// amountIndex buckets transaction indices by absolute amount so a batch-wide
// transfer scan only compares candidates that can actually match.
type amountIndex map[int64][]int

func buildAmountIndex(txs []datedTransaction) amountIndex {
	idx := make(amountIndex, len(txs))
	for i, tx := range txs {
		amount := absAmount(tx.Amount)
		idx[amount] = append(idx[amount], i)
	}
	return idx
}

// isTransferAt runs the transfer check for txs[i] using the amount index.
// Results are identical to the full pairwise scan.
func isTransferAt(i int, txs []datedTransaction, idx amountIndex) bool {
	if len(txs) == 0 {
		return false
	}
	tx := txs[i]
	for _, j := range idx[absAmount(tx.Amount)] {
		other := txs[j]
		if other.ID == tx.ID || other.Source == tx.Source {
			continue
		}
		if daysBetween(tx.date, other.date) <= transferMatchWindowDays {
			return true
		}
	}
	return false
}

func absAmount(amount int64) int64 {
	if amount < 0 {
		return -amount
	}
	return amount
}
