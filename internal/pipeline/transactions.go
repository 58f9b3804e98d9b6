package pipeline

import (
	"fmt"
	"sort"
)

// SortOrder selects the direction for SortByDate.
type SortOrder string

const (
	// SortNewestFirst orders most recent transactions first.
	SortNewestFirst SortOrder = "newest"
	// SortOldestFirst orders earliest transactions first.
	SortOldestFirst SortOrder = "oldest"
)

// SortByDate returns a copy of the batch sorted by calendar date, ties broken
// by ascending id. Returns a *ValidationError on the first malformed date.
func (p *Pipeline) SortByDate(transactions []Transaction, order SortOrder) ([]Transaction, error) {
	if len(transactions) == 0 {
		return nil, nil
	}
	dated, err := validateBatch(transactions, p.loc)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(dated, func(i, j int) bool {
		if dated[i].date != dated[j].date {
			if order == SortOldestFirst {
				return dated[i].date.Before(dated[j].date)
			}
			return dated[j].date.Before(dated[i].date)
		}
		return dated[i].ID < dated[j].ID
	})
	out := make([]Transaction, len(dated))
	for i := range dated {
		out[i] = dated[i].Transaction
	}
	return out, nil
}

// Total sums the raw signed amounts of a batch, in milliunits.
func Total(transactions []Transaction) int64 {
	var total int64
	for _, tx := range transactions {
		total += tx.Amount
	}
	return total
}

// FormatAmount renders a milliunit amount as a major-unit decimal with the
// currency code, e.g. FormatAmount(-12340, "CAD") == "-12.34 CAD". Milliunits
// are 1/1000 of a major unit; sub-cent precision is truncated.
func FormatAmount(milliunits int64, currency string) string {
	sign := ""
	v := milliunits
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, v/1000, (v%1000)/10, currency)
}
