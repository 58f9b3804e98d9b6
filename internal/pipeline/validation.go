package pipeline

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// ValidationError reports the first malformed input record encountered.
// Malformed dates are a contract violation by the caller, so entry points fail
// fast instead of letting a sentinel date leak into sorting or grouping.
type ValidationError struct {
	// Index is the position of the offending record in the input batch.
	Index int
	// TransactionID is the record's id, possibly empty.
	TransactionID string
	// Field names the invalid field.
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("transaction %d (id %q): invalid %s: %v", e.Index, e.TransactionID, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// parseDate parses a transaction date. Plain calendar dates ("2006-01-02")
// need no timezone; RFC 3339 timestamps are shifted into loc before the civil
// date is taken, so a late-evening UTC timestamp lands on the correct local day.
func parseDate(s string, loc *time.Location) (civil.Date, error) {
	if d, err := civil.ParseDate(s); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("parseDate: %q is neither %q nor RFC 3339", s, "2006-01-02")
	}
	return civil.DateOf(t.In(loc)), nil
}

// validateBatch parses every transaction date up front. It returns the batch
// paired with parsed dates, or a *ValidationError for the first bad record.
func validateBatch(txs []Transaction, loc *time.Location) ([]datedTransaction, error) {
	dated := make([]datedTransaction, 0, len(txs))
	for i, tx := range txs {
		d, err := parseDate(tx.Date, loc)
		if err != nil {
			return nil, &ValidationError{
				Index:         i,
				TransactionID: tx.ID,
				Field:         "date",
				Err:           err,
			}
		}
		dated = append(dated, datedTransaction{Transaction: tx, date: d})
	}
	return dated, nil
}

// daysBetween is the whole-day distance between two calendar dates.
func daysBetween(a, b civil.Date) int {
	diff := a.DaysSince(b)
	if diff < 0 {
		return -diff
	}
	return diff
}
