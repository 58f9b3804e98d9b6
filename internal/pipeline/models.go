package pipeline

import (
	"cloud.google.com/go/civil"
)

// Transaction is one ledger transaction as delivered by the hosting
// application. The raw fields come straight from the ledger API; the pipeline
// never mutates an input record, it returns copies with the derived fields
// filled in.
type Transaction struct {
	// ID is unique within a source ledger and breaks sort ties.
	ID string `json:"id"`
	// Date is a calendar date formatted "YYYY-MM-DD". RFC 3339 timestamps are
	// also accepted and converted to a civil date in the reference timezone.
	Date string `json:"date"`
	// Amount is in signed milliunits. Negative = outflow, positive = inflow.
	Amount            int64  `json:"amount"`
	Memo              string `json:"memo,omitempty"`
	PayeeName         string `json:"payee_name,omitempty"`
	CategoryName      string `json:"category_name,omitempty"`
	CategoryGroupName string `json:"category_group_name,omitempty"`
	// Source identifies the originating ledger (e.g. "left" or "right" when
	// reconciling two budgets). Transfer detection requires a match from a
	// different source.
	Source string `json:"source,omitempty"`

	// Derived fields, attached by the pipeline. Never present on raw input.
	Hashtags             []string `json:"hashtags,omitempty"`
	RelevantHashtags     []string `json:"relevantHashtags,omitempty"`
	HasTripTag           bool     `json:"hasTripTag,omitempty"`
	HasHouseholdTag      bool     `json:"hasHouseholdTag,omitempty"`
	HasTransferTag       bool     `json:"hasTransferTag,omitempty"`
	AutoTaggedAsBill     bool     `json:"autoTaggedAsBill,omitempty"`
	AutoTaggedAsTransfer bool     `json:"autoTaggedAsTransfer,omitempty"`
	TripName             *string  `json:"tripName"`
	IsAutoGeneratedTrip  bool     `json:"isAutoGeneratedTrip,omitempty"`
}

// TripSummary is the per-trip aggregate. It is computed fresh from the
// transaction set on every call and never cached.
type TripSummary struct {
	Name             string   `json:"name"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	TransactionCount int      `json:"transactionCount"`
	TotalSpending    int64    `json:"totalSpending"`
	FrequentWords    []string `json:"frequentWords"`
}

// Settings controls trip clustering.
type Settings struct {
	// MaxDaysBetween is the largest day gap between consecutive transactions
	// that still extends a trip group. Must be non-negative.
	MaxDaysBetween int `yaml:"maxDaysBetween" json:"maxDaysBetween"`
	// ExcludePositiveTransactions drops inflows from clustering. Inflows
	// across two ledgers are usually transfers, not trip spending.
	ExcludePositiveTransactions bool `yaml:"excludePositiveTransactions" json:"excludePositiveTransactions"`
}

// DefaultSettings is the standard clustering configuration.
var DefaultSettings = Settings{
	MaxDaysBetween:              2,
	ExcludePositiveTransactions: false,
}

// datedTransaction pairs a transaction with its parsed calendar date so the
// clustering and matching code never re-parses date strings.
type datedTransaction struct {
	Transaction
	date civil.Date
}
