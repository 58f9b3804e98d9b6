package pipeline

// Default values for transaction designation and trip detection.
const (
	// DefaultTimezone is the civil timezone used for all date math unless a
	// different location is injected via NewPipeline.
	DefaultTimezone = "America/Vancouver"

	// householdTag and transferTag are the literal memo tags appended by
	// automatic tagging.
	householdTag = "#household"
	transferTag  = "#transfer"

	// tripTagPrefix marks a hashtag as a trip tag (case-insensitive).
	tripTagPrefix = "trip"

	// transferMatchWindowDays is the inclusive day window for cross-ledger
	// amount matching.
	transferMatchWindowDays = 3

	// frequentWordCount is how many top words a trip summary reports.
	frequentWordCount = 3
)
