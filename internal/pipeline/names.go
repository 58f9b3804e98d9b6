package pipeline

import (
	"fmt"
	"strings"
)

var monthAbbrevs = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// generateTripName derives a name for a qualifying group. The first
// transaction carrying a trip-prefixed hashtag wins, verbatim and with its
// original case; that is a manual name. Otherwise the name is generated from
// the group's earliest date, year first so names sort naturally:
// trip2024Jan05. The end date is deliberately not encoded, even for groups
// spanning months or years, because downstream consumers depend on the exact
// format.
func generateTripName(group []datedTransaction) (name string, manual bool) {
	for _, tx := range group {
		for _, tag := range ExtractAllHashtags(tx.Memo) {
			if strings.HasPrefix(strings.ToLower(tag), tripTagPrefix) {
				return tag, true
			}
		}
	}

	start := group[0].date
	return fmt.Sprintf("trip%d%s%02d", start.Year, monthAbbrevs[start.Month-1], start.Day), false
}
