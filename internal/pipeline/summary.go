package pipeline

import (
	"regexp"
	"sort"
	"strings"
)

// contentWordPattern matches candidate content words: four or more lowercase
// letters, with word boundaries, so digits and short filler never count.
var contentWordPattern = regexp.MustCompile(`\b[a-z]{4,}\b`)

// stopWords are common words excluded from frequent-word counting.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
		"from", "up", "about", "into", "through", "during", "before", "after", "above",
		"below", "between", "among", "a", "an", "as", "are", "was", "were", "been",
		"be", "have", "has", "had", "do", "does", "did", "will", "would", "could",
		"should", "may", "might", "must", "can", "is", "am", "it", "this", "that",
		"these", "those", "i", "you", "he", "she", "we", "they", "me", "him", "her",
		"us", "them", "my", "your", "his", "its", "our", "their", "inc", "llc", "ltd",
		"corp", "co", "company", "store", "shop", "market", "center", "centre",
	} {
		stopWords[w] = struct{}{}
	}
}

// mostFrequentWords returns the topCount most frequent content words across
// the payee and memo fields of a trip's transactions. Ties keep the order the
// words were first encountered during counting.
func mostFrequentWords(txs []datedTransaction, topCount int) []string {
	counts := make(map[string]int)
	var order []string

	for _, tx := range txs {
		text := strings.ToLower(tx.PayeeName + " " + tx.Memo)
		for _, word := range contentWordPattern.FindAllString(text, -1) {
			if _, skip := stopWords[word]; skip {
				continue
			}
			if counts[word] == 0 {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topCount {
		order = order[:topCount]
	}
	return order
}

// SummarizeTrips aggregates annotated transactions into one summary per trip
// name. Transactions without a trip name are skipped. Summaries come out in
// the order each trip name is first encountered. Returns a *ValidationError on
// the first malformed date.
func (p *Pipeline) SummarizeTrips(transactions []Transaction) ([]TripSummary, error) {
	dated, err := validateBatch(transactions, p.loc)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]datedTransaction)
	var names []string
	for _, tx := range dated {
		if tx.TripName == nil || *tx.TripName == "" {
			continue
		}
		name := *tx.TripName
		if _, seen := groups[name]; !seen {
			names = append(names, name)
		}
		groups[name] = append(groups[name], tx)
	}

	summaries := make([]TripSummary, 0, len(names))
	for _, name := range names {
		members := groups[name]
		start, end := members[0].date, members[0].date
		var totalSpending int64
		for _, tx := range members {
			if tx.date.Before(start) {
				start = tx.date
			}
			if tx.date.After(end) {
				end = tx.date
			}
			if tx.Amount < 0 {
				totalSpending += tx.Amount
			}
		}
		summaries = append(summaries, TripSummary{
			Name:             name,
			StartDate:        start.String(),
			EndDate:          end.String(),
			TransactionCount: len(members),
			TotalSpending:    totalSpending,
			FrequentWords:    mostFrequentWords(members, frequentWordCount),
		})
	}
	return summaries, nil
}
