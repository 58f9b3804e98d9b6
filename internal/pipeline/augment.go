package pipeline

import (
	"strings"
)

// AddAutomaticTags returns a copy of tx with #household / #transfer appended
// to the memo when the heuristics fire and the tag is not already present.
// Both containment checks run against the original memo, and transfer matching
// uses allTransactions as-is, so augmenting one transaction never changes the
// result computed for another in the same pass. Returns a *ValidationError on
// the first malformed date.
func (p *Pipeline) AddAutomaticTags(tx Transaction, allTransactions []Transaction) (Transaction, error) {
	isTransfer, err := p.IsTransferTransaction(tx, allTransactions)
	if err != nil {
		return Transaction{}, err
	}
	return augmentTags(tx, IsBillTransaction(tx), isTransfer), nil
}

// augmentTags applies the memo rewrites for already-computed bill/transfer
// verdicts. The bill append comes before the transfer append.
func augmentTags(tx Transaction, isBill, isTransfer bool) Transaction {
	existingMemo := tx.Memo
	newMemo := existingMemo

	taggedAsBill := isBill && !strings.Contains(existingMemo, householdTag)
	if taggedAsBill {
		if newMemo == "" {
			newMemo = householdTag
		} else {
			newMemo += " " + householdTag
		}
	}

	taggedAsTransfer := isTransfer && !strings.Contains(existingMemo, transferTag)
	if taggedAsTransfer {
		if newMemo == "" {
			newMemo = transferTag
		} else {
			newMemo += " " + transferTag
		}
	}

	out := tx
	out.Memo = newMemo
	out.AutoTaggedAsBill = taggedAsBill
	out.AutoTaggedAsTransfer = taggedAsTransfer
	return out
}

// attachHashtags re-extracts hashtags from the (possibly augmented) memo and
// fills the derived hashtag fields.
func attachHashtags(tx Transaction) Transaction {
	out := tx
	out.Hashtags = ExtractAllHashtags(tx.Memo)
	out.RelevantHashtags = FilterRelevantHashtags(out.Hashtags)
	out.HasTripTag = false
	out.HasHouseholdTag = false
	out.HasTransferTag = false
	for _, tag := range out.RelevantHashtags {
		lower := strings.ToLower(tag)
		switch {
		case strings.HasPrefix(lower, tripTagPrefix):
			out.HasTripTag = true
		case lower == "household":
			out.HasHouseholdTag = true
		case lower == "transfer":
			out.HasTransferTag = true
		}
	}
	return out
}

// classifyBatch runs automatic tagging plus hashtag extraction over a
// pre-validated batch. Transfer detection always sees the original input set.
func classifyBatch(dated []datedTransaction) []datedTransaction {
	idx := buildAmountIndex(dated)
	out := make([]datedTransaction, len(dated))
	for i := range dated {
		tagged := augmentTags(dated[i].Transaction, IsBillTransaction(dated[i].Transaction), isTransferAt(i, dated, idx))
		out[i] = datedTransaction{
			Transaction: attachHashtags(tagged),
			date:        dated[i].date,
		}
	}
	return out
}
