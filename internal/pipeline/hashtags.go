package pipeline

import (
	"regexp"
	"strings"
)

var hashtagPattern = regexp.MustCompile(`#([a-zA-Z0-9_]+)`)

// ExtractAllHashtags pulls every hashtag out of a memo, in first-occurrence
// order, with the '#' stripped. Duplicates are kept. An empty memo yields nil.
func ExtractAllHashtags(memo string) []string {
	if memo == "" {
		return nil
	}
	matches := hashtagPattern.FindAllStringSubmatch(memo, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}

// FilterRelevantHashtags keeps tags that start with "trip" or are exactly
// "household" or "transfer". The predicate is case-insensitive; output keeps
// the original case.
func FilterRelevantHashtags(tags []string) []string {
	var relevant []string
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		if strings.HasPrefix(lower, tripTagPrefix) || lower == "household" || lower == "transfer" {
			relevant = append(relevant, tag)
		}
	}
	return relevant
}

// ExtractRelevantHashtags extracts a memo's hashtags and filters them to the
// relevant set.
func ExtractRelevantHashtags(memo string) []string {
	return FilterRelevantHashtags(ExtractAllHashtags(memo))
}

// filterTripHashtags keeps only trip-prefixed tags.
func filterTripHashtags(tags []string) []string {
	var trips []string
	for _, tag := range tags {
		if strings.HasPrefix(strings.ToLower(tag), tripTagPrefix) {
			trips = append(trips, tag)
		}
	}
	return trips
}

// ExtractTripHashtags extracts only the trip-prefixed hashtags from a memo.
func ExtractTripHashtags(memo string) []string {
	return filterTripHashtags(ExtractAllHashtags(memo))
}
