package search

import (
	"github.com/arcturus-labs/property-search/internal/tokenizer"
	"github.com/arcturus-labs/property-search/model"
)

// scoreRecords annotates every catalog record with its relevance score for the
// given free-text queries. The catalog itself is never touched; the returned
// slice is fresh per request and its entries point back into the catalog.
//
// A record earns one point for every query token present in the tokenized
// record field. Repeated query tokens count each time they occur, so "modern
// modern" scores 2 against a title containing "modern"; record-side repetition
// is irrelevant because only token presence is tested.
func scoreRecords(records []model.PropertyRecord, titleQuery, descriptionQuery string) []model.ScoredProperty {
	titleTokens := tokenizer.Tokenize(titleQuery)
	descriptionTokens := tokenizer.Tokenize(descriptionQuery)

	scored := make([]model.ScoredProperty, len(records))
	for i := range records {
		rec := &records[i]
		score := 0
		if len(titleTokens) > 0 {
			score += countMatches(titleTokens, rec.Title)
		}
		if len(descriptionTokens) > 0 {
			score += countMatches(descriptionTokens, rec.Description)
		}
		scored[i] = model.ScoredProperty{PropertyRecord: rec, Score: score}
	}
	return scored
}

func countMatches(queryTokens []string, fieldText string) int {
	fieldTokens := tokenizer.TokenSet(fieldText)
	matches := 0
	for _, token := range queryTokens {
		if _, ok := fieldTokens[token]; ok {
			matches++
		}
	}
	return matches
}
