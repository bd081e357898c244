package search

import (
	"sort"

	"github.com/arcturus-labs/property-search/model"
	"github.com/arcturus-labs/property-search/services"
)

// sortResults orders a filtered set in place by the requested key.
//
// Relevance ties are broken by original catalog order: the filter pipeline
// preserves catalog order and the sort is stable, so equal-score records keep
// a deterministic, reproducible ordering across identical requests.
func sortResults(props []model.ScoredProperty, key services.SortKey) {
	switch key {
	case services.SortPriceAsc:
		sort.SliceStable(props, func(i, j int) bool { return props[i].Price < props[j].Price })
	case services.SortPriceDesc:
		sort.SliceStable(props, func(i, j int) bool { return props[i].Price > props[j].Price })
	case services.SortNewest:
		// ISO-8601 dates compare lexicographically in chronological order.
		sort.SliceStable(props, func(i, j int) bool { return props[i].ListingDate > props[j].ListingDate })
	default: // relevance
		sort.SliceStable(props, func(i, j int) bool { return props[i].Score > props[j].Score })
	}
}
