package search

import (
	"strconv"

	"github.com/arcturus-labs/property-search/model"
	"github.com/arcturus-labs/property-search/services"
)

// rangeBucket is one fixed histogram bucket: [Min, Max). Labels are part of
// the API contract and never derived from the catalog.
type rangeBucket struct {
	Label string
	Min   int
	Max   int // exclusive; the last bucket's Max is an effective +inf sentinel
}

var priceBuckets = []rangeBucket{
	{"0-500000", 0, 500_000},
	{"500000-750000", 500_000, 750_000},
	{"750000-1000000", 750_000, 1_000_000},
	{"1000000-1500000", 1_000_000, 1_500_000},
	{"1500000-999999999", 1_500_000, 999_999_999},
}

var sqftBuckets = []rangeBucket{
	{"0-800", 0, 800},
	{"800-1200", 800, 1200},
	{"1200-1800", 1200, 1800},
	{"1800-2500", 1800, 2500},
	{"2500-999999", 2500, 999_999},
}

// computeFacets runs four independent filter passes over the scored catalog,
// one per facet dimension, each disabling that dimension's own constraint
// while keeping all the others (including the relevance fallback) applied.
// This keeps every value of an active dimension visible with the counts it
// would have if that constraint were lifted.
//
// The counts come from the full self-excluded filtered sets, never from the
// paginated page.
func computeFacets(scored []model.ScoredProperty, query services.SearchQuery) services.Facets {
	byPropertyType := applyFilters(scored, query, exclusions{propertyType: len(query.PropertyTypes) > 0})
	byBedrooms := applyFilters(scored, query, exclusions{bedrooms: len(query.Bedrooms) > 0})
	byPrice := applyFilters(scored, query, exclusions{price: query.MinPrice != nil || query.MaxPrice != nil})
	bySqft := applyFilters(scored, query, exclusions{sqft: query.MinSqft != nil || query.MaxSqft != nil})

	return services.Facets{
		PropertyType:     countByPropertyType(byPropertyType),
		Bedrooms:         countByBedrooms(byBedrooms),
		PriceRanges:      countByBucket(byPrice, priceBuckets, func(sp model.ScoredProperty) int { return sp.Price }),
		SquareFeetRanges: countByBucket(bySqft, sqftBuckets, func(sp model.ScoredProperty) int { return sp.SquareFeet }),
	}
}

func countByPropertyType(props []model.ScoredProperty) map[string]int {
	counts := make(map[string]int)
	for _, sp := range props {
		counts[string(sp.PropertyType)]++
	}
	return counts
}

func countByBedrooms(props []model.ScoredProperty) map[string]int {
	counts := make(map[string]int)
	for _, sp := range props {
		counts[strconv.Itoa(sp.Bedrooms)]++
	}
	return counts
}

// countByBucket buckets values into the fixed ranges. Every bucket label is
// present in the result even at zero, so clients can render a stable set of
// range options.
func countByBucket(props []model.ScoredProperty, buckets []rangeBucket, value func(model.ScoredProperty) int) map[string]int {
	counts := make(map[string]int, len(buckets))
	for _, b := range buckets {
		counts[b.Label] = 0
	}
	for _, sp := range props {
		v := value(sp)
		for i, b := range buckets {
			if v < b.Max || i == len(buckets)-1 {
				counts[b.Label]++
				break
			}
		}
	}
	return counts
}
