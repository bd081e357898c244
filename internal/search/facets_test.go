package search

import (
	"testing"

	"github.com/arcturus-labs/property-search/services"
)

func TestComputeFacets_UnfilteredCounts(t *testing.T) {
	scored := scoreRecords(testCatalogRecords(), "", "")

	facets := computeFacets(scored, services.SearchQuery{})

	if got := facets.PropertyType["house"]; got != 2 {
		t.Errorf("property_type[house] = %d, want 2", got)
	}
	if got := facets.Bedrooms["3"]; got != 1 {
		t.Errorf("bedrooms[3] = %d, want 1", got)
	}
	if got := facets.PriceRanges["0-500000"]; got != 2 {
		t.Errorf("price_ranges[0-500000] = %d, want 2", got)
	}
	if got := facets.SquareFeetRanges["2500-999999"]; got != 1 {
		t.Errorf("square_feet_ranges[2500-999999] = %d, want 1", got)
	}
}

func TestComputeFacets_AllBucketsPresent(t *testing.T) {
	facets := computeFacets(nil, services.SearchQuery{})

	wantPrice := []string{"0-500000", "500000-750000", "750000-1000000", "1000000-1500000", "1500000-999999999"}
	for _, label := range wantPrice {
		if got, ok := facets.PriceRanges[label]; !ok || got != 0 {
			t.Errorf("price_ranges[%s] = %d (present=%v), want 0 present", label, got, ok)
		}
	}
	wantSqft := []string{"0-800", "800-1200", "1200-1800", "1800-2500", "2500-999999"}
	for _, label := range wantSqft {
		if got, ok := facets.SquareFeetRanges[label]; !ok || got != 0 {
			t.Errorf("square_feet_ranges[%s] = %d (present=%v), want 0 present", label, got, ok)
		}
	}
}

// An active filter must not narrow its own facet dimension but must narrow
// every other dimension.
func TestComputeFacets_SelfExclusion(t *testing.T) {
	scored := scoreRecords(testCatalogRecords(), "", "")
	query := services.SearchQuery{PropertyTypes: []string{"house"}}

	facets := computeFacets(scored, query)

	// Counts for the filtered dimension reflect the catalog as if the
	// property_type filter were lifted.
	if got := facets.PropertyType["condo"]; got != 1 {
		t.Errorf("property_type[condo] = %d, want 1", got)
	}
	if got := facets.PropertyType["apartment"]; got != 1 {
		t.Errorf("property_type[apartment] = %d, want 1", got)
	}

	// Every other dimension counts only the two houses.
	if got := facets.Bedrooms["1"]; got != 0 {
		t.Errorf("bedrooms[1] = %d, want 0", got)
	}
	if got := facets.Bedrooms["3"]; got != 1 {
		t.Errorf("bedrooms[3] = %d, want 1", got)
	}
	if got := facets.PriceRanges["0-500000"]; got != 0 {
		t.Errorf("price_ranges[0-500000] = %d, want 0", got)
	}
	if got := facets.PriceRanges["1500000-999999999"]; got != 1 {
		t.Errorf("price_ranges[1500000-999999999] = %d, want 1", got)
	}
}

func TestComputeFacets_SelfExclusionSum(t *testing.T) {
	scored := scoreRecords(testCatalogRecords(), "", "")
	query := services.SearchQuery{MinPrice: intPtr(400_000), MaxPrice: intPtr(1_000_000)}

	facets := computeFacets(scored, query)

	// With only the price filter active, the price histogram sums to the
	// size of the otherwise-unfiltered set.
	sum := 0
	for _, n := range facets.PriceRanges {
		sum += n
	}
	if sum != len(scored) {
		t.Errorf("price_ranges sum = %d, want %d", sum, len(scored))
	}

	// The other dimensions sum to the filtered result count.
	filtered := applyFilters(scored, query, exclusions{})
	sum = 0
	for _, n := range facets.PropertyType {
		sum += n
	}
	if sum != len(filtered) {
		t.Errorf("property_type sum = %d, want %d", sum, len(filtered))
	}
}

func TestComputeFacets_PriceBucketBoundaries(t *testing.T) {
	records := recordsWithTitles("a", "b", "c", "d")
	records[0].Price = 499_999   // first bucket
	records[1].Price = 500_000   // lower bound is inclusive in the next bucket
	records[2].Price = 749_999   // still the second bucket
	records[3].Price = 2_000_000 // beyond every upper bound, caught by the last

	facets := computeFacets(scoreRecords(records, "", ""), services.SearchQuery{})

	if got := facets.PriceRanges["0-500000"]; got != 1 {
		t.Errorf("price_ranges[0-500000] = %d, want 1", got)
	}
	if got := facets.PriceRanges["500000-750000"]; got != 2 {
		t.Errorf("price_ranges[500000-750000] = %d, want 2", got)
	}
	if got := facets.PriceRanges["1500000-999999999"]; got != 1 {
		t.Errorf("price_ranges[1500000-999999999] = %d, want 1", got)
	}
}

func TestComputeFacets_TextQueryNarrowsAllDimensions(t *testing.T) {
	scored := scoreRecords(testCatalogRecords(), "Modern", "")
	query := services.SearchQuery{Title: "Modern"}

	facets := computeFacets(scored, query)

	if got := facets.PropertyType["house"]; got != 1 {
		t.Errorf("property_type[house] = %d, want 1", got)
	}
	if got := facets.PropertyType["apartment"]; got != 0 {
		t.Errorf("property_type[apartment] = %d, want 0", got)
	}
}
