package search

import (
	"fmt"
	"testing"

	"github.com/arcturus-labs/property-search/model"
	"github.com/arcturus-labs/property-search/services"
	"github.com/arcturus-labs/property-search/store"
)

func newTestService(t *testing.T, records []model.PropertyRecord) *Service {
	t.Helper()
	catalog, err := store.NewCatalog(records)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	svc, err := NewService(catalog, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestNewService_NilCatalog(t *testing.T) {
	if _, err := NewService(nil, nil); err == nil {
		t.Fatal("expected an error for a nil catalog")
	}
}

func TestSearch_EmptyQueryReturnsWholeCatalog(t *testing.T) {
	svc := newTestService(t, testCatalogRecords())

	result, err := svc.Search(services.SearchQuery{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if result.Total != 4 {
		t.Errorf("Total = %d, want 4", result.Total)
	}
	if len(result.Results) != 4 {
		t.Errorf("len(Results) = %d, want 4", len(result.Results))
	}
	for _, sp := range result.Results {
		if sp.Score != 0 {
			t.Errorf("record %s has score %d without a text query", sp.ID, sp.Score)
		}
	}
	if result.QueryID == "" {
		t.Error("QueryID is empty")
	}
}

func TestSearch_Defaults(t *testing.T) {
	svc := newTestService(t, testCatalogRecords())

	result, err := svc.Search(services.SearchQuery{Page: -3, PerPage: 0})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if result.Page != 1 {
		t.Errorf("Page = %d, want 1", result.Page)
	}
	if result.PerPage != defaultPerPage {
		t.Errorf("PerPage = %d, want %d", result.PerPage, defaultPerPage)
	}
}

func TestSearch_Pagination(t *testing.T) {
	records := make([]model.PropertyRecord, 25)
	for i := range records {
		records[i] = model.PropertyRecord{
			ID:           fmt.Sprintf("prop-%03d", i),
			Title:        fmt.Sprintf("Listing %d", i),
			Price:        100_000 + i, // strictly increasing, keeps order deterministic
			PropertyType: model.PropertyTypeHouse,
		}
	}
	svc := newTestService(t, records)

	t.Run("second page", func(t *testing.T) {
		result, err := svc.Search(services.SearchQuery{Sort: services.SortPriceAsc, Page: 2, PerPage: 10})
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if result.Total != 25 {
			t.Errorf("Total = %d, want 25", result.Total)
		}
		if len(result.Results) != 10 {
			t.Fatalf("len(Results) = %d, want 10", len(result.Results))
		}
		if result.Results[0].ID != "prop-010" || result.Results[9].ID != "prop-019" {
			t.Errorf("page 2 spans %s..%s, want prop-010..prop-019",
				result.Results[0].ID, result.Results[9].ID)
		}
	})

	t.Run("short last page", func(t *testing.T) {
		result, err := svc.Search(services.SearchQuery{Sort: services.SortPriceAsc, Page: 3, PerPage: 10})
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(result.Results) != 5 {
			t.Errorf("len(Results) = %d, want 5", len(result.Results))
		}
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		result, err := svc.Search(services.SearchQuery{Page: 9, PerPage: 10})
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(result.Results) != 0 {
			t.Errorf("len(Results) = %d, want 0", len(result.Results))
		}
		if result.Total != 25 {
			t.Errorf("Total = %d, want the pre-pagination count 25", result.Total)
		}
	})
}

func TestSearch_FullPipeline(t *testing.T) {
	svc := newTestService(t, testCatalogRecords())

	query := services.SearchQuery{
		Title:         "House",
		PropertyTypes: []string{"house"},
		Sort:          services.SortPriceDesc,
	}
	result, err := svc.Search(query)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	assertIDs(t, result.Results, "prop-003", "prop-002")
	if result.Total != 2 {
		t.Errorf("Total = %d, want 2", result.Total)
	}

	// Facets describe the filtered set, with the property_type dimension
	// counted as if its own filter were lifted.
	if got := result.Facets.PropertyType["house"]; got != 2 {
		t.Errorf("facets property_type[house] = %d, want 2", got)
	}
	if got := result.Facets.Bedrooms["5"]; got != 1 {
		t.Errorf("facets bedrooms[5] = %d, want 1", got)
	}
}

func TestSearch_RelevanceFallbackEndToEnd(t *testing.T) {
	svc := newTestService(t, testCatalogRecords())

	result, err := svc.Search(services.SearchQuery{Title: "Zzyzx", MaxPrice: intPtr(500_000)})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	// The text query matched nothing, so it is dropped and only the price
	// filter applies.
	assertIDs(t, result.Results, "prop-001", "prop-004")
}

func TestSearch_DoesNotMutateCatalogOrder(t *testing.T) {
	svc := newTestService(t, testCatalogRecords())

	if _, err := svc.Search(services.SearchQuery{Sort: services.SortPriceDesc}); err != nil {
		t.Fatalf("Search: %v", err)
	}

	records := svc.catalog.Records()
	if records[0].ID != "prop-001" || records[3].ID != "prop-004" {
		t.Error("catalog order changed after a sorted search")
	}
}

func TestCatalogFacets(t *testing.T) {
	svc := newTestService(t, testCatalogRecords())

	facets := svc.CatalogFacets()

	if got := facets.PropertyType["house"]; got != 2 {
		t.Errorf("property_type[house] = %d, want 2", got)
	}
	sum := 0
	for _, n := range facets.PriceRanges {
		sum += n
	}
	if sum != 4 {
		t.Errorf("price_ranges sum = %d, want 4", sum)
	}
}
