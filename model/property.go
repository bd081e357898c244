// Package model defines the property listing records served by the search engine.
package model

import "fmt"

// PropertyType is the category of a property listing.
type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeCondo     PropertyType = "condo"
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeTownhouse PropertyType = "townhouse"
)

// PropertyTypes lists every valid property type, in canonical order.
var PropertyTypes = []PropertyType{
	PropertyTypeHouse,
	PropertyTypeCondo,
	PropertyTypeApartment,
	PropertyTypeTownhouse,
}

// ParsePropertyType validates a raw property type string.
func ParsePropertyType(s string) (PropertyType, error) {
	for _, pt := range PropertyTypes {
		if s == string(pt) {
			return pt, nil
		}
	}
	return "", fmt.Errorf("unknown property type %q", s)
}

// PropertyRecord is a single listing in the catalog. Records are created once at
// catalog load and never mutated afterwards; every pipeline stage works with
// references into the shared catalog rather than copies.
type PropertyRecord struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Price        int          `json:"price"`
	Bedrooms     int          `json:"bedrooms"` // 0 (studio) through 5
	SquareFeet   int          `json:"square_feet"`
	PropertyType PropertyType `json:"property_type"`
	ListingDate  string       `json:"listing_date"` // ISO-8601 date; lexicographic order is chronological
	Images       []string     `json:"images,omitempty"`
	Neighborhood string       `json:"neighborhood"`
	City         string       `json:"city"`
}

// ScoredProperty pairs a catalog record with its relevance score for one request.
// The record pointer aliases the shared catalog; only the score is per-request state.
type ScoredProperty struct {
	*PropertyRecord
	Score int `json:"score"`
}
