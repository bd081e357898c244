package interpret

import (
	"strings"

	"github.com/arcturus-labs/property-search/services"
)

// Merge lays interpreted parameters over explicitly supplied criteria and
// returns the combined query. Interpreted structured fields win over explicit
// values; fields the interpreter left empty keep the explicit value.
//
// Title and description are special: if the interpreter supplied only one of
// the two, the other is derived from it instead of being left empty. The
// interpreter emits title in Title Case and description in lowercase, so the
// derivations are description -> title verbatim and title -> lowercase(title).
func Merge(query services.SearchQuery, interp *services.Interpretation) services.SearchQuery {
	if interp == nil {
		return query
	}

	switch {
	case interp.Title != "":
		query.Title = interp.Title
	case interp.Description != "":
		query.Title = interp.Description
	}
	switch {
	case interp.Description != "":
		query.Description = interp.Description
	case interp.Title != "":
		query.Description = strings.ToLower(interp.Title)
	}

	if len(interp.PropertyTypes) > 0 {
		query.PropertyTypes = interp.PropertyTypes
	}
	if len(interp.Bedrooms) > 0 {
		query.Bedrooms = interp.Bedrooms
	}
	if interp.MinPrice != nil {
		query.MinPrice = interp.MinPrice
	}
	if interp.MaxPrice != nil {
		query.MaxPrice = interp.MaxPrice
	}
	if interp.MinSqft != nil {
		query.MinSqft = interp.MinSqft
	}
	if interp.MaxSqft != nil {
		query.MaxSqft = interp.MaxSqft
	}
	if interp.Sort != "" {
		if key, ok := services.ParseSortKey(interp.Sort); ok {
			query.Sort = key
		}
	}
	return query
}

// ApplyTextFallback fills the free-text fields from the raw user query when
// neither explicit criteria nor interpretation produced any. The raw text is
// a weaker search seed than interpreted text but beats searching on nothing.
func ApplyTextFallback(query services.SearchQuery, rawQuery string) services.SearchQuery {
	if rawQuery == "" {
		return query
	}
	if query.Title == "" {
		query.Title = rawQuery
	}
	if query.Description == "" {
		query.Description = rawQuery
	}
	return query
}
