package search

import (
	"strconv"

	"github.com/arcturus-labs/property-search/model"
	"github.com/arcturus-labs/property-search/services"
)

// exclusions marks filter dimensions to skip during a pass. The facet
// calculator uses this to disable each dimension's own constraint while
// keeping every other constraint applied.
type exclusions struct {
	propertyType bool
	bedrooms     bool
	price        bool
	sqft         bool
}

// applyFilters reduces a scored set to the records matching every active
// criterion. Predicates compose conjunctively and each is skipped when its
// criterion is absent (or excluded for a facet pass).
//
// The relevance predicate carries a fallback: when a text query matches
// nothing at all, the score filter is skipped entirely instead of returning an
// empty set, so an off-vocabulary query degrades to "all records, other
// filters still applied" rather than a dead end.
func applyFilters(scored []model.ScoredProperty, query services.SearchQuery, skip exclusions) []model.ScoredProperty {
	filtered := scored

	if query.HasTextQuery() {
		byScore := make([]model.ScoredProperty, 0, len(filtered))
		for _, sp := range filtered {
			if sp.Score > 0 {
				byScore = append(byScore, sp)
			}
		}
		if len(byScore) > 0 {
			filtered = byScore
		}
	}

	if len(query.PropertyTypes) > 0 && !skip.propertyType {
		allowed := make(map[model.PropertyType]struct{}, len(query.PropertyTypes))
		for _, pt := range query.PropertyTypes {
			allowed[model.PropertyType(pt)] = struct{}{}
		}
		filtered = keep(filtered, func(sp model.ScoredProperty) bool {
			_, ok := allowed[sp.PropertyType]
			return ok
		})
	}

	if len(query.Bedrooms) > 0 && !skip.bedrooms {
		allowed := parseBedrooms(query.Bedrooms)
		filtered = keep(filtered, func(sp model.ScoredProperty) bool {
			_, ok := allowed[sp.Bedrooms]
			return ok
		})
	}

	if !skip.price {
		if query.MinPrice != nil {
			filtered = keep(filtered, func(sp model.ScoredProperty) bool { return sp.Price >= *query.MinPrice })
		}
		if query.MaxPrice != nil {
			filtered = keep(filtered, func(sp model.ScoredProperty) bool { return sp.Price <= *query.MaxPrice })
		}
	}

	if !skip.sqft {
		if query.MinSqft != nil {
			filtered = keep(filtered, func(sp model.ScoredProperty) bool { return sp.SquareFeet >= *query.MinSqft })
		}
		if query.MaxSqft != nil {
			filtered = keep(filtered, func(sp model.ScoredProperty) bool { return sp.SquareFeet <= *query.MaxSqft })
		}
	}

	return filtered
}

func keep(props []model.ScoredProperty, pred func(model.ScoredProperty) bool) []model.ScoredProperty {
	out := make([]model.ScoredProperty, 0, len(props))
	for _, sp := range props {
		if pred(sp) {
			out = append(out, sp)
		}
	}
	return out
}

// parseBedrooms converts bedroom tokens to an integer set. Non-numeric tokens
// are dropped silently; a constraint made up entirely of garbage tokens parses
// to an empty set and matches nothing, which is intentional strictness rather
// than "no constraint".
func parseBedrooms(tokens []string) map[int]struct{} {
	parsed := make(map[int]struct{}, len(tokens))
	for _, tok := range tokens {
		if !isDigits(tok) {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		parsed[n] = struct{}{}
	}
	return parsed
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
