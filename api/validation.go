// Package api provides validation utilities for API request handling.
package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcturus-labs/property-search/model"
	"github.com/arcturus-labs/property-search/services"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// searchParams carries the raw query-string values of a search request before
// validation.
type searchParams struct {
	Q            string
	Title        string
	Description  string
	PropertyType string // comma-separated
	Bedrooms     string // comma-separated
	MinPrice     string
	MaxPrice     string
	MinSqft      string
	MaxSqft      string
	Sort         string
	Page         string
	PerPage      string
}

// ValidateSearchParams converts raw query-string values into a SearchQuery.
// Enum values, numeric formats, and range ordering are checked here; the
// engine assumes whatever it receives is well formed. Bedrooms values are
// deliberately not validated, non-numeric entries are dropped during
// filtering instead.
func ValidateSearchParams(params searchParams, maxPerPage int) (services.SearchQuery, *ValidationResult) {
	result := &ValidationResult{Valid: true}
	query := services.SearchQuery{
		Title:       params.Title,
		Description: params.Description,
	}

	if params.PropertyType != "" {
		for _, raw := range strings.Split(params.PropertyType, ",") {
			pt, err := model.ParsePropertyType(strings.TrimSpace(raw))
			if err != nil {
				result.AddError("property_type", err.Error())
				continue
			}
			query.PropertyTypes = append(query.PropertyTypes, string(pt))
		}
	}

	if params.Bedrooms != "" {
		for _, raw := range strings.Split(params.Bedrooms, ",") {
			query.Bedrooms = append(query.Bedrooms, strings.TrimSpace(raw))
		}
	}

	query.MinPrice = parseOptionalInt(result, "min_price", params.MinPrice)
	query.MaxPrice = parseOptionalInt(result, "max_price", params.MaxPrice)
	query.MinSqft = parseOptionalInt(result, "min_sqft", params.MinSqft)
	query.MaxSqft = parseOptionalInt(result, "max_sqft", params.MaxSqft)

	if query.MinPrice != nil && query.MaxPrice != nil && *query.MinPrice > *query.MaxPrice {
		result.AddError("min_price", fmt.Sprintf("min_price %d exceeds max_price %d", *query.MinPrice, *query.MaxPrice))
	}
	if query.MinSqft != nil && query.MaxSqft != nil && *query.MinSqft > *query.MaxSqft {
		result.AddError("min_sqft", fmt.Sprintf("min_sqft %d exceeds max_sqft %d", *query.MinSqft, *query.MaxSqft))
	}

	sortKey, ok := services.ParseSortKey(params.Sort)
	if !ok {
		result.AddError("sort", fmt.Sprintf("invalid sort %q: must be one of relevance, price_asc, price_desc, newest", params.Sort))
	}
	query.Sort = sortKey

	query.Page = parsePositiveInt(result, "page", params.Page, 1)
	query.PerPage = parsePositiveInt(result, "per_page", params.PerPage, 10)
	if query.PerPage > maxPerPage {
		result.AddError("per_page", fmt.Sprintf("per_page %d exceeds the maximum of %d", query.PerPage, maxPerPage))
	}

	return query, result
}

func parseOptionalInt(result *ValidationResult, field, raw string) *int {
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		result.AddError(field, fmt.Sprintf("%s must be an integer, got %q", field, raw))
		return nil
	}
	if value < 0 {
		result.AddError(field, fmt.Sprintf("%s cannot be negative, got %d", field, value))
		return nil
	}
	return &value
}

func parsePositiveInt(result *ValidationResult, field, raw string, defaultValue int) int {
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		result.AddError(field, fmt.Sprintf("%s must be an integer, got %q", field, raw))
		return defaultValue
	}
	if value < 1 {
		result.AddError(field, fmt.Sprintf("%s must be at least 1, got %d", field, value))
		return defaultValue
	}
	return value
}

// ValidatePropertyID validates a property ID path parameter
func ValidatePropertyID(propertyID string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if propertyID == "" {
		result.AddError("propertyID", "Property ID is required")
		return result
	}

	if strings.TrimSpace(propertyID) != propertyID {
		result.AddError("propertyID", "Property ID cannot have leading or trailing whitespace")
		return result
	}

	return result
}
