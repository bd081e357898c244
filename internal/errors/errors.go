// Package errors defines the error types shared across the property search
// service.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrPropertyNotFound is returned when a property ID is not in the catalog
	ErrPropertyNotFound = errors.New("property not found")

	// ErrInvalidCriteria is returned when search criteria fail boundary validation
	ErrInvalidCriteria = errors.New("invalid search criteria")

	// ErrInvalidCatalog is returned when catalog data cannot be loaded
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrInterpreterUnavailable is returned when no query interpreter is configured
	ErrInterpreterUnavailable = errors.New("query interpreter unavailable")
)

// PropertyNotFoundError represents a property lookup miss with context
type PropertyNotFoundError struct {
	PropertyID string
}

func (e *PropertyNotFoundError) Error() string {
	return fmt.Sprintf("property with ID '%s' not found", e.PropertyID)
}

func (e *PropertyNotFoundError) Is(target error) bool {
	return target == ErrPropertyNotFound
}

// NewPropertyNotFoundError creates a new PropertyNotFoundError
func NewPropertyNotFoundError(propertyID string) *PropertyNotFoundError {
	return &PropertyNotFoundError{PropertyID: propertyID}
}

// CriteriaValidationError represents a boundary validation failure with the
// offending field and value
type CriteriaValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *CriteriaValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *CriteriaValidationError) Is(target error) bool {
	return target == ErrInvalidCriteria
}

// NewCriteriaValidationError creates a new CriteriaValidationError
func NewCriteriaValidationError(field, value, message string) *CriteriaValidationError {
	return &CriteriaValidationError{Field: field, Value: value, Message: message}
}

// CatalogError represents a catalog loading or construction failure
type CatalogError struct {
	Reason string
	Err    error
}

func (e *CatalogError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("catalog error: %s", e.Reason)
}

func (e *CatalogError) Is(target error) bool {
	return target == ErrInvalidCatalog
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a new CatalogError
func NewCatalogError(reason string, err error) *CatalogError {
	return &CatalogError{Reason: reason, Err: err}
}
