// Package store holds the immutable property catalog searched by every request.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	apperrors "github.com/arcturus-labs/property-search/internal/errors"
	"github.com/arcturus-labs/property-search/model"
)

// Catalog is the read-only collection of property records shared by all
// concurrent requests. It is fully constructed before the server starts
// accepting traffic and never mutated afterwards, so no locking is needed.
type Catalog struct {
	records []model.PropertyRecord
	byID    map[string]int
}

// NewCatalog builds a catalog from a slice of records. Records must have
// unique, non-empty IDs.
func NewCatalog(records []model.PropertyRecord) (*Catalog, error) {
	byID := make(map[string]int, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			return nil, apperrors.NewCatalogError(fmt.Sprintf("record at index %d has empty ID", i), nil)
		}
		if _, exists := byID[rec.ID]; exists {
			return nil, apperrors.NewCatalogError(fmt.Sprintf("duplicate record ID '%s'", rec.ID), nil)
		}
		if _, err := model.ParsePropertyType(string(rec.PropertyType)); err != nil {
			return nil, apperrors.NewCatalogError(fmt.Sprintf("record '%s'", rec.ID), err)
		}
		byID[rec.ID] = i
	}
	return &Catalog{records: records, byID: byID}, nil
}

// LoadCatalog reads a JSON array of property records from a file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewCatalogError("reading catalog file", err)
	}
	var records []model.PropertyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, apperrors.NewCatalogError("decoding catalog file", err)
	}
	return NewCatalog(records)
}

// Records returns the backing record slice. Callers must treat it as
// read-only; every search stage works with indices or pointers into it.
func (c *Catalog) Records() []model.PropertyRecord {
	return c.records
}

// Get looks up a record by its external ID.
func (c *Catalog) Get(id string) (*model.PropertyRecord, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, apperrors.NewPropertyNotFoundError(id)
	}
	return &c.records[idx], nil
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}
