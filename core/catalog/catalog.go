// Package catalog - Vendor profile catalog
// The catalog is the read-only keyed lookup of vendor profiles the engine
// consumes. Profiles enter through the normalization pass so every formula
// downstream sees a fully-populated, typed VendorProfile.
package catalog

import (
	"sort"

	"vendor-tco/core/types"
	"vendor-tco/internal/errors"
)

// Catalog is a read-only vendor lookup
type Catalog interface {
	// Vendor returns the profile for an ID, or NOT_FOUND
	Vendor(id string) (*types.VendorProfile, error)

	// IDs lists all vendor IDs in stable order
	IDs() []string
}

// InMemoryCatalog is the default Catalog over an immutable map
type InMemoryCatalog struct {
	vendors map[string]*types.VendorProfile
}

// NewInMemoryCatalog builds a catalog from raw profiles, running the
// normalization pass on each. A raw profile that fails validation
// (no pricing model, no base price) rejects the whole catalog.
func NewInMemoryCatalog(raw []*RawVendor) (*InMemoryCatalog, error) {
	vendors := make(map[string]*types.VendorProfile, len(raw))
	for _, rv := range raw {
		profile, err := Normalize(rv)
		if err != nil {
			return nil, err
		}
		vendors[profile.ID] = profile
	}
	return &InMemoryCatalog{vendors: vendors}, nil
}

// Vendor implements Catalog
func (c *InMemoryCatalog) Vendor(id string) (*types.VendorProfile, error) {
	if v, ok := c.vendors[id]; ok {
		return v, nil
	}
	return nil, errors.NotFound("vendor", id)
}

// IDs implements Catalog
func (c *InMemoryCatalog) IDs() []string {
	ids := make([]string, 0, len(c.vendors))
	for id := range c.vendors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Merge overlays another catalog's vendors onto this one and returns a new
// catalog; later entries win on ID collision.
func (c *InMemoryCatalog) Merge(other *InMemoryCatalog) *InMemoryCatalog {
	merged := make(map[string]*types.VendorProfile, len(c.vendors)+len(other.vendors))
	for id, v := range c.vendors {
		merged[id] = v
	}
	for id, v := range other.vendors {
		merged[id] = v
	}
	return &InMemoryCatalog{vendors: merged}
}
