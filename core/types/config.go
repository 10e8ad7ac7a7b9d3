// Package types - Core value objects for vendor cost calculations
package types

import (
	"github.com/shopspring/decimal"

	"vendor-tco/internal/errors"
)

// Configuration is the buyer's calculation input.
// Immutable once constructed; one instance serves a whole comparison batch.
type Configuration struct {
	// Devices is the number of managed devices
	Devices int `json:"devices"`

	// Users is the number of seats
	Users int `json:"users"`

	// Years is the analysis horizon in years
	Years int `json:"years"`

	// Region is the buyer's region key (e.g. "north-america")
	Region string `json:"region"`

	// Industry is the buyer's industry key (e.g. "technology")
	Industry string `json:"industry"`

	// BasePriceOverride replaces the vendor's base unit price when set
	BasePriceOverride *decimal.Decimal `json:"base_price_override,omitempty"`

	// Addons enables vendor-specific add-ons by name
	Addons map[string]bool `json:"addons,omitempty"`
}

// Validate checks the configuration before any computation runs
func (c *Configuration) Validate() error {
	if c.Devices <= 0 {
		return errors.Validationf("devices must be positive, got %d", c.Devices)
	}
	if c.Users <= 0 {
		return errors.Validationf("users must be positive, got %d", c.Users)
	}
	if c.Years <= 0 {
		return errors.Validationf("years must be positive, got %d", c.Years)
	}
	return nil
}

// RealTimeFactors is a finished snapshot of external market adjustments.
// It is produced by an external collaborator before the engine runs;
// the zero value is neutral.
type RealTimeFactors struct {
	// PricingAdjustment is a fractional multiplier delta applied to licensing
	PricingAdjustment float64 `json:"pricing_adjustment"`

	// SecurityAlerts is the count of active alerts added to the CVE penalty
	SecurityAlerts int `json:"security_alerts"`

	// ComplianceChanges is the count of pending regulatory changes
	ComplianceChanges int `json:"compliance_changes"`
}
