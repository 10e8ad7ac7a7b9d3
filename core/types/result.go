// Package types - Calculation result aggregate
package types

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CalculationResult is the complete output for one (vendor, configuration)
// pair. It is never mutated after construction and is safe to cache by its
// content hash.
type CalculationResult struct {
	// VendorID is the catalog key of the vendor
	VendorID string `json:"vendor_id"`

	// VendorName is the vendor display name
	VendorName string `json:"vendor_name"`

	// Breakdown is the full cost breakdown over the horizon
	Breakdown CostBreakdown `json:"breakdown"`

	// CostPerDevice is Total / devices
	CostPerDevice decimal.Decimal `json:"cost_per_device"`

	// CostPerUser is Total / users
	CostPerUser decimal.Decimal `json:"cost_per_user"`

	// AnnualCost is Total / years
	AnnualCost decimal.Decimal `json:"annual_cost"`

	ROI            ROIMetrics         `json:"roi"`
	Operational    OperationalMetrics `json:"operational"`
	Risk           RiskMetrics        `json:"risk"`
	Competitive    CompetitiveMetrics `json:"competitive"`
	Timeline       TimelineMetrics    `json:"timeline"`
	Recommendation Recommendation     `json:"recommendation"`

	// Projections is the 10-year savings trajectory
	Projections []ProjectionYear `json:"projections"`
}

// ContentHash returns a stable hash of (vendorID, configuration) suitable
// as a cache key for this result
func ContentHash(vendorID string, cfg *Configuration) string {
	h := sha256.New()
	h.Write([]byte(vendorID))
	h.Write([]byte{0})
	// Configuration is a flat value object; its canonical JSON is stable
	data, _ := json.Marshal(cfg)
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
