// Package types - Cost breakdown types
package types

import "github.com/shopspring/decimal"

// CostCategory names one slice of the total cost of ownership
type CostCategory string

const (
	CategoryLicensing      CostCategory = "licensing"
	CategoryHardware       CostCategory = "hardware"
	CategoryImplementation CostCategory = "implementation"
	CategorySupport        CostCategory = "support"
	CategoryTraining       CostCategory = "training"
	CategoryMaintenance    CostCategory = "maintenance"
	CategoryHidden         CostCategory = "hidden"
	CategoryOperational    CostCategory = "operational"
	CategoryCompliance     CostCategory = "compliance"
	CategoryMigration      CostCategory = "migration"
	CategoryConsulting     CostCategory = "consulting"
	CategoryIntegration    CostCategory = "integration"
)

// Categories lists every cost category in presentation order
var Categories = []CostCategory{
	CategoryLicensing,
	CategoryHardware,
	CategoryImplementation,
	CategorySupport,
	CategoryTraining,
	CategoryMaintenance,
	CategoryHidden,
	CategoryOperational,
	CategoryCompliance,
	CategoryMigration,
	CategoryConsulting,
	CategoryIntegration,
}

// CostBreakdown is the full cost of ownership over the analysis horizon.
// Total is always the exact decimal sum of the category amounts; no rounding
// happens inside the engine.
type CostBreakdown struct {
	Licensing      decimal.Decimal `json:"licensing"`
	Hardware       decimal.Decimal `json:"hardware"`
	Implementation decimal.Decimal `json:"implementation"`
	Support        decimal.Decimal `json:"support"`
	Training       decimal.Decimal `json:"training"`
	Maintenance    decimal.Decimal `json:"maintenance"`
	Hidden         decimal.Decimal `json:"hidden"`
	Operational    decimal.Decimal `json:"operational"`
	Compliance     decimal.Decimal `json:"compliance"`
	Migration      decimal.Decimal `json:"migration"`
	Consulting     decimal.Decimal `json:"consulting"`
	Integration    decimal.Decimal `json:"integration"`

	// Total is the sum of all categories
	Total decimal.Decimal `json:"total"`
}

// Amount returns the amount for a category
func (b *CostBreakdown) Amount(c CostCategory) decimal.Decimal {
	switch c {
	case CategoryLicensing:
		return b.Licensing
	case CategoryHardware:
		return b.Hardware
	case CategoryImplementation:
		return b.Implementation
	case CategorySupport:
		return b.Support
	case CategoryTraining:
		return b.Training
	case CategoryMaintenance:
		return b.Maintenance
	case CategoryHidden:
		return b.Hidden
	case CategoryOperational:
		return b.Operational
	case CategoryCompliance:
		return b.Compliance
	case CategoryMigration:
		return b.Migration
	case CategoryConsulting:
		return b.Consulting
	case CategoryIntegration:
		return b.Integration
	}
	return decimal.Zero
}

// Sum recomputes the category sum independently of the stored Total
func (b *CostBreakdown) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, c := range Categories {
		sum = sum.Add(b.Amount(c))
	}
	return sum
}

// Seal sets Total to the exact category sum and returns the breakdown
func (b *CostBreakdown) Seal() *CostBreakdown {
	b.Total = b.Sum()
	return b
}
