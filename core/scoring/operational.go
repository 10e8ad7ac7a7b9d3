// Package scoring - Operational metrics
package scoring

import (
	"vendor-tco/core/costing"
	"vendor-tco/core/factors"
	"vendor-tco/core/types"
)

// Base mean-time-to-repair hours by implementation complexity
var baseMTTR = map[types.ComplexityTier]float64{
	types.ComplexityLow:    2.0,
	types.ComplexityMedium: 6.0,
	types.ComplexityHigh:   12.0,
}

// Operational derives the operations scorecard for a vendor
func Operational(v *types.VendorProfile, industry factors.IndustryProfile) types.OperationalMetrics {
	auto := clamp(v.Operations.AutomationLevel)

	fteSaved := costing.BaselineFTE - costing.RequiredFTE(v, industry)
	if fteSaved < 0 {
		fteSaved = 0
	}

	windows := v.Infrastructure.MaintenanceWindows
	if v.Infrastructure.Deployment == types.DeploymentCloud {
		windows = 0
	}

	// Automation shortens repair time, up to a 70% reduction
	mttr := baseMTTR[v.Operations.Complexity] * (1 - auto/100*0.7)

	m := types.OperationalMetrics{
		AutomationLevel:    auto,
		FTESaved:           fteSaved,
		MaintenanceWindows: windows,
		MTTRHours:          mttr,
	}

	// Secondary scores: monotone in automation, nudged by vendor facts
	m.ProductivityGain = clamp(auto * 0.6)
	m.ErrorReduction = clamp(auto*0.7 + boolBonus(v.Operations.AIDriven, 10))
	m.Scalability = clamp(50 + boolBonus(v.Infrastructure.CloudNative, 35) + auto*0.15)
	m.AdminEfficiency = clamp(auto*0.8 + boolBonus(v.Security.AutomatedCompliance, 10))

	return m
}

func boolBonus(b bool, bonus float64) float64 {
	if b {
		return bonus
	}
	return 0
}
