// Package finance - Financial analytics engine
// Consumes a sealed cost breakdown and produces the full ROI record:
// payback, ROI, NPV, IRR, profitability index, risk-adjusted return and the
// fixed three-scenario sensitivity bracket.
package finance

import (
	"math"

	"vendor-tco/core/factors"
	"vendor-tco/core/types"
)

// Sensitivity bracket multipliers (fixed scenario model, not a distribution)
const (
	OptimisticROIFactor     = 1.4
	OptimisticPaybackFactor = 0.7
	OptimisticNPVFactor     = 1.5

	PessimisticROIFactor     = 0.6
	PessimisticPaybackFactor = 1.5
	PessimisticNPVFactor     = 0.4
)

// TechnologyRiskHaircut scales how strongly technology risk discounts IRR
const TechnologyRiskHaircut = 0.2

// Engine computes financial analytics against a factor repository
type Engine struct {
	factors factors.Repository
}

// NewEngine creates a financial analytics engine
func NewEngine(repo factors.Repository) *Engine {
	return &Engine{factors: repo}
}

// Analyze produces the complete ROI record for one vendor.
// technologyRisk is the [0,100] risk score produced by the risk calculator.
func (e *Engine) Analyze(b *types.CostBreakdown, v *types.VendorProfile, cfg *types.Configuration, technologyRisk float64) types.ROIMetrics {
	region := e.factors.RegionFactor(cfg.Region)
	industry := e.factors.IndustryProfile(cfg.Industry)

	total, _ := b.Total.Float64()
	years := cfg.Years

	annualSavings, drivers := AnnualSavings(v, cfg, region, industry)
	netAnnualBenefit := annualSavings - total/float64(years)

	m := types.ROIMetrics{
		AnnualSavings:    annualSavings,
		NetAnnualBenefit: netAnnualBenefit,
		ValueDrivers:     drivers,
	}

	m.PaybackMonths = types.PaybackNever
	if netAnnualBenefit > 0 {
		payback := total / netAnnualBenefit * 12
		if payback < types.PaybackNever {
			m.PaybackMonths = payback
		}
	}

	if netAnnualBenefit > 0 {
		m.PercentageROI = netAnnualBenefit * float64(years) / total * 100
	}

	m.NPV = NPV(total, annualSavings, years, DiscountRate)
	m.IRR, m.IRRConverged = IRR(total, annualSavings, years)

	if total != 0 {
		m.ProfitabilityIndex = m.NPV / total
	}

	m.RiskAdjustedReturn = m.IRR * (1 - technologyRisk/100*TechnologyRiskHaircut)

	m.Sensitivity = sensitivity(m)
	return m
}

// sensitivity brackets the realistic outputs with the fixed multipliers
func sensitivity(m types.ROIMetrics) types.Sensitivity {
	realistic := types.Scenario{
		ROI:           m.PercentageROI,
		PaybackMonths: m.PaybackMonths,
		NPV:           m.NPV,
	}
	return types.Sensitivity{
		Optimistic: types.Scenario{
			ROI:           m.PercentageROI * OptimisticROIFactor,
			PaybackMonths: capPayback(m.PaybackMonths * OptimisticPaybackFactor),
			NPV:           m.NPV * OptimisticNPVFactor,
		},
		Realistic: realistic,
		Pessimistic: types.Scenario{
			ROI:           m.PercentageROI * PessimisticROIFactor,
			PaybackMonths: capPayback(m.PaybackMonths * PessimisticPaybackFactor),
			NPV:           m.NPV * PessimisticNPVFactor,
		},
	}
}

func capPayback(months float64) float64 {
	return math.Min(months, types.PaybackNever)
}
