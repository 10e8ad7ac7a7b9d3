// Package scoring - Risk metrics
package scoring

import (
	"math"

	"vendor-tco/core/factors"
	"vendor-tco/core/types"
)

// Additive risk penalties. Each score starts from a baseline and accumulates
// penalties at documented thresholds before clamping to [0,100].
const (
	// CVE count penalty on breach reduction: min(50, cve × 0.5) points
	cvePenaltyPerCVE = 0.5
	cvePenaltyMax    = 50

	vendorRiskBase          = 10
	vendorRiskLowShare      = 40 // market share < 2%
	vendorRiskModerateShare = 20 // market share < 5%
	vendorRiskYoung         = 15 // < 3 years in market

	operationalRiskBase      = 10
	operationalRiskManual    = 25 // automation < 40%
	operationalRiskHighMTTR  = 15 // high-complexity deployments
	operationalRiskNoAutoCmp = 10

	financialRiskBase     = 10
	financialRiskHardware = 20
	financialRiskLockIn   = 15

	reputationalRiskBase     = 5
	reputationalRiskCVEHeavy = 45 // CVE count > 50
	reputationalRiskCVEMed   = 20 // CVE count > 20
	reputationalRiskExploit  = 30

	regulatoryRiskBase = 10

	continuityRiskBase  = 10
	continuityRiskNoDR  = 20
	continuityRiskHAGap = 25
)

// Risk derives the risk scorecard for a vendor
func Risk(v *types.VendorProfile, industry factors.IndustryProfile, region factors.RegionFactor, rtf types.RealTimeFactors) types.RiskMetrics {
	m := types.RiskMetrics{}

	m.SecurityScore = clamp(v.Security.Rating)

	required := len(industry.RequiredFrameworks)
	if required == 0 {
		m.ComplianceScore = 100
	} else {
		supported := 0
		for _, f := range industry.RequiredFrameworks {
			if v.SupportsFramework(f) {
				supported++
			}
		}
		m.ComplianceScore = float64(supported) / float64(required) * 100
	}

	// Declared breach reduction, discounted by the CVE record.
	// Active security alerts count against the vendor like published CVEs.
	effectiveCVEs := v.Security.CVECount + rtf.SecurityAlerts
	cvePenalty := math.Min(cvePenaltyMax, float64(effectiveCVEs)*cvePenaltyPerCVE)
	m.BreachReduction = clamp(v.Security.BreachRiskReduction - cvePenalty)

	vendorRisk := float64(vendorRiskBase)
	switch {
	case v.Market.SharePercent < 2:
		vendorRisk += vendorRiskLowShare
	case v.Market.SharePercent < 5:
		vendorRisk += vendorRiskModerateShare
	}
	if v.Market.YearsInMarket < 3 {
		vendorRisk += vendorRiskYoung
	}
	m.VendorRisk = clamp(vendorRisk)

	opRisk := float64(operationalRiskBase)
	if v.Operations.AutomationLevel < 40 {
		opRisk += operationalRiskManual
	}
	if v.Operations.Complexity == types.ComplexityHigh {
		opRisk += operationalRiskHighMTTR
	}
	if !v.Security.AutomatedCompliance {
		opRisk += operationalRiskNoAutoCmp
	}
	m.OperationalRisk = clamp(opRisk)

	finRisk := float64(financialRiskBase)
	if v.Infrastructure.HardwareRequired {
		finRisk += financialRiskHardware
	}
	if !v.Infrastructure.CloudNative {
		finRisk += financialRiskLockIn
	}
	m.FinancialRisk = clamp(finRisk)

	repRisk := float64(reputationalRiskBase)
	switch {
	case effectiveCVEs > 50:
		repRisk += reputationalRiskCVEHeavy
	case effectiveCVEs > 20:
		repRisk += reputationalRiskCVEMed
	}
	if v.Security.ActiveExploitation {
		repRisk += reputationalRiskExploit
	}
	m.ReputationalRisk = clamp(repRisk)

	// Regulatory exposure follows uncovered frameworks, scaled by the
	// region's regulatory environment
	gapRatio := 1 - m.ComplianceScore/100
	m.RegulatoryRisk = clamp(regulatoryRiskBase + gapRatio*60*region.RegulatoryEnvironment)

	contRisk := float64(continuityRiskBase)
	if !v.Infrastructure.DisasterRecovery {
		contRisk += continuityRiskNoDR
	}
	if v.Infrastructure.HighAvailability < industry.CriticalUptime {
		contRisk += continuityRiskHAGap
	}
	m.BusinessContinuityRisk = clamp(contRisk)

	// Technology risk blends the security record with operational fragility
	m.TechnologyRisk = clamp((100-m.SecurityScore)*0.5 + cvePenalty*0.5 +
		boolBonus(v.Security.ActiveExploitation, 20))

	return m
}
