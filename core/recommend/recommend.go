// Package recommend - Recommendation synthesizer
// Folds the financial, risk and competitive records into a suitability
// verdict with a short human-readable rationale.
package recommend

import (
	"fmt"
	"strings"

	"vendor-tco/core/types"
)

// Suitability scoring: a 50-point baseline with fixed threshold deltas
const (
	suitabilityBase = 50

	bonusCloudNative = 10

	bonusSecurityHigh    = 15 // security score > 85
	bonusSecurityGood    = 8  // security score > 70
	penaltySecurityWeak  = 15 // security score < 50
	bonusROIExceptional  = 15 // ROI > 200%
	bonusROIStrong       = 10 // ROI > 100%
	bonusROIPositive     = 5  // ROI > 50%
	bonusInnovation      = 8  // innovation score > 70
	penaltyNeverPaysBack = 20
)

// Risk classification thresholds
const (
	criticalCVECount = 100
	highCVECount     = 50
	highVendorRisk   = 60
	lowSecurityScore = 45
)

// Synthesize produces the recommendation for one vendor
func Synthesize(v *types.VendorProfile, roi types.ROIMetrics, risk types.RiskMetrics, comp types.CompetitiveMetrics) types.Recommendation {
	suitability := float64(suitabilityBase)

	if v.Infrastructure.CloudNative {
		suitability += bonusCloudNative
	}

	switch {
	case risk.SecurityScore > 85:
		suitability += bonusSecurityHigh
	case risk.SecurityScore > 70:
		suitability += bonusSecurityGood
	case risk.SecurityScore < 50:
		suitability -= penaltySecurityWeak
	}

	switch {
	case roi.PercentageROI > 200:
		suitability += bonusROIExceptional
	case roi.PercentageROI > 100:
		suitability += bonusROIStrong
	case roi.PercentageROI > 50:
		suitability += bonusROIPositive
	}

	if comp.Innovation > 70 {
		suitability += bonusInnovation
	}
	if roi.PaybackMonths >= types.PaybackNever {
		suitability -= penaltyNeverPaysBack
	}
	suitability = clamp(suitability)

	strategicFit := clamp(comp.Innovation*0.4 + comp.FutureReadiness*0.3 + comp.MarketPosition*0.3)

	rec := types.Recommendation{
		Suitability:              suitability,
		StrategicFit:             strategicFit,
		RiskLevel:                classifyRisk(v, risk),
		ImplementationComplexity: v.Operations.Complexity,
	}
	rec.OverallScore = (suitability + strategicFit + (100 - risk.VendorRisk) + comp.Innovation) / 4
	rec.Rationale = rationale(v, roi, risk, rec)
	return rec
}

// classifyRisk is the four-way risk classification. Vendors carrying
// actively exploited vulnerabilities are always critical.
func classifyRisk(v *types.VendorProfile, risk types.RiskMetrics) types.RiskLevel {
	if v.Security.ActiveExploitation {
		return types.RiskCritical
	}
	if v.Security.CVECount > criticalCVECount {
		return types.RiskCritical
	}
	if v.Security.CVECount > highCVECount ||
		risk.VendorRisk > highVendorRisk ||
		risk.SecurityScore < lowSecurityScore {
		return types.RiskHigh
	}
	if risk.SecurityScore >= 75 && risk.VendorRisk <= 30 {
		return types.RiskLow
	}
	return types.RiskMedium
}

func rationale(v *types.VendorProfile, roi types.ROIMetrics, risk types.RiskMetrics, rec types.Recommendation) string {
	var parts []string

	switch {
	case roi.PercentageROI > 200:
		parts = append(parts, fmt.Sprintf("exceptional projected ROI of %.0f%%", roi.PercentageROI))
	case roi.PercentageROI > 100:
		parts = append(parts, fmt.Sprintf("strong projected ROI of %.0f%%", roi.PercentageROI))
	case roi.PaybackMonths >= types.PaybackNever:
		parts = append(parts, "costs are not recovered within the analysis horizon")
	default:
		parts = append(parts, fmt.Sprintf("payback in %.0f months", roi.PaybackMonths))
	}

	if v.Infrastructure.CloudNative {
		parts = append(parts, "cloud-native delivery keeps operational overhead low")
	} else if v.Infrastructure.HardwareRequired {
		parts = append(parts, "on-site hardware adds upfront cost and staffing")
	}

	switch rec.RiskLevel {
	case types.RiskCritical:
		parts = append(parts, "critical security exposure requires remediation before adoption")
	case types.RiskHigh:
		parts = append(parts, fmt.Sprintf("elevated risk profile (security score %.0f)", risk.SecurityScore))
	case types.RiskLow:
		parts = append(parts, "low-risk security posture")
	}

	s := strings.Join(parts, "; ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
