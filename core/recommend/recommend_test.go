// Package recommend - Synthesizer tests
package recommend

import (
	"math"
	"testing"

	"vendor-tco/core/types"
)

func vendor() *types.VendorProfile {
	return &types.VendorProfile{
		ID:   "v",
		Name: "V",
		Infrastructure: types.Infrastructure{
			CloudNative: true,
		},
		Security: types.Security{
			CVECount: 10,
			Rating:   85,
		},
		Operations: types.Operations{
			Complexity: types.ComplexityLow,
		},
	}
}

func metrics() (types.ROIMetrics, types.RiskMetrics, types.CompetitiveMetrics) {
	roi := types.ROIMetrics{PercentageROI: 150, PaybackMonths: 14}
	risk := types.RiskMetrics{SecurityScore: 85, VendorRisk: 20}
	comp := types.CompetitiveMetrics{
		Innovation:      80,
		FutureReadiness: 75,
		MarketPosition:  70,
	}
	return roi, risk, comp
}

// TestActiveExploitationIsCritical proves the explicit critical override
func TestActiveExploitationIsCritical(t *testing.T) {
	v := vendor()
	v.Security.ActiveExploitation = true

	roi, risk, comp := metrics()
	rec := Synthesize(v, roi, risk, comp)
	if rec.RiskLevel != types.RiskCritical {
		t.Fatalf("risk level = %s, want critical", rec.RiskLevel)
	}
}

// TestRiskClassificationTiers walks the four-way classification
func TestRiskClassificationTiers(t *testing.T) {
	roi, risk, comp := metrics()

	low := Synthesize(vendor(), roi, risk, comp)
	if low.RiskLevel != types.RiskLow {
		t.Fatalf("risk level = %s, want low", low.RiskLevel)
	}

	cveHeavy := vendor()
	cveHeavy.Security.CVECount = 60
	if rec := Synthesize(cveHeavy, roi, risk, comp); rec.RiskLevel != types.RiskHigh {
		t.Fatalf("risk level = %s, want high for CVE count > 50", rec.RiskLevel)
	}

	cveExtreme := vendor()
	cveExtreme.Security.CVECount = 150
	if rec := Synthesize(cveExtreme, roi, risk, comp); rec.RiskLevel != types.RiskCritical {
		t.Fatalf("risk level = %s, want critical for CVE count > 100", rec.RiskLevel)
	}
}

// TestSuitabilityROITiers proves higher ROI tiers raise suitability
func TestSuitabilityROITiers(t *testing.T) {
	_, risk, comp := metrics()

	strong := Synthesize(vendor(), types.ROIMetrics{PercentageROI: 250, PaybackMonths: 10}, risk, comp)
	modest := Synthesize(vendor(), types.ROIMetrics{PercentageROI: 60, PaybackMonths: 30}, risk, comp)
	if strong.Suitability <= modest.Suitability {
		t.Fatalf("ROI 250%% suitability %v should exceed ROI 60%% %v",
			strong.Suitability, modest.Suitability)
	}
}

// TestOverallScoreIsMean proves the unweighted four-way mean
func TestOverallScoreIsMean(t *testing.T) {
	roi, risk, comp := metrics()
	rec := Synthesize(vendor(), roi, risk, comp)

	want := (rec.Suitability + rec.StrategicFit + (100 - risk.VendorRisk) + comp.Innovation) / 4
	if math.Abs(rec.OverallScore-want) > 1e-12 {
		t.Fatalf("overall = %v, want %v", rec.OverallScore, want)
	}
}

// TestComplexityPassthrough proves the vendor tier is reported unchanged
func TestComplexityPassthrough(t *testing.T) {
	v := vendor()
	v.Operations.Complexity = types.ComplexityHigh

	roi, risk, comp := metrics()
	rec := Synthesize(v, roi, risk, comp)
	if rec.ImplementationComplexity != types.ComplexityHigh {
		t.Fatalf("complexity = %s, want high", rec.ImplementationComplexity)
	}
}

// TestRationaleMentionsNoPayback proves the never-pays-back wording
func TestRationaleMentionsNoPayback(t *testing.T) {
	roi, risk, comp := metrics()
	roi.PercentageROI = 0
	roi.PaybackMonths = types.PaybackNever

	rec := Synthesize(vendor(), roi, risk, comp)
	if rec.Rationale == "" {
		t.Fatal("rationale should not be empty")
	}
}
