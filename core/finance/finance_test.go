// Package finance - Financial analytics tests
package finance

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"vendor-tco/core/factors"
	"vendor-tco/core/types"
)

func cloudVendor() *types.VendorProfile {
	return &types.VendorProfile{
		ID:   "cloud-vendor",
		Name: "Cloud Vendor",
		Pricing: types.Pricing{
			Model:     types.PricingPerDevice,
			BasePrice: decimal.NewFromFloat(4.00),
		},
		Infrastructure: types.Infrastructure{
			Deployment:       types.DeploymentCloud,
			CloudNative:      true,
			HardwareRequired: false,
			HighAvailability: 99.95,
		},
		Security: types.Security{
			Rating:              85,
			Frameworks:          []string{"SOC2", "ISO27001"},
			BreachRiskReduction: 55,
		},
		Operations: types.Operations{
			AutomationLevel: 80,
			Complexity:      types.ComplexityLow,
		},
		Market: types.Market{SharePercent: 12, Category: types.CategoryLeader},
	}
}

func config() *types.Configuration {
	return &types.Configuration{
		Devices:  1000,
		Users:    800,
		Years:    3,
		Region:   "north-america",
		Industry: "technology",
	}
}

func breakdownWithTotal(total int64) *types.CostBreakdown {
	b := &types.CostBreakdown{Licensing: decimal.NewFromInt(total)}
	return b.Seal()
}

// TestNPVZeroRate proves the discounted formula reduces to plain arithmetic
// at rate zero: NPV = years x annual - total
func TestNPVZeroRate(t *testing.T) {
	got := NPV(300000, 150000, 3, 0)
	want := 150000.0*3 - 300000
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("NPV at rate 0 = %v, want %v", got, want)
	}
}

// TestIRRConverges proves |NPV(irr)| < epsilon for a converged root
func TestIRRConverges(t *testing.T) {
	irr, converged := IRR(300000, 150000, 3)
	if !converged {
		t.Fatal("expected convergence for a well-behaved cash flow")
	}
	if residual := math.Abs(NPV(300000, 150000, 3, irr)); residual >= IRREpsilon {
		t.Fatalf("NPV at converged IRR = %v, want < %v", residual, IRREpsilon)
	}
	if irr <= 0 {
		t.Fatalf("IRR = %v, want positive for a profitable cash flow", irr)
	}
}

// TestPaybackSentinel proves net benefit at or below zero yields exactly 999
func TestPaybackSentinel(t *testing.T) {
	eng := NewEngine(factors.NewInMemoryRepository())

	// A total cost no savings model can recover
	b := breakdownWithTotal(1e12)
	m := eng.Analyze(b, cloudVendor(), config(), 20)

	if m.NetAnnualBenefit > 0 {
		t.Fatalf("test setup: net benefit %v should be negative", m.NetAnnualBenefit)
	}
	if m.PaybackMonths != types.PaybackNever {
		t.Fatalf("payback = %v, want sentinel %d", m.PaybackMonths, types.PaybackNever)
	}
	if m.PercentageROI != 0 {
		t.Fatalf("ROI = %v, want 0 when net benefit is negative", m.PercentageROI)
	}
}

// TestSensitivityOrdering proves the fixed-bracket ordering always holds
func TestSensitivityOrdering(t *testing.T) {
	eng := NewEngine(factors.NewInMemoryRepository())

	for _, total := range []int64{100000, 500000, 5000000, 1e12} {
		m := eng.Analyze(breakdownWithTotal(total), cloudVendor(), config(), 20)
		s := m.Sensitivity

		if s.Optimistic.ROI < s.Realistic.ROI || s.Realistic.ROI < s.Pessimistic.ROI {
			t.Fatalf("total %d: ROI ordering violated: %+v", total, s)
		}
		if s.Optimistic.PaybackMonths > s.Realistic.PaybackMonths ||
			s.Realistic.PaybackMonths > s.Pessimistic.PaybackMonths {
			t.Fatalf("total %d: payback ordering violated: %+v", total, s)
		}
	}
}

// TestValueDriversSum proves the drivers decompose annual savings exactly
func TestValueDriversSum(t *testing.T) {
	repo := factors.NewInMemoryRepository()
	region := repo.RegionFactor("north-america")
	industry := repo.IndustryProfile("technology")

	total, d := AnnualSavings(cloudVendor(), config(), region, industry)
	sum := d.Security + d.Operational + d.Compliance + d.Productivity + d.Infrastructure
	if math.Abs(total-sum) > 1e-6 {
		t.Fatalf("drivers sum %v != annual savings %v", sum, total)
	}
}

// TestInfrastructureDriverForCloudNative proves a cloud-native vendor always
// shows a non-zero infrastructure value driver
func TestInfrastructureDriverForCloudNative(t *testing.T) {
	repo := factors.NewInMemoryRepository()
	region := repo.RegionFactor("north-america")
	industry := repo.IndustryProfile("technology")

	_, d := AnnualSavings(cloudVendor(), config(), region, industry)
	if d.Infrastructure <= 0 {
		t.Fatalf("infrastructure driver = %v, want > 0 for cloud-native", d.Infrastructure)
	}
}

// TestRiskAdjustedReturn proves the technology-risk haircut
func TestRiskAdjustedReturn(t *testing.T) {
	eng := NewEngine(factors.NewInMemoryRepository())

	m := eng.Analyze(breakdownWithTotal(500000), cloudVendor(), config(), 50)
	want := m.IRR * (1 - 50.0/100*TechnologyRiskHaircut)
	if math.Abs(m.RiskAdjustedReturn-want) > 1e-12 {
		t.Fatalf("risk-adjusted return = %v, want %v", m.RiskAdjustedReturn, want)
	}
}
