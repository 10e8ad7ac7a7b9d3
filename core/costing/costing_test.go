// Package costing - Breakdown invariant tests
package costing

import (
	"testing"

	"github.com/shopspring/decimal"

	"vendor-tco/core/factors"
	"vendor-tco/core/types"
)

// sampleVendor is a cloud-native per-device vendor with a 15% volume discount
// at 1000 devices and a 25% three-year contract discount.
func sampleVendor() *types.VendorProfile {
	return &types.VendorProfile{
		ID:   "sample-vendor",
		Name: "Sample Vendor",
		Pricing: types.Pricing{
			Model:     types.PricingPerDevice,
			BasePrice: decimal.NewFromFloat(4.00),
			VolumeTiers: []types.VolumeTier{
				{MinDevices: 500, Discount: decimal.NewFromFloat(0.10)},
				{MinDevices: 1000, Discount: decimal.NewFromFloat(0.15)},
			},
			TermDiscounts: []types.TermDiscount{
				{MinYears: 1, Discount: decimal.NewFromFloat(0.10)},
				{MinYears: 3, Discount: decimal.NewFromFloat(0.25)},
			},
		},
		Infrastructure: types.Infrastructure{
			Deployment:       types.DeploymentCloud,
			CloudNative:      true,
			HardwareRequired: false,
			HighAvailability: 99.95,
			DisasterRecovery: true,
		},
		Security: types.Security{
			CVECount:            10,
			Rating:              85,
			Frameworks:          []string{"SOC2", "ISO27001"},
			AutomatedCompliance: true,
			ZeroTrustMaturity:   70,
			BreachRiskReduction: 55,
		},
		Operations: types.Operations{
			AutomationLevel: 80,
			DeploymentDays:  14,
			TrainingHours:   8,
			Complexity:      types.ComplexityLow,
		},
		Market: types.Market{
			SharePercent:  12,
			Category:      types.CategoryLeader,
			YearsInMarket: 8,
		},
	}
}

func baseConfig() *types.Configuration {
	return &types.Configuration{
		Devices:  1000,
		Users:    800,
		Years:    3,
		Region:   "north-america",
		Industry: "technology",
	}
}

// TestEffectivePriceScenario proves the documented discount composition:
// $4.00 x 0.85 (volume) x 0.75 (term) = $2.55 per device per month.
func TestEffectivePriceScenario(t *testing.T) {
	calc := NewCalculator(factors.NewInMemoryRepository())

	price := calc.EffectiveUnitPrice(sampleVendor(), baseConfig(), types.RealTimeFactors{})
	want := decimal.NewFromFloat(2.55)
	if !price.Equal(want) {
		t.Fatalf("effective price = %s, want %s", price, want)
	}
}

// TestLicensingScenario proves 2.55 x 1000 devices x 12 months x 3 years = $91,800
func TestLicensingScenario(t *testing.T) {
	calc := NewCalculator(factors.NewInMemoryRepository())

	got := calc.Licensing(sampleVendor(), baseConfig(), types.RealTimeFactors{})
	want := decimal.NewFromInt(91800)
	if !got.Equal(want) {
		t.Fatalf("licensing = %s, want %s", got, want)
	}
}

// TestTotalIsExactSum proves the breakdown total equals the category sum
func TestTotalIsExactSum(t *testing.T) {
	calc := NewCalculator(factors.NewInMemoryRepository())

	b, err := calc.Breakdown(sampleVendor(), baseConfig(), types.RealTimeFactors{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.Total.Equal(b.Sum()) {
		t.Fatalf("total %s != category sum %s", b.Total, b.Sum())
	}
}

// TestVolumeDiscountMonotonic proves that crossing a volume threshold never
// increases the effective per-device price
func TestVolumeDiscountMonotonic(t *testing.T) {
	calc := NewCalculator(factors.NewInMemoryRepository())
	v := sampleVendor()

	below := baseConfig()
	below.Devices = 999
	above := baseConfig()
	above.Devices = 1000

	priceBelow := calc.EffectiveUnitPrice(v, below, types.RealTimeFactors{})
	priceAbove := calc.EffectiveUnitPrice(v, above, types.RealTimeFactors{})

	if priceAbove.Cmp(priceBelow) >= 0 {
		t.Fatalf("price above threshold %s should be lower than below %s", priceAbove, priceBelow)
	}
}

// TestTermDiscountOrdering proves a longer contract never pays a higher
// unit price
func TestTermDiscountOrdering(t *testing.T) {
	calc := NewCalculator(factors.NewInMemoryRepository())
	v := sampleVendor()

	prices := map[int]decimal.Decimal{}
	for _, years := range []int{1, 2, 3} {
		cfg := baseConfig()
		cfg.Years = years
		prices[years] = calc.EffectiveUnitPrice(v, cfg, types.RealTimeFactors{})
	}

	if prices[3].Cmp(prices[1]) > 0 {
		t.Fatalf("3-year price %s exceeds 1-year price %s", prices[3], prices[1])
	}
	if prices[2].Cmp(prices[1]) != 0 {
		t.Fatalf("2-year price %s should match the 1-year tier %s", prices[2], prices[1])
	}

	// With no term schedule there is no discount at all
	v.Pricing.TermDiscounts = nil
	undiscounted := calc.EffectiveUnitPrice(v, baseConfig(), types.RealTimeFactors{})
	if prices[1].Cmp(undiscounted) > 0 {
		t.Fatalf("1-year discounted price %s exceeds undiscounted %s", prices[1], undiscounted)
	}
}

// TestHardwareZeroForCloudNative proves cloud vendors carry no hardware cost
func TestHardwareZeroForCloudNative(t *testing.T) {
	calc := NewCalculator(factors.NewInMemoryRepository())

	b, err := calc.Breakdown(sampleVendor(), baseConfig(), types.RealTimeFactors{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.Hardware.IsZero() {
		t.Fatalf("hardware = %s, want 0", b.Hardware)
	}
}

// TestBreakdownRejectsInvalidConfig proves validation runs before computation
func TestBreakdownRejectsInvalidConfig(t *testing.T) {
	calc := NewCalculator(factors.NewInMemoryRepository())

	cfg := baseConfig()
	cfg.Devices = 0
	if _, err := calc.Breakdown(sampleVendor(), cfg, types.RealTimeFactors{}); err == nil {
		t.Fatal("expected validation error for zero devices")
	}
}

// TestRequiredFTE proves deployment model drives staffing, with the floor
func TestRequiredFTE(t *testing.T) {
	repo := factors.NewInMemoryRepository()
	tech := repo.IndustryProfile("technology")

	cloud := sampleVendor()
	if got := RequiredFTE(cloud, tech); got != 0.4 {
		t.Fatalf("cloud FTE = %v, want 0.4", got)
	}

	onprem := sampleVendor()
	onprem.Infrastructure.Deployment = types.DeploymentOnPrem
	if got := RequiredFTE(onprem, tech); got != 4.8 {
		t.Fatalf("on-prem FTE = %v, want 4.8", got)
	}

	if got, min := RequiredFTE(cloud, tech), MinimumFTE; got < min {
		t.Fatalf("FTE %v below floor %v", got, min)
	}
}

// TestComplianceGapCost proves missing frameworks are charged per gap
func TestComplianceGapCost(t *testing.T) {
	calc := NewCalculator(factors.NewInMemoryRepository())

	covered := sampleVendor() // supports SOC2 + ISO27001, all of technology's needs
	gapped := sampleVendor()
	gapped.Security.Frameworks = []string{"SOC2"}

	cfg := baseConfig()
	bCovered, _ := calc.Breakdown(covered, cfg, types.RealTimeFactors{})
	bGapped, _ := calc.Breakdown(gapped, cfg, types.RealTimeFactors{})

	diff := bGapped.Compliance.Sub(bCovered.Compliance)
	want := decimal.NewFromInt(FrameworkGapCost)
	if !diff.Equal(want) {
		t.Fatalf("one framework gap costs %s, want %s", diff, want)
	}
}

// TestPricingAdjustmentApplies proves the real-time delta reaches licensing
func TestPricingAdjustmentApplies(t *testing.T) {
	calc := NewCalculator(factors.NewInMemoryRepository())

	neutral := calc.Licensing(sampleVendor(), baseConfig(), types.RealTimeFactors{})
	raised := calc.Licensing(sampleVendor(), baseConfig(), types.RealTimeFactors{PricingAdjustment: 0.10})

	want := neutral.Mul(decimal.NewFromFloat(1.10))
	if !raised.Equal(want) {
		t.Fatalf("adjusted licensing = %s, want %s", raised, want)
	}
}
