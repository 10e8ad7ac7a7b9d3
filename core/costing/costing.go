// Package costing - Cost breakdown calculator
// Computes the full cost of ownership for one vendor under one buyer
// configuration. All amounts are decimal; the total is the exact sum of the
// categories and no rounding happens here.
package costing

import (
	"github.com/shopspring/decimal"

	"vendor-tco/core/factors"
	"vendor-tco/core/types"
)

// Model constants. Each is a documented policy value, not a tunable.
const (
	// BaselineFTE is the staffing baseline an unassisted deployment needs
	BaselineFTE = 4.0

	// MinimumFTE floors the required-staffing estimate
	MinimumFTE = 0.05

	// Deployment complexity factors applied to the FTE baseline
	FTEFactorCloud  = 0.1
	FTEFactorHybrid = 0.6
	FTEFactorOnPrem = 1.2

	// FrameworkGapCost is the cost of closing one missing compliance framework
	FrameworkGapCost = 25000

	// AuditCost is the yearly compliance audit cost
	AuditCost = 15000

	// AuditCostAutomated replaces AuditCost when compliance is automated
	AuditCostAutomated = 5000

	// HoursPerYear converts an availability gap into outage hours
	HoursPerYear = 8760

	// LockInRate is the hidden surcharge on licensing for non-cloud products
	LockInRate = 0.05
)

// Integration risk weights by declared implementation complexity
var integrationRiskWeights = map[types.ComplexityTier]float64{
	types.ComplexityLow:    0.10,
	types.ComplexityMedium: 0.25,
	types.ComplexityHigh:   0.50,
}

// Calculator computes cost breakdowns against a factor repository
type Calculator struct {
	factors factors.Repository
}

// NewCalculator creates a cost calculator
func NewCalculator(repo factors.Repository) *Calculator {
	return &Calculator{factors: repo}
}

// EffectiveUnitPrice returns the monthly unit price after add-on uplifts,
// the best applicable volume discount, the best applicable contract-term
// discount, and the real-time pricing adjustment.
//
// Volume tiers are not cumulative: the highest tier whose device threshold
// is at or below the configured device count wins.
func (c *Calculator) EffectiveUnitPrice(v *types.VendorProfile, cfg *types.Configuration, rtf types.RealTimeFactors) decimal.Decimal {
	price := v.Pricing.BasePrice
	if cfg.BasePriceOverride != nil {
		price = *cfg.BasePriceOverride
	}

	uplift := decimal.Zero
	for name, enabled := range cfg.Addons {
		if !enabled {
			continue
		}
		if delta, ok := v.Pricing.AddonDeltas[name]; ok {
			uplift = uplift.Add(delta)
		}
	}
	price = price.Mul(decimal.NewFromInt(1).Add(uplift))

	price = price.Mul(decimal.NewFromInt(1).Sub(bestVolumeDiscount(v.Pricing.VolumeTiers, cfg.Devices)))
	price = price.Mul(decimal.NewFromInt(1).Sub(bestTermDiscount(v.Pricing.TermDiscounts, cfg.Years)))

	if rtf.PricingAdjustment != 0 {
		price = price.Mul(decimal.NewFromInt(1).Add(decimal.NewFromFloat(rtf.PricingAdjustment)))
	}
	return price
}

// bestVolumeDiscount picks the largest threshold at or below the device
// count; ties cannot occur because tiers are sorted and unique by threshold.
func bestVolumeDiscount(tiers []types.VolumeTier, devices int) decimal.Decimal {
	best := decimal.Zero
	bestThreshold := -1
	for _, t := range tiers {
		if t.MinDevices <= devices && t.MinDevices > bestThreshold {
			best = t.Discount
			bestThreshold = t.MinDevices
		}
	}
	return best
}

func bestTermDiscount(tiers []types.TermDiscount, years int) decimal.Decimal {
	best := decimal.Zero
	bestYears := -1
	for _, t := range tiers {
		if t.MinYears <= years && t.MinYears > bestYears {
			best = t.Discount
			bestYears = t.MinYears
		}
	}
	return best
}

// Licensing computes the licensing cost over the whole horizon
func (c *Calculator) Licensing(v *types.VendorProfile, cfg *types.Configuration, rtf types.RealTimeFactors) decimal.Decimal {
	unit := c.EffectiveUnitPrice(v, cfg, rtf)
	years := decimal.NewFromInt(int64(cfg.Years))

	switch v.Pricing.Model {
	case types.PricingPerDevice:
		return unit.Mul(decimal.NewFromInt(int64(cfg.Devices))).Mul(decimal.NewFromInt(12)).Mul(years)
	case types.PricingPerUser:
		return unit.Mul(decimal.NewFromInt(int64(cfg.Users))).Mul(decimal.NewFromInt(12)).Mul(years)
	default:
		// Flat rate is an annual fee
		return unit.Mul(years)
	}
}

// RequiredFTE estimates the operational staffing a vendor demands under an
// industry's compliance burden
func RequiredFTE(v *types.VendorProfile, industry factors.IndustryProfile) float64 {
	factor := FTEFactorOnPrem
	switch v.Infrastructure.Deployment {
	case types.DeploymentCloud:
		factor = FTEFactorCloud
	case types.DeploymentHybrid:
		factor = FTEFactorHybrid
	}

	fte := BaselineFTE * factor * industry.ComplianceComplexity
	if fte < MinimumFTE {
		fte = MinimumFTE
	}
	return fte
}

// Breakdown computes the complete cost breakdown
func (c *Calculator) Breakdown(v *types.VendorProfile, cfg *types.Configuration, rtf types.RealTimeFactors) (*types.CostBreakdown, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	region := c.factors.RegionFactor(cfg.Region)
	industry := c.factors.IndustryProfile(cfg.Industry)

	salaryMult := decimal.NewFromFloat(region.SalaryMultiplier)
	complexityMult := decimal.NewFromFloat(industry.ComplianceComplexity)
	years := decimal.NewFromInt(int64(cfg.Years))

	b := &types.CostBreakdown{}
	b.Licensing = c.Licensing(v, cfg, rtf)

	if v.Infrastructure.HardwareRequired {
		b.Hardware = v.Infrastructure.HardwareCost
	}

	ac := v.AdditionalCosts
	b.Implementation = ac.Implementation.Mul(salaryMult).Mul(complexityMult)
	b.Training = ac.Training.Mul(salaryMult)
	b.Maintenance = ac.MaintenanceAnnual.Mul(salaryMult).Mul(years)
	b.Support = ac.SupportAnnual.Mul(salaryMult).Mul(years)
	b.Integration = ac.Integration.Mul(salaryMult)
	b.Migration = ac.Migration.Mul(salaryMult)
	b.Consulting = ac.Consulting.Mul(salaryMult)

	b.Operational = c.operationalCost(v, industry, region, cfg.Years)
	b.Compliance = c.complianceCost(v, industry, region, rtf)
	b.Hidden = c.hiddenCost(v, industry, cfg.Years, b.Licensing, b.Integration)

	return b.Seal(), nil
}

// operationalCost is staffing: required FTE × regional admin salary × years
func (c *Calculator) operationalCost(v *types.VendorProfile, industry factors.IndustryProfile, region factors.RegionFactor, years int) decimal.Decimal {
	fte := RequiredFTE(v, industry)
	salary := region.Salary(factors.RoleITAdmin)
	return decimal.NewFromFloat(fte * salary * float64(years))
}

// complianceCost covers framework gaps and audits
func (c *Calculator) complianceCost(v *types.VendorProfile, industry factors.IndustryProfile, region factors.RegionFactor, rtf types.RealTimeFactors) decimal.Decimal {
	missing := 0
	for _, f := range industry.RequiredFrameworks {
		if !v.SupportsFramework(f) {
			missing++
		}
	}

	gap := decimal.NewFromInt(int64(missing)).
		Mul(decimal.NewFromInt(FrameworkGapCost)).
		Mul(decimal.NewFromFloat(region.ComplianceMultiplier))

	audit := decimal.NewFromInt(AuditCost)
	if v.Security.AutomatedCompliance {
		audit = decimal.NewFromInt(AuditCostAutomated)
	}
	// Pending regulatory changes each add one audit cycle
	audit = audit.Mul(decimal.NewFromInt(int64(1 + rtf.ComplianceChanges)))

	return gap.Add(audit)
}

// hiddenCost covers the costs no vendor quote mentions: the availability gap
// against the industry's uptime target, integration risk, required
// certification, and lock-in for non-cloud products.
func (c *Calculator) hiddenCost(v *types.VendorProfile, industry factors.IndustryProfile, years int, licensing, integration decimal.Decimal) decimal.Decimal {
	hidden := decimal.Zero

	gapPct := industry.CriticalUptime - v.Infrastructure.HighAvailability
	if gapPct > 0 {
		downtimeHours := decimal.NewFromFloat(gapPct / 100 * HoursPerYear * float64(years))
		hidden = hidden.Add(downtimeHours.Mul(industry.DowntimeCostPerHour))
	}

	weight := integrationRiskWeights[v.Operations.Complexity]
	hidden = hidden.Add(integration.Mul(decimal.NewFromFloat(weight)))

	if v.Operations.CertificationRequired {
		hidden = hidden.Add(v.AdditionalCosts.Certification)
	}

	if !v.Infrastructure.CloudNative {
		hidden = hidden.Add(licensing.Mul(decimal.NewFromFloat(LockInRate)))
	}

	return hidden
}
