// Package catalog - Raw vendor profiles and the resolve-with-defaults pass
package catalog

import (
	"sort"

	"github.com/shopspring/decimal"

	"vendor-tco/core/types"
	"vendor-tco/internal/errors"
)

// Documented defaults for optional vendor fields. Missing optional fields
// are never an error; they resolve to these values exactly once, here.
const (
	defaultHighAvailability = 99.0
	defaultSecurityRating   = 50.0
	defaultZeroTrust        = 40.0
	defaultBreachReduction  = 30.0
	defaultAutomationLevel  = 30.0
	defaultDeploymentDays   = 30
	defaultTrainingHours    = 16
)

// RawVendor is a vendor profile as authored in catalog files.
// Every field except the pricing model and base price is optional.
type RawVendor struct {
	ID   string  `hcl:"id,label" json:"id"`
	Name *string `hcl:"name" json:"name,omitempty"`

	Pricing         *RawPricing         `hcl:"pricing,block" json:"pricing,omitempty"`
	Infrastructure  *RawInfrastructure  `hcl:"infrastructure,block" json:"infrastructure,omitempty"`
	Security        *RawSecurity        `hcl:"security,block" json:"security,omitempty"`
	Operations      *RawOperations      `hcl:"operations,block" json:"operations,omitempty"`
	AdditionalCosts *RawAdditionalCosts `hcl:"additional_costs,block" json:"additional_costs,omitempty"`
	Market          *RawMarket          `hcl:"market,block" json:"market,omitempty"`
}

// RawPricing mirrors types.Pricing with authoring-friendly scalars
type RawPricing struct {
	Model       string             `hcl:"model" json:"model"`
	BasePrice   float64            `hcl:"base_price" json:"base_price"`
	VolumeTiers []RawVolumeTier    `hcl:"volume_tier,block" json:"volume_tiers,omitempty"`
	Terms       []RawTermDiscount  `hcl:"term_discount,block" json:"term_discounts,omitempty"`
	AddonDeltas map[string]float64 `hcl:"addon_deltas,optional" json:"addon_deltas,omitempty"`
}

// RawVolumeTier is one volume discount tier
type RawVolumeTier struct {
	MinDevices int     `hcl:"min_devices" json:"min_devices"`
	Discount   float64 `hcl:"discount" json:"discount"`
}

// RawTermDiscount is one contract-term discount tier
type RawTermDiscount struct {
	MinYears int     `hcl:"min_years" json:"min_years"`
	Discount float64 `hcl:"discount" json:"discount"`
}

// RawInfrastructure mirrors types.Infrastructure
type RawInfrastructure struct {
	Deployment         *string  `hcl:"deployment" json:"deployment,omitempty"`
	CloudNative        *bool    `hcl:"cloud_native" json:"cloud_native,omitempty"`
	HardwareRequired   *bool    `hcl:"hardware_required" json:"hardware_required,omitempty"`
	HardwareCost       *float64 `hcl:"hardware_cost" json:"hardware_cost,omitempty"`
	HighAvailability   *float64 `hcl:"high_availability" json:"high_availability,omitempty"`
	MaintenanceWindows *int     `hcl:"maintenance_windows" json:"maintenance_windows,omitempty"`
	DisasterRecovery   *bool    `hcl:"disaster_recovery" json:"disaster_recovery,omitempty"`
}

// RawSecurity mirrors types.Security
type RawSecurity struct {
	CVECount            *int     `hcl:"cve_count" json:"cve_count,omitempty"`
	ActiveExploitation  *bool    `hcl:"active_exploitation" json:"active_exploitation,omitempty"`
	Rating              *float64 `hcl:"rating" json:"rating,omitempty"`
	Frameworks          []string `hcl:"frameworks,optional" json:"frameworks,omitempty"`
	AutomatedCompliance *bool    `hcl:"automated_compliance" json:"automated_compliance,omitempty"`
	ZeroTrustMaturity   *float64 `hcl:"zero_trust_maturity" json:"zero_trust_maturity,omitempty"`
	BreachRiskReduction *float64 `hcl:"breach_risk_reduction" json:"breach_risk_reduction,omitempty"`
}

// RawOperations mirrors types.Operations
type RawOperations struct {
	AutomationLevel       *float64 `hcl:"automation_level" json:"automation_level,omitempty"`
	AIDriven              *bool    `hcl:"ai_driven" json:"ai_driven,omitempty"`
	DeploymentDays        *int     `hcl:"deployment_days" json:"deployment_days,omitempty"`
	TrainingHours         *int     `hcl:"training_hours" json:"training_hours,omitempty"`
	CertificationRequired *bool    `hcl:"certification_required" json:"certification_required,omitempty"`
	Complexity            *string  `hcl:"complexity" json:"complexity,omitempty"`
}

// RawAdditionalCosts mirrors types.AdditionalCosts
type RawAdditionalCosts struct {
	Implementation    *float64 `hcl:"implementation" json:"implementation,omitempty"`
	Training          *float64 `hcl:"training" json:"training,omitempty"`
	Certification     *float64 `hcl:"certification" json:"certification,omitempty"`
	MaintenanceAnnual *float64 `hcl:"maintenance_annual" json:"maintenance_annual,omitempty"`
	SupportAnnual     *float64 `hcl:"support_annual" json:"support_annual,omitempty"`
	Integration       *float64 `hcl:"integration" json:"integration,omitempty"`
	Migration         *float64 `hcl:"migration" json:"migration,omitempty"`
	Consulting        *float64 `hcl:"consulting" json:"consulting,omitempty"`
}

// RawMarket mirrors types.Market
type RawMarket struct {
	SharePercent  *float64 `hcl:"share_percent" json:"share_percent,omitempty"`
	Category      *string  `hcl:"category" json:"category,omitempty"`
	YearsInMarket *int     `hcl:"years_in_market" json:"years_in_market,omitempty"`
}

// Normalize resolves a raw profile into a fully-populated VendorProfile.
// This runs exactly once per vendor, before any formula; downstream code
// never guards against missing fields. A missing pricing model or a
// non-positive base price is the one hard validation error.
func Normalize(raw *RawVendor) (*types.VendorProfile, error) {
	if raw.ID == "" {
		return nil, errors.Validation("vendor profile has no id")
	}
	if raw.Pricing == nil || raw.Pricing.Model == "" {
		return nil, errors.Validationf("vendor %s: pricing model is required", raw.ID)
	}

	model := types.PricingModel(raw.Pricing.Model)
	switch model {
	case types.PricingPerDevice, types.PricingPerUser, types.PricingFlatRate:
	default:
		return nil, errors.Validationf("vendor %s: unknown pricing model %q", raw.ID, raw.Pricing.Model)
	}
	if raw.Pricing.BasePrice <= 0 {
		return nil, errors.Validationf("vendor %s: base price must be positive", raw.ID)
	}

	p := &types.VendorProfile{
		ID:   raw.ID,
		Name: strOr(raw.Name, raw.ID),
	}

	p.Pricing = types.Pricing{
		Model:     model,
		BasePrice: decimal.NewFromFloat(raw.Pricing.BasePrice),
	}
	for _, t := range raw.Pricing.VolumeTiers {
		p.Pricing.VolumeTiers = append(p.Pricing.VolumeTiers, types.VolumeTier{
			MinDevices: t.MinDevices,
			Discount:   decimal.NewFromFloat(t.Discount),
		})
	}
	sort.Slice(p.Pricing.VolumeTiers, func(i, j int) bool {
		return p.Pricing.VolumeTiers[i].MinDevices < p.Pricing.VolumeTiers[j].MinDevices
	})
	for _, t := range raw.Pricing.Terms {
		p.Pricing.TermDiscounts = append(p.Pricing.TermDiscounts, types.TermDiscount{
			MinYears: t.MinYears,
			Discount: decimal.NewFromFloat(t.Discount),
		})
	}
	sort.Slice(p.Pricing.TermDiscounts, func(i, j int) bool {
		return p.Pricing.TermDiscounts[i].MinYears < p.Pricing.TermDiscounts[j].MinYears
	})
	if len(raw.Pricing.AddonDeltas) > 0 {
		p.Pricing.AddonDeltas = make(map[string]decimal.Decimal, len(raw.Pricing.AddonDeltas))
		for name, delta := range raw.Pricing.AddonDeltas {
			p.Pricing.AddonDeltas[name] = decimal.NewFromFloat(delta)
		}
	}

	infra := raw.Infrastructure
	if infra == nil {
		infra = &RawInfrastructure{}
	}
	cloudNative := boolOr(infra.CloudNative, false)
	deployment := types.DeploymentOnPrem
	if cloudNative {
		deployment = types.DeploymentCloud
	}
	if infra.Deployment != nil {
		deployment = types.DeploymentModel(*infra.Deployment)
	}
	p.Infrastructure = types.Infrastructure{
		Deployment:         deployment,
		CloudNative:        cloudNative,
		HardwareRequired:   boolOr(infra.HardwareRequired, !cloudNative),
		HardwareCost:       decOr(infra.HardwareCost, 0),
		HighAvailability:   floatOr(infra.HighAvailability, defaultHighAvailability),
		MaintenanceWindows: intOr(infra.MaintenanceWindows, deploymentWindows(deployment)),
		DisasterRecovery:   boolOr(infra.DisasterRecovery, cloudNative),
	}

	sec := raw.Security
	if sec == nil {
		sec = &RawSecurity{}
	}
	p.Security = types.Security{
		CVECount:            intOr(sec.CVECount, 0),
		ActiveExploitation:  boolOr(sec.ActiveExploitation, false),
		Rating:              floatOr(sec.Rating, defaultSecurityRating),
		Frameworks:          sec.Frameworks,
		AutomatedCompliance: boolOr(sec.AutomatedCompliance, false),
		ZeroTrustMaturity:   floatOr(sec.ZeroTrustMaturity, defaultZeroTrust),
		BreachRiskReduction: floatOr(sec.BreachRiskReduction, defaultBreachReduction),
	}

	ops := raw.Operations
	if ops == nil {
		ops = &RawOperations{}
	}
	complexity := types.ComplexityMedium
	if ops.Complexity != nil {
		complexity = types.ComplexityTier(*ops.Complexity)
	}
	p.Operations = types.Operations{
		AutomationLevel:       floatOr(ops.AutomationLevel, defaultAutomationLevel),
		AIDriven:              boolOr(ops.AIDriven, false),
		DeploymentDays:        intOr(ops.DeploymentDays, defaultDeploymentDays),
		TrainingHours:         intOr(ops.TrainingHours, defaultTrainingHours),
		CertificationRequired: boolOr(ops.CertificationRequired, false),
		Complexity:            complexity,
	}

	ac := raw.AdditionalCosts
	if ac == nil {
		ac = &RawAdditionalCosts{}
	}
	p.AdditionalCosts = types.AdditionalCosts{
		Implementation:    decOr(ac.Implementation, 0),
		Training:          decOr(ac.Training, 0),
		Certification:     decOr(ac.Certification, 0),
		MaintenanceAnnual: decOr(ac.MaintenanceAnnual, 0),
		SupportAnnual:     decOr(ac.SupportAnnual, 0),
		Integration:       decOr(ac.Integration, 0),
		Migration:         decOr(ac.Migration, 0),
		Consulting:        decOr(ac.Consulting, 0),
	}

	m := raw.Market
	if m == nil {
		m = &RawMarket{}
	}
	category := types.CategoryNiche
	if m.Category != nil {
		category = types.MarketCategory(*m.Category)
	}
	p.Market = types.Market{
		SharePercent:  floatOr(m.SharePercent, 1.0),
		Category:      category,
		YearsInMarket: intOr(m.YearsInMarket, 3),
	}

	return p, nil
}

func deploymentWindows(d types.DeploymentModel) int {
	switch d {
	case types.DeploymentCloud:
		return 0
	case types.DeploymentHybrid:
		return 4
	default:
		return 12
	}
}

func strOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func floatOr(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}

func decOr(p *float64, def float64) decimal.Decimal {
	if p != nil {
		return decimal.NewFromFloat(*p)
	}
	return decimal.NewFromFloat(def)
}
