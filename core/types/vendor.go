// Package types - Vendor profile types
package types

import "github.com/shopspring/decimal"

// PricingModel identifies how a vendor charges
type PricingModel string

const (
	PricingPerDevice PricingModel = "per-device"
	PricingPerUser   PricingModel = "per-user"
	PricingFlatRate  PricingModel = "flat-rate"
)

// String returns the string representation
func (m PricingModel) String() string {
	return string(m)
}

// DeploymentModel identifies where the product runs
type DeploymentModel string

const (
	DeploymentCloud  DeploymentModel = "cloud"
	DeploymentHybrid DeploymentModel = "hybrid"
	DeploymentOnPrem DeploymentModel = "on-prem"
)

// ComplexityTier classifies implementation complexity
type ComplexityTier string

const (
	ComplexityLow    ComplexityTier = "low"
	ComplexityMedium ComplexityTier = "medium"
	ComplexityHigh   ComplexityTier = "high"
)

// MarketCategory is the analyst-quadrant placement of a vendor
type MarketCategory string

const (
	CategoryLeader     MarketCategory = "leader"
	CategoryVisionary  MarketCategory = "visionary"
	CategoryChallenger MarketCategory = "challenger"
	CategoryNiche      MarketCategory = "niche"
)

// VolumeTier is a device-count threshold past which a discount applies.
// Tiers are not cumulative; the best tier at or below the device count wins.
type VolumeTier struct {
	// MinDevices is the threshold device count
	MinDevices int `json:"min_devices"`

	// Discount is the fractional discount (0.15 = 15% off)
	Discount decimal.Decimal `json:"discount"`
}

// TermDiscount is a contract-length discount tier
type TermDiscount struct {
	// MinYears is the minimum contract length for this tier
	MinYears int `json:"min_years"`

	// Discount is the fractional discount
	Discount decimal.Decimal `json:"discount"`
}

// Pricing describes a vendor's price book
type Pricing struct {
	// Model is the pricing model type; absence is a hard validation error
	Model PricingModel `json:"model"`

	// BasePrice is the monthly unit price (per device or user) or the annual
	// flat fee for flat-rate models
	BasePrice decimal.Decimal `json:"base_price"`

	// VolumeTiers lists volume discounts by device threshold
	VolumeTiers []VolumeTier `json:"volume_tiers,omitempty"`

	// TermDiscounts lists contract-term discounts by minimum years
	TermDiscounts []TermDiscount `json:"term_discounts,omitempty"`

	// AddonDeltas maps add-on name to fractional unit-price uplift
	AddonDeltas map[string]decimal.Decimal `json:"addon_deltas,omitempty"`
}

// Infrastructure describes a vendor's runtime footprint
type Infrastructure struct {
	// Deployment is the deployment model
	Deployment DeploymentModel `json:"deployment"`

	// CloudNative is true for pure SaaS products
	CloudNative bool `json:"cloud_native"`

	// HardwareRequired is true when on-site appliances are needed
	HardwareRequired bool `json:"hardware_required"`

	// HardwareCost is the one-time appliance cost when required
	HardwareCost decimal.Decimal `json:"hardware_cost"`

	// HighAvailability is the contractual uptime percentage (e.g. 99.95)
	HighAvailability float64 `json:"high_availability"`

	// MaintenanceWindows is the yearly count of planned maintenance windows
	MaintenanceWindows int `json:"maintenance_windows"`

	// DisasterRecovery is true when a DR capability is included
	DisasterRecovery bool `json:"disaster_recovery"`
}

// Security describes a vendor's security posture
type Security struct {
	// CVECount is the published vulnerability count
	CVECount int `json:"cve_count"`

	// ActiveExploitation is true when any CVE is known-exploited
	ActiveExploitation bool `json:"active_exploitation"`

	// Rating is the vendor security rating [0,100]
	Rating float64 `json:"rating"`

	// Frameworks lists supported compliance frameworks
	Frameworks []string `json:"frameworks,omitempty"`

	// AutomatedCompliance is true when compliance reporting is automated
	AutomatedCompliance bool `json:"automated_compliance"`

	// ZeroTrustMaturity is the zero-trust maturity score [0,100]
	ZeroTrustMaturity float64 `json:"zero_trust_maturity"`

	// BreachRiskReduction is the vendor-declared breach risk reduction [0,100]
	BreachRiskReduction float64 `json:"breach_risk_reduction"`
}

// Operations describes a vendor's operational characteristics
type Operations struct {
	// AutomationLevel is the declared automation percentage [0,100]
	AutomationLevel float64 `json:"automation_level"`

	// AIDriven is true when automation is AI-driven
	AIDriven bool `json:"ai_driven"`

	// DeploymentDays is the typical time to production
	DeploymentDays int `json:"deployment_days"`

	// TrainingHours is the admin training requirement
	TrainingHours int `json:"training_hours"`

	// CertificationRequired is true when admins need paid certification
	CertificationRequired bool `json:"certification_required"`

	// Complexity is the implementation complexity tier
	Complexity ComplexityTier `json:"complexity"`
}

// AdditionalCosts are vendor-declared non-licensing cost fields.
// Zero values mean the vendor declares none; they are never an error.
type AdditionalCosts struct {
	Implementation decimal.Decimal `json:"implementation"`
	Training       decimal.Decimal `json:"training"`
	Certification  decimal.Decimal `json:"certification"`

	// MaintenanceAnnual and SupportAnnual repeat every contract year
	MaintenanceAnnual decimal.Decimal `json:"maintenance_annual"`
	SupportAnnual     decimal.Decimal `json:"support_annual"`

	Integration decimal.Decimal `json:"integration"`
	Migration   decimal.Decimal `json:"migration"`
	Consulting  decimal.Decimal `json:"consulting"`
}

// Market describes a vendor's market position
type Market struct {
	// SharePercent is the vendor's market share [0,100]
	SharePercent float64 `json:"share_percent"`

	// Category is the analyst-quadrant placement
	Category MarketCategory `json:"category"`

	// YearsInMarket is how long the product has shipped
	YearsInMarket int `json:"years_in_market"`
}

// VendorProfile is a fully-populated, typed vendor record.
// Profiles are produced only by the catalog normalization pass, so formulas
// downstream never need null-guards or fallback defaults.
type VendorProfile struct {
	// ID is the catalog key
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	Pricing         Pricing         `json:"pricing"`
	Infrastructure  Infrastructure  `json:"infrastructure"`
	Security        Security        `json:"security"`
	Operations      Operations      `json:"operations"`
	AdditionalCosts AdditionalCosts `json:"additional_costs"`
	Market          Market          `json:"market"`
}

// SupportsFramework reports whether the vendor covers a compliance framework
func (v *VendorProfile) SupportsFramework(name string) bool {
	for _, f := range v.Security.Frameworks {
		if f == name {
			return true
		}
	}
	return false
}
