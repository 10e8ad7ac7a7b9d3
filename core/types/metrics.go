// Package types - Derived metric records
package types

// PaybackNever is the sentinel payback value meaning the investment never
// breaks even inside the analysis horizon.
const PaybackNever = 999

// Scenario holds one sensitivity bracket of the financial outputs
type Scenario struct {
	// ROI is the percentage return on investment
	ROI float64 `json:"roi"`

	// PaybackMonths is the months to break even (capped at PaybackNever)
	PaybackMonths float64 `json:"payback_months"`

	// NPV is the net present value
	NPV float64 `json:"npv"`
}

// Sensitivity is the fixed-multiplier three-scenario bracket
type Sensitivity struct {
	Optimistic  Scenario `json:"optimistic"`
	Realistic   Scenario `json:"realistic"`
	Pessimistic Scenario `json:"pessimistic"`
}

// ValueDrivers decomposes annual savings into its sources.
// The buckets sum back to AnnualSavings.
type ValueDrivers struct {
	Security       float64 `json:"security"`
	Operational    float64 `json:"operational"`
	Compliance     float64 `json:"compliance"`
	Productivity   float64 `json:"productivity"`
	Infrastructure float64 `json:"infrastructure"`
}

// ROIMetrics is the financial analytics record
type ROIMetrics struct {
	// AnnualSavings is the modeled yearly benefit
	AnnualSavings float64 `json:"annual_savings"`

	// NetAnnualBenefit is AnnualSavings minus annualized cost
	NetAnnualBenefit float64 `json:"net_annual_benefit"`

	// PaybackMonths is months to break even, PaybackNever if never
	PaybackMonths float64 `json:"payback_months"`

	// PercentageROI is (net benefit over horizon / total cost) × 100, floor 0
	PercentageROI float64 `json:"percentage_roi"`

	// NPV is the net present value at the fixed discount rate
	NPV float64 `json:"npv"`

	// IRR is the internal rate of return from the bounded root-finder
	IRR float64 `json:"irr"`

	// IRRConverged is false when the root-finder hit its iteration cap;
	// callers must treat the IRR as lower-confidence then
	IRRConverged bool `json:"irr_converged"`

	// ProfitabilityIndex is NPV / total cost
	ProfitabilityIndex float64 `json:"profitability_index"`

	// RiskAdjustedReturn is IRR discounted by technology risk
	RiskAdjustedReturn float64 `json:"risk_adjusted_return"`

	Sensitivity  Sensitivity  `json:"sensitivity"`
	ValueDrivers ValueDrivers `json:"value_drivers"`
}

// OperationalMetrics are derived operations scores, percentages in [0,100]
type OperationalMetrics struct {
	AutomationLevel    float64 `json:"automation_level"`
	FTESaved           float64 `json:"fte_saved"`
	MaintenanceWindows int     `json:"maintenance_windows"`
	MTTRHours          float64 `json:"mttr_hours"`
	ProductivityGain   float64 `json:"productivity_gain"`
	ErrorReduction     float64 `json:"error_reduction"`
	Scalability        float64 `json:"scalability"`
	AdminEfficiency    float64 `json:"admin_efficiency"`
}

// RiskMetrics are derived risk scores, each clamped to [0,100]
type RiskMetrics struct {
	SecurityScore          float64 `json:"security_score"`
	ComplianceScore        float64 `json:"compliance_score"`
	BreachReduction        float64 `json:"breach_reduction"`
	VendorRisk             float64 `json:"vendor_risk"`
	OperationalRisk        float64 `json:"operational_risk"`
	FinancialRisk          float64 `json:"financial_risk"`
	ReputationalRisk       float64 `json:"reputational_risk"`
	RegulatoryRisk         float64 `json:"regulatory_risk"`
	BusinessContinuityRisk float64 `json:"business_continuity_risk"`
	TechnologyRisk         float64 `json:"technology_risk"`
}

// CompetitiveMetrics are market-position scores, each clamped to [0,100]
type CompetitiveMetrics struct {
	Innovation           float64 `json:"innovation"`
	FutureReadiness      float64 `json:"future_readiness"`
	MarketPosition       float64 `json:"market_position"`
	TechnologyLeadership float64 `json:"technology_leadership"`
}

// TimelinePhases is the fixed five-bucket narrative rollout description.
// Explanatory only; nothing numeric feeds from it.
type TimelinePhases struct {
	Immediate string `json:"immediate"`
	Month1    string `json:"month1"`
	Month3    string `json:"month3"`
	Month6    string `json:"month6"`
	Year1     string `json:"year1"`
}

// TimelineMetrics describe the deployment timeline
type TimelineMetrics struct {
	// TimeToValueDays is the vendor's typical deployment time
	TimeToValueDays int `json:"time_to_value_days"`

	// ImplementationWeeks is ceil(days/7)
	ImplementationWeeks int `json:"implementation_weeks"`

	// TrainingDays is ceil(trainingHours/8)
	TrainingDays int `json:"training_days"`

	Phases TimelinePhases `json:"phases"`
}

// RiskLevel is the four-way recommendation risk classification
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Recommendation is the synthesized suitability verdict
type Recommendation struct {
	// Suitability is the weighted suitability score [0,100]
	Suitability float64 `json:"suitability"`

	// StrategicFit scores long-term alignment [0,100]
	StrategicFit float64 `json:"strategic_fit"`

	// RiskLevel is the four-way risk classification
	RiskLevel RiskLevel `json:"risk_level"`

	// ImplementationComplexity passes through the vendor's declared tier
	ImplementationComplexity ComplexityTier `json:"implementation_complexity"`

	// OverallScore is the unweighted mean of suitability, strategic fit,
	// inverted vendor risk and innovation
	OverallScore float64 `json:"overall_score"`

	// Rationale is a short human-readable explanation
	Rationale string `json:"rationale"`
}

// ProjectionYear is one year of the savings trajectory
type ProjectionYear struct {
	Year              int     `json:"year"`
	CumulativeBenefit float64 `json:"cumulative_benefit"`
	CumulativeCost    float64 `json:"cumulative_cost"`
	NetSavings        float64 `json:"net_savings"`
	RiskAdjusted      float64 `json:"risk_adjusted"`
}
