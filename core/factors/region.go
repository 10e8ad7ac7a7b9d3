// Package factors - Regional and industry adjustment tables
// These are the static reference inputs for every cost formula; they are
// injected at construction time and never mutated after startup.
package factors

// Role names a staffing role in the regional labor-cost table
type Role string

const (
	RoleITAdmin           Role = "it-admin"
	RoleSecurityAnalyst   Role = "security-analyst"
	RoleComplianceOfficer Role = "compliance-officer"
)

// RegionFactor holds the multipliers and labor costs for one region
type RegionFactor struct {
	// Key is the region identifier
	Key string `json:"key"`

	// SalaryMultiplier scales labor-driven cost fields
	SalaryMultiplier float64 `json:"salary_multiplier"`

	// ComplianceMultiplier scales compliance-gap costs
	ComplianceMultiplier float64 `json:"compliance_multiplier"`

	// MarketMaturity scales adoption-driven savings
	MarketMaturity float64 `json:"market_maturity"`

	// RegulatoryEnvironment scales regulatory risk exposure
	RegulatoryEnvironment float64 `json:"regulatory_environment"`

	// LaborCosts is the annual salary per role in USD
	LaborCosts map[Role]float64 `json:"labor_costs"`
}

// Salary returns the annual salary for a role, zero when unknown
func (r RegionFactor) Salary(role Role) float64 {
	return r.LaborCosts[role]
}

// DefaultRegion is the fallback key for unknown regions.
// Unknown inputs still produce a comparable baseline rather than an error.
const DefaultRegion = "north-america"

func builtinRegions() map[string]RegionFactor {
	return map[string]RegionFactor{
		"north-america": {
			Key:                   "north-america",
			SalaryMultiplier:      1.0,
			ComplianceMultiplier:  1.0,
			MarketMaturity:        1.0,
			RegulatoryEnvironment: 1.0,
			LaborCosts: map[Role]float64{
				RoleITAdmin:           95000,
				RoleSecurityAnalyst:   112000,
				RoleComplianceOfficer: 105000,
			},
		},
		"europe": {
			Key:                   "europe",
			SalaryMultiplier:      0.92,
			ComplianceMultiplier:  1.25,
			MarketMaturity:        0.95,
			RegulatoryEnvironment: 1.3,
			LaborCosts: map[Role]float64{
				RoleITAdmin:           82000,
				RoleSecurityAnalyst:   96000,
				RoleComplianceOfficer: 98000,
			},
		},
		"asia-pacific": {
			Key:                   "asia-pacific",
			SalaryMultiplier:      0.65,
			ComplianceMultiplier:  0.9,
			MarketMaturity:        0.85,
			RegulatoryEnvironment: 0.9,
			LaborCosts: map[Role]float64{
				RoleITAdmin:           58000,
				RoleSecurityAnalyst:   71000,
				RoleComplianceOfficer: 64000,
			},
		},
		"latin-america": {
			Key:                   "latin-america",
			SalaryMultiplier:      0.45,
			ComplianceMultiplier:  0.85,
			MarketMaturity:        0.7,
			RegulatoryEnvironment: 0.8,
			LaborCosts: map[Role]float64{
				RoleITAdmin:           38000,
				RoleSecurityAnalyst:   47000,
				RoleComplianceOfficer: 42000,
			},
		},
		"middle-east-africa": {
			Key:                   "middle-east-africa",
			SalaryMultiplier:      0.55,
			ComplianceMultiplier:  0.95,
			MarketMaturity:        0.65,
			RegulatoryEnvironment: 0.85,
			LaborCosts: map[Role]float64{
				RoleITAdmin:           46000,
				RoleSecurityAnalyst:   59000,
				RoleComplianceOfficer: 52000,
			},
		},
	}
}
