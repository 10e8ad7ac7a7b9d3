// Package factors - Industry profiles
package factors

import "github.com/shopspring/decimal"

// IndustryProfile holds the risk and compliance shape of one industry
type IndustryProfile struct {
	// Key is the industry identifier
	Key string `json:"key"`

	// BreachCostMultiplier scales the global average breach cost
	BreachCostMultiplier float64 `json:"breach_cost_multiplier"`

	// ComplianceComplexity scales compliance-driven staffing and cost
	ComplianceComplexity float64 `json:"compliance_complexity"`

	// DowntimeCostPerHour is the hourly cost of an outage in USD
	DowntimeCostPerHour decimal.Decimal `json:"downtime_cost_per_hour"`

	// RegulatoryPenaltyCeiling is the maximum regulatory fine exposure
	RegulatoryPenaltyCeiling decimal.Decimal `json:"regulatory_penalty_ceiling"`

	// RequiredFrameworks lists the compliance frameworks the industry demands
	RequiredFrameworks []string `json:"required_frameworks"`

	// CriticalUptime is the uptime percentage the industry expects
	CriticalUptime float64 `json:"critical_uptime"`
}

// DefaultIndustry is the fallback key for unknown industries
const DefaultIndustry = "technology"

func builtinIndustries() map[string]IndustryProfile {
	return map[string]IndustryProfile{
		"technology": {
			Key:                      "technology",
			BreachCostMultiplier:     1.0,
			ComplianceComplexity:     1.0,
			DowntimeCostPerHour:      decimal.NewFromInt(9000),
			RegulatoryPenaltyCeiling: decimal.NewFromInt(2000000),
			RequiredFrameworks:       []string{"SOC2", "ISO27001"},
			CriticalUptime:           99.9,
		},
		"financial-services": {
			Key:                      "financial-services",
			BreachCostMultiplier:     1.4,
			ComplianceComplexity:     1.6,
			DowntimeCostPerHour:      decimal.NewFromInt(25000),
			RegulatoryPenaltyCeiling: decimal.NewFromInt(50000000),
			RequiredFrameworks:       []string{"SOC2", "ISO27001", "PCI-DSS", "GDPR"},
			CriticalUptime:           99.99,
		},
		"healthcare": {
			Key:                      "healthcare",
			BreachCostMultiplier:     1.3,
			ComplianceComplexity:     1.5,
			DowntimeCostPerHour:      decimal.NewFromInt(18000),
			RegulatoryPenaltyCeiling: decimal.NewFromInt(25000000),
			RequiredFrameworks:       []string{"HIPAA", "SOC2", "ISO27001"},
			CriticalUptime:           99.95,
		},
		"government": {
			Key:                      "government",
			BreachCostMultiplier:     1.1,
			ComplianceComplexity:     1.7,
			DowntimeCostPerHour:      decimal.NewFromInt(12000),
			RegulatoryPenaltyCeiling: decimal.NewFromInt(10000000),
			RequiredFrameworks:       []string{"FedRAMP", "NIST-800-53", "ISO27001"},
			CriticalUptime:           99.9,
		},
		"manufacturing": {
			Key:                      "manufacturing",
			BreachCostMultiplier:     0.9,
			ComplianceComplexity:     1.1,
			DowntimeCostPerHour:      decimal.NewFromInt(22000),
			RegulatoryPenaltyCeiling: decimal.NewFromInt(5000000),
			RequiredFrameworks:       []string{"ISO27001", "IEC-62443"},
			CriticalUptime:           99.5,
		},
		"retail": {
			Key:                      "retail",
			BreachCostMultiplier:     1.0,
			ComplianceComplexity:     1.2,
			DowntimeCostPerHour:      decimal.NewFromInt(15000),
			RegulatoryPenaltyCeiling: decimal.NewFromInt(8000000),
			RequiredFrameworks:       []string{"PCI-DSS", "SOC2"},
			CriticalUptime:           99.9,
		},
		"energy": {
			Key:                      "energy",
			BreachCostMultiplier:     1.2,
			ComplianceComplexity:     1.4,
			DowntimeCostPerHour:      decimal.NewFromInt(30000),
			RegulatoryPenaltyCeiling: decimal.NewFromInt(20000000),
			RequiredFrameworks:       []string{"NERC-CIP", "ISO27001"},
			CriticalUptime:           99.95,
		},
	}
}
