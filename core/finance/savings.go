// Package finance - Annual savings model
package finance

import (
	"vendor-tco/core/costing"
	"vendor-tco/core/factors"
	"vendor-tco/core/types"
)

// Savings model constants
const (
	// AvgBreachCost is the global average cost of a data breach in USD
	AvgBreachCost = 4450000

	// AnnualBreachProbability is the modeled yearly breach likelihood
	AnnualBreachProbability = 0.12

	// ComplianceSavingsBase is the yearly audit/reporting effort a fully
	// covered compliance posture avoids
	ComplianceSavingsBase = 45000

	// ProductivityHoursPerUser is the yearly hours an automated platform
	// returns to each user
	ProductivityHoursPerUser = 4.0

	// LoadedHourlyRate is the loaded hourly cost of a user in USD
	LoadedHourlyRate = 65.0

	// InfraSavingsPerDevice is the yearly per-device infrastructure cost a
	// cloud-native product avoids (power, rack, refresh)
	InfraSavingsPerDevice = 25.0

	// InfraSavingsBase is the yearly fixed data-center overhead avoided
	InfraSavingsBase = 15000

	// BaselineUptime is the availability the buyer has without the product
	BaselineUptime = 99.0

	// DowntimeIncidentFactor scales theoretical avoided downtime into the
	// fraction realistically attributed to the product
	DowntimeIncidentFactor = 0.1
)

// AnnualSavings computes the modeled yearly benefit and its value-driver
// decomposition. The drivers always sum back to the total.
func AnnualSavings(v *types.VendorProfile, cfg *types.Configuration, region factors.RegionFactor, industry factors.IndustryProfile) (float64, types.ValueDrivers) {
	var d types.ValueDrivers

	// Breach risk reduction: expected yearly breach loss avoided
	d.Security = AvgBreachCost * industry.BreachCostMultiplier * AnnualBreachProbability *
		v.Security.BreachRiskReduction / 100

	// Operational efficiency: staffing freed against the baseline
	fteSaved := costing.BaselineFTE - costing.RequiredFTE(v, industry)
	if fteSaved < 0 {
		fteSaved = 0
	}
	d.Operational = fteSaved * region.Salary(factors.RoleITAdmin)

	// Compliance: audit effort avoided in proportion to framework coverage
	coverage := frameworkCoverage(v, industry)
	d.Compliance = ComplianceSavingsBase * coverage * industry.ComplianceComplexity *
		region.ComplianceMultiplier

	// Productivity: user hours returned by automation
	d.Productivity = float64(cfg.Users) * ProductivityHoursPerUser * LoadedHourlyRate *
		v.Operations.AutomationLevel / 100 * region.MarketMaturity

	// Infrastructure: data-center footprint avoided by cloud-native products,
	// plus the value of uptime above the buyer's baseline
	if v.Infrastructure.CloudNative {
		d.Infrastructure = float64(cfg.Devices)*InfraSavingsPerDevice + InfraSavingsBase
	}
	uptimeGain := v.Infrastructure.HighAvailability - BaselineUptime
	if uptimeGain > 0 {
		downtimeCost, _ := industry.DowntimeCostPerHour.Float64()
		d.Infrastructure += uptimeGain / 100 * costing.HoursPerYear * downtimeCost * DowntimeIncidentFactor
	}

	total := d.Security + d.Operational + d.Compliance + d.Productivity + d.Infrastructure
	return total, d
}

// frameworkCoverage is the fraction of industry-required frameworks the
// vendor supports; 1.0 when the industry requires none.
func frameworkCoverage(v *types.VendorProfile, industry factors.IndustryProfile) float64 {
	required := len(industry.RequiredFrameworks)
	if required == 0 {
		return 1.0
	}
	supported := 0
	for _, f := range industry.RequiredFrameworks {
		if v.SupportsFramework(f) {
			supported++
		}
	}
	return float64(supported) / float64(required)
}
