// Package projection - Multi-year savings trajectory
package projection

import (
	"math"

	"vendor-tco/core/types"
)

const (
	// Horizon is the projection length in years, independent of the
	// contract length
	Horizon = 10

	// UncertaintyDecay compounds a 5% per-year uncertainty discount onto
	// net savings
	UncertaintyDecay = 0.95
)

// Project produces the 10-year cumulative savings trajectory.
// Costs accrue annually during the contract and stop once fully paid;
// benefits accrue for the whole horizon.
func Project(annualSavings, annualCost float64, contractYears int) []types.ProjectionYear {
	out := make([]types.ProjectionYear, 0, Horizon)
	totalCost := annualCost * float64(contractYears)

	for t := 1; t <= Horizon; t++ {
		benefit := annualSavings * float64(t)

		cost := totalCost
		if t < contractYears {
			cost = annualCost * float64(t)
		}

		net := benefit - cost
		out = append(out, types.ProjectionYear{
			Year:              t,
			CumulativeBenefit: benefit,
			CumulativeCost:    cost,
			NetSavings:        net,
			RiskAdjusted:      net * math.Pow(UncertaintyDecay, float64(t-1)),
		})
	}
	return out
}
