// Package scoring - Competitive metrics
package scoring

import "vendor-tco/core/types"

// Competitive baselines and additive bonuses
const (
	innovationBase        = 40
	innovationCloudNative = 20
	innovationAIDriven    = 25
	innovationZeroTrust   = 0.15 // × zero-trust maturity

	futureReadinessBase  = 35
	futureReadinessCloud = 25

	marketPositionBase = 30

	techLeadershipBase = 35
)

// Market-category bonuses applied to position and leadership scores
var categoryBonus = map[types.MarketCategory]float64{
	types.CategoryLeader:     35,
	types.CategoryVisionary:  25,
	types.CategoryChallenger: 15,
	types.CategoryNiche:      5,
}

// Competitive derives the market-position scorecard for a vendor
func Competitive(v *types.VendorProfile) types.CompetitiveMetrics {
	m := types.CompetitiveMetrics{}

	m.Innovation = clamp(innovationBase +
		boolBonus(v.Infrastructure.CloudNative, innovationCloudNative) +
		boolBonus(v.Operations.AIDriven, innovationAIDriven) +
		v.Security.ZeroTrustMaturity*innovationZeroTrust)

	m.FutureReadiness = clamp(futureReadinessBase +
		boolBonus(v.Infrastructure.CloudNative, futureReadinessCloud) +
		v.Operations.AutomationLevel*0.3)

	m.MarketPosition = clamp(marketPositionBase +
		categoryBonus[v.Market.Category] +
		v.Market.SharePercent)

	m.TechnologyLeadership = clamp(techLeadershipBase +
		categoryBonus[v.Market.Category]*0.6 +
		boolBonus(v.Operations.AIDriven, 15) +
		v.Security.ZeroTrustMaturity*0.2)

	return m
}
