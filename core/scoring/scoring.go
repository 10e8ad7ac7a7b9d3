// Package scoring - Operational, risk, competitive and timeline calculators
// Each calculator is a pure function of the vendor profile, buyer
// configuration and factor tables. Percentage scores are clamped to [0,100].
package scoring

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
