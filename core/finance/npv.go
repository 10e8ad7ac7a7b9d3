// Package finance - Discounted cash-flow primitives
package finance

import "math"

const (
	// DiscountRate is the fixed rate used for NPV
	DiscountRate = 0.08

	// IRRInitialGuess is the Newton-Raphson starting point
	IRRInitialGuess = 0.1

	// IRRMaxIterations bounds the root-finder so no single vendor
	// calculation can hang a batch
	IRRMaxIterations = 100

	// IRREpsilon is the convergence threshold on |NPV(irr)|
	IRREpsilon = 0.01
)

// NPV computes the net present value of an upfront cost followed by a
// constant annual benefit over the horizon:
//
//	NPV = -total + Σ_{t=1..years} annual / (1+rate)^t
func NPV(total, annual float64, years int, rate float64) float64 {
	npv := -total
	for t := 1; t <= years; t++ {
		npv += annual / math.Pow(1+rate, float64(t))
	}
	return npv
}

// npvDerivative is d(NPV)/d(rate) for the same cash-flow shape
func npvDerivative(annual float64, years int, rate float64) float64 {
	d := 0.0
	for t := 1; t <= years; t++ {
		d -= float64(t) * annual / math.Pow(1+rate, float64(t+1))
	}
	return d
}

// IRR finds the rate at which NPV is zero via bounded Newton-Raphson.
// Returns the estimate and whether it converged within the iteration cap;
// a non-converged estimate is best-effort and lower-confidence.
func IRR(total, annual float64, years int) (float64, bool) {
	rate := IRRInitialGuess
	for i := 0; i < IRRMaxIterations; i++ {
		value := NPV(total, annual, years, rate)
		if math.Abs(value) < IRREpsilon {
			return rate, true
		}

		derivative := npvDerivative(annual, years, rate)
		if derivative == 0 || math.IsNaN(derivative) || math.IsInf(derivative, 0) {
			return rate, false
		}

		rate -= value / derivative
		// A rate at or below -100% has no financial meaning; pin just above
		if rate <= -1 {
			rate = -0.9999
		}
	}
	return rate, false
}
