// Package api - Request and response types
package api

import (
	"vendor-tco/core/engine"
	"vendor-tco/core/types"
)

// CompareRequest is the body of POST /compare
type CompareRequest struct {
	// VendorIDs lists the vendors to compare
	VendorIDs []string `json:"vendor_ids"`

	// Configuration is the buyer's calculation input
	Configuration types.Configuration `json:"configuration"`

	// RealTimeFactors is the optional market-adjustment snapshot;
	// absent means neutral
	RealTimeFactors *types.RealTimeFactors `json:"real_time_factors,omitempty"`
}

// CalculateRequest is the body of POST /calculate
type CalculateRequest struct {
	// VendorID is the vendor to calculate
	VendorID string `json:"vendor_id"`

	// Configuration is the buyer's calculation input
	Configuration types.Configuration `json:"configuration"`

	// RealTimeFactors is the optional market-adjustment snapshot
	RealTimeFactors *types.RealTimeFactors `json:"real_time_factors,omitempty"`
}

// CompareResponse wraps a comparison report
type CompareResponse struct {
	Report *engine.ComparisonReport `json:"report"`
}

// CalculateResponse wraps a single calculation result
type CalculateResponse struct {
	Result *types.CalculationResult `json:"result"`

	// ContentHash is the cache key for this result
	ContentHash string `json:"content_hash"`
}

// VendorSummary is one row of GET /vendors
type VendorSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Model    string `json:"pricing_model"`
	Category string `json:"category"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
