// Package engine - Per-vendor calculation engine
// Runs the full pipeline for one vendor: factor resolution, cost breakdown,
// scoring, financial analytics, recommendation and projection. The engine is
// stateless; every call computes a fresh CalculationResult from its inputs.
package engine

import (
	"context"

	"github.com/shopspring/decimal"

	"vendor-tco/core/catalog"
	"vendor-tco/core/costing"
	"vendor-tco/core/factors"
	"vendor-tco/core/finance"
	"vendor-tco/core/projection"
	"vendor-tco/core/recommend"
	"vendor-tco/core/scoring"
	"vendor-tco/core/types"
)

// Engine computes complete calculation results for single vendors
type Engine struct {
	factors factors.Repository
	catalog catalog.Catalog
	costs   *costing.Calculator
	finance *finance.Engine
}

// New creates an engine over a factor repository and vendor catalog
func New(repo factors.Repository, cat catalog.Catalog) *Engine {
	return &Engine{
		factors: repo,
		catalog: cat,
		costs:   costing.NewCalculator(repo),
		finance: finance.NewEngine(repo),
	}
}

// Calculate runs the full pipeline for one vendor ID.
// The context is accepted for interface symmetry with the orchestrator; the
// computation itself is CPU-bound and does not block.
func (e *Engine) Calculate(ctx context.Context, vendorID string, cfg *types.Configuration, rtf types.RealTimeFactors) (*types.CalculationResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	vendor, err := e.catalog.Vendor(vendorID)
	if err != nil {
		return nil, err
	}

	return e.CalculateProfile(ctx, vendor, cfg, rtf)
}

// CalculateProfile runs the full pipeline for an already-resolved profile
func (e *Engine) CalculateProfile(_ context.Context, vendor *types.VendorProfile, cfg *types.Configuration, rtf types.RealTimeFactors) (*types.CalculationResult, error) {
	region := e.factors.RegionFactor(cfg.Region)
	industry := e.factors.IndustryProfile(cfg.Industry)

	breakdown, err := e.costs.Breakdown(vendor, cfg, rtf)
	if err != nil {
		return nil, err
	}

	risk := scoring.Risk(vendor, industry, region, rtf)
	roi := e.finance.Analyze(breakdown, vendor, cfg, risk.TechnologyRisk)
	operational := scoring.Operational(vendor, industry)
	competitive := scoring.Competitive(vendor)
	timeline := scoring.Timeline(vendor)

	years := decimal.NewFromInt(int64(cfg.Years))
	annualCost := breakdown.Total.Div(years)
	annualCostF, _ := annualCost.Float64()

	result := &types.CalculationResult{
		VendorID:       vendor.ID,
		VendorName:     vendor.Name,
		Breakdown:      *breakdown,
		CostPerDevice:  breakdown.Total.Div(decimal.NewFromInt(int64(cfg.Devices))),
		CostPerUser:    breakdown.Total.Div(decimal.NewFromInt(int64(cfg.Users))),
		AnnualCost:     annualCost,
		ROI:            roi,
		Operational:    operational,
		Risk:           risk,
		Competitive:    competitive,
		Timeline:       timeline,
		Recommendation: recommend.Synthesize(vendor, roi, risk, competitive),
		Projections:    projection.Project(roi.AnnualSavings, annualCostF, cfg.Years),
	}
	return result, nil
}
