// Package engine - Orchestrator contract tests
package engine

import (
	"context"
	"testing"

	"vendor-tco/core/catalog"
	"vendor-tco/core/factors"
	"vendor-tco/core/types"
	"vendor-tco/internal/errors"
)

func testOrchestrator() *Orchestrator {
	eng := New(factors.NewInMemoryRepository(), catalog.Builtin())
	return NewOrchestrator(eng, 4)
}

func testConfig() *types.Configuration {
	return &types.Configuration{
		Devices:  1000,
		Users:    500,
		Years:    3,
		Region:   "north-america",
		Industry: "technology",
	}
}

// TestCompareSortsByTotalCost proves the ascending-by-total contract
func TestCompareSortsByTotalCost(t *testing.T) {
	orch := testOrchestrator()

	report, err := orch.Compare(context.Background(), catalog.Builtin().IDs(), testConfig(), types.RealTimeFactors{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Results) < 2 {
		t.Fatalf("expected multiple results, got %d", len(report.Results))
	}

	for i := 1; i < len(report.Results); i++ {
		prev := report.Results[i-1].Breakdown.Total
		curr := report.Results[i].Breakdown.Total
		if prev.Cmp(curr) > 0 {
			t.Fatalf("results not ascending: %s before %s", prev, curr)
		}
	}
}

// TestCompareOmitsMissingVendor proves a missing vendor is skipped, not
// null-padded, and the batch still succeeds
func TestCompareOmitsMissingVendor(t *testing.T) {
	orch := testOrchestrator()

	ids := []string{"aegis-cloud", "no-such-vendor", "bastion-onprem"}
	report, err := orch.Compare(context.Background(), ids, testConfig(), types.RealTimeFactors{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(report.Results))
	}
	for _, r := range report.Results {
		if r == nil {
			t.Fatal("result list contains a nil placeholder")
		}
	}
	if len(report.Failures) != 1 || report.Failures[0].VendorID != "no-such-vendor" {
		t.Fatalf("failures = %+v, want exactly no-such-vendor", report.Failures)
	}
}

// TestCompareAllFailedIsDistinguishable proves zero successes with failures
// present differs from an empty request
func TestCompareAllFailedIsDistinguishable(t *testing.T) {
	orch := testOrchestrator()

	report, err := orch.Compare(context.Background(), []string{"ghost-1", "ghost-2"}, testConfig(), types.RealTimeFactors{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Results) != 0 || len(report.Failures) != 2 || report.Requested != 2 {
		t.Fatalf("all-failed batch misreported: %+v", report)
	}

	empty, err := orch.Compare(context.Background(), nil, testConfig(), types.RealTimeFactors{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(empty.Results) != 0 || len(empty.Failures) != 0 || empty.Requested != 0 {
		t.Fatalf("empty batch misreported: %+v", empty)
	}
}

// TestCompareRejectsInvalidConfig proves validation fails the whole batch
// before any computation
func TestCompareRejectsInvalidConfig(t *testing.T) {
	orch := testOrchestrator()

	cfg := testConfig()
	cfg.Years = 0
	_, err := orch.Compare(context.Background(), []string{"aegis-cloud"}, cfg, types.RealTimeFactors{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.IsType(err, errors.TypeValidation) {
		t.Fatalf("error type = %v, want validation", err)
	}
}

// TestCalculateResultShape spot-checks the assembled result for one vendor
func TestCalculateResultShape(t *testing.T) {
	eng := New(factors.NewInMemoryRepository(), catalog.Builtin())

	result, err := eng.Calculate(context.Background(), "aegis-cloud", testConfig(), types.RealTimeFactors{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Breakdown.Total.Equal(result.Breakdown.Sum()) {
		t.Fatal("breakdown total is not the exact category sum")
	}
	if len(result.Projections) != 10 {
		t.Fatalf("projections = %d years, want 10", len(result.Projections))
	}
	if result.Recommendation.Rationale == "" {
		t.Fatal("recommendation rationale is empty")
	}
	if !result.Breakdown.Hardware.IsZero() {
		t.Fatal("cloud-native vendor should have zero hardware cost")
	}
}

// TestContentHashStability proves the cache key is deterministic and
// sensitive to its inputs
func TestContentHashStability(t *testing.T) {
	cfg := testConfig()

	a := types.ContentHash("aegis-cloud", cfg)
	b := types.ContentHash("aegis-cloud", cfg)
	if a != b {
		t.Fatal("content hash is not deterministic")
	}

	other := testConfig()
	other.Devices = 2000
	if types.ContentHash("aegis-cloud", other) == a {
		t.Fatal("content hash ignores the configuration")
	}
	if types.ContentHash("bastion-onprem", cfg) == a {
		t.Fatal("content hash ignores the vendor")
	}
}
