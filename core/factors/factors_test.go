// Package factors - Repository tests
package factors

import "testing"

// TestUnknownRegionFallsBack proves unknown keys map to the documented
// baseline instead of erroring
func TestUnknownRegionFallsBack(t *testing.T) {
	repo := NewInMemoryRepository()

	got := repo.RegionFactor("atlantis")
	if got.Key != DefaultRegion {
		t.Fatalf("fallback region = %s, want %s", got.Key, DefaultRegion)
	}
}

// TestUnknownIndustryFallsBack proves the same policy for industries
func TestUnknownIndustryFallsBack(t *testing.T) {
	repo := NewInMemoryRepository()

	got := repo.IndustryProfile("alchemy")
	if got.Key != DefaultIndustry {
		t.Fatalf("fallback industry = %s, want %s", got.Key, DefaultIndustry)
	}
}

// TestTablesAreComplete proves every region has labor costs and every
// industry has required frameworks and a positive downtime cost
func TestTablesAreComplete(t *testing.T) {
	repo := NewInMemoryRepository()

	for _, key := range repo.Regions() {
		r := repo.RegionFactor(key)
		if r.Salary(RoleITAdmin) <= 0 {
			t.Fatalf("region %s has no admin salary", key)
		}
		if r.SalaryMultiplier <= 0 || r.ComplianceMultiplier <= 0 {
			t.Fatalf("region %s has a non-positive multiplier", key)
		}
	}

	for _, key := range repo.Industries() {
		p := repo.IndustryProfile(key)
		if len(p.RequiredFrameworks) == 0 {
			t.Fatalf("industry %s requires no frameworks", key)
		}
		if !p.DowntimeCostPerHour.IsPositive() {
			t.Fatalf("industry %s has no downtime cost", key)
		}
		if p.CriticalUptime < 99 || p.CriticalUptime > 100 {
			t.Fatalf("industry %s uptime target %v implausible", key, p.CriticalUptime)
		}
	}
}
