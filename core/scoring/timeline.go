// Package scoring - Deployment timeline metrics
package scoring

import "vendor-tco/core/types"

// Timeline derives the deployment timeline for a vendor.
// The five-bucket phases are narrative output only; nothing numeric reads
// from them.
func Timeline(v *types.VendorProfile) types.TimelineMetrics {
	days := v.Operations.DeploymentDays

	m := types.TimelineMetrics{
		TimeToValueDays:     days,
		ImplementationWeeks: ceilDiv(days, 7),
		TrainingDays:        ceilDiv(v.Operations.TrainingHours, 8),
	}
	m.Phases = phasesFor(v)
	return m
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

func phasesFor(v *types.VendorProfile) types.TimelinePhases {
	switch v.Market.Category {
	case types.CategoryLeader:
		return types.TimelinePhases{
			Immediate: "Provision tenant and onboard pilot group",
			Month1:    "Full rollout with vendor-led enablement",
			Month3:    "Policy tuning and automation playbooks live",
			Month6:    "Steady-state operations, first business review",
			Year1:     "Expansion to adjacent product modules",
		}
	case types.CategoryVisionary:
		return types.TimelinePhases{
			Immediate: "Proof of concept on a contained segment",
			Month1:    "Phased rollout alongside incumbent tooling",
			Month3:    "AI-driven features enabled and baselined",
			Month6:    "Incumbent tooling decommissioned",
			Year1:     "Roadmap alignment and feature adoption review",
		}
	default:
		if v.Infrastructure.Deployment == types.DeploymentOnPrem {
			return types.TimelinePhases{
				Immediate: "Hardware procurement and site survey",
				Month1:    "Appliance installation and base configuration",
				Month3:    "Staged rollout across sites",
				Month6:    "Full production cutover",
				Year1:     "First maintenance cycle and capacity review",
			}
		}
		return types.TimelinePhases{
			Immediate: "Tenant setup and integration checklist",
			Month1:    "Department-by-department rollout",
			Month3:    "Full coverage, monitoring dashboards live",
			Month6:    "Process integration and admin handoff",
			Year1:     "Renewal assessment against usage data",
		}
	}
}
