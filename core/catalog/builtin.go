// Package catalog - Built-in sample vendors
// A small catalog used by CLI demos and tests; production deployments load
// their own catalog from HCL files.
package catalog

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func bptr(v bool) *bool       { return &v }
func sptr(v string) *string   { return &v }

// Builtin returns the built-in sample catalog
func Builtin() *InMemoryCatalog {
	c, err := NewInMemoryCatalog(builtinVendors())
	if err != nil {
		// The built-in profiles are complete; a validation failure here is a
		// programming error.
		panic(err)
	}
	return c
}

func builtinVendors() []*RawVendor {
	return []*RawVendor{
		{
			ID:   "aegis-cloud",
			Name: sptr("Aegis Cloud Platform"),
			Pricing: &RawPricing{
				Model:     "per-device",
				BasePrice: 4.00,
				VolumeTiers: []RawVolumeTier{
					{MinDevices: 500, Discount: 0.10},
					{MinDevices: 1000, Discount: 0.15},
					{MinDevices: 5000, Discount: 0.20},
				},
				Terms: []RawTermDiscount{
					{MinYears: 1, Discount: 0.10},
					{MinYears: 3, Discount: 0.25},
				},
				AddonDeltas: map[string]float64{
					"edr":           0.20,
					"threat-intel":  0.15,
					"data-recovery": 0.10,
				},
			},
			Infrastructure: &RawInfrastructure{
				CloudNative:      bptr(true),
				HardwareRequired: bptr(false),
				HighAvailability: fptr(99.95),
				DisasterRecovery: bptr(true),
			},
			Security: &RawSecurity{
				CVECount:            iptr(12),
				Rating:              fptr(88),
				Frameworks:          []string{"SOC2", "ISO27001", "PCI-DSS", "GDPR"},
				AutomatedCompliance: bptr(true),
				ZeroTrustMaturity:   fptr(80),
				BreachRiskReduction: fptr(60),
			},
			Operations: &RawOperations{
				AutomationLevel: fptr(85),
				AIDriven:        bptr(true),
				DeploymentDays:  iptr(14),
				TrainingHours:   iptr(8),
				Complexity:      sptr("low"),
			},
			AdditionalCosts: &RawAdditionalCosts{
				Implementation:    fptr(15000),
				Training:          fptr(5000),
				MaintenanceAnnual: fptr(4000),
				SupportAnnual:     fptr(8000),
				Integration:       fptr(10000),
				Migration:         fptr(12000),
			},
			Market: &RawMarket{
				SharePercent:  fptr(18),
				Category:      sptr("leader"),
				YearsInMarket: iptr(11),
			},
		},
		{
			ID:   "bastion-onprem",
			Name: sptr("Bastion Enterprise Defense"),
			Pricing: &RawPricing{
				Model:     "per-device",
				BasePrice: 2.50,
				VolumeTiers: []RawVolumeTier{
					{MinDevices: 1000, Discount: 0.08},
					{MinDevices: 10000, Discount: 0.14},
				},
				Terms: []RawTermDiscount{
					{MinYears: 3, Discount: 0.15},
				},
			},
			Infrastructure: &RawInfrastructure{
				Deployment:         sptr("on-prem"),
				CloudNative:        bptr(false),
				HardwareRequired:   bptr(true),
				HardwareCost:       fptr(120000),
				HighAvailability:   fptr(99.5),
				MaintenanceWindows: iptr(12),
				DisasterRecovery:   bptr(false),
			},
			Security: &RawSecurity{
				CVECount:            iptr(55),
				Rating:              fptr(62),
				Frameworks:          []string{"SOC2", "ISO27001"},
				ZeroTrustMaturity:   fptr(35),
				BreachRiskReduction: fptr(40),
			},
			Operations: &RawOperations{
				AutomationLevel:       fptr(35),
				DeploymentDays:        iptr(90),
				TrainingHours:         iptr(60),
				CertificationRequired: bptr(true),
				Complexity:            sptr("high"),
			},
			AdditionalCosts: &RawAdditionalCosts{
				Implementation:    fptr(60000),
				Training:          fptr(18000),
				Certification:     fptr(9000),
				MaintenanceAnnual: fptr(22000),
				SupportAnnual:     fptr(15000),
				Integration:       fptr(35000),
				Migration:         fptr(40000),
				Consulting:        fptr(25000),
			},
			Market: &RawMarket{
				SharePercent:  fptr(6),
				Category:      sptr("challenger"),
				YearsInMarket: iptr(19),
			},
		},
		{
			ID:   "meridian-suite",
			Name: sptr("Meridian Security Suite"),
			Pricing: &RawPricing{
				Model:     "per-user",
				BasePrice: 12.00,
				Terms: []RawTermDiscount{
					{MinYears: 1, Discount: 0.08},
					{MinYears: 3, Discount: 0.18},
				},
				AddonDeltas: map[string]float64{
					"mobile": 0.12,
				},
			},
			Infrastructure: &RawInfrastructure{
				Deployment:       sptr("hybrid"),
				CloudNative:      bptr(false),
				HardwareRequired: bptr(false),
				HighAvailability: fptr(99.9),
				DisasterRecovery: bptr(true),
			},
			Security: &RawSecurity{
				CVECount:            iptr(25),
				Rating:              fptr(75),
				Frameworks:          []string{"SOC2", "ISO27001", "HIPAA"},
				AutomatedCompliance: bptr(true),
				ZeroTrustMaturity:   fptr(60),
				BreachRiskReduction: fptr(50),
			},
			Operations: &RawOperations{
				AutomationLevel: fptr(60),
				AIDriven:        bptr(true),
				DeploymentDays:  iptr(45),
				TrainingHours:   iptr(24),
				Complexity:      sptr("medium"),
			},
			AdditionalCosts: &RawAdditionalCosts{
				Implementation:    fptr(30000),
				Training:          fptr(9000),
				MaintenanceAnnual: fptr(10000),
				SupportAnnual:     fptr(12000),
				Integration:       fptr(18000),
				Migration:         fptr(20000),
				Consulting:        fptr(10000),
			},
			Market: &RawMarket{
				SharePercent:  fptr(9),
				Category:      sptr("visionary"),
				YearsInMarket: iptr(7),
			},
		},
		{
			ID:   "sentry-flat",
			Name: sptr("Sentry Perimeter"),
			Pricing: &RawPricing{
				Model:     "flat-rate",
				BasePrice: 150000,
				Terms: []RawTermDiscount{
					{MinYears: 3, Discount: 0.10},
				},
			},
			Infrastructure: &RawInfrastructure{
				CloudNative:      bptr(true),
				HardwareRequired: bptr(false),
				HighAvailability: fptr(99.9),
			},
			Security: &RawSecurity{
				CVECount:            iptr(5),
				Rating:              fptr(70),
				Frameworks:          []string{"SOC2"},
				ZeroTrustMaturity:   fptr(55),
				BreachRiskReduction: fptr(45),
			},
			Operations: &RawOperations{
				AutomationLevel: fptr(50),
				DeploymentDays:  iptr(21),
				TrainingHours:   iptr(12),
				Complexity:      sptr("low"),
			},
			AdditionalCosts: &RawAdditionalCosts{
				Implementation: fptr(10000),
				Training:       fptr(3000),
				SupportAnnual:  fptr(6000),
				Integration:    fptr(8000),
			},
			Market: &RawMarket{
				SharePercent:  fptr(1.5),
				Category:      sptr("niche"),
				YearsInMarket: iptr(4),
			},
		},
	}
}
