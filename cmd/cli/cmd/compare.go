// Package cmd - compare command
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vendor-tco/core/catalog"
	"vendor-tco/core/engine"
	"vendor-tco/core/factors"
	"vendor-tco/core/types"
	"vendor-tco/internal/config"
)

var (
	devices      int
	users        int
	years        int
	region       string
	industry     string
	catalogPath  string
	outputFormat string
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare [vendor-id...]",
	Short: "Compare vendors by total cost of ownership",
	Long: `Run the full calculation pipeline for each vendor and print a ranked
comparison, cheapest first. Vendors that fail to compute are listed
separately and never abort the batch.

With no vendor IDs, every vendor in the catalog is compared.

Examples:
  vendor-tco compare --devices 1000 --users 800 --years 3
  vendor-tco compare --industry healthcare aegis-cloud meridian-suite
  vendor-tco compare --format json --catalog ./vendors.hcl`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().IntVar(&devices, "devices", 1000, "number of managed devices")
	compareCmd.Flags().IntVar(&users, "users", 500, "number of users")
	compareCmd.Flags().IntVar(&years, "years", 3, "contract length in years")
	compareCmd.Flags().StringVar(&region, "region", "north-america", "buyer region")
	compareCmd.Flags().StringVar(&industry, "industry", "technology", "buyer industry")
	compareCmd.Flags().StringVar(&catalogPath, "catalog", "", "HCL vendor catalog file or directory")
	compareCmd.Flags().StringVarP(&outputFormat, "format", "f", "table", "output format (table, json)")
}

func buildCatalog() (catalog.Catalog, error) {
	cat := catalog.Builtin()
	if catalogPath != "" {
		loaded, err := catalog.LoadHCL(catalogPath)
		if err != nil {
			return nil, err
		}
		cat = cat.Merge(loaded)
	}
	return cat, nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	cat, err := buildCatalog()
	if err != nil {
		return err
	}

	ids := args
	if len(ids) == 0 {
		ids = cat.IDs()
	}

	cfg := &types.Configuration{
		Devices:  devices,
		Users:    users,
		Years:    years,
		Region:   region,
		Industry: industry,
	}

	repo := factors.NewInMemoryRepository()
	eng := engine.New(repo, cat)
	orch := engine.NewOrchestrator(eng, config.Get().Engine.Workers)

	report, err := orch.Compare(context.Background(), ids, cfg, types.RealTimeFactors{})
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printTable(report)
	return nil
}

func printTable(report *engine.ComparisonReport) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tVENDOR\tTOTAL COST\tROI %\tPAYBACK (MO)\tRISK\tSCORE")
	for i, r := range report.Results {
		payback := fmt.Sprintf("%.0f", r.ROI.PaybackMonths)
		if r.ROI.PaybackMonths >= types.PaybackNever {
			payback = "never"
		}
		fmt.Fprintf(w, "%d\t%s\t$%s\t%.0f\t%s\t%s\t%.0f\n",
			i+1,
			r.VendorName,
			r.Breakdown.Total.Round(0),
			r.ROI.PercentageROI,
			payback,
			r.Recommendation.RiskLevel,
			r.Recommendation.OverallScore,
		)
	}
	w.Flush()

	if len(report.Failures) > 0 {
		fmt.Println()
		fmt.Println("Skipped vendors:")
		for _, f := range report.Failures {
			fmt.Printf("  %s: %s\n", f.VendorID, f.Error)
		}
	}
}
