// Package cmd - vendors command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// vendorsCmd lists the vendor catalog
var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "List vendors in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := buildCatalog()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICING\tCATEGORY")
		for _, id := range cat.IDs() {
			v, err := cat.Vendor(id)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.ID, v.Name, v.Pricing.Model, v.Market.Category)
		}
		return w.Flush()
	},
}

func init() {
	vendorsCmd.Flags().StringVar(&catalogPath, "catalog", "", "HCL vendor catalog file or directory")
}

const version = "1.0.0"

// versionCmd prints the CLI version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("vendor-tco", version)
	},
}
