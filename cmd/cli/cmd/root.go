// Package cmd provides the CLI commands for vendor-tco.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vendor-tco/internal/config"
	"vendor-tco/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vendor-tco",
	Short: "Compare vendor total cost of ownership and ROI",
	Long: `vendor-tco is a deterministic vendor TCO/ROI/risk calculation engine.

Given a buyer configuration (devices, users, years, region, industry) and a
vendor catalog, it computes a full cost breakdown, financial analytics,
risk scoring and a ranked recommendation for each vendor.

Examples:
  vendor-tco compare --devices 1000 --users 800 --years 3 aegis-cloud bastion-onprem
  vendor-tco compare --format json --catalog ./vendors.hcl aegis-cloud
  vendor-tco vendors`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.vendor-tco.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(vendorsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	logCfg := config.Get().Logging
	if verbose {
		logCfg.Level = "debug"
	}
	_ = logging.Initialize(logCfg)
}
