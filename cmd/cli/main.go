// Package main - Entry point for the vendor-tco CLI
package main

import (
	"os"

	"vendor-tco/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
