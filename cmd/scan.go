package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mvidal/launchbox/internal/desktop"
	"github.com/mvidal/launchbox/internal/output"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the system for installed applications",
	Long:  "Scan the standard desktop entry directories and print every application found. Does not touch the config; use `sync` to import.",
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().Bool("by-category", false, "Group results by taxonomy bucket")
}

// ScanResult is the output of the `scan` command.
type ScanResult struct {
	Count        int                                    `yaml:"count"                  json:"count"`
	Applications []desktop.ApplicationRecord            `yaml:"applications,omitempty" json:"applications,omitempty"`
	ByCategory   map[string][]desktop.ApplicationRecord `yaml:"by_category,omitempty"  json:"by_category,omitempty"`
}

func runScan(cmd *cobra.Command, args []string) error {
	scanner := desktop.NewScanner()
	byCategory, _ := cmd.Flags().GetBool("by-category")

	if byCategory {
		buckets := scanner.ScanByCategory()
		count := 0
		for _, apps := range buckets {
			count += len(apps)
		}
		return output.Print(ScanResult{Count: count, ByCategory: buckets})
	}

	apps := scanner.Scan()
	return output.Print(ScanResult{Count: len(apps), Applications: apps})
}
