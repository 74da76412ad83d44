package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvidal/launchbox/internal/desktop"
	"github.com/mvidal/launchbox/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured categories and their applications",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("category", "", "Only list one category")
}

// ListResult is the output of the `list` command.
type ListResult struct {
	Categories map[string][]desktop.ApplicationRecord `yaml:"categories" json:"categories"`
}

func runList(cmd *cobra.Command, args []string) error {
	store := openStore()
	category, _ := cmd.Flags().GetString("category")

	if category != "" {
		apps, ok := store.Category(category)
		if !ok {
			return fmt.Errorf("category %q not found", category)
		}
		return output.Print(ListResult{
			Categories: map[string][]desktop.ApplicationRecord{category: apps},
		})
	}
	return output.Print(ListResult{Categories: store.Applications()})
}
