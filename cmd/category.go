package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mvidal/launchbox/internal/output"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage config categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create an empty category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryAdd,
}

var categoryRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Delete a category and its applications",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryRemove,
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRemoveCmd)
}

// CategoryResult is the output of category mutations.
type CategoryResult struct {
	OK       bool   `yaml:"ok"       json:"ok"`
	Action   string `yaml:"action"   json:"action"`
	Category string `yaml:"category" json:"category"`
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	openStore().AddCategory(args[0])
	return output.Print(CategoryResult{OK: true, Action: "add", Category: args[0]})
}

func runCategoryRemove(cmd *cobra.Command, args []string) error {
	openStore().RemoveCategory(args[0])
	return output.Print(CategoryResult{OK: true, Action: "remove", Category: args[0]})
}
