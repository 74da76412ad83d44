package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvidal/launchbox/internal/desktop"
	"github.com/mvidal/launchbox/internal/output"
)

var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Manage configured applications",
}

var appAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an application to a category",
	RunE:  runAppAdd,
}

var appRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove an application from a category by name",
	RunE:  runAppRemove,
}

var appUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an application in place",
	RunE:  runAppUpdate,
}

func init() {
	rootCmd.AddCommand(appCmd)
	appCmd.AddCommand(appAddCmd)
	appCmd.AddCommand(appRemoveCmd)
	appCmd.AddCommand(appUpdateCmd)

	appAddCmd.Flags().String("category", "", "Category to add to")
	appAddCmd.Flags().String("name", "", "Application name")
	appAddCmd.Flags().String("cmd", "", "Launch command")
	appAddCmd.Flags().String("icon", "", "Icon name or path")
	_ = appAddCmd.MarkFlagRequired("category")
	_ = appAddCmd.MarkFlagRequired("name")
	_ = appAddCmd.MarkFlagRequired("cmd")

	appRemoveCmd.Flags().String("category", "", "Category to remove from")
	appRemoveCmd.Flags().String("name", "", "Application name")
	_ = appRemoveCmd.MarkFlagRequired("category")
	_ = appRemoveCmd.MarkFlagRequired("name")

	appUpdateCmd.Flags().String("category", "", "Category the application is in")
	appUpdateCmd.Flags().String("name", "", "Current application name")
	appUpdateCmd.Flags().String("new-name", "", "New application name")
	appUpdateCmd.Flags().String("cmd", "", "New launch command")
	appUpdateCmd.Flags().String("icon", "", "New icon name or path")
	_ = appUpdateCmd.MarkFlagRequired("category")
	_ = appUpdateCmd.MarkFlagRequired("name")
}

// AppResult is the output of application mutations.
type AppResult struct {
	OK       bool   `yaml:"ok"       json:"ok"`
	Action   string `yaml:"action"   json:"action"`
	Category string `yaml:"category" json:"category"`
	Name     string `yaml:"name"     json:"name"`
	Added    *bool  `yaml:"added,omitempty" json:"added,omitempty"`
}

func runAppAdd(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	name, _ := cmd.Flags().GetString("name")
	command, _ := cmd.Flags().GetString("cmd")
	icon, _ := cmd.Flags().GetString("icon")

	added := openStore().AddApplication(category, desktop.ApplicationRecord{
		Name: name,
		Cmd:  command,
		Icon: icon,
	})
	return output.Print(AppResult{OK: true, Action: "add", Category: category, Name: name, Added: &added})
}

func runAppRemove(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	name, _ := cmd.Flags().GetString("name")

	openStore().RemoveApplication(category, name)
	return output.Print(AppResult{OK: true, Action: "remove", Category: category, Name: name})
}

func runAppUpdate(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	name, _ := cmd.Flags().GetString("name")

	store := openStore()
	apps, ok := store.Category(category)
	if !ok {
		return fmt.Errorf("category %q not found", category)
	}

	var current *desktop.ApplicationRecord
	for i := range apps {
		if apps[i].Name == name {
			current = &apps[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("application %q not found in category %q", name, category)
	}

	updated := *current
	if cmd.Flags().Changed("new-name") {
		updated.Name, _ = cmd.Flags().GetString("new-name")
	}
	if cmd.Flags().Changed("cmd") {
		updated.Cmd, _ = cmd.Flags().GetString("cmd")
	}
	if cmd.Flags().Changed("icon") {
		updated.Icon, _ = cmd.Flags().GetString("icon")
	}

	store.UpdateApplication(category, name, updated)
	return output.Print(AppResult{OK: true, Action: "update", Category: category, Name: updated.Name})
}
