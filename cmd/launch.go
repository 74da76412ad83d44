package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvidal/launchbox/internal/launcher"
	"github.com/mvidal/launchbox/internal/output"
)

var launchCmd = &cobra.Command{
	Use:   "launch [command...]",
	Short: "Launch an application as a detached process",
	Long: `Validate and launch a command, or a configured application by name.

The command is tokenized with shell-word splitting (quotes honored, no shell
expansion) and spawned detached, so it outlives launchbox.

Examples:
  launchbox launch firefox
  launchbox launch "code --new-window"
  launchbox launch --app Firefox --category Internet`,
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
	launchCmd.Flags().String("app", "", "Launch a configured application by name")
	launchCmd.Flags().String("category", "", "Category to look the application up in (with --app)")
}

// LaunchResult is the output of a successful launch.
type LaunchResult struct {
	OK      bool   `yaml:"ok"      json:"ok"`
	Command string `yaml:"command" json:"command"`
}

func runLaunch(cmd *cobra.Command, args []string) error {
	appName, _ := cmd.Flags().GetString("app")
	category, _ := cmd.Flags().GetString("category")

	command := strings.Join(args, " ")
	if appName != "" {
		resolved, err := resolveAppCommand(openStore(), appName, category)
		if err != nil {
			return err
		}
		command = resolved
	}
	if command == "" {
		return fmt.Errorf("specify a command or --app to launch")
	}

	if !launcher.LaunchWithValidation(command) {
		return fmt.Errorf("launch failed: %s", command)
	}
	return output.Print(LaunchResult{OK: true, Command: command})
}
