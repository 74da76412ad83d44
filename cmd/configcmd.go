package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/mordilloSan/go-logger/logger"
	"github.com/spf13/cobra"

	"github.com/mvidal/launchbox/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or edit the config file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE:  runConfigPath,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in an external editor",
	RunE:  runConfigEdit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the launcher settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change launcher settings",
	RunE:  runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)

	configSetCmd.Flags().Bool("show-icons", false, "Show application icons")
	configSetCmd.Flags().Bool("show-quick-launch", false, "Show the quick-launch bar")
}

// ConfigPathResult is the output of `config path`.
type ConfigPathResult struct {
	Path string `yaml:"path" json:"path"`
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	return output.Print(ConfigPathResult{Path: configPath()})
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	return output.Print(openStore().Settings())
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("show-icons") && !cmd.Flags().Changed("show-quick-launch") {
		return fmt.Errorf("nothing to set; pass --show-icons or --show-quick-launch")
	}

	store := openStore()
	if cmd.Flags().Changed("show-icons") {
		v, _ := cmd.Flags().GetBool("show-icons")
		store.SetShowIcons(v)
	}
	if cmd.Flags().Changed("show-quick-launch") {
		v, _ := cmd.Flags().GetBool("show-quick-launch")
		store.SetShowQuickLaunch(v)
	}
	return output.Print(store.Settings())
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	path := configPath()

	err := exec.Command("xdg-open", path).Start()
	if err == nil {
		return nil
	}
	logger.Debugf("xdg-open failed for %s: %v", path, err)

	editor := os.Getenv("EDITOR")
	if editor == "" {
		return fmt.Errorf("could not open %s: xdg-open unavailable and $EDITOR not set", path)
	}
	if err := exec.Command(editor, path).Start(); err != nil {
		return fmt.Errorf("could not open %s with %s: %w", path, editor, err)
	}
	return nil
}
