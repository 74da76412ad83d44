package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvidal/launchbox/internal/config"
	"github.com/mvidal/launchbox/internal/launcher"
	"github.com/mvidal/launchbox/internal/output"
)

var quicklaunchCmd = &cobra.Command{
	Use:   "quicklaunch [slot]",
	Short: "Launch or configure a quick-launch slot",
	Long: `Quick-launch slots are five fixed application roles (terminal, browser,
file_manager, mail_client, messenger), each holding one launch command.

With no arguments, lists the slots. With a slot name, launches its command.
With --set, assigns a new command to the slot instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuicklaunch,
}

func init() {
	rootCmd.AddCommand(quicklaunchCmd)
	quicklaunchCmd.Flags().String("set", "", "Assign this command to the slot instead of launching")
}

// SlotEntry is one quick-launch slot in the listing output.
type SlotEntry struct {
	Slot    string `yaml:"slot"    json:"slot"`
	Command string `yaml:"command" json:"command"`
}

// QuickLaunchResult is the output of the `quicklaunch` command.
type QuickLaunchResult struct {
	OK      bool        `yaml:"ok"                json:"ok"`
	Enabled bool        `yaml:"enabled"           json:"enabled"`
	Slots   []SlotEntry `yaml:"slots,omitempty"   json:"slots,omitempty"`
	Slot    string      `yaml:"slot,omitempty"    json:"slot,omitempty"`
	Command string      `yaml:"command,omitempty" json:"command,omitempty"`
}

func runQuicklaunch(cmd *cobra.Command, args []string) error {
	store := openStore()
	settings := store.Settings()

	if len(args) == 0 {
		slots := make([]SlotEntry, 0, len(config.QuickLaunchSlots))
		for _, slot := range config.QuickLaunchSlots {
			slots = append(slots, SlotEntry{Slot: slot, Command: settings.QuickLaunchApps[slot]})
		}
		return output.Print(QuickLaunchResult{OK: true, Enabled: settings.ShowQuickLaunch, Slots: slots})
	}

	slot := args[0]
	if cmd.Flags().Changed("set") {
		setCmd, _ := cmd.Flags().GetString("set")
		if err := store.SetQuickLaunchApp(slot, setCmd); err != nil {
			return err
		}
		return output.Print(QuickLaunchResult{OK: true, Enabled: settings.ShowQuickLaunch, Slot: slot, Command: setCmd})
	}

	if !config.IsQuickLaunchSlot(slot) {
		return fmt.Errorf("unknown quick-launch slot %q (recognized: %v)", slot, config.QuickLaunchSlots)
	}
	command := settings.QuickLaunchApps[slot]
	if !launcher.LaunchWithValidation(command) {
		return fmt.Errorf("launch failed: %s", command)
	}
	return output.Print(QuickLaunchResult{OK: true, Enabled: settings.ShowQuickLaunch, Slot: slot, Command: command})
}
