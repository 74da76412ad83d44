package cmd

import (
	"path/filepath"
	"testing"

	"github.com/mvidal/launchbox/internal/config"
)

// setSlotFlag marks --set as provided and restores the flag state on cleanup.
func setSlotFlag(t *testing.T, value string) {
	t.Helper()
	flag := quicklaunchCmd.Flags().Lookup("set")
	if err := flag.Value.Set(value); err != nil {
		t.Fatal(err)
	}
	flag.Changed = true
	t.Cleanup(func() {
		_ = flag.Value.Set("")
		flag.Changed = false
	})
}

func useTempConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := rootCmd.PersistentFlags().Set("config", path); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = rootCmd.PersistentFlags().Set("config", "") })
	return path
}

func TestQuicklaunchSetAssignsSlot(t *testing.T) {
	path := useTempConfig(t)
	setSlotFlag(t, "alacritty")

	if err := runQuicklaunch(quicklaunchCmd, []string{"terminal"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	got := config.NewStore(path).Settings().QuickLaunchApps[config.SlotTerminal]
	if got != "alacritty" {
		t.Errorf("terminal slot: got %q, want %q", got, "alacritty")
	}
}

func TestQuicklaunchSetEmptyStillAssigns(t *testing.T) {
	path := useTempConfig(t)
	setSlotFlag(t, "")

	// An explicit empty --set must assign, never fall through to launching.
	if err := runQuicklaunch(quicklaunchCmd, []string{"terminal"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	settings := config.NewStore(path).Settings()
	if got := settings.QuickLaunchApps[config.SlotTerminal]; got != "" {
		t.Errorf("terminal slot: got %q, want empty", got)
	}
}

func TestQuicklaunchSetUnknownSlot(t *testing.T) {
	useTempConfig(t)
	setSlotFlag(t, "xterm")

	if err := runQuicklaunch(quicklaunchCmd, []string{"sidebar"}); err == nil {
		t.Error("unknown slot: expected error")
	}
}
