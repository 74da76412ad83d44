package config

// Quick launch slot IDs. Each slot holds one launch command; slots missing
// from a loaded config are filled with their defaults.
const (
	SlotTerminal    = "terminal"
	SlotBrowser     = "browser"
	SlotFileManager = "file_manager"
	SlotMailClient  = "mail_client"
	SlotMessenger   = "messenger"
)

// QuickLaunchSlots lists the recognized slot IDs in display order.
var QuickLaunchSlots = []string{
	SlotTerminal,
	SlotBrowser,
	SlotFileManager,
	SlotMailClient,
	SlotMessenger,
}

// quickLaunchDefaults are the commands a slot falls back to when the config
// file does not define it.
var quickLaunchDefaults = map[string]string{
	SlotTerminal:    "x-terminal-emulator",
	SlotBrowser:     "x-www-browser",
	SlotFileManager: "xdg-open ~",
	SlotMailClient:  "xdg-email",
	SlotMessenger:   "discord",
}

// Settings holds the launcher's presentation and quick-launch preferences.
type Settings struct {
	ShowIcons       bool              `json:"show_icons"        yaml:"show_icons"`
	ShowQuickLaunch bool              `json:"show_quick_launch" yaml:"show_quick_launch"`
	QuickLaunchApps map[string]string `json:"quick_launch_apps" yaml:"quick_launch_apps"`
}

// defaultSettings returns a fully populated Settings value.
func defaultSettings() Settings {
	return Settings{
		ShowIcons:       true,
		ShowQuickLaunch: true,
		QuickLaunchApps: copySlots(quickLaunchDefaults),
	}
}

// normalize fills in any missing quick-launch slots with their defaults.
func (s *Settings) normalize() {
	if s.QuickLaunchApps == nil {
		s.QuickLaunchApps = make(map[string]string, len(quickLaunchDefaults))
	}
	for slot, cmd := range quickLaunchDefaults {
		if _, ok := s.QuickLaunchApps[slot]; !ok {
			s.QuickLaunchApps[slot] = cmd
		}
	}
}

// clone returns a deep copy so callers can read settings without holding the
// store lock.
func (s Settings) clone() Settings {
	s.QuickLaunchApps = copySlots(s.QuickLaunchApps)
	return s
}

func copySlots(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// IsQuickLaunchSlot reports whether id is one of the recognized slot IDs.
func IsQuickLaunchSlot(id string) bool {
	_, ok := quickLaunchDefaults[id]
	return ok
}
