package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/mordilloSan/go-logger/logger"

	"github.com/mvidal/launchbox/internal/desktop"
)

// Store owns the persisted category -> applications mapping and the launcher
// settings. Every mutation is written through to disk synchronously before
// subscribers are notified, so the in-memory state and the file never
// diverge. All access is serialized by a single mutex; mutations are safe to
// call from a background worker while a presentation layer reads.
type Store struct {
	mu         sync.Mutex
	path       string
	categories map[string][]desktop.ApplicationRecord
	settings   Settings
	subs       []subscription
	nextSubID  int
}

type subscription struct {
	id int
	fn func()
}

// fileConfig mirrors the on-disk layout. Settings fields are pointers so a
// loaded config can distinguish "absent" from "false" and take defaults.
type fileConfig struct {
	Categories map[string][]desktop.ApplicationRecord `json:"categories"`
	Settings   *fileSettings                          `json:"settings"`
}

type fileSettings struct {
	ShowIcons       *bool             `json:"show_icons"`
	ShowQuickLaunch *bool             `json:"show_quick_launch"`
	QuickLaunchApps map[string]string `json:"quick_launch_apps"`
	Theme           string            `json:"theme,omitempty"`
}

// persistedConfig is what Save writes: settings fully populated.
type persistedConfig struct {
	Categories map[string][]desktop.ApplicationRecord `json:"categories"`
	Settings   Settings                               `json:"settings"`
}

// DefaultPath returns the default config file location under the user's
// local data directory.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "launchbox", "config.json")
}

// NewStore loads the configuration at path, falling back to DefaultPath when
// path is empty. A missing file is created with the default configuration; a
// corrupt one is replaced by defaults in memory. Loading never fails.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	s := &Store{
		path:       path,
		categories: make(map[string][]desktop.ApplicationRecord),
		settings:   defaultSettings(),
	}
	s.load()
	return s
}

// Path returns the config file location.
func (s *Store) Path() string {
	return s.path
}

// load reads and validates the persisted file. Structural corruption (not an
// object, categories not a mapping) falls back to the defaults already set on
// the store. A missing file is written out immediately.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.mu.Lock()
		s.saveLocked()
		s.mu.Unlock()
		return
	}
	if err != nil {
		logger.Errorf("error loading config %s: %v", s.path, err)
		return
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		logger.Warnf("config %s is malformed, using defaults: %v", s.path, err)
		return
	}

	if fc.Categories != nil {
		s.categories = fc.Categories
	}
	if fc.Settings != nil {
		if fc.Settings.ShowIcons != nil {
			s.settings.ShowIcons = *fc.Settings.ShowIcons
		}
		if fc.Settings.ShowQuickLaunch != nil {
			s.settings.ShowQuickLaunch = *fc.Settings.ShowQuickLaunch
		}
		if fc.Settings.QuickLaunchApps != nil {
			s.settings.QuickLaunchApps = fc.Settings.QuickLaunchApps
		}
		if fc.Settings.Theme != "" {
			logger.Debugf("dropping legacy theme setting from %s", s.path)
		}
	}
	s.settings.normalize()
}

// saveLocked serializes the full configuration to disk. Failures are logged,
// never surfaced; the caller must hold s.mu.
func (s *Store) saveLocked() {
	data, err := json.MarshalIndent(persistedConfig{
		Categories: s.categories,
		Settings:   s.settings,
	}, "", "  ")
	if err != nil {
		logger.Errorf("error serializing config: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		logger.Errorf("error creating config directory: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		logger.Errorf("error saving config %s: %v", s.path, err)
		return
	}
	logger.Debugf("configuration saved to %s", s.path)
}

// Subscribe registers fn to run after every persisted mutation and returns a
// handle for Unsubscribe. Multiple subscribers run in registration order.
func (s *Store) Subscribe(fn func()) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	s.subs = append(s.subs, subscription{id: s.nextSubID, fn: fn})
	return s.nextSubID
}

// Unsubscribe removes a previously registered subscriber.
func (s *Store) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// snapshotSubs copies the subscriber callbacks so they can be invoked after
// the lock is released.
func (s *Store) snapshotSubs() []func() {
	fns := make([]func(), len(s.subs))
	for i, sub := range s.subs {
		fns[i] = sub.fn
	}
	return fns
}

// AddApplication appends app to the category, creating the category as
// needed. An entry with the same (name, cmd) pair already in the category is
// silently rejected. Reports whether the application was added.
func (s *Store) AddApplication(category string, app desktop.ApplicationRecord) bool {
	s.mu.Lock()
	for _, existing := range s.categories[category] {
		if existing.Name == app.Name && existing.Cmd == app.Cmd {
			s.mu.Unlock()
			return false
		}
	}
	s.categories[category] = append(s.categories[category], app)
	s.saveLocked()
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs)
	return true
}

// RemoveApplication removes every entry in the category whose name matches.
// The command is not compared. No-op if the category does not exist.
func (s *Store) RemoveApplication(category, name string) {
	s.mu.Lock()
	apps, ok := s.categories[category]
	if !ok {
		s.mu.Unlock()
		return
	}
	kept := apps[:0]
	for _, app := range apps {
		if app.Name != name {
			kept = append(kept, app)
		}
	}
	s.categories[category] = kept
	s.saveLocked()
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs)
}

// UpdateApplication replaces the first entry named oldName with app, keeping
// its position. No-op if the category or entry is not found.
func (s *Store) UpdateApplication(category, oldName string, app desktop.ApplicationRecord) {
	s.mu.Lock()
	apps, ok := s.categories[category]
	if !ok {
		s.mu.Unlock()
		return
	}
	for i := range apps {
		if apps[i].Name == oldName {
			apps[i] = app
			s.saveLocked()
			subs := s.snapshotSubs()
			s.mu.Unlock()

			notify(subs)
			return
		}
	}
	s.mu.Unlock()
}

// AddCategory creates an empty category. No-op if it already exists.
func (s *Store) AddCategory(name string) {
	s.mu.Lock()
	if _, ok := s.categories[name]; ok {
		s.mu.Unlock()
		return
	}
	s.categories[name] = nil
	s.saveLocked()
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs)
}

// RemoveCategory deletes a category and its applications. No-op if it does
// not exist.
func (s *Store) RemoveCategory(name string) {
	s.mu.Lock()
	if _, ok := s.categories[name]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.categories, name)
	s.saveLocked()
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs)
}

// Applications returns a deep copy of the full category mapping.
func (s *Store) Applications() map[string][]desktop.ApplicationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]desktop.ApplicationRecord, len(s.categories))
	for cat, apps := range s.categories {
		out[cat] = append([]desktop.ApplicationRecord(nil), apps...)
	}
	return out
}

// Category returns a copy of one category's applications and whether the
// category exists.
func (s *Store) Category(name string) ([]desktop.ApplicationRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apps, ok := s.categories[name]
	if !ok {
		return nil, false
	}
	return append([]desktop.ApplicationRecord(nil), apps...), true
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.clone()
}

// SetShowIcons persists the show-icons preference.
func (s *Store) SetShowIcons(v bool) {
	s.mu.Lock()
	s.settings.ShowIcons = v
	s.saveLocked()
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs)
}

// SetShowQuickLaunch persists the quick-launch visibility preference.
func (s *Store) SetShowQuickLaunch(v bool) {
	s.mu.Lock()
	s.settings.ShowQuickLaunch = v
	s.saveLocked()
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs)
}

// SetQuickLaunchApp assigns a command to one of the recognized quick-launch
// slots.
func (s *Store) SetQuickLaunchApp(slot, command string) error {
	if !IsQuickLaunchSlot(slot) {
		return &UnknownSlotError{Slot: slot}
	}
	s.mu.Lock()
	s.settings.QuickLaunchApps[slot] = command
	s.saveLocked()
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs)
	return nil
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
