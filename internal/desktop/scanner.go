package desktop

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mordilloSan/go-logger/logger"
)

// Scanner discovers installed applications from desktop entry files in the
// standard system and per-user application directories.
type Scanner struct {
	dirs []string
}

// NewScanner returns a Scanner over the given directories. With no arguments
// it covers the standard locations: system-wide, system-local, then per-user.
func NewScanner(dirs ...string) *Scanner {
	if len(dirs) == 0 {
		home, _ := os.UserHomeDir()
		dirs = []string{
			"/usr/share/applications",
			"/usr/local/share/applications",
			filepath.Join(home, ".local", "share", "applications"),
		}
	}
	return &Scanner{dirs: dirs}
}

// Dirs returns the directories the scanner searches, in order.
func (s *Scanner) Dirs() []string {
	out := make([]string, len(s.dirs))
	copy(out, s.dirs)
	return out
}

// Scan parses every .desktop file found in the scanner's directories
// (non-recursively) and returns the records that parsed cleanly. Results are
// not deduplicated; that is the config store's job on insert.
func (s *Scanner) Scan() []ApplicationRecord {
	var apps []ApplicationRecord
	for _, path := range s.findEntryFiles() {
		if rec, ok := ParseFile(path); ok {
			apps = append(apps, rec)
		}
	}
	logger.Debugf("scan found %d applications in %d directories", len(apps), len(s.dirs))
	return apps
}

// ScanByCategory groups a fresh scan by taxonomy bucket. Every bucket is
// present in the result, even when empty.
func (s *Scanner) ScanByCategory() map[string][]ApplicationRecord {
	byBucket := make(map[string][]ApplicationRecord, len(Buckets))
	for _, b := range Buckets {
		byBucket[b] = nil
	}
	for _, rec := range s.Scan() {
		bucket := Classify(rec.Categories)
		byBucket[bucket] = append(byBucket[bucket], rec)
	}
	return byBucket
}

// findEntryFiles lists the .desktop files in the scanner's directories.
// Missing or unreadable directories are skipped.
func (s *Scanner) findEntryFiles() []string {
	var files []string
	for _, dir := range s.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".desktop") {
				continue
			}
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files
}
