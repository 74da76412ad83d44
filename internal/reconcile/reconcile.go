package reconcile

import (
	"os/exec"
	"strings"

	"github.com/google/shlex"
	"github.com/mordilloSan/go-logger/logger"

	"github.com/mvidal/launchbox/internal/config"
	"github.com/mvidal/launchbox/internal/desktop"
)

// Result reports what one reconciliation pass changed.
type Result struct {
	Imported int `json:"imported" yaml:"imported"`
	Removed  int `json:"removed"  yaml:"removed"`
}

// Reconciler keeps the config store in sync with the applications actually
// installed on the system: a fresh scan imports new entries, a cleanup pass
// drops entries whose executables no longer resolve.
type Reconciler struct {
	scanner *desktop.Scanner
	store   *config.Store
}

// New returns a Reconciler over the given scanner and store.
func New(scanner *desktop.Scanner, store *config.Store) *Reconciler {
	return &Reconciler{scanner: scanner, store: store}
}

// Reconcile runs the raw-category import followed by the cleanup pass.
// Individual entry failures are treated as signals, never as errors.
func (r *Reconciler) Reconcile() Result {
	return Result{
		Imported: r.ImportByCategory(),
		Removed:  r.Clean(),
	}
}

// ImportByCategory inserts every freshly scanned application into each of the
// categories its desktop entry declares, title-cased, falling back to
// Uncategorized. A record declaring two categories is inserted twice, once
// per category; duplicates within a category are rejected by the store.
// Returns the number of insertions.
func (r *Reconciler) ImportByCategory() int {
	imported := 0
	for _, app := range r.scanner.Scan() {
		categories := app.Categories
		if len(categories) == 0 {
			categories = []string{"Uncategorized"}
		}
		for _, cat := range categories {
			name := desktop.TitleCase(strings.TrimSpace(cat))
			if name == "" {
				name = "Uncategorized"
			}
			if r.store.AddApplication(name, app) {
				logger.Debugf("imported %s into category %q", app.Name, name)
				imported++
			}
		}
	}
	logger.Infof("imported %d new applications", imported)
	return imported
}

// ImportByBucket inserts every freshly scanned application into the single
// taxonomy bucket it classifies into. Returns the number of insertions.
func (r *Reconciler) ImportByBucket() int {
	imported := 0
	for bucket, apps := range r.scanner.ScanByCategory() {
		for _, app := range apps {
			if r.store.AddApplication(bucket, app) {
				logger.Debugf("imported %s into bucket %q", app.Name, bucket)
				imported++
			}
		}
	}
	logger.Infof("imported %d new applications", imported)
	return imported
}

// Clean removes every stored application whose command is empty, fails to
// tokenize, or whose executable no longer resolves. Returns the number of
// removals.
func (r *Reconciler) Clean() int {
	removed := 0
	for category, apps := range r.store.Applications() {
		for _, app := range apps {
			if resolvable(app.Cmd) {
				continue
			}
			logger.Infof("removing stale application %q from %q: %s", app.Name, category, app.Cmd)
			r.store.RemoveApplication(category, app.Name)
			removed++
		}
	}
	return removed
}

// resolvable reports whether the command's first token resolves to an
// existing executable file, by absolute path or PATH search.
func resolvable(command string) bool {
	if strings.TrimSpace(command) == "" {
		return false
	}
	parts, err := shlex.Split(command)
	if err != nil || len(parts) == 0 {
		return false
	}
	_, err = exec.LookPath(parts[0])
	return err == nil
}
