package watcher

import (
	"context"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mordilloSan/go-logger/logger"
)

// Watcher observes desktop entry directories and invokes a callback after
// changes settle. Events for the same burst of filesystem activity (package
// installs touch many files) are coalesced by the debounce interval.
type Watcher struct {
	dirs     []string
	debounce time.Duration
	onChange func()
}

// New returns a Watcher over dirs that calls onChange once per settled burst
// of .desktop file changes.
func New(dirs []string, debounce time.Duration, onChange func()) *Watcher {
	return &Watcher{dirs: dirs, debounce: debounce, onChange: onChange}
}

// Run watches until ctx is cancelled. Directories that do not exist are
// skipped; at least one must be watchable.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	watched := 0
	for _, dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			logger.Debugf("not watching %s: %v", dir, err)
			continue
		}
		logger.Infof("watching %s", dir)
		watched++
	}
	if watched == 0 {
		return ErrNothingToWatch
	}

	// The timer is armed on the first relevant event and re-armed on each
	// subsequent one; the callback fires only when events stop arriving.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			logger.Debugf("desktop entry change: %s %s", event.Op, event.Name)
			timer.Reset(w.debounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("watch error: %v", err)
		case <-timer.C:
			w.onChange()
		}
	}
}

// relevant filters for .desktop file lifecycle events.
func relevant(event fsnotify.Event) bool {
	if !strings.HasSuffix(event.Name, ".desktop") {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
