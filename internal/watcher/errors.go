package watcher

import "errors"

// ErrNothingToWatch is returned when none of the configured directories
// exist.
var ErrNothingToWatch = errors.New("no watchable desktop entry directories")
