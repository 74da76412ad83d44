package launcher

import (
	"errors"
	"io"
	"io/fs"
	"os/exec"
	"strings"

	"github.com/google/shlex"
	"github.com/mordilloSan/go-logger/logger"
)

// Launch tokenizes command with shell-word splitting (quoting honored, no
// metacharacter expansion), spawns the first token as a detached process and
// returns immediately. The child survives this process exiting; its stdout is
// discarded and its stderr is drained to the debug log. All spawn failures
// collapse to false, each logged with its cause.
func Launch(command string) bool {
	parts, err := shlex.Split(command)
	if err != nil {
		logger.Errorf("error tokenizing command %q: %v", command, err)
		return false
	}
	if len(parts) == 0 {
		logger.Errorf("empty command: %q", command)
		return false
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.SysProcAttr = detachAttr()

	stderr, err := cmd.StderrPipe()
	if err != nil {
		logger.Errorf("error launching application %q: %v", command, err)
		return false
	}

	if err := cmd.Start(); err != nil {
		switch {
		case errors.Is(err, exec.ErrNotFound):
			logger.Errorf("command not found: %s", command)
		case errors.Is(err, fs.ErrPermission):
			logger.Errorf("permission denied for command: %s", command)
		default:
			logger.Errorf("error launching application %q: %v", command, err)
		}
		return false
	}

	// Drain stderr and reap the child off the caller's path. Launching is
	// fire-and-forget; nothing supervises the process after this.
	go func() {
		out, _ := io.ReadAll(stderr)
		if msg := strings.TrimSpace(string(out)); msg != "" {
			logger.Debugf("stderr from %q: %s", command, msg)
		}
		_ = cmd.Wait()
	}()

	logger.Infof("launched application with command: %s", command)
	return true
}

// LaunchWithValidation validates command and launches it only if validation
// passes.
func LaunchWithValidation(command string) bool {
	if !Validate(command) {
		logger.Errorf("command failed validation: %s", command)
		return false
	}
	return Launch(command)
}
