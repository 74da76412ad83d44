//go:build linux

package launcher

import "syscall"

// detachAttr starts the child in its own session so it is not killed when
// the launcher exits.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
