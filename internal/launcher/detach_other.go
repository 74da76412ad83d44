//go:build !linux

package launcher

import "syscall"

// detachAttr is a no-op off Linux; launched processes stay in the launcher's
// session.
func detachAttr() *syscall.SysProcAttr {
	return nil
}
