package launcher

import (
	"strings"

	"github.com/mordilloSan/go-logger/logger"
)

// denylist holds substrings that block a command from launching. This is a
// best-effort check against obvious foot-guns, not a security boundary: a
// command that avoids these exact substrings passes.
var denylist = []string{
	"rm -rf",
	"rm -rf /",
	":(){:|:&};",
}

// Validate reports whether command may be launched. Empty or whitespace-only
// commands fail, as does any command whose lowercased text contains a
// denylisted substring.
func Validate(command string) bool {
	if strings.TrimSpace(command) == "" {
		return false
	}
	lower := strings.ToLower(command)
	for _, pattern := range denylist {
		if strings.Contains(lower, pattern) {
			logger.Warnf("potentially dangerous command rejected: %s", command)
			return false
		}
	}
	return true
}
