package desktop

import (
	"strings"
	"unicode"
)

// ApplicationRecord is one launchable application parsed from a desktop entry.
type ApplicationRecord struct {
	Name       string   `json:"name"                 yaml:"name"`
	Cmd        string   `json:"cmd"                  yaml:"cmd"`
	Icon       string   `json:"icon,omitempty"       yaml:"icon,omitempty"`
	NoDisplay  bool     `json:"nodisplay,omitempty"  yaml:"nodisplay,omitempty"`
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// fieldCodes are the Exec placeholders defined by the desktop entry format.
// They carry no meaning outside a desktop environment and are stripped before
// the command is stored.
var fieldCodes = []string{
	"%U", "%u", "%F", "%f", "%D", "%d", "%N", "%n",
	"%i", "%c", "%k", "%v", "%m", "%M",
}

// CleanExec strips desktop entry field codes from an Exec value and collapses
// the leftover whitespace runs to single spaces.
func CleanExec(exec string) string {
	if exec == "" {
		return exec
	}
	for _, code := range fieldCodes {
		exec = strings.ReplaceAll(exec, code, "")
	}
	return strings.Join(strings.Fields(exec), " ")
}

// TitleCase uppercases every letter that follows a non-letter and lowercases
// the rest, normalizing raw category tokens ("audioVideo" -> "Audiovideo",
// "X-GNOME-Utilities" -> "X-Gnome-Utilities") so category names compare and
// display consistently.
func TitleCase(s string) string {
	r := []rune(s)
	prevLetter := false
	for i, c := range r {
		if !unicode.IsLetter(c) {
			prevLetter = false
			continue
		}
		if prevLetter {
			r[i] = unicode.ToLower(c)
		} else {
			r[i] = unicode.ToUpper(c)
		}
		prevLetter = true
	}
	return string(r)
}
