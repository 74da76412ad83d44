package desktop

import (
	"strings"

	"github.com/mordilloSan/go-logger/logger"
	"gopkg.in/ini.v1"
)

// entrySection is the only section of a desktop entry file we consume.
// Matched case-insensitively.
const entrySection = "Desktop Entry"

// loadOptions keeps key and section lookups case-insensitive, prevents the
// `;` separators inside values like Categories=Network;Email; from being
// treated as inline comments, and skips stray non key=value lines instead of
// failing the whole file.
var loadOptions = ini.LoadOptions{
	Insensitive:             true,
	IgnoreInlineComment:     true,
	SkipUnrecognizableLines: true,
}

// ParseFile parses a single .desktop file into an ApplicationRecord.
//
// The second return value is false when the file cannot be read or decoded,
// when the entry has no Name or no usable Exec command, or when it is marked
// NoDisplay. Parse failures are logged and never propagated.
func ParseFile(path string) (ApplicationRecord, bool) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		logger.Errorf("error parsing desktop file %s: %v", path, err)
		return ApplicationRecord{}, false
	}

	sec, err := f.GetSection(entrySection)
	if err != nil {
		return ApplicationRecord{}, false
	}

	rec := ApplicationRecord{
		Name:       sec.Key("Name").String(),
		Cmd:        CleanExec(sec.Key("Exec").String()),
		Icon:       sec.Key("Icon").String(),
		NoDisplay:  parseBool(sec.Key("NoDisplay").String()),
		Categories: parseCategories(sec.Key("Categories").String()),
	}

	if rec.Name == "" || rec.Cmd == "" || rec.NoDisplay {
		return ApplicationRecord{}, false
	}
	if len(rec.Categories) == 0 {
		rec.Categories = []string{"Uncategorized"}
	}
	return rec, true
}

// parseBool reports whether a desktop entry boolean value is truthy.
// Only true/yes/1 count, case-insensitively.
func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// parseCategories splits a Categories value on `;`, trimming and title-casing
// each token and dropping empties.
func parseCategories(v string) []string {
	var cats []string
	for _, tok := range strings.Split(v, ";") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		cats = append(cats, TitleCase(tok))
	}
	return cats
}
