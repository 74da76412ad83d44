package desktop

import "strings"

// DefaultBucket is where applications land when no taxonomy keyword matches.
const DefaultBucket = "General"

// Buckets is the fixed taxonomy in classification priority order. An
// application is placed in the first bucket whose keywords match one of its
// raw categories, never more than one.
var Buckets = []string{
	"System",
	"Settings",
	"Office",
	"Graphics",
	"Multimedia",
	"Internet",
	"Games",
	"Development",
	DefaultBucket,
}

// bucketKeywords associates each bucket with the raw category tokens that map
// into it. Comparison is case-insensitive and exact per token.
var bucketKeywords = map[string][]string{
	"System":      {"system", "settings", "preferences", "configure", "admin", "hardware"},
	"Settings":    {"settings", "preferences", "configure", "control"},
	"Office":      {"office", "word", "spreadsheet", "document", "text", "edit", "publish"},
	"Graphics":    {"graphics", "2dgraphics", "3dgraphics", "image", "photo", "picture", "art"},
	"Multimedia":  {"audio", "audiovideo", "music", "video", "tv", "player", "recorder"},
	"Internet":    {"network", "email", "web", "internet", "chat", "p2p", "filetransfer"},
	"Games":       {"game", "arcade", "sports", "kids", "logic", "strategy", "simulation"},
	"Development": {"development", "programming", "ide", "editor", "debugger", "database"},
	DefaultBucket: {"utility", "accessibility", "archiving", "calculator", "clock", "filemanager"},
}

// Classify maps an application's raw categories onto a single taxonomy
// bucket. Buckets are checked in priority order and the first match wins;
// no match falls through to General.
func Classify(categories []string) string {
	have := make(map[string]bool, len(categories))
	for _, c := range categories {
		have[strings.ToLower(c)] = true
	}
	for _, bucket := range Buckets {
		for _, kw := range bucketKeywords[bucket] {
			if have[kw] {
				return bucket
			}
		}
	}
	return DefaultBucket
}
