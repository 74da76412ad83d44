package desktop

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	dir := t.TempDir()

	writeEntry(t, dir, "one.desktop", `[Desktop Entry]
Name=One
Exec=/usr/bin/one
Categories=Utility;
`)
	writeEntry(t, dir, "two.desktop", `[Desktop Entry]
Name=Two
Exec=/usr/bin/two
Categories=Network;
`)
	writeEntry(t, dir, "hidden.desktop", `[Desktop Entry]
Name=Hidden
Exec=/usr/bin/hidden
NoDisplay=true
`)
	writeEntry(t, dir, "broken.desktop", `[Desktop Entry]
Name=Broken
`)
	writeEntry(t, dir, "notes.txt", "not a desktop entry")

	// Files in subdirectories are not picked up; the scan is flat.
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	writeEntry(t, sub, "nested.desktop", `[Desktop Entry]
Name=Nested
Exec=/usr/bin/nested
`)

	scanner := NewScanner(dir)
	apps := scanner.Scan()

	names := make([]string, len(apps))
	for i, a := range apps {
		names[i] = a.Name
	}
	assert.ElementsMatch(t, []string{"One", "Two"}, names)
}

func TestScanMissingDirectory(t *testing.T) {
	scanner := NewScanner(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Empty(t, scanner.Scan())
}

func TestScanByCategory(t *testing.T) {
	dir := t.TempDir()

	writeEntry(t, dir, "calc.desktop", `[Desktop Entry]
Name=Calculator
Exec=/usr/bin/calc
Categories=Utility;Calculator;
`)
	writeEntry(t, dir, "browser.desktop", `[Desktop Entry]
Name=Browser
Exec=/usr/bin/browser
Categories=Network;WebBrowser;
`)

	byBucket := NewScanner(dir).ScanByCategory()

	// All nine buckets are present even when empty.
	assert.Len(t, byBucket, len(Buckets))
	for _, b := range Buckets {
		_, ok := byBucket[b]
		assert.True(t, ok, "bucket %q missing", b)
	}

	require.Len(t, byBucket["General"], 1)
	assert.Equal(t, "Calculator", byBucket["General"][0].Name)
	require.Len(t, byBucket["Internet"], 1)
	assert.Equal(t, "Browser", byBucket["Internet"][0].Name)
}

func TestScannerDefaultDirs(t *testing.T) {
	dirs := NewScanner().Dirs()
	require.Len(t, dirs, 3)
	assert.Equal(t, "/usr/share/applications", dirs[0])
	assert.Equal(t, "/usr/local/share/applications", dirs[1])
	assert.Contains(t, dirs[2], ".local")
}
