package reconcile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidal/launchbox/internal/config"
	"github.com/mvidal/launchbox/internal/desktop"
)

func writeEntry(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func newFixture(t *testing.T, entryDir string) (*Reconciler, *config.Store) {
	t.Helper()
	store := config.NewStore(filepath.Join(t.TempDir(), "config.json"))
	return New(desktop.NewScanner(entryDir), store), store
}

func TestReconcileImportsVisibleApplications(t *testing.T) {
	entryDir := t.TempDir()
	writeEntry(t, entryDir, "util.desktop", `[Desktop Entry]
Name=Util
Exec=/bin/true
Categories=Utility;
`)
	writeEntry(t, entryDir, "hidden.desktop", `[Desktop Entry]
Name=Hidden
Exec=/bin/true
NoDisplay=true
`)

	rec, store := newFixture(t, entryDir)
	res := rec.Reconcile()

	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 0, res.Removed)

	apps, ok := store.Category("Utility")
	require.True(t, ok)
	require.Len(t, apps, 1)
	assert.Equal(t, "Util", apps[0].Name)
}

func TestReconcileIsIdempotent(t *testing.T) {
	entryDir := t.TempDir()
	writeEntry(t, entryDir, "app.desktop", `[Desktop Entry]
Name=App
Exec=/bin/true
Categories=Utility;
`)

	rec, _ := newFixture(t, entryDir)
	first := rec.Reconcile()
	second := rec.Reconcile()

	assert.Equal(t, 1, first.Imported)
	assert.Equal(t, 0, second.Imported)
	assert.Equal(t, 0, second.Removed)
}

func TestImportByCategoryInsertsOncePerDeclaredCategory(t *testing.T) {
	entryDir := t.TempDir()
	writeEntry(t, entryDir, "multi.desktop", `[Desktop Entry]
Name=Multi
Exec=/bin/true
Categories=Network;Development;
`)

	rec, store := newFixture(t, entryDir)
	imported := rec.ImportByCategory()

	assert.Equal(t, 2, imported, "one insert per declared category")

	for _, cat := range []string{"Network", "Development"} {
		apps, ok := store.Category(cat)
		require.True(t, ok, "category %q", cat)
		assert.Len(t, apps, 1)
	}
}

func TestImportByCategoryDefaultsToUncategorized(t *testing.T) {
	entryDir := t.TempDir()
	writeEntry(t, entryDir, "plain.desktop", `[Desktop Entry]
Name=Plain
Exec=/bin/true
`)

	rec, store := newFixture(t, entryDir)
	rec.ImportByCategory()

	apps, ok := store.Category("Uncategorized")
	require.True(t, ok)
	assert.Len(t, apps, 1)
}

func TestImportByBucketUsesSingleBucket(t *testing.T) {
	entryDir := t.TempDir()
	writeEntry(t, entryDir, "browser.desktop", `[Desktop Entry]
Name=Browser
Exec=/bin/true
Categories=Network;WebBrowser;
`)

	rec, store := newFixture(t, entryDir)
	imported := rec.ImportByBucket()

	assert.Equal(t, 1, imported, "classified into exactly one bucket")

	apps, ok := store.Category("Internet")
	require.True(t, ok)
	assert.Len(t, apps, 1)

	_, ok = store.Category("Webbrowser")
	assert.False(t, ok, "raw categories are not used in bucket mode")
}

func TestCleanRemovesStaleApplications(t *testing.T) {
	rec, store := newFixture(t, t.TempDir())

	store.AddApplication("cat", desktop.ApplicationRecord{Name: "Good", Cmd: "/bin/true"})
	store.AddApplication("cat", desktop.ApplicationRecord{Name: "Gone", Cmd: "/nonexistent/binary-xyz"})
	store.AddApplication("cat", desktop.ApplicationRecord{Name: "Empty", Cmd: ""})
	store.AddApplication("cat", desktop.ApplicationRecord{Name: "Unquoted", Cmd: `broken "quote`})

	removed := rec.Clean()

	assert.Equal(t, 3, removed)
	apps, _ := store.Category("cat")
	require.Len(t, apps, 1)
	assert.Equal(t, "Good", apps[0].Name)
}

func TestCleanResolvesThroughPath(t *testing.T) {
	rec, store := newFixture(t, t.TempDir())

	// Relative command resolved via PATH search.
	store.AddApplication("cat", desktop.ApplicationRecord{Name: "Shell", Cmd: "sh -c exit"})
	removed := rec.Clean()

	assert.Equal(t, 0, removed)
}

func TestCleanIgnoresNonExecutableFiles(t *testing.T) {
	rec, store := newFixture(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "data-file")
	require.NoError(t, os.WriteFile(path, []byte("not a binary"), 0644))
	store.AddApplication("cat", desktop.ApplicationRecord{Name: "Data", Cmd: path})

	assert.Equal(t, 1, rec.Clean())
}

func TestReconcileEndToEnd(t *testing.T) {
	entryDir := t.TempDir()
	writeEntry(t, entryDir, "good.desktop", `[Desktop Entry]
Name=Good
Exec=/bin/true
Categories=Utility;
`)

	rec, store := newFixture(t, entryDir)
	store.AddApplication("Leftovers", desktop.ApplicationRecord{Name: "Stale", Cmd: "/nonexistent/binary-xyz"})

	res := rec.Reconcile()

	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 1, res.Removed)

	_, ok := store.Category("Utility")
	assert.True(t, ok)
	apps, _ := store.Category("Leftovers")
	assert.Empty(t, apps)
}
