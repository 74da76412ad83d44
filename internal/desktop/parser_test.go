package desktop

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEntry(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("well_formed_entry", func(t *testing.T) {
		path := writeEntry(t, tmpDir, "firefox.desktop", `[Desktop Entry]
Name=Firefox
Exec=/usr/bin/firefox %u
Icon=firefox
Categories=Network;WebBrowser;
`)
		rec, ok := ParseFile(path)
		require.True(t, ok)
		assert.Equal(t, "Firefox", rec.Name)
		assert.Equal(t, "/usr/bin/firefox", rec.Cmd)
		assert.Equal(t, "firefox", rec.Icon)
		assert.Equal(t, []string{"Network", "Webbrowser"}, rec.Categories)
	})

	t.Run("missing_name", func(t *testing.T) {
		path := writeEntry(t, tmpDir, "noname.desktop", `[Desktop Entry]
Exec=/usr/bin/app
`)
		_, ok := ParseFile(path)
		assert.False(t, ok)
	})

	t.Run("missing_exec", func(t *testing.T) {
		path := writeEntry(t, tmpDir, "noexec.desktop", `[Desktop Entry]
Name=App
`)
		_, ok := ParseFile(path)
		assert.False(t, ok)
	})

	t.Run("exec_only_placeholders", func(t *testing.T) {
		path := writeEntry(t, tmpDir, "placeholders.desktop", `[Desktop Entry]
Name=App
Exec=%U %f
`)
		_, ok := ParseFile(path)
		assert.False(t, ok, "command left empty after placeholder removal")
	})

	t.Run("nodisplay_variants", func(t *testing.T) {
		for _, v := range []string{"true", "TRUE", "Yes", "yes", "1"} {
			path := writeEntry(t, tmpDir, "hidden.desktop", `[Desktop Entry]
Name=Hidden
Exec=/usr/bin/hidden
NoDisplay=`+v+`
`)
			_, ok := ParseFile(path)
			assert.False(t, ok, "NoDisplay=%s should hide the entry", v)
		}
	})

	t.Run("nodisplay_false", func(t *testing.T) {
		path := writeEntry(t, tmpDir, "shown.desktop", `[Desktop Entry]
Name=Shown
Exec=/usr/bin/shown
NoDisplay=false
`)
		_, ok := ParseFile(path)
		assert.True(t, ok)
	})

	t.Run("case_insensitive_keys_and_section", func(t *testing.T) {
		path := writeEntry(t, tmpDir, "casing.desktop", `[desktop entry]
name=App
exec=/usr/bin/app
`)
		rec, ok := ParseFile(path)
		require.True(t, ok)
		assert.Equal(t, "App", rec.Name)
		assert.Equal(t, "/usr/bin/app", rec.Cmd)
	})

	t.Run("other_sections_ignored", func(t *testing.T) {
		path := writeEntry(t, tmpDir, "actions.desktop", `[Desktop Action new-window]
Name=Other Name
Exec=/usr/bin/other

[Desktop Entry]
Name=Main
Exec=/usr/bin/main
`)
		rec, ok := ParseFile(path)
		require.True(t, ok)
		assert.Equal(t, "Main", rec.Name)
		assert.Equal(t, "/usr/bin/main", rec.Cmd)
	})

	t.Run("quoted_values_unwrapped", func(t *testing.T) {
		path := writeEntry(t, tmpDir, "quoted.desktop", `[Desktop Entry]
Name="Quoted App"
Exec='/usr/bin/app'
`)
		rec, ok := ParseFile(path)
		require.True(t, ok)
		assert.Equal(t, "Quoted App", rec.Name)
		assert.Equal(t, "/usr/bin/app", rec.Cmd)
	})

	t.Run("comments_skipped", func(t *testing.T) {
		path := writeEntry(t, tmpDir, "comments.desktop", `[Desktop Entry]
# this line is a comment
Name=App
Exec=/usr/bin/app
`)
		rec, ok := ParseFile(path)
		require.True(t, ok)
		assert.Equal(t, "App", rec.Name)
	})

	t.Run("stray_line_inside_section", func(t *testing.T) {
		path := writeEntry(t, tmpDir, "stray.desktop", `[Desktop Entry]
Name=App
this line has no equals sign
Exec=/usr/bin/app
`)
		rec, ok := ParseFile(path)
		require.True(t, ok, "lines without key=value are ignored, not fatal")
		assert.Equal(t, "App", rec.Name)
		assert.Equal(t, "/usr/bin/app", rec.Cmd)
	})

	t.Run("no_categories_defaults_to_uncategorized", func(t *testing.T) {
		path := writeEntry(t, tmpDir, "nocat.desktop", `[Desktop Entry]
Name=App
Exec=/usr/bin/app
`)
		rec, ok := ParseFile(path)
		require.True(t, ok)
		assert.Equal(t, []string{"Uncategorized"}, rec.Categories)
	})

	t.Run("categories_trimmed_and_titled", func(t *testing.T) {
		path := writeEntry(t, tmpDir, "cats.desktop", `[Desktop Entry]
Name=App
Exec=/usr/bin/app
Categories= audioVideo ;;network;
`)
		rec, ok := ParseFile(path)
		require.True(t, ok)
		assert.Equal(t, []string{"Audiovideo", "Network"}, rec.Categories)
	})

	t.Run("nonexistent_file", func(t *testing.T) {
		_, ok := ParseFile(filepath.Join(tmpDir, "missing.desktop"))
		assert.False(t, ok)
	})
}

func TestCleanExec(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/usr/bin/test-app %U %f %F", "/usr/bin/test-app"},
		{"app %u --flag %i", "app --flag"},
		{"app", "app"},
		{"", ""},
		{"  spaced   command  ", "spaced command"},
		{"%U %u %F %f %D %d %N %n %i %c %k %v %m %M", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanExec(tt.in), "CleanExec(%q)", tt.in)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"network", "Network"},
		{"WebBrowser", "Webbrowser"},
		{"system apps", "System Apps"},
		{"X-GNOME-Utilities", "X-Gnome-Utilities"},
		{"x-kde4-settings", "X-Kde4-Settings"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleCase(tt.in), "TitleCase(%q)", tt.in)
	}
}
