package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTheme(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestGetStyle_Fallbacks(t *testing.T) {
	th := &Theme{Name: "t", Styles: map[string]tcell.Style{
		StyleDefault:   tcell.StyleDefault.Bold(true),
		StyleSelection: tcell.StyleDefault.Reverse(true),
	}}

	assert.Equal(t, tcell.StyleDefault.Reverse(true), th.GetStyle(StyleSelection))
	assert.Equal(t, tcell.StyleDefault.Bold(true), th.GetStyle(StylePrompt))

	empty := &Theme{Name: "empty"}
	assert.Equal(t, tcell.StyleDefault, empty.GetStyle(StylePrompt))
}

func TestDefault_HasFieldStyles(t *testing.T) {
	for _, name := range []string{StyleDefault, StylePrompt, StyleSelection, StyleStatusBar, StyleStatusBarPending, StyleStatusBarMessage} {
		_, ok := Default().Styles[name]
		assert.True(t, ok, name)
	}
}

func TestLoadThemeFromFile(t *testing.T) {
	path := writeTheme(t, "mono.toml", `
is_dark = true

[styles.Default]
fg = "#ffffff"
bg = "black"

[styles.Selection]
reverse = true
`)

	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "mono", th.Name, "name falls back to the file name")
	assert.True(t, th.IsDark)

	base := tcell.StyleDefault.Foreground(tcell.NewHexColor(0xffffff)).Background(tcell.ColorBlack)
	assert.Equal(t, base, th.GetStyle(StyleDefault))
	assert.Equal(t, base.Reverse(true), th.GetStyle(StyleSelection))
	assert.Equal(t, DevComfortDark.Styles[StyleStatusBar], th.GetStyle(StyleStatusBar), "unlisted styles come from the built-in theme")
}

func TestLoadThemeFromFile_Errors(t *testing.T) {
	_, err := LoadThemeFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadThemeFromFile(writeTheme(t, "bad.toml", "[styles.Default]\nfg = \"#12\"\n"))
	assert.ErrorContains(t, err, "invalid foreground color")

	th, err := LoadThemeFromFile(writeTheme(t, "skip.toml", "name = \"skip\"\n[styles.Prompt]\nbg = \"nope\"\n"))
	require.NoError(t, err, "a broken non-default style is skipped")
	assert.Equal(t, DevComfortDark.Styles[StylePrompt], th.GetStyle(StylePrompt))
}

func TestLoad(t *testing.T) {
	assert.Same(t, Default(), Load(""))
	assert.Same(t, Default(), Load(filepath.Join(t.TempDir(), "missing.toml")))

	th := Load(writeTheme(t, "x.toml", "name = \"X\"\n"))
	assert.Equal(t, "X", th.Name)
}

func TestParseColorString(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{"#61AFEF", tcell.NewHexColor(0x61afef), false},
		{" Red ", tcell.ColorRed, false},
		{"reset", tcell.ColorReset, false},
		{"default", tcell.ColorDefault, false},
		{"#zzzzzz", tcell.ColorDefault, true},
		{"chartreuse-ish", tcell.ColorDefault, true},
	}
	for _, tt := range tests {
		got, err := parseColorString(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
