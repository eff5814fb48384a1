// internal/theme/theme.go
package theme

import (
	"github.com/bethropolis/stringcursor/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names used by the field and the status bar.
const (
	StyleDefault          = "Default"
	StylePrompt           = "Prompt"
	StyleSelection        = "Selection"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarPending = "StatusBarPending"
	StyleStatusBarMessage = "StatusBarMessage"
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style, falling back to Default and then to
// the terminal default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}
	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}
	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// --- DevComfort Dark Theme Definition ---

var DevComfortDark Theme

func init() {
	dcBackground := tcell.NewHexColor(0x2a2f38) // muted dark blue/grey (status bar)
	dcForeground := tcell.NewHexColor(0xc5cdd9) // soft off-white
	dcYellow := tcell.NewHexColor(0xe5c07b)
	dcBlue := tcell.NewHexColor(0x61afef)

	// Use terminal background, DevComfort foreground
	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dcForeground)

	DevComfortDark = Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:          baseStyle,
			StylePrompt:           baseStyle.Foreground(dcBlue).Bold(true),
			StyleSelection:        baseStyle.Reverse(true),
			StyleStatusBar:        tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground),
			StyleStatusBarPending: tcell.StyleDefault.Background(dcBackground).Foreground(dcYellow),
			StyleStatusBarMessage: tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground).Bold(true),
		},
	}
}

// Default returns the built-in theme.
func Default() *Theme {
	return &DevComfortDark
}

// Load returns the theme in filePath, or the built-in theme when filePath is
// empty or cannot be loaded.
func Load(filePath string) *Theme {
	if filePath == "" {
		return Default()
	}
	t, err := LoadThemeFromFile(filePath)
	if err != nil {
		logger.Warnf("Theme: %v, using %s", err, DevComfortDark.Name)
		return Default()
	}
	logger.Infof("Theme switched to: %s", t.Name)
	return t
}
