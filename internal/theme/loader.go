// internal/theme/loader.go
package theme

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/stringcursor/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// styleDef is one [styles.<Name>] table. Pointers tell unset from false.
type styleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// themeFile is the layout of a theme TOML file.
type themeFile struct {
	Name   string              `toml:"name"`
	IsDark bool                `toml:"is_dark"`
	Styles map[string]styleDef `toml:"styles"`
}

// LoadThemeFromFile parses a TOML theme. Styles the file leaves out are
// taken from the built-in theme; listed styles inherit from the file's
// Default style.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	var file themeFile
	metadata, err := toml.DecodeFile(filePath, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Theme file '%s': Unrecognized keys: %v", filePath, undecoded)
	}

	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	theme := &Theme{
		Name:   file.Name,
		IsDark: file.IsDark,
		Styles: make(map[string]tcell.Style, len(DevComfortDark.Styles)),
	}
	for name, style := range DevComfortDark.Styles {
		theme.Styles[name] = style
	}

	baseStyle := theme.Styles[StyleDefault]
	if def, ok := file.Styles[StyleDefault]; ok {
		base, err := convertTomlStyle(def, tcell.StyleDefault)
		if err != nil {
			return nil, fmt.Errorf("theme '%s': style 'Default': %w", theme.Name, err)
		}
		baseStyle = base
		theme.Styles[StyleDefault] = base
	}

	for name, def := range file.Styles {
		if name == StyleDefault {
			continue
		}
		style, err := convertTomlStyle(def, baseStyle)
		if err != nil {
			logger.Warnf("Theme '%s': Failed to parse style '%s', skipping: %v", theme.Name, name, err)
			continue
		}
		theme.Styles[name] = style
	}

	logger.DebugTagf("theme", "Loaded theme '%s' from '%s'", theme.Name, filePath)
	return theme, nil
}

// convertTomlStyle applies def on top of baseStyle.
func convertTomlStyle(def styleDef, baseStyle tcell.Style) (tcell.Style, error) {
	style := baseStyle
	if def.Fg != nil {
		color, err := parseColorString(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground color '%s': %w", *def.Fg, err)
		}
		style = style.Foreground(color)
	}

	if def.Bg != nil {
		color, err := parseColorString(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background color '%s': %w", *def.Bg, err)
		}
		style = style.Background(color)
	}

	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}

	return style, nil
}

// parseColorString converts "#RRGGBB", a W3C color name, "reset" or
// "default" to a tcell.Color.
func parseColorString(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "reset":
		return tcell.ColorReset, nil
	case s == "default":
		return tcell.ColorDefault, nil
	case strings.HasPrefix(s, "#"):
		if len(s) != 7 {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color format '%s', must be #RRGGBB", s)
		}
		val, err := strconv.ParseInt(s[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex value '%s': %w", s, err)
		}
		return tcell.NewHexColor(int32(val)), nil
	}
	if color, ok := tcell.ColorNames[s]; ok {
		return color, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color format or name '%s'", s)
}
