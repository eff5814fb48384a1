// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/stringcursor/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// VisualColumn returns the display width of the first runeIndex runes of text,
// measured in grapheme clusters.
func VisualColumn(text []rune, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	visualWidth := 0
	currentRuneIndex := 0

	gr := uniseg.NewGraphemes(string(text))
	for gr.Next() {
		if currentRuneIndex >= runeIndex {
			break
		}
		visualWidth += gr.Width()
		currentRuneIndex += len(gr.Runes())
	}
	return visualWidth
}

// DrawString draws s at (x, y) without passing maxX and returns the column
// after the last drawn cluster.
func DrawString(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		runes := gr.Runes()
		width := gr.Width()
		if x+width > maxX {
			break
		}
		screen.SetContent(x, y, runes[0], runes[1:], style)
		for cw := 1; cw < width; cw++ {
			screen.SetContent(x+cw, y, ' ', nil, style)
		}
		x += width
	}
	return x
}

// FieldState is what the field row shows: the editor text, cursor and
// selection bounds, all in runes.
type FieldState struct {
	Prompt  string
	Text    []rune
	Cursor  int
	SelFrom int
	SelTo   int
}

// Field draws a single-line text field and keeps its horizontal scroll.
type Field struct {
	theme   *theme.Theme
	scrollX int // first visible visual column of the text
}

// NewField creates a field drawn with th.
func NewField(th *theme.Theme) *Field {
	if th == nil {
		th = theme.Default()
	}
	return &Field{theme: th}
}

// ScrollX returns the current horizontal scroll in columns.
func (f *Field) ScrollX() int {
	return f.scrollX
}

// Draw renders st on row y and places the terminal cursor. The view scrolls
// just enough to keep the cursor visible.
func (f *Field) Draw(screen tcell.Screen, y, width int, st FieldState) {
	defaultStyle := f.theme.GetStyle(theme.StyleDefault)
	selectionStyle := f.theme.GetStyle(theme.StyleSelection)

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, defaultStyle)
	}
	textX := DrawString(screen, 0, y, width, st.Prompt, f.theme.GetStyle(theme.StylePrompt))
	textAreaWidth := width - textX
	if textAreaWidth <= 0 {
		screen.HideCursor()
		return
	}

	cursorCol := VisualColumn(st.Text, st.Cursor)
	if cursorCol < f.scrollX {
		f.scrollX = cursorCol
	} else if cursorCol >= f.scrollX+textAreaWidth {
		f.scrollX = cursorCol - textAreaWidth + 1
	}

	gr := uniseg.NewGraphemes(string(st.Text))
	visualX := 0
	runeIndex := 0
	for gr.Next() {
		runes := gr.Runes()
		clusterWidth := gr.Width()
		start, end := visualX, visualX+clusterWidth
		visualX = end
		idx := runeIndex
		runeIndex += len(runes)

		if end <= f.scrollX {
			continue
		}
		if end > f.scrollX+textAreaWidth {
			break
		}
		if start < f.scrollX {
			continue // wide cluster cut by the left edge
		}

		style := defaultStyle
		if idx >= st.SelFrom && idx < st.SelTo {
			style = selectionStyle
		}
		screenX := textX + start - f.scrollX
		screen.SetContent(screenX, y, runes[0], runes[1:], style)
		for cw := 1; cw < clusterWidth; cw++ {
			screen.SetContent(screenX+cw, y, ' ', nil, style)
		}
	}

	screen.ShowCursor(textX+cursorCol-f.scrollX, y)
}
