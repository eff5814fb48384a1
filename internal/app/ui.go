package app

import (
	"github.com/bethropolis/stringcursor/cursor"
	"github.com/bethropolis/stringcursor/internal/config"
	"github.com/bethropolis/stringcursor/internal/logger"
	"github.com/bethropolis/stringcursor/internal/statusbar"
	"github.com/bethropolis/stringcursor/internal/tui"
)

// snapshot reads everything a frame needs in one critical section.
func (a *App) snapshot() (tui.FieldState, statusbar.Info) {
	var st tui.FieldState
	var info statusbar.Info
	a.editor.Do(func(ed cursor.Editor) {
		from, to := ed.SelectionPair()
		st = tui.FieldState{
			Prompt:  a.cfg.Field.Prompt,
			Text:    []rune(ed.String()),
			Cursor:  ed.Cursor(),
			SelFrom: from,
			SelTo:   to,
		}
		info = statusbar.Info{
			Cursor:    ed.Cursor(),
			Size:      ed.Size(),
			Selection: ed.SelectionSize(),
			History:   ed.HistorySize(),
			Undone:    ed.HistoryCanceledSize(),
			Deletion:  ed.Deletion(),
		}
	})
	return st, info
}

// draw clears the screen and redraws the field and status bar.
func (a *App) draw() {
	st, info := a.snapshot()
	a.statusBar.SetInfo(info)

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	logger.DebugTagf("draw", "draw: screen %dx%d, cursor %d", width, height, st.Cursor)

	a.tuiManager.Clear()
	if height > config.StatusBarHeight {
		a.field.Draw(screen, 0, width, st)
	} else {
		screen.HideCursor()
	}
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}
