// internal/app/actions.go
package app

import (
	"fmt"

	"github.com/bethropolis/stringcursor/cursor"
	"github.com/bethropolis/stringcursor/internal/input"
)

// outcome tells the event loop what an applied action requires.
type outcome struct {
	quit    bool
	submit  bool
	message string // temporary status bar message
}

// apply runs one action against ed. Compound actions run under a single
// Do call so another goroutine cannot interleave.
func apply(ed *cursor.Synchronized, ev input.ActionEvent) outcome {
	var out outcome
	ed.Do(func(ed cursor.Editor) {
		out = applyTo(ed, ev)
	})
	return out
}

func applyTo(ed cursor.Editor, ev input.ActionEvent) outcome {
	switch ev.Action {
	case input.ActionQuit:
		return outcome{quit: true}
	case input.ActionSubmit:
		ed.Stash()
		return outcome{submit: true}

	// --- Movement ---
	case input.ActionMoveLeft:
		ed.MoveLeft()
	case input.ActionMoveRight:
		ed.MoveRight()
	case input.ActionMoveWordLeft:
		ed.GoToWordStart()
	case input.ActionMoveWordRight:
		ed.GoToWordEnd()
	case input.ActionMoveHome:
		ed.GoToStart()
	case input.ActionMoveEnd:
		ed.GoToEnd()

	// --- Selection ---
	case input.ActionSelectLeft:
		ed.SelectLeft()
	case input.ActionSelectRight:
		ed.SelectRight()
	case input.ActionSelectWordLeft:
		ed.SelectWordStart()
	case input.ActionSelectWordRight:
		ed.SelectWordEnd()
	case input.ActionSelectHome:
		ed.SelectTo(0)
	case input.ActionSelectEnd:
		ed.SelectTo(ed.Size())
	case input.ActionSelectAll:
		ed.SelectAll()

	// --- Text ---
	case input.ActionInsertRune:
		ed.Write(ev.Rune)
	case input.ActionEraseChar:
		ed.Erase()
	case input.ActionDeleteChar:
		ed.Delete()
	case input.ActionEraseWord:
		ed.EraseWord()
	case input.ActionDeleteWord:
		ed.DeleteWord()

	// --- History ---
	case input.ActionCancel:
		if !ed.Cancel() {
			return outcome{message: "Nothing to cancel"}
		}
	case input.ActionRedo:
		if !ed.Redo() {
			return outcome{message: "Nothing to redo"}
		}

	// --- Clipboard ---
	case input.ActionCopy:
		n := ed.SelectionSize()
		if !ed.Copy() {
			return outcome{message: "Nothing copied"}
		}
		return outcome{message: fmt.Sprintf("Copied %d runes", n)}
	case input.ActionCut:
		n := ed.SelectionSize()
		if !ed.Cut() {
			return outcome{message: "Nothing cut"}
		}
		return outcome{message: fmt.Sprintf("Cut %d runes", n)}
	case input.ActionPaste:
		if !ed.Paste() {
			return outcome{message: "Clipboard empty"}
		}
	}
	return outcome{}
}
