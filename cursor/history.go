package cursor

import (
	"unicode/utf8"

	"github.com/bethropolis/stringcursor/internal/core/history"
	"github.com/bethropolis/stringcursor/internal/core/text"
	"github.com/bethropolis/stringcursor/internal/event"
	"github.com/bethropolis/stringcursor/internal/logger"
)

// Cancel reverts the most recent edit, flushing pending batches first.
// Cancelling a replacement re-selects the text it overwrote.
// It returns false when there is nothing to cancel.
func (c *Cursor) Cancel() bool {
	c.Stash()
	e, ok := c.hist.Undo()
	if !ok {
		logger.DebugTagf("history", "Cursor: nothing to cancel")
		return false
	}
	c.sel.Clear()

	switch e := e.(type) {
	case history.Write:
		c.text, _ = text.Remove(c.text, e.From, e.To)
		c.cursor = e.From
	case history.Delete:
		c.text = text.Insert(c.text, e.From, []rune(e.Value))
		c.cursor = e.To
	case history.Replace:
		prev := []rune(e.Previous)
		c.text, _ = text.Remove(c.text, e.From, e.From+utf8.RuneCountInString(e.Value))
		c.text = text.Insert(c.text, e.From, prev)
		c.cursor = e.From + len(prev)
		c.sel.Set(e.From)
		c.sel.Settle(c.cursor)
	}
	logger.DebugTagf("history", "Cursor: canceled %v, cursor %d", e, c.cursor)
	c.notify(event.TypeEditCanceled, event.EditData{Edit: e})
	return true
}

// Redo re-applies the most recently cancelled edit and selects what it wrote.
// It returns false when there is nothing to redo.
func (c *Cursor) Redo() bool {
	if !c.hist.CanRedo() {
		return false
	}
	c.Stash()
	e, ok := c.hist.Redo()
	if !ok {
		return false
	}
	c.sel.Clear()

	switch e := e.(type) {
	case history.Write:
		c.text = text.Insert(c.text, e.From, []rune(e.Value))
		c.cursor = e.To
		c.sel.Set(e.From)
	case history.Delete:
		c.text, _ = text.Remove(c.text, e.From, e.To)
		c.cursor = e.From
	case history.Replace:
		value := []rune(e.Value)
		c.text, _ = text.Remove(c.text, e.From, e.From+utf8.RuneCountInString(e.Previous))
		c.text = text.Insert(c.text, e.From, value)
		c.cursor = e.From + len(value)
		c.sel.Set(e.From)
	}
	c.sel.Settle(c.cursor)
	logger.DebugTagf("history", "Cursor: redid %v, cursor %d", e, c.cursor)
	c.notify(event.TypeEditRedone, event.EditData{Edit: e})
	return true
}
