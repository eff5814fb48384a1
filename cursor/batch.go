package cursor

import (
	"github.com/bethropolis/stringcursor/internal/core/history"
	"github.com/bethropolis/stringcursor/internal/core/text"
	"github.com/bethropolis/stringcursor/internal/event"
	"github.com/bethropolis/stringcursor/internal/logger"
)

// Write types r at the cursor. Runs of word runes batch into one history
// record; a break rune ends the run and opens the next batch. Typing over a
// selection replaces it.
func (c *Cursor) Write(r rune) Editor {
	c.StashDeletion()
	c.hist.ClearUndone()

	if c.sel.Active() {
		c.StashInput()
		from, to := c.sel.Range(c.cursor)
		var replaced []rune
		c.text, replaced = text.Remove(c.text, from, to)
		c.text = text.Insert(c.text, from, []rune{r})
		c.sel.Clear()
		c.cursor = from + 1
		c.replace = true
		c.replaced = replaced
		c.word = !text.IsBreak(r)
		c.pending = append(c.pending, r)
		logger.DebugTagf("batch", "Batch: replacing %q at %d", string(replaced), from)
		return c
	}

	if text.IsBreak(r) {
		if c.word {
			c.StashInput()
		}
	} else {
		c.word = true
	}
	c.text = text.Insert(c.text, c.cursor, []rune{r})
	c.cursor++
	c.pending = append(c.pending, r)
	return c
}

// WriteString types every rune of s in turn.
func (c *Cursor) WriteString(s string) Editor {
	for _, r := range s {
		c.Write(r)
	}
	return c
}

// Insert places s at the cursor as a single history record, replacing the
// selection if there is one.
func (c *Cursor) Insert(s string) {
	c.Stash()
	if s == "" {
		return
	}
	c.hist.ClearUndone()
	if c.sel.Active() {
		from, to := c.sel.Range(c.cursor)
		c.text, c.replaced = text.Remove(c.text, from, to)
		c.sel.Clear()
		c.cursor = from
		c.replace = true
	}
	ins := []rune(s)
	c.text = text.Insert(c.text, c.cursor, ins)
	c.cursor += len(ins)
	c.pending = append(c.pending, ins...)
	c.StashInput()
}

// Erase removes the rune before the cursor, or the selection.
// It returns false when there was nothing to remove.
func (c *Cursor) Erase() bool {
	return c.deleteOne(Backward)
}

// Delete removes the rune after the cursor, or the selection.
// It returns false when there was nothing to remove.
func (c *Cursor) Delete() bool {
	return c.deleteOne(Forward)
}

func (c *Cursor) deleteOne(dir Direction) bool {
	c.StashInput()
	if len(c.deleted) > 0 && c.deleteDir != dir {
		c.StashDeletion()
	}
	if c.sel.Active() {
		c.deleteSelection()
		return true
	}

	pos := c.cursor
	if dir == Backward {
		pos--
	}
	if pos < 0 || pos >= len(c.text) {
		return false
	}
	c.hist.ClearUndone()
	var removed []rune
	c.text, removed = text.Remove(c.text, pos, pos+1)
	c.deleteDir = dir
	if dir == Backward {
		c.cursor--
		c.deleted = append(removed, c.deleted...)
	} else {
		c.deleted = append(c.deleted, removed...)
	}
	return true
}

// EraseWord removes back to the start of the word before the cursor and
// returns how many runes went. With a selection it erases the selection.
func (c *Cursor) EraseWord() int {
	if c.sel.Active() {
		n := c.SelectionSize()
		c.Erase()
		return n
	}
	c.Stash()
	return c.deleteSpan(text.WordStart(c.text, c.cursor), c.cursor)
}

// DeleteWord removes forward to the end of the word after the cursor and
// returns how many runes went. With a selection it deletes the selection.
func (c *Cursor) DeleteWord() int {
	if c.sel.Active() {
		n := c.SelectionSize()
		c.Delete()
		return n
	}
	c.Stash()
	return c.deleteSpan(c.cursor, text.WordEnd(c.text, c.cursor))
}

func (c *Cursor) deleteSelection() {
	c.StashDeletion()
	from, to := c.sel.Range(c.cursor)
	c.sel.Clear()
	c.deleteSpan(from, to)
}

// deleteSpan removes [from, to) and commits it as one record.
func (c *Cursor) deleteSpan(from, to int) int {
	if to <= from {
		return 0
	}
	c.hist.ClearUndone()
	var removed []rune
	c.text, removed = text.Remove(c.text, from, to)
	c.cursor = from
	c.commit(history.Delete{From: from, To: to, Value: string(removed)})
	return len(removed)
}

// Stash flushes the pending insert batch, then the pending deletion batch.
func (c *Cursor) Stash() {
	c.StashInput()
	c.StashDeletion()
}

// StashInput commits the pending insert batch as a Write or Replace record.
func (c *Cursor) StashInput() {
	if len(c.pending) == 0 {
		return
	}
	value := string(c.pending)
	from := c.cursor - len(c.pending)
	if c.replace {
		c.commit(history.Replace{From: from, To: c.cursor, Value: value, Previous: string(c.replaced)})
	} else {
		c.commit(history.Write{From: from, To: c.cursor, Value: value})
	}
	c.pending = c.pending[:0]
	c.replace = false
	c.replaced = nil
	c.word = false
}

// StashDeletion commits the pending deletion batch as a Delete record.
func (c *Cursor) StashDeletion() {
	if len(c.deleted) == 0 {
		return
	}
	// Both directions leave the cursor at the start of the removed span.
	c.commit(history.Delete{From: c.cursor, To: c.cursor + len(c.deleted), Value: string(c.deleted)})
	c.deleted = nil
}

func (c *Cursor) commit(e history.Edit) {
	c.hist.Commit(e)
	c.notify(event.TypeEditCommitted, event.EditData{Edit: e})
}
