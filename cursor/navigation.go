package cursor

import (
	"github.com/bethropolis/stringcursor/internal/core/text"
	"github.com/bethropolis/stringcursor/internal/event"
)

// GoTo moves the cursor to pos, clamped to [0, Size()], and returns it.
func (c *Cursor) GoTo(pos int) int {
	c.Stash()
	c.sel.Clear()
	return c.moveTo(pos)
}

// Move shifts the cursor by jump runes, saturating at either end.
func (c *Cursor) Move(jump int) int {
	c.Stash()
	c.sel.Clear()
	return c.moveTo(c.cursor + jump)
}

// MoveLeft steps one rune left. An active selection collapses to its low end instead.
func (c *Cursor) MoveLeft() int {
	c.Stash()
	if c.sel.Active() {
		from, _ := c.sel.Range(c.cursor)
		c.sel.Clear()
		return c.moveTo(from)
	}
	return c.moveTo(c.cursor - 1)
}

// MoveRight steps one rune right. An active selection collapses to its high end instead.
func (c *Cursor) MoveRight() int {
	c.Stash()
	if c.sel.Active() {
		_, to := c.sel.Range(c.cursor)
		c.sel.Clear()
		return c.moveTo(to)
	}
	return c.moveTo(c.cursor + 1)
}

// GoToStart moves to index 0.
func (c *Cursor) GoToStart() int {
	return c.GoTo(0)
}

// GoToEnd moves past the last rune.
func (c *Cursor) GoToEnd() int {
	return c.GoTo(len(c.text))
}

// GoToWordStart moves to the start of the current or previous word.
func (c *Cursor) GoToWordStart() int {
	c.Stash()
	c.sel.Clear()
	return c.moveTo(text.WordStart(c.text, c.cursor))
}

// GoToWordEnd moves to the end of the current or next word.
func (c *Cursor) GoToWordEnd() int {
	c.Stash()
	c.sel.Clear()
	return c.moveTo(text.WordEnd(c.text, c.cursor))
}

func (c *Cursor) moveTo(pos int) int {
	pos = text.Clamp(pos, len(c.text))
	if pos != c.cursor {
		c.cursor = pos
		c.notify(event.TypeCursorMoved, event.CursorMovedData{Position: pos})
	}
	return c.cursor
}
