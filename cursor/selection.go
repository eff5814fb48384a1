package cursor

import (
	"github.com/bethropolis/stringcursor/internal/core/text"
)

// SelectLeft extends or shrinks the selection one rune to the left and
// returns its size. At index 0 nothing moves.
func (c *Cursor) SelectLeft() int {
	c.Stash()
	if c.cursor == 0 {
		return c.sel.Size(c.cursor)
	}
	return c.selectTo(c.cursor - 1)
}

// SelectRight extends or shrinks the selection one rune to the right and
// returns its size. At the end nothing moves.
func (c *Cursor) SelectRight() int {
	c.Stash()
	if c.cursor == len(c.text) {
		return c.sel.Size(c.cursor)
	}
	return c.selectTo(c.cursor + 1)
}

// SelectTo moves the cursor to pos (clamped) keeping or setting the anchor.
func (c *Cursor) SelectTo(pos int) int {
	c.Stash()
	return c.selectTo(pos)
}

// SelectWordStart extends the selection to the previous word boundary.
func (c *Cursor) SelectWordStart() int {
	c.Stash()
	return c.selectTo(text.WordStart(c.text, c.cursor))
}

// SelectWordEnd extends the selection to the next word boundary.
func (c *Cursor) SelectWordEnd() int {
	c.Stash()
	return c.selectTo(text.WordEnd(c.text, c.cursor))
}

// SelectAll selects the whole text.
func (c *Cursor) SelectAll() int {
	c.GoToStart()
	return c.SelectTo(c.Size())
}

func (c *Cursor) selectTo(pos int) int {
	c.sel.Begin(c.cursor)
	c.moveTo(pos)
	return c.sel.Settle(c.cursor)
}

// HasSelection reports whether a non-empty selection is active.
func (c *Cursor) HasSelection() bool {
	return c.sel.Active()
}

// SelectionPair returns the normalized selection bounds, or (cursor, cursor).
func (c *Cursor) SelectionPair() (from, to int) {
	return c.sel.Range(c.cursor)
}

// SelectionSize returns the selection width, 0 when inactive.
func (c *Cursor) SelectionSize() int {
	return c.sel.Size(c.cursor)
}

// SelectionStart returns the selection anchor, -1 when inactive.
func (c *Cursor) SelectionStart() int {
	return c.sel.Anchor()
}

// SelectedText returns the selected runes as a string.
func (c *Cursor) SelectedText() string {
	from, to := c.sel.Range(c.cursor)
	return string(c.text[from:to])
}
