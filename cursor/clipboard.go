package cursor

import (
	"github.com/bethropolis/stringcursor/internal/logger"
)

// Copy writes the selection to the clipboard. It reports false without a
// selection, without a clipboard, or when the clipboard refuses the text.
func (c *Cursor) Copy() bool {
	c.Stash()
	if !c.sel.Active() || c.clipboard == nil {
		return false
	}
	if err := c.clipboard.WriteText(c.SelectedText()); err != nil {
		logger.Warnf("Cursor: copy failed: %v", err)
		return false
	}
	return true
}

// Cut copies the selection and deletes it once the copy succeeded.
func (c *Cursor) Cut() bool {
	if !c.Copy() {
		return false
	}
	return c.Delete()
}

// Paste inserts the clipboard text at the cursor, replacing any selection.
func (c *Cursor) Paste() bool {
	c.Stash()
	if c.clipboard == nil {
		return false
	}
	s, err := c.clipboard.ReadText()
	if err != nil {
		logger.Debugf("Cursor: paste skipped: %v", err)
		return false
	}
	if s == "" {
		return false
	}
	c.Insert(s)
	return true
}
