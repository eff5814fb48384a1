// Package cursor implements the backend of a text-input field: a rune buffer
// with a cursor, an optional directional selection, and a cancel/redo history
// fed by an edit batcher that coalesces keystrokes into word-sized records.
//
// A Cursor is not safe for concurrent use; wrap it with NewSynchronized when
// it is shared between goroutines.
package cursor

import (
	"github.com/bethropolis/stringcursor/internal/core/history"
	"github.com/bethropolis/stringcursor/internal/core/selection"
	"github.com/bethropolis/stringcursor/internal/event"
)

// Direction tells which side of the cursor a deletion batch eats into.
type Direction int

const (
	Backward Direction = iota // erase, the rune before the cursor
	Forward                   // delete, the rune after the cursor
)

// Clipboard is the host copy/paste facility used by Copy, Cut and Paste.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// Cursor is a single-owner text field state machine.
type Cursor struct {
	text   []rune
	cursor int
	sel    *selection.Manager
	hist   *history.Stack

	// Pending insert batch.
	pending  []rune
	word     bool // pending run holds non-break runes
	replace  bool
	replaced []rune

	// Pending deletion batch; the runes are already gone from text.
	deleted   []rune
	deleteDir Direction

	events    *event.Manager
	clipboard Clipboard
}

// Option configures a Cursor.
type Option func(*Cursor)

// WithHistoryLimit caps the committed history; the oldest edits are dropped.
// A limit <= 0 keeps everything.
func WithHistoryLimit(limit int) Option {
	return func(c *Cursor) { c.hist = history.NewStack(limit) }
}

// WithEventManager makes the cursor dispatch history and navigation events.
func WithEventManager(m *event.Manager) Option {
	return func(c *Cursor) { c.events = m }
}

// WithClipboard sets the collaborator used by Copy, Cut and Paste.
func WithClipboard(cb Clipboard) Option {
	return func(c *Cursor) { c.clipboard = cb }
}

// New creates a cursor over initial, placed at the end of the text.
// The initial text is not part of the history.
func New(initial string, opts ...Option) *Cursor {
	c := &Cursor{
		text: []rune(initial),
		sel:  selection.NewManager(),
		hist: history.NewStack(0),
	}
	c.cursor = len(c.text)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// String returns the current text.
func (c *Cursor) String() string {
	return string(c.text)
}

// Cursor returns the insertion index.
func (c *Cursor) Cursor() int {
	return c.cursor
}

// Size returns the text length in runes.
func (c *Cursor) Size() int {
	return len(c.text)
}

// Deletion returns how many runes the pending deletion batch holds.
func (c *Cursor) Deletion() int {
	return len(c.deleted)
}

// HistorySize returns the number of committed edits.
func (c *Cursor) HistorySize() int {
	return c.hist.Len()
}

// HistoryCanceledSize returns the number of edits Redo can re-apply.
func (c *Cursor) HistoryCanceledSize() int {
	return c.hist.UndoneLen()
}

// CharacterBefore returns the rune left of the cursor.
func (c *Cursor) CharacterBefore() (rune, bool) {
	if c.cursor == 0 {
		return 0, false
	}
	return c.text[c.cursor-1], true
}

// CharacterAfter returns the rune right of the cursor.
func (c *Cursor) CharacterAfter() (rune, bool) {
	if c.cursor == len(c.text) {
		return 0, false
	}
	return c.text[c.cursor], true
}

func (c *Cursor) notify(t event.Type, data interface{}) {
	if c.events != nil {
		c.events.Dispatch(t, data)
	}
}
