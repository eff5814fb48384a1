package selection

import (
	"github.com/bethropolis/stringcursor/internal/logger"
)

// Manager tracks an optional selection anchor paired with the cursor.
// The cursor is the moving end and is always passed in by the caller.
type Manager struct {
	selecting bool
	anchor    int
}

// NewManager creates a selection manager with no active selection.
func NewManager() *Manager {
	return &Manager{anchor: -1}
}

// Active reports whether a selection is in progress.
func (m *Manager) Active() bool {
	return m.selecting
}

// Anchor returns the fixed end of the selection, or -1 when inactive.
func (m *Manager) Anchor() int {
	if !m.selecting {
		return -1
	}
	return m.anchor
}

// Begin anchors a new selection at cursor unless one is already active.
func (m *Manager) Begin(cursor int) {
	if m.selecting {
		return
	}
	m.selecting = true
	m.anchor = cursor
	logger.DebugTagf("selection", "Selection Manager: Started at %d", cursor)
}

// Set activates a selection anchored at anchor, replacing any current one.
func (m *Manager) Set(anchor int) {
	m.selecting = true
	m.anchor = anchor
}

// Settle normalizes the selection after the cursor moved to cursor.
// A zero-width selection is cleared. It returns the resulting size.
func (m *Manager) Settle(cursor int) int {
	if !m.selecting {
		return 0
	}
	if cursor == m.anchor {
		m.Clear()
		return 0
	}
	return m.Size(cursor)
}

// Range returns the normalized selection [from, to) for the given cursor.
// Without a selection both ends are the cursor.
func (m *Manager) Range(cursor int) (from, to int) {
	if !m.selecting {
		return cursor, cursor
	}
	if m.anchor < cursor {
		return m.anchor, cursor
	}
	return cursor, m.anchor
}

// Size returns the selection width for the given cursor.
func (m *Manager) Size(cursor int) int {
	from, to := m.Range(cursor)
	return to - from
}

// Clear resets the selection state.
func (m *Manager) Clear() {
	if m.selecting {
		logger.DebugTagf("selection", "Selection Manager: Cleared")
	}
	m.selecting = false
	m.anchor = -1
}
