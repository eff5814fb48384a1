package history

import (
	"github.com/bethropolis/stringcursor/internal/logger"
)

// DefaultMaxHistory is the limit the demo host uses when none is configured.
const DefaultMaxHistory = 100

// Stack holds committed edits and the edits undone from them.
// It is not safe for concurrent use.
type Stack struct {
	committed []Edit
	undone    []Edit
	limit     int // 0 means unbounded
}

// NewStack creates a history stack. A limit <= 0 keeps every committed edit.
func NewStack(limit int) *Stack {
	if limit < 0 {
		limit = 0
	}
	return &Stack{limit: limit}
}

// Commit appends a new edit and invalidates anything that could be redone.
func (s *Stack) Commit(e Edit) {
	s.committed = append(s.committed, e)
	if s.limit > 0 && len(s.committed) > s.limit {
		// Oldest edits fall off the bottom.
		evicted := len(s.committed) - s.limit
		s.committed = append(s.committed[:0:0], s.committed[evicted:]...)
		logger.DebugTagf("history", "History: evicted %d edit(s), limit %d", evicted, s.limit)
	}
	s.undone = s.undone[:0]
	logger.DebugTagf("history", "History: committed %v. Count: %d", e, len(s.committed))
}

// Undo moves the most recent committed edit onto the undone stack and returns it.
func (s *Stack) Undo() (Edit, bool) {
	n := len(s.committed)
	if n == 0 {
		return nil, false
	}
	e := s.committed[n-1]
	s.committed = s.committed[:n-1]
	s.undone = append(s.undone, e)
	return e, true
}

// Redo moves the most recent undone edit back onto the committed stack and returns it.
func (s *Stack) Redo() (Edit, bool) {
	n := len(s.undone)
	if n == 0 {
		return nil, false
	}
	e := s.undone[n-1]
	s.undone = s.undone[:n-1]
	s.committed = append(s.committed, e)
	return e, true
}

// ClearUndone drops the redo stack without touching committed edits.
func (s *Stack) ClearUndone() {
	if len(s.undone) > 0 {
		logger.DebugTagf("history", "History: dropped %d undone edit(s)", len(s.undone))
	}
	s.undone = s.undone[:0]
}

// Clear resets both stacks.
func (s *Stack) Clear() {
	s.committed = s.committed[:0]
	s.undone = s.undone[:0]
}

// Len returns the number of committed edits.
func (s *Stack) Len() int { return len(s.committed) }

// UndoneLen returns the number of edits available to Redo.
func (s *Stack) UndoneLen() int { return len(s.undone) }

// Limit returns the configured limit, 0 for unbounded.
func (s *Stack) Limit() int { return s.limit }

// CanUndo returns true if there are edits that can be undone.
func (s *Stack) CanUndo() bool { return len(s.committed) > 0 }

// CanRedo returns true if there are edits that can be redone.
func (s *Stack) CanRedo() bool { return len(s.undone) > 0 }

// Last returns the most recent committed edit.
func (s *Stack) Last() (Edit, bool) {
	if len(s.committed) == 0 {
		return nil, false
	}
	return s.committed[len(s.committed)-1], true
}
