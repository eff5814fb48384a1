package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStack(t *testing.T) {
	s := NewStack(-3)

	assert.Equal(t, 0, s.Limit())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.UndoneLen())
	assert.False(t, s.CanUndo())
	assert.False(t, s.CanRedo())

	_, ok := s.Undo()
	assert.False(t, ok)
	_, ok = s.Redo()
	assert.False(t, ok)
	_, ok = s.Last()
	assert.False(t, ok)
}

func TestStack_UndoRedoOrder(t *testing.T) {
	s := NewStack(0)
	first := Write{From: 0, To: 2, Value: "ab"}
	second := Delete{From: 1, To: 2, Value: "b"}
	s.Commit(first)
	s.Commit(second)

	e, ok := s.Undo()
	require.True(t, ok)
	assert.Equal(t, second, e)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.UndoneLen())

	e, ok = s.Undo()
	require.True(t, ok)
	assert.Equal(t, first, e)
	assert.Equal(t, 2, s.UndoneLen())

	e, ok = s.Redo()
	require.True(t, ok)
	assert.Equal(t, first, e)
	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, first, last)
	assert.Equal(t, 1, s.UndoneLen())
}

func TestStack_CommitClearsUndone(t *testing.T) {
	s := NewStack(0)
	s.Commit(Write{From: 0, To: 1, Value: "a"})
	s.Undo()
	require.True(t, s.CanRedo())

	s.Commit(Write{From: 0, To: 1, Value: "b"})
	assert.False(t, s.CanRedo())
	assert.Equal(t, 1, s.Len())
}

func TestStack_ClearUndone(t *testing.T) {
	s := NewStack(0)
	s.Commit(Write{From: 0, To: 1, Value: "a"})
	s.Undo()

	s.ClearUndone()
	assert.Equal(t, 0, s.UndoneLen())
	assert.Equal(t, 0, s.Len())
}

func TestStack_LimitEvictsOldest(t *testing.T) {
	s := NewStack(2)
	s.Commit(Write{From: 0, To: 1, Value: "a"})
	s.Commit(Write{From: 1, To: 2, Value: "b"})
	s.Commit(Write{From: 2, To: 3, Value: "c"})

	assert.Equal(t, 2, s.Len())
	e, _ := s.Undo()
	assert.Equal(t, Write{From: 2, To: 3, Value: "c"}, e)
	e, _ = s.Undo()
	assert.Equal(t, Write{From: 1, To: 2, Value: "b"}, e)
	_, ok := s.Undo()
	assert.False(t, ok)
}

func TestStack_Clear(t *testing.T) {
	s := NewStack(0)
	s.Commit(Write{From: 0, To: 1, Value: "a"})
	s.Commit(Write{From: 1, To: 2, Value: "b"})
	s.Undo()

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.UndoneLen())
}

func TestEditVariants(t *testing.T) {
	tests := []struct {
		edit     Edit
		kind     Kind
		from, to int
		str      string
	}{
		{Write{From: 1, To: 3, Value: "ab"}, KindWrite, 1, 3, `Write{[1-3] "ab"}`},
		{Delete{From: 0, To: 1, Value: "x"}, KindDelete, 0, 1, `Delete{[0-1] "x"}`},
		{Replace{From: 2, To: 3, Value: "X", Previous: "ell"}, KindReplace, 2, 3, `Replace{[2-3] "X" over "ell"}`},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.edit.Kind())
			from, to := tt.edit.Span()
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
			assert.Equal(t, tt.str, tt.edit.(interface{ String() string }).String())
		})
	}
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
