package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCursor_Session drives one cursor through a full editing session, each
// step depending on the state the previous one left behind.
func TestCursor_Session(t *testing.T) {
	c := New("")

	t.Run("empty getters", func(t *testing.T) {
		assert.Equal(t, 0, c.Cursor())
		assert.Equal(t, 0, c.Deletion())
		assert.Equal(t, 0, c.HistorySize())
		assert.Equal(t, 0, c.HistoryCanceledSize())
		assert.Equal(t, 0, c.SelectionSize())
		assert.Equal(t, 0, c.Size())
		assert.Equal(t, -1, c.SelectionStart())
		assert.Equal(t, "", c.SelectedText())
		assertPair(t, c, 0, 0)
	})

	t.Run("erasers on empty text", func(t *testing.T) {
		assert.False(t, c.Erase())
		assert.Equal(t, 0, c.EraseWord())
		assert.False(t, c.Delete())
		assert.Equal(t, 0, c.DeleteWord())
		assert.Equal(t, 0, c.HistorySize())
	})

	t.Run("write", func(t *testing.T) {
		c.Write('a')
		assert.Equal(t, 1, c.Cursor())
		assert.Equal(t, 1, c.Size())
		assertPair(t, c, 1, 1)
		assert.Equal(t, "a", c.String())
	})

	t.Run("move", func(t *testing.T) {
		assert.Equal(t, 1, c.MoveRight())
		assert.Equal(t, 0, c.MoveLeft())
		assert.Equal(t, 0, c.MoveLeft())
		assert.Equal(t, 1, c.MoveRight())
		assert.Equal(t, 1, c.GoToWordEnd())
		assert.Equal(t, 0, c.GoToWordStart())
		assert.Equal(t, 0, c.GoToStart())
		assert.Equal(t, 1, c.GoToEnd())
	})

	t.Run("history", func(t *testing.T) {
		assert.Equal(t, 1, c.HistorySize())
		c.Write(' ').Write(' ').Write('a')
		assert.Equal(t, 1, c.HistorySize())
		c.Write(' ')
		assert.Equal(t, 2, c.HistorySize())
		assert.Equal(t, 0, c.HistoryCanceledSize())
		c.Stash()
		assert.Equal(t, 3, c.HistorySize())
		assert.Equal(t, "a  a ", c.String())

		require.True(t, c.Cancel())
		assert.Equal(t, 2, c.HistorySize())
		assert.Equal(t, 1, c.HistoryCanceledSize())
		assert.Equal(t, "a  a", c.String())

		require.True(t, c.Cancel())
		assert.Equal(t, 1, c.HistorySize())
		assert.Equal(t, 2, c.HistoryCanceledSize())
		assert.Equal(t, "a", c.String())

		require.True(t, c.Redo())
		assert.Equal(t, 2, c.HistorySize())
		assert.Equal(t, 1, c.HistoryCanceledSize())
		assert.Equal(t, "a  a", c.String())
		assert.Equal(t, "  a", c.SelectedText())

		c.MoveRight()
		c.Write(' ')
		assert.Equal(t, 2, c.HistorySize())
		assert.Equal(t, 0, c.HistoryCanceledSize())
		assert.Equal(t, "a  a ", c.String())
	})

	t.Run("select", func(t *testing.T) {
		assert.Equal(t, 1, c.SelectLeft())
		assert.Equal(t, 1, c.SelectionSize())
		assert.Equal(t, 4, c.Cursor())
		assert.True(t, c.HasSelection())

		assert.Equal(t, 0, c.SelectRight())
		assert.Equal(t, 5, c.Cursor())
		assert.False(t, c.HasSelection())

		assert.Equal(t, 2, c.SelectWordStart())
		assert.Equal(t, "a ", c.SelectedText())
		assert.Equal(t, 3, c.Cursor())
		assertPair(t, c, 3, 5)

		c.SelectTo(0)
		assert.Equal(t, 0, c.Cursor())
		assert.Equal(t, 5, c.Size())
		assert.Equal(t, "a  a ", c.SelectedText())
		assertPair(t, c, 0, 5)

		c.MoveRight()
		assert.Equal(t, 5, c.Cursor())
		assert.Empty(t, c.SelectedText())
	})

	t.Run("replace", func(t *testing.T) {
		c.GoToStart()
		c.SelectTo(c.Size())
		require.True(t, c.HasSelection())
		assert.Equal(t, 5, c.SelectionSize())

		c.Write(' ')
		assert.Equal(t, 1, c.Cursor())
		assert.Equal(t, 1, c.Size())
		assert.Equal(t, " ", c.String())
		assert.Equal(t, 3, c.HistorySize())

		c.Cancel()
		assert.Equal(t, 1, c.HistoryCanceledSize())
		assert.Equal(t, 5, c.Size())
		assert.Equal(t, 5, c.SelectionSize())
		assert.Equal(t, 5, c.Cursor())
		assert.Equal(t, "a  a ", c.SelectedText())

		c.WriteString("a  a ")
		assert.Equal(t, 5, c.HistorySize())
		assert.Equal(t, 5, c.SelectAll())
	})
}

func TestNew_InitialText(t *testing.T) {
	c := New("héllo")

	assert.Equal(t, "héllo", c.String())
	assert.Equal(t, 5, c.Size())
	assert.Equal(t, 5, c.Cursor())
	assert.Equal(t, 0, c.HistorySize())
	assert.False(t, c.Cancel())
}

func TestCursor_CharacterAround(t *testing.T) {
	c := New("ab")

	r, ok := c.CharacterBefore()
	assert.True(t, ok)
	assert.Equal(t, 'b', r)
	_, ok = c.CharacterAfter()
	assert.False(t, ok)

	c.GoToStart()
	_, ok = c.CharacterBefore()
	assert.False(t, ok)
	r, ok = c.CharacterAfter()
	assert.True(t, ok)
	assert.Equal(t, 'a', r)
}

func TestCursor_ReadsAreIdempotent(t *testing.T) {
	c := New("hello world")
	c.GoTo(5)
	c.WriteString(" big")
	c.Erase()

	snapshot := func() []interface{} {
		from, to := c.SelectionPair()
		before, _ := c.CharacterBefore()
		after, _ := c.CharacterAfter()
		return []interface{}{
			c.String(), c.Cursor(), c.Size(), c.Deletion(),
			c.HistorySize(), c.HistoryCanceledSize(),
			c.HasSelection(), from, to, c.SelectionSize(), c.SelectionStart(),
			c.SelectedText(), before, after,
		}
	}

	first := snapshot()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, snapshot())
	}
	assert.Equal(t, 1, c.HistorySize(), "pending batches must stay pending")
	assert.Equal(t, 1, c.Deletion())
}

func assertPair(t *testing.T, c Editor, from, to int) {
	t.Helper()
	gotFrom, gotTo := c.SelectionPair()
	assert.Equal(t, from, gotFrom, "selection from")
	assert.Equal(t, to, gotTo, "selection to")
}
