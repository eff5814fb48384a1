package cursor

import (
	"errors"
	"testing"

	"github.com/bethropolis/stringcursor/internal/core/clipboard"
	"github.com/bethropolis/stringcursor/internal/core/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingClipboard struct{ err error }

func (f failingClipboard) ReadText() (string, error) { return "", f.err }
func (f failingClipboard) WriteText(string) error    { return f.err }

func TestCopy(t *testing.T) {
	reg := clipboard.NewMemory()
	c := New("hello world", WithClipboard(reg))

	assert.False(t, c.Copy(), "nothing selected")

	c.SelectWordStart()
	require.True(t, c.Copy())
	got, err := reg.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "world", got)
	assert.Equal(t, "hello world", c.String())
	assert.True(t, c.HasSelection(), "copy keeps the selection")
}

func TestCut(t *testing.T) {
	reg := clipboard.NewMemory()
	c := New("hello world", WithClipboard(reg))
	c.GoToStart()
	c.SelectWordEnd()

	require.True(t, c.Cut())
	assert.Equal(t, " world", c.String())
	assert.Equal(t, 0, c.Cursor())
	assert.False(t, c.HasSelection())
	got, _ := reg.ReadText()
	assert.Equal(t, "hello", got)

	assert.Equal(t, 1, c.HistorySize())
	require.True(t, c.Cancel())
	assert.Equal(t, "hello world", c.String())
}

func TestPaste(t *testing.T) {
	reg := clipboard.NewMemory()
	c := New("ab", WithClipboard(reg))

	assert.False(t, c.Paste(), "empty register")

	require.NoError(t, reg.WriteText("xyz"))
	c.GoTo(1)
	require.True(t, c.Paste())
	assert.Equal(t, "axyzb", c.String())
	assert.Equal(t, 4, c.Cursor())
	assert.Equal(t, 1, c.HistorySize())

	c.SelectAll()
	require.True(t, c.Paste())
	assert.Equal(t, "xyz", c.String())
	require.True(t, c.Cancel())
	assert.Equal(t, "axyzb", c.String())
	assert.Equal(t, "axyzb", c.SelectedText(), "cancelled replace reselects")
}

func TestPaste_RecordKinds(t *testing.T) {
	reg := clipboard.NewMemory()
	require.NoError(t, reg.WriteText("Q"))
	c, commits := recordCommits("abc", WithClipboard(reg))

	c.Paste()
	c.SelectLeft()
	c.Paste()

	require.Len(t, *commits, 2)
	assert.Equal(t, history.Write{From: 3, To: 4, Value: "Q"}, (*commits)[0])
	assert.Equal(t, history.Replace{From: 3, To: 4, Value: "Q", Previous: "Q"}, (*commits)[1])
}

func TestClipboard_Missing(t *testing.T) {
	c := New("text")
	c.SelectAll()

	assert.False(t, c.Copy())
	assert.False(t, c.Cut())
	assert.False(t, c.Paste())
	assert.Equal(t, "text", c.String())
	assert.True(t, c.HasSelection())
}

func TestClipboard_Failing(t *testing.T) {
	c := New("text", WithClipboard(failingClipboard{err: errors.New("boom")}))
	c.SelectAll()

	assert.False(t, c.Copy())
	assert.False(t, c.Cut(), "no delete without a successful copy")
	assert.Equal(t, "text", c.String())
	assert.False(t, c.Paste())
	assert.Equal(t, 0, c.HistorySize())
}
