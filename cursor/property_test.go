package cursor

import (
	"testing"
	"unicode/utf8"

	"pgregory.net/rapid"
)

var propertyOps = []struct {
	name string
	run  func(t *rapid.T, c *Cursor)
}{
	{"write", func(t *rapid.T, c *Cursor) {
		c.Write(rapid.SampledFrom([]rune("ab .é")).Draw(t, "rune"))
	}},
	{"insert", func(t *rapid.T, c *Cursor) {
		c.Insert(rapid.StringMatching(`[a-z ]{0,4}`).Draw(t, "insert"))
	}},
	{"erase", func(_ *rapid.T, c *Cursor) { c.Erase() }},
	{"delete", func(_ *rapid.T, c *Cursor) { c.Delete() }},
	{"eraseWord", func(_ *rapid.T, c *Cursor) { c.EraseWord() }},
	{"deleteWord", func(_ *rapid.T, c *Cursor) { c.DeleteWord() }},
	{"moveLeft", func(_ *rapid.T, c *Cursor) { c.MoveLeft() }},
	{"moveRight", func(_ *rapid.T, c *Cursor) { c.MoveRight() }},
	{"goTo", func(t *rapid.T, c *Cursor) {
		c.GoTo(rapid.IntRange(-2, c.Size()+2).Draw(t, "pos"))
	}},
	{"goToWordStart", func(_ *rapid.T, c *Cursor) { c.GoToWordStart() }},
	{"goToWordEnd", func(_ *rapid.T, c *Cursor) { c.GoToWordEnd() }},
	{"selectLeft", func(_ *rapid.T, c *Cursor) { c.SelectLeft() }},
	{"selectRight", func(_ *rapid.T, c *Cursor) { c.SelectRight() }},
	{"selectWordStart", func(_ *rapid.T, c *Cursor) { c.SelectWordStart() }},
	{"selectAll", func(_ *rapid.T, c *Cursor) { c.SelectAll() }},
	{"cancel", func(_ *rapid.T, c *Cursor) { c.Cancel() }},
	{"redo", func(_ *rapid.T, c *Cursor) { c.Redo() }},
}

func checkInvariants(t *rapid.T, c *Cursor) {
	size := c.Size()
	if n := utf8.RuneCountInString(c.String()); n != size {
		t.Fatalf("size %d, text has %d runes", size, n)
	}
	if c.Cursor() < 0 || c.Cursor() > size {
		t.Fatalf("cursor %d outside [0, %d]", c.Cursor(), size)
	}
	from, to := c.SelectionPair()
	if from < 0 || to > size || from > to {
		t.Fatalf("selection (%d, %d) outside [0, %d]", from, to, size)
	}
	if c.HasSelection() != (to > from) {
		t.Fatalf("selection active %v with bounds (%d, %d)", c.HasSelection(), from, to)
	}
}

func TestProperty_CancelAllRedoAll(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initial := rapid.StringMatching(`[a-z .]{0,12}`).Draw(t, "initial")
		c := New(initial)

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			op := rapid.SampledFrom(propertyOps).Draw(t, "op")
			op.run(t, c)
			checkInvariants(t, c)
		}
		c.Stash()
		final := c.String()
		committed := c.HistorySize()

		for c.Cancel() {
			checkInvariants(t, c)
		}
		if c.String() != initial {
			t.Fatalf("cancel all: got %q, want %q", c.String(), initial)
		}
		if c.HistorySize() != 0 {
			t.Fatalf("history not empty after cancel all: %d", c.HistorySize())
		}

		for i := 0; i < committed; i++ {
			if !c.Redo() {
				t.Fatalf("redo %d of %d failed", i+1, committed)
			}
			checkInvariants(t, c)
		}
		if c.String() != final {
			t.Fatalf("redo all: got %q, want %q", c.String(), final)
		}
	})
}

func TestProperty_CancelRedoRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New(rapid.StringMatching(`[a-z ]{0,8}`).Draw(t, "initial"))
		for _, r := range rapid.StringMatching(`[a-z .]{1,20}`).Draw(t, "typed") {
			c.Write(r)
		}
		c.Stash()
		text, cur := c.String(), c.Cursor()

		if !c.Cancel() {
			t.Fatalf("nothing to cancel after typing")
		}
		if !c.Redo() {
			t.Fatalf("nothing to redo after cancel")
		}
		if c.String() != text || c.Cursor() != cur {
			t.Fatalf("round trip: got %q@%d, want %q@%d", c.String(), c.Cursor(), text, cur)
		}
	})
}
