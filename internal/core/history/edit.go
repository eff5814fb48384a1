// Package history provides the committed/undone edit stacks behind cancel and redo.
package history

import "fmt"

// Kind identifies the variant of an Edit.
type Kind int

const (
	KindWrite Kind = iota
	KindDelete
	KindReplace
)

func (k Kind) String() string {
	switch k {
	case KindWrite:
		return "write"
	case KindDelete:
		return "delete"
	case KindReplace:
		return "replace"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Edit is a single committed, reversible change to the buffer.
// It is implemented by Write, Delete and Replace only.
type Edit interface {
	Kind() Kind
	// Span returns the half-open rune range [from, to) the edit covers in the
	// buffer after it was applied (for Delete: before it was applied).
	Span() (from, to int)
	isEdit()
}

// Write records text typed or inserted at From.
type Write struct {
	From, To int
	Value    string
}

// Delete records text removed from [From, To).
type Delete struct {
	From, To int
	Value    string
}

// Replace records Previous being overwritten by Value.
// [From, To) is the span of Value; len(Previous) is independent of it.
type Replace struct {
	From, To int
	Value    string
	Previous string
}

func (Write) Kind() Kind   { return KindWrite }
func (Delete) Kind() Kind  { return KindDelete }
func (Replace) Kind() Kind { return KindReplace }

func (e Write) Span() (int, int)   { return e.From, e.To }
func (e Delete) Span() (int, int)  { return e.From, e.To }
func (e Replace) Span() (int, int) { return e.From, e.To }

func (Write) isEdit()   {}
func (Delete) isEdit()  {}
func (Replace) isEdit() {}

func (e Write) String() string {
	return fmt.Sprintf("Write{[%d-%d] %q}", e.From, e.To, e.Value)
}

func (e Delete) String() string {
	return fmt.Sprintf("Delete{[%d-%d] %q}", e.From, e.To, e.Value)
}

func (e Replace) String() string {
	return fmt.Sprintf("Replace{[%d-%d] %q over %q}", e.From, e.To, e.Value, e.Previous)
}
