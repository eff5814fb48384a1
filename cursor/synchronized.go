package cursor

import "sync"

// Synchronized serializes every call, reads included, to a wrapped Editor.
// Event handlers registered on the wrapped cursor run under the lock and
// must not call back into the Synchronized value.
type Synchronized struct {
	mu sync.Mutex
	ed Editor
}

// NewSynchronized wraps ed behind a mutex.
func NewSynchronized(ed Editor) *Synchronized {
	return &Synchronized{ed: ed}
}

// Do runs fn with exclusive access to the wrapped editor, for compound
// operations that must not interleave with other goroutines.
func (s *Synchronized) Do(fn func(ed Editor)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ed)
}

func (s *Synchronized) Write(r rune) Editor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ed.Write(r)
	return s
}

func (s *Synchronized) WriteString(str string) Editor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ed.WriteString(str)
	return s
}

func (s *Synchronized) Insert(str string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ed.Insert(str)
}

func (s *Synchronized) Erase() bool        { return lockedBool(s, Editor.Erase) }
func (s *Synchronized) Delete() bool       { return lockedBool(s, Editor.Delete) }
func (s *Synchronized) Cancel() bool       { return lockedBool(s, Editor.Cancel) }
func (s *Synchronized) Redo() bool         { return lockedBool(s, Editor.Redo) }
func (s *Synchronized) Copy() bool         { return lockedBool(s, Editor.Copy) }
func (s *Synchronized) Cut() bool          { return lockedBool(s, Editor.Cut) }
func (s *Synchronized) Paste() bool        { return lockedBool(s, Editor.Paste) }
func (s *Synchronized) HasSelection() bool { return lockedBool(s, Editor.HasSelection) }

func (s *Synchronized) EraseWord() int           { return lockedInt(s, Editor.EraseWord) }
func (s *Synchronized) DeleteWord() int          { return lockedInt(s, Editor.DeleteWord) }
func (s *Synchronized) MoveLeft() int            { return lockedInt(s, Editor.MoveLeft) }
func (s *Synchronized) MoveRight() int           { return lockedInt(s, Editor.MoveRight) }
func (s *Synchronized) GoToStart() int           { return lockedInt(s, Editor.GoToStart) }
func (s *Synchronized) GoToEnd() int             { return lockedInt(s, Editor.GoToEnd) }
func (s *Synchronized) GoToWordStart() int       { return lockedInt(s, Editor.GoToWordStart) }
func (s *Synchronized) GoToWordEnd() int         { return lockedInt(s, Editor.GoToWordEnd) }
func (s *Synchronized) SelectLeft() int          { return lockedInt(s, Editor.SelectLeft) }
func (s *Synchronized) SelectRight() int         { return lockedInt(s, Editor.SelectRight) }
func (s *Synchronized) SelectWordStart() int     { return lockedInt(s, Editor.SelectWordStart) }
func (s *Synchronized) SelectWordEnd() int       { return lockedInt(s, Editor.SelectWordEnd) }
func (s *Synchronized) SelectAll() int           { return lockedInt(s, Editor.SelectAll) }
func (s *Synchronized) Cursor() int              { return lockedInt(s, Editor.Cursor) }
func (s *Synchronized) Size() int                { return lockedInt(s, Editor.Size) }
func (s *Synchronized) Deletion() int            { return lockedInt(s, Editor.Deletion) }
func (s *Synchronized) HistorySize() int         { return lockedInt(s, Editor.HistorySize) }
func (s *Synchronized) HistoryCanceledSize() int { return lockedInt(s, Editor.HistoryCanceledSize) }
func (s *Synchronized) SelectionSize() int       { return lockedInt(s, Editor.SelectionSize) }
func (s *Synchronized) SelectionStart() int      { return lockedInt(s, Editor.SelectionStart) }

func (s *Synchronized) GoTo(pos int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ed.GoTo(pos)
}

func (s *Synchronized) Move(jump int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ed.Move(jump)
}

func (s *Synchronized) SelectTo(pos int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ed.SelectTo(pos)
}

func (s *Synchronized) Stash()         { locked(s, Editor.Stash) }
func (s *Synchronized) StashInput()    { locked(s, Editor.StashInput) }
func (s *Synchronized) StashDeletion() { locked(s, Editor.StashDeletion) }

func (s *Synchronized) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ed.String()
}

func (s *Synchronized) SelectedText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ed.SelectedText()
}

func (s *Synchronized) SelectionPair() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ed.SelectionPair()
}

func (s *Synchronized) CharacterBefore() (rune, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ed.CharacterBefore()
}

func (s *Synchronized) CharacterAfter() (rune, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ed.CharacterAfter()
}

func locked(s *Synchronized, fn func(Editor)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ed)
}

func lockedBool(s *Synchronized, fn func(Editor) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.ed)
}

func lockedInt(s *Synchronized, fn func(Editor) int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.ed)
}

var (
	_ Editor = (*Cursor)(nil)
	_ Editor = (*Synchronized)(nil)
)
