package cursor

// Editor is the full operation surface of a text field. Both *Cursor and
// *Synchronized implement it.
type Editor interface {
	// Edits
	Write(r rune) Editor
	WriteString(s string) Editor
	Insert(s string)
	Erase() bool
	Delete() bool
	EraseWord() int
	DeleteWord() int

	// Navigation
	GoTo(pos int) int
	Move(jump int) int
	MoveLeft() int
	MoveRight() int
	GoToStart() int
	GoToEnd() int
	GoToWordStart() int
	GoToWordEnd() int

	// Selection
	SelectLeft() int
	SelectRight() int
	SelectTo(pos int) int
	SelectWordStart() int
	SelectWordEnd() int
	SelectAll() int

	// History
	Cancel() bool
	Redo() bool
	Stash()
	StashInput()
	StashDeletion()

	// Clipboard
	Copy() bool
	Cut() bool
	Paste() bool

	// Reads
	String() string
	Cursor() int
	Size() int
	Deletion() int
	HistorySize() int
	HistoryCanceledSize() int
	HasSelection() bool
	SelectionPair() (from, to int)
	SelectionSize() int
	SelectionStart() int
	SelectedText() string
	CharacterBefore() (rune, bool)
	CharacterAfter() (rune, bool)
}
