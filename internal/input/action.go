// internal/input/action.go
package input

// Action represents an operation to be performed on the text field.
type Action int

// Define the set of possible field actions.
const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit
	ActionSubmit // Enter: flush the pending edit

	// --- Cursor Movement ---
	ActionMoveLeft
	ActionMoveRight
	ActionMoveWordLeft
	ActionMoveWordRight
	ActionMoveHome
	ActionMoveEnd

	// --- Selection ---
	ActionSelectLeft
	ActionSelectRight
	ActionSelectWordLeft
	ActionSelectWordRight
	ActionSelectHome
	ActionSelectEnd
	ActionSelectAll

	// --- Text Manipulation ---
	ActionInsertRune // Requires Rune argument
	ActionEraseChar  // Backspace
	ActionDeleteChar // Delete
	ActionEraseWord
	ActionDeleteWord

	// --- History ---
	ActionCancel
	ActionRedo

	// --- Clipboard ---
	ActionCopy
	ActionCut
	ActionPaste
)

var actionNames = map[Action]string{
	ActionQuit:            "quit",
	ActionSubmit:          "submit",
	ActionMoveLeft:        "move-left",
	ActionMoveRight:       "move-right",
	ActionMoveWordLeft:    "move-word-left",
	ActionMoveWordRight:   "move-word-right",
	ActionMoveHome:        "move-home",
	ActionMoveEnd:         "move-end",
	ActionSelectLeft:      "select-left",
	ActionSelectRight:     "select-right",
	ActionSelectWordLeft:  "select-word-left",
	ActionSelectWordRight: "select-word-right",
	ActionSelectHome:      "select-home",
	ActionSelectEnd:       "select-end",
	ActionSelectAll:       "select-all",
	ActionInsertRune:      "insert-rune",
	ActionEraseChar:       "erase-char",
	ActionDeleteChar:      "delete-char",
	ActionEraseWord:       "erase-word",
	ActionDeleteWord:      "delete-word",
	ActionCancel:          "cancel",
	ActionRedo:            "redo",
	ActionCopy:            "copy",
	ActionCut:             "cut",
	ActionPaste:           "paste",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
// It carries the rune to insert for ActionInsertRune.
type ActionEvent struct {
	Action Action
	Rune   rune
}
