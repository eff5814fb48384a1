// internal/event/event.go
package event

import "github.com/bethropolis/stringcursor/internal/core/history"

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Field events
	TypeEditCommitted // A batch or edit was committed to history
	TypeEditCanceled  // Cancel reverted an edit
	TypeEditRedone    // Redo re-applied an edit
	TypeCursorMoved   // Navigation moved the cursor

	// Application events, dispatched outside the editor lock
	TypeFieldUpdated   // A key action was applied to the field
	TypeFieldSubmitted // Enter was pressed

	// Application lifecycle events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

func (t Type) String() string {
	switch t {
	case TypeEditCommitted:
		return "EditCommitted"
	case TypeEditCanceled:
		return "EditCanceled"
	case TypeEditRedone:
		return "EditRedone"
	case TypeCursorMoved:
		return "CursorMoved"
	case TypeFieldUpdated:
		return "FieldUpdated"
	case TypeFieldSubmitted:
		return "FieldSubmitted"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// EditData carries the edit record a history event refers to.
type EditData struct {
	Edit history.Edit
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	Position int
}

// FieldData is a snapshot of the field after an action.
type FieldData struct {
	Action string
	Text   string
	Cursor int
}

// AppQuitData carries the final field text.
type AppQuitData struct {
	Text string
}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
