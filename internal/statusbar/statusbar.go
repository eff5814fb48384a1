// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/stringcursor/internal/theme"
	"github.com/bethropolis/stringcursor/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StylePending   tcell.Style // Used while a deletion batch is staged
	StyleMessage   tcell.Style // Style for temporary messages
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StylePending:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// ConfigFromTheme takes the status bar styles from th.
func ConfigFromTheme(th *theme.Theme, timeout time.Duration) Config {
	return Config{
		StyleDefault:   th.GetStyle(theme.StyleStatusBar),
		StylePending:   th.GetStyle(theme.StyleStatusBarPending),
		StyleMessage:   th.GetStyle(theme.StyleStatusBarMessage),
		MessageTimeout: timeout,
	}
}

// Info is the editor state shown on the status line.
type Info struct {
	Cursor    int
	Size      int
	Selection int // selected runes, 0 without a selection
	History   int // committed edits
	Undone    int // edits available to redo
	Deletion  int // runes in the staged deletion batch
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	info Info

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
		now:    time.Now,
	}
}

// SetInfo replaces the displayed editor state.
func (sb *StatusBar) SetInfo(info Info) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.info = info
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Text returns the line Draw would show and its style. An expired
// temporary message is dropped.
func (sb *StatusBar) Text() (string, tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.tempMessageTime.IsZero() {
		if sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout {
			return sb.tempMessage, sb.config.StyleMessage
		}
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	style := sb.config.StyleDefault
	if sb.info.Deletion > 0 {
		style = sb.config.StylePending
	}
	return sb.defaultText(), style
}

// defaultText builds the status line. Positions are shown 1-based.
// Caller holds the lock.
func (sb *StatusBar) defaultText() string {
	in := sb.info
	text := fmt.Sprintf("Col %d/%d", in.Cursor+1, in.Size+1)
	if in.Selection > 0 {
		text += fmt.Sprintf(" -- Sel %d", in.Selection)
	}
	text += fmt.Sprintf(" -- Undo %d Redo %d", in.History, in.Undone)
	if in.Deletion > 0 {
		text += fmt.Sprintf(" [Deleting %d]", in.Deletion)
	}
	return text
}

// Draw renders the status bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1
	text, style := sb.Text()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
	tui.DrawString(screen, 0, y, width, text, style)
}
