// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/bethropolis/stringcursor/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen tcell.Screen
}

// New creates and initializes a TUI on the controlling terminal.
func New(th *theme.Theme) (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s, th)
}

// NewWithScreen initializes s, which may be a simulation screen in tests.
func NewWithScreen(s tcell.Screen, th *theme.Theme) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	if th == nil {
		th = theme.Default()
	}
	s.SetStyle(th.GetStyle(theme.StyleDefault))
	return &TUI{screen: s}, nil
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent retrieves the next event. It returns nil once the screen is closed.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// PostEvent queues ev for PollEvent.
func (t *TUI) PostEvent(ev tcell.Event) error {
	return t.screen.PostEvent(ev)
}

// Clear clears the entire screen.
func (t *TUI) Clear() {
	t.screen.Clear()
}

// Show makes the changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Sync redraws the whole terminal, used after a resize.
func (t *TUI) Sync() {
	t.screen.Sync()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
