// Package clipboard provides the copy/paste collaborators used by the cursor:
// the host clipboard and an in-process register.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/stringcursor/internal/logger"
)

var (
	// ErrUnavailable is returned when the host has no usable clipboard.
	ErrUnavailable = errors.New("system clipboard unavailable")
	// ErrEmpty is returned when there is nothing to paste.
	ErrEmpty = errors.New("clipboard is empty")
)

// Provider reads and writes plain text.
type Provider interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// New returns the host clipboard when useSystem is set and the platform
// supports it, and an in-process register otherwise.
func New(useSystem bool) Provider {
	if useSystem {
		if !clipboard.Unsupported {
			return &System{}
		}
		logger.Warnf("Clipboard: system clipboard unsupported, using internal register")
	}
	return NewMemory()
}

// System is backed by the host clipboard.
type System struct{}

// ReadText returns the host clipboard contents.
func (s *System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read system clipboard: %w", err)
	}
	if text == "" {
		return "", ErrEmpty
	}
	logger.Debugf("Clipboard: read %d bytes from system clipboard", len(text))
	return text, nil
}

// WriteText replaces the host clipboard contents.
func (s *System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	logger.Debugf("Clipboard: wrote %d bytes to system clipboard", len(text))
	return nil
}

// Memory is an in-process register, safe for concurrent use.
type Memory struct {
	mu   sync.Mutex
	text string
	set  bool
}

// NewMemory creates an empty register.
func NewMemory() *Memory {
	return &Memory{}
}

// ReadText returns the last written text.
func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set || m.text == "" {
		return "", ErrEmpty
	}
	return m.text, nil
}

// WriteText stores text in the register.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.set = true
	logger.Debugf("Clipboard: yanked %d bytes", len(text))
	return nil
}
