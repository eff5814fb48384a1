// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/stringcursor/internal/logger"
)

// Handler defines the function signature for event subscribers.
// It returns true if the event was consumed; dispatch stops there.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler // Map event types to a list of handlers
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.Debugf("Event Manager: Handler subscribed to type %v", eventType)
}

// Dispatch sends an event to all registered handlers for its type.
// Handlers run synchronously on the caller's goroutine.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	event := Event{
		Type: eventType,
		Data: data,
	}

	m.mu.RLock()
	handlers := m.handlers[eventType]
	// Copy so a handler may subscribe during dispatch.
	handlersCopy := make([]Handler, len(handlers))
	copy(handlersCopy, handlers)
	m.mu.RUnlock()

	if len(handlersCopy) == 0 {
		return
	}

	logger.Debugf("Event Manager: Dispatching event type %v to %d handler(s)", eventType, len(handlersCopy))

	for _, handler := range handlersCopy {
		if handler(event) {
			break
		}
	}
}
