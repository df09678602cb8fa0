// Package app provides application state, events, and the Fyne theme.
package app

import (
	"sync"

	"swatchbook/internal/palette"
)

// Application identity, shown in the title bar and the empty-canvas logo.
const (
	Name   = "Swatchbook"
	Domain = "swatchbook.app"
	ID     = "app.swatchbook"
)

// State holds the open document and routes application events.
type State struct {
	mu sync.RWMutex

	// Document
	Doc     *palette.Document
	DocPath string

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventDocumentLoaded EventType = iota
	EventDocumentSaved
	EventHistoryChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates application state with an empty palette.
func NewState() *State {
	return &State{
		Doc:       palette.New(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}
