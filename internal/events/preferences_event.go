package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

const (
	PreferencesLoaded   = "events:preferences:loaded"
	PreferencesSaved    = "events:preferences:saved"
	PreferencesError    = "events:preferences:error"
	PreferencesLocation = "events:preferences:location"
)

// PreferencesEvent is the payload sent to the frontend after a store
// operation. It never carries the stored record.
type PreferencesEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Message   string    `json:"message"`
	Path      string    `json:"path,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func CreatePreferencesEvent(eventType EventType, message string) PreferencesEvent {
	return PreferencesEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithPath returns a copy of the event annotated with the preferences path.
func (e PreferencesEvent) WithPath(path string) PreferencesEvent {
	e.Path = path
	return e
}

// NewInfo creates an info PreferencesEvent.
func NewInfo(message string) PreferencesEvent {
	return CreatePreferencesEvent(EventInfo, message)
}

// NewWarn creates a warn PreferencesEvent.
func NewWarn(message string) PreferencesEvent {
	return CreatePreferencesEvent(EventWarn, message)
}

// NewError creates an error PreferencesEvent.
func NewError(message string) PreferencesEvent {
	return CreatePreferencesEvent(EventError, message)
}

// NewSuccess creates a success PreferencesEvent.
func NewSuccess(message string) PreferencesEvent {
	return CreatePreferencesEvent(EventSuccess, message)
}
