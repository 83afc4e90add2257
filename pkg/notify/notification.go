package notify

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the notification severity.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Notification is a single user-facing message, the equivalent of one
// toast in the browser UI.
type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates a notification of the given type.
func New(typ Type, message string) Notification {
	return Notification{
		ID:        uuid.NewString(),
		Type:      typ,
		Message:   message,
		CreatedAt: time.Now(),
	}
}

func Info(message string) Notification    { return New(TypeInfo, message) }
func Success(message string) Notification { return New(TypeSuccess, message) }
func Warning(message string) Notification { return New(TypeWarning, message) }
func Error(message string) Notification   { return New(TypeError, message) }
