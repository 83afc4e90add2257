package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Notifier delivers notifications to the user. The auth service calls it
// after every state mutation; implementations must not block for long and
// must not fail the calling flow — delivery is fire-and-forget from the
// caller's point of view.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NoOp discards all notifications.
type NoOp struct{}

func (NoOp) Notify(ctx context.Context, n Notification) {}

// SlogNotifier logs notifications through a structured logger. The default
// sink for headless processes.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing to the given logger; nil falls
// back to slog.Default.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogNotifier{logger: logger}
}

func (s *SlogNotifier) Notify(ctx context.Context, n Notification) {
	level := slog.LevelInfo
	switch n.Type {
	case TypeWarning:
		level = slog.LevelWarn
	case TypeError:
		level = slog.LevelError
	}
	s.logger.Log(ctx, level, n.Message,
		slog.String("notification_id", n.ID),
		slog.String("type", string(n.Type)),
	)
}

// Memory records notifications in order of delivery. Test double.
type Memory struct {
	mu            sync.Mutex
	notifications []Notification
}

// NewMemory creates an empty recording notifier.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Notify(ctx context.Context, n Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, n)
}

// Notifications returns a copy of everything delivered so far.
func (m *Memory) Notifications() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Notification, len(m.notifications))
	copy(out, m.notifications)
	return out
}

// Last returns the most recent notification, or false when none were sent.
func (m *Memory) Last() (Notification, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.notifications) == 0 {
		return Notification{}, false
	}
	return m.notifications[len(m.notifications)-1], true
}
