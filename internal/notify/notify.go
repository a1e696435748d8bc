// Package notify implements the transient notification surface: a message
// with a severity level and an auto-dismiss duration, queued per session
// and drained into the next rendered page.
package notify

import (
	"context"
	"encoding/json"
	"log"

	"github.com/Rifat770-coder/E-Commerce-Store/internal/session"
)

// Level is a notification severity.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// DefaultDurationMS is the auto-dismiss timer in milliseconds.
const DefaultDurationMS = 4000

// Notification is one on-screen message.
type Notification struct {
	Level      Level  `json:"level"`
	Message    string `json:"message"`
	DurationMS int    `json:"duration_ms"`
}

// Flasher queues notifications for a session and drains them on render.
type Flasher struct {
	store *session.Store
}

// NewFlasher wraps the session store.
func NewFlasher(store *session.Store) *Flasher {
	return &Flasher{store: store}
}

// Show queues a notification. Failures are logged and swallowed; a lost
// notification never fails the page that triggered it.
func (f *Flasher) Show(ctx context.Context, sessionID string, level Level, message string) {
	n := Notification{Level: level, Message: message, DurationMS: DefaultDurationMS}
	data, err := json.Marshal(n)
	if err != nil {
		log.Printf("[Notify] Failed to marshal notification: %v", err)
		return
	}
	if err := f.store.PushFlash(ctx, sessionID, data); err != nil {
		log.Printf("[Notify] Failed to queue notification: %v", err)
	}
}

// Success queues a success-level notification.
func (f *Flasher) Success(ctx context.Context, sessionID, message string) {
	f.Show(ctx, sessionID, LevelSuccess, message)
}

// Error queues an error-level notification.
func (f *Flasher) Error(ctx context.Context, sessionID, message string) {
	f.Show(ctx, sessionID, LevelError, message)
}

// Warning queues a warning-level notification.
func (f *Flasher) Warning(ctx context.Context, sessionID, message string) {
	f.Show(ctx, sessionID, LevelWarning, message)
}

// Info queues an info-level notification.
func (f *Flasher) Info(ctx context.Context, sessionID, message string) {
	f.Show(ctx, sessionID, LevelInfo, message)
}

// Pop drains the session's queued notifications in arrival order.
func (f *Flasher) Pop(ctx context.Context, sessionID string) []Notification {
	raw := f.store.PopFlashes(ctx, sessionID)
	if len(raw) == 0 {
		return nil
	}
	out := make([]Notification, 0, len(raw))
	for _, data := range raw {
		var n Notification
		if err := json.Unmarshal(data, &n); err != nil {
			log.Printf("[Notify] Dropping malformed notification: %v", err)
			continue
		}
		out = append(out, n)
	}
	return out
}
