// Package notify delivers short user-facing outcome messages.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Messages sent after repository operations.
const (
	MsgCreated       = "Flashcard created successfully!"
	MsgUpdated       = "Flashcard updated successfully!"
	MsgDeleted       = "Flashcard deleted successfully!"
	MsgBulkDeleted   = "Selected flashcards deleted!"
	MsgImported      = "JSON imported successfully!"
	MsgExported      = "Flashcards exported successfully!"
	MsgNothingExport = "No flashcards to export."
	MsgEndOfSet      = "You've reached the end of this flashcard set!"
)

// DefaultToastDuration время показа toast до автоматического скрытия.
const DefaultToastDuration = 3 * time.Second

// Notifier surfaces an outcome to the user.
type Notifier interface {
	Notify(message string)
}

// Func adapts a function to Notifier.
type Func func(message string)

// Notify calls f(message).
func (f Func) Notify(message string) {
	f(message)
}

// Discard drops every message.
var Discard Notifier = Func(func(string) {})

// Writer prints each message on its own line. Используется в CLI.
type Writer struct {
	W io.Writer
}

// Notify writes message followed by a newline.
func (w Writer) Notify(message string) {
	fmt.Fprintln(w.W, message)
}

// Recorder keeps every message. Удобен в тестах.
type Recorder struct {
	messages []string
	mu       sync.Mutex
}

// Notify appends message.
func (r *Recorder) Notify(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

// Messages returns a copy of the recorded messages.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// Last returns the most recent message or "".
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

// Queue buffers messages until Drain. TUI забирает их после каждого действия.
type Queue struct {
	pending []string
	mu      sync.Mutex
}

// Notify appends message to the queue.
func (q *Queue) Notify(message string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, message)
}

// Drain returns the buffered messages and empties the queue.
func (q *Queue) Drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}
