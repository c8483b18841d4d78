package notify

import "time"

// Toast is a transient notification: the latest message stays visible
// until its deadline. A newer message replaces the old one and restarts
// the timer.
type Toast struct {
	message  string
	deadline time.Time
	duration time.Duration
	seq      int
}

// NewToast creates a toast that hides messages after d.
func NewToast(d time.Duration) *Toast {
	if d <= 0 {
		d = DefaultToastDuration
	}
	return &Toast{duration: d}
}

// Show displays message starting at now and returns the sequence number
// of this message. The number is passed back to Expire so that a timer
// started for an older message cannot hide a newer one.
func (t *Toast) Show(message string, now time.Time) int {
	t.seq++
	t.message = message
	t.deadline = now.Add(t.duration)
	return t.seq
}

// Expire hides the toast if seq still identifies the current message.
func (t *Toast) Expire(seq int) {
	if seq == t.seq {
		t.message = ""
	}
}

// Message returns the visible message at now, or "".
func (t *Toast) Message(now time.Time) string {
	if t.message == "" || !now.Before(t.deadline) {
		return ""
	}
	return t.message
}

// Duration returns the auto-dismiss delay.
func (t *Toast) Duration() time.Duration {
	return t.duration
}
