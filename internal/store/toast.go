package store

import (
	"sync"
	"time"
)

// DefaultToastDuration is how long a toast stays visible.
const DefaultToastDuration = 3 * time.Second

// Toast is the single tracked notification. The message text may outlive the
// visible flag; rendering only follows Visible.
type Toast struct {
	Message string `json:"message"`
	Visible bool   `json:"visible"`
}

// Toaster tracks one toast at a time. Showing a new toast overwrites the
// pending one and resets the dismissal delay; the superseded timer's effect
// is ignored via the sequence counter.
type Toaster struct {
	mu       sync.Mutex
	toast    Toast
	seq      uint64
	duration time.Duration
}

// NewToaster returns a toaster with the given auto-dismiss delay. A
// non-positive delay falls back to DefaultToastDuration.
func NewToaster(duration time.Duration) *Toaster {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	return &Toaster{duration: duration}
}

// Show sets the active message, marks it visible and schedules the dismissal.
func (t *Toaster) Show(message string) {
	t.mu.Lock()
	t.seq++
	seq := t.seq
	t.toast = Toast{Message: message, Visible: true}
	t.mu.Unlock()

	time.AfterFunc(t.duration, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.seq != seq {
			return // superseded by a later toast
		}
		t.toast.Visible = false
	})
}

// Current returns the tracked toast.
func (t *Toaster) Current() Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.toast
}
