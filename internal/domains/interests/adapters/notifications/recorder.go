package notifications

import (
	"context"
	"sync"

	"github.com/havendogs/api-server/internal/domains/interests/ports"
)

var _ ports.Notifier = (*Recorder)(nil)

// Recorder captures notifications in memory. It backs tests and local runs
// where no SendGrid key is configured.
type Recorder struct {
	mu   sync.Mutex
	sent []ports.StatusNotification
	fail error
}

// NewRecorder constructs an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// FailWith makes every subsequent send return err.
func (r *Recorder) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = err
}

// SendStatusUpdate records the notification.
func (r *Recorder) SendStatusUpdate(_ context.Context, notification ports.StatusNotification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	r.sent = append(r.sent, notification)
	return nil
}

// Sent returns a copy of everything recorded so far.
func (r *Recorder) Sent() []ports.StatusNotification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ports.StatusNotification{}, r.sent...)
}
