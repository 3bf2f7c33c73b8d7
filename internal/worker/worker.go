// Package worker runs long-running tasks on their own goroutine and hands
// progress back to the UI thread through a channel. The worker never
// touches UI state; the consumer drains updates in emission order.
package worker

import "context"

// Update is a progress/status pair emitted by a running task.
type Update struct {
	Progress float64
	Status   string
}

// Result is the single terminal report of a task: either a payload or an
// error, delivered exactly once after the update stream closes.
type Result struct {
	Payload interface{}
	Err     error
}

// Task is a unit of long-running work.
type Task interface {
	Name() string
	Run(ctx context.Context, r *Reporter) (interface{}, error)
}

// Reporter is handed to a task so it can emit updates without knowing
// anything about the UI. Sends preserve emission order.
type Reporter struct {
	updates  chan Update
	progress float64
	status   string
}

func newReporter(buffer int) *Reporter {
	return &Reporter{updates: make(chan Update, buffer)}
}

// Progress reports task progress as a fraction in [0, 1].
func (r *Reporter) Progress(fraction float64) {
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	r.progress = fraction
	r.send()
}

// Status reports a human-readable status message.
func (r *Reporter) Status(message string) {
	r.status = message
	r.send()
}

func (r *Reporter) send() {
	r.updates <- Update{Progress: r.progress, Status: r.status}
}

func (r *Reporter) close() {
	close(r.updates)
}
