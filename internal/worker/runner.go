package worker

import (
	"context"

	"contract-explorer/internal/logger"
)

const updateBuffer = 16

// Runner starts tasks on their own goroutine and exposes their update and
// result channels to the UI side.
type Runner struct {
	logger logger.Logger
}

// NewRunner creates a task runner.
func NewRunner(log logger.Logger) *Runner {
	return &Runner{logger: log}
}

// Handle is the UI side of a running task.
type Handle struct {
	name    string
	updates chan Update
	done    chan Result
}

// Name returns the task name.
func (h *Handle) Name() string { return h.name }

// Updates returns the ordered stream of progress/status pairs. The channel
// is closed when the task returns.
func (h *Handle) Updates() <-chan Update { return h.updates }

// Done delivers exactly one terminal Result after Updates closes.
func (h *Handle) Done() <-chan Result { return h.done }

// Start runs the task in the background. The returned handle's channels
// must be drained; updates block the task when the buffer fills.
func (r *Runner) Start(ctx context.Context, task Task) *Handle {
	reporter := newReporter(updateBuffer)
	handle := &Handle{
		name:    task.Name(),
		updates: reporter.updates,
		done:    make(chan Result, 1),
	}

	r.logger.Info("Runner", "task starting", map[string]interface{}{
		"task": task.Name(),
	})

	go func() {
		payload, err := task.Run(ctx, reporter)
		reporter.close()

		if err != nil {
			r.logger.Error("Runner", err, map[string]interface{}{
				"task": task.Name(),
			})
		} else {
			r.logger.Info("Runner", "task complete", map[string]interface{}{
				"task": task.Name(),
			})
		}

		handle.done <- Result{Payload: payload, Err: err}
		close(handle.done)
	}()

	return handle
}
