package models

import (
	"sync"
	"time"
)

// TaskState represents the current state of the background task.
type TaskState struct {
	IsActive      bool
	TaskName      string
	CurrentStatus string
	Progress      float64
	StartTime     time.Time
}

// TaskStateRepository manages background task state with thread-safe access.
// Progress never regresses while a task is active.
type TaskStateRepository struct {
	mu    sync.RWMutex
	state TaskState
}

// NewTaskStateRepository creates a repository in the idle state.
func NewTaskStateRepository() *TaskStateRepository {
	return &TaskStateRepository{
		state: TaskState{CurrentStatus: "Ready"},
	}
}

// Begin marks a task as active and resets progress.
func (r *TaskStateRepository) Begin(taskName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = TaskState{
		IsActive:      true,
		TaskName:      taskName,
		CurrentStatus: "Starting",
		StartTime:     time.Now(),
	}
}

// Update records a progress/status pair. Regressing progress values are
// clamped to the current value; status always updates.
func (r *TaskStateRepository) Update(progress float64, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.state.IsActive {
		return
	}
	if progress > r.state.Progress {
		if progress > 1.0 {
			progress = 1.0
		}
		r.state.Progress = progress
	}
	if status != "" {
		r.state.CurrentStatus = status
	}
}

// Finish marks the task as complete with a terminal status.
func (r *TaskStateRepository) Finish(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.IsActive = false
	r.state.CurrentStatus = status
}

// GetState returns a copy of the current state.
func (r *TaskStateRepository) GetState() TaskState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// IsActive reports whether a task is currently running.
func (r *TaskStateRepository) IsActive() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.IsActive
}
