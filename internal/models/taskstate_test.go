package models

import "testing"

func TestTaskState_ProgressNeverRegresses(t *testing.T) {
	r := NewTaskStateRepository()
	r.Begin("CreateTickets")

	r.Update(0.3, "working")
	r.Update(0.1, "still working")

	state := r.GetState()
	if state.Progress != 0.3 {
		t.Fatalf("progress regressed to %.2f", state.Progress)
	}
	if state.CurrentStatus != "still working" {
		t.Fatalf("status should still update, got %q", state.CurrentStatus)
	}

	r.Update(1.5, "over")
	if got := r.GetState().Progress; got != 1.0 {
		t.Fatalf("progress should clamp to 1.0, got %.2f", got)
	}
}

func TestTaskState_Lifecycle(t *testing.T) {
	r := NewTaskStateRepository()

	if r.IsActive() {
		t.Fatal("repository should start idle")
	}

	r.Begin("CreateTickets")
	if !r.IsActive() {
		t.Fatal("task should be active after Begin")
	}
	state := r.GetState()
	if state.TaskName != "CreateTickets" || state.Progress != 0 {
		t.Fatalf("unexpected initial state: %+v", state)
	}

	r.Finish("Success")
	state = r.GetState()
	if state.IsActive {
		t.Fatal("task should be inactive after Finish")
	}
	if state.CurrentStatus != "Success" {
		t.Fatalf("terminal status = %q", state.CurrentStatus)
	}
}

func TestTaskState_UpdateIgnoredWhenIdle(t *testing.T) {
	r := NewTaskStateRepository()
	r.Update(0.5, "ghost update")

	state := r.GetState()
	if state.Progress != 0 || state.CurrentStatus != "Ready" {
		t.Fatalf("idle state mutated: %+v", state)
	}
}
