package worker

import (
	"context"
	"errors"
	"testing"
	"time"
)

type discardLogger struct{}

func (discardLogger) Debug(string, string, map[string]interface{})   {}
func (discardLogger) Info(string, string, map[string]interface{})    {}
func (discardLogger) Warning(string, string, map[string]interface{}) {}
func (discardLogger) Error(string, error, map[string]interface{})    {}

func drain(t *testing.T, h *Handle) ([]Update, Result) {
	t.Helper()

	var updates []Update
	for u := range h.Updates() {
		updates = append(updates, u)
	}

	select {
	case result := <-h.Done():
		return updates, result
	case <-time.After(5 * time.Second):
		t.Fatal("no terminal result after updates closed")
		return nil, Result{}
	}
}

func TestTicketCreator_ProgressMonotonic(t *testing.T) {
	task := &TicketCreator{
		Items: []TicketRequest{
			{ID: "42", Name: "Albert"},
			{ID: "12", Name: "Michael"},
			{ID: "07", Name: "Kinsley"},
		},
		ItemDelay: time.Millisecond,
	}

	runner := NewRunner(discardLogger{})
	handle := runner.Start(context.Background(), task)
	updates, result := drain(t, handle)

	if result.Err != nil {
		t.Fatalf("unexpected task error: %v", result.Err)
	}
	if len(updates) == 0 {
		t.Fatal("expected progress updates")
	}

	last := -1.0
	for i, u := range updates {
		if u.Progress < last {
			t.Fatalf("progress regressed at update %d: %.2f -> %.2f", i, last, u.Progress)
		}
		last = u.Progress
	}
	if last != 1.0 {
		t.Fatalf("expected final progress 1.0, got %.2f", last)
	}
}

func TestTicketCreator_Summary(t *testing.T) {
	task := &TicketCreator{
		Items:     []TicketRequest{{ID: "1"}, {ID: "2"}},
		ItemDelay: time.Millisecond,
	}

	runner := NewRunner(discardLogger{})
	_, result := drain(t, runner.Start(context.Background(), task))

	summary, ok := result.Payload.(TicketSummary)
	if !ok {
		t.Fatalf("expected TicketSummary payload, got %T", result.Payload)
	}
	if summary.Selected != 2 || summary.Created != 2 || summary.Skipped != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestTicketCreator_NoItems(t *testing.T) {
	runner := NewRunner(discardLogger{})
	updates, result := drain(t, runner.Start(context.Background(), &TicketCreator{}))

	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if len(updates) != 1 {
		t.Fatalf("expected a single status update, got %d", len(updates))
	}
	if updates[0].Status != "Creating 0 tickets, no contracts selected" {
		t.Fatalf("unexpected status: %q", updates[0].Status)
	}
}

func TestTicketCreator_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	task := &TicketCreator{
		Items:     []TicketRequest{{ID: "1"}},
		ItemDelay: time.Hour,
	}

	runner := NewRunner(discardLogger{})
	_, result := drain(t, runner.Start(ctx, task))

	if !errors.Is(result.Err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", result.Err)
	}
}

func TestHandle_TerminalResultOnce(t *testing.T) {
	runner := NewRunner(discardLogger{})
	handle := runner.Start(context.Background(), &TicketCreator{
		Items:     []TicketRequest{{ID: "1"}},
		ItemDelay: time.Millisecond,
	})

	_, _ = drain(t, handle)

	// Done is closed after its single value; a second receive reports the
	// zero Result with ok=false rather than a duplicate report.
	select {
	case result, ok := <-handle.Done():
		if ok {
			t.Fatalf("unexpected second terminal result: %+v", result)
		}
	case <-time.After(time.Second):
		t.Fatal("done channel not closed after terminal result")
	}
}

func TestUpdates_EmissionOrder(t *testing.T) {
	task := &TicketCreator{
		Items: []TicketRequest{
			{ID: "a"}, {ID: "b"}, {ID: "c"},
		},
		ItemDelay: time.Millisecond,
	}

	runner := NewRunner(discardLogger{})
	updates, _ := drain(t, runner.Start(context.Background(), task))

	// Each per-item status must precede the progress update for that item.
	seen := make([]string, 0, len(updates))
	for _, u := range updates {
		seen = append(seen, u.Status)
	}

	wantFirst := "Creating tickets for 3 selected contracts"
	if seen[0] != wantFirst {
		t.Fatalf("first status = %q, want %q", seen[0], wantFirst)
	}
	lastStatus := seen[len(seen)-1]
	want := "Of 3 selected contracts, 3 tickets were created, and 0 were skipped"
	if lastStatus != want {
		t.Fatalf("last status = %q, want %q", lastStatus, want)
	}
}
