package worker

import (
	"context"
	"fmt"
	"time"
)

// TicketRequest is one item the ticket creation task works through.
type TicketRequest struct {
	ID   string
	Name string
}

// TicketSummary is the terminal payload of a ticket creation run.
type TicketSummary struct {
	Selected int `json:"selected"`
	Created  int `json:"created"`
	Skipped  int `json:"skipped"`
}

// TicketCreator simulates creating a tracker ticket per selected contract.
// It reports a status line and a monotonic progress fraction per item.
type TicketCreator struct {
	Items []TicketRequest

	// ItemDelay is the simulated per-item work duration. Zero means the
	// production default.
	ItemDelay time.Duration
}

const defaultItemDelay = time.Second

func (t *TicketCreator) Name() string { return "CreateTickets" }

func (t *TicketCreator) Run(ctx context.Context, r *Reporter) (interface{}, error) {
	selected := len(t.Items)
	if selected == 0 {
		r.Status("Creating 0 tickets, no contracts selected")
		return TicketSummary{}, nil
	}

	delay := t.ItemDelay
	if delay == 0 {
		delay = defaultItemDelay
	}

	r.Status(fmt.Sprintf("Creating tickets for %d selected contracts", selected))
	r.Progress(0.05)

	created := 0
	skipped := 0
	for i, item := range t.Items {
		r.Status(fmt.Sprintf("Creating ticket for contract ID: %s", item.ID))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}

		created++
		r.Progress(float64(i+1) / float64(selected))
	}

	r.Progress(1.0)
	r.Status(fmt.Sprintf("Of %d selected contracts, %d tickets were created, and %d were skipped",
		selected, created, skipped))

	return TicketSummary{Selected: selected, Created: created, Skipped: skipped}, nil
}
