package models

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Contract is an example vendor contract fixture displayed in the
// explorer dialog. Constructed once at startup and read-only after.
type Contract struct {
	Vendor   string
	ID       string
	Start    string
	End      string
	Partners []string
	Terms    map[string]interface{}
}

// Document renders the contract as a nested mapping suitable for tree
// rendering.
func (c Contract) Document() map[string]interface{} {
	partners := make([]interface{}, len(c.Partners))
	for i, p := range c.Partners {
		partners[i] = p
	}
	doc := map[string]interface{}{
		"vendor":   c.Vendor,
		"id":       c.ID,
		"start":    c.Start,
		"end":      c.End,
		"partners": partners,
	}
	if c.Terms != nil {
		doc["terms"] = c.Terms
	}
	return doc
}

// DisplayString formats the contract for the selector widget.
func (c Contract) DisplayString() string {
	return fmt.Sprintf("%s (%s) %s - %s", c.Vendor, c.ID, c.Start, c.End)
}

// ContractRepository holds the example contracts shown in the explorer.
type ContractRepository struct {
	mu        sync.RWMutex
	contracts []Contract
}

// NewContractRepository creates a repository seeded with the example
// contract fixtures.
func NewContractRepository() *ContractRepository {
	return &ContractRepository{
		contracts: exampleContracts(),
	}
}

func exampleContracts() []Contract {
	return []Contract{
		{
			Vendor:   "Adobe",
			ID:       "47",
			Start:    "2024-01-01",
			End:      "2024-12-31",
			Partners: []string{"Bob", "Sam", "Jane"},
			Terms: map[string]interface{}{
				"seats":       25,
				"renewal":     "automatic",
				"price_usd":   1199.88,
				"support":     map[string]interface{}{"tier": "premium", "hours": "24x7"},
				"cancel_days": 30,
			},
		},
		{
			Vendor:   "Jetbrains",
			ID:       "52",
			Start:    "2024-03-15",
			End:      "2025-03-14",
			Partners: []string{"Bob", "Sam", "Jane"},
			Terms: map[string]interface{}{
				"seats":     12,
				"renewal":   "manual",
				"price_usd": 649.0,
				"support":   map[string]interface{}{"tier": "standard", "hours": "business"},
			},
		},
	}
}

// All returns a copy of the contracts in insertion order.
func (r *ContractRepository) All() []Contract {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Contract, len(r.contracts))
	copy(out, r.contracts)
	return out
}

// SortedByVendor returns the contracts ordered by lowercase vendor name,
// the order the selector presents them in.
func (r *ContractRepository) SortedByVendor() []Contract {
	out := r.All()
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Vendor) < strings.ToLower(out[j].Vendor)
	})
	return out
}

// ByID looks up a contract by its id.
func (r *ContractRepository) ByID(id string) (Contract, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.contracts {
		if c.ID == id {
			return c, true
		}
	}
	return Contract{}, false
}

// Count returns the number of contracts.
func (r *ContractRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contracts)
}
