package simulation

import (
	"slices"
	"sync"

	"github.com/alexanderramin/teamsim/internal/domain"
)

// Collector is an append-only, concurrency-safe record collection shared by
// all trial workers. Records are only read back after every writer is done.
type Collector struct {
	mu      sync.Mutex
	records []domain.TrialRecord
}

// NewCollector pre-sizes the collection for the expected trial count.
func NewCollector(capacity int) *Collector {
	return &Collector{records: make([]domain.TrialRecord, 0, max(capacity, 0))}
}

// Add appends one finished trial record.
func (c *Collector) Add(r domain.TrialRecord) {
	c.mu.Lock()
	c.records = append(c.records, r)
	c.mu.Unlock()
}

func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Records returns a copy of the collection ordered by trial number.
func (c *Collector) Records() []domain.TrialRecord {
	c.mu.Lock()
	out := slices.Clone(c.records)
	c.mu.Unlock()

	slices.SortFunc(out, func(a, b domain.TrialRecord) int {
		return a.Trial - b.Trial
	})
	return out
}
