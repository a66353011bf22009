package stats

import (
	"sync"

	"github.com/hamed0406/domainwatch/internal/domain"
)

// Counts holds the cumulative probe counters for one domain.
type Counts struct {
	Up    int64
	Total int64
}

// Percent is the availability percentage, truncated (never rounded).
// Zero total reports 0.
func (c Counts) Percent() int {
	if c.Total == 0 {
		return 0
	}
	return int(100 * c.Up / c.Total)
}

// Snapshot is a consistent point-in-time copy of the stats table.
type Snapshot map[string]Counts

// Aggregator owns the per-domain counters for the process lifetime.
// Record is the only mutation path; all callers go through the mutex so
// concurrent probe completions never lose an update.
type Aggregator struct {
	mu       sync.RWMutex
	byDomain map[string]Counts
}

func New() *Aggregator {
	return &Aggregator{byDomain: make(map[string]Counts)}
}

func (a *Aggregator) Record(o domain.Outcome) {
	if o.Domain == "" {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	c := a.byDomain[o.Domain]
	c.Total++
	if o.Success {
		c.Up++
	}
	a.byDomain[o.Domain] = c
}

// Snapshot copies the table under the read lock so a reporter never
// observes a half-applied update.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make(Snapshot, len(a.byDomain))
	for d, c := range a.byDomain {
		out[d] = c
	}
	return out
}
