package bigint

import "sync/atomic"

// counter is a tiny atomic counter, grounded on internal/metrics/memory.go's
// pattern of exposing lightweight internal counters for test and
// diagnostic assertions without pulling in a full metrics exporter stack
// (out of scope per spec's Non-goals on benchmark harnesses).
type counter struct{ v atomic.Int64 }

func (c *counter) add(n int64) { c.v.Add(n) }
func (c *counter) Load() int64 { return c.v.Load() }

var (
	statPromotions counter
	statDemotions  counter
	statPoolHits   counter
	statPoolMisses counter
)

// Stats is a snapshot of process-wide SVO bookkeeping counters: how often
// values have been promoted to or demoted from dynamic storage, and how
// effective the backend pool (C4) has been at avoiding fresh allocation.
// It exists purely for tests and diagnostics; it is not a metrics export
// surface.
type Stats struct {
	Promotions int64
	Demotions  int64
	PoolHits   int64
	PoolMisses int64
}

// ReadStats returns a snapshot of the current process-wide counters.
func ReadStats() Stats {
	return Stats{
		Promotions: statPromotions.Load(),
		Demotions:  statDemotions.Load(),
		PoolHits:   statPoolHits.Load(),
		PoolMisses: statPoolMisses.Load(),
	}
}
