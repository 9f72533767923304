package mirror

import "time"

// DefaultStaleness is how long probe results are trusted.
const DefaultStaleness = time.Hour

// Policy decides when the pool's health data has to be refreshed.
//
// Freshness is judged for the whole pool from its first server only: if that server was probed
// less than Threshold ago, every result is trusted.
type Policy struct {
	Threshold time.Duration
}

// NeedsRefresh reports whether the pool must be probed again at now.
// An empty pool, or one whose first server was never probed, is always due.
func (p Policy) NeedsRefresh(pool Pool, now time.Time) bool {
	if len(pool) == 0 || !pool[0].Probed() {
		return true
	}

	threshold := p.Threshold
	if threshold <= 0 {
		threshold = DefaultStaleness
	}

	return now.Sub(pool[0].LastChecked) >= threshold
}
