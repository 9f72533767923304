// Package mirror maintains the pool of API mirrors: it persists their last known health,
// re-probes them when that knowledge goes stale and hands out a live base URL on demand.
package mirror

import (
	"errors"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Server is a single mirror together with the outcome of its latest probe.
// LastChecked and Status always change together.
type Server struct {
	URL         string
	LastChecked time.Time
	Status      Status
}

// Probed reports whether the server went through at least one probe.
func (s Server) Probed() bool {
	return !s.LastChecked.IsZero()
}

// Validate checks the invariants a record must hold to enter the pool.
func (s Server) Validate() error {
	if strings.TrimSpace(s.URL) == "" {
		return errors.New("server url is empty")
	}
	return nil
}

// Pool is the ordered list of tracked mirrors. Order is preserved through persistence.
type Pool []Server

// Online returns the servers whose latest probe succeeded.
func (p Pool) Online() Pool {
	return lo.Filter(p, func(s Server, _ int) bool {
		return s.Status == Online
	})
}

// Clone returns an independent copy of the pool.
func (p Pool) Clone() Pool {
	if p == nil {
		return nil
	}
	out := make(Pool, len(p))
	copy(out, p)
	return out
}

// URLs returns the base URLs in pool order.
func (p Pool) URLs() []string {
	return lo.Map(p, func(s Server, _ int) string {
		return s.URL
	})
}

// NewPool builds a pool of never-probed servers from base URLs.
func NewPool(urls []string) Pool {
	return lo.Map(urls, func(url string, _ int) Server {
		return Server{URL: url, Status: Unknown}
	})
}

// normalizeURL trims whitespace and trailing slashes so API paths can be appended verbatim.
func normalizeURL(url string) string {
	return strings.TrimRight(strings.TrimSpace(url), "/")
}
