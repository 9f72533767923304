package mirror

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/ytbascii/ytbascii/filesystem"
	"github.com/ytbascii/ytbascii/log"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers caps the number of concurrent probes.
const DefaultWorkers = 8

// ErrUnknownServer is returned when removing a URL that is not in the pool.
var ErrUnknownServer = errors.New("mirror not in pool")

// Options configures a Manager. Zero values fall back to defaults.
type Options struct {
	// Path of the persisted pool file.
	Path string
	// Fs defaults to the application filesystem backend.
	Fs afero.Fs
	// Prober defaults to an HTTPProber using ProbeTimeout.
	Prober       Prober
	ProbeTimeout time.Duration
	// Rand drives the selection; nil seeds one from the clock.
	Rand      *rand.Rand
	Staleness time.Duration
	Workers   int
	// Seed is the mirror list written when the pool file does not exist.
	Seed []string
	// ReseedOnCorrupt replaces a malformed pool file with Seed instead of failing.
	ReseedOnCorrupt bool
}

// Manager owns the mirror pool for the lifetime of the process.
// All access to the pool goes through its methods.
type Manager struct {
	mu       sync.Mutex
	store    *Store
	pool     Pool
	prober   Prober
	policy   Policy
	selector *Selector
	workers  int
}

// Open loads the pool from options.Path, seeding the file when it does not exist.
func Open(options *Options) (*Manager, error) {
	if options == nil || options.Path == "" {
		return nil, errors.New("mirror pool path is empty")
	}

	fs := options.Fs
	if fs == nil {
		fs = filesystem.API().Fs
	}

	seed := options.Seed
	if seed == nil {
		seed = DefaultMirrors
	}

	prober := options.Prober
	if prober == nil {
		prober = NewHTTPProber(options.ProbeTimeout)
	}

	workers := options.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	store := NewStore(fs, options.Path, seed)
	pool, err := store.Load()
	if err != nil && errors.Is(err, ErrMalformedPool) && options.ReseedOnCorrupt {
		log.WithFields(log.Fields{"path": options.Path, "error": err}).Warn("mirror pool is malformed, reseeding")
		pool, err = store.Seed()
	}
	if err != nil {
		return nil, err
	}

	return &Manager{
		store:    store,
		pool:     pool,
		prober:   prober,
		policy:   Policy{Threshold: options.Staleness},
		selector: NewSelector(options.Rand),
		workers:  workers,
	}, nil
}

// Path returns the location of the persisted pool.
func (m *Manager) Path() string {
	return m.store.Path()
}

// Servers returns a snapshot of the pool.
func (m *Manager) Servers() Pool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.pool.Clone()
}

// NeedsRefresh reports whether Refresh at now would probe the pool.
func (m *Manager) NeedsRefresh(now time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.policy.NeedsRefresh(m.pool, now)
}

// Refresh probes every server when the pool is stale and persists the results.
// It reports whether probing took place.
func (m *Manager) Refresh(ctx context.Context, now time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.policy.NeedsRefresh(m.pool, now) {
		log.Info("Mirrors were checked recently, skipping refresh")
		return false, nil
	}

	return true, m.probeAll(ctx, now)
}

// ForceRefresh probes every server regardless of staleness.
func (m *Manager) ForceRefresh(ctx context.Context, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.probeAll(ctx, now)
}

// probeAll fans probes out over at most m.workers goroutines and applies the results only once all of them finished.
// If ctx is cancelled before then, the pool is left untouched.
func (m *Manager) probeAll(ctx context.Context, now time.Time) error {
	log.Infof("Checking status of %d mirrors", len(m.pool))

	next := m.pool.Clone()
	results := make([]Status, len(next))

	var g errgroup.Group
	g.SetLimit(m.workers)
	for i, server := range next {
		i, server := i, server
		g.Go(func() error {
			results[i] = m.prober.Probe(ctx, server.URL)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("refresh interrupted: %w", err)
	}

	checked := now.UTC().Truncate(time.Second)
	for i, server := range next {
		next[i] = Server{URL: server.URL, LastChecked: checked, Status: results[i]}

		entry := log.WithFields(log.Fields{"url": server.URL, "status": results[i].String()})
		if results[i] == Online {
			entry.Info("mirror is online")
		} else {
			entry.Warn("mirror is offline")
		}
	}

	if err := m.store.Save(next); err != nil {
		return err
	}
	m.pool = next

	log.Infof("%d of %d mirrors online", len(next.Online()), len(next))
	return nil
}

// Pick returns a random online server from the in-memory pool. It never probes.
func (m *Manager) Pick() (Server, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	server, err := m.selector.Select(m.pool)
	if err != nil {
		log.Error(err)
		return Server{}, err
	}

	log.WithFields(log.Fields{"url": server.URL}).Info("picked mirror")
	return server, nil
}

// BaseURL returns the base URL of a random online mirror, ready to be prefixed to API paths.
func (m *Manager) BaseURL() (string, error) {
	server, err := m.Pick()
	if err != nil {
		return "", err
	}
	return normalizeURL(server.URL), nil
}

// Add appends a never-probed server to the pool and persists it.
func (m *Manager) Add(url string) error {
	server := Server{URL: normalizeURL(url), Status: Unknown}
	if err := server.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := append(m.pool.Clone(), server)
	if err := m.store.Save(next); err != nil {
		return err
	}
	m.pool = next
	return nil
}

// Remove deletes every server with the given URL and persists the pool.
// It returns the number of removed entries, or ErrUnknownServer if there were none.
func (m *Manager) Remove(url string) (int, error) {
	url = normalizeURL(url)

	m.mu.Lock()
	defer m.mu.Unlock()

	next := lo.Reject(m.pool, func(s Server, _ int) bool {
		return normalizeURL(s.URL) == url
	})

	removed := len(m.pool) - len(next)
	if removed == 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnknownServer, url)
	}

	if err := m.store.Save(next); err != nil {
		return 0, err
	}
	m.pool = next
	return removed, nil
}
