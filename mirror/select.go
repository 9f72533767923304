package mirror

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/samber/lo"
)

// ErrNoHealthyServer is returned when no server in the pool is online.
var ErrNoHealthyServer = errors.New("no healthy mirror available")

// Selector draws an online server uniformly at random.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector returns a selector drawing from rng. A nil rng is seeded from the clock.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// Select returns one online server of pool, or ErrNoHealthyServer.
func (s *Selector) Select(pool Pool) (Server, error) {
	online := pool.Online()
	if len(online) == 0 {
		return Server{}, ErrNoHealthyServer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.SampleBy(online, s.rng.Intn), nil
}
