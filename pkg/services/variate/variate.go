package variate

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Provider is the randomness source used by the report generators. Injecting
// it instead of reading a package-level generator keeps generation
// deterministic under a seeded source in tests.
type Provider interface {
	// UniformInt returns an integer in [low, high]. Bounds are
	// caller-guaranteed valid (low <= high).
	UniformInt(low, high int) int
	// UniformFloat returns a float in [low, high).
	UniformFloat(low, high float64) float64
	// Jitter perturbs base by a proportional uniform draw in ±variance,
	// truncating the result: floor(base * (1 + uniform(-variance, variance))).
	Jitter(base int, variance float64) int
}

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Provider backed by its own rand.Rand seeded from the clock.
// The mutex serializes draws across concurrent requests; outputs are not
// reproducible across requests.
func New() Provider {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Provider with a fixed seed.
func NewSeeded(seed int64) Provider {
	return &lockedSource{rnd: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) UniformInt(low, high int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return low + s.rnd.Intn(high-low+1)
}

func (s *lockedSource) UniformFloat(low, high float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return low + s.rnd.Float64()*(high-low)
}

func (s *lockedSource) Jitter(base int, variance float64) int {
	return int(math.Floor(float64(base) * (1 + s.UniformFloat(-variance, variance))))
}
