package generator

import (
	"math/rand"
	"time"
)

// DefaultMaxAttempts caps every rejection loop.
const DefaultMaxAttempts = 100_000

// Option configures a generator.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	maxAttempts int
}

// WithRand injects the random source.
func WithRand(r *rand.Rand) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// WithSeed creates a deterministic random source from seed.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxAttempts overrides the rejection sampling cap. Non-positive values
// keep the default.
func WithMaxAttempts(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxAttempts = n
		}
	}
}

func newConfig(options ...Option) config {
	cfg := config{maxAttempts: DefaultMaxAttempts}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}

// between draws uniformly from [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
