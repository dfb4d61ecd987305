// Package mockdata synthesizes complete fallback snapshots for every
// dashboard domain. Generators are pure: no I/O, no shared state, and
// the shape of every payload (field sets, array lengths, enum values)
// is fixed. Only numeric magnitudes jitter inside per-domain bounds so
// the UI still renders believable data when the upstream is down.
package mockdata

import (
	"math"
	"math/rand"
	"time"
)

// Generator produces fallback snapshots. The zero seed derives from the
// wall clock; tests inject a fixed seed and clock for determinism.
type Generator struct {
	r   *rand.Rand
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed fixes the random source.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.r = rand.New(rand.NewSource(seed))
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		r:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// jit returns a value uniformly distributed in [-span/2, span/2].
func (g *Generator) jit(span float64) float64 {
	return (g.r.Float64() - 0.5) * span
}

// trend samples an up/down/flat label, biased slightly toward up.
func (g *Generator) trend() string {
	switch r := g.r.Float64(); {
	case r > 0.6:
		return "up"
	case r > 0.3:
		return "down"
	default:
		return "flat"
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
