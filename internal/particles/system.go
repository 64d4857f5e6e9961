// Package particles implements a timed 2D particle emitter: particles spawn at
// a fixed origin, fall under constant gravity, shrink linearly and are removed
// when their radius reaches zero.
//
// A System is driven by a host frame loop calling Tick once per frame with the
// elapsed time, followed by Each or Snapshot to render the live particles. It
// is not safe for concurrent use.
package particles

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
)

// ErrNonFiniteDelta is returned by Tick when given NaN or an infinite delta.
var ErrNonFiniteDelta = errors.New("non-finite tick delta")

// spawnSlack is the fraction of the emit interval still counted as zero when
// the timer runs down, absorbing rounding from summing interval/N N times.
const spawnSlack = 1e-9

// Dot is what the renderer needs to draw one particle.
type Dot struct {
	Position Vec2
	Radius   float64
	Color    color.RGBA
}

// Stats are running counters for display and tests.
type Stats struct {
	Live    int
	Spawned uint64
	Expired uint64
	Elapsed float64 // simulated seconds, non-positive deltas excluded
}

// System owns a set of particles and the emission timer.
type System struct {
	cfg       Config
	source    VelocitySource
	seed      uint64
	seeded    bool
	particles []Particle
	timer     float64
	emitting  bool
	stats     Stats
}

// Option customises a System at construction.
type Option func(*System)

// WithVelocitySource replaces the random launch velocity with src.
func WithVelocitySource(src VelocitySource) Option {
	return func(s *System) {
		s.source = src
	}
}

// WithSeed seeds the default random velocity source.
func WithSeed(seed uint64) Option {
	return func(s *System) {
		s.seed = seed
		s.seeded = true
	}
}

// WithCapacity pre-sizes the particle buffer.
func WithCapacity(n int) Option {
	return func(s *System) {
		if n > 0 {
			s.particles = make([]Particle, 0, n)
		}
	}
}

// New creates a System from cfg. The emission timer starts one full
// interval away from the first spawn.
func New(cfg Config, opts ...Option) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &System{
		cfg:      cfg,
		timer:    cfg.EmitInterval,
		emitting: cfg.Emitting,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.source == nil {
		if !s.seeded {
			s.seed = rand.Uint64()
		}
		s.source = NewRandomVelocity(cfg.Spread, cfg.Lift, s.seed)
	}

	return s, nil
}

// Config returns the configuration the system was built with.
func (s *System) Config() Config {
	return s.cfg
}

// Tick advances the simulation by delta seconds.
//
// The timer is decremented first; when it reaches zero (within
// EmitInterval*1e-9 of it, to absorb float rounding) it is reset to the
// emit interval (any overshoot is discarded, so at most one particle spawns
// per call however large delta is). Every particle alive at the start of the
// call is then integrated and particles whose radius fell to zero or below
// are removed. A spawned particle is appended last, so it is first
// integrated on the following call.
//
// A non-positive delta integrates nothing. A NaN or infinite delta is
// rejected without changing any state.
func (s *System) Tick(delta float64) error {
	if !isFinite(delta) {
		return fmt.Errorf("%w: %v", ErrNonFiniteDelta, delta)
	}

	s.timer -= delta
	spawn := false
	if s.timer <= s.cfg.EmitInterval*spawnSlack {
		s.timer = s.cfg.EmitInterval
		spawn = s.emitting
	}

	if delta > 0 {
		s.stats.Elapsed += delta
		for i := range s.particles {
			s.particles[i].integrate(s.cfg.Gravity, delta)
		}
	}
	s.compact()

	if spawn {
		s.spawn()
	}
	return nil
}

// compact drops dead particles, keeping survivors in order.
func (s *System) compact() {
	j := 0
	for _, p := range s.particles {
		if p.Alive() {
			s.particles[j] = p
			j++
		}
	}
	s.stats.Expired += uint64(len(s.particles) - j)
	clear(s.particles[j:])
	s.particles = s.particles[:j]
}

func (s *System) spawn() {
	p := NewParticle().
		WithPosition(s.cfg.Position).
		WithVelocity(s.source.Sample()).
		WithRadius(s.cfg.Radius).
		WithDecayRate(s.cfg.DecayRate)
	s.particles = append(s.particles, p)
	s.stats.Spawned++
}

// SetEmitting turns spawning on or off. The timer keeps running either way.
func (s *System) SetEmitting(on bool) {
	s.emitting = on
}

// Emitting reports whether spawning is on.
func (s *System) Emitting() bool {
	return s.emitting
}

// Reset removes every particle and rearms the timer. Counters are cleared.
func (s *System) Reset() {
	clear(s.particles)
	s.particles = s.particles[:0]
	s.timer = s.cfg.EmitInterval
	s.stats = Stats{}
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Each calls fn for every live particle in spawn order.
func (s *System) Each(fn func(Dot)) {
	for _, p := range s.particles {
		fn(Dot{Position: p.Position, Radius: p.Radius, Color: s.cfg.Color})
	}
}

// Snapshot appends the live particles to dst and returns it.
func (s *System) Snapshot(dst []Dot) []Dot {
	for _, p := range s.particles {
		dst = append(dst, Dot{Position: p.Position, Radius: p.Radius, Color: s.cfg.Color})
	}
	return dst
}

// Particles returns a copy of the live particles.
func (s *System) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Stats returns the current counters.
func (s *System) Stats() Stats {
	st := s.stats
	st.Live = len(s.particles)
	return st
}
