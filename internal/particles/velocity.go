package particles

import "math/rand/v2"

// Range is a closed interval [Min, Max].
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// VelocitySource supplies the initial velocity of each spawned particle.
// It is the only source of non-determinism in a System.
type VelocitySource interface {
	Sample() Vec2
}

// RandomVelocity draws a horizontal component uniformly from Spread and
// uses a fixed upward vertical component of Lift.
type RandomVelocity struct {
	Spread Range
	Lift   float64
	rng    *rand.Rand
}

// NewRandomVelocity creates a RandomVelocity seeded with seed.
func NewRandomVelocity(spread Range, lift float64, seed uint64) *RandomVelocity {
	return &RandomVelocity{
		Spread: spread,
		Lift:   lift,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Sample returns the next velocity.
func (r *RandomVelocity) Sample() Vec2 {
	x := r.Spread.Min + r.rng.Float64()*(r.Spread.Max-r.Spread.Min)
	return Vec2{X: x, Y: -r.Lift}
}

// FixedVelocity always returns the same velocity.
type FixedVelocity Vec2

// Sample returns v.
func (v FixedVelocity) Sample() Vec2 {
	return Vec2(v)
}
