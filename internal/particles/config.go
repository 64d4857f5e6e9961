package particles

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidConfig is returned by Validate and New for unusable settings.
var ErrInvalidConfig = errors.New("invalid particle system config")

// Config is the setup-time configuration of a System. It is copied into the
// System by New and cannot be changed afterwards.
type Config struct {
	Position     Vec2       // spawn origin
	Gravity      Vec2       // constant acceleration, pixels/s^2
	EmitInterval float64    // seconds between spawns
	Radius       float64    // initial radius of spawned particles
	DecayRate    float64    // radius lost per second
	Spread       Range      // horizontal launch velocity range
	Lift         float64    // upward launch speed
	Color        color.RGBA // draw color for every particle
	Emitting     bool
}

// DefaultConfig returns an emitter at the origin with downward gravity.
func DefaultConfig() Config {
	return Config{
		Gravity:      Vec2{X: 0, Y: 100},
		EmitInterval: 0.1,
		Radius:       DefaultRadius,
		DecayRate:    DefaultDecayRate,
		Spread:       Range{Min: -50, Max: 50},
		Lift:         200,
		Color:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Emitting:     true,
	}
}

// WithPosition returns a copy of c spawning at v.
func (c Config) WithPosition(v Vec2) Config {
	c.Position = v
	return c
}

// WithGravity returns a copy of c with constant acceleration v.
func (c Config) WithGravity(v Vec2) Config {
	c.Gravity = v
	return c
}

// WithEmitInterval returns a copy of c spawning every seconds.
func (c Config) WithEmitInterval(seconds float64) Config {
	c.EmitInterval = seconds
	return c
}

// WithRadius returns a copy of c whose particles start at radius r.
func (c Config) WithRadius(r float64) Config {
	c.Radius = r
	return c
}

// WithDecayRate returns a copy of c whose particles shrink by r per second.
func (c Config) WithDecayRate(r float64) Config {
	c.DecayRate = r
	return c
}

// WithSpread returns a copy of c drawing horizontal launch speed from r.
func (c Config) WithSpread(r Range) Config {
	c.Spread = r
	return c
}

// WithLift returns a copy of c launching particles upward at v.
func (c Config) WithLift(v float64) Config {
	c.Lift = v
	return c
}

// WithColor returns a copy of c drawing particles in clr.
func (c Config) WithColor(clr color.RGBA) Config {
	c.Color = clr
	return c
}

// Validate checks that the configuration describes a well-formed emitter.
func (c Config) Validate() error {
	switch {
	case !c.Position.IsFinite():
		return fmt.Errorf("%w: position %v is not finite", ErrInvalidConfig, c.Position)
	case !c.Gravity.IsFinite():
		return fmt.Errorf("%w: gravity %v is not finite", ErrInvalidConfig, c.Gravity)
	case !isFinite(c.EmitInterval) || c.EmitInterval <= 0:
		return fmt.Errorf("%w: emit interval must be positive, got %v", ErrInvalidConfig, c.EmitInterval)
	case !isFinite(c.Radius) || c.Radius <= 0:
		return fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidConfig, c.Radius)
	case !isFinite(c.DecayRate) || c.DecayRate < 0:
		return fmt.Errorf("%w: decay rate must not be negative, got %v", ErrInvalidConfig, c.DecayRate)
	case !isFinite(c.Spread.Min) || !isFinite(c.Spread.Max) || c.Spread.Min > c.Spread.Max:
		return fmt.Errorf("%w: spread [%v, %v] is not a valid range", ErrInvalidConfig, c.Spread.Min, c.Spread.Max)
	case !isFinite(c.Lift):
		return fmt.Errorf("%w: lift %v is not finite", ErrInvalidConfig, c.Lift)
	}
	return nil
}
