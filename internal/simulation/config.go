// Package simulation provides configuration for the particle emitter.
// Settings are loaded from a JSON file layered over built-in defaults so a
// run can be tuned without rebuilding.
package simulation

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"chosenoffset.com/particles/internal/particles"
)

// Config holds all settings for a run
type Config struct {
	Window  WindowConfig  `json:"window"`
	Emitter EmitterConfig `json:"emitter"`
}

// WindowConfig defines the host window
type WindowConfig struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Title     string `json:"title"`
	Resizable bool   `json:"resizable"`
}

// EmitterConfig defines the particle system
type EmitterConfig struct {
	Origin       [2]float64      `json:"origin"`        // spawn point in pixels
	Gravity      [2]float64      `json:"gravity"`       // pixels/s^2, +y is down
	EmitInterval float64         `json:"emit_interval"` // seconds between spawns
	Radius       float64         `json:"radius"`        // starting radius
	DecayRate    float64         `json:"decay_rate"`    // radius lost per second
	Spread       particles.Range `json:"spread"`        // horizontal launch speed range
	Lift         float64         `json:"lift"`          // upward launch speed
	Color        [4]uint8        `json:"color"`         // RGBA
	Emitting     bool            `json:"emitting"`
	Seed         uint64          `json:"seed"` // 0 picks a random seed
}

// DefaultConfig returns a 600x600 window with an emitter at its centre
func DefaultConfig() *Config {
	p := particles.DefaultConfig()
	return &Config{
		Window: WindowConfig{
			Width:  600,
			Height: 600,
			Title:  "particles",
		},
		Emitter: EmitterConfig{
			Origin:       [2]float64{300, 300},
			Gravity:      [2]float64{p.Gravity.X, p.Gravity.Y},
			EmitInterval: p.EmitInterval,
			Radius:       p.Radius,
			DecayRate:    p.DecayRate,
			Spread:       p.Spread,
			Lift:         p.Lift,
			Color:        [4]uint8{p.Color.R, p.Color.G, p.Color.B, p.Color.A},
			Emitting:     p.Emitting,
		},
	}
}

// LoadConfig loads config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks window dimensions and the emitter settings
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return c.Emitter.Particles().Validate()
}

// Particles converts the emitter section into a particle system config
func (e EmitterConfig) Particles() particles.Config {
	cfg := particles.DefaultConfig().
		WithPosition(particles.Vec2{X: e.Origin[0], Y: e.Origin[1]}).
		WithGravity(particles.Vec2{X: e.Gravity[0], Y: e.Gravity[1]}).
		WithEmitInterval(e.EmitInterval).
		WithRadius(e.Radius).
		WithDecayRate(e.DecayRate).
		WithSpread(e.Spread).
		WithLift(e.Lift).
		WithColor(color.RGBA{R: e.Color[0], G: e.Color[1], B: e.Color[2], A: e.Color[3]})
	cfg.Emitting = e.Emitting
	return cfg
}

// NewSystem builds the particle system described by the emitter section.
// A non-zero seed makes launch velocities reproducible.
func (e EmitterConfig) NewSystem() (*particles.System, error) {
	var opts []particles.Option
	if e.Seed != 0 {
		opts = append(opts, particles.WithSeed(e.Seed))
	}
	sys, err := particles.New(e.Particles(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create particle system: %w", err)
	}
	return sys, nil
}
