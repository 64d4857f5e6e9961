package particles

// Default particle appearance and lifetime.
const (
	DefaultRadius    = 8.0
	DefaultDecayRate = 2.0
)

// Particle is a single simulated point. Radius doubles as its lifetime:
// once it reaches zero the owning System drops it.
type Particle struct {
	Position  Vec2
	Velocity  Vec2
	Radius    float64
	DecayRate float64 // radius lost per second
}

// NewParticle returns a particle at rest at the origin with the default
// radius and decay rate.
func NewParticle() Particle {
	return Particle{
		Radius:    DefaultRadius,
		DecayRate: DefaultDecayRate,
	}
}

// WithPosition returns a copy of p placed at v.
func (p Particle) WithPosition(v Vec2) Particle {
	p.Position = v
	return p
}

// WithVelocity returns a copy of p moving at v.
func (p Particle) WithVelocity(v Vec2) Particle {
	p.Velocity = v
	return p
}

// WithRadius returns a copy of p with radius r.
func (p Particle) WithRadius(r float64) Particle {
	p.Radius = r
	return p
}

// WithDecayRate returns a copy of p shrinking at r per second.
func (p Particle) WithDecayRate(r float64) Particle {
	p.DecayRate = r
	return p
}

// Alive reports whether the particle still has a positive radius.
func (p Particle) Alive() bool {
	return p.Radius > 0
}

// integrate advances the particle by dt seconds under constant gravity.
func (p *Particle) integrate(gravity Vec2, dt float64) {
	p.Velocity = p.Velocity.Add(gravity.Scale(dt))
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Radius -= p.DecayRate * dt
}
