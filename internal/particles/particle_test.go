package particles

import "testing"

func TestNewParticleDefaults(t *testing.T) {
	p := NewParticle()

	if p.Position != (Vec2{}) {
		t.Errorf("Expected zero position, got %v", p.Position)
	}
	if p.Velocity != (Vec2{}) {
		t.Errorf("Expected zero velocity, got %v", p.Velocity)
	}
	if p.Radius <= 0 {
		t.Errorf("Expected positive default radius, got %v", p.Radius)
	}
	if p.DecayRate <= 0 {
		t.Errorf("Expected positive default decay rate, got %v", p.DecayRate)
	}
	if !p.Alive() {
		t.Error("Expected a new particle to be alive")
	}
}

func TestParticleSettersReturnCopy(t *testing.T) {
	base := NewParticle()
	p := base.
		WithPosition(Vec2{X: 1, Y: 2}).
		WithVelocity(Vec2{X: 3, Y: 4}).
		WithRadius(5).
		WithDecayRate(6)

	want := Particle{Position: Vec2{X: 1, Y: 2}, Velocity: Vec2{X: 3, Y: 4}, Radius: 5, DecayRate: 6}
	if p != want {
		t.Errorf("Expected %+v, got %+v", want, p)
	}
	if base != NewParticle() {
		t.Errorf("Expected original particle to be unchanged, got %+v", base)
	}
}

func TestParticleIntegrate(t *testing.T) {
	p := NewParticle().
		WithPosition(Vec2{X: 10, Y: 10}).
		WithVelocity(Vec2{X: 4, Y: -8}).
		WithRadius(3).
		WithDecayRate(2)

	p.integrate(Vec2{X: 0, Y: 16}, 0.5)

	// velocity first, then position from the updated velocity
	if p.Velocity != (Vec2{X: 4, Y: 0}) {
		t.Errorf("Expected velocity (4, 0), got %v", p.Velocity)
	}
	if p.Position != (Vec2{X: 12, Y: 10}) {
		t.Errorf("Expected position (12, 10), got %v", p.Position)
	}
	if p.Radius != 2 {
		t.Errorf("Expected radius 2, got %v", p.Radius)
	}
}

func TestParticleAlive(t *testing.T) {
	tests := []struct {
		radius float64
		alive  bool
	}{
		{1, true},
		{0.0001, true},
		{0, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := NewParticle().WithRadius(tt.radius).Alive(); got != tt.alive {
			t.Errorf("radius %v: expected alive=%v, got %v", tt.radius, tt.alive, got)
		}
	}
}
