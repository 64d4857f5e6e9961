package game

import (
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"

	"chosenoffset.com/particles/internal/particles"
	"chosenoffset.com/particles/internal/render"
)

type fakeImage struct {
	w, h   int
	filled color.Color
}

func (i *fakeImage) Size() (int, int)     { return i.w, i.h }
func (i *fakeImage) Fill(clr color.Color) { i.filled = clr }
func (i *fakeImage) Clear()               { i.filled = nil }

type circle struct {
	x, y, r float32
}

type fakeRenderer struct {
	circles []circle
	texts   []string
	colors  []color.Color
}

func (r *fakeRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.circles = append(r.circles, circle{x, y, radius})
}

func (r *fakeRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color) {
	r.texts = append(r.texts, text)
	r.colors = append(r.colors, clr)
}

type fakeInput struct {
	pressed map[render.Key]bool
}

func (in *fakeInput) IsKeyJustPressed(key render.Key) bool {
	return in.pressed[key]
}

func (in *fakeInput) press(keys ...render.Key) {
	in.pressed = make(map[render.Key]bool)
	for _, k := range keys {
		in.pressed[k] = true
	}
}

func newTestGame(t *testing.T) (*Game, *fakeRenderer, *fakeInput) {
	t.Helper()
	cfg := particles.DefaultConfig().
		WithPosition(particles.Vec2{X: 300, Y: 300}).
		WithEmitInterval(0.5)
	sys, err := particles.New(cfg, particles.WithVelocitySource(particles.FixedVelocity{X: 10, Y: -200}))
	if err != nil {
		t.Fatalf("Failed to create system: %v", err)
	}
	r := &fakeRenderer{}
	in := &fakeInput{}
	return NewGame(sys, r, in, 600, 600), r, in
}

func TestUpdateTicksSystem(t *testing.T) {
	g, _, _ := newTestGame(t)

	if err := g.Update(0.5); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if g.System.Len() != 1 {
		t.Errorf("Expected 1 particle, got %d", g.System.Len())
	}
}

func TestEscapeQuits(t *testing.T) {
	g, _, in := newTestGame(t)
	in.press(render.KeyEscape)

	if err := g.Update(0.016); !errors.Is(err, render.ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

func TestPauseFreezesParticles(t *testing.T) {
	g, _, in := newTestGame(t)
	g.Update(0.5)
	before := g.System.Particles()

	in.press(render.KeySpace)
	g.Update(0.1)
	in.press()
	g.Update(0.1)

	if !g.Paused {
		t.Fatal("Expected game to be paused")
	}
	after := g.System.Particles()
	if len(after) != 1 || after[0] != before[0] {
		t.Errorf("Expected particles frozen while paused, got %+v", after)
	}

	in.press(render.KeySpace)
	g.Update(0.1)
	if g.Paused {
		t.Error("Expected game to resume")
	}
	if g.System.Particles()[0] == before[0] {
		t.Error("Expected particles to move after resuming")
	}
}

func TestToggleEmittingAndReset(t *testing.T) {
	g, _, in := newTestGame(t)
	g.Update(0.5)

	in.press(render.KeyE)
	g.Update(0.5)
	if g.System.Emitting() {
		t.Fatal("Expected emitter to be off")
	}
	if g.System.Len() != 1 {
		t.Errorf("Expected no new particles while off, got %d", g.System.Len())
	}

	in.press(render.KeyR)
	g.Update(0.1)
	if g.System.Len() != 0 {
		t.Errorf("Expected reset to clear particles, got %d", g.System.Len())
	}
	if len(g.Messages) != 2 {
		t.Errorf("Expected 2 messages, got %d", len(g.Messages))
	}
}

func TestNonFiniteDeltaIsSkipped(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Update(0.5)
	before := g.System.Particles()

	if err := g.Update(math.NaN()); err != nil {
		t.Fatalf("Expected bad delta to be skipped, got %v", err)
	}
	if after := g.System.Particles(); after[0] != before[0] {
		t.Error("Expected state unchanged after a NaN delta")
	}
}

func TestMessagesExpire(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.AddMessage("hello")

	g.Update(messageDuration / 2)
	if len(g.Messages) != 1 {
		t.Fatalf("Expected message to remain, got %d", len(g.Messages))
	}
	g.Update(messageDuration)
	if len(g.Messages) != 0 {
		t.Errorf("Expected message to expire, got %d", len(g.Messages))
	}
}

func TestDrawOneCirclePerParticle(t *testing.T) {
	g, r, _ := newTestGame(t)
	for i := 0; i < 3; i++ {
		g.Update(0.5)
	}
	screen := &fakeImage{w: 600, h: 600}

	g.Draw(screen)

	if len(r.circles) != g.System.Len() {
		t.Fatalf("Expected %d circles, got %d", g.System.Len(), len(r.circles))
	}
	if screen.filled != color.Black {
		t.Errorf("Expected black background, got %v", screen.filled)
	}
	newest := r.circles[len(r.circles)-1]
	if newest != (circle{300, 300, float32(particles.DefaultRadius)}) {
		t.Errorf("Expected newest particle at origin, got %+v", newest)
	}
	for _, c := range r.circles {
		if c.r <= 0 {
			t.Errorf("Expected only positive radii, got %v", c.r)
		}
	}
	if len(r.texts) == 0 || !strings.HasPrefix(r.texts[0], "live 3") {
		t.Errorf("Expected status line, got %v", r.texts)
	}
}

func TestLayoutIsFixed(t *testing.T) {
	g, _, _ := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	if w != 600 || h != 600 {
		t.Errorf("Expected 600x600, got %dx%d", w, h)
	}
}

func TestMessagesFadeOut(t *testing.T) {
	g, r, _ := newTestGame(t)
	g.AddMessage("fading")
	g.Update(messageDuration / 2)

	g.Draw(&fakeImage{w: 600, h: 600})

	if len(r.texts) != 2 || r.texts[1] != "fading" {
		t.Fatalf("Expected status line and message, got %v", r.texts)
	}
	_, _, _, a := r.colors[1].RGBA()
	if a == 0 || a >= 0xffff {
		t.Errorf("Expected a half-faded message, got alpha %#x", a)
	}
	_, _, _, full := r.colors[0].RGBA()
	if full != 0xffff {
		t.Errorf("Expected an opaque status line, got alpha %#x", full)
	}
}
