// Package game hosts a particle system inside a render.Engine frame loop.
package game

import (
	"image/color"
	"log"
	"math"

	"chosenoffset.com/particles/internal/particles"
	"chosenoffset.com/particles/internal/render"
)

// Game holds the simulation and the collaborators needed to show it.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	System       *particles.System
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Background   color.Color

	// UI state
	Paused   bool
	Messages []Message

	dots []particles.Dot
}

// NewGame creates a game around an already configured particle system.
func NewGame(sys *particles.System, renderer render.Renderer, input render.InputManager, screenWidth, screenHeight int) *Game {
	return &Game{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		System:       sys,
		Renderer:     renderer,
		InputMgr:     input,
		Background:   color.Black,
	}
}

// Update handles input and advances the simulation by dt seconds. While
// paused the system is still ticked, with a zero delta.
func (g *Game) Update(dt float64) error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	if g.InputMgr.IsKeyJustPressed(render.KeySpace) {
		g.Paused = !g.Paused
		if g.Paused {
			g.AddMessage("paused")
		} else {
			g.AddMessage("resumed")
		}
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyE) {
		g.System.SetEmitting(!g.System.Emitting())
		if g.System.Emitting() {
			g.AddMessage("emitter on")
		} else {
			g.AddMessage("emitter off")
		}
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyR) {
		g.System.Reset()
		g.AddMessage("reset")
	}

	step := dt
	if g.Paused {
		step = 0
	}
	if err := g.System.Tick(step); err != nil {
		log.Printf("Warning: skipping tick: %v", err)
		return nil
	}

	g.updateMessages(dt)
	return nil
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// AddMessage shows text for a short while.
func (g *Game) AddMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: messageDuration,
		MaxTime:  messageDuration,
	})
}

func (g *Game) updateMessages(dt float64) {
	if math.IsNaN(dt) || dt <= 0 {
		return
	}
	kept := g.Messages[:0]
	for _, m := range g.Messages {
		m.TimeLeft -= dt
		if m.TimeLeft > 0 {
			kept = append(kept, m)
		}
	}
	g.Messages = kept
}
