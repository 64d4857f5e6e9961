package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/particles/internal/render"
)

const (
	lineHeight = 16
	textMargin = 4
)

// Draw renders the particles and a status line to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(g.Background)

	g.dots = g.System.Snapshot(g.dots[:0])
	for _, d := range g.dots {
		g.Renderer.FillCircle(screen, float32(d.Position.X), float32(d.Position.Y), float32(d.Radius), d.Color)
	}

	g.drawUI(screen)
}

func (g *Game) drawUI(screen render.Image) {
	st := g.System.Stats()
	status := fmt.Sprintf("live %d  spawned %d  expired %d  t=%.1fs", st.Live, st.Spawned, st.Expired, st.Elapsed)
	if g.Paused {
		status += "  [paused]"
	}
	g.Renderer.DrawText(screen, status, textMargin, textMargin, color.White)

	_, h := screen.Size()
	for i, m := range g.Messages {
		y := h - textMargin - lineHeight*(len(g.Messages)-i)
		g.Renderer.DrawText(screen, m.Text, textMargin, y, m.fadeColor())
	}
}

// fadeColor is white, fading out as the message runs down.
func (m Message) fadeColor() color.Color {
	frac := 1.0
	if m.MaxTime > 0 {
		frac = max(0, min(1, m.TimeLeft/m.MaxTime))
	}
	a := uint8(255 * frac)
	return color.RGBA{R: a, G: a, B: a, A: a}
}
