// Package term is a terminal backend for the render interfaces, built on
// tcell. The logical screen is a pixel canvas mapped onto character cells, so
// a game laid out for a 600x600 window draws the same picture in a terminal.
package term

import (
	"errors"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/particles/internal/render"
)

// Nominal pixel size of one character cell, used to ask the game for a layout.
const (
	cellWidth  = 8
	cellHeight = 16
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// TermRenderer implements render.Renderer by plotting cells.
type TermRenderer struct{}

// NewRenderer creates a terminal renderer.
func NewRenderer() render.Renderer {
	return &TermRenderer{}
}

// FillCircle fills every cell whose centre lies inside the circle. A circle
// smaller than a cell still marks the cell under its centre.
func (r *TermRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	if radius <= 0 {
		return
	}
	img := dst.(*TermImage)
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(clr))

	cx, cy := x/img.sx, y/img.sy
	rx, ry := radius/img.sx, radius/img.sy

	plotted := false
	for row := int(math.Floor(float64(cy - ry))); row <= int(math.Ceil(float64(cy+ry))); row++ {
		for col := int(math.Floor(float64(cx - rx))); col <= int(math.Ceil(float64(cx+rx))); col++ {
			dx := (float32(col) + 0.5 - cx) / rx
			dy := (float32(row) + 0.5 - cy) / ry
			if dx*dx+dy*dy > 1 {
				continue
			}
			if img.set(col, row, '█', style) {
				plotted = true
			}
		}
	}
	if !plotted {
		img.set(int(cx), int(cy), '•', style)
	}
}

// DrawText writes str starting at the cell containing pixel (x, y).
func (r *TermRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color) {
	img := dst.(*TermImage)
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(clr))
	col, row := int(float32(x)/img.sx), int(float32(y)/img.sy)
	for i, ch := range []rune(str) {
		img.set(col+i, row, ch, style)
	}
}

// TermImage is the whole terminal viewed as a logical pixel canvas.
type TermImage struct {
	screen     tcell.Screen
	cols, rows int
	width      int
	height     int
	sx, sy     float32 // logical pixels per cell
	background tcell.Color
}

func newTermImage(screen tcell.Screen, width, height int) *TermImage {
	cols, rows := screen.Size()
	img := &TermImage{
		screen:     screen,
		cols:       max(cols, 1),
		rows:       max(rows, 1),
		width:      max(width, 1),
		height:     max(height, 1),
		background: tcell.ColorDefault,
	}
	img.sx = float32(img.width) / float32(img.cols)
	img.sy = float32(img.height) / float32(img.rows)
	return img
}

// Size returns the logical size in pixels.
func (i *TermImage) Size() (width, height int) {
	return i.width, i.height
}

// Fill paints every cell with the given background color.
func (i *TermImage) Fill(clr color.Color) {
	i.background = tcell.FromImageColor(clr)
	i.screen.Fill(' ', tcell.StyleDefault.Background(i.background))
}

// Clear blanks the terminal.
func (i *TermImage) Clear() {
	i.background = tcell.ColorDefault
	i.screen.Clear()
}

func (i *TermImage) set(col, row int, ch rune, style tcell.Style) bool {
	if col < 0 || row < 0 || col >= i.cols || row >= i.rows {
		return false
	}
	i.screen.SetContent(col, row, ch, nil, style.Background(i.background))
	return true
}

// TermInput collects key presses between two updates.
type TermInput struct {
	keys map[render.Key]bool
}

func newTermInput() *TermInput {
	return &TermInput{keys: make(map[render.Key]bool)}
}

// IsKeyJustPressed returns whether key was pressed since the last update.
func (in *TermInput) IsKeyJustPressed(key render.Key) bool {
	return in.keys[key]
}

// handleEvent records an input event. It reports false for a quit request.
func (in *TermInput) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return false
		case tcell.KeyEscape:
			in.keys[render.KeyEscape] = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				in.keys[render.KeySpace] = true
			case 'e', 'E':
				in.keys[render.KeyE] = true
			case 'r', 'R':
				in.keys[render.KeyR] = true
			}
		}
	}
	return true
}

// endTick forgets the presses consumed by the last update.
func (in *TermInput) endTick() {
	clear(in.keys)
}

// TermEngine implements render.Engine on a tcell screen.
type TermEngine struct {
	screen   tcell.Screen
	input    *TermInput
	title    string
	interval time.Duration
}

// NewEngine opens and initialises the terminal.
func NewEngine() (*TermEngine, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return NewEngineWithScreen(screen), nil
}

// NewEngineWithScreen wraps an already initialised screen.
func NewEngineWithScreen(screen tcell.Screen) *TermEngine {
	return &TermEngine{
		screen:   screen,
		input:    newTermInput(),
		interval: frameInterval,
	}
}

// SetWindowSize is a no-op; the terminal decides its own size.
func (e *TermEngine) SetWindowSize(width, height int) {}

// SetWindowTitle records the title; it is shown on the bottom row.
func (e *TermEngine) SetWindowTitle(title string) {
	e.title = title
}

// SetWindowResizable is a no-op; terminals are always resizable.
func (e *TermEngine) SetWindowResizable(resizable bool) {}

// Input returns the terminal input manager.
func (e *TermEngine) Input() render.InputManager {
	return e.input
}

// RunGame drives game from a ticker until it returns ErrQuit or the user
// presses Ctrl-C. The screen is finalised on return.
func (e *TermEngine) RunGame(game render.Game) error {
	defer e.screen.Fini()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				e.screen.Sync()
			}
			if !e.input.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			err := game.Update(dt)
			e.input.endTick()
			if errors.Is(err, render.ErrQuit) {
				return nil
			}
			if err != nil {
				return err
			}
			e.draw(game)
		}
	}
}

func (e *TermEngine) draw(game render.Game) {
	cols, rows := e.screen.Size()
	w, h := game.Layout(cols*cellWidth, rows*cellHeight)
	img := newTermImage(e.screen, w, h)

	game.Draw(img)
	if e.title != "" {
		for i, ch := range []rune(e.title) {
			img.set(i, img.rows-1, ch, tcell.StyleDefault.Dim(true))
		}
	}
	e.screen.Show()
}
