package render

import (
	"errors"
	"image/color"
)

// ErrQuit is returned from Game.Update to end the run without an error.
var ErrQuit = errors.New("quit requested")

// Renderer is the main rendering interface that abstracts the underlying
// graphics backend. The particle host only needs filled circles and a line
// of status text, so any backend able to plot those can drive it.
type Renderer interface {
	// Vector operations
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color)
}

// Image represents a surface that can be drawn to.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
	Clear()
}

// InputManager handles keyboard input from the user.
type InputManager interface {
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the host reacts to
const (
	KeySpace Key = iota // pause
	KeyE                // toggle emitting
	KeyR                // reset
	KeyEscape
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update advances the game by dt seconds. It is called once per tick.
	// Returning ErrQuit stops the engine cleanly.
	Update(dt float64) error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the backend that owns the window and the frame loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// Input returns the input manager bound to this engine.
	Input() InputManager

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
