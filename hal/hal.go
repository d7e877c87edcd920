// Package hal is the host abstraction layer for the sevenstone viewer: an
// RGB565 framebuffer, a desktop window host (ebiten) that presents it, a
// headless fixed-rate runner, and per-frame pointer/keyboard input.
package hal

import "errors"

// ErrShutdown is returned by an app step to request a clean exit.
var ErrShutdown = errors.New("shutdown requested")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerState is one frame of pointer input: position, per-frame drag
// deltas, wheel movement, and button state.
type PointerState struct {
	X, Y      int
	DX, DY    int
	WheelY    float64
	Primary   bool // left button held
	Secondary bool // right or middle button held
}

// Pointer provides the pointer state captured for the current frame.
type Pointer interface {
	State() PointerState
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// HAL aggregates the host facilities an app needs.
type HAL interface {
	Display() Display
	Input() Input
}
