package hal

import "github.com/hajimehoshi/ebiten/v2"

// hostPointer tracks the mouse across frames and exposes per-frame deltas.
// Deltas are suppressed on the first frame a button is held so a click does
// not jump the camera.
type hostPointer struct {
	state PointerState

	lastX, lastY int
	tracking     bool
}

func (p *hostPointer) State() PointerState { return p.state }

func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()

	primary := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	secondary := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	dx, dy := 0, 0
	if p.tracking {
		dx = x - p.lastX
		dy = y - p.lastY
	}
	p.lastX, p.lastY = x, y
	p.tracking = primary || secondary

	p.state = PointerState{
		X:         x,
		Y:         y,
		DX:        dx,
		DY:        dy,
		WheelY:    wheelY,
		Primary:   primary,
		Secondary: secondary,
	}
}
