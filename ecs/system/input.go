package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// OrbitInput is one frame of camera manipulation, in screen pixels.
type OrbitInput struct {
	RotateDX float64
	RotateDY float64
	PanDX    float64
	PanDY    float64
	Wheel    float64
}

func (in OrbitInput) IsZero() bool {
	return in == OrbitInput{}
}

// mouseInput turns cursor motion into orbit input: left drag rotates,
// right drag pans, the wheel dollies. The right gamepad stick rotates too.
type mouseInput struct {
	lastX, lastY int
	primed       bool
}

func (m *mouseInput) read() OrbitInput {
	const (
		stickDeadzone = 0.2
		stickPixels   = 12.0
	)

	x, y := ebiten.CursorPosition()
	dx, dy := float64(x-m.lastX), float64(y-m.lastY)
	m.lastX, m.lastY = x, y
	if !m.primed {
		m.primed = true
		dx, dy = 0, 0
	}

	var in OrbitInput
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		in.RotateDX, in.RotateDY = dx, dy
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		in.PanDX, in.PanDY = dx, dy
	}
	_, in.Wheel = ebiten.Wheel()

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		sx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		sy := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Abs(sx) > stickDeadzone {
			in.RotateDX += sx * stickPixels
		}
		if math.Abs(sy) > stickDeadzone {
			in.RotateDY += sy * stickPixels
		}
	}
	return in
}
