package system

import (
	"math"

	"github.com/milk9111/rollgrid/ecs"
	"github.com/milk9111/rollgrid/ecs/component"
	"github.com/milk9111/rollgrid/view"
	"gonum.org/v1/gonum/spatial/r3"
)

const settleThreshold = 1e-6

// OrbitSystem moves the camera around its target from user input.
type OrbitSystem struct {
	input    func() OrbitInput
	height   float64
	disabled bool
}

func NewOrbitSystem() *OrbitSystem {
	m := &mouseInput{}
	return &OrbitSystem{input: m.read}
}

// SetViewport sets the pixel height used to turn drags into angles.
func (s *OrbitSystem) SetViewport(_, height float64) {
	s.height = height
}

// SetEnabled stops reading input while an overlay owns the mouse. Damped
// motion already in flight still settles.
func (s *OrbitSystem) SetEnabled(enabled bool) {
	s.disabled = !enabled
}

func (s *OrbitSystem) Update(w *ecs.World) {
	var in OrbitInput
	if !s.disabled && s.input != nil {
		in = s.input()
	}
	ecs.ForEach3(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), component.OrbitControlComponent.Kind(),
		func(_ ecs.Entity, cam *component.Camera, t *component.Transform, ctl *component.OrbitControl) {
			stepOrbit(cam, t, ctl, in, s.height)
		})
}

func orDefault(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}

func stepOrbit(cam *component.Camera, t *component.Transform, ctl *component.OrbitControl, in OrbitInput, height float64) {
	if height <= 0 {
		height = 1
	}
	if ctl.Scale == 0 {
		ctl.Scale = 1
	}

	rotateSpeed := orDefault(ctl.RotateSpeed, 1)
	ctl.DeltaAzimuth -= 2 * math.Pi * in.RotateDX / height * rotateSpeed
	ctl.DeltaPolar -= 2 * math.Pi * in.RotateDY / height * rotateSpeed

	if in.Wheel != 0 {
		dolly := math.Pow(0.95, orDefault(ctl.ZoomSpeed, 1))
		if in.Wheel > 0 {
			ctl.Scale *= dolly
		} else {
			ctl.Scale /= dolly
		}
	}

	eye := r3.Vec{X: t.X, Y: t.Y, Z: t.Z}
	if in.PanDX != 0 || in.PanDY != 0 {
		proj := view.NewProjector(CameraView(cam, t), height, height)
		k := proj.PixelToWorld(r3.Norm(r3.Sub(eye, cam.Target))) * orDefault(ctl.PanSpeed, 1)
		pan := r3.Add(r3.Scale(-in.PanDX*k, proj.Right()), r3.Scale(in.PanDY*k, proj.Up()))
		ctl.PanOffset = r3.Add(ctl.PanOffset, pan)
	}

	if ctl.DeltaAzimuth == 0 && ctl.DeltaPolar == 0 && ctl.Scale == 1 && ctl.PanOffset == (r3.Vec{}) {
		return
	}

	factor := 1.0
	if ctl.EnableDamping {
		factor = orDefault(ctl.DampingFactor, 0.05)
	}

	o := view.OrbitFrom(eye, cam.Target)
	o.Azimuth += ctl.DeltaAzimuth * factor
	o.Polar += ctl.DeltaPolar * factor
	o.Radius *= ctl.Scale
	o.Target = r3.Add(o.Target, r3.Scale(factor, ctl.PanOffset))
	o = o.Clamp(ctl.MinDistance, ctl.MaxDistance)

	eye = o.Eye()
	t.X, t.Y, t.Z = eye.X, eye.Y, eye.Z
	cam.Target = o.Target

	ctl.Scale = 1
	if !ctl.EnableDamping {
		ctl.DeltaAzimuth, ctl.DeltaPolar, ctl.PanOffset = 0, 0, r3.Vec{}
		return
	}
	ctl.DeltaAzimuth *= 1 - factor
	ctl.DeltaPolar *= 1 - factor
	ctl.PanOffset = r3.Scale(1-factor, ctl.PanOffset)
	if math.Abs(ctl.DeltaAzimuth) < settleThreshold && math.Abs(ctl.DeltaPolar) < settleThreshold && r3.Norm(ctl.PanOffset) < settleThreshold {
		ctl.DeltaAzimuth, ctl.DeltaPolar, ctl.PanOffset = 0, 0, r3.Vec{}
	}
}
