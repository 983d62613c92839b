package component

import "gonum.org/v1/gonum/spatial/r3"

// Camera is a perspective camera placed by the entity's Transform.
type Camera struct {
	FovY   float64 // degrees
	Aspect float64
	Near   float64
	Far    float64
	Target r3.Vec
	Up     r3.Vec
}

var CameraComponent = NewComponent[Camera]()

// OrbitControl holds orbit-controls tuning and the pending motion that
// damping bleeds off over several frames.
type OrbitControl struct {
	EnableDamping bool
	DampingFactor float64
	RotateSpeed   float64
	ZoomSpeed     float64
	PanSpeed      float64
	MinDistance   float64
	MaxDistance   float64

	DeltaAzimuth float64
	DeltaPolar   float64
	Scale        float64
	PanOffset    r3.Vec
}

var OrbitControlComponent = NewComponent[OrbitControl]()
