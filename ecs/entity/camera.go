package entity

import (
	"fmt"

	"github.com/milk9111/rollgrid/ecs"
	"github.com/milk9111/rollgrid/ecs/component"
	"github.com/milk9111/rollgrid/prefabs"
	"gonum.org/v1/gonum/spatial/r3"
)

// NewCamera creates the perspective camera with orbit controls attached.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec, aspect float64) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)

	pos := spec.Position.Vec()
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X: pos.X,
		Y: pos.Y,
		Z: pos.Z,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	cam := &component.Camera{Aspect: aspect, Target: spec.LookAt.Vec(), Up: r3.Vec{Y: 1}}
	applyCameraSpec(cam, spec)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), cam); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	ctl := &component.OrbitControl{Scale: 1}
	applyOrbitSpec(ctl, spec.Orbit, cam.Far)
	if err := ecs.Add(w, camera, component.OrbitControlComponent.Kind(), ctl); err != nil {
		return 0, fmt.Errorf("camera: add orbit control: %w", err)
	}

	return camera, nil
}

// applyCameraSpec sets the intrinsics only; placement belongs to the orbit
// controls once the scene is running.
func applyCameraSpec(cam *component.Camera, spec prefabs.CameraSpec) {
	cam.FovY = spec.FovY
	if cam.FovY <= 0 {
		cam.FovY = 60
	}
	cam.Near = spec.Near
	if cam.Near <= 0 {
		cam.Near = 0.1
	}
	cam.Far = spec.Far
	if cam.Far <= cam.Near {
		cam.Far = 100
	}
}

func applyOrbitSpec(ctl *component.OrbitControl, spec prefabs.OrbitSpec, far float64) {
	ctl.EnableDamping = spec.EnableDamping
	ctl.DampingFactor = spec.DampingFactor
	if ctl.DampingFactor <= 0 || ctl.DampingFactor > 1 {
		ctl.DampingFactor = 0.05
	}
	ctl.RotateSpeed = spec.RotateSpeed
	ctl.ZoomSpeed = spec.ZoomSpeed
	ctl.PanSpeed = spec.PanSpeed
	ctl.MinDistance = spec.MinDistance
	if ctl.MinDistance <= 0 {
		ctl.MinDistance = 1
	}
	ctl.MaxDistance = spec.MaxDistance
	if ctl.MaxDistance <= 0 {
		ctl.MaxDistance = far * 0.9
	}
}
