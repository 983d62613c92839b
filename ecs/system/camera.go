package system

import (
	"github.com/milk9111/rollgrid/ecs"
	"github.com/milk9111/rollgrid/ecs/component"
	"github.com/milk9111/rollgrid/view"
	"gonum.org/v1/gonum/spatial/r3"
)

// CameraSystem keeps the camera aspect ratio in step with the viewport.
type CameraSystem struct {
	camEntity ecs.Entity
	width     float64
	height    float64
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// SetViewport records the current drawable size; the next Update applies it.
func (cs *CameraSystem) SetViewport(width, height float64) {
	cs.width = width
	cs.height = height
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs.width <= 0 || cs.height <= 0 {
		return
	}
	if !ecs.IsAlive(w, cs.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}
	if cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind()); ok {
		cam.Aspect = cs.width / cs.height
	}
}

// CameraView combines a camera with its placement.
func CameraView(cam *component.Camera, t *component.Transform) view.Camera {
	return view.Camera{
		Eye:    r3.Vec{X: t.X, Y: t.Y, Z: t.Z},
		Target: cam.Target,
		Up:     cam.Up,
		FovY:   cam.FovY,
		Aspect: cam.Aspect,
		Near:   cam.Near,
		Far:    cam.Far,
	}
}

func findCamera(w *ecs.World) (*component.Camera, *component.Transform, bool) {
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	return cam, t, true
}
