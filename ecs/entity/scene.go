package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/rollgrid/ecs"
	"github.com/milk9111/rollgrid/ecs/component"
	"github.com/milk9111/rollgrid/prefabs"
	"github.com/milk9111/rollgrid/roll"
)

// Scene is the set of entities built from one scene prefab.
type Scene struct {
	Camera       ecs.Entity
	PointLight   ecs.Entity
	AmbientLight ecs.Entity
	Material     *component.Material
	Boxes        []ecs.Entity
}

// BuildScene populates w from spec. params come from the caller so command
// line overrides apply before the grid exists.
func BuildScene(w *ecs.World, spec *prefabs.SceneSpec, params roll.Params, aspect float64) (*Scene, error) {
	if spec == nil {
		return nil, fmt.Errorf("scene: nil spec")
	}

	var (
		sc  Scene
		err error
	)
	if sc.Camera, err = NewCamera(w, spec.Camera, aspect); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if sc.PointLight, err = NewPointLight(w, spec.PointLight); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if sc.AmbientLight, err = NewAmbientLight(w, spec.AmbientLight); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	sc.Material = NewMaterial(spec.Material)
	if sc.Boxes, err = NewBoxGrid(w, params, sc.Material); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return &sc, nil
}

// Reload reapplies the presentation parts of spec: camera intrinsics and
// orbit tuning, lights and material. Camera placement and the grid stay
// untouched.
func (sc *Scene) Reload(w *ecs.World, spec *prefabs.SceneSpec) error {
	if spec == nil {
		return fmt.Errorf("scene: reload: nil spec")
	}
	cam, ok := ecs.Get(w, sc.Camera, component.CameraComponent.Kind())
	if !ok {
		return fmt.Errorf("scene: reload: camera missing")
	}
	applyCameraSpec(cam, spec.Camera)
	if ctl, ok := ecs.Get(w, sc.Camera, component.OrbitControlComponent.Kind()); ok {
		applyOrbitSpec(ctl, spec.Camera.Orbit, cam.Far)
	}

	pl, ok := ecs.Get(w, sc.PointLight, component.PointLightComponent.Kind())
	if !ok {
		return fmt.Errorf("scene: reload: point light missing")
	}
	applyPointLightSpec(pl, spec.PointLight)
	if t, ok := ecs.Get(w, sc.PointLight, component.TransformComponent.Kind()); ok {
		pos := spec.PointLight.Position.Vec()
		t.X, t.Y, t.Z = pos.X, pos.Y, pos.Z
	}

	amb, ok := ecs.Get(w, sc.AmbientLight, component.AmbientLightComponent.Kind())
	if !ok {
		return fmt.Errorf("scene: reload: ambient light missing")
	}
	amb.Color = spec.AmbientLight.Color.ColorOr(color.White)
	amb.Intensity = spec.AmbientLight.Intensity

	applyMaterialSpec(sc.Material, spec.Material)
	return nil
}
