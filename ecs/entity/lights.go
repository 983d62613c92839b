package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/rollgrid/ecs"
	"github.com/milk9111/rollgrid/ecs/component"
	"github.com/milk9111/rollgrid/prefabs"
)

func NewPointLight(w *ecs.World, spec prefabs.PointLightSpec) (ecs.Entity, error) {
	light := ecs.CreateEntity(w)

	pos := spec.Position.Vec()
	if err := ecs.Add(w, light, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, Z: pos.Z}); err != nil {
		return 0, fmt.Errorf("point light: add transform: %w", err)
	}

	pl := &component.PointLight{}
	applyPointLightSpec(pl, spec)
	if err := ecs.Add(w, light, component.PointLightComponent.Kind(), pl); err != nil {
		return 0, fmt.Errorf("point light: add light: %w", err)
	}
	return light, nil
}

func applyPointLightSpec(pl *component.PointLight, spec prefabs.PointLightSpec) {
	pl.Color = spec.Color.ColorOr(color.White)
	pl.Intensity = spec.Intensity
	pl.Decay = spec.Decay
}

func NewAmbientLight(w *ecs.World, spec prefabs.AmbientLightSpec) (ecs.Entity, error) {
	light := ecs.CreateEntity(w)
	if err := ecs.Add(w, light, component.AmbientLightComponent.Kind(), &component.AmbientLight{
		Color:     spec.Color.ColorOr(color.White),
		Intensity: spec.Intensity,
	}); err != nil {
		return 0, fmt.Errorf("ambient light: add light: %w", err)
	}
	return light, nil
}
