package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/rollgrid/ecs"
	"github.com/milk9111/rollgrid/ecs/component"
	"github.com/milk9111/rollgrid/prefabs"
	"github.com/milk9111/rollgrid/roll"
)

var (
	defaultBoxColor      = color.NRGBA{R: 0x8c, G: 0x8c, B: 0x8c, A: 0xff}
	defaultSpecularColor = color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
)

func NewMaterial(spec prefabs.MaterialSpec) *component.Material {
	m := &component.Material{}
	applyMaterialSpec(m, spec)
	return m
}

func applyMaterialSpec(m *component.Material, spec prefabs.MaterialSpec) {
	m.Color = spec.Color.ColorOr(defaultBoxColor)
	m.Specular = spec.Specular.ColorOr(defaultSpecularColor)
	m.Shininess = spec.Shininess
	if m.Shininess <= 0 {
		m.Shininess = 30
	}
}

// NewBoxGrid creates params.BoxCount boxes in index order, all sharing mat,
// each placed at its starting pose.
func NewBoxGrid(w *ecs.World, params roll.Params, mat *component.Material) ([]ecs.Entity, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("box grid: %w", err)
	}

	boxes := make([]ecs.Entity, 0, params.BoxCount)
	poses := roll.Fill(params, 0, nil)
	for i, pose := range poses {
		box := ecs.CreateEntity(w)
		if err := ecs.Add(w, box, component.BoxComponent.Kind(), &component.Box{Index: i, Size: params.BoxSize}); err != nil {
			return nil, fmt.Errorf("box grid: add box %d: %w", i, err)
		}
		t := &component.Transform{
			X:         pose.Position.X,
			Y:         pose.Position.Y,
			Z:         pose.Position.Z,
			RotationZ: pose.RotationZ,
		}
		if err := ecs.Add(w, box, component.TransformComponent.Kind(), t); err != nil {
			return nil, fmt.Errorf("box grid: add transform %d: %w", i, err)
		}
		if err := ecs.Add(w, box, component.MaterialComponent.Kind(), mat); err != nil {
			return nil, fmt.Errorf("box grid: add material %d: %w", i, err)
		}
		boxes = append(boxes, box)
	}
	return boxes, nil
}
