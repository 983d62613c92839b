package component

import "image/color"

// PointLight radiates from the entity's Transform position.
type PointLight struct {
	Color     color.Color
	Intensity float64
	Decay     float64
}

var PointLightComponent = NewComponent[PointLight]()

type AmbientLight struct {
	Color     color.Color
	Intensity float64
}

var AmbientLightComponent = NewComponent[AmbientLight]()
