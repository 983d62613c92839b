package component

import "image/color"

// Material is a Phong surface. Boxes share one pointer so a reload
// recolors the whole grid at once.
type Material struct {
	Color     color.Color
	Specular  color.Color
	Shininess float64
}

var MaterialComponent = NewComponent[Material]()
