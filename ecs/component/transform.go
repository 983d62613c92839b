package component

// Transform is an absolute world placement. Boxes only rotate about Z.
type Transform struct {
	X         float64
	Y         float64
	Z         float64
	RotationZ float64
}

var TransformComponent = NewComponent[Transform]()
