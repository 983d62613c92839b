package component

// Box marks a grid member. Index fixes its lane stagger and row.
type Box struct {
	Index int
	Size  float64
}

var BoxComponent = NewComponent[Box]()
