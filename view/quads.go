package view

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Quad is a projected, shaded face ready to be filled.
type Quad struct {
	Points [4][2]float32
	Depth  float64
	Color  RGB
}

// Scene is the lighting shared by every box in a frame.
type Scene struct {
	Light   PointLight
	Ambient AmbientLight
}

// AppendBox appends the visible faces of one box to dst. Faces turned away
// from the camera or crossing the near plane are dropped.
func AppendBox(dst []Quad, p Projector, sc Scene, surf Surface, center r3.Vec, size, rotZ float64) []Quad {
	eye := p.Eye()
	for _, f := range BoxFaces(center, size, rotZ) {
		if !f.FacesCamera(eye) {
			continue
		}
		q := Quad{Depth: p.Depth(f.Center)}
		visible := true
		for i, c := range f.Corners {
			x, y, _, ok := p.Project(c)
			if !ok {
				visible = false
				break
			}
			q.Points[i] = [2]float32{float32(x), float32(y)}
		}
		if !visible {
			continue
		}
		q.Color = Shade(surf, f.Center, f.Normal, eye, sc.Light, sc.Ambient)
		dst = append(dst, q)
	}
	return dst
}

// SortBackToFront orders quads so nearer faces are drawn last.
func SortBackToFront(quads []Quad) {
	sort.SliceStable(quads, func(i, j int) bool {
		return quads[i].Depth > quads[j].Depth
	})
}
