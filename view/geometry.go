package view

import "gonum.org/v1/gonum/spatial/r3"

// Face is one side of a box in world space. Corners run around the edge.
type Face struct {
	Corners [4]r3.Vec
	Normal  r3.Vec
	Center  r3.Vec
}

var boxAxes = [6][3]r3.Vec{
	{{X: 1}, {Y: 1}, {Z: 1}},
	{{X: -1}, {Z: 1}, {Y: 1}},
	{{Y: 1}, {Z: 1}, {X: 1}},
	{{Y: -1}, {X: 1}, {Z: 1}},
	{{Z: 1}, {X: 1}, {Y: 1}},
	{{Z: -1}, {Y: 1}, {X: 1}},
}

// BoxFaces returns the six faces of a cube of edge size centered at center
// and turned rotZ radians about +Z.
func BoxFaces(center r3.Vec, size, rotZ float64) [6]Face {
	h := size / 2
	rot := r3.NewRotation(rotZ, r3.Vec{Z: 1})
	signs := [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	var faces [6]Face
	for i, axes := range boxAxes {
		n, u, v := axes[0], axes[1], axes[2]
		worldN := rot.Rotate(n)
		f := Face{
			Normal: worldN,
			Center: r3.Add(center, r3.Scale(h, worldN)),
		}
		for j, s := range signs {
			local := r3.Add(r3.Scale(h, n), r3.Add(r3.Scale(s[0]*h, u), r3.Scale(s[1]*h, v)))
			f.Corners[j] = r3.Add(center, rot.Rotate(local))
		}
		faces[i] = f
	}
	return faces
}

// FacesCamera reports whether the front of f is visible from eye.
func (f Face) FacesCamera(eye r3.Vec) bool {
	return r3.Dot(f.Normal, r3.Sub(eye, f.Center)) > 0
}
