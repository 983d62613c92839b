// Package view holds the camera, geometry and lighting math shared by the
// renderer and the orbit controls. Nothing here touches the window.
package view

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Camera is a perspective camera. FovY is in degrees.
type Camera struct {
	Eye    r3.Vec
	Target r3.Vec
	Up     r3.Vec
	FovY   float64
	Aspect float64
	Near   float64
	Far    float64
}

// Projector maps world points to screen pixels for one camera and viewport.
type Projector struct {
	eye     r3.Vec
	right   r3.Vec
	up      r3.Vec
	forward r3.Vec
	tanHalf float64
	aspect  float64
	near    float64
	far     float64
	width   float64
	height  float64
}

func NewProjector(c Camera, width, height float64) Projector {
	forward := r3.Unit(r3.Sub(c.Target, c.Eye))
	up := c.Up
	if r3.Norm(up) == 0 {
		up = r3.Vec{Y: 1}
	}
	right := r3.Cross(forward, up)
	if r3.Norm(right) < 1e-9 {
		// Looking straight along up; any perpendicular works.
		right = r3.Cross(forward, r3.Vec{Z: 1})
	}
	right = r3.Unit(right)

	aspect := c.Aspect
	if aspect <= 0 && height > 0 {
		aspect = width / height
	}
	return Projector{
		eye:     c.Eye,
		right:   right,
		up:      r3.Cross(right, forward),
		forward: forward,
		tanHalf: math.Tan(c.FovY * math.Pi / 360),
		aspect:  aspect,
		near:    c.Near,
		far:     c.Far,
		width:   width,
		height:  height,
	}
}

func (p Projector) Eye() r3.Vec {
	return p.eye
}

// Depth is the distance of v in front of the camera along its view axis.
func (p Projector) Depth(v r3.Vec) float64 {
	return r3.Dot(r3.Sub(v, p.eye), p.forward)
}

// Project returns the pixel position of v. ok is false outside the near
// and far planes.
func (p Projector) Project(v r3.Vec) (x, y, depth float64, ok bool) {
	rel := r3.Sub(v, p.eye)
	depth = r3.Dot(rel, p.forward)
	if depth < p.near || (p.far > 0 && depth > p.far) {
		return 0, 0, depth, false
	}
	ndcX := r3.Dot(rel, p.right) / (depth * p.tanHalf * p.aspect)
	ndcY := r3.Dot(rel, p.up) / (depth * p.tanHalf)
	x = (ndcX + 1) * 0.5 * p.width
	y = (1 - ndcY) * 0.5 * p.height
	return x, y, depth, true
}

// PixelToWorld is the world length one vertical pixel spans at depth.
func (p Projector) PixelToWorld(depth float64) float64 {
	if p.height <= 0 {
		return 0
	}
	return 2 * depth * p.tanHalf / p.height
}

func (p Projector) Right() r3.Vec {
	return p.right
}

func (p Projector) Up() r3.Vec {
	return p.up
}
