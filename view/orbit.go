package view

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const polarEpsilon = 0.01

// Orbit places a camera on a sphere around Target. Azimuth is measured
// from +Z toward +X and Polar from +Y, matching three.js spherical coords.
type Orbit struct {
	Target  r3.Vec
	Azimuth float64
	Polar   float64
	Radius  float64
}

func OrbitFrom(eye, target r3.Vec) Orbit {
	offset := r3.Sub(eye, target)
	radius := r3.Norm(offset)
	if radius == 0 {
		return Orbit{Target: target}
	}
	return Orbit{
		Target:  target,
		Azimuth: math.Atan2(offset.X, offset.Z),
		Polar:   math.Acos(math.Max(-1, math.Min(1, offset.Y/radius))),
		Radius:  radius,
	}
}

func (o Orbit) Eye() r3.Vec {
	sinPolar := math.Sin(o.Polar)
	return r3.Add(o.Target, r3.Vec{
		X: o.Radius * sinPolar * math.Sin(o.Azimuth),
		Y: o.Radius * math.Cos(o.Polar),
		Z: o.Radius * sinPolar * math.Cos(o.Azimuth),
	})
}

// Clamp keeps the camera off the poles and inside the distance limits.
// A zero max means unbounded.
func (o Orbit) Clamp(minRadius, maxRadius float64) Orbit {
	o.Polar = math.Max(polarEpsilon, math.Min(math.Pi-polarEpsilon, o.Polar))
	if o.Radius < minRadius {
		o.Radius = minRadius
	}
	if maxRadius > 0 && o.Radius > maxRadius {
		o.Radius = maxRadius
	}
	return o
}
