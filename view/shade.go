package view

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// RGB is a linear color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

func RGBOf(c color.Color) RGB {
	if c == nil {
		return RGB{}
	}
	r, g, b, _ := c.RGBA()
	return RGB{R: float64(r) / 0xffff, G: float64(g) / 0xffff, B: float64(b) / 0xffff}
}

func (c RGB) Scale(f float64) RGB {
	return RGB{R: c.R * f, G: c.G * f, B: c.B * f}
}

func (c RGB) Mul(o RGB) RGB {
	return RGB{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

func (c RGB) Add(o RGB) RGB {
	return RGB{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

func (c RGB) Clamp() RGB {
	return RGB{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

type PointLight struct {
	Position  r3.Vec
	Color     RGB
	Intensity float64
	Decay     float64
}

type AmbientLight struct {
	Color     RGB
	Intensity float64
}

// Surface is a Blinn-Phong material.
type Surface struct {
	Diffuse   RGB
	Specular  RGB
	Shininess float64
}

// Shade lights a surface point seen from eye. The result is clamped.
func Shade(s Surface, pos, normal, eye r3.Vec, light PointLight, ambient AmbientLight) RGB {
	out := s.Diffuse.Mul(ambient.Color).Scale(ambient.Intensity)

	toLight := r3.Sub(light.Position, pos)
	dist := r3.Norm(toLight)
	if dist == 0 {
		return out.Clamp()
	}
	l := r3.Scale(1/dist, toLight)
	n := r3.Unit(normal)
	ndl := r3.Dot(n, l)
	if ndl <= 0 {
		return out.Clamp()
	}

	falloff := 1.0
	if light.Decay > 0 {
		falloff = 1 / math.Pow(math.Max(dist, 0.01), light.Decay)
	}
	irradiance := light.Color.Scale(light.Intensity * falloff * ndl)

	out = out.Add(s.Diffuse.Scale(1 / math.Pi).Mul(irradiance))

	v := r3.Unit(r3.Sub(eye, pos))
	h := r3.Unit(r3.Add(l, v))
	if ndh := r3.Dot(n, h); ndh > 0 {
		d := (s.Shininess*0.5 + 1) / math.Pi * math.Pow(ndh, s.Shininess)
		out = out.Add(s.Specular.Scale(0.25 * d).Mul(irradiance))
	}
	return out.Clamp()
}
