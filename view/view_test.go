package view

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func defaultCamera() Camera {
	return Camera{
		Eye:    r3.Vec{Y: 1, Z: 15},
		Target: r3.Vec{},
		Up:     r3.Vec{Y: 1},
		FovY:   60,
		Aspect: 16.0 / 9.0,
		Near:   0.1,
		Far:    100,
	}
}

func TestProjectTargetLandsAtCenter(t *testing.T) {
	p := NewProjector(defaultCamera(), 1280, 720)
	x, y, depth, ok := p.Project(r3.Vec{})
	require.True(t, ok)
	assert.InDelta(t, 640, x, 1e-9)
	assert.InDelta(t, 360, y, 1e-9)
	assert.InDelta(t, math.Hypot(1, 15), depth, 1e-9)
}

func TestProjectOrientation(t *testing.T) {
	cam := defaultCamera()
	cam.Eye = r3.Vec{Z: 10}
	p := NewProjector(cam, 800, 600)

	xRight, _, _, ok := p.Project(r3.Vec{X: 1})
	require.True(t, ok)
	assert.Greater(t, xRight, 400.0)

	_, yUp, _, ok := p.Project(r3.Vec{Y: 1})
	require.True(t, ok)
	assert.Less(t, yUp, 300.0)

	// The top edge of the frustum at depth d sits at d*tan(fov/2).
	_, yTop, _, ok := p.Project(r3.Vec{Y: 10 * math.Tan(math.Pi/6)})
	require.True(t, ok)
	assert.InDelta(t, 0, yTop, 1e-9)
}

func TestProjectClipsOutsideFrustumDepth(t *testing.T) {
	p := NewProjector(defaultCamera(), 1280, 720)

	_, _, _, ok := p.Project(r3.Vec{Y: 1, Z: 20})
	assert.False(t, ok, "behind the camera")

	_, _, _, ok = p.Project(r3.Vec{Y: 1, Z: 14.95})
	assert.False(t, ok, "closer than near plane")

	_, _, _, ok = p.Project(r3.Vec{Y: 1, Z: -200})
	assert.False(t, ok, "beyond far plane")
}

func TestProjectorLookingStraightDown(t *testing.T) {
	cam := defaultCamera()
	cam.Eye = r3.Vec{Y: 10}
	p := NewProjector(cam, 100, 100)
	x, y, _, ok := p.Project(r3.Vec{})
	require.True(t, ok)
	assert.InDelta(t, 50, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)
}

func TestOrbitRoundTrip(t *testing.T) {
	eye := r3.Vec{X: 3, Y: 4, Z: 12}
	target := r3.Vec{X: 1, Y: -1}
	o := OrbitFrom(eye, target)

	back := o.Eye()
	assert.InDelta(t, eye.X, back.X, 1e-9)
	assert.InDelta(t, eye.Y, back.Y, 1e-9)
	assert.InDelta(t, eye.Z, back.Z, 1e-9)
	assert.InDelta(t, r3.Norm(r3.Sub(eye, target)), o.Radius, 1e-9)
}

func TestOrbitClamp(t *testing.T) {
	o := Orbit{Polar: -1, Radius: 0.2}.Clamp(1, 50)
	assert.Equal(t, polarEpsilon, o.Polar)
	assert.Equal(t, 1.0, o.Radius)

	o = Orbit{Polar: 4, Radius: 80}.Clamp(1, 50)
	assert.Equal(t, math.Pi-polarEpsilon, o.Polar)
	assert.Equal(t, 50.0, o.Radius)

	o = Orbit{Polar: 1, Radius: 500}.Clamp(1, 0)
	assert.Equal(t, 500.0, o.Radius)
}

func TestBoxFacesUnrotated(t *testing.T) {
	faces := BoxFaces(r3.Vec{X: 2}, 1, 0)

	top := faces[2]
	assert.InDelta(t, 1, top.Normal.Y, 1e-12)
	assert.InDelta(t, 0.5, top.Center.Y, 1e-12)
	for _, c := range top.Corners {
		assert.InDelta(t, 0.5, c.Y, 1e-12)
		assert.InDelta(t, 0.5, math.Abs(c.X-2), 1e-12)
		assert.InDelta(t, 0.5, math.Abs(c.Z), 1e-12)
	}
}

func TestBoxFacesQuarterTurnIsSameCube(t *testing.T) {
	still := BoxFaces(r3.Vec{}, 1, 0)
	turned := BoxFaces(r3.Vec{}, 1, math.Pi/2)

	// +X turns into +Y under a positive rotation about Z.
	assert.InDelta(t, 1, turned[0].Normal.Y, 1e-12)
	assert.InDelta(t, still[2].Center.Y, turned[0].Center.Y, 1e-12)

	corners := func(fs [6]Face) map[[3]int64]bool {
		m := make(map[[3]int64]bool)
		for _, f := range fs {
			for _, c := range f.Corners {
				m[[3]int64{int64(math.Round(c.X * 1e6)), int64(math.Round(c.Y * 1e6)), int64(math.Round(c.Z * 1e6))}] = true
			}
		}
		return m
	}
	assert.Equal(t, corners(still), corners(turned))
}

func TestShade(t *testing.T) {
	surf := Surface{
		Diffuse:   RGBOf(color.NRGBA{R: 0x8c, G: 0x8c, B: 0x8c, A: 0xff}),
		Specular:  RGBOf(color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}),
		Shininess: 30,
	}
	light := PointLight{Position: r3.Vec{Y: 5}, Color: RGB{1, 1, 1}, Intensity: 100, Decay: 2}
	ambient := AmbientLight{Color: RGB{1, 1, 1}, Intensity: 0.1}
	eye := r3.Vec{Y: 1, Z: 15}

	lit := Shade(surf, r3.Vec{X: 8, Y: 1}, r3.Vec{Y: 1}, eye, light, ambient)
	away := Shade(surf, r3.Vec{X: 8, Y: 1}, r3.Vec{Y: -1}, eye, light, ambient)

	ambientOnly := surf.Diffuse.Scale(0.1)
	assert.InDelta(t, ambientOnly.R, away.R, 1e-12)
	assert.Greater(t, lit.R, away.R)
	assert.LessOrEqual(t, lit.R, 1.0)

	far := Shade(surf, r3.Vec{X: 30, Y: 1}, r3.Vec{Y: 1}, eye, light, ambient)
	assert.Less(t, far.R, lit.R, "inverse-square falloff")
}

func TestAppendBoxCullsHiddenFaces(t *testing.T) {
	p := NewProjector(defaultCamera(), 1280, 720)
	sc := Scene{
		Light:   PointLight{Position: r3.Vec{Y: 5}, Color: RGB{1, 1, 1}, Intensity: 100, Decay: 2},
		Ambient: AmbientLight{Color: RGB{1, 1, 1}, Intensity: 0.1},
	}
	surf := Surface{Diffuse: RGB{0.5, 0.5, 0.5}, Shininess: 30}

	quads := AppendBox(nil, p, sc, surf, r3.Vec{}, 1, 0)
	// Straight ahead and below the eye: front and top only.
	assert.Len(t, quads, 2)

	quads = AppendBox(quads, p, sc, surf, r3.Vec{X: -5}, 1, 0)
	assert.Len(t, quads, 5, "off to the left also shows the right side")

	behind := AppendBox(nil, p, sc, surf, r3.Vec{Z: 30}, 1, 0)
	assert.Empty(t, behind)

	SortBackToFront(quads)
	for i := 1; i < len(quads); i++ {
		assert.GreaterOrEqual(t, quads[i-1].Depth, quads[i].Depth)
	}
}
