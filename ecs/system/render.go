package system

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rollgrid/ecs"
	"github.com/milk9111/rollgrid/ecs/component"
	"github.com/milk9111/rollgrid/view"
	"gonum.org/v1/gonum/spatial/r3"
)

const maxVertices = 1<<16 - 1

// RenderSystem projects every box through the camera, sorts the visible
// faces back to front and fills them as flat-shaded triangles.
type RenderSystem struct {
	quads    []view.Quad
	vertices []ebiten.Vertex
	indices  []uint16
	white    *ebiten.Image
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Update(*ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	bounds := screen.Bounds()
	r.quads = r.Collect(w, float64(bounds.Dx()), float64(bounds.Dy()))
	if len(r.quads) == 0 {
		return
	}

	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, q := range r.quads {
		if len(r.vertices)+4 > maxVertices {
			r.flush(screen)
		}
		base := uint16(len(r.vertices))
		cr, cg, cb := float32(q.Color.R), float32(q.Color.G), float32(q.Color.B)
		for _, pt := range q.Points {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   pt[0],
				DstY:   pt[1],
				SrcX:   1,
				SrcY:   1,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: 1,
			})
		}
		r.indices = append(r.indices, base, base+1, base+2, base, base+2, base+3)
	}
	r.flush(screen)
}

func (r *RenderSystem) flush(screen *ebiten.Image) {
	if len(r.indices) == 0 {
		return
	}
	screen.DrawTriangles(r.vertices, r.indices, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

// Collect returns the visible box faces for a viewport, back to front.
// The returned slice is reused by the next call.
func (r *RenderSystem) Collect(w *ecs.World, width, height float64) []view.Quad {
	quads := r.quads[:0]
	cam, camT, ok := findCamera(w)
	if !ok {
		return quads
	}

	proj := view.NewProjector(CameraView(cam, camT), width, height)
	sc := sceneLights(w)

	var (
		lastMat *component.Material
		surf    view.Surface
	)
	ecs.ForEach3(w, component.BoxComponent.Kind(), component.TransformComponent.Kind(), component.MaterialComponent.Kind(),
		func(_ ecs.Entity, box *component.Box, t *component.Transform, mat *component.Material) {
			if mat != lastMat {
				surf = surfaceOf(mat)
				lastMat = mat
			}
			center := r3.Vec{X: t.X, Y: t.Y, Z: t.Z}
			quads = view.AppendBox(quads, proj, sc, surf, center, box.Size, t.RotationZ)
		})

	view.SortBackToFront(quads)
	return quads
}

func surfaceOf(m *component.Material) view.Surface {
	return view.Surface{
		Diffuse:   view.RGBOf(m.Color),
		Specular:  view.RGBOf(m.Specular),
		Shininess: m.Shininess,
	}
}

func sceneLights(w *ecs.World) view.Scene {
	var sc view.Scene
	if e, ok := ecs.First(w, component.PointLightComponent.Kind()); ok {
		light, _ := ecs.Get(w, e, component.PointLightComponent.Kind())
		sc.Light = view.PointLight{
			Color:     view.RGBOf(light.Color),
			Intensity: light.Intensity,
			Decay:     light.Decay,
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			sc.Light.Position = r3.Vec{X: t.X, Y: t.Y, Z: t.Z}
		}
	}
	if e, ok := ecs.First(w, component.AmbientLightComponent.Kind()); ok {
		amb, _ := ecs.Get(w, e, component.AmbientLightComponent.Kind())
		sc.Ambient = view.AmbientLight{Color: view.RGBOf(amb.Color), Intensity: amb.Intensity}
	}
	return sc
}
