package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/rollgrid/clock"
	"github.com/milk9111/rollgrid/ecs"
	"github.com/milk9111/rollgrid/ecs/entity"
	"github.com/milk9111/rollgrid/ecs/system"
	"github.com/milk9111/rollgrid/prefabs"
	"github.com/milk9111/rollgrid/roll"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

var defaultClearColor = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	scene     *entity.Scene
	spec      *prefabs.SceneSpec
	params    roll.Params
	clear     color.Color

	rolling *system.RollSystem
	orbit   *system.OrbitSystem
	camera  *system.CameraSystem
	render  *system.RenderSystem

	watcher   *prefabs.Watcher
	scenePath string

	ui     *ebitenui.UI
	hud    ebtext.Face
	paused bool
	debug  bool
	quit   bool

	clipboardReady bool
	width, height  float64
}

func NewGame(spec *prefabs.SceneSpec, params roll.Params, c clock.Clock, debug bool) (*Game, error) {
	width, height := float64(baseWidth), float64(baseHeight)
	if spec.Renderer.Width > 0 && spec.Renderer.Height > 0 {
		width, height = float64(spec.Renderer.Width), float64(spec.Renderer.Height)
	}

	world := ecs.NewWorld()
	scene, err := entity.BuildScene(world, spec, params, width/height)
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:   world,
		scene:   scene,
		spec:    spec,
		params:  params,
		clear:   spec.Renderer.ClearColor.ColorOr(defaultClearColor),
		rolling: system.NewRollSystem(c, params),
		orbit:   system.NewOrbitSystem(),
		camera:  system.NewCameraSystem(),
		render:  system.NewRenderSystem(),
		hud:     ebtext.NewGoXFace(basicfont.Face7x13),
		debug:   debug,
		width:   width,
		height:  height,
	}
	g.scheduler = ecs.NewScheduler(g.orbit, g.camera, g.rolling, g.render)
	g.ui = NewPauseUI(g)
	return g, nil
}

// Watch hooks a prefab watcher up to the game. path is the scene file to
// re-read when it reports a change; empty means the default prefab lookup.
func (g *Game) Watch(w *prefabs.Watcher, path string) {
	g.watcher = w
	g.scenePath = path
}

func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.setPaused(!g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySnapshot()
	}

	g.scheduler.Update(g.world)

	if g.paused {
		g.ui.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.clear)
	g.scheduler.Draw(g.world, screen)

	if g.debug {
		g.drawHUD(screen)
	}
	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	g.camera.SetViewport(g.width, g.height)
	g.orbit.SetViewport(g.width, g.height)
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	g.rolling.SetPaused(paused)
	g.orbit.SetEnabled(!paused)
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadScene()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("scene watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reloadScene() {
	var (
		spec *prefabs.SceneSpec
		err  error
	)
	if g.scenePath != "" {
		spec, err = prefabs.LoadSceneFile(g.scenePath)
	} else {
		spec, err = prefabs.LoadSceneSpec()
	}
	if err != nil {
		log.Printf("scene reload failed, keeping previous scene: %v", err)
		return
	}

	if err := g.scene.Reload(g.world, spec); err != nil {
		log.Printf("scene reload failed, keeping previous scene: %v", err)
		return
	}
	if spec.Animation.Params() != g.spec.Animation.Params() {
		log.Printf("scene reload: animation settings only apply at startup, still using %+v", g.params)
	}
	g.clear = spec.Renderer.ClearColor.ColorOr(defaultClearColor)
	g.spec = spec
	log.Printf("scene reloaded: %s", spec.Name)
}

func (g *Game) copySnapshot() {
	snapshot := system.Snapshot(g.world, g.rolling.Elapsed())
	if !g.clipboardReady {
		if err := clipboard.Init(); err != nil {
			log.Printf("clipboard unavailable (%v), snapshot follows:\n%s", err, snapshot)
			return
		}
		g.clipboardReady = true
	}
	clipboard.Write(clipboard.FmtText, []byte(snapshot))
	log.Printf("copied %d box poses to clipboard", g.params.BoxCount)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	elapsed := g.rolling.Elapsed()
	n, phase := roll.Step(elapsed * g.params.Speed)
	lines := []string{
		fmt.Sprintf("FPS: %.2f  TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("t: %.3fs  n: %.0f  phase: %+.3f", elapsed, n, phase),
		fmt.Sprintf("boxes: %d  size: %.2f  speed: %.2f", g.params.BoxCount, g.params.BoxSize, g.params.Speed),
	}
	if g.paused {
		lines = append(lines, "paused")
	}

	for i, line := range lines {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(8, 8+float64(i)*16)
		op.ColorScale.ScaleWithColor(colornames.White)
		ebtext.Draw(screen, line, g.hud, op)
	}
}
