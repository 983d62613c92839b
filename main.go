package main

import (
	"flag"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rollgrid/clock"
	"github.com/milk9111/rollgrid/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "show the timing HUD")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	scenePath := flag.String("scene", "", "scene yaml to load instead of prefabs/scene.yaml")
	speed := flag.Float64("speed", 0, "roll speed override (quarter turns per second times pi/2)")
	watch := flag.Bool("watch", false, "reload camera, lights and material when the scene file changes")
	flag.Parse()
	log.SetPrefix("rollgrid: ")

	spec, err := loadScene(*scenePath)
	if err != nil {
		log.Fatal(err)
	}
	params := spec.Animation.Params()
	if *speed != 0 {
		params.Speed = *speed
	}
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(spec, params, clock.NewReal(), *debug)
	if err != nil {
		log.Fatal(err)
	}

	if *watch {
		dir := filepath.Dir(prefabs.DiskPath(prefabs.DefaultScene))
		if *scenePath != "" {
			dir = filepath.Dir(*scenePath)
		}
		w, err := prefabs.NewWatcher(dir)
		if err != nil {
			log.Printf("watch %s: %v", dir, err)
		} else {
			defer w.Close()
			game.Watch(w, *scenePath)
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(game.width), int(game.height))
	ebiten.SetWindowTitle("rollgrid")

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}

func loadScene(path string) (*prefabs.SceneSpec, error) {
	if path != "" {
		return prefabs.LoadSceneFile(path)
	}
	if mod, ok := prefabs.ModTime(prefabs.DefaultScene); ok {
		log.Printf("using %s from disk (modified %s)", prefabs.DiskPath(prefabs.DefaultScene), mod.Format(time.RFC3339))
	}
	return prefabs.LoadSceneSpec()
}
