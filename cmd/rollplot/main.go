// Command rollplot draws box trajectories over time as PNG line plots.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/milk9111/rollgrid/roll"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func main() {
	indices := flag.String("index", "0,50", "comma separated box indices to trace")
	duration := flag.Float64("duration", 10, "seconds of animation to sample")
	step := flag.Float64("step", 1.0/120, "sample spacing in seconds")
	speed := flag.Float64("speed", 0, "speed override")
	size := flag.Float64("size", 0, "box size override")
	out := flag.String("out", "poses", "output prefix; writes <out>_x.png, <out>_y.png and <out>_rot.png")
	htmlOut := flag.String("html", "", "also write a top-down layout chart to this HTML file")
	at := flag.Float64("at", 0, "time in seconds for the -html layout chart")
	flag.Parse()
	log.SetPrefix("rollplot: ")

	params := roll.DefaultParams()
	if *speed != 0 {
		params.Speed = *speed
	}
	if *size != 0 {
		params.BoxSize = *size
	}
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}

	idx, err := parseIndices(*indices, params.BoxCount)
	if err != nil {
		log.Fatal(err)
	}

	plots, err := tracePlots(params, idx, *duration, *step)
	if err != nil {
		log.Fatal(err)
	}
	for _, name := range []string{"x", "y", "rot"} {
		file := fmt.Sprintf("%s_%s.png", *out, name)
		if err := plots[name].Save(14*vg.Inch, 6*vg.Inch, file); err != nil {
			log.Fatalf("save %s: %v", file, err)
		}
		log.Printf("wrote %s", file)
	}

	if *htmlOut != "" {
		if err := writeGridChart(*htmlOut, params, *at); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *htmlOut)
	}
}

func writeGridChart(path string, params roll.Params, at float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gridChart(f, params, at); err != nil {
		_ = f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}

func parseIndices(s string, boxCount int) ([]int, error) {
	var idx []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		i, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("index %q: %w", field, err)
		}
		if i < 0 || i >= boxCount {
			return nil, fmt.Errorf("index %d outside [0, %d)", i, boxCount)
		}
		idx = append(idx, i)
	}
	if len(idx) == 0 {
		return nil, fmt.Errorf("no indices given")
	}
	return idx, nil
}

// samples returns the X, Y and rotation traces of one box.
func samples(params roll.Params, index int, duration, step float64) (xs, ys, rots plotter.XYs) {
	count := int(duration/step) + 1
	xs = make(plotter.XYs, 0, count)
	ys = make(plotter.XYs, 0, count)
	rots = make(plotter.XYs, 0, count)
	for i := 0; i < count; i++ {
		t := float64(i) * step
		pose := roll.At(params, t, index)
		xs = append(xs, plotter.XY{X: t, Y: pose.Position.X})
		ys = append(ys, plotter.XY{X: t, Y: pose.Position.Y})
		rots = append(rots, plotter.XY{X: t, Y: pose.RotationZ})
	}
	return xs, ys, rots
}

func tracePlots(params roll.Params, indices []int, duration, step float64) (map[string]*plot.Plot, error) {
	if duration <= 0 || step <= 0 {
		return nil, fmt.Errorf("duration and step must be positive")
	}

	newPlot := func(title, ylabel string) *plot.Plot {
		p := plot.New()
		p.Title.Text = title
		p.X.Label.Text = "Time (s)"
		p.Y.Label.Text = ylabel
		p.Legend.Top = true
		p.Legend.Left = false
		p.Legend.XOffs = -10
		p.Legend.YOffs = -10
		return p
	}
	plots := map[string]*plot.Plot{
		"x":   newPlot("Lane position", "X"),
		"y":   newPlot("Height", "Y"),
		"rot": newPlot("Rotation", "Rotation Z (rad)"),
	}

	for i, index := range indices {
		xs, ys, rots := samples(params, index, duration, step)
		label := fmt.Sprintf("box %d", index)
		for name, pts := range map[string]plotter.XYs{"x": xs, "y": ys, "rot": rots} {
			line, err := plotter.NewLine(pts)
			if err != nil {
				return nil, err
			}
			line.Color = plotutil.Color(i)
			line.Width = vg.Points(1)
			plots[name].Add(line)
			plots[name].Legend.Add(label, line)
		}
	}
	return plots, nil
}
