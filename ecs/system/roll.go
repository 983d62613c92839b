package system

import (
	"fmt"
	"sort"
	"strings"

	"github.com/milk9111/rollgrid/clock"
	"github.com/milk9111/rollgrid/ecs"
	"github.com/milk9111/rollgrid/ecs/component"
	"github.com/milk9111/rollgrid/roll"
)

// RollSystem samples the clock once per frame and writes every box's pose.
type RollSystem struct {
	clock   clock.Clock
	params  roll.Params
	paused  bool
	elapsed float64
}

func NewRollSystem(c clock.Clock, params roll.Params) *RollSystem {
	return &RollSystem{clock: c, params: params}
}

func (s *RollSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.paused {
		return
	}

	s.elapsed = s.clock.Elapsed()
	ecs.ForEach2(w, component.BoxComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, box *component.Box, t *component.Transform) {
		ApplyPose(t, roll.At(s.params, s.elapsed, box.Index))
	})
}

// SetPaused freezes the boxes. The clock keeps running, so resuming jumps
// straight to the current pose.
func (s *RollSystem) SetPaused(paused bool) {
	s.paused = paused
}

func (s *RollSystem) Paused() bool {
	return s.paused
}

// Elapsed is the clock sample used by the last update.
func (s *RollSystem) Elapsed() float64 {
	return s.elapsed
}

func (s *RollSystem) Params() roll.Params {
	return s.params
}

// ApplyPose overwrites t with p.
func ApplyPose(t *component.Transform, p roll.Pose) {
	t.X = p.Position.X
	t.Y = p.Position.Y
	t.Z = p.Position.Z
	t.RotationZ = p.RotationZ
}

// Snapshot renders the current box transforms as text, one line per box in
// index order.
func Snapshot(w *ecs.World, elapsed float64) string {
	type row struct {
		index int
		t     component.Transform
	}
	var rows []row
	ecs.ForEach2(w, component.BoxComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, box *component.Box, t *component.Transform) {
		rows = append(rows, row{index: box.Index, t: *t})
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].index < rows[j].index })

	var b strings.Builder
	fmt.Fprintf(&b, "# t=%.4f boxes=%d\n", elapsed, len(rows))
	b.WriteString("index\tx\ty\tz\trot_z\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%d\t%.4f\t%.4f\t%.4f\t%.4f\n", r.index, r.t.X, r.t.Y, r.t.Z, r.t.RotationZ)
	}
	return b.String()
}
