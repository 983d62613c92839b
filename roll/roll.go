// Package roll computes the poses of boxes tumbling edge over edge along a
// fixed set of lanes. A pose is a closed-form function of elapsed time and
// the box index, so nothing is carried from one frame to the next.
package roll

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// Lanes is the number of slots a box visits along X before wrapping.
	Lanes = 20
	// RowWidth is the number of consecutive indices sharing a Z row.
	RowWidth = 10
	// RowSpacing is the Z distance between rows in world units.
	RowSpacing = 2.0
	// QuarterPeriod is the scaled time one edge-over-edge roll takes.
	QuarterPeriod = math.Pi / 2

	laneCenter = (Lanes - 1) / 2.0
	rowCenter  = 4.5
)

var ErrInvalidParams = errors.New("roll: invalid params")

// Params are fixed for the lifetime of a grid.
type Params struct {
	BoxSize  float64
	Speed    float64
	BoxCount int
}

func DefaultParams() Params {
	return Params{BoxSize: 1, Speed: 3, BoxCount: 100}
}

func (p Params) Validate() error {
	if !(p.BoxSize > 0) || math.IsInf(p.BoxSize, 0) {
		return fmt.Errorf("%w: box size %v must be positive and finite", ErrInvalidParams, p.BoxSize)
	}
	if !(p.Speed > 0) || math.IsInf(p.Speed, 0) {
		return fmt.Errorf("%w: speed %v must be positive and finite", ErrInvalidParams, p.Speed)
	}
	if p.BoxCount <= 0 {
		return fmt.Errorf("%w: box count %d must be positive", ErrInvalidParams, p.BoxCount)
	}
	return nil
}

// Pose is an absolute placement; applying the same pose twice is a no-op.
type Pose struct {
	Position  r3.Vec
	RotationZ float64
}

// Step splits scaled time into the whole quarter periods elapsed and the
// signed phase around the centre of the current one, in [-π/4, π/4).
// n is returned as an integral float so it never overflows.
func Step(scaled float64) (n, phase float64) {
	n = math.Floor(scaled / QuarterPeriod)
	phase = scaled - QuarterPeriod*n - QuarterPeriod*0.5
	return n, phase
}

// Radius is half the face diagonal: the arc traced by the pivoting corner.
func Radius(boxSize float64) float64 {
	return boxSize * 0.5 * math.Sqrt2
}

// Lane returns the slot in [0, Lanes) for a box after n quarter periods.
// Only n mod Lanes matters, which keeps the result exact for any n.
func Lane(n float64, index int) int {
	step := int(math.Mod(n, Lanes))
	return (step + (index*2)%Lanes) % Lanes
}

func LaneOffset(n float64, index int, boxSize float64) float64 {
	return (float64(Lane(n, index)) - laneCenter) * boxSize
}

func Row(index int) int {
	return index / RowWidth
}

func RowOffset(index int) float64 {
	return (float64(Row(index)) - rowCenter) * RowSpacing
}

// At returns the pose of box index after elapsed seconds.
func At(p Params, elapsed float64, index int) Pose {
	checkArgs(p, elapsed, index)
	n, phase := Step(elapsed * p.Speed)
	x, y, rot := pivot(p.BoxSize, phase)
	return place(p.BoxSize, n, x, y, rot, index)
}

// Fill writes the poses of every box into dst, index i at dst[i], reusing
// its capacity.
func Fill(p Params, elapsed float64, dst []Pose) []Pose {
	checkArgs(p, elapsed, 0)
	if cap(dst) < p.BoxCount {
		dst = make([]Pose, 0, p.BoxCount)
	}
	dst = dst[:0]

	n, phase := Step(elapsed * p.Speed)
	x, y, rot := pivot(p.BoxSize, phase)
	for i := 0; i < p.BoxCount; i++ {
		dst = append(dst, place(p.BoxSize, n, x, y, rot, i))
	}
	return dst
}

// pivot is the lane-independent part shared by every box in a frame.
func pivot(boxSize, phase float64) (x, y, rot float64) {
	r := Radius(boxSize)
	x = r * math.Sin(phase)
	y = r * math.Cos(phase)
	rot = -phase + math.Pi/4
	return x, y, rot
}

func place(boxSize, n, x, y, rot float64, index int) Pose {
	return Pose{
		Position: r3.Vec{
			X: x + LaneOffset(n, index, boxSize),
			Y: y,
			Z: RowOffset(index),
		},
		RotationZ: rot,
	}
}

func checkArgs(p Params, elapsed float64, index int) {
	if !debugChecks {
		return
	}
	if err := p.Validate(); err != nil {
		panic(err)
	}
	if index < 0 || index >= p.BoxCount {
		panic(fmt.Sprintf("roll: index %d out of range [0, %d)", index, p.BoxCount))
	}
	if !(elapsed >= 0) || math.IsInf(elapsed, 0) {
		panic(fmt.Sprintf("roll: elapsed %v must be finite and non-negative", elapsed))
	}
}
