// Package terrain generates the map background: a river, a loose road
// grid and scattered building footprints, all as a pure function of one
// integer seed. The same seed always produces the same geometry; the map
// style changes colors and stroke weights, never a coordinate.
package terrain

import (
	"math"
	"math/rand"
)

// The generator consumes draws from a sine-based sequence in a fixed
// order: one draw for the river's starting y, one per river sample, then
// per road pair one base coordinate and one skew per axis, then one draw
// for the building count and five per building (w, h, x, y, rotation).
// Changing the order breaks every saved map, so it is part of the
// contract, not an implementation detail.

type sineRand struct {
	seed float64
}

// next advances the sequence by exactly one step and returns a value in
// [0,1). The recurrence is frac(sin(seed)*10000) with the seed
// incremented once per draw.
func (r *sineRand) next() float64 {
	x := math.Sin(r.seed) * 10000
	r.seed++
	return x - math.Floor(x)
}

// Geometry constants, all in the 100×100 unit space of the map.
const (
	riverStep    = 2.0
	riverWander  = 5.0
	roadCount    = 10
	roadSkew     = 10.0
	buildingsMin = 30
	buildingsVar = 20
	buildingSide = 6.0
	buildingTilt = 20.0
)

// Point is a vertex on the river polyline.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Road is one straight road segment.
type Road struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Building is one rotated rectangular footprint. Rotation is in degrees
// about the rectangle's center.
type Building struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	W        float64 `json:"w"`
	H        float64 `json:"h"`
	Rotation float64 `json:"rotation"`
}

// Layout is the full generated geometry for one seed.
type Layout struct {
	Seed      int64      `json:"seed"`
	River     []Point    `json:"river"`
	Roads     []Road     `json:"roads"`
	Buildings []Building `json:"buildings"`
}

// Generate produces the layout for a seed. Two calls with the same seed
// return identical geometry, point for point.
func Generate(seed int64) Layout {
	r := &sineRand{seed: float64(seed)}
	layout := Layout{Seed: seed}

	// River: a wandering polyline sampled every riverStep units across
	// the full width. The running y is unclamped; only the emitted
	// vertex is pinned to the canvas.
	ry := r.next() * 100
	for x := 0.0; x <= 100; x += riverStep {
		ry += (r.next() - 0.5) * riverWander
		layout.River = append(layout.River, Point{X: x, Y: clamp(ry)})
	}

	// Roads: each iteration shares one base coordinate between a
	// horizontal and a vertical road, each with its own skew draw.
	for i := 0; i < roadCount; i++ {
		p := r.next() * 100
		layout.Roads = append(layout.Roads, Road{X1: 0, Y1: p, X2: 100, Y2: p + (r.next()-0.5)*roadSkew})
		layout.Roads = append(layout.Roads, Road{X1: p, Y1: 0, X2: p + (r.next()-0.5)*roadSkew, Y2: 100})
	}

	// Buildings: count first, then five draws per footprint in w, h, x,
	// y, rotation order.
	n := buildingsMin + int(math.Floor(r.next()*buildingsVar))
	for i := 0; i < n; i++ {
		w := 2 + r.next()*buildingSide
		h := 2 + r.next()*buildingSide
		x := r.next() * (100 - w)
		y := r.next() * (100 - h)
		rot := (r.next() - 0.5) * buildingTilt
		layout.Buildings = append(layout.Buildings, Building{X: x, Y: y, W: w, H: h, Rotation: rot})
	}

	return layout
}

// NewSeed picks a fresh random seed for the regenerate action. It is the
// only source of geometry change; nothing derives a seed from prior
// state.
func NewSeed() int64 {
	return int64(rand.Intn(10000))
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
