// Package board implements the two interactive canvases of the workbench:
// the map and the clue wall. It owns the coordinate transforms between
// pointer pixels, canvas pixels and stored percent coordinates, the
// pan/zoom camera per canvas, the pointer interaction state machine, and
// the derivation of clue wall nodes and edges from a scenario.
package board

import "github.com/hallwright/scenario-workbench/pkg/scenario"

// Virtual canvas sizes in pixels, fixed per board.
const (
	MapCanvasWidth  = 1000.0
	MapCanvasHeight = 800.0

	WallCanvasWidth  = 1600.0
	WallCanvasHeight = 1200.0
)

// Point is a position in device pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is the measured placement of a canvas element in device pixels,
// before the camera's pan and zoom are applied. A zero-size rect means
// the canvas has not been laid out yet; conversions against it are
// dropped rather than dividing by zero.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Empty reports whether the rect has no measurable area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Camera is the pan/zoom state of one canvas. Pan is free during a drag;
// zoom is clamped to the camera's range on every update. The map and the
// clue wall each hold their own camera and never share state.
type Camera struct {
	Pan  Point
	Zoom float64

	minZoom  float64
	maxZoom  float64
	zoomStep float64
}

// NewMapCamera returns the camera for the map canvas (zoom 0.5..3.0 in
// steps of 0.2).
func NewMapCamera() *Camera {
	return &Camera{Zoom: 1, minZoom: 0.5, maxZoom: 3.0, zoomStep: 0.2}
}

// NewWallCamera returns the camera for the clue wall (zoom 0.5..2.0 in
// steps of 0.1).
func NewWallCamera() *Camera {
	return &Camera{Zoom: 1, minZoom: 0.5, maxZoom: 2.0, zoomStep: 0.1}
}

// ZoomIn raises the zoom one step, clamped to the camera's maximum.
func (c *Camera) ZoomIn() { c.SetZoom(c.Zoom + c.zoomStep) }

// ZoomOut lowers the zoom one step, clamped to the camera's minimum.
func (c *Camera) ZoomOut() { c.SetZoom(c.Zoom - c.zoomStep) }

// SetZoom sets the zoom scale, clamped to the camera's range.
func (c *Camera) SetZoom(z float64) {
	if z < c.minZoom {
		z = c.minZoom
	}
	if z > c.maxZoom {
		z = c.maxZoom
	}
	c.Zoom = z
}

// ScreenToPercent converts a pointer position to percent coordinates on
// the canvas: subtract the rect origin, undo the pan translation and zoom
// scale, normalize by the canvas size, and clamp each axis to [0,100].
// ok is false when the rect has not been measured yet, in which case the
// interaction should be dropped.
func (c *Camera) ScreenToPercent(p Point, rect Rect) (x, y float64, ok bool) {
	if rect.Empty() {
		return 0, 0, false
	}
	lx := (p.X - rect.X - c.Pan.X) / c.Zoom
	ly := (p.Y - rect.Y - c.Pan.Y) / c.Zoom
	x = scenario.Clamp(lx / rect.W * 100)
	y = scenario.Clamp(ly / rect.H * 100)
	return x, y, true
}

// PercentToScreen is the exact inverse of ScreenToPercent, used for
// rendering. It does not clamp.
func (c *Camera) PercentToScreen(x, y float64, rect Rect) Point {
	return Point{
		X: x/100*rect.W*c.Zoom + c.Pan.X + rect.X,
		Y: y/100*rect.H*c.Zoom + c.Pan.Y + rect.Y,
	}
}
