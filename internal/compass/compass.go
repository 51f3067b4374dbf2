// Package compass lays out and draws the compass rose with the boat glyph
// and the true wind arrow.
//
// Layout is computed as a Scene of plain screen coordinates, then drawn onto
// any Surface. Rendering clears the surface first, so drawing the same
// scene twice gives the same picture.
package compass

import (
	"math"
	"strconv"

	"github.com/ngmaloney/truewind/internal/models"
	"gonum.org/v1/gonum/spatial/r2"
)

// Geometry of the rose, in display units
const (
	Margin         = 40.0 // room left outside the ring for tick labels
	TickStep       = 30   // degrees between ticks
	TickLength     = 25.0
	LabelOffset    = 15.0
	BoatHalfLength = 0.3  // fraction of the ring radius
	BoatHalfWidth  = 0.15 // fraction of the ring radius
	ReferenceKnots = 6.0  // wind speed drawn at the reference length
)

// Surface is a drawing target. Coordinates are screen units with y down.
type Surface interface {
	Clear()
	Circle(center r2.Vec, radius float64)
	Line(from, to r2.Vec)
	Polygon(points []r2.Vec)
	Text(at r2.Vec, s string)
	Arrow(from, to r2.Vec)
}

// Tick is one graduation of the ring
type Tick struct {
	Degrees int
	Outer   r2.Vec
	Inner   r2.Vec
	Label   r2.Vec
}

// Scene is a fully laid out compass, in absolute screen coordinates
type Scene struct {
	Center   r2.Vec
	Radius   float64
	Ticks    []Tick
	Boat     []r2.Vec // apex first
	ArrowEnd r2.Vec
	Scale    float64 // display scale applied to the wind vector
}

// Layout returns the viewport center and ring radius for a viewport.
// The radius never goes below zero.
func Layout(width, height float64) (center r2.Vec, radius float64) {
	center = r2.Vec{X: width / 2, Y: height / 2}
	radius = math.Max(0, math.Min(width, height)/2-Margin)
	return center, radius
}

// DisplayScale returns the factor applied to a wind vector of the given
// length so that the arrow stays inside the reference length.
func DisplayScale(radius, lengthKn float64) float64 {
	if lengthKn <= 0 {
		return 0
	}
	return math.Min(1, (radius/ReferenceKnots)/lengthKn)
}

// Build lays out the compass for a solved result
func Build(width, height float64, result models.TrueWindResult, mode models.OrientationMode) Scene {
	center, radius := Layout(width, height)
	frame := FrameFor(mode, result.Heading)

	scene := Scene{
		Center: center,
		Radius: radius,
		Ticks:  ticks(center, radius, frame),
		Boat:   boat(center, radius, frame),
	}

	length := math.Hypot(result.VectorX, result.VectorY)
	scene.Scale = DisplayScale(radius, length)
	v := frame.WindVector(result.VectorX, result.VectorY)
	scene.ArrowEnd = r2.Add(center, r2.Scale(ReferenceKnots*scene.Scale, v))

	return scene
}

func ticks(center r2.Vec, radius float64, frame Frame) []Tick {
	out := make([]Tick, 0, 360/TickStep)
	for deg := 0; deg < 360; deg += TickStep {
		d := float64(deg)
		out = append(out, Tick{
			Degrees: deg,
			Outer:   r2.Add(center, frame.TickPoint(radius, d)),
			Inner:   r2.Add(center, frame.TickPoint(radius-TickLength, d)),
			Label:   r2.Add(center, frame.TickPoint(radius+LabelOffset, d)),
		})
	}
	return out
}

func boat(center r2.Vec, radius float64, frame Frame) []r2.Vec {
	local := []r2.Vec{
		{X: 0, Y: -radius * BoatHalfLength},
		{X: radius * BoatHalfWidth, Y: radius * BoatHalfLength},
		{X: -radius * BoatHalfWidth, Y: radius * BoatHalfLength},
	}
	pts := make([]r2.Vec, len(local))
	for i, p := range local {
		pts[i] = r2.Add(center, frame.BoatPoint(p))
	}
	return pts
}

// Draw clears the surface and paints the scene
func (s Scene) Draw(surface Surface) {
	surface.Clear()
	surface.Circle(s.Center, s.Radius)
	for _, t := range s.Ticks {
		surface.Line(t.Outer, t.Inner)
		surface.Text(t.Label, strconv.Itoa(t.Degrees))
	}
	surface.Polygon(s.Boat)
	surface.Arrow(s.Center, s.ArrowEnd)
}

// Render lays out and draws the compass for a result in one step
func Render(surface Surface, width, height float64, result models.TrueWindResult, mode models.OrientationMode) Scene {
	scene := Build(width, height, result, mode)
	scene.Draw(surface)
	return scene
}
