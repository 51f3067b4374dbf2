package compass

import (
	"math"

	"github.com/ngmaloney/truewind/internal/models"
	"gonum.org/v1/gonum/spatial/r2"
)

// Frame holds the screen-space rotations, in radians, applied to each part
// of the compass. Positive angles turn clockwise because screen y grows down.
type Frame struct {
	Ticks  float64 // ring, tick marks and their labels
	Boat   float64 // boat glyph
	Vector float64 // wind arrow
}

// northUp keeps the ring fixed and turns the boat to its heading
func northUp(headingDeg float64) Frame {
	return Frame{Boat: radians(headingDeg)}
}

// headingUp keeps the bow pointing up and turns the ring (and the wind
// arrow with it) the other way
func headingUp(headingDeg float64) Frame {
	rot := radians(-headingDeg)
	return Frame{Ticks: rot, Vector: rot}
}

var frames = map[models.OrientationMode]func(float64) Frame{
	models.NorthUp:   northUp,
	models.HeadingUp: headingUp,
}

// FrameFor returns the transform for a display orientation.
// Unknown modes fall back to north-up.
func FrameFor(mode models.OrientationMode, headingDeg float64) Frame {
	f, ok := frames[mode]
	if !ok {
		f = northUp
	}
	return f(headingDeg)
}

// TickPoint maps a ring point at radius r and compass angle deg to screen
// offsets from the center
func (f Frame) TickPoint(r, deg float64) r2.Vec {
	a := radians(deg)
	return Rotate(r2.Vec{X: r * math.Sin(a), Y: -r * math.Cos(a)}, f.Ticks)
}

// BoatPoint maps a point of the upright boat glyph to screen offsets
func (f Frame) BoatPoint(p r2.Vec) r2.Vec {
	return Rotate(p, f.Boat)
}

// WindVector maps an east/north wind vector to screen offsets
func (f Frame) WindVector(east, north float64) r2.Vec {
	return Rotate(r2.Vec{X: east, Y: -north}, f.Vector)
}

// Rotate turns p about the origin by angle radians
func Rotate(p r2.Vec, angle float64) r2.Vec {
	if angle == 0 {
		return p
	}
	sin, cos := math.Sincos(angle)
	return r2.Vec{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
