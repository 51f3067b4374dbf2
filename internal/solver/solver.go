// Package solver turns a boat's own motion and the apparent wind measured
// aboard into the true wind.
//
// Bearings follow compass convention: measured clockwise from north, so a
// vector of length v at bearing b has components (v·sin b, v·cos b) in an
// east/north frame.
package solver

import (
	"math"

	"github.com/hhkbp2/go-logging"
	"github.com/ngmaloney/truewind/internal/beaufort"
	"github.com/ngmaloney/truewind/internal/models"
	"gonum.org/v1/gonum/spatial/r2"
)

// calmThreshold is the speed under which the direction is reported as 0
const calmThreshold = 1e-6

// Solve computes the true wind for a reading.
// It is total over finite inputs and has no side effects.
func Solve(r models.Reading) models.TrueWindResult {
	heading := NormalizeDegrees(r.Heading)

	// Apparent bearing is where the wind comes from; work with where it goes.
	windTo := NormalizeDegrees(r.ApparentWindBearing + 180)
	if r.Frame == models.HeadingReferenced {
		windTo = NormalizeDegrees(windTo + heading)
	}

	wind := Polar(r.ApparentWindSpeed, windTo)
	boat := Polar(r.BoatSpeed, heading)
	trueWind := r2.Sub(wind, boat)

	speed := r2.Norm(trueWind)
	direction := 0.0
	if speed > calmThreshold {
		direction = Bearing(trueWind)
	}

	force := beaufort.Classify(speed)

	logging.GetLogger("truewind").Debugf("solve %+v -> %.4f kn @ %.2f deg (x=%.4f y=%.4f)",
		r, speed, direction, trueWind.X, trueWind.Y)

	return models.TrueWindResult{
		SpeedKn:       speed,
		DirectionDeg:  direction,
		VectorX:       trueWind.X,
		VectorY:       trueWind.Y,
		BeaufortForce: force.Number,
		BeaufortLabel: force.Label,
		Heading:       heading,
	}
}

// Polar returns the east/north components of a vector of the given length
// pointing at a compass bearing in degrees
func Polar(length, bearingDeg float64) r2.Vec {
	rad := bearingDeg * math.Pi / 180
	return r2.Vec{X: length * math.Sin(rad), Y: length * math.Cos(rad)}
}

// Bearing returns the compass bearing of an east/north vector in [0,360).
// The atan2 arguments are swapped to measure clockwise from north.
func Bearing(v r2.Vec) float64 {
	return NormalizeDegrees(math.Atan2(v.X, v.Y) * 180 / math.Pi)
}

// NormalizeDegrees maps any angle into [0,360)
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// -tiny + 360 rounds up to exactly 360
	if d >= 360 {
		d = 0
	}
	return d
}
