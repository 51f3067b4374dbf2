package models

import "fmt"

// ReferenceFrame describes what the apparent wind bearing was measured against
type ReferenceFrame string

const (
	NorthReferenced   ReferenceFrame = "north"   // Bearing relative to true north
	HeadingReferenced ReferenceFrame = "heading" // Bearing relative to the bow
)

// ParseReferenceFrame converts a frame name into a ReferenceFrame
func ParseReferenceFrame(s string) (ReferenceFrame, error) {
	switch ReferenceFrame(s) {
	case NorthReferenced, HeadingReferenced:
		return ReferenceFrame(s), nil
	}
	return "", fmt.Errorf("unknown reference frame %q (want %q or %q)", s, NorthReferenced, HeadingReferenced)
}

// Next returns the other reference frame
func (f ReferenceFrame) Next() ReferenceFrame {
	if f == HeadingReferenced {
		return NorthReferenced
	}
	return HeadingReferenced
}

// Label returns the short name shown next to the frame toggle
func (f ReferenceFrame) Label() string {
	if f == HeadingReferenced {
		return "Heading ref"
	}
	return "North ref"
}

// OrientationMode selects which entity stays fixed on the compass display
type OrientationMode string

const (
	NorthUp   OrientationMode = "NorthUP" // Ring fixed, boat rotates
	HeadingUp OrientationMode = "HeadUP"  // Boat fixed, ring rotates
)

// ParseOrientationMode converts a mode name into an OrientationMode
func ParseOrientationMode(s string) (OrientationMode, error) {
	switch OrientationMode(s) {
	case NorthUp, HeadingUp:
		return OrientationMode(s), nil
	}
	return "", fmt.Errorf("unknown orientation %q (want %q or %q)", s, NorthUp, HeadingUp)
}

// Next returns the other orientation mode
func (o OrientationMode) Next() OrientationMode {
	if o == HeadingUp {
		return NorthUp
	}
	return HeadingUp
}

// Reading is one set of instrument values entered by the user
type Reading struct {
	BoatSpeed           float64 // knots
	Heading             float64 // degrees
	ApparentWindSpeed   float64 // knots
	ApparentWindBearing float64 // degrees, direction the wind comes from
	Frame               ReferenceFrame
}

// TrueWindResult is the solved true wind for a Reading
type TrueWindResult struct {
	SpeedKn       float64 // knots, >= 0
	DirectionDeg  float64 // degrees in [0,360), 0 when calm
	VectorX       float64 // east component, knots
	VectorY       float64 // north component, knots
	BeaufortForce int     // 0-12
	BeaufortLabel string
	Heading       float64 // boat heading the result was solved for
}

// String formats the result the way the readout shows it
func (r TrueWindResult) String() string {
	return fmt.Sprintf("%.2f kn · %.1f° · Bft %d (%s)",
		r.SpeedKn, r.DirectionDeg, r.BeaufortForce, r.BeaufortLabel)
}

// ViewState holds presentation-only settings of the compass display
type ViewState struct {
	Orientation OrientationMode
}
