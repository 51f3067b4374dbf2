// Package beaufort classifies wind speeds on the Beaufort scale.
package beaufort

// Force is a Beaufort number together with its name
type Force struct {
	Number int
	Label  string
}

// Level describes one step of the scale
type Level struct {
	Force      Force
	UpperBound float64 // knots, exclusive; 0 for the open-ended top force
}

// upper bounds in knots; force n covers [limits[n-1], limits[n])
var limits = [...]float64{1, 4, 7, 11, 17, 22, 28, 34, 41, 48, 56, 64}

var names = [...]string{
	"Calmo",
	"Vento leve",
	"Brisa fraca",
	"Brisa leve",
	"Brisa moderada",
	"Brisa fresca",
	"Vento fresco",
	"Vento forte",
	"Tempestuoso",
	"Tempestade",
	"Tempestade forte",
	"Furacão",
}

// MaxForce is the top of the scale
const MaxForce = len(limits)

// Classify returns the force for a speed in knots.
// A speed exactly on a limit belongs to the higher force.
func Classify(speedKn float64) Force {
	for i, lim := range limits {
		if speedKn < lim {
			return Force{Number: i, Label: names[i]}
		}
	}
	return Force{Number: MaxForce, Label: names[len(names)-1]}
}

// Table returns every level of the scale in ascending order
func Table() []Level {
	levels := make([]Level, 0, MaxForce+1)
	for i, lim := range limits {
		levels = append(levels, Level{Force: Force{Number: i, Label: names[i]}, UpperBound: lim})
	}
	levels = append(levels, Level{Force: Force{Number: MaxForce, Label: names[len(names)-1]}})
	return levels
}
