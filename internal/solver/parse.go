package solver

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ngmaloney/truewind/internal/models"
)

// ErrInvalidInput is reported when a numeric field cannot be parsed
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError names the field that failed to parse
type InvalidInputError struct {
	Field string
	Value string
	Err   error // underlying strconv error, may be nil
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %q", e.Field, e.Value)
}

// Unwrap exposes both ErrInvalidInput and the parse error
func (e *InvalidInputError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidInput}
	}
	return []error{ErrInvalidInput, e.Err}
}

// Field names used in InvalidInputError
const (
	FieldBoatSpeed   = "boat speed"
	FieldHeading     = "heading"
	FieldWindSpeed   = "wind speed"
	FieldWindBearing = "wind bearing"
)

// ParseNumber parses a real number, accepting a decimal comma
func ParseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}

// ParseReading parses the four text fields into a Reading.
// Negative speeds are accepted as given.
func ParseReading(boatSpeed, heading, windSpeed, windBearing string, frame models.ReferenceFrame) (models.Reading, error) {
	r := models.Reading{Frame: frame}
	fields := []struct {
		name  string
		value string
		dst   *float64
	}{
		{FieldBoatSpeed, boatSpeed, &r.BoatSpeed},
		{FieldHeading, heading, &r.Heading},
		{FieldWindSpeed, windSpeed, &r.ApparentWindSpeed},
		{FieldWindBearing, windBearing, &r.ApparentWindBearing},
	}

	for _, f := range fields {
		v, err := ParseNumber(f.value)
		if err != nil {
			return models.Reading{}, &InvalidInputError{Field: f.name, Value: f.value, Err: err}
		}
		*f.dst = v
	}
	return r, nil
}

// SolveInput parses the four text fields and solves them
func SolveInput(boatSpeed, heading, windSpeed, windBearing string, frame models.ReferenceFrame) (models.TrueWindResult, error) {
	r, err := ParseReading(boatSpeed, heading, windSpeed, windBearing, frame)
	if err != nil {
		return models.TrueWindResult{}, err
	}
	return Solve(r), nil
}
