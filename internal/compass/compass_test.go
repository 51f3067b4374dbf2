package compass

import (
	"fmt"
	"math"
	"testing"

	"github.com/ngmaloney/truewind/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

const eps = 1e-9

// recorder is a Surface that logs every call
type recorder struct {
	ops []string
}

func (r *recorder) Clear() { r.ops = r.ops[:0]; r.ops = append(r.ops, "clear") }
func (r *recorder) Circle(c r2.Vec, radius float64) {
	r.ops = append(r.ops, fmt.Sprintf("circle %.3f,%.3f r=%.3f", c.X, c.Y, radius))
}
func (r *recorder) Line(a, b r2.Vec) {
	r.ops = append(r.ops, fmt.Sprintf("line %.3f,%.3f %.3f,%.3f", a.X, a.Y, b.X, b.Y))
}
func (r *recorder) Polygon(pts []r2.Vec) {
	r.ops = append(r.ops, fmt.Sprintf("polygon %d", len(pts)))
}
func (r *recorder) Text(at r2.Vec, s string) {
	r.ops = append(r.ops, fmt.Sprintf("text %s", s))
}
func (r *recorder) Arrow(a, b r2.Vec) {
	r.ops = append(r.ops, fmt.Sprintf("arrow %.3f,%.3f %.3f,%.3f", a.X, a.Y, b.X, b.Y))
}

func assertVec(t *testing.T, want, got r2.Vec, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, eps, msgAndArgs...)
}

func TestLayout(t *testing.T) {
	c, r := Layout(200, 300)
	assertVec(t, r2.Vec{X: 100, Y: 150}, c)
	assert.Equal(t, 60.0, r)

	_, r = Layout(50, 400)
	assert.Equal(t, 0.0, r, "radius should not go negative")
}

func TestDisplayScale(t *testing.T) {
	tests := []struct {
		radius, length, want float64
	}{
		{36, 6, 1},
		{36, 12, 0.5},
		{36, 3, 1},
		{36, 0, 0},
		{120, 40, 0.5},
		{0, 5, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, DisplayScale(tt.radius, tt.length), eps,
			"DisplayScale(%v, %v)", tt.radius, tt.length)
	}
}

func TestFrameFor(t *testing.T) {
	f := FrameFor(models.NorthUp, 90)
	assert.Equal(t, 0.0, f.Ticks)
	assert.InDelta(t, math.Pi/2, f.Boat, eps)
	assert.Equal(t, 0.0, f.Vector)

	f = FrameFor(models.HeadingUp, 90)
	assert.InDelta(t, -math.Pi/2, f.Ticks, eps)
	assert.Equal(t, 0.0, f.Boat)
	assert.InDelta(t, -math.Pi/2, f.Vector, eps)

	assert.Equal(t, FrameFor(models.NorthUp, 33), FrameFor(models.OrientationMode("bogus"), 33))
}

func TestRotate(t *testing.T) {
	assertVec(t, r2.Vec{X: 0, Y: 1}, Rotate(r2.Vec{X: 1, Y: 0}, math.Pi/2))
	assertVec(t, r2.Vec{X: -1, Y: 0}, Rotate(r2.Vec{X: 0, Y: 1}, math.Pi/2))
	assertVec(t, r2.Vec{X: 2, Y: 3}, Rotate(r2.Vec{X: 2, Y: 3}, 0))
}

func TestBuild_NorthUp(t *testing.T) {
	result := models.TrueWindResult{VectorX: 3, VectorY: 0, Heading: 90}
	s := Build(200, 200, result, models.NorthUp)

	require.Equal(t, 60.0, s.Radius)
	center := r2.Vec{X: 100, Y: 100}
	assertVec(t, center, s.Center)

	// ring is fixed: 0 at top, 90 on the right
	require.Len(t, s.Ticks, 12)
	assertVec(t, r2.Vec{X: 100, Y: 40}, s.Ticks[0].Outer)
	assertVec(t, r2.Vec{X: 100, Y: 65}, s.Ticks[0].Inner)
	assertVec(t, r2.Vec{X: 100, Y: 25}, s.Ticks[0].Label)
	assertVec(t, r2.Vec{X: 160, Y: 100}, s.Ticks[3].Outer)
	assert.Equal(t, 90, s.Ticks[3].Degrees)

	// boat points east
	require.Len(t, s.Boat, 3)
	assertVec(t, r2.Vec{X: 118, Y: 100}, s.Boat[0])

	// 3 kn east fits under the reference length
	assert.Equal(t, 1.0, s.Scale)
	assertVec(t, r2.Vec{X: 118, Y: 100}, s.ArrowEnd)
}

func TestBuild_HeadingUp(t *testing.T) {
	result := models.TrueWindResult{VectorX: 3, VectorY: 0, Heading: 90}
	s := Build(200, 200, result, models.HeadingUp)

	// north label moves to the left when heading east
	assertVec(t, r2.Vec{X: 100 - 75, Y: 100}, s.Ticks[0].Label)
	assertVec(t, r2.Vec{X: 100, Y: 40}, s.Ticks[3].Outer)

	// boat stays upright
	assertVec(t, r2.Vec{X: 100, Y: 82}, s.Boat[0])
	assertVec(t, r2.Vec{X: 109, Y: 118}, s.Boat[1])
	assertVec(t, r2.Vec{X: 91, Y: 118}, s.Boat[2])

	// wind blowing east is dead ahead
	assertVec(t, r2.Vec{X: 100, Y: 82}, s.ArrowEnd)
}

func TestBuild_ArrowClamped(t *testing.T) {
	result := models.TrueWindResult{VectorX: 0, VectorY: 12}
	s := Build(200, 200, result, models.NorthUp)

	assert.InDelta(t, 10.0/12.0, s.Scale, eps)
	assertVec(t, r2.Vec{X: 100, Y: 40}, s.ArrowEnd)
}

func TestBuild_CalmArrowCollapses(t *testing.T) {
	s := Build(300, 300, models.TrueWindResult{}, models.HeadingUp)
	assert.Equal(t, 0.0, s.Scale)
	assertVec(t, s.Center, s.ArrowEnd)
}

func TestBuild_ModesAgreeAtZeroHeading(t *testing.T) {
	result := models.TrueWindResult{VectorX: -2, VectorY: 4, Heading: 0}
	assert.Equal(t, Build(320, 240, result, models.NorthUp), Build(320, 240, result, models.HeadingUp))
}

// The wind arrow keeps its angle to the ring in both modes.
func TestBuild_ArrowRelativeToRingIsModeIndependent(t *testing.T) {
	result := models.TrueWindResult{VectorX: 1.5, VectorY: -2.5, Heading: 137}
	for _, mode := range []models.OrientationMode{models.NorthUp, models.HeadingUp} {
		s := Build(400, 400, result, mode)
		north := r2.Sub(s.Ticks[0].Outer, s.Center)
		arrow := r2.Sub(s.ArrowEnd, s.Center)
		angle := math.Atan2(north.X*arrow.Y-north.Y*arrow.X, north.X*arrow.X+north.Y*arrow.Y)

		// bearing of (1.5, -2.5) measured clockwise from north
		want := math.Atan2(1.5, -2.5)
		assert.InDelta(t, want, angle, 1e-9, "mode %s", mode)
	}
}

func TestRender_ClearsAndRedraws(t *testing.T) {
	rec := &recorder{}
	result := models.TrueWindResult{VectorX: 2, VectorY: 2, Heading: 45}

	Render(rec, 240, 240, result, models.NorthUp)
	first := append([]string(nil), rec.ops...)

	require.NotEmpty(t, first)
	assert.Equal(t, "clear", first[0])
	assert.Equal(t, "circle 120.000,120.000 r=80.000", first[1])
	// circle, 12 ticks with labels, boat, arrow
	assert.Len(t, first, 1+1+12*2+1+1)
	assert.Contains(t, first, "text 300")
	assert.Equal(t, "polygon 3", first[len(first)-2])

	Render(rec, 240, 240, result, models.NorthUp)
	assert.Equal(t, first, rec.ops)
}
