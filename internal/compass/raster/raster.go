// Package raster draws the compass into an in-memory image with gogpu/gg.
package raster

import (
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/ngmaloney/truewind/internal/compass"
	"golang.org/x/image/font/gofont/goregular"
	"gonum.org/v1/gonum/spatial/r2"
)

// Palette
const (
	Background = "#f7f9fc"
	Ink        = "#333333"
	BoatFill   = "#555555"
	ArrowColor = "#ff5555"
)

// Stroke widths and arrowhead size, in pixels
const (
	RingWidth      = 2.0
	TickWidth      = 1.0
	ArrowWidth     = 3.0
	ArrowHeadLen   = 10.0
	ArrowHeadHalfW = 5.0
	LabelSize      = 9.0
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

func labelFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// Surface is a compass.Surface backed by a gg drawing context
type Surface struct {
	dc  *gg.Context
	err error // first drawing error
}

var _ compass.Surface = (*Surface)(nil)

// New creates a surface of the given pixel size
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	src, err := labelFont()
	if err != nil {
		return nil, fmt.Errorf("loading label font: %w", err)
	}
	dc := gg.NewContext(width, height)
	dc.SetFont(src.Face(LabelSize))
	return &Surface{dc: dc}, nil
}

// Width returns the surface width in pixels
func (s *Surface) Width() int { return s.dc.Width() }

// Height returns the surface height in pixels
func (s *Surface) Height() int { return s.dc.Height() }

// Resize changes the surface size. Contents are discarded.
func (s *Surface) Resize(width, height int) error {
	if width == s.dc.Width() && height == s.dc.Height() {
		return nil
	}
	if err := s.dc.Resize(width, height); err != nil {
		return fmt.Errorf("resizing surface: %w", err)
	}
	return nil
}

// Err returns the first error reported while drawing since the last Clear
func (s *Surface) Err() error { return s.err }

func (s *Surface) check(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

func (s *Surface) Clear() {
	s.err = nil
	s.dc.ClearWithColor(gg.Hex(Background))
}

func (s *Surface) Circle(center r2.Vec, radius float64) {
	s.dc.SetHexColor(Ink)
	s.dc.SetLineWidth(RingWidth)
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.check(s.dc.Stroke())
}

func (s *Surface) Line(from, to r2.Vec) {
	s.dc.SetHexColor(Ink)
	s.dc.SetLineWidth(TickWidth)
	s.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	s.check(s.dc.Stroke())
}

func (s *Surface) Polygon(points []r2.Vec) {
	if len(points) < 3 {
		return
	}
	s.path(points)
	s.dc.SetHexColor(BoatFill)
	s.check(s.dc.FillPreserve())
	s.dc.SetHexColor(Ink)
	s.dc.SetLineWidth(RingWidth)
	s.check(s.dc.Stroke())
}

func (s *Surface) Text(at r2.Vec, str string) {
	s.dc.SetHexColor(Ink)
	s.dc.DrawStringAnchored(str, at.X, at.Y, 0.5, 0.5)
}

// Arrow draws a thick line ending in a filled head at to
func (s *Surface) Arrow(from, to r2.Vec) {
	d := r2.Sub(to, from)
	length := r2.Norm(d)
	if length == 0 {
		return
	}
	dir := r2.Scale(1/length, d)
	normal := r2.Vec{X: -dir.Y, Y: dir.X}

	headLen := math.Min(ArrowHeadLen, length)
	base := r2.Sub(to, r2.Scale(headLen, dir))

	s.dc.SetHexColor(ArrowColor)
	s.dc.SetLineWidth(ArrowWidth)
	s.dc.DrawLine(from.X, from.Y, base.X, base.Y)
	s.check(s.dc.Stroke())

	s.path([]r2.Vec{
		to,
		r2.Add(base, r2.Scale(ArrowHeadHalfW, normal)),
		r2.Sub(base, r2.Scale(ArrowHeadHalfW, normal)),
	})
	s.check(s.dc.Fill())
}

func (s *Surface) path(points []r2.Vec) {
	s.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
}

// Image returns the drawn picture
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// WritePNG encodes the picture as PNG
func (s *Surface) WritePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// SavePNG writes the picture to a PNG file
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving png %s: %w", path, err)
	}
	return nil
}

// Close releases the drawing context
func (s *Surface) Close() error {
	return s.dc.Close()
}
