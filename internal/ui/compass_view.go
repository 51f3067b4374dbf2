package ui

import (
	"image"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/ngmaloney/truewind/internal/compass"
	"github.com/ngmaloney/truewind/internal/compass/raster"
	"github.com/ngmaloney/truewind/internal/models"
	"gonum.org/v1/gonum/spatial/r2"
)

// supersample is the number of raster pixels per half cell on each axis
const supersample = 4

// halfBlock paints the top half of a cell in the foreground colour
const halfBlock = "▀"

// inkThreshold is the colour distance from the background under which a
// pixel counts as empty
const inkThreshold = 0.08

type label struct {
	at   r2.Vec
	text string
}

// compassView draws the compass as terminal cells. Shapes go through a
// raster surface; labels are kept aside and printed as characters.
type compassView struct {
	raster *raster.Surface
	labels []label
}

var _ compass.Surface = (*compassView)(nil)

func (v *compassView) Clear() {
	v.labels = v.labels[:0]
	v.raster.Clear()
}

func (v *compassView) Circle(c r2.Vec, r float64) { v.raster.Circle(c, r) }
func (v *compassView) Line(a, b r2.Vec)           { v.raster.Line(a, b) }
func (v *compassView) Polygon(pts []r2.Vec)       { v.raster.Polygon(pts) }
func (v *compassView) Arrow(a, b r2.Vec)          { v.raster.Arrow(a, b) }

func (v *compassView) Text(at r2.Vec, s string) {
	v.labels = append(v.labels, label{at: at, text: s})
}

// compassSize returns the cell grid that keeps the rose round inside the
// available area. Each cell holds two square half-block pixels.
func compassSize(width, height int) (cols, rows int) {
	cols = width
	if h := height * 2; h < cols {
		cols = h
	}
	if cols < 2 {
		return 0, 0
	}
	return cols, cols / 2
}

// render draws the compass into a cols x rows grid of cells
func (v *compassView) render(cols, rows int, result models.TrueWindResult, mode models.OrientationMode) (string, error) {
	if cols <= 0 || rows <= 0 {
		return "", nil
	}
	pxW, pxH := cols*supersample, rows*2*supersample

	if v.raster == nil {
		s, err := raster.New(pxW, pxH)
		if err != nil {
			return "", err
		}
		v.raster = s
	} else if err := v.raster.Resize(pxW, pxH); err != nil {
		return "", err
	}

	compass.Render(v, float64(pxW), float64(pxH), result, mode)
	if err := v.raster.Err(); err != nil {
		return "", err
	}

	return v.cells(cols, rows), nil
}

func (v *compassView) cells(cols, rows int) string {
	img := v.raster.Image()
	bg, _ := colorful.Hex(raster.Background)

	grid := make([][]string, rows)
	for row := range grid {
		grid[row] = make([]string, cols)
		for col := range grid[row] {
			top := sampleBlock(img, col, row*2, bg)
			bottom := sampleBlock(img, col, row*2+1, bg)
			grid[row][col] = lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex())).
				Render(halfBlock)
		}
	}

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(raster.Ink)).
		Background(lipgloss.Color(raster.Background))
	for _, l := range v.labels {
		col := int(math.Floor(l.at.X/supersample)) - (len(l.text)-1)/2
		row := int(math.Floor(l.at.Y / (2 * supersample)))
		if row < 0 || row >= rows {
			continue
		}
		for i, ch := range l.text {
			if c := col + i; c >= 0 && c < cols {
				grid[row][c] = labelStyle.Render(string(ch))
			}
		}
	}

	lines := make([]string, rows)
	for row, cells := range grid {
		lines[row] = strings.Join(cells, "")
	}
	return strings.Join(lines, "\n")
}

// sampleBlock returns the most inked pixel of the supersampled block under
// half cell (col, half). Thin lines would fade out if the block were averaged.
func sampleBlock(img image.Image, col, half int, bg colorful.Color) colorful.Color {
	best, bestDist := bg, inkThreshold
	x0, y0 := col*supersample, half*supersample
	for y := y0; y < y0+supersample; y++ {
		for x := x0; x < x0+supersample; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			if d := c.DistanceRgb(bg); d > bestDist {
				best, bestDist = c, d
			}
		}
	}
	return best
}
