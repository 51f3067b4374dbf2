package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ngmaloney/truewind/internal/beaufort"
)

// beaufortRange describes the speeds covered by force n of table
func beaufortRange(table []beaufort.Level, n int) string {
	if n < 0 || n >= len(table) {
		return ""
	}
	upper := table[n].UpperBound
	switch {
	case n == 0:
		return fmt.Sprintf("< %g kn", upper)
	case upper == 0:
		return fmt.Sprintf(">= %g kn", table[n-1].UpperBound)
	default:
		return fmt.Sprintf("%g-%g kn", table[n-1].UpperBound, upper)
	}
}

// beaufortLegend renders the scale on one line. The force of the last
// result is highlighted with its range; current < 0 highlights nothing.
func beaufortLegend(current int) string {
	table := beaufort.Table()

	cells := make([]string, 0, len(table))
	for _, level := range table {
		n := strconv.Itoa(level.Force.Number)
		if level.Force.Number == current {
			cells = append(cells, legendActiveStyle.Render(n))
		} else {
			cells = append(cells, mutedStyle.Render(n))
		}
	}

	line := labelStyle.Render("Beaufort") + strings.Join(cells, " ")
	if r := beaufortRange(table, current); r != "" {
		line += "  " + valueStyle.Render(r)
	}
	return line
}
