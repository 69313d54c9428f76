package screen

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/scheerer/traffic-light-simulator/lights"
)

const (
	edge  = "█████████"
	side  = "█"
	fill  = "███████"
	blank = "       "
)

// BoxLines is the height of a single lamp.
const BoxLines = 5

var palette = map[lights.Color]*color.Color{
	lights.Red:    color.New(color.FgRed),
	lights.Yellow: color.New(color.FgYellow),
	lights.Green:  color.New(color.FgGreen),
}

// Paint returns the ANSI color used to fill c.
func Paint(c lights.Color) *color.Color {
	return palette[c]
}

// RenderBox draws one lamp. The lit and unlit variants have the same visible
// width so the stacked light never shifts when the active lamp changes.
func RenderBox(active bool, paint *color.Color) []string {
	inner := blank
	if active {
		inner = paint.Sprint(fill)
	}
	row := side + inner + side
	return []string{edge, row, row, row, edge}
}

// FullLight stacks the three lamps in cycle order with only active lit.
func FullLight(active lights.Color) []string {
	out := make([]string, 0, BoxLines*len(lights.Colors))
	for _, c := range lights.Colors {
		out = append(out, RenderBox(c == active, Paint(c))...)
	}
	return out
}

// Draw prints the full light followed by the name of the active color.
func Draw(w io.Writer, active lights.Color) error {
	_, err := fmt.Fprintf(w, "%s\n\n%v light\n", strings.Join(FullLight(active), "\n"), active)
	return err
}
