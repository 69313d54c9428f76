// Package prompt collects the per-color durations interactively before the
// light starts cycling.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/scheerer/traffic-light-simulator/internal/console"
	"github.com/scheerer/traffic-light-simulator/internal/logging"
	"github.com/scheerer/traffic-light-simulator/lights"
)

var logger = logging.New("prompt")

// ErrExitRequested is returned when the user types "exit" during setup. The
// farewell has already been printed; the caller should end the process with
// a success status.
var ErrExitRequested = errors.New("exit requested")

const (
	invalidInputMessage  = "Invalid input. Please enter a valid number."
	notPositiveMessage   = "Duration must be a positive number. Please try again."
	SetupFarewellMessage = "Exiting Traffic Light Simulator..."
)

type Collector struct {
	lines *console.Lines
	out   io.Writer

	// Presets are used instead of prompting for the colors they contain.
	Presets lights.DurationTable
}

func NewCollector(lines *console.Lines, out io.Writer) *Collector {
	return &Collector{
		lines: lines,
		out:   out,
	}
}

// CollectDuration prompts until a positive number of seconds is entered for c.
// Bad input is reported and prompted for again; it is never returned.
func (p *Collector) CollectDuration(c lights.Color) (float64, error) {
	for {
		fmt.Fprintf(p.out, "Enter the duration (number of seconds) for the color of %v: ", c)

		line, err := p.lines.ReadLine()
		if err != nil {
			return 0, fmt.Errorf("reading duration for %v: %w", c, err)
		}

		if console.IsExit(line) {
			fmt.Fprintln(p.out, SetupFarewellMessage)
			return 0, ErrExitRequested
		}

		v, err := parseSeconds(line)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v >= lights.MaxSeconds {
			logger.Debugw("rejected duration", "color", c, "input", line)
			fmt.Fprintln(p.out, invalidInputMessage)
			continue
		}
		if v <= 0 {
			logger.Debugw("rejected duration", "color", c, "value", v)
			fmt.Fprintln(p.out, notPositiveMessage)
			continue
		}

		p.confirm(c, v)
		return v, nil
	}
}

// decimalNumber accepts plain decimal notation with optional exponent and
// single underscores between digits. Hex floats are not durations.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d(_?\d)*(\.(\d(_?\d)*)?)?|\.\d(_?\d)*)(e[+-]?\d(_?\d)*)?$`)

var errNotDecimal = errors.New("not a decimal number")

func parseSeconds(line string) (float64, error) {
	s := console.Normalize(line)
	if !decimalNumber.MatchString(s) {
		return 0, errNotDecimal
	}
	return strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
}

// formatSeconds always shows a fractional part, so 5 prints as "5.0".
func formatSeconds(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (p *Collector) confirm(c lights.Color, v float64) {
	fmt.Fprintf(p.out, "The duration for %v is %s seconds.\n", c, formatSeconds(v))
}

// CollectAll asks for every color in cycle order. Nothing is returned unless
// all three durations were collected.
func (p *Collector) CollectAll() (lights.DurationTable, error) {
	table := make(lights.DurationTable, len(lights.Colors))
	for _, c := range lights.Colors {
		if v, ok := p.Presets[c]; ok {
			p.confirm(c, v)
			table[c] = v
			continue
		}
		v, err := p.CollectDuration(c)
		if err != nil {
			return nil, err
		}
		table[c] = v
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	logger.Infow("durations collected", "red", table[lights.Red], "yellow", table[lights.Yellow], "green", table[lights.Green])
	return table, nil
}
