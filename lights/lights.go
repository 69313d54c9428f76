package lights

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Color is one lamp of the traffic light.
type Color int

const (
	Red Color = iota
	Yellow
	Green
)

// Colors is the fixed cycle order.
var Colors = []Color{Red, Yellow, Green}

func (c Color) String() string {
	switch c {
	case Red:
		return "RED"
	case Yellow:
		return "YELLOW"
	case Green:
		return "GREEN"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// Next returns the color that follows c, wrapping GREEN back to RED.
func (c Color) Next() Color {
	return Colors[(int(c)+1)%len(Colors)]
}

func (c Color) Valid() bool {
	return c >= Red && c <= Green
}

// MaxSeconds is the longest wait a time.Duration can hold.
var MaxSeconds = float64(math.MaxInt64) / float64(time.Second)

var (
	ErrMissingDuration = errors.New("missing duration")
	ErrInvalidDuration = errors.New("duration must be a positive number of seconds")
)

// ValidSeconds reports whether v can be used as a light duration.
func ValidSeconds(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0 && v < MaxSeconds
}

// Seconds converts a seconds value into a time.Duration.
func Seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

// DurationTable maps every color to how long it stays lit, in seconds.
// It is filled once before the cycle starts and only read afterwards.
type DurationTable map[Color]float64

func (t DurationTable) Validate() error {
	for c := range t {
		if !c.Valid() {
			return fmt.Errorf("duration for unknown %v", c)
		}
	}
	for _, c := range Colors {
		v, ok := t[c]
		if !ok {
			return fmt.Errorf("%v: %w", c, ErrMissingDuration)
		}
		if !ValidSeconds(v) {
			return fmt.Errorf("%v=%v: %w", c, v, ErrInvalidDuration)
		}
	}
	return nil
}

func (t DurationTable) Duration(c Color) time.Duration {
	return Seconds(t[c])
}
