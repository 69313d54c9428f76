package simulator

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/scheerer/traffic-light-simulator/internal/logging"
	"github.com/scheerer/traffic-light-simulator/internal/screen"
	"github.com/scheerer/traffic-light-simulator/lights"
)

var logger = logging.New("simulator")

// Runner cycles the light RED, YELLOW, GREEN, RED... until its context is
// cancelled.
type Runner struct {
	durations lights.DurationTable
	out       io.Writer
	logger    *zap.SugaredLogger

	// Clear wipes the display before each frame. Nil leaves previous frames in place.
	Clear func(io.Writer) error
	// Sleep holds the current color. It is not interruptible.
	Sleep func(time.Duration)
}

func NewRunner(durations lights.DurationTable, out io.Writer) *Runner {
	return &Runner{
		durations: durations,
		out:       out,
		logger:    logger,
		Clear:     screen.Clear,
		Sleep:     time.Sleep,
	}
}

// WithLogger attaches a logger carrying extra fields, such as a session id.
func (r *Runner) WithLogger(l *zap.SugaredLogger) *Runner {
	r.logger = l
	return r
}

// Run renders one color per iteration and then waits its full duration.
// Cancellation is only checked at the start of each iteration, so after stop
// is requested the color currently showing still runs to the end of its wait.
// Run returns nil once it observes the cancellation; it never returns otherwise
// unless drawing fails.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.durations.Validate(); err != nil {
		return err
	}

	current := lights.Red
	for cycle := 0; ; cycle++ {
		if ctx.Err() != nil {
			r.logger.Debugw("stop observed", "next", current, "iteration", cycle)
			return nil
		}

		if r.Clear != nil {
			if err := r.Clear(r.out); err != nil {
				r.logger.With(zap.Error(err)).Warn("Failed to clear screen")
			}
		}
		if err := screen.Draw(r.out, current); err != nil {
			return err
		}

		wait := r.durations.Duration(current)
		r.logger.Debugw("light changed", "color", current, "wait", wait, "iteration", cycle)
		r.Sleep(wait)

		current = current.Next()
	}
}
