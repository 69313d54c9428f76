package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/scheerer/traffic-light-simulator/internal/console"
)

const RunFarewellMessage = "Exiting Traffic Light Simulator"

// Listener watches standard input for "exit" while the light is cycling.
type Listener struct {
	lines *console.Lines
	out   io.Writer
}

func NewListener(lines *console.Lines, out io.Writer) *Listener {
	return &Listener{
		lines: lines,
		out:   out,
	}
}

// Start runs Listen in a background goroutine and returns immediately. The
// goroutine is usually blocked reading input when the process exits; nothing
// waits for it.
func (l *Listener) Start(stop context.CancelFunc) {
	go l.Listen(stop)
}

// Listen reads lines until one is "exit", then calls stop once and returns.
// Other lines are ignored. If input ends first it returns without calling stop.
func (l *Listener) Listen(stop context.CancelFunc) {
	for {
		line, err := l.lines.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Warnw("Stopped listening for exit", "error", err)
			}
			return
		}
		if console.IsExit(line) {
			stop()
			fmt.Fprintln(l.out, RunFarewellMessage)
			logger.Info("exit requested while running")
			return
		}
	}
}
