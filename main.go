package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scheerer/traffic-light-simulator/internal/console"
	"github.com/scheerer/traffic-light-simulator/internal/logging"
	"github.com/scheerer/traffic-light-simulator/internal/prompt"
	"github.com/scheerer/traffic-light-simulator/lights"
	"github.com/scheerer/traffic-light-simulator/simulator"
)

const (
	exitSuccess     = 0
	exitInterrupted = 1
	exitError       = 2
)

const interruptMessage = "\nExiting Traffic Light Simulator due to an interruption."

var logger = logging.New("main")

// sleep holds each color; replaced in tests.
var sleep = time.Sleep

func newRootCmd() *cobra.Command {
	presets := map[lights.Color]*float64{}

	cmd := &cobra.Command{
		Use:   "traffic-light",
		Short: "Terminal traffic light simulator",
		Long: `Cycles a three-color traffic light RED -> YELLOW -> GREEN in the terminal.

You are asked how many seconds each color stays lit, unless it was given with
a flag. Type 'exit' at any time to quit.

Environment:
  LOG_LEVEL     debug, info, warn, error (default warn, written to stderr)
  CLEAR_SCREEN  clear the terminal before each frame (default true)`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := presetDurations(cmd, presets)
			if err != nil {
				return err
			}
			return run(cmd, table)
		},
	}

	for _, c := range lights.Colors {
		var v float64
		presets[c] = &v
		name := strings.ToLower(c.String())
		cmd.Flags().Float64Var(&v, name, 0, fmt.Sprintf("seconds the %s light stays on (prompted for when omitted)", name))
	}
	return cmd
}

// presetDurations returns the durations given on the command line.
func presetDurations(cmd *cobra.Command, values map[lights.Color]*float64) (lights.DurationTable, error) {
	table := lights.DurationTable{}
	for _, c := range lights.Colors {
		name := strings.ToLower(c.String())
		if !cmd.Flags().Changed(name) {
			continue
		}
		v := *values[c]
		if !lights.ValidSeconds(v) {
			return nil, fmt.Errorf("--%s=%v: %w", name, v, lights.ErrInvalidDuration)
		}
		table[c] = v
	}
	return table, nil
}

func run(cmd *cobra.Command, presets lights.DurationTable) error {
	config := simulator.Config{}
	if err := env.Parse(&config); err != nil {
		return fmt.Errorf("parse environment variables: %w", err)
	}
	if err := logging.SetLevelFromString(config.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}

	session := logger.With(zap.String("session", uuid.NewString()))
	session.With(zap.Any("config", config), zap.Any("presets", presets)).Debug("Starting traffic light")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, color.New(color.Bold).Sprint("**Traffic Light Simulator**"))
	fmt.Fprintln(out, "You can type 'exit' at any time to quit.")
	fmt.Fprintln(out)

	lines := console.NewLines(cmd.InOrStdin())
	collector := prompt.NewCollector(lines, out)
	collector.Presets = presets
	durations, err := collector.CollectAll()
	if err != nil {
		return err
	}

	ctx, stop := context.WithCancel(cmd.Context())
	defer stop()

	simulator.NewListener(lines, out).Start(stop)

	runner := simulator.NewRunner(durations, out).WithLogger(session)
	runner.Sleep = sleep
	if !config.ClearScreen {
		runner.Clear = nil
	}
	return runner.Run(ctx)
}

// watchInterrupt ends the process on the first signal received, even while a
// light is waiting or a prompt is blocked on input.
func watchInterrupt(signals <-chan os.Signal, out io.Writer, exit func(int)) {
	go func() {
		sig := <-signals
		logger.With(zap.Stringer("signal", sig)).Info("Shutting down")
		fmt.Fprintln(out, interruptMessage)
		_ = logger.Sync()
		exit(exitInterrupted)
	}()
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil, errors.Is(err, prompt.ErrExitRequested):
		return exitSuccess
	default:
		fmt.Fprintln(stderr, color.RedString("Error: %v", err))
		return exitError
	}
}

func execute(cmd *cobra.Command) int {
	defer logger.Sync()
	return exitCode(cmd.Execute(), cmd.ErrOrStderr())
}

func main() {
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	watchInterrupt(shutdown, os.Stdout, os.Exit)
	os.Exit(execute(newRootCmd()))
}
