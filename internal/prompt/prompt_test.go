package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scheerer/traffic-light-simulator/internal/console"
	"github.com/scheerer/traffic-light-simulator/lights"
)

func newCollector(input string) (*Collector, *bytes.Buffer) {
	var out bytes.Buffer
	return NewCollector(console.NewLines(strings.NewReader(input)), &out), &out
}

func TestCollectDuration_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"5\n", 5.0},
		{"2.5\n", 2.5},
		{"  0.25  \n", 0.25},
		{"1e1\n", 10},
		{"1_000\n", 1000},
		{"5.\n", 5},
		{".5\n", 0.5},
		{"+2\n", 2},
	}
	for _, tt := range tests {
		p, out := newCollector(tt.input)
		got, err := p.CollectDuration(lights.Red)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		assert.Contains(t, out.String(), "The duration for RED is")
	}
}

func TestCollectDuration_RejectsUntilValid(t *testing.T) {
	p, out := newCollector("abc\n-1\n0\n3\n")

	got, err := p.CollectDuration(lights.Yellow)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	text := out.String()
	assert.Equal(t, 4, strings.Count(text, "for the color of YELLOW"))
	assert.Equal(t, 1, strings.Count(text, invalidInputMessage))
	assert.Equal(t, 2, strings.Count(text, notPositiveMessage))
	assert.Contains(t, text, "The duration for YELLOW is 3.0 seconds.")
}

func TestCollectDuration_NonNumericNeverReturned(t *testing.T) {
	for _, bad := range []string{"abc", "", "5s", "NaN", "inf", "-Inf", "1e400", "1,5", "0x1p4", "0x10", "1__0", "_1", "1_", "."} {
		p, out := newCollector(bad + "\n1\n")
		got, err := p.CollectDuration(lights.Green)
		require.NoError(t, err, bad)
		assert.Equal(t, 1.0, got, bad)
		assert.Contains(t, out.String(), invalidInputMessage, bad)
	}
}

func TestCollectDuration_NonPositiveRePrompts(t *testing.T) {
	for _, bad := range []string{"0", "-0", "-3", "-0.001"} {
		p, out := newCollector(bad + "\n2\n")
		got, err := p.CollectDuration(lights.Red)
		require.NoError(t, err, bad)
		assert.Equal(t, 2.0, got, bad)
		assert.Contains(t, out.String(), notPositiveMessage, bad)
	}
}

func TestCollectDuration_Exit(t *testing.T) {
	for _, in := range []string{"exit", " EXIT ", "Exit"} {
		p, out := newCollector(in + "\n5\n")
		got, err := p.CollectDuration(lights.Red)
		assert.ErrorIs(t, err, ErrExitRequested, in)
		assert.Zero(t, got)
		assert.True(t, strings.HasSuffix(out.String(), SetupFarewellMessage+"\n"), in)
	}
}

func TestCollectDuration_InputClosed(t *testing.T) {
	p, _ := newCollector("abc\n")
	_, err := p.CollectDuration(lights.Red)
	assert.ErrorIs(t, err, io.EOF)
}

func TestCollectAll_FixedOrder(t *testing.T) {
	p, out := newCollector("1\n2\n3\n")

	table, err := p.CollectAll()
	require.NoError(t, err)
	assert.Equal(t, lights.DurationTable{lights.Red: 1, lights.Yellow: 2, lights.Green: 3}, table)

	text := out.String()
	red := strings.Index(text, "color of RED")
	yellow := strings.Index(text, "color of YELLOW")
	green := strings.Index(text, "color of GREEN")
	assert.True(t, red < yellow && yellow < green)
}

func TestCollectAll_ExitMidwayReturnsNoTable(t *testing.T) {
	p, out := newCollector("1\nexit\n3\n")

	table, err := p.CollectAll()
	assert.ErrorIs(t, err, ErrExitRequested)
	assert.Nil(t, table)
	assert.NotContains(t, out.String(), "GREEN")
}

func TestCollectAll_Presets(t *testing.T) {
	p, out := newCollector("4\n")
	p.Presets = lights.DurationTable{lights.Red: 1.5, lights.Green: 6}

	table, err := p.CollectAll()
	require.NoError(t, err)
	assert.Equal(t, lights.DurationTable{lights.Red: 1.5, lights.Yellow: 4, lights.Green: 6}, table)

	text := out.String()
	assert.NotContains(t, text, "color of RED")
	assert.Contains(t, text, "color of YELLOW")
	assert.Contains(t, text, "The duration for RED is 1.5 seconds.")
}

func TestCollectAll_InvalidPreset(t *testing.T) {
	p, _ := newCollector("")
	p.Presets = lights.DurationTable{lights.Red: -1, lights.Yellow: 1, lights.Green: 1}

	_, err := p.CollectAll()
	assert.ErrorIs(t, err, lights.ErrInvalidDuration)
}

func TestCollectDuration_VeryLongLineIsRejectedNotFatal(t *testing.T) {
	p, out := newCollector(strings.Repeat("a", 70000) + "\n3\n")

	got, err := p.CollectDuration(lights.Red)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
	assert.Equal(t, 1, strings.Count(out.String(), invalidInputMessage))
}

func TestCollectDuration_LastLineWithoutNewline(t *testing.T) {
	p, _ := newCollector("abc\n7")

	got, err := p.CollectDuration(lights.Green)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "5.0", formatSeconds(5))
	assert.Equal(t, "2.5", formatSeconds(2.5))
	assert.Equal(t, "0.125", formatSeconds(0.125))
	assert.Equal(t, "1000.0", formatSeconds(1000))
}
