package draw

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillRectScalesToSubPixels(t *testing.T) {
	// 10 columns x 5 rows over an 80 x 80 field: 8 units per column and per sub-row.
	c := NewScaledCanvas(10, 5, 80, 80)
	c.FillRect(16, 32, 16, 16, ColorRed)

	assert.Equal(t, ColorRed, c.At(2, 4))
	assert.Equal(t, ColorRed, c.At(3, 5))
	assert.Equal(t, ColorNone, c.At(4, 4))
	assert.Equal(t, ColorNone, c.At(2, 6))
	assert.Equal(t, ColorNone, c.At(1, 4))
}

func TestFillRectKeepsTinyObjectsVisible(t *testing.T) {
	c := NewScaledCanvas(10, 5, 80, 80)
	c.FillRect(41, 41, 0.5, 0.5, ColorYellow)
	assert.Equal(t, ColorYellow, c.At(5, 5))
}

func TestFillRectClipsToCanvas(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	assert.NotPanics(t, func() {
		c.FillRect(-50, -50, 300, 300, ColorBlue)
	})
	assert.Equal(t, ColorBlue, c.At(0, 0))
	assert.Equal(t, ColorBlue, c.At(9, 9))
}

func TestCell(t *testing.T) {
	tests := []struct {
		name        string
		top, bottom Color
		ch          rune
		fg, bg      Color
	}{
		{"empty", ColorNone, ColorNone, BlockEmpty, ColorNone, ColorNone},
		{"full", ColorRed, ColorRed, BlockFull, ColorRed, ColorNone},
		{"upper", ColorRed, ColorNone, BlockUpperHalf, ColorRed, ColorNone},
		{"lower", ColorNone, ColorBlue, BlockLowerHalf, ColorBlue, ColorNone},
		{"split", ColorRed, ColorBlue, BlockUpperHalf, ColorRed, ColorBlue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, fg, bg := cell(tt.top, tt.bottom)
			assert.Equal(t, tt.ch, ch)
			assert.Equal(t, tt.fg, fg)
			assert.Equal(t, tt.bg, bg)
		})
	}
}

func TestRenderWritesEveryRow(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetOffset(2, 1)
	c.FillRect(0, 0, 1, 2, ColorGreen)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "\033[2;3H")
	assert.Contains(t, out, "\033[3;3H")
	assert.Contains(t, out, sgr(ColorGreen, ColorNone)+string(BlockFull))
	assert.Equal(t, 7, strings.Count(out, string(BlockEmpty)))
}

func TestRenderBorderNeedsRoom(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	var buf bytes.Buffer
	c.RenderBorder(&buf)
	assert.Empty(t, buf.String())

	c.SetOffset(1, 1)
	c.RenderBorder(&buf)
	assert.Contains(t, buf.String(), "┌────┐")
	assert.Contains(t, buf.String(), "└────┘")
}

func TestLogicalToTerminal(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	col, row := c.LogicalToTerminal(0, 0)
	assert.Equal(t, 1, col)
	assert.Equal(t, 1, row)

	col, row = c.LogicalToTerminal(400, 300)
	assert.Equal(t, 41, col)
	assert.Equal(t, 16, row)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestChunkWriter(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 3, 2)
	cw.WriteAt(1, 1, "hi")
	require.Equal(t, len("\033[3;4Hhi"), cw.Len())
	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[3;4Hhi", out.String())
	assert.Zero(t, cw.Len())

	out.Reset()
	big := strings.Repeat("x", 3*maxChunkSize+7)
	cw.WriteString(big)
	require.NoError(t, cw.Flush())
	assert.Equal(t, big, out.String())

	bad := NewChunkWriter(failingWriter{}, 0, 0)
	bad.WriteString("frame")
	assert.Error(t, bad.Flush())
}

func TestFitTerminal(t *testing.T) {
	w, h, col, row := FitTerminal(200, 60, 160, 50)
	assert.Equal(t, 160, w)
	assert.Equal(t, 50, h)
	assert.Equal(t, 20, col)
	assert.Equal(t, 5, row)

	w, h, col, row = FitTerminal(80, 24, 160, 50)
	assert.Equal(t, []int{80, 24, 0, 0}, []int{w, h, col, row})
}
