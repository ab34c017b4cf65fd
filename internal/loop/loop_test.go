package loop

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/hk97/internal/input"
	"github.com/tomz197/hk97/internal/loop/config"
)

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

type fakeStore struct {
	best      int
	submitted []int
	err       error
}

func (f *fakeStore) Best() int { return f.best }

func (f *fakeStore) Submit(score int) (bool, error) {
	f.submitted = append(f.submitted, score)
	return score > f.best, f.err
}

type recorder struct {
	events FrameEvents
}

func (r *recorder) OnEvents(events FrameEvents) {
	r.events = append(r.events, events...)
}

func testOptions() Options {
	tuning := config.Default()
	tuning.Seed = 7
	return Options{
		Tuning:       tuning,
		TermSizeFunc: fixedSize(120, 40),
		Logger:       log.New(io.Discard),
	}
}

func TestRunEndsWhenInputCloses(t *testing.T) {
	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- Run(bufio.NewReader(strings.NewReader("")), &out, testOptions())
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after input closed")
	}
	assert.True(t, strings.HasPrefix(out.String(), "\033[?25l"))
	assert.Contains(t, out.String(), "\033[?25h")
}

func TestClientForwardsEvents(t *testing.T) {
	var out bytes.Buffer
	rec := &recorder{}
	opts := testOptions()
	opts.Listener = rec
	c := newClient(nil, &out, opts)

	c.input = input.Input{Enter: true}
	c.update()
	require.Equal(t, GameStatePlaying, c.session.State())

	c.session.World.Player.IncreasePower(4)
	c.input = input.Input{Fire: true}
	c.delta = 16 * time.Millisecond
	c.update()
	assert.True(t, rec.events.Has(EventShotsFired))
}

func TestClientSubmitsHighScore(t *testing.T) {
	store := &fakeStore{best: 10, err: errors.New("disk full")}
	opts := testOptions()
	opts.Tuning.InitialLives = 1
	opts.HighScores = store
	c := newClient(nil, io.Discard, opts)
	assert.Equal(t, 10, c.session.HighScore())

	c.input = input.Input{Enter: true}
	c.update()
	c.session.World.Player.AddScore(500)
	killPlayer(c.session)
	c.input = input.Input{}
	c.update()

	assert.Equal(t, []int{500}, store.submitted)
	assert.Equal(t, GameStateGameOver, c.session.State())
}

func TestNilReaderQuits(t *testing.T) {
	c := newClient(nil, io.Discard, testOptions())
	c.processInput(time.Now())
	assert.False(t, c.running)
}

func TestInactivity(t *testing.T) {
	c := newClient(nil, io.Discard, testOptions())
	c.inputStream = nil
	start := c.lastInput

	c.input = input.Input{}
	c.running = true
	c.checkIdle(start.Add((config.InactivityWarnUser + 1) * time.Second))
	assert.True(t, c.inactive)
	assert.True(t, c.running)

	c.checkIdle(start.Add((config.InactivityDisconnectUser + 1) * time.Second))
	assert.False(t, c.running)
}

func TestDrawFrameShowsHUD(t *testing.T) {
	var out bytes.Buffer
	c := newClient(nil, &out, testOptions())

	require.NoError(t, c.drawFrame())
	assert.Contains(t, out.String(), "High score: 0")

	c.input = input.Input{Enter: true}
	c.update()
	out.Reset()
	require.NoError(t, c.drawFrame())
	assert.Contains(t, out.String(), "SCORE")
	assert.Contains(t, out.String(), "LIVES 3")
	assert.Contains(t, out.String(), "BOMBS 3")
}

func TestFitView(t *testing.T) {
	tests := []struct {
		name                 string
		termW, termH         int
		w, h, offCol, offRow int
	}{
		{"wide terminal", 200, 30, 80, 30, 60, 0},
		{"tall terminal", 80, 60, 80, 30, 0, 15},
		{"exact ratio", 160, 60, 160, 60, 0, 0},
		{"huge terminal", 400, 200, 200, 75, 100, 62},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, offCol, offRow := fitView(tt.termW, tt.termH)
			assert.Equal(t, []int{tt.w, tt.h, tt.offCol, tt.offRow}, []int{w, h, offCol, offRow})
		})
	}
}

func TestShouldRenderBlink(t *testing.T) {
	assert.True(t, shouldRenderBlink(0, 10))
	assert.True(t, shouldRenderBlink(0.05, 10))
	assert.False(t, shouldRenderBlink(0.15, 10))
}
