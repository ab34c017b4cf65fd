package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/hk97/internal/draw"
	"github.com/tomz197/hk97/internal/input"
	"github.com/tomz197/hk97/internal/loop/config"
)

// HighScoreStore persists the best score across sessions.
type HighScoreStore interface {
	Best() int
	Submit(score int) (bool, error)
}

// Options configures Run.
type Options struct {
	Tuning       config.Tuning
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
	Listener     EventListener  // Receives the events of every tick; may be nil
	HighScores   HighScoreStore // May be nil
}

// client drives one Session on one terminal.
type client struct {
	session      *Session
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	listener     EventListener
	logger       *log.Logger

	input       input.Input
	delta       time.Duration
	lastInput   time.Time
	running     bool
	inactive    bool
	prevState   GameState
	wasInactive bool
}

// Run plays on the terminal behind r and w until the player quits, the
// reader closes or the player is idle for too long.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	c := newClient(r, w, opts)
	return c.run()
}

func newClient(r *bufio.Reader, w io.Writer, opts Options) *client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	sessOpts := SessionOptions{Logger: logger}
	if store := opts.HighScores; store != nil {
		sessOpts.HighScore = store.Best()
		sessOpts.OnNewHighScore = func(score int) {
			if _, err := store.Submit(score); err != nil {
				logger.Error("could not save high score", "score", score, "err", err)
			}
		}
	}

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := fitView(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewWidth, config.ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	var stream *input.Stream
	if r != nil {
		stream = input.StartStream(r)
	}

	return &client{
		session:      NewSession(opts.Tuning, sessOpts),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  stream,
		termSizeFunc: termSizeFunc,
		listener:     opts.Listener,
		logger:       logger,
		lastInput:    time.Now(),
		running:      true,
		prevState:    -1,
	}
}

func (c *client) run() error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	lastTime := time.Now()
	for c.running {
		frameStart := time.Now()
		c.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput(frameStart)
		c.updateScreen()
		c.update()

		if err := c.drawFrame(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput samples the input once per frame.
func (c *client) processInput(now time.Time) {
	if c.inputStream == nil {
		c.input = input.Input{Quit: true}
	} else {
		c.input = input.ReadInput(c.inputStream)
	}
	c.checkIdle(now)

	if c.input.Quit {
		c.running = false
	}
}

// checkIdle warns and then disconnects a player who stopped pressing keys.
func (c *client) checkIdle(now time.Time) {
	idle := now.Sub(c.lastInput)
	switch {
	case c.input.Any:
		c.lastInput = now
		c.inactive = false
	case idle.Seconds() > config.InactivityDisconnectUser:
		c.logger.Info("disconnecting idle player", "idle", idle.Round(time.Second))
		c.running = false
	case idle.Seconds() > config.InactivityWarnUser:
		c.inactive = true
	}
}

// update advances the session and forwards its events.
func (c *client) update() {
	before := c.session.State()
	events := c.session.Update(c.input, c.delta)
	if len(events) > 0 && c.listener != nil {
		c.listener.OnEvents(events)
	}
	if c.session.State() != before {
		// A key used to leave one screen must not act on the next.
		input.ResetKeyInput(c.inputStream)
	}
	if c.session.Quit() {
		c.running = false
	}
}

// updateScreen follows terminal resizes.
func (c *client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := fitView(termWidth, termHeight)
	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
	}
	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// fitView picks the largest render area that keeps the view's aspect ratio
// (one terminal row holds two sub-pixels) within the render limits, centered
// in the terminal.
func fitView(termWidth, termHeight int) (width, height, offsetCol, offsetRow int) {
	const viewW, viewH = int(config.ViewWidth), int(config.ViewHeight)
	maxWidth := min(config.MaxTermWidth, termHeight*2*viewW/viewH)
	maxHeight := min(config.MaxTermHeight, termWidth*viewH/(2*viewW))
	return draw.FitTerminal(termWidth, termHeight, maxWidth, maxHeight)
}
