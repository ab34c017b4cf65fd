package loop

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/hk97/internal/input"
	"github.com/tomz197/hk97/internal/loop/config"
)

// GameState is the presentation phase of a session.
type GameState int

const (
	GameStateMenu     GameState = iota // Title screen
	GameStatePlaying                   // Simulation running
	GameStateGameOver                  // Frozen world fading back to the menu
)

func (s GameState) String() string {
	switch s {
	case GameStateMenu:
		return "menu"
	case GameStatePlaying:
		return "playing"
	case GameStateGameOver:
		return "game-over"
	}
	return "unknown"
}

// SessionOptions configures a Session.
type SessionOptions struct {
	Logger         *log.Logger
	HighScore      int             // Best score known at startup
	OnNewHighScore func(score int) // Called at game over when the record is beaten
}

// Session wraps a World with the menu, game-over fade and HUD banners.
type Session struct {
	World *World

	state          GameState
	tuning         config.Tuning
	logger         *log.Logger
	highScore      int
	onNewHighScore func(score int)

	fade            float64 // Seconds left in the game-over state
	fullPowerBanner float64 // Seconds left showing the full power banner
	lifeBanner      float64 // Seconds left showing the extra life banner
	lastScore       int     // Score of the most recent finished game
	newRecord       bool    // lastScore beat the previous high score
	quit            bool
}

// NewSession creates a session on the menu screen. A zero Seed seeds the
// world from the clock.
func NewSession(t config.Tuning, opts SessionOptions) *Session {
	seed := t.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		World:          NewWorld(t, rand.New(rand.NewSource(seed))),
		state:          GameStateMenu,
		tuning:         t,
		logger:         logger,
		highScore:      opts.HighScore,
		onNewHighScore: opts.OnNewHighScore,
	}
}

// Update advances the session by dt. Only the playing state produces events.
func (s *Session) Update(in input.Input, dt time.Duration) FrameEvents {
	if dt < 0 {
		dt = 0
	}
	switch s.state {
	case GameStateMenu:
		s.updateMenu(in)
	case GameStatePlaying:
		return s.updatePlaying(in, dt)
	case GameStateGameOver:
		s.updateGameOver(dt)
	}
	return nil
}

func (s *Session) updateMenu(in input.Input) {
	switch {
	case in.Escape:
		s.quit = true
	case in.Enter || in.Fire:
		s.start()
	}
}

func (s *Session) start() {
	s.World.Reset()
	s.fullPowerBanner = 0
	s.lifeBanner = 0
	s.state = GameStatePlaying
	s.logger.Debug("game started")
}

func (s *Session) updatePlaying(in input.Input, dt time.Duration) FrameEvents {
	secs := dt.Seconds()
	s.fullPowerBanner = max(0, s.fullPowerBanner-secs)
	s.lifeBanner = max(0, s.lifeBanner-secs)

	events := s.World.Advance(in, dt)
	if events.Has(EventFullPower) {
		s.fullPowerBanner = config.BannerSeconds
	}
	if events.Has(EventLifeGained) {
		s.lifeBanner = config.BannerSeconds
	}
	if events.Has(EventGameOver) {
		s.gameOver()
	}
	return events
}

func (s *Session) gameOver() {
	score := s.World.Score()
	s.lastScore = score
	s.newRecord = score > s.highScore
	s.state = GameStateGameOver
	s.fade = s.tuning.GameOverFade.Seconds()
	s.logger.Info("game over", "score", score, "high", s.highScore)

	if s.newRecord {
		s.highScore = score
		s.logger.Info("new high score", "score", score)
		if s.onNewHighScore != nil {
			s.onNewHighScore(score)
		}
	}
}

// updateGameOver counts down the fade, then clears the world and returns to the menu.
func (s *Session) updateGameOver(dt time.Duration) {
	s.fade -= dt.Seconds()
	if s.fade > 0 {
		return
	}
	s.fade = 0
	s.World.Reset()
	s.state = GameStateMenu
}

func (s *Session) State() GameState          { return s.state }
func (s *Session) HighScore() int            { return s.highScore }
func (s *Session) LastScore() int            { return s.lastScore }
func (s *Session) NewRecord() bool           { return s.newRecord }
func (s *Session) Quit() bool                { return s.quit }
func (s *Session) FadeRemaining() float64    { return s.fade }
func (s *Session) ShowFullPowerBanner() bool { return s.fullPowerBanner > 0 }
func (s *Session) ShowLifeBanner() bool      { return s.lifeBanner > 0 }
