package loop

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/hk97/internal/input"
	"github.com/tomz197/hk97/internal/loop/config"
	"github.com/tomz197/hk97/internal/object"
)

func newTestSession(t *testing.T, opts SessionOptions) *Session {
	t.Helper()
	tuning := config.Default()
	tuning.Seed = 42
	tuning.InitialLives = 1
	opts.Logger = log.New(io.Discard)
	return NewSession(tuning, opts)
}

func startPlaying(t *testing.T, s *Session) {
	t.Helper()
	require.Equal(t, GameStateMenu, s.State())
	assert.Nil(t, s.Update(input.Input{Enter: true}, 16*time.Millisecond))
	require.Equal(t, GameStatePlaying, s.State())
}

func killPlayer(s *Session) {
	s.World.Spawn(object.NewEnemyBullet(s.World.Player.Position(), mgl64.Vec2{}))
}

func TestMenuWaitsForStart(t *testing.T) {
	s := newTestSession(t, SessionOptions{})
	s.Update(input.Input{Up: true}, time.Second)
	assert.Equal(t, GameStateMenu, s.State())
	assert.Empty(t, s.World.Enemies)

	startPlaying(t, s)
}

func TestEscapeOnMenuQuits(t *testing.T) {
	s := newTestSession(t, SessionOptions{})
	s.Update(input.Input{Escape: true}, 0)
	assert.True(t, s.Quit())
}

func TestGameOverFadesBackToMenu(t *testing.T) {
	var saved []int
	s := newTestSession(t, SessionOptions{
		HighScore:      100,
		OnNewHighScore: func(score int) { saved = append(saved, score) },
	})
	startPlaying(t, s)

	s.World.Player.AddScore(300)
	killPlayer(s)
	events := s.Update(input.Input{}, 16*time.Millisecond)

	require.True(t, events.Has(EventGameOver))
	assert.Equal(t, GameStateGameOver, s.State())
	assert.Equal(t, []int{300}, saved)
	assert.Equal(t, 300, s.HighScore())
	assert.Equal(t, 300, s.LastScore())
	assert.True(t, s.NewRecord())

	assert.Nil(t, s.Update(input.Input{Fire: true}, time.Second))
	assert.Equal(t, GameStateGameOver, s.State())
	assert.Equal(t, 300, s.World.Score(), "world is frozen during the fade")

	s.Update(input.Input{}, time.Second)
	assert.Equal(t, GameStateMenu, s.State())
	assert.Zero(t, s.World.Score())
	assert.Empty(t, s.World.EnemyBullets)
	assert.Equal(t, 1, s.World.Player.Lives())
}

func TestGameOverWithoutRecord(t *testing.T) {
	called := false
	s := newTestSession(t, SessionOptions{
		HighScore:      1000,
		OnNewHighScore: func(int) { called = true },
	})
	startPlaying(t, s)

	killPlayer(s)
	s.Update(input.Input{}, 16*time.Millisecond)

	assert.Equal(t, GameStateGameOver, s.State())
	assert.False(t, called)
	assert.False(t, s.NewRecord())
	assert.Equal(t, 1000, s.HighScore())
}

func TestBannersLastOneSecond(t *testing.T) {
	s := newTestSession(t, SessionOptions{})
	startPlaying(t, s)

	p := s.World.Player
	p.IncreasePower(config.MaxPower - 1)
	p.AddScore(config.ExtendEvery - config.ScorePowerUp)
	s.World.PowerUps = append(s.World.PowerUps, object.NewPowerUp(p.Position(), object.PowerUpSmall))

	events := s.Update(input.Input{}, 0)
	require.True(t, events.Has(EventFullPower))
	require.True(t, events.Has(EventLifeGained))
	assert.True(t, s.ShowFullPowerBanner())
	assert.True(t, s.ShowLifeBanner())

	s.Update(input.Input{}, 500*time.Millisecond)
	assert.True(t, s.ShowFullPowerBanner())

	s.Update(input.Input{}, 500*time.Millisecond)
	assert.False(t, s.ShowFullPowerBanner())
	assert.False(t, s.ShowLifeBanner())
}

func TestGameStateString(t *testing.T) {
	assert.Equal(t, "menu", GameStateMenu.String())
	assert.Equal(t, "playing", GameStatePlaying.String())
	assert.Equal(t, "game-over", GameStateGameOver.String())
}
