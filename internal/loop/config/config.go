// Package config centralizes all tunable game parameters.
package config

import (
	"errors"
	"fmt"
	"time"

	envcfg "github.com/tomz197/hk97/internal/config"
)

// Arena - the play field in logical units. The HUD sits to the right of it.
const (
	ArenaWidth  = 600.0
	ArenaHeight = 600.0
	HUDWidth    = 200.0
	ViewWidth   = ArenaWidth + HUDWidth
	ViewHeight  = ArenaHeight
)

// Player
const (
	MaxPower          = 10
	PlayerSpeed       = 400.0
	PlayerFocusSpeed  = 200.0
	PlayerSpawnX      = ArenaWidth / 2
	PlayerSpawnY      = 550.0
	BaseShootCooldown = 0.1
	MinShootCooldown  = 0.05
	CooldownPerPower  = 0.005
)

// Projectiles
const (
	BulletSpeed        = 800.0
	SpreadStepDegrees  = 15.0
	FocusedBulletGap   = 10.0
	EnemyBulletSpeed   = 150.0
	BurstSize          = 5
	BurstArcDegrees    = 60.0
	BulletMargin       = 10.0
	EnemyBulletMargin  = 50.0
	EnemyExitY         = 650.0
	PowerUpExitY       = 650.0
	CarExitX           = -100.0
	CarSpawnX          = ArenaWidth + 100
	EnemySpawnY        = -50.0
	SpawnMarginX       = 50.0
	CarSpawnMarginY    = 50.0
	PowerUpDriftSpeed  = 100.0
	PowerUpPullSpeed   = 200.0
	CarSpeed           = 400.0
	LargePowerUpChance = 0.2
)

// Enemy patterns
const (
	StraightSpeed = 300.0
	WaveSpeed     = 200.0
	WaveFrequency = 2.0
	WaveAmplitude = 100.0
	ZigzagSpeed   = 250.0
	ZigzagRate    = 5.0
	ZigzagWidth   = 50.0
	ShooterSpeed  = 50.0
)

// Death animations
const (
	EnemyDeathFrames     = 5
	EnemyDeathFrameTime  = 0.1
	PlayerDeathFrames    = 7
	PlayerDeathFrameTime = 0.05
)

// Hitbox sizes (width, height), centered on the entity position.
const (
	PlayerW, PlayerH           = 20.0, 30.0
	BulletW, BulletH           = 6.0, 12.0
	EnemyBulletW, EnemyBulletH = 8.0, 8.0
	EnemyW, EnemyH             = 32.0, 32.0
	PowerUpW, PowerUpH         = 16.0, 16.0
	CarW, CarH                 = 80.0, 40.0
)

// Scoring
const (
	ScoreEnemy      = 100
	ScorePowerUp    = 50
	ExtendEvery     = 1500
	PowerSmallGain  = 1
	PowerLargeGain  = 3
	BannerSeconds   = 1.0
	GameOverFadeMax = 10 * time.Second
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
	MaxTermWidth          = 200  // Columns
	MaxTermHeight         = 75   // Rows
	PlayerBlinkFrequency  = 10.0 // Hz while invincible
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// ErrInvalid is wrapped by every Tuning validation failure.
var ErrInvalid = errors.New("invalid tuning")

// Tuning holds the parameters that may be overridden at startup.
type Tuning struct {
	EnemySpawnInterval time.Duration
	CarSpawnInterval   time.Duration
	ShooterDelay       time.Duration // Delay before a Shooter fires its burst
	Invincibility      time.Duration
	GameOverFade       time.Duration
	MaxTick            time.Duration // Upper bound on a single tick delta
	InitialLives       int
	InitialBombs       int
	Seed               int64 // 0 means seed from the clock
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		EnemySpawnInterval: 500 * time.Millisecond,
		CarSpawnInterval:   2 * time.Second,
		ShooterDelay:       1500 * time.Millisecond,
		Invincibility:      2 * time.Second,
		GameOverFade:       2 * time.Second,
		MaxTick:            250 * time.Millisecond,
		InitialLives:       3,
		InitialBombs:       3,
	}
}

// FromEnv returns Default with HK97_* environment overrides applied and validated.
func FromEnv() (Tuning, error) {
	t := Default()

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"HK97_ENEMY_SPAWN_INTERVAL", &t.EnemySpawnInterval},
		{"HK97_CAR_SPAWN_INTERVAL", &t.CarSpawnInterval},
		{"HK97_SHOOTER_DELAY", &t.ShooterDelay},
		{"HK97_INVINCIBILITY", &t.Invincibility},
		{"HK97_GAME_OVER_FADE", &t.GameOverFade},
		{"HK97_MAX_TICK", &t.MaxTick},
	}
	for _, d := range durations {
		secs, err := envcfg.GetEnvFloat(d.key, d.dst.Seconds())
		if err != nil {
			return t, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		*d.dst = time.Duration(secs * float64(time.Second))
	}

	var err error
	if t.InitialLives, err = envcfg.GetEnvInt("HK97_INITIAL_LIVES", t.InitialLives); err != nil {
		return t, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if t.InitialBombs, err = envcfg.GetEnvInt("HK97_INITIAL_BOMBS", t.InitialBombs); err != nil {
		return t, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if t.Seed, err = envcfg.GetEnvInt64("HK97_SEED", t.Seed); err != nil {
		return t, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return t, t.Validate()
}

// Validate reports the first out-of-range parameter.
func (t Tuning) Validate() error {
	switch {
	case t.EnemySpawnInterval <= 0:
		return fmt.Errorf("%w: enemy spawn interval must be positive, got %v", ErrInvalid, t.EnemySpawnInterval)
	case t.CarSpawnInterval <= 0:
		return fmt.Errorf("%w: car spawn interval must be positive, got %v", ErrInvalid, t.CarSpawnInterval)
	case t.ShooterDelay < 0:
		return fmt.Errorf("%w: shooter delay must not be negative, got %v", ErrInvalid, t.ShooterDelay)
	case t.Invincibility < 0:
		return fmt.Errorf("%w: invincibility must not be negative, got %v", ErrInvalid, t.Invincibility)
	case t.GameOverFade < 0 || t.GameOverFade > GameOverFadeMax:
		return fmt.Errorf("%w: game over fade must be within [0, %v], got %v", ErrInvalid, GameOverFadeMax, t.GameOverFade)
	case t.MaxTick <= 0:
		return fmt.Errorf("%w: max tick must be positive, got %v", ErrInvalid, t.MaxTick)
	case t.InitialLives < 1:
		return fmt.Errorf("%w: initial lives must be at least 1, got %d", ErrInvalid, t.InitialLives)
	case t.InitialBombs < 0:
		return fmt.Errorf("%w: initial bombs must not be negative, got %d", ErrInvalid, t.InitialBombs)
	}
	return nil
}
