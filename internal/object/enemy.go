package object

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/hk97/internal/loop/config"
)

// Pattern is an enemy movement pattern, fixed at spawn.
type Pattern int

const (
	PatternStraight Pattern = iota
	PatternWave
	PatternZigzag
	PatternShooter

	patternCount
)

func (p Pattern) String() string {
	switch p {
	case PatternStraight:
		return "straight"
	case PatternWave:
		return "wave"
	case PatternZigzag:
		return "zigzag"
	case PatternShooter:
		return "shooter"
	}
	return "unknown"
}

// RandomPattern picks a pattern uniformly.
func RandomPattern(rng *rand.Rand) Pattern {
	return Pattern(rng.Intn(int(patternCount)))
}

// Enemy is a hostile ship following one movement pattern.
type Enemy struct {
	Entity

	pattern   Pattern
	initialX  float64
	lifetime  float64
	shootTime float64 // Seconds until a Shooter fires
	fired     bool
}

// NewEnemy creates an enemy at pos. shooterDelay only matters for PatternShooter.
func NewEnemy(pos mgl64.Vec2, pattern Pattern, shooterDelay time.Duration) *Enemy {
	e := &Enemy{
		Entity:    newEntity(pos, mgl64.Vec2{0, patternSpeed(pattern)}, config.EnemyW, config.EnemyH),
		pattern:   pattern,
		initialX:  pos.X(),
		shootTime: shooterDelay.Seconds(),
	}
	e.death = NewDeathAnimation(config.EnemyDeathFrames, config.EnemyDeathFrameTime)
	return e
}

func patternSpeed(p Pattern) float64 {
	switch p {
	case PatternWave:
		return config.WaveSpeed
	case PatternZigzag:
		return config.ZigzagSpeed
	case PatternShooter:
		return config.ShooterSpeed
	default:
		return config.StraightSpeed
	}
}

// Update moves the enemy along its pattern. A dying enemy stays in place
// until its animation has finished.
func (e *Enemy) Update(ctx UpdateContext) {
	dt := ctx.Delta.Seconds()
	if e.InDeathAnimation() {
		e.UpdateDeathAnimation(dt)
		return
	}
	if !e.active {
		return
	}

	e.lifetime += dt
	e.integrate(dt)

	switch e.pattern {
	case PatternWave:
		e.Pos[0] = e.initialX + math.Sin(e.lifetime*config.WaveFrequency)*config.WaveAmplitude
	case PatternZigzag:
		e.Pos[0] = e.initialX + math.Sin(e.lifetime*config.ZigzagRate)*config.ZigzagWidth
	case PatternShooter:
		e.shootTime -= dt
		if e.shootTime <= 0 && !e.fired && ctx.Spawner != nil {
			e.burst(ctx.Spawner)
		}
	}

	if e.Pos.Y() > config.EnemyExitY {
		e.active = false
	}
}

// burst fires the one-shot fan of enemy bullets, centered on straight down.
func (e *Enemy) burst(spawner Spawner) {
	e.fired = true
	step := config.BurstArcDegrees / float64(config.BurstSize-1)
	for i := 0; i < config.BurstSize; i++ {
		rad := mgl64.DegToRad(-config.BurstArcDegrees/2 + step*float64(i))
		vel := mgl64.Vec2{math.Sin(rad), math.Cos(rad)}.Mul(config.EnemyBulletSpeed)
		spawner.Spawn(NewEnemyBullet(e.Pos, vel))
	}
}

// Hit puts the enemy into its dying state. Hitting a dying enemy does nothing.
func (e *Enemy) Hit() {
	if !e.active || e.InDeathAnimation() {
		return
	}
	e.active = false
	e.StartDeathAnimation()
}

func (e *Enemy) Pattern() Pattern { return e.pattern }
func (e *Enemy) HasFired() bool   { return e.fired }
