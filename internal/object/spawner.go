package object

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/hk97/internal/loop/config"
)

// IntervalSpawner emits one object every interval.
type IntervalSpawner struct {
	interval float64
	timer    float64
	rng      *rand.Rand
	build    func(rng *rand.Rand) Object
}

// NewEnemySpawner creates enemies at a random x inside the side margins,
// just above the top edge, each with a random pattern.
func NewEnemySpawner(interval, shooterDelay time.Duration, rng *rand.Rand) *IntervalSpawner {
	return newIntervalSpawner(interval, rng, func(rng *rand.Rand) Object {
		x := config.SpawnMarginX + rng.Float64()*(config.ArenaWidth-2*config.SpawnMarginX)
		return NewEnemy(mgl64.Vec2{x, config.EnemySpawnY}, RandomPattern(rng), shooterDelay)
	})
}

// NewCarSpawner creates cars at a random y entering from the right edge.
func NewCarSpawner(interval time.Duration, rng *rand.Rand) *IntervalSpawner {
	return newIntervalSpawner(interval, rng, func(rng *rand.Rand) Object {
		y := config.CarSpawnMarginY + rng.Float64()*(config.ArenaHeight-2*config.CarSpawnMarginY)
		return NewCar(mgl64.Vec2{config.CarSpawnX, y})
	})
}

func newIntervalSpawner(interval time.Duration, rng *rand.Rand, build func(*rand.Rand) Object) *IntervalSpawner {
	return &IntervalSpawner{
		interval: interval.Seconds(),
		rng:      rng,
		build:    build,
	}
}

// Update accumulates dt and spawns at most one object when the interval
// has elapsed. Returns true if it spawned.
func (s *IntervalSpawner) Update(ctx UpdateContext) bool {
	if s.interval <= 0 || ctx.Spawner == nil {
		return false
	}
	s.timer += ctx.Delta.Seconds()
	if s.timer < s.interval {
		return false
	}
	s.timer = 0
	ctx.Spawner.Spawn(s.build(s.rng))
	return true
}

// Reset restarts the interval.
func (s *IntervalSpawner) Reset() {
	s.timer = 0
}
