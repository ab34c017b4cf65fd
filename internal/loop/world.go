// Package loop runs the game: the World simulation, the Session state
// machine around it and the terminal frame loop that drives both.
package loop

import (
	"math/rand"
	"time"

	"github.com/tomz197/hk97/internal/input"
	"github.com/tomz197/hk97/internal/loop/config"
	"github.com/tomz197/hk97/internal/object"
)

// World owns every entity of one play session. It is not safe for
// concurrent use; one goroutine advances it tick by tick.
type World struct {
	Player       *object.Player
	Bullets      []*object.Bullet
	Enemies      []*object.Enemy
	EnemyBullets []*object.EnemyBullet
	PowerUps     []*object.PowerUp
	Cars         []*object.Car

	tuning       config.Tuning
	rng          *rand.Rand
	enemySpawner *object.IntervalSpawner
	carSpawner   *object.IntervalSpawner
	toSpawn      []object.Object // Objects to add after the update pass
	events       FrameEvents
	bombHeld     bool // Bomb input of the previous tick, for edge detection
	over         bool
}

// NewWorld creates a world with a fresh player. rng drives every random
// choice so a seeded source gives a reproducible session.
func NewWorld(t config.Tuning, rng *rand.Rand) *World {
	return &World{
		Player:       object.NewPlayer(t.InitialLives, t.InitialBombs, t.Invincibility),
		tuning:       t,
		rng:          rng,
		enemySpawner: object.NewEnemySpawner(t.EnemySpawnInterval, t.ShooterDelay, rng),
		carSpawner:   object.NewCarSpawner(t.CarSpawnInterval, rng),
	}
}

// Spawn queues an object to be added after the current update pass.
// Implements object.Spawner.
func (w *World) Spawn(obj object.Object) {
	w.toSpawn = append(w.toSpawn, obj)
}

// Advance runs one tick: input, movement, spawning, collision resolution,
// progression and pruning. dt is clamped to [0, MaxTick].
func (w *World) Advance(in input.Input, dt time.Duration) FrameEvents {
	w.events = nil
	if w.over {
		return nil
	}
	dt = clampDelta(dt, w.tuning.MaxTick)
	powerBefore := w.Player.Power()

	ctx := object.UpdateContext{
		Delta:   dt,
		Input:   in,
		Spawner: w,
		Player:  w.Player,
	}

	if in.Bomb && !w.bombHeld {
		w.UseBomb()
	}
	w.bombHeld = in.Bomb

	w.updateObjects(ctx)
	w.flushSpawned()
	w.resolveCollisions()
	w.checkFullPower(powerBefore)
	w.checkGameOver()
	w.prune()

	return w.events
}

// updateObjects moves the player, runs the spawners and updates every collection.
func (w *World) updateObjects(ctx object.UpdateContext) {
	queued := len(w.toSpawn)
	w.Player.Update(ctx)
	if n := len(w.toSpawn) - queued; n > 0 {
		w.emit(Event{Kind: EventShotsFired, Pos: w.Player.Position(), Count: n})
	}

	w.enemySpawner.Update(ctx)
	w.carSpawner.Update(ctx)

	updateAll(w.Bullets, ctx)
	for _, e := range w.Enemies {
		fired := e.HasFired()
		e.Update(ctx)
		if !fired && e.HasFired() {
			w.emit(Event{Kind: EventEnemyBurst, Pos: e.Position(), Count: config.BurstSize})
		}
	}
	for _, p := range w.PowerUps {
		p.SetGravitate(w.Player.AtFullPower())
	}
	updateAll(w.PowerUps, ctx)
	updateAll(w.EnemyBullets, ctx)
	updateAll(w.Cars, ctx)
}

// flushSpawned moves queued objects into their collections.
func (w *World) flushSpawned() {
	for _, obj := range w.toSpawn {
		switch o := obj.(type) {
		case *object.Bullet:
			w.Bullets = append(w.Bullets, o)
		case *object.Enemy:
			w.Enemies = append(w.Enemies, o)
		case *object.EnemyBullet:
			w.EnemyBullets = append(w.EnemyBullets, o)
		case *object.PowerUp:
			w.PowerUps = append(w.PowerUps, o)
		case *object.Car:
			w.Cars = append(w.Cars, o)
		default:
			panic("loop: cannot spawn object of unknown kind")
		}
	}
	w.toSpawn = truncate(w.toSpawn)
}

// prune drops removed entities. Dying enemies stay until their animation ends.
func (w *World) prune() {
	w.Bullets = pruneRemoved(w.Bullets)
	w.Enemies = pruneRemoved(w.Enemies)
	w.EnemyBullets = pruneRemoved(w.EnemyBullets)
	w.PowerUps = pruneRemoved(w.PowerUps)
	w.Cars = pruneRemoved(w.Cars)
}

// Reset clears every collection and restores the player for a new session.
func (w *World) Reset() {
	w.Player.Reset()
	w.Bullets = truncate(w.Bullets)
	w.Enemies = truncate(w.Enemies)
	w.EnemyBullets = truncate(w.EnemyBullets)
	w.PowerUps = truncate(w.PowerUps)
	w.Cars = truncate(w.Cars)
	w.toSpawn = truncate(w.toSpawn)
	w.enemySpawner.Reset()
	w.carSpawner.Reset()
	w.events = nil
	w.bombHeld = false
	w.over = false
}

// Score returns the player's current score.
func (w *World) Score() int {
	return w.Player.Score()
}

// Over reports whether the player has run out of lives.
func (w *World) Over() bool {
	return w.over
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

func clampDelta(dt, maxTick time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if maxTick > 0 && dt > maxTick {
		return maxTick
	}
	return dt
}

func updateAll[T object.Object](objs []T, ctx object.UpdateContext) {
	for _, obj := range objs {
		obj.Update(ctx)
	}
}

// pruneRemoved keeps the objects that are not removed, reusing the backing array.
func pruneRemoved[T object.Object](objs []T) []T {
	kept := objs[:0]
	for _, obj := range objs {
		if !obj.Removed() {
			kept = append(kept, obj)
		}
	}
	clear(objs[len(kept):])
	return kept
}

// truncate empties s without dropping its backing array.
func truncate[T any](s []T) []T {
	clear(s)
	return s[:0]
}
