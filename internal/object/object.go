// Package object holds the simulated entities of the arena and their update rules.
package object

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/hk97/internal/input"
	"github.com/tomz197/hk97/internal/loop/config"
	"github.com/tomz197/hk97/internal/physics"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Input   Input
	Spawner Spawner
	Player  *Player // Target for gravitating power-ups; may be nil
}

// Object is a simulated entity owned by one of the world's collections.
type Object interface {
	// Update advances the object by ctx.Delta.
	Update(ctx UpdateContext)

	// Hit applies damage or consumption. The effect depends on the kind.
	Hit()

	// Active reports whether the object takes part in collisions.
	Active() bool

	// Removed reports whether the object can be pruned from its collection.
	Removed() bool

	// Bounds returns the collision rectangle.
	Bounds() physics.Rect
}

// Arena is the play field rectangle.
var Arena = physics.Rect{W: config.ArenaWidth, H: config.ArenaHeight}

// Entity is the state shared by every kind: kinematics, the active flag and
// an optional death animation.
type Entity struct {
	Pos mgl64.Vec2
	Vel mgl64.Vec2

	w, h   float64
	active bool
	death  DeathAnimation
}

func newEntity(pos, vel mgl64.Vec2, w, h float64) Entity {
	return Entity{Pos: pos, Vel: vel, w: w, h: h, active: true}
}

// Position returns the entity center.
func (e *Entity) Position() mgl64.Vec2 {
	return e.Pos
}

// Active reports whether the entity takes part in collisions.
func (e *Entity) Active() bool {
	return e.active
}

// SetActive sets the active flag.
func (e *Entity) SetActive(active bool) {
	e.active = active
}

// Bounds returns the hitbox centered on the entity position.
func (e *Entity) Bounds() physics.Rect {
	return physics.RectAround(e.Pos, e.w, e.h)
}

// Removed reports whether the entity is neither active nor playing its death animation.
func (e *Entity) Removed() bool {
	return !e.active && !e.death.Playing()
}

// StartDeathAnimation begins the death animation from frame 0.
func (e *Entity) StartDeathAnimation() {
	e.death.Start()
}

// UpdateDeathAnimation advances the death animation. When the last frame
// has elapsed the entity is deactivated.
func (e *Entity) UpdateDeathAnimation(dt float64) {
	if e.death.Advance(dt) {
		e.active = false
	}
}

// InDeathAnimation reports whether the death animation is playing.
func (e *Entity) InDeathAnimation() bool {
	return e.death.Playing()
}

// DeathFrame returns the current death animation frame.
func (e *Entity) DeathFrame() int {
	return e.death.Frame()
}

// integrate moves the entity by its velocity.
func (e *Entity) integrate(dt float64) {
	e.Pos = e.Pos.Add(e.Vel.Mul(dt))
}
