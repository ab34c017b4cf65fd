package object

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/hk97/internal/loop/config"
)

// Car is an indestructible obstacle crossing the arena from right to left.
type Car struct {
	Entity
}

// NewCar creates a car at pos heading left.
func NewCar(pos mgl64.Vec2) *Car {
	return &Car{Entity: newEntity(pos, mgl64.Vec2{-config.CarSpeed, 0}, config.CarW, config.CarH)}
}

func (c *Car) Update(ctx UpdateContext) {
	c.integrate(ctx.Delta.Seconds())
	if c.Pos.X() < config.CarExitX {
		c.active = false
	}
}

// Hit deactivates the car. Player collisions never call it.
func (c *Car) Hit() {
	c.active = false
}
