package object

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/hk97/internal/loop/config"
)

// Bullet is a player projectile.
type Bullet struct {
	Entity
}

// NewBullet creates a player bullet at pos moving with vel.
func NewBullet(pos, vel mgl64.Vec2) *Bullet {
	return &Bullet{Entity: newEntity(pos, vel, config.BulletW, config.BulletH)}
}

// Update moves the bullet and deactivates it once it leaves the arena margin.
func (b *Bullet) Update(ctx UpdateContext) {
	b.integrate(ctx.Delta.Seconds())
	if !Arena.Grow(config.BulletMargin).Contains(b.Pos) {
		b.active = false
	}
}

// Hit consumes the bullet.
func (b *Bullet) Hit() {
	b.active = false
}

// EnemyBullet is a projectile fired by a Shooter enemy.
type EnemyBullet struct {
	Entity
}

// NewEnemyBullet creates an enemy bullet at pos moving with vel.
func NewEnemyBullet(pos, vel mgl64.Vec2) *EnemyBullet {
	return &EnemyBullet{Entity: newEntity(pos, vel, config.EnemyBulletW, config.EnemyBulletH)}
}

func (b *EnemyBullet) Update(ctx UpdateContext) {
	b.integrate(ctx.Delta.Seconds())
	if !Arena.Grow(config.EnemyBulletMargin).Contains(b.Pos) {
		b.active = false
	}
}

func (b *EnemyBullet) Hit() {
	b.active = false
}
