package object

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/hk97/internal/loop/config"
)

// SpawnPoint is where the player starts and reappears after a hit.
var SpawnPoint = mgl64.Vec2{config.PlayerSpawnX, config.PlayerSpawnY}

// Player is the player-controlled ship.
type Player struct {
	Entity

	initialLives  int
	initialBombs  int
	invincibility float64 // Seconds granted on each hit

	lives int
	score int
	bombs int
	power int

	shootCooldown float64 // Cooldown applied by CanShoot, depends on power
	cooldown      float64 // Seconds until the next shot
	invincible    float64 // Seconds of invincibility remaining
	focused       bool
	fullPower     bool
	deathPos      mgl64.Vec2
}

// NewPlayer creates a player at the spawn point.
func NewPlayer(lives, bombs int, invincibility time.Duration) *Player {
	p := &Player{
		initialLives:  lives,
		initialBombs:  bombs,
		invincibility: invincibility.Seconds(),
	}
	p.Reset()
	return p
}

// Reset restores every field to its session start value.
func (p *Player) Reset() {
	p.Entity = newEntity(SpawnPoint, mgl64.Vec2{}, config.PlayerW, config.PlayerH)
	p.death = NewDeathAnimation(config.PlayerDeathFrames, config.PlayerDeathFrameTime)
	p.lives = p.initialLives
	p.score = 0
	p.bombs = p.initialBombs
	p.power = 0
	p.cooldown = 0
	p.invincible = 0
	p.focused = false
	p.fullPower = false
	p.shootCooldown = p.ShootCooldown()
}

// Update handles timers, focus, movement and firing.
func (p *Player) Update(ctx UpdateContext) {
	dt := ctx.Delta.Seconds()

	p.cooldown = math.Max(0, p.cooldown-dt)
	p.invincible = math.Max(0, p.invincible-dt)

	// The player is never deactivated by its own animation: it respawns at once.
	p.death.Advance(dt)

	p.focused = ctx.Input.Focus
	speed := config.PlayerSpeed
	if p.focused {
		speed = config.PlayerFocusSpeed
	}

	var vel mgl64.Vec2
	if ctx.Input.Left {
		vel[0] -= speed
	}
	if ctx.Input.Right {
		vel[0] += speed
	}
	if ctx.Input.Up {
		vel[1] -= speed
	}
	if ctx.Input.Down {
		vel[1] += speed
	}
	p.Vel = vel
	p.integrate(dt)
	p.Pos[0] = mgl64.Clamp(p.Pos[0], 0, config.ArenaWidth)
	p.Pos[1] = mgl64.Clamp(p.Pos[1], 0, config.ArenaHeight)

	if ctx.Input.Fire && ctx.Spawner != nil && p.CanShoot() {
		p.Fire(ctx.Spawner)
	}

	p.checkInvariants()
}

// CanShoot is the fire rate gate. If the cooldown has elapsed it rearms the
// cooldown and returns true; otherwise it returns false and changes nothing.
func (p *Player) CanShoot() bool {
	if p.cooldown <= 0 {
		p.cooldown = p.shootCooldown
		return true
	}
	return false
}

// Fire spawns one volley and returns the number of bullets.
// Unfocused: a fan about straight up. Focused: a vertical stack of parallel shots.
func (p *Player) Fire(spawner Spawner) int {
	count := p.SpreadCount()
	if p.focused {
		for i := 0; i < count; i++ {
			offset := (float64(i) - float64(count-1)/2) * config.FocusedBulletGap
			pos := p.Pos.Add(mgl64.Vec2{0, offset})
			spawner.Spawn(NewBullet(pos, mgl64.Vec2{0, -config.BulletSpeed}))
		}
		return count
	}

	for i := 0; i < count; i++ {
		angle := -config.SpreadStepDegrees*float64(count-1)/2 + config.SpreadStepDegrees*float64(i)
		rad := mgl64.DegToRad(angle)
		vel := mgl64.Vec2{-math.Sin(rad), -math.Cos(rad)}.Mul(config.BulletSpeed)
		spawner.Spawn(NewBullet(p.Pos, vel))
	}
	return count
}

// Hit costs a life unless invincible. The player respawns at once with
// invincibility and loses all power. Returns false if the hit was ignored.
func (p *Player) Hit() bool {
	if p.Invincible() {
		return false
	}
	if p.lives > 0 {
		p.lives--
	}
	p.invincible = p.invincibility
	p.deathPos = p.Pos
	p.StartDeathAnimation()
	p.Respawn()
	p.power = 0
	p.shootCooldown = p.ShootCooldown()
	p.fullPower = false
	return true
}

// Respawn moves the player to the spawn point.
func (p *Player) Respawn() {
	p.Pos = SpawnPoint
	p.Vel = mgl64.Vec2{}
}

// IncreasePower adds amount (which may be negative) and clamps to [0, MaxPower].
func (p *Player) IncreasePower(amount int) {
	p.power = min(config.MaxPower, max(0, p.power+amount))
	p.shootCooldown = p.ShootCooldown()
}

// ShootCooldown is the power-dependent delay between volleys.
func (p *Player) ShootCooldown() float64 {
	return math.Max(config.MinShootCooldown, config.BaseShootCooldown-float64(p.power)*config.CooldownPerPower)
}

// SpreadCount is the number of bullets per volley.
func (p *Player) SpreadCount() int {
	return 1 + p.power/2
}

// UseBomb consumes a bomb if one is left.
func (p *Player) UseBomb() bool {
	if p.bombs > 0 {
		p.bombs--
		return true
	}
	return false
}

// AddScore adds points. Negative amounts are ignored; score never decreases in play.
func (p *Player) AddScore(points int) {
	if points > 0 {
		p.score += points
	}
}

// AddLife grants an extra life.
func (p *Player) AddLife() {
	p.lives++
}

// SetFullPower records whether the full power state is on.
func (p *Player) SetFullPower(on bool) {
	p.fullPower = on
}

func (p *Player) Lives() int                { return p.lives }
func (p *Player) Score() int                { return p.score }
func (p *Player) Bombs() int                { return p.bombs }
func (p *Player) Power() int                { return p.power }
func (p *Player) Focused() bool             { return p.focused }
func (p *Player) AtFullPower() bool         { return p.fullPower }
func (p *Player) Invincible() bool          { return p.invincible > 0 }
func (p *Player) InvincibleTime() float64   { return p.invincible }
func (p *Player) Cooldown() float64         { return p.cooldown }
func (p *Player) DeathPosition() mgl64.Vec2 { return p.deathPos }

// checkInvariants panics on states that only a programming error can produce.
func (p *Player) checkInvariants() {
	if p.power < 0 || p.power > config.MaxPower {
		panic(fmt.Sprintf("player power %d outside [0, %d]", p.power, config.MaxPower))
	}
	if p.lives < 0 || p.bombs < 0 || p.score < 0 {
		panic(fmt.Sprintf("player counters negative: lives=%d bombs=%d score=%d", p.lives, p.bombs, p.score))
	}
}
