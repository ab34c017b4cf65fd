package object

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/hk97/internal/loop/config"
	"github.com/tomz197/hk97/internal/physics"
)

// PowerUpType is the size of a power-up.
type PowerUpType int

const (
	PowerUpSmall PowerUpType = iota
	PowerUpLarge
)

func (t PowerUpType) String() string {
	if t == PowerUpLarge {
		return "large"
	}
	return "small"
}

// Gain is the power level a pickup adds.
func (t PowerUpType) Gain() int {
	if t == PowerUpLarge {
		return config.PowerLargeGain
	}
	return config.PowerSmallGain
}

// RandomPowerUpType returns Large with LargePowerUpChance, else Small.
func RandomPowerUpType(rng *rand.Rand) PowerUpType {
	if rng.Float64() < config.LargePowerUpChance {
		return PowerUpLarge
	}
	return PowerUpSmall
}

// PowerUp is a collectible dropped by destroyed enemies.
type PowerUp struct {
	Entity

	kind      PowerUpType
	gravitate bool
}

// NewPowerUp creates a power-up drifting down from pos.
func NewPowerUp(pos mgl64.Vec2, kind PowerUpType) *PowerUp {
	return &PowerUp{
		Entity: newEntity(pos, mgl64.Vec2{0, config.PowerUpDriftSpeed}, config.PowerUpW, config.PowerUpH),
		kind:   kind,
	}
}

// Update drifts down, or moves straight at the player while gravitating.
func (p *PowerUp) Update(ctx UpdateContext) {
	dt := ctx.Delta.Seconds()
	if p.gravitate && ctx.Player != nil {
		p.Pos = physics.MoveToward(p.Pos, ctx.Player.Position(), config.PowerUpPullSpeed*dt)
		return
	}
	p.integrate(dt)
	if p.Pos.Y() > config.PowerUpExitY {
		p.active = false
	}
}

// Hit consumes the power-up.
func (p *PowerUp) Hit() {
	p.active = false
}

// HandleFullPower is applied on pickup: a player already at full power
// turns any pickup into a Large one.
func (p *PowerUp) HandleFullPower(fullPower bool) {
	if fullPower {
		p.kind = PowerUpLarge
	}
}

func (p *PowerUp) SetGravitate(on bool) { p.gravitate = on }
func (p *PowerUp) Gravitating() bool    { return p.gravitate }
func (p *PowerUp) Type() PowerUpType    { return p.kind }
