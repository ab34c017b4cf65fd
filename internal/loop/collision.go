package loop

import (
	"github.com/tomz197/hk97/internal/loop/config"
	"github.com/tomz197/hk97/internal/object"
)

// resolveCollisions runs the interaction rules in their fixed order. Earlier
// rules can deactivate entities that later rules would otherwise consume.
func (w *World) resolveCollisions() {
	w.collidePlayerEnemies()
	w.collideBulletsEnemies()
	w.collectPowerUps()
	w.collidePlayerEnemyBullets()
	w.collidePlayerCars()
}

// collidePlayerEnemies hurts the player on contact. The enemy survives.
func (w *World) collidePlayerEnemies() {
	for _, e := range w.Enemies {
		if !e.Active() || w.Player.Invincible() {
			continue
		}
		if w.Player.Bounds().Intersects(e.Bounds()) {
			w.hitPlayer()
		}
	}
}

// collideBulletsEnemies destroys enemies hit by player bullets. Each bullet
// scores against at most one enemy and a dying enemy cannot be hit again.
func (w *World) collideBulletsEnemies() {
	for _, b := range w.Bullets {
		if !b.Active() {
			continue
		}
		for _, e := range w.Enemies {
			if !e.Active() || !b.Bounds().Intersects(e.Bounds()) {
				continue
			}
			b.Hit()
			pos := e.Position()
			e.Hit()
			w.Player.AddScore(config.ScoreEnemy)
			w.emit(Event{Kind: EventEnemyDestroyed, Pos: pos})

			drop := object.NewPowerUp(pos, object.RandomPowerUpType(w.rng))
			w.PowerUps = append(w.PowerUps, drop)
			w.emit(Event{Kind: EventPowerUpSpawned, Pos: pos, PowerUp: drop.Type()})
			break
		}
	}
}

// collectPowerUps applies every power-up the player touches.
func (w *World) collectPowerUps() {
	for _, p := range w.PowerUps {
		if !p.Active() || !w.Player.Bounds().Intersects(p.Bounds()) {
			continue
		}
		p.HandleFullPower(w.Player.AtFullPower())
		p.Hit()
		w.Player.IncreasePower(p.Type().Gain())
		w.emit(Event{Kind: EventPowerUpCollected, Pos: p.Position(), PowerUp: p.Type()})
		w.awardPoints(config.ScorePowerUp)
	}
}

// collidePlayerEnemyBullets consumes the bullet and hurts the player.
func (w *World) collidePlayerEnemyBullets() {
	for _, b := range w.EnemyBullets {
		if !b.Active() || w.Player.Invincible() {
			continue
		}
		if w.Player.Bounds().Intersects(b.Bounds()) {
			b.Hit()
			w.hitPlayer()
			w.Player.Respawn()
		}
	}
}

// collidePlayerCars hurts the player. Cars are never consumed.
func (w *World) collidePlayerCars() {
	for _, c := range w.Cars {
		if !c.Active() || w.Player.Invincible() {
			continue
		}
		if w.Player.Bounds().Intersects(c.Bounds()) {
			w.hitPlayer()
			w.Player.Respawn()
		}
	}
}

func (w *World) hitPlayer() {
	if w.Player.Hit() {
		w.emit(Event{Kind: EventPlayerHit, Pos: w.Player.DeathPosition()})
	}
}
