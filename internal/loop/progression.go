package loop

import "github.com/tomz197/hk97/internal/loop/config"

// awardPoints adds points and grants a life when the new score is an exact
// multiple of ExtendEvery. A jump over a multiple grants nothing.
func (w *World) awardPoints(points int) {
	w.Player.AddScore(points)
	if extendsLife(w.Player.Score(), points) {
		w.Player.AddLife()
		w.emit(Event{Kind: EventLifeGained, Pos: w.Player.Position()})
	}
}

func extendsLife(score, points int) bool {
	return points > 0 && score > 0 && score%config.ExtendEvery == 0
}

// checkFullPower fires once when power crosses into MaxPower during a tick.
func (w *World) checkFullPower(powerBefore int) {
	if powerBefore < config.MaxPower && w.Player.Power() >= config.MaxPower {
		w.Player.SetFullPower(true)
		w.emit(Event{Kind: EventFullPower, Pos: w.Player.Position()})
	}
}

func (w *World) checkGameOver() {
	if !w.over && w.Player.Lives() <= 0 {
		w.over = true
		w.emit(Event{Kind: EventGameOver, Pos: w.Player.Position()})
	}
}

// UseBomb spends a bomb and clears every enemy. Enemy bullets and cars are
// left alone. Returns false when no bomb is left.
func (w *World) UseBomb() bool {
	if !w.Player.UseBomb() {
		return false
	}
	w.Enemies = truncate(w.Enemies)
	w.emit(Event{Kind: EventBombUsed, Pos: w.Player.Position()})
	return true
}
