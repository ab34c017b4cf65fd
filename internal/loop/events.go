package loop

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/hk97/internal/object"
)

// EventKind identifies a side effect produced by one simulation tick.
type EventKind int

const (
	EventShotsFired EventKind = iota
	EventEnemyDestroyed
	EventEnemyBurst
	EventPlayerHit
	EventPowerUpCollected
	EventPowerUpSpawned
	EventFullPower
	EventLifeGained
	EventBombUsed
	EventGameOver
)

var eventNames = [...]string{
	EventShotsFired:       "shots-fired",
	EventEnemyDestroyed:   "enemy-destroyed",
	EventEnemyBurst:       "enemy-burst",
	EventPlayerHit:        "player-hit",
	EventPowerUpCollected: "power-up-collected",
	EventPowerUpSpawned:   "power-up-spawned",
	EventFullPower:        "full-power",
	EventLifeGained:       "life-gained",
	EventBombUsed:         "bomb-used",
	EventGameOver:         "game-over",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event carries what a presenter needs to render or sonify one side effect.
type Event struct {
	Kind    EventKind
	Pos     mgl64.Vec2
	PowerUp object.PowerUpType // Set for power-up events
	Count   int                // Bullets fired for EventShotsFired and EventEnemyBurst
}

// FrameEvents is the ordered list of events produced by one tick.
type FrameEvents []Event

// Has reports whether an event of kind k occurred.
func (fe FrameEvents) Has(k EventKind) bool {
	return fe.Count(k) > 0
}

// Count returns the number of events of kind k.
func (fe FrameEvents) Count(k EventKind) int {
	n := 0
	for _, e := range fe {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// EventListener receives the events of every simulated tick.
type EventListener interface {
	OnEvents(events FrameEvents)
}
