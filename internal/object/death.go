package object

// frameEpsilon absorbs float error when deltas sum exactly to a frame time.
const frameEpsilon = 1e-9

// DeathAnimation is a fixed-length, timed frame counter.
// Each entity owns its own instance.
type DeathAnimation struct {
	frames    int
	frameTime float64
	timer     float64
	frame     int
	playing   bool
}

// NewDeathAnimation returns an idle animation of the given length.
func NewDeathAnimation(frames int, frameTime float64) DeathAnimation {
	return DeathAnimation{frames: frames, frameTime: frameTime}
}

// Start restarts the animation at frame 0. No-op for zero-length animations.
func (a *DeathAnimation) Start() {
	if a.frames <= 0 {
		return
	}
	a.playing = true
	a.timer = 0
	a.frame = 0
}

// Advance moves the animation forward by dt seconds.
// Returns true on the call that finishes the animation.
func (a *DeathAnimation) Advance(dt float64) bool {
	if !a.playing {
		return false
	}
	a.timer += dt
	for a.timer+frameEpsilon >= a.frameTime {
		a.timer -= a.frameTime
		a.frame++
		if a.frame >= a.frames {
			a.frame = a.frames - 1
			a.timer = 0
			a.playing = false
			return true
		}
	}
	return false
}

// Playing reports whether the animation is running.
func (a DeathAnimation) Playing() bool {
	return a.playing
}

// Frame returns the current frame index in [0, frames).
func (a DeathAnimation) Frame() int {
	return a.frame
}
