// Package audio turns simulation events into short synthesized sound cues.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/hk97/internal/loop"
)

const sampleRate = beep.SampleRate(44100)

// maxVoices caps concurrent cues so rapid fire cannot pile up in the mixer.
const maxVoices = 16

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// Cue describes one sound effect. Freq glides to Sweep over Duration;
// a zero Sweep holds the pitch. Volume is a base 2 exponent applied to the wave.
type Cue struct {
	Freq     float64
	Sweep    float64
	Duration time.Duration
	Wave     Wave
	Volume   float64
}

var cues = map[loop.EventKind]Cue{
	loop.EventShotsFired:       {Freq: 1760, Duration: 25 * time.Millisecond, Wave: WaveSine, Volume: -4},
	loop.EventEnemyDestroyed:   {Freq: 300, Sweep: 60, Duration: 200 * time.Millisecond, Wave: WaveNoise, Volume: -2},
	loop.EventEnemyBurst:       {Freq: 660, Sweep: 440, Duration: 80 * time.Millisecond, Wave: WaveSquare, Volume: -4},
	loop.EventPlayerHit:        {Freq: 400, Sweep: 40, Duration: 450 * time.Millisecond, Wave: WaveNoise, Volume: -1},
	loop.EventPowerUpCollected: {Freq: 880, Sweep: 1320, Duration: 60 * time.Millisecond, Wave: WaveSine, Volume: -3},
	loop.EventFullPower:        {Freq: 440, Sweep: 1760, Duration: 400 * time.Millisecond, Wave: WaveSquare, Volume: -3},
	loop.EventLifeGained:       {Freq: 1046, Sweep: 2093, Duration: 300 * time.Millisecond, Wave: WaveSine, Volume: -2},
	loop.EventBombUsed:         {Freq: 120, Sweep: 30, Duration: 700 * time.Millisecond, Wave: WaveNoise, Volume: 0},
	loop.EventGameOver:         {Freq: 330, Sweep: 110, Duration: 900 * time.Millisecond, Wave: WaveSquare, Volume: -2},
}

// CueFor returns the cue for an event kind. Kinds without a sound return false.
func CueFor(kind loop.EventKind) (Cue, bool) {
	c, ok := cues[kind]
	return c, ok
}

// Player mixes cues into the speaker. A Player that was never started, or
// whose start failed, stays silent.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	started bool
}

// NewPlayer creates a silent player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Start opens the audio device. On failure the player stays silent.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Close silences the player.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.started = false
}

// OnEvents plays one cue per event kind present in the tick.
// Implements loop.EventListener.
func (p *Player) OnEvents(events loop.FrameEvents) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	seen := make(map[loop.EventKind]bool, len(events))
	speaker.Lock()
	defer speaker.Unlock()
	for _, e := range events {
		if seen[e.Kind] {
			continue
		}
		seen[e.Kind] = true
		p.enqueue(e.Kind)
	}
}

func (p *Player) enqueue(kind loop.EventKind) {
	c, ok := CueFor(kind)
	if !ok || p.mixer.Len() >= maxVoices {
		return
	}
	p.mixer.Add(c.Streamer(sampleRate))
}

// Streamer renders the cue at sample rate sr.
func (c Cue) Streamer(sr beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	if c.Wave == WaveSine && c.Sweep == 0 {
		tone, err := generators.SineTone(sr, c.Freq)
		if err != nil {
			return beep.Silence(sr.N(c.Duration))
		}
		s = beep.Take(sr.N(c.Duration), tone)
	} else {
		s = newSweep(c, sr)
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   c.Volume,
	}
}

// sweep is an oscillator gliding linearly from Freq to Sweep with a decaying envelope.
type sweep struct {
	cue      Cue
	rate     beep.SampleRate
	total    int
	position int
	phase    float64
	noise    uint32
}

func newSweep(c Cue, sr beep.SampleRate) *sweep {
	if c.Sweep == 0 {
		c.Sweep = c.Freq
	}
	return &sweep{cue: c, rate: sr, total: sr.N(c.Duration), noise: 0x9e3779b9}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.total)
		freq := s.cue.Freq + (s.cue.Sweep-s.cue.Freq)*progress

		var val float64
		switch s.cue.Wave {
		case WaveSquare:
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			// xorshift keeps the cue deterministic
			s.noise ^= s.noise << 13
			s.noise ^= s.noise >> 17
			s.noise ^= s.noise << 5
			val = float64(s.noise)/math.MaxUint32*2 - 1
		default:
			val = math.Sin(2 * math.Pi * s.phase)
		}
		val *= 0.5 * (1 - progress)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }
