package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, so a held key is one seen recently.
const keyHoldDuration = 60 * time.Millisecond

// Input is the discrete intent snapshot for one tick.
type Input struct {
	Quit   bool
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Focus  bool // Slow movement and stacked fire
	Fire   bool
	Bomb   bool
	Enter  bool
	Escape bool
	Any    bool // Any byte arrived this frame
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit   time.Time
	left   time.Time
	right  time.Time
	up     time.Time
	down   time.Time
	focus  time.Time
	fire   time.Time
	bomb   time.Time
	enter  time.Time
	escape time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	now    func() time.Time
	closed bool // Reader ended; reported as Quit
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error (session closed).
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
}

// ResetKeyInput forgets all held keys, so a key used to leave one screen
// does not leak into the next.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	now := s.now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.apply(buf, now)

	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }
	return Input{
		Quit:   s.closed || held(s.state.quit),
		Left:   held(s.state.left),
		Right:  held(s.state.right),
		Up:     held(s.state.up),
		Down:   held(s.state.down),
		Focus:  held(s.state.focus),
		Fire:   held(s.state.fire),
		Bomb:   held(s.state.bomb),
		Enter:  held(s.state.enter),
		Escape: held(s.state.escape),
		Any:    len(buf) > 0,
	}
}

// apply parses buf and updates the key state timestamps.
func (s *Stream) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			// Shift+arrow: ESC [ 1 ; 2 <code>
			if i+5 < len(buf) && buf[i+2] == '1' && buf[i+3] == ';' && buf[i+4] == '2' {
				if applyArrow(&s.state, buf[i+5], now) {
					s.state.focus = now
					i += 5
					continue
				}
			}
			// CSI sequence: ESC [ <code>
			if applyArrow(&s.state, buf[i+2], now) {
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}
}

// applyArrow maps a CSI final byte to a direction. Returns false if it is not an arrow.
func applyArrow(state *keyState, code byte, now time.Time) bool {
	switch code {
	case 'A':
		state.up = now
	case 'B':
		state.down = now
	case 'C':
		state.right = now
	case 'D':
		state.left = now
	default:
		return false
	}
	return true
}

// applyByteToState updates the key state timestamps based on the pressed byte.
// Uppercase movement letters mean Shift is held, which is focus mode.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'h':
		state.left = now
	case 'A', 'H':
		state.left = now
		state.focus = now
	case 'd', 'l':
		state.right = now
	case 'D', 'L':
		state.right = now
		state.focus = now
	case 'w', 'k':
		state.up = now
	case 'W', 'K':
		state.up = now
		state.focus = now
	case 's', 'j':
		state.down = now
	case 'S', 'J':
		state.down = now
		state.focus = now
	case 'f', 'F':
		state.focus = now
	case 'z', 'Z', ' ':
		state.fire = now
	case 'x', 'X':
		state.bomb = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	}
}
