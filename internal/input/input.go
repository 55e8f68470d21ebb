// Package input turns a raw terminal byte stream into per-frame key state.
//
// Terminals only report key presses (plus auto-repeat), never releases, so a
// key counts as held for a short window after its last byte arrived.
package input

import (
	"bufio"
	"time"
)

const (
	// keyHoldDuration covers the gap between auto-repeat bytes.
	keyHoldDuration = 80 * time.Millisecond
	// warpHoldDuration also covers the initial auto-repeat delay, so holding
	// the warp key keeps the charge going instead of releasing it early.
	warpHoldDuration = 600 * time.Millisecond
)

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Up      bool // Thrust forward
	Down    bool // Reverse thrust
	Fire    bool
	Rockets bool
	Mine    bool
	Warp    bool // Warp key held

	WarpPressed  bool // Warp went from released to held this frame
	WarpReleased bool // Warp went from held to released this frame
	Confirm      bool // Space/Enter pressed this frame
	Back         bool // Escape pressed this frame
	Pause        bool // P pressed this frame

	Pressed []byte
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit    time.Time
	left    time.Time
	right   time.Time
	up      time.Time
	down    time.Time
	fire    time.Time
	rockets time.Time
	mine    time.Time
	warp    time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch       chan byte
	state    keyState
	warpHeld bool
	closed   bool
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The stream reports Quit once r is exhausted.
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

// Reset forgets all held keys, so a key used to leave a menu does not
// immediately act in the next screen.
func Reset(s *Stream) {
	s.state = keyState{}
	s.warpHeld = false
}

// ReadInput drains all available bytes from the stream without blocking.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for !s.closed {
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

	return s.parse(buf, time.Now())
}

// parse applies a batch of bytes received at now and builds the frame input.
func (s *Stream) parse(buf []byte, now time.Time) Input {
	var in Input

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
			case 'B':
				s.state.down = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}

		switch b {
		case ' ', '\n', '\r':
			in.Confirm = true
		case '\x1b':
			in.Back = true
		case 'p', 'P':
			in.Pause = true
		}
		applyByteToState(&s.state, b, now)
	}

	held := func(t time.Time, window time.Duration) bool {
		return !t.IsZero() && now.Sub(t) < window
	}

	in.Quit = s.closed || held(s.state.quit, keyHoldDuration)
	in.Left = held(s.state.left, keyHoldDuration)
	in.Right = held(s.state.right, keyHoldDuration)
	in.Up = held(s.state.up, keyHoldDuration)
	in.Down = held(s.state.down, keyHoldDuration)
	in.Fire = held(s.state.fire, keyHoldDuration)
	in.Rockets = held(s.state.rockets, keyHoldDuration)
	in.Mine = held(s.state.mine, keyHoldDuration)
	in.Warp = held(s.state.warp, warpHoldDuration)

	in.WarpPressed = in.Warp && !s.warpHeld
	in.WarpReleased = !in.Warp && s.warpHeld
	s.warpHeld = in.Warp

	in.Pressed = buf
	return in
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case 's', 'S', 'k', 'K':
		state.down = now
	case ' ':
		state.fire = now
	case '1', 'r', 'R':
		state.rockets = now
	case '2', 'm', 'M':
		state.mine = now
	case 'e', 'E':
		state.warp = now
	}
}
