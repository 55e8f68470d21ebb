package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParseArrowKeys(t *testing.T) {
	s := newStream()
	now := time.Now()

	in := s.parse([]byte("\x1b[A\x1b[D"), now)
	if !in.Up || !in.Left {
		t.Errorf("expected up+left held, got %+v", in)
	}
	if in.Back {
		t.Error("arrow escape sequences must not count as Back")
	}
}

func TestKeysExpireAfterHoldWindow(t *testing.T) {
	s := newStream()
	now := time.Now()

	s.parse([]byte("w"), now)
	if in := s.parse(nil, now.Add(keyHoldDuration/2)); !in.Up {
		t.Error("expected thrust still held inside the hold window")
	}
	if in := s.parse(nil, now.Add(keyHoldDuration*2)); in.Up {
		t.Error("expected thrust released after the hold window")
	}
}

func TestWarpEdges(t *testing.T) {
	s := newStream()
	now := time.Now()

	in := s.parse([]byte("e"), now)
	if !in.WarpPressed || in.WarpReleased {
		t.Fatalf("expected press edge, got %+v", in)
	}

	in = s.parse([]byte("e"), now.Add(100*time.Millisecond))
	if in.WarpPressed || !in.Warp {
		t.Errorf("repeat while held must not re-trigger press, got %+v", in)
	}

	in = s.parse(nil, now.Add(100*time.Millisecond+warpHoldDuration))
	if !in.WarpReleased || in.Warp {
		t.Errorf("expected release edge, got %+v", in)
	}

	in = s.parse(nil, now.Add(200*time.Millisecond+warpHoldDuration))
	if in.WarpReleased {
		t.Error("release edge must fire once")
	}
}

func TestConfirmAndBackAreEdges(t *testing.T) {
	s := newStream()
	now := time.Now()

	in := s.parse([]byte(" "), now)
	if !in.Confirm || !in.Fire {
		t.Errorf("space should confirm and fire, got %+v", in)
	}
	in = s.parse(nil, now.Add(time.Millisecond))
	if in.Confirm {
		t.Error("confirm must only be reported on the frame the byte arrived")
	}
	if !in.Fire {
		t.Error("fire should still be held")
	}

	if in := s.parse([]byte("\x1b"), now); !in.Back {
		t.Error("lone escape should be Back")
	}
	if in := s.parse([]byte("p"), now); !in.Pause || in.Back {
		t.Errorf("p should pause without going back, got %+v", in)
	}
}

func TestResetClearsHeldKeys(t *testing.T) {
	s := newStream()
	now := time.Now()

	s.parse([]byte(" e"), now)
	Reset(s)
	in := s.parse(nil, now.Add(time.Millisecond))
	if in.Fire || in.Warp || in.WarpReleased {
		t.Errorf("expected no held keys after Reset, got %+v", in)
	}
}

func TestClosedStreamQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if ReadInput(s).Quit {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Error("expected Quit after the reader hit EOF")
}
