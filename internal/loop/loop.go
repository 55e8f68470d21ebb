// Package loop runs one terminal connection: Input → Update → Draw, paced by
// a frame limiter, until the player quits, goes idle or the context ends.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/warpfield/internal/config"
	"github.com/tomz197/warpfield/internal/draw"
	"github.com/tomz197/warpfield/internal/fx"
	"github.com/tomz197/warpfield/internal/game"
	"github.com/tomz197/warpfield/internal/input"
	"github.com/tomz197/warpfield/internal/logging"
	"github.com/tomz197/warpfield/internal/object"
	"github.com/tomz197/warpfield/internal/render"
)

// Options configure a connection loop.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Nil reads the local terminal
	FPS          int               // Zero uses config.DefaultTargetFPS
	Seed         int64             // Zero seeds from the clock
	Effects      object.Effects    // Extra sink next to the visual effects, e.g. audio
	Logger       *log.Logger

	// Idle limits; zero disables the check.
	InactivityWarn       time.Duration
	InactivityDisconnect time.Duration

	// How long the shutdown banner stays up once ctx is cancelled. Zero uses
	// config.ShutdownNoticeTime.
	ShutdownNotice time.Duration
}

// Exit reasons reported in the log.
const (
	reasonQuit     = "quit"
	reasonIdle     = "inactive"
	reasonShutdown = "shutdown"
)

type client struct {
	opts   Options
	log    *log.Logger
	w      io.Writer
	stream *input.Stream
	size   draw.TermSizeFunc

	game    *game.Game
	layer   *fx.Layer
	term    *render.Terminal
	session *game.Session

	lastInput  time.Time
	shutdownAt time.Time
}

// Run plays one game on the terminal behind r and w. It returns nil when the
// player leaves, the idle limit hits or ctx ends, and an error only if the
// terminal fails.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	c, err := newClient(r, w, opts)
	if err != nil {
		return err
	}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)

	reason, err := c.run(ctx)
	if cerr := c.term.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("clear terminal: %w", cerr)
	}
	c.log.Info("session_end", "reason", reason, "score", c.game.HUD().Score)
	return err
}

func newClient(r *bufio.Reader, w io.Writer, opts Options) (*client, error) {
	if opts.FPS <= 0 {
		opts.FPS = config.DefaultTargetFPS
	}
	if opts.ShutdownNotice <= 0 {
		opts.ShutdownNotice = config.ShutdownNoticeTime
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	size := opts.TermSizeFunc
	if size == nil {
		size = draw.DefaultTermSizeFunc
	}

	termW, termH, err := size()
	if err != nil {
		return nil, fmt.Errorf("terminal size: %w", err)
	}

	screen := object.Screen{Width: config.ScreenWidth, Height: config.ScreenHeight}
	// The effect layer draws its own numbers so cosmetics never shift the game.
	layer := fx.NewLayer(screen, rand.New(rand.NewSource(opts.Seed+1)))
	g := game.New(game.Options{
		Screen:  screen,
		Rand:    rand.New(rand.NewSource(opts.Seed)),
		Effects: fx.Fanout{layer, opts.Effects},
		Logger:  logger,
	})

	return &client{
		opts:      opts,
		log:       logger,
		w:         w,
		stream:    input.StartStream(r),
		size:      size,
		game:      g,
		layer:     layer,
		term:      render.NewTerminal(w, screen, termW, termH),
		lastInput: time.Now(),
	}, nil
}

func (c *client) run(ctx context.Context) (string, error) {
	frameTime := time.Second / time.Duration(c.opts.FPS)
	last := time.Now()

	for {
		frameStart := time.Now()
		dt := min(frameStart.Sub(last), config.MaxFrameDelta).Seconds()
		last = frameStart

		in := input.ReadInput(c.stream)
		ov, reason := c.overlay(ctx, in, frameStart)
		if reason != "" {
			return reason, nil
		}

		// The game freezes behind the shutdown banner.
		if !ov.Shutdown {
			c.game.Update(dt, in)
			if c.game.Quit {
				return reasonQuit, nil
			}
		}

		c.updateScreen()
		c.updateEffects(dt)

		if err := c.term.Frame(c.game, c.layer, ov, frameStart); err != nil {
			return "", fmt.Errorf("render frame: %w", err)
		}

		if elapsed := time.Since(frameStart); elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}
}

// overlay tracks idleness and shutdown. A non-empty reason ends the loop.
func (c *client) overlay(ctx context.Context, in input.Input, now time.Time) (render.Overlay, string) {
	var ov render.Overlay

	if c.shutdownAt.IsZero() && ctx.Err() != nil {
		c.shutdownAt = now.Add(c.opts.ShutdownNotice)
	}
	if !c.shutdownAt.IsZero() {
		ov.Shutdown = true
		ov.ShutdownIn = c.shutdownAt.Sub(now)
		if in.Quit || ov.ShutdownIn <= 0 {
			return ov, reasonShutdown
		}
		return ov, ""
	}

	if len(in.Pressed) > 0 {
		c.lastInput = now
	}
	idle := now.Sub(c.lastInput)
	switch {
	case c.opts.InactivityDisconnect > 0 && idle > c.opts.InactivityDisconnect:
		return ov, reasonIdle
	case c.opts.InactivityWarn > 0 && idle > c.opts.InactivityWarn:
		ov.Inactive = true
		ov.DisconnectIn = c.opts.InactivityDisconnect - idle
	}
	return ov, ""
}

// updateScreen follows terminal resizes. Size errors keep the last layout.
func (c *client) updateScreen() {
	w, h, err := c.size()
	if err != nil {
		return
	}
	c.term.Resize(w, h)
}

func (c *client) updateEffects(dt float64) {
	g := c.game
	if g.Session != c.session {
		c.layer.Reset()
		c.session = g.Session
	}
	c.layer.Stars.SetAmbient(g.State != game.StatePlaying && g.State != game.StatePaused)
	c.layer.Update(dt, dt*g.TimeScale(), g.ShipVelocity())
}
