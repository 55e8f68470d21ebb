// Package desktop runs a game in an ebiten window. It shares the simulation,
// effect layer and shape helpers with the terminal frontend and only swaps
// the drawing surface and the keyboard.
package desktop

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/warpfield/internal/config"
	"github.com/tomz197/warpfield/internal/fx"
	"github.com/tomz197/warpfield/internal/game"
	"github.com/tomz197/warpfield/internal/input"
	"github.com/tomz197/warpfield/internal/logging"
	"github.com/tomz197/warpfield/internal/object"
)

// Options configure a window.
type Options struct {
	Seed     int64          // Zero seeds from the clock
	Effects  object.Effects // Extra sink, e.g. audio
	Logger   *log.Logger
	Keyboard Keyboard // Nil reads ebiten's keyboard
}

// Window implements ebiten.Game.
type Window struct {
	Game  *game.Game
	Layer *fx.Layer

	keys    Keyboard
	log     *log.Logger
	screen  object.Screen
	session *game.Session
	last    time.Time
}

var _ ebiten.Game = (*Window)(nil)

// New creates a window sitting in the menu.
func New(opts Options) *Window {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Keyboard == nil {
		opts.Keyboard = ebitenKeys{}
	}

	screen := object.Screen{Width: config.ScreenWidth, Height: config.ScreenHeight}
	layer := fx.NewLayer(screen, rand.New(rand.NewSource(opts.Seed+1)))
	return &Window{
		Game: game.New(game.Options{
			Screen:  screen,
			Rand:    rand.New(rand.NewSource(opts.Seed)),
			Effects: fx.Fanout{layer, opts.Effects},
			Logger:  opts.Logger,
		}),
		Layer:  layer,
		keys:   opts.Keyboard,
		log:    opts.Logger,
		screen: screen,
	}
}

// Update advances one tick. It returns ebiten.Termination once the player quits.
func (w *Window) Update() error {
	now := time.Now()
	if w.last.IsZero() {
		w.last = now
	}
	dt := min(now.Sub(w.last), config.MaxFrameDelta).Seconds()
	w.last = now
	return w.step(dt, ReadInput(w.keys))
}

func (w *Window) step(dt float64, in input.Input) error {
	g := w.Game
	g.Update(dt, in)
	if g.Quit {
		w.log.Info("session_end", "reason", "quit", "score", g.HUD().Score)
		return ebiten.Termination
	}

	if g.Session != w.session {
		w.Layer.Reset()
		w.session = g.Session
	}
	w.Layer.Stars.SetAmbient(g.State != game.StatePlaying && g.State != game.StatePaused)
	w.Layer.Update(dt, dt*g.TimeScale(), g.ShipVelocity())
	return nil
}

// Layout keeps the logical playfield size; ebiten scales it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(w.screen.Width), int(w.screen.Height)
}
