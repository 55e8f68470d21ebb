package game

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/tomz197/warpfield/internal/config"
	"github.com/tomz197/warpfield/internal/input"
	"github.com/tomz197/warpfield/internal/object"
)

// State is the top-level phase of a game.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// Backdrop drift for the menu and game-over screens.
const (
	backdropCount    = 12
	backdropMaxSpeed = 50.0
	backdropMargin   = 100.0
)

// Game wraps sessions in the menu → playing → paused/game-over flow.
type Game struct {
	State    State
	Session  *Session // Nil outside a game
	Backdrop []*object.Asteroid
	Quit     bool

	opts Options
	log  *log.Logger
}

// New creates a game sitting in the menu.
func New(opts Options) *Game {
	opts = opts.withDefaults()
	g := &Game{opts: opts, log: opts.Logger}
	g.resetBackdrop()
	return g
}

// Screen returns the playfield size.
func (g *Game) Screen() object.Screen {
	return g.opts.Screen
}

// Update advances the game by realDt seconds of wall-clock time.
func (g *Game) Update(realDt float64, in input.Input) {
	if in.Quit {
		g.Quit = true
		return
	}

	switch g.State {
	case StateMenu:
		g.driftBackdrop(realDt)
		switch {
		case in.Confirm:
			g.start()
		case in.Back:
			g.Quit = true
		}

	case StatePlaying:
		if in.Back || in.Pause {
			g.setState(StatePaused)
			return
		}
		g.Session.Step(realDt, in)
		if g.Session.Over {
			g.resetBackdrop()
			g.setState(StateGameOver)
		}

	case StatePaused:
		switch {
		case in.Confirm, in.Pause:
			g.setState(StatePlaying)
		case in.Back:
			g.toMenu()
		}

	case StateGameOver:
		g.driftBackdrop(realDt)
		switch {
		case in.Confirm:
			g.start()
		case in.Back:
			g.toMenu()
		}
	}
}

// HUD returns the current session status, or the zero HUD outside a game.
func (g *Game) HUD() HUD {
	if g.Session == nil {
		return HUD{}
	}
	return g.Session.HUD()
}

// TimeScale is the simulation speed relative to wall-clock time: zero when
// nothing simulates, slowed while the warp charges.
func (g *Game) TimeScale() float64 {
	switch {
	case g.State != StatePlaying || g.Session == nil:
		return 0
	case g.Session.Player.WarpCharging():
		return config.WarpTimeScale
	}
	return 1
}

// ShipVelocity returns the player's velocity, zero outside a game.
func (g *Game) ShipVelocity() object.Vec2 {
	if g.Session == nil {
		return object.Vec2{}
	}
	return g.Session.Player.Vel
}

func (g *Game) start() {
	g.Session = NewSession(g.opts)
	g.setState(StatePlaying)
}

func (g *Game) toMenu() {
	g.Session = nil
	g.resetBackdrop()
	g.setState(StateMenu)
}

func (g *Game) setState(s State) {
	if g.State == s {
		return
	}
	g.log.Debug("state_change", "from", g.State, "to", s)
	g.State = s
}

func (g *Game) resetBackdrop() {
	rng := g.opts.Rand
	sc := g.opts.Screen

	g.Backdrop = g.Backdrop[:0]
	for range backdropCount {
		pos := object.Vec2{X: rng.Float64() * sc.Width, Y: rng.Float64() * sc.Height}
		vel := object.Vec2{
			X: (rng.Float64()*2 - 1) * backdropMaxSpeed,
			Y: (rng.Float64()*2 - 1) * backdropMaxSpeed,
		}
		radius := object.AsteroidMinRadius + rng.Float64()*(object.AsteroidMaxRadius-object.AsteroidMinRadius)
		g.Backdrop = append(g.Backdrop, object.NewAsteroid(pos, vel, radius, rng))
	}
}

func (g *Game) driftBackdrop(dt float64) {
	for _, a := range g.Backdrop {
		a.Rotation = math.Mod(a.Rotation+a.Spin*dt, 360)
		a.Move(dt)
		a.Pos = g.opts.Screen.Wrap(a.Pos, backdropMargin)
	}
}
