// Package game runs a single-player session: the typed entity collections,
// the per-frame update order, collision resolution, scoring and drops, and
// the menu/playing/paused/game-over state machine around it.
package game

import (
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/warpfield/internal/config"
	"github.com/tomz197/warpfield/internal/input"
	"github.com/tomz197/warpfield/internal/object"
	"github.com/tomz197/warpfield/internal/physics"
)

// gridCellSize covers the largest asteroid-asteroid contact distance.
const gridCellSize = 2 * object.AsteroidMaxRadius

// Options configure a session.
type Options struct {
	Screen  object.Screen  // Zero uses the default playfield
	Rand    *rand.Rand     // Nil seeds from the clock
	Effects object.Effects // Nil discards effects
	Logger  *log.Logger    // Nil discards logs
}

func (o Options) withDefaults() Options {
	if o.Screen.Width <= 0 || o.Screen.Height <= 0 {
		o.Screen = object.Screen{Width: config.ScreenWidth, Height: config.ScreenHeight}
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Effects == nil {
		o.Effects = object.NopEffects{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Session owns every entity of one game and advances them frame by frame.
// It is not safe for concurrent use.
type Session struct {
	Screen    object.Screen
	Player    *object.Player
	Asteroids []*object.Asteroid
	Shots     []*object.Shot
	Rockets   []*object.Rocket
	Mines     []*object.Mine
	PowerUps  []*object.PowerUp

	// Field feeds asteroids in from the edges. Nil disables spawning.
	Field   *object.AsteroidSpawner
	Targets *object.Targeting

	Score int
	Lives int
	Over  bool

	rng     *rand.Rand
	fx      object.Effects
	log     *log.Logger
	nextID  object.ID
	pending []object.Object
	grid    *physics.SpatialGrid
	near    []int
}

// NewSession starts a session with the ship in the middle of the playfield.
func NewSession(opts Options) *Session {
	opts = opts.withDefaults()

	s := &Session{
		Screen:  opts.Screen,
		Player:  object.NewPlayer(opts.Screen.Center()),
		Targets: object.NewTargeting(),
		Lives:   config.InitialLives,
		rng:     opts.Rand,
		fx:      opts.Effects,
		log:     opts.Logger,
		grid:    physics.NewSpatialGrid(opts.Screen.Width, opts.Screen.Height, gridCellSize),
	}
	s.Player.ID = s.newID()
	s.Field = object.NewAsteroidSpawner(s.liveAsteroids)

	s.log.Debug("game_start", "width", s.Screen.Width, "height", s.Screen.Height)
	return s
}

func (s *Session) newID() object.ID {
	s.nextID++
	return s.nextID
}

// Spawn queues an entity. It joins its collection at the next flush, so an
// entity spawned during an update or collision pass is not touched by the
// rest of that pass.
func (s *Session) Spawn(obj object.Object) {
	if b := obj.Base(); b.ID == 0 {
		b.ID = s.newID()
	}
	s.pending = append(s.pending, obj)
}

func (s *Session) flush() {
	for _, obj := range s.pending {
		switch o := obj.(type) {
		case *object.Asteroid:
			s.Asteroids = append(s.Asteroids, o)
		case *object.Shot:
			s.Shots = append(s.Shots, o)
		case *object.Rocket:
			s.Rockets = append(s.Rockets, o)
		case *object.Mine:
			s.Mines = append(s.Mines, o)
		case *object.PowerUp:
			s.PowerUps = append(s.PowerUps, o)
		default:
			s.log.Warn("dropping unknown entity", "type", obj)
		}
	}
	clear(s.pending)
	s.pending = s.pending[:0]
}

// liveAsteroids counts asteroids not yet destroyed, including queued ones.
func (s *Session) liveAsteroids() int {
	n := 0
	for _, a := range s.Asteroids {
		if !a.IsDestroyed() {
			n++
		}
	}
	for _, obj := range s.pending {
		if a, ok := obj.(*object.Asteroid); ok && !a.IsDestroyed() {
			n++
		}
	}
	return n
}

// Trigger forwards effects to the session sink, logging the ones that mark
// a player action.
func (s *Session) Trigger(e object.Effect) {
	switch e.Kind {
	case object.EffectRocketLaunch:
		s.log.Debug("rockets_fired", "ammo", s.Player.Rockets.Ammo())
	case object.EffectMineDeploy:
		s.log.Debug("mine_deployed", "ammo", s.Player.Mines.Ammo())
	case object.EffectWarp:
		s.log.Debug("warp", "from", e.Pos, "to", e.To)
		s.fx.Trigger(object.Effect{Kind: object.EffectShake, Pos: e.To, Intensity: config.ShakeWarp})
	}
	s.fx.Trigger(e)
}

func (s *Session) shake(intensity float64) {
	s.fx.Trigger(object.Effect{Kind: object.EffectShake, Intensity: intensity})
}

// Step advances the session by realDt seconds of wall-clock time.
func (s *Session) Step(realDt float64, in input.Input) {
	if s.Over {
		return
	}
	p := s.Player

	if in.WarpPressed {
		p.StartWarpCharge(s)
	}
	if in.WarpReleased {
		p.ReleaseWarp(s.Screen, s)
	}

	dt := realDt
	if p.WarpCharging() {
		dt *= config.WarpTimeScale
	}
	p.UpdateWarpCharge(realDt, s.Screen, s)

	s.Targets.Refresh(s.Asteroids, p.Pos)
	ctx := object.UpdateContext{
		Dt:      dt,
		RealDt:  realDt,
		Input:   in,
		Screen:  s.Screen,
		Rand:    s.rng,
		Spawner: s,
		Effects: s,
		Targets: s.Targets,
	}

	p.Update(ctx)
	if s.Field != nil {
		s.Field.Update(ctx)
	}
	updateAll(s.Asteroids, ctx)
	updateAll(s.Shots, ctx)
	updateAll(s.Rockets, ctx)
	updateAll(s.Mines, ctx)
	updateAll(s.PowerUps, ctx)
	s.flush()

	s.collideAsteroids()
	s.flush()
	s.collidePlayer()
	s.flush()
	s.collideRockets()
	s.flush()
	s.collideMines()
	s.flush()
	s.collectPowerUps()
	s.flush()

	s.Asteroids = compact(s.Asteroids)
	s.Shots = compact(s.Shots)
	s.Rockets = compact(s.Rockets)
	s.Mines = compact(s.Mines)
	s.PowerUps = compact(s.PowerUps)
}

func updateAll[T object.Object](items []T, ctx object.UpdateContext) {
	for _, it := range items {
		b := it.Base()
		if b.IsDestroyed() {
			continue
		}
		if it.Update(ctx) {
			b.MarkDestroyed()
		}
	}
}

func compact[T object.Object](items []T) []T {
	return slices.DeleteFunc(items, func(it T) bool {
		return it.Base().IsDestroyed()
	})
}
