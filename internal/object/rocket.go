package object

import (
	"math"

	"github.com/tomz197/warpfield/internal/physics"
)

// Rocket tuning.
const (
	RocketRadius       = 6.0
	RocketSpeed        = 350.0
	RocketTurnRate     = 180.0 // Degrees per second
	RocketLifetime     = 4.0
	RocketInherit      = 0.3 // Share of the ship velocity added at launch
	RocketsPerVolley   = 3
	RocketSpread       = 15.0 // Degrees between volley rockets
	RocketMaxAmmo      = 3
	RocketCooldown     = 0.5
	RocketBlastRadius  = 30.0 // Visual size of the explosion
	rocketTrailSpacing = 0.03
)

// Rocket homes in on the asteroid nearest the ship, turning at a limited rate.
type Rocket struct {
	Body
	Rotation   float64 // Degrees
	Lifetime   float64
	Target     ID // Zero when the rocket has no target
	trailTimer float64
}

// NewRocket launches a rocket along rotation, inheriting part of shipVel.
func NewRocket(pos Vec2, rotation float64, shipVel Vec2) *Rocket {
	vel := physics.Heading(rotation).Scale(RocketSpeed).Add(shipVel.Scale(RocketInherit))
	return &Rocket{
		Body:     Body{Pos: pos, Vel: vel, Radius: RocketRadius},
		Rotation: rotation,
		Lifetime: RocketLifetime,
	}
}

// Update ages, steers, moves and wraps the rocket.
func (r *Rocket) Update(ctx UpdateContext) bool {
	if r.IsDestroyed() {
		return true
	}

	r.Lifetime -= ctx.Dt
	if r.Lifetime <= 0 {
		r.Detonate(ctx.Targets)
		return true
	}

	if ctx.Targets != nil {
		if target := r.track(ctx.Targets); target != nil {
			r.steer(target.Pos, ctx.Dt)
		}
	}

	r.Move(ctx.Dt)
	r.WrapAround(ctx.Screen)

	r.trailTimer -= ctx.Dt
	if r.trailTimer <= 0 {
		r.trailTimer = rocketTrailSpacing
		trigger(ctx.Effects, Effect{
			Kind: EffectRocketTrail,
			Pos:  r.Pos,
			Dir:  physics.Heading(r.Rotation).Scale(-1),
		})
	}
	return false
}

// track returns the live target, acquiring a new one when the old is gone.
func (r *Rocket) track(t *Targeting) *Asteroid {
	if r.Target != 0 {
		if a := t.Lookup(r.Target); a != nil {
			return a
		}
		t.Release(r.Target)
		r.Target = 0
	}

	a := t.Acquire()
	if a != nil {
		r.Target = a.ID
	}
	return a
}

// steer turns toward goal by at most one frame's turn budget, then flies at
// full speed along the new heading.
func (r *Rocket) steer(goal Vec2, dt float64) {
	bearing := goal.Sub(r.Pos).Bearing()
	diff := physics.NormalizeAngle(bearing - r.Rotation)
	maxTurn := RocketTurnRate * dt

	if math.Abs(diff) <= maxTurn {
		r.Rotation = bearing
	} else {
		r.Rotation += math.Copysign(maxTurn, diff)
	}
	r.Rotation = physics.NormalizeAngle(r.Rotation)
	r.Vel = physics.Heading(r.Rotation).Scale(RocketSpeed)
}

// Detonate removes the rocket and frees its reservation.
func (r *Rocket) Detonate(t *Targeting) {
	if t != nil && r.Target != 0 {
		t.Release(r.Target)
	}
	r.Target = 0
	r.MarkDestroyed()
}
