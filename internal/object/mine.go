package object

import (
	"math"

	"github.com/tomz197/warpfield/internal/physics"
)

// Mine tuning.
const (
	MineRadius          = 12.0
	MineLifetime        = 15.0
	MineArmTime         = 0.5
	MineExplosionRadius = 120.0
	MineMaxAmmo         = 5
	MineCooldown        = 0.3
	MineDeployDistance  = 30.0 // Behind the ship
	MineDeploySpeed     = 15.0 // Backward push at deploy
	MineInherit         = 0.1  // Share of the ship velocity at deploy
	MineDriftScale      = 0.2  // Share of the deploy velocity the mine keeps
	MineDriftSpeed      = 20.0 // Random drift speed
	MineFriction        = 0.99 // Velocity kept per frame
)

// Mine drifts slowly, arms after a short delay and blows up every asteroid
// within its explosion radius when an asteroid touches it.
type Mine struct {
	Body
	Lifetime float64
	ArmTimer float64
}

// NewMine creates an unarmed mine. Its velocity is a fraction of launch plus
// a random drift whose direction is given in degrees.
func NewMine(pos, launch Vec2, driftDeg float64) *Mine {
	drift := physics.Heading(driftDeg).Scale(MineDriftSpeed)
	return &Mine{
		Body:     Body{Pos: pos, Vel: launch.Scale(MineDriftScale).Add(drift), Radius: MineRadius},
		Lifetime: MineLifetime,
		ArmTimer: MineArmTime,
	}
}

// Armed reports whether the mine can detonate.
func (m *Mine) Armed() bool {
	return m.ArmTimer <= 0
}

// Update ages, arms, slows and moves the mine.
func (m *Mine) Update(ctx UpdateContext) bool {
	if m.IsDestroyed() {
		return true
	}

	m.Lifetime -= ctx.Dt
	if m.Lifetime <= 0 {
		m.MarkDestroyed()
		return true
	}
	if m.ArmTimer > 0 {
		m.ArmTimer = math.Max(0, m.ArmTimer-ctx.Dt)
	}

	m.Vel = m.Vel.Scale(MineFriction)
	m.Move(ctx.Dt)
	m.WrapAround(ctx.Screen)
	return false
}

// InBlast reports whether an asteroid lies within the explosion radius
// (measured to its edge).
func (m *Mine) InBlast(a *Asteroid) bool {
	reach := MineExplosionRadius + a.Radius
	return m.Pos.Sub(a.Pos).LenSquared() < reach*reach
}
