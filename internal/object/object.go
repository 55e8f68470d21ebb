// Package object holds the simulated entities of a session: asteroids, the
// player ship, its projectiles and the pickups it can collect.
package object

import (
	"math/rand"

	"github.com/tomz197/warpfield/internal/input"
	"github.com/tomz197/warpfield/internal/physics"
)

// Vec2 is an alias for the physics vector type.
type Vec2 = physics.Vec2

// Input is an alias for the input package's Input type.
type Input = input.Input

// ID identifies an entity for the lifetime of a session. Zero means unassigned.
type ID uint64

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Dt      float64 // Simulation step in seconds (slowed while warp charges)
	RealDt  float64 // Wall-clock step in seconds
	Input   Input
	Screen  Screen
	Rand    *rand.Rand
	Spawner Spawner
	Effects Effects
	Targets *Targeting
}

// Object is an updatable entity owned by a session collection.
type Object interface {
	// Base exposes the shared circular body.
	Base() *Body

	// Update advances the object by ctx.Dt. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool)
}

// Screen is the playfield size. Entities wrap around it like a torus.
type Screen struct {
	Width  float64
	Height float64
}

// Center returns the middle of the playfield.
func (s Screen) Center() Vec2 {
	return Vec2{X: s.Width / 2, Y: s.Height / 2}
}

// Wrap moves p to the opposite side once a circle of the given radius has
// fully left the playfield. The wrap period is the size plus both margins.
func (s Screen) Wrap(p Vec2, radius float64) Vec2 {
	if p.X < -radius {
		p.X += s.Width + 2*radius
	} else if p.X > s.Width+radius {
		p.X -= s.Width + 2*radius
	}
	if p.Y < -radius {
		p.Y += s.Height + 2*radius
	} else if p.Y > s.Height+radius {
		p.Y -= s.Height + 2*radius
	}
	return p
}

// Outside reports whether a circle of the given radius is fully off-screen.
func (s Screen) Outside(p Vec2, radius float64) bool {
	return p.X < -radius || p.X > s.Width+radius || p.Y < -radius || p.Y > s.Height+radius
}

// Body is the movable circular core shared by every entity.
type Body struct {
	ID        ID
	Pos       Vec2
	Vel       Vec2
	Radius    float64
	destroyed bool
}

// Base returns b itself so embedding types satisfy Object.
func (b *Body) Base() *Body {
	return b
}

// Move advances the position by velocity × dt.
func (b *Body) Move(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// WrapAround applies the playfield wrap using the body radius as margin.
func (b *Body) WrapAround(s Screen) {
	b.Pos = s.Wrap(b.Pos, b.Radius)
}

// CollidesWith reports whether the bounding circles overlap.
func (b *Body) CollidesWith(o *Body) bool {
	return physics.CirclesOverlap(b.Pos, b.Radius, o.Pos, o.Radius)
}

// MarkDestroyed flags the body for removal at the end of the frame.
func (b *Body) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the body is marked for removal.
func (b *Body) IsDestroyed() bool {
	return b.destroyed
}

// ShouldRenderBlink returns true if an object with remaining protection time
// should be drawn this frame. Always true once the protection ran out.
func ShouldRenderBlink(remaining, frequency float64) bool {
	if remaining <= 0 {
		return true
	}
	phase := int(remaining * frequency)
	return phase%2 != 0
}
