package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/warpfield/internal/physics"
)

// Asteroid sizes and behavior.
const (
	AsteroidMinRadius = 20.0
	AsteroidKinds     = 3
	AsteroidMaxRadius = AsteroidMinRadius * AsteroidKinds
	AsteroidMaxCount  = 15 // Live population cap for spawning and splitting

	asteroidMinVertices = 7
	asteroidMaxVertices = 12
	asteroidMinRatio    = 0.7
	asteroidMaxSpin     = 50.0 // Degrees per second, either direction

	splitMinAngle   = 20.0
	splitMaxAngle   = 50.0
	splitSpeedScale = 1.2
	splitSpacing    = 2.5 // Child offset in child radii
)

// Asteroid is a drifting rock with an irregular outline.
type Asteroid struct {
	Body
	Rotation float64   // Degrees
	Spin     float64   // Degrees per second
	Ratios   []float64 // Per-vertex distance as a fraction of Radius, fixed at creation
}

// NewAsteroid creates an asteroid with a random outline and spin.
func NewAsteroid(pos, vel Vec2, radius float64, rng *rand.Rand) *Asteroid {
	n := asteroidMinVertices + rng.Intn(asteroidMaxVertices-asteroidMinVertices+1)
	ratios := make([]float64, n)
	for i := range ratios {
		ratios[i] = asteroidMinRatio + rng.Float64()*(1-asteroidMinRatio)
	}

	return &Asteroid{
		Body:     Body{Pos: pos, Vel: vel, Radius: radius},
		Rotation: rng.Float64() * 360,
		Spin:     (rng.Float64()*2 - 1) * asteroidMaxSpin,
		Ratios:   ratios,
	}
}

// Update rotates, moves and wraps the asteroid.
func (a *Asteroid) Update(ctx UpdateContext) bool {
	a.Rotation = math.Mod(a.Rotation+a.Spin*ctx.Dt, 360)
	a.Move(ctx.Dt)
	a.WrapAround(ctx.Screen)
	return a.IsDestroyed()
}

// Polygon returns the outline in playfield coordinates for the current
// rotation. dst is reused when it has enough capacity.
func (a *Asteroid) Polygon(dst []Vec2) []Vec2 {
	n := len(a.Ratios)
	if cap(dst) < n {
		dst = make([]Vec2, n)
	}
	dst = dst[:n]

	step := 360.0 / float64(n)
	for i, ratio := range a.Ratios {
		offset := physics.Heading(a.Rotation + float64(i)*step).Scale(a.Radius * ratio)
		dst[i] = a.Pos.Add(offset)
	}
	return dst
}

// Split destroys the asteroid and returns its children: none when it is at
// the minimum size or liveCount already reached the population cap, otherwise
// two smaller rocks veering off the parent's course.
// liveCount must not include a itself.
func (a *Asteroid) Split(liveCount int, rng *rand.Rand) []*Asteroid {
	a.MarkDestroyed()

	childRadius := a.Radius - AsteroidMinRadius
	if a.Radius <= AsteroidMinRadius || childRadius <= 0 {
		return nil
	}
	if liveCount >= AsteroidMaxCount {
		return nil
	}

	left := splitMinAngle + rng.Float64()*(splitMaxAngle-splitMinAngle)
	right := -(splitMinAngle + rng.Float64()*(splitMaxAngle-splitMinAngle))

	return []*Asteroid{
		a.child(a.Vel.Rotate(left), Vec2{X: 1}, childRadius, rng),
		a.child(a.Vel.Rotate(right), Vec2{X: -1}, childRadius, rng),
	}
}

func (a *Asteroid) child(vel, fallback Vec2, radius float64, rng *rand.Rand) *Asteroid {
	vel = vel.Scale(splitSpeedScale)
	dir := vel.Normalize(fallback)
	pos := a.Pos.Add(dir.Scale(splitSpacing * radius))
	return NewAsteroid(pos, vel, radius, rng)
}
