// Package fx turns simulation effect events into short-lived visuals:
// particle bursts, shockwave rings, screen shake and a parallax starfield.
// Every type here is frontend agnostic; renderers read the state back.
package fx

import (
	"math"
	"math/rand"
	"slices"
	"sync"

	"github.com/tomz197/warpfield/internal/object"
	"github.com/tomz197/warpfield/internal/physics"
)

// Palette is the color family of a particle. Frontends map it to real colors.
type Palette int

const (
	PaletteDust Palette = iota // Asteroid debris
	PaletteFire                // Engine, rockets, ship explosion
	PaletteIce                 // Shield, boost, pickups
	PaletteWarp
	PaletteBlast // Mine explosion
)

// DefaultParticleLimit bounds live particles so a chain of mine blasts cannot
// flood a slow terminal.
const DefaultParticleLimit = 1500

const (
	particleDrag  = 0.98 // Velocity kept per 60 Hz frame
	ringDuration  = 0.3
	ringParticles = 24
	warpTrailStep = 10.0 // One trail particle per this many units of warp path
)

// particlePool reuses particles across bursts.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is one glowing dot, or a streak when Length is set.
type Particle struct {
	Pos     physics.Vec2
	Vel     physics.Vec2
	Life    float64 // Seconds remaining
	MaxLife float64
	Size    float64
	Length  float64 // Streak length along -Vel, zero for dots
	Palette Palette
}

// Fade returns the remaining life as 0..1.
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return max(p.Life/p.MaxLife, 0)
}

// Ring is an expanding shockwave outline.
type Ring struct {
	Center    physics.Vec2
	MaxRadius float64
	Age       float64
	Duration  float64
}

// Progress returns how far the ring has expanded, 0..1.
func (r Ring) Progress() float64 {
	return min(r.Age/r.Duration, 1)
}

// Radius returns the current ring radius.
func (r Ring) Radius() float64 {
	return r.MaxRadius * r.Progress()
}

// burst describes a batch of particles thrown from one point.
type burst struct {
	count              int
	minSpeed, maxSpeed float64
	minLife, maxLife   float64
	minSize, maxSize   float64
	spread             float64 // Radians either side of the direction; 0 = full circle
	minLen, maxLen     float64
	palette            Palette
}

var bursts = map[object.EffectKind]burst{
	object.EffectEngineExhaust:   {count: 2, minSpeed: 80, maxSpeed: 150, minLife: 0.2, maxLife: 0.8, minSize: 2, maxSize: 5, spread: 0.3, palette: PaletteFire},
	object.EffectBoostExhaust:    {count: 3, minSpeed: 120, maxSpeed: 200, minLife: 0.3, maxLife: 0.6, minSize: 2, maxSize: 4, spread: 0.02, minLen: 20, maxLen: 40, palette: PaletteIce},
	object.EffectRocketTrail:     {count: 2, minSpeed: 60, maxSpeed: 120, minLife: 0.15, maxLife: 0.3, minSize: 2, maxSize: 4, spread: 0.3, palette: PaletteFire},
	object.EffectShipExplosion:   {count: 45, minSpeed: 50, maxSpeed: 250, minLife: 0.4, maxLife: 0.8, minSize: 2, maxSize: 5, palette: PaletteFire},
	object.EffectShieldBreak:     {count: 35, minSpeed: 80, maxSpeed: 200, minLife: 0.25, maxLife: 0.5, minSize: 2, maxSize: 5, palette: PaletteIce},
	object.EffectRocketExplosion: {count: 25, minSpeed: 80, maxSpeed: 200, minLife: 0.3, maxLife: 0.6, minSize: 2, maxSize: 5, palette: PaletteFire},
	object.EffectMineExplosion:   {count: 40, minSpeed: 100, maxSpeed: 300, minLife: 0.4, maxLife: 0.8, minSize: 3, maxSize: 7, palette: PaletteBlast},
	object.EffectPickup:          {count: 12, minSpeed: 40, maxSpeed: 90, minLife: 0.2, maxLife: 0.4, minSize: 1, maxSize: 3, palette: PaletteIce},
}

// Particles is an effect sink that spawns and ages particles.
type Particles struct {
	Limit int

	rng   *rand.Rand
	items []*Particle
	rings []Ring
}

// NewParticles creates an empty system bounded by DefaultParticleLimit.
func NewParticles(rng *rand.Rand) *Particles {
	return &Particles{Limit: DefaultParticleLimit, rng: rng}
}

// Items returns the live particles. The slice is only valid until the next
// Update or Trigger.
func (s *Particles) Items() []*Particle {
	return s.items
}

// Rings returns the live shockwaves.
func (s *Particles) Rings() []Ring {
	return s.rings
}

// Len returns the live particle count.
func (s *Particles) Len() int {
	return len(s.items)
}

// Trigger spawns the visuals for an effect event.
func (s *Particles) Trigger(e object.Effect) {
	switch e.Kind {
	case object.EffectAsteroidExplosion:
		r := e.Radius
		s.emit(e.Pos, physics.Vec2{}, burst{
			count: int(r * 1.5), minSpeed: r * 2, maxSpeed: r * 5,
			minLife: 0.3, maxLife: 0.6, minSize: 2, maxSize: 5, palette: PaletteDust,
		})
	case object.EffectMineExplosion:
		s.emit(e.Pos, physics.Vec2{}, bursts[e.Kind])
		s.mineRing(e.Pos, e.Radius)
	case object.EffectWarp:
		s.warp(e.Pos, e.To)
	default:
		if b, ok := bursts[e.Kind]; ok {
			s.emit(e.Pos, e.Dir, b)
		}
	}
}

// Update ages and moves every particle and ring by dt seconds.
func (s *Particles) Update(dt float64) {
	drag := math.Pow(particleDrag, dt*60)

	s.items = slices.DeleteFunc(s.items, func(p *Particle) bool {
		p.Life -= dt
		if p.Life <= 0 {
			particlePool.Put(p)
			return true
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel = p.Vel.Scale(drag)
		return false
	})

	s.rings = slices.DeleteFunc(s.rings, func(r Ring) bool {
		return r.Age >= r.Duration
	})
	for i := range s.rings {
		s.rings[i].Age += dt
	}
}

// Reset drops every particle and ring.
func (s *Particles) Reset() {
	for _, p := range s.items {
		particlePool.Put(p)
	}
	clear(s.items)
	s.items = s.items[:0]
	s.rings = s.rings[:0]
}

func (s *Particles) spawn(pos, vel physics.Vec2, life, size, length float64, palette Palette) {
	if s.Limit > 0 && len(s.items) >= s.Limit {
		return
	}
	p := particlePool.Get().(*Particle)
	*p = Particle{Pos: pos, Vel: vel, Life: life, MaxLife: life, Size: size, Length: length, Palette: palette}
	s.items = append(s.items, p)
}

func (s *Particles) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// emit throws a burst from pos. With a spread it fans around dir, otherwise
// it goes out in every direction.
func (s *Particles) emit(pos, dir physics.Vec2, b burst) {
	base := math.Atan2(dir.Y, dir.X)
	for range b.count {
		angle := s.rng.Float64() * 2 * math.Pi
		if b.spread > 0 {
			angle = base + s.between(-b.spread, b.spread)
		}
		speed := s.between(b.minSpeed, b.maxSpeed)
		vel := physics.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(speed)

		length := 0.0
		if b.maxLen > 0 {
			length = s.between(b.minLen, b.maxLen)
		}
		s.spawn(pos, vel, s.between(b.minLife, b.maxLife), s.between(b.minSize, b.maxSize), length, b.palette)
	}
}

func (s *Particles) mineRing(center physics.Vec2, radius float64) {
	s.rings = append(s.rings, Ring{Center: center, MaxRadius: radius, Duration: ringDuration})

	for i := range ringParticles {
		angle := 2 * math.Pi * float64(i) / ringParticles
		dir := physics.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
		pos := center.Add(dir.Scale(radius * 0.8))
		s.spawn(pos, dir.Scale(s.between(50, 150)), s.between(0.3, 0.6), s.between(2, 5), 0, PaletteBlast)
	}
}

// warp bursts outward where the ship left, inward where it arrived, and
// scatters a trail along the jump.
func (s *Particles) warp(from, to physics.Vec2) {
	const count = 20
	for i := range count {
		angle := 2*math.Pi*float64(i)/count + s.between(-0.2, 0.2)
		dir := physics.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
		s.spawn(from, dir.Scale(s.between(100, 200)), s.between(0.3, 0.5), s.between(2, 4), 0, PaletteWarp)
		s.spawn(to, dir.Scale(-s.between(50, 100)), s.between(0.3, 0.5), s.between(2, 4), 0, PaletteWarp)
	}

	path := to.Sub(from)
	dist := path.Len()
	if dist == 0 {
		return
	}
	along := path.Scale(1 / dist)
	perp := physics.Vec2{X: -along.Y, Y: along.X}

	n := int(dist / warpTrailStep)
	for i := range n {
		t := float64(i) / float64(max(1, n-1))
		pos := from.Add(path.Scale(t)).Add(perp.Scale(s.between(-15, 15)))
		dir := perp.Rotate(s.between(-0.5, 0.5) * 180 / math.Pi)
		s.spawn(pos, dir.Scale(s.between(30, 80)), s.between(0.2, 0.4), s.between(1, 3), 0, PaletteWarp)
	}
}
