package fx

import (
	"math/rand"

	"github.com/tomz197/warpfield/internal/object"
	"github.com/tomz197/warpfield/internal/physics"
)

// Starfield tuning.
const (
	StarCount  = 150
	StarLayers = 3 // Far to near

	starBaseSpeed      = 10.0
	starFollowFactor   = 0.1 // Share of the ship velocity the stars drift against
	starFollowRate     = 2.0
	ambientDriftPeriod = 8.0 // Seconds between ambient direction changes
	ambientMinSpeed    = 15.0
	ambientMaxSpeed    = 35.0
)

// Star is one background point. Nearer layers move faster and shine brighter.
type Star struct {
	Pos        physics.Vec2
	Layer      int
	Size       int
	Brightness float64 // 0..1
}

// Starfield is the parallax background. In ambient mode it drifts on its own,
// otherwise it drifts against the ship's velocity.
type Starfield struct {
	Stars   []Star
	Ambient bool

	screen     object.Screen
	rng        *rand.Rand
	vel        physics.Vec2
	driftTimer float64
}

// NewStarfield scatters StarCount stars over the screen.
func NewStarfield(screen object.Screen, rng *rand.Rand) *Starfield {
	f := &Starfield{screen: screen, rng: rng}

	perLayer := StarCount / StarLayers
	for layer := range StarLayers {
		for range perLayer {
			size := 1
			switch {
			case layer == StarLayers-1:
				size = 2 + rng.Intn(2)
			case layer > 0:
				size = 2
			}
			brightness := (40 + float64(layer)*50 + float64(rng.Intn(41)-20)) / 255
			f.Stars = append(f.Stars, Star{
				Pos:        physics.Vec2{X: rng.Float64() * screen.Width, Y: rng.Float64() * screen.Height},
				Layer:      layer,
				Size:       size,
				Brightness: min(max(brightness, 0), 1),
			})
		}
	}
	return f
}

// SetAmbient switches between the self-driven and the ship-driven drift.
func (f *Starfield) SetAmbient(ambient bool) {
	if ambient && !f.Ambient {
		f.randomDrift()
	}
	f.Ambient = ambient
}

func (f *Starfield) randomDrift() {
	f.driftTimer = 0
	speed := ambientMinSpeed + f.rng.Float64()*(ambientMaxSpeed-ambientMinSpeed)
	f.vel = physics.Heading(f.rng.Float64() * 360).Scale(speed)
}

// Update moves the stars. shipVel is ignored in ambient mode.
func (f *Starfield) Update(dt float64, shipVel physics.Vec2) {
	if f.Ambient {
		f.driftTimer += dt
		if f.driftTimer > ambientDriftPeriod {
			f.randomDrift()
		}
	} else {
		f.vel = f.vel.Lerp(shipVel.Scale(-starFollowFactor), min(dt*starFollowRate, 1))
	}

	w, h := f.screen.Width, f.screen.Height
	for i := range f.Stars {
		st := &f.Stars[i]
		speed := float64(st.Layer+1) * 0.5
		st.Pos = st.Pos.Add(f.vel.Scale(speed * dt))
		st.Pos.Y += starBaseSpeed * speed * dt * 0.2

		switch {
		case st.Pos.X < 0:
			st.Pos.X = w
		case st.Pos.X > w:
			st.Pos.X = 0
		}
		switch {
		case st.Pos.Y < 0:
			st.Pos.Y = h
		case st.Pos.Y > h:
			st.Pos.Y = 0
		}
	}
}
