package fx

import (
	"math/rand"

	"github.com/tomz197/warpfield/internal/object"
	"github.com/tomz197/warpfield/internal/physics"
)

// Fanout forwards every effect to each non-nil sink.
type Fanout []object.Effects

func (f Fanout) Trigger(e object.Effect) {
	for _, sink := range f {
		if sink != nil {
			sink.Trigger(e)
		}
	}
}

// Layer is the visual effect state one frontend keeps next to a game.
type Layer struct {
	Particles *Particles
	Shake     *Shake
	Stars     *Starfield
}

// NewLayer creates particles, shake and an ambient starfield for screen.
func NewLayer(screen object.Screen, rng *rand.Rand) *Layer {
	l := &Layer{
		Particles: NewParticles(rng),
		Shake:     NewShake(rng),
		Stars:     NewStarfield(screen, rng),
	}
	l.Stars.SetAmbient(true)
	return l
}

// Trigger feeds particles and shake.
func (l *Layer) Trigger(e object.Effect) {
	l.Particles.Trigger(e)
	l.Shake.Trigger(e)
}

// Update advances the effects. Particles follow the simulation clock so
// they slow down with it; shake and stars run on real time.
func (l *Layer) Update(realDt, simDt float64, shipVel physics.Vec2) {
	l.Particles.Update(simDt)
	l.Shake.Update(realDt)
	l.Stars.Update(realDt, shipVel)
}

// Reset clears particles and shake, used when a session starts or ends.
func (l *Layer) Reset() {
	l.Particles.Reset()
	l.Shake.Intensity = 0
	l.Shake.Offset = physics.Vec2{}
}
