package fx

import (
	"math/rand"

	"github.com/tomz197/warpfield/internal/config"
	"github.com/tomz197/warpfield/internal/object"
	"github.com/tomz197/warpfield/internal/physics"
)

// shakeThreshold is the intensity below which the screen is considered still.
const shakeThreshold = 0.1

// Shake accumulates impact intensity and turns it into a random draw offset.
type Shake struct {
	Intensity float64
	Offset    physics.Vec2

	rng *rand.Rand
}

// NewShake creates a still screen.
func NewShake(rng *rand.Rand) *Shake {
	return &Shake{rng: rng}
}

// Add stacks intensity up to the cap.
func (s *Shake) Add(intensity float64) {
	s.Intensity = min(s.Intensity+intensity, config.ShakeMax)
}

// Trigger listens for shake events.
func (s *Shake) Trigger(e object.Effect) {
	if e.Kind == object.EffectShake {
		s.Add(e.Intensity)
	}
}

// Update picks a new offset and decays the intensity.
func (s *Shake) Update(dt float64) {
	if s.Intensity <= shakeThreshold {
		s.Intensity = 0
		s.Offset = physics.Vec2{}
		return
	}
	s.Offset = physics.Vec2{
		X: (s.rng.Float64()*2 - 1) * s.Intensity,
		Y: (s.rng.Float64()*2 - 1) * s.Intensity,
	}
	s.Intensity = max(0, s.Intensity-config.ShakeDecay*dt*s.Intensity)
}

// Active reports whether the screen is shaking.
func (s *Shake) Active() bool {
	return s.Intensity > shakeThreshold
}
