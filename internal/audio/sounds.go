package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/tomz197/warpfield/internal/object"
)

const ms = time.Millisecond

// voices lists the tones mixed for each sound-bearing effect. Exhaust and
// trail effects fire every frame and stay silent.
var voices = map[object.EffectKind][]tone{
	object.EffectShot: {
		{start: 1200, end: 500, wave: WaveSquare, d: 80 * ms, attack: 2 * ms, gain: 0.15},
	},
	object.EffectRocketLaunch: {
		{start: 200, end: 600, wave: WaveSaw, d: 250 * ms, attack: 20 * ms, gain: 0.2},
		{wave: WaveNoise, d: 250 * ms, attack: 10 * ms, gain: 0.1},
	},
	object.EffectMineDeploy: {
		{start: 330, end: 330, wave: WaveSine, d: 120 * ms, attack: 5 * ms, gain: 0.3},
	},
	object.EffectShipExplosion: {
		{wave: WaveNoise, d: 900 * ms, attack: 5 * ms, gain: 0.5},
		{start: 120, end: 40, wave: WaveSaw, d: 900 * ms, attack: 5 * ms, gain: 0.3},
	},
	object.EffectShieldBreak: {
		{start: 1600, end: 400, wave: WaveSine, d: 300 * ms, attack: 2 * ms, gain: 0.3},
		{wave: WaveNoise, d: 150 * ms, attack: 2 * ms, gain: 0.15},
	},
	object.EffectRocketExplosion: {
		{wave: WaveNoise, d: 350 * ms, attack: 3 * ms, gain: 0.35},
		{start: 150, end: 60, wave: WaveSine, d: 350 * ms, attack: 3 * ms, gain: 0.3},
	},
	object.EffectMineExplosion: {
		{wave: WaveNoise, d: 700 * ms, attack: 3 * ms, gain: 0.5},
		{start: 90, end: 30, wave: WaveSine, d: 700 * ms, attack: 3 * ms, gain: 0.45},
	},
	object.EffectWarpCharge: {
		{start: 150, end: 900, wave: WaveSine, d: 600 * ms, attack: 100 * ms, gain: 0.2},
	},
	object.EffectWarp: {
		{start: 900, end: 120, wave: WaveSaw, d: 400 * ms, attack: 5 * ms, gain: 0.25},
		{start: 1800, end: 240, wave: WaveSine, d: 400 * ms, attack: 5 * ms, gain: 0.15},
	},
	object.EffectPickup: {
		{start: 988, end: 988, wave: WaveSquare, d: 70 * ms, attack: 2 * ms, gain: 0.15},
		{start: 1319, end: 1319, wave: WaveSquare, d: 180 * ms, attack: 2 * ms, gain: 0.15},
	},
}

// Sound builds the streamer for an effect, or nil for silent effects.
// Asteroid explosions drop in pitch as the rock gets bigger.
func Sound(e object.Effect, rate beep.SampleRate, volume float64) beep.Streamer {
	var parts []beep.Streamer
	switch e.Kind {
	case object.EffectAsteroidExplosion:
		size := max(e.Radius, object.AsteroidMinRadius) / object.AsteroidMinRadius
		d := time.Duration(float64(200*ms) * (0.7 + 0.3*size))
		parts = append(parts,
			tone{wave: WaveNoise, d: d, attack: 3 * ms, gain: 0.3}.streamer(rate),
			tone{start: 220 / size, end: 60 / size, wave: WaveSine, d: d, attack: 3 * ms, gain: 0.25}.streamer(rate),
		)
	case object.EffectPickup:
		// Two note chime, played in sequence.
		vs := voices[e.Kind]
		return newVolume(beep.Seq(vs[0].streamer(rate), vs[1].streamer(rate)), volume)
	default:
		for _, v := range voices[e.Kind] {
			parts = append(parts, v.streamer(rate))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return newVolume(beep.Mix(parts...), volume)
}
