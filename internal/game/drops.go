package game

import (
	"math/rand"

	"github.com/tomz197/warpfield/internal/config"
	"github.com/tomz197/warpfield/internal/object"
)

// dropTable is one independent roll: a chance to drop anything, then a
// weighted pick of the kind.
type dropTable struct {
	chance  float64
	kinds   []object.PowerUpKind
	weights []float64
}

var dropTables = []dropTable{
	{
		chance:  config.PowerUpDropChance,
		kinds:   []object.PowerUpKind{object.PowerUpShield, object.PowerUpSpeed},
		weights: []float64{config.ShieldDropWeight, config.SpeedDropWeight},
	},
	{
		chance:  config.WeaponDropChance,
		kinds:   []object.PowerUpKind{object.PowerUpRocketAmmo, object.PowerUpMineAmmo},
		weights: []float64{config.RocketAmmoDropWeight, config.MineAmmoDropWeight},
	},
}

// rollDrops may leave pickups where an asteroid was shot down.
func (s *Session) rollDrops(pos object.Vec2) {
	for _, t := range dropTables {
		if s.rng.Float64() >= t.chance {
			continue
		}
		kind := t.kinds[pickWeighted(s.rng, t.weights)]
		s.Spawn(object.NewPowerUp(kind, pos, s.rng.Float64()*360))
		s.log.Debug("powerup_spawned", "kind", kind)
	}
}

// pickWeighted returns an index with probability proportional to its weight.
func pickWeighted(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += max(w, 0)
	}
	if total <= 0 {
		return 0
	}

	r := rng.Float64() * total
	for i, w := range weights {
		w = max(w, 0)
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}
