package game

// HUD is the read-only status shown alongside the playfield.
type HUD struct {
	Score int
	Lives int

	Rockets    int
	MaxRockets int
	Mines      int
	MaxMines   int

	Shield     bool
	Boost      float64 // Seconds of speed boost left
	Invincible float64 // Seconds of invincibility left

	WarpCooldown float64 // Zero when the warp is ready
	WarpCharging bool
	WarpCharge   float64 // Seconds until the charge auto-executes
}

// HUD returns the current status.
func (s *Session) HUD() HUD {
	p := s.Player
	return HUD{
		Score:        s.Score,
		Lives:        s.Lives,
		Rockets:      p.Rockets.Ammo(),
		MaxRockets:   p.Rockets.MaxAmmo(),
		Mines:        p.Mines.Ammo(),
		MaxMines:     p.Mines.MaxAmmo(),
		Shield:       p.Shield,
		Boost:        p.Boost,
		Invincible:   p.Invincible,
		WarpCooldown: p.WarpCooldown,
		WarpCharging: p.WarpCharging(),
		WarpCharge:   p.WarpCharge,
	}
}

// WarpReady reports whether a warp can be started.
func (h HUD) WarpReady() bool {
	return h.WarpCooldown <= 0 && !h.WarpCharging
}
