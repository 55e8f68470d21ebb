package object

import "github.com/tomz197/warpfield/internal/physics"

// Power-up tuning.
const (
	PowerUpRadius     = 15.0
	PowerUpDriftSpeed = 30.0
	PowerUpLifetime   = 8.0
)

// PowerUpKind tags what a pickup does to the ship.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota
	PowerUpSpeed
	PowerUpRocketAmmo
	PowerUpMineAmmo
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpSpeed:
		return "speed"
	case PowerUpRocketAmmo:
		return "rocket_ammo"
	case PowerUpMineAmmo:
		return "mine_ammo"
	}
	return "unknown"
}

// powerUpEffects applies each kind to the player.
var powerUpEffects = map[PowerUpKind]func(*Player){
	PowerUpShield:     (*Player).ActivateShield,
	PowerUpSpeed:      (*Player).ActivateSpeedBoost,
	PowerUpRocketAmmo: func(p *Player) { p.Rockets.AddAmmo(1) },
	PowerUpMineAmmo:   func(p *Player) { p.Mines.AddAmmo(1) },
}

// PowerUp is a drifting pickup that expires if not collected.
type PowerUp struct {
	Body
	Kind     PowerUpKind
	Lifetime float64
}

// NewPowerUp creates a pickup drifting in direction dirDeg.
func NewPowerUp(kind PowerUpKind, pos Vec2, dirDeg float64) *PowerUp {
	return &PowerUp{
		Body:     Body{Pos: pos, Vel: physics.Heading(dirDeg).Scale(PowerUpDriftSpeed), Radius: PowerUpRadius},
		Kind:     kind,
		Lifetime: PowerUpLifetime,
	}
}

// Update ages, moves and wraps the pickup.
func (p *PowerUp) Update(ctx UpdateContext) bool {
	if p.IsDestroyed() {
		return true
	}
	p.Lifetime -= ctx.Dt
	if p.Lifetime <= 0 {
		p.MarkDestroyed()
		return true
	}
	p.Move(ctx.Dt)
	p.WrapAround(ctx.Screen)
	return false
}

// Apply gives the effect to the player once and consumes the pickup.
// It returns false if the pickup was already used.
func (p *PowerUp) Apply(player *Player) bool {
	if p.IsDestroyed() {
		return false
	}
	if effect := powerUpEffects[p.Kind]; effect != nil {
		effect(player)
	}
	p.MarkDestroyed()
	return true
}
