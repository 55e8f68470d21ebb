package object

// EffectKind names a visual or audible event raised by the simulation.
type EffectKind int

const (
	EffectEngineExhaust EffectKind = iota
	EffectBoostExhaust
	EffectRocketTrail
	EffectShot
	EffectRocketLaunch
	EffectMineDeploy
	EffectAsteroidExplosion
	EffectShipExplosion
	EffectShieldBreak
	EffectRocketExplosion
	EffectMineExplosion
	EffectWarpCharge
	EffectWarp
	EffectPickup
	EffectShake
)

var effectNames = [...]string{
	EffectEngineExhaust:     "engine_exhaust",
	EffectBoostExhaust:      "boost_exhaust",
	EffectRocketTrail:       "rocket_trail",
	EffectShot:              "shot",
	EffectRocketLaunch:      "rocket_launch",
	EffectMineDeploy:        "mine_deploy",
	EffectAsteroidExplosion: "asteroid_explosion",
	EffectShipExplosion:     "ship_explosion",
	EffectShieldBreak:       "shield_break",
	EffectRocketExplosion:   "rocket_explosion",
	EffectMineExplosion:     "mine_explosion",
	EffectWarpCharge:        "warp_charge",
	EffectWarp:              "warp",
	EffectPickup:            "pickup",
	EffectShake:             "shake",
}

func (k EffectKind) String() string {
	if int(k) < len(effectNames) {
		return effectNames[k]
	}
	return "unknown"
}

// Effect describes one fire-and-forget event.
type Effect struct {
	Kind      EffectKind
	Pos       Vec2    // Where it happens
	Dir       Vec2    // Optional direction (exhaust, warp heading)
	To        Vec2    // Warp arrival point
	Radius    float64 // Optional size (explosions, shockwave reach)
	Intensity float64 // Shake strength
}

// Effects receives effect events. Implementations must not block.
type Effects interface {
	Trigger(e Effect)
}

// NopEffects discards every event.
type NopEffects struct{}

func (NopEffects) Trigger(Effect) {}

func trigger(fx Effects, e Effect) {
	if fx != nil {
		fx.Trigger(e)
	}
}
