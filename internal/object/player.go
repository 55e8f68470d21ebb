package object

import (
	"math"

	"github.com/tomz197/warpfield/internal/physics"
)

// Player tuning.
const (
	PlayerRadius         = 20.0
	PlayerTurnSpeed      = 300.0 // Degrees per second
	PlayerAcceleration   = 300.0
	PlayerReverseFactor  = 0.5
	PlayerMaxSpeed       = 400.0
	PlayerDrag           = 0.25 // Share of speed lost per second
	SpeedBoostMultiplier = 1.5
	SpeedBoostDuration   = 6.0
	InvincibilityTime    = 2.0
	KnockbackSpeed       = 150.0
	WarpDistance         = 200.0
	WarpCooldown         = 4.0
	WarpChargeTime       = 3.5 // Auto-warp after this much real time

	hitboxBackRatio  = 1.5 // Back corners sit radius/1.5 to each side
	shieldMaxOffset  = 8.0
	boostTrailOffset = 3.0

	// Frame-sized steps summing to WarpChargeTime leave a rounding remainder.
	warpChargeEpsilon = 1e-9
)

// HitResult is the outcome of a player taking a hit.
type HitResult int

const (
	HitIgnored     HitResult = iota // Invincible
	HitShieldBreak                  // Shield absorbed it
	HitLifeLost                     // The session loses a life
)

// Player is the ship. Lives and score belong to the session.
type Player struct {
	Body
	Rotation float64 // Degrees, 0 faces +Y

	Shield       bool
	ShieldOffset Vec2 // Cosmetic lag of the shield outline
	Invincible   float64
	Boost        float64
	Thrusting    bool

	ShootTimer   float64
	RocketTimer  float64
	MineTimer    float64
	WarpCooldown float64
	WarpCharge   float64
	charging     bool

	Rockets *Weapon[*Rocket]
	Mines   *Weapon[*Mine]
}

// NewPlayer creates a ship at pos with empty launchers and spawn protection.
func NewPlayer(pos Vec2) *Player {
	return &Player{
		Body:       Body{Pos: pos, Radius: PlayerRadius},
		Rockets:    NewRocketLauncher(),
		Mines:      NewMineLayer(),
		Invincible: InvincibilityTime,
	}
}

// Forward is the unit heading.
func (p *Player) Forward() Vec2 {
	return physics.Heading(p.Rotation)
}

func (p *Player) right() Vec2 {
	return physics.Heading(p.Rotation + 90)
}

// Hitbox returns the ship triangle: tip, back-left and back-right corners.
func (p *Player) Hitbox() physics.Triangle {
	return p.triangleAt(p.Pos)
}

func (p *Player) triangleAt(pos Vec2) physics.Triangle {
	fwd := p.Forward().Scale(p.Radius)
	side := p.right().Scale(p.Radius / hitboxBackRatio)
	back := pos.Sub(fwd)
	return physics.Triangle{pos.Add(fwd), back.Sub(side), back.Add(side)}
}

// HitsAsteroid tests the ship triangle against an asteroid circle.
func (p *Player) HitsAsteroid(a *Asteroid) bool {
	return p.Hitbox().OverlapsCircle(a.Pos, a.Radius)
}

// Boosted reports whether the speed boost is active.
func (p *Player) Boosted() bool {
	return p.Boost > 0
}

// IsInvincible reports whether hits are currently ignored.
func (p *Player) IsInvincible() bool {
	return p.Invincible > 0
}

// ActivateShield raises the shield.
func (p *Player) ActivateShield() {
	p.Shield = true
}

// ActivateSpeedBoost starts or refreshes the speed boost.
func (p *Player) ActivateSpeedBoost() {
	p.Boost = SpeedBoostDuration
}

// TakeHit resolves a collision with an asteroid at source.
func (p *Player) TakeHit(source Vec2) HitResult {
	if p.IsInvincible() {
		return HitIgnored
	}

	result := HitLifeLost
	if p.Shield {
		p.Shield = false
		p.ShieldOffset = Vec2{}
		result = HitShieldBreak
	}

	away := p.Pos.Sub(source).Normalize(Vec2{Y: -1})
	p.Vel = away.Scale(KnockbackSpeed)
	p.Invincible = InvincibilityTime
	return result
}

// Update runs timers, drag, movement and the held-key actions.
// Invincibility counts down in real time, everything else in simulation time.
func (p *Player) Update(ctx UpdateContext) bool {
	dt := ctx.Dt

	p.ShootTimer -= dt
	p.WarpCooldown = math.Max(0, p.WarpCooldown-dt)
	p.Invincible = math.Max(0, p.Invincible-ctx.RealDt)
	p.Boost = math.Max(0, p.Boost-dt)
	p.RocketTimer = math.Max(0, p.RocketTimer-dt)
	p.MineTimer = math.Max(0, p.MineTimer-dt)

	if p.Shield && p.Vel.Len() > 10 {
		lag := p.Vel.Normalize(Vec2{}).Scale(-3)
		p.ShieldOffset = p.ShieldOffset.Lerp(p.ShieldOffset.Add(lag.Scale(dt*2)), dt*3)
	}
	if p.Shield {
		p.ShieldOffset = p.ShieldOffset.Lerp(Vec2{}, math.Min(1, dt*4))
	}

	p.Vel = p.Vel.Scale(math.Pow(1-PlayerDrag, dt))
	p.Move(dt)

	in := ctx.Input
	p.Thrusting = in.Up
	if in.Up {
		p.accelerate(ctx, 1)
	}
	if in.Down {
		p.accelerate(ctx, -PlayerReverseFactor)
	}
	if in.Left {
		p.rotate(-1, dt)
	}
	if in.Right {
		p.rotate(1, dt)
	}
	if in.Fire {
		p.Shoot(ctx)
	}
	if in.Rockets {
		p.FireRockets(ctx)
	}
	if in.Mine {
		p.DeployMine(ctx)
	}

	p.WrapAround(ctx.Screen)
	return false
}

func (p *Player) rotate(dir, dt float64) {
	p.Rotation = physics.NormalizeAngle(p.Rotation + dir*PlayerTurnSpeed*dt)
	if p.Shield {
		target := p.right().Scale(dir * 6)
		p.ShieldOffset = p.ShieldOffset.Lerp(target, math.Min(1, dt*8))
	}
}

func (p *Player) accelerate(ctx UpdateContext, dir float64) {
	accel, maxSpeed := PlayerAcceleration, PlayerMaxSpeed
	if p.Boosted() {
		accel *= SpeedBoostMultiplier
		maxSpeed *= SpeedBoostMultiplier
	}

	fwd := p.Forward()
	p.Vel = p.Vel.Add(fwd.Scale(accel * ctx.Dt * dir)).ClampLen(maxSpeed)

	if p.Shield {
		target := fwd.Scale(-dir * shieldMaxOffset)
		p.ShieldOffset = p.ShieldOffset.Lerp(target, math.Min(1, ctx.Dt*10))
	}

	if dir <= 0 {
		return
	}
	if p.Boosted() {
		side := p.right().Scale(p.Radius / hitboxBackRatio)
		back := p.Pos.Sub(fwd.Scale(p.Radius * boostTrailOffset))
		t := 0.5
		if ctx.Rand != nil {
			t = ctx.Rand.Float64()
		}
		emit := back.Sub(side).Lerp(back.Add(side), t)
		trigger(ctx.Effects, Effect{Kind: EffectBoostExhaust, Pos: emit, Dir: fwd.Scale(-1)})
		return
	}
	trigger(ctx.Effects, Effect{Kind: EffectEngineExhaust, Pos: p.Pos.Sub(fwd.Scale(p.Radius)), Dir: fwd.Scale(-1)})
}

// Shoot fires a shot if the cooldown allows it.
func (p *Player) Shoot(ctx UpdateContext) bool {
	if p.ShootTimer > 0 || ctx.Spawner == nil {
		return false
	}
	p.ShootTimer = ShotCooldown
	ctx.Spawner.Spawn(NewShot(p.Pos, p.Forward()))
	trigger(ctx.Effects, Effect{Kind: EffectShot, Pos: p.Pos, Dir: p.Forward()})
	return true
}

// FireRockets launches a rocket volley. It returns false, launching nothing,
// while cooling down or out of ammo.
func (p *Player) FireRockets(ctx UpdateContext) bool {
	if p.RocketTimer > 0 {
		return false
	}
	rockets := p.Rockets.Fire(p.launch(ctx))
	if len(rockets) == 0 {
		return false
	}
	p.RocketTimer = RocketCooldown
	for _, r := range rockets {
		spawn(ctx, r)
	}
	trigger(ctx.Effects, Effect{Kind: EffectRocketLaunch, Pos: p.Pos, Dir: p.Forward()})
	return true
}

// DeployMine drops a mine behind the ship. It returns false while cooling
// down or out of ammo.
func (p *Player) DeployMine(ctx UpdateContext) bool {
	if p.MineTimer > 0 {
		return false
	}
	mines := p.Mines.Fire(p.launch(ctx))
	if len(mines) == 0 {
		return false
	}
	p.MineTimer = MineCooldown
	for _, m := range mines {
		spawn(ctx, m)
	}
	trigger(ctx.Effects, Effect{Kind: EffectMineDeploy, Pos: mines[0].Pos})
	return true
}

func (p *Player) launch(ctx UpdateContext) Launch {
	return Launch{Pos: p.Pos, Rotation: p.Rotation, Vel: p.Vel, Rand: ctx.Rand}
}

func spawn(ctx UpdateContext, obj Object) {
	if ctx.Spawner != nil {
		ctx.Spawner.Spawn(obj)
	}
}

// CanWarp reports whether the warp is off cooldown.
func (p *Player) CanWarp() bool {
	return p.WarpCooldown <= 0
}

// WarpCharging reports whether a warp charge is in progress.
func (p *Player) WarpCharging() bool {
	return p.charging && p.CanWarp()
}

// StartWarpCharge begins charging if the warp is off cooldown.
func (p *Player) StartWarpCharge(fx Effects) {
	if !p.CanWarp() {
		return
	}
	p.charging = true
	p.WarpCharge = WarpChargeTime
	trigger(fx, Effect{Kind: EffectWarpCharge, Pos: p.Pos})
}

// ReleaseWarp executes a charging warp early. Releasing without a charge
// only clears the charging flag. Returns true if the ship warped.
func (p *Player) ReleaseWarp(s Screen, fx Effects) bool {
	if !p.WarpCharging() {
		p.charging = false
		return false
	}
	p.charging = false
	p.executeWarp(s, fx)
	return true
}

// UpdateWarpCharge counts the charge down by real time and warps when it
// runs out. Returns true if the ship warped.
func (p *Player) UpdateWarpCharge(realDt float64, s Screen, fx Effects) bool {
	if !p.WarpCharging() {
		return false
	}
	p.WarpCharge -= realDt
	if p.WarpCharge > warpChargeEpsilon {
		return false
	}
	p.charging = false
	p.executeWarp(s, fx)
	return true
}

// WarpDestination is where a warp would land now, after wrapping.
func (p *Player) WarpDestination(s Screen) Vec2 {
	return s.Wrap(p.Pos.Add(p.Forward().Scale(WarpDistance)), p.Radius)
}

// WarpGhost is the ship triangle at the warp destination.
func (p *Player) WarpGhost(s Screen) physics.Triangle {
	return p.triangleAt(p.WarpDestination(s))
}

func (p *Player) executeWarp(s Screen, fx Effects) {
	p.WarpCooldown = WarpCooldown
	p.WarpCharge = 0

	from := p.Pos
	fwd := p.Forward()
	p.Pos = p.WarpDestination(s)
	if speed := p.Vel.Len(); speed > 0 {
		p.Vel = fwd.Scale(speed)
	}
	trigger(fx, Effect{Kind: EffectWarp, Pos: from, To: p.Pos, Dir: fwd})
}
