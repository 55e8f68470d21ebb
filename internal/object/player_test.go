package object

import (
	"math"
	"testing"
)

// newTestPlayer returns a ship without spawn protection.
func newTestPlayer() *Player {
	p := NewPlayer(Vec2{X: 640, Y: 360})
	p.Invincible = 0
	return p
}

func TestNewPlayerIsProtected(t *testing.T) {
	p := NewPlayer(Vec2{})
	if p.Invincible != InvincibilityTime {
		t.Fatalf("spawn invincibility %v, want %v", p.Invincible, InvincibilityTime)
	}
	if got := p.TakeHit(Vec2{X: 10}); got != HitIgnored {
		t.Errorf("hit at spawn should be ignored, got %v", got)
	}
}

func TestHitboxGeometry(t *testing.T) {
	p := newTestPlayer()
	tri := p.Hitbox()

	if tri[0] != (Vec2{X: 640, Y: 380}) {
		t.Errorf("tip %v, want (640,380)", tri[0])
	}
	side := PlayerRadius / 1.5
	for i, want := range []Vec2{{X: 640 + side, Y: 340}, {X: 640 - side, Y: 340}} {
		got := tri[i+1]
		if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps {
			t.Errorf("back corner %d = %v, want %v", i, got, want)
		}
	}
}

func TestHitsAsteroid(t *testing.T) {
	p := newTestPlayer()
	tests := []struct {
		name string
		pos  Vec2
		r    float64
		want bool
	}{
		{"center inside triangle", Vec2{X: 640, Y: 360}, 1, true},
		{"grazing the tip", Vec2{X: 640, Y: 385}, 6, true},
		{"beside the nose", Vec2{X: 680, Y: 380}, 20, false},
		{"far away", Vec2{X: 100, Y: 100}, 60, false},
	}
	for _, tt := range tests {
		a := NewAsteroid(tt.pos, Vec2{}, tt.r, testContext(0).Rand)
		if got := p.HitsAsteroid(a); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestShieldAbsorbsHit(t *testing.T) {
	p := newTestPlayer()
	p.ActivateShield()

	if got := p.TakeHit(Vec2{X: 640, Y: 300}); got != HitShieldBreak {
		t.Fatalf("expected shield break, got %v", got)
	}
	if p.Shield {
		t.Error("shield should be gone")
	}
	if math.Abs(p.Vel.Len()-KnockbackSpeed) > eps || p.Vel.Y <= 0 {
		t.Errorf("expected knockback away from the asteroid, got %v", p.Vel)
	}
}

func TestUnshieldedHitStartsInvincibility(t *testing.T) {
	p := newTestPlayer()

	if got := p.TakeHit(Vec2{X: 700, Y: 360}); got != HitLifeLost {
		t.Fatalf("expected life lost, got %v", got)
	}
	if !p.IsInvincible() || p.Invincible != InvincibilityTime {
		t.Errorf("expected fresh invincibility, got %v", p.Invincible)
	}
	if got := p.TakeHit(Vec2{X: 700, Y: 360}); got != HitIgnored {
		t.Errorf("second hit while invincible should be ignored, got %v", got)
	}
}

func TestKnockbackFromSamePosition(t *testing.T) {
	p := newTestPlayer()
	p.TakeHit(p.Pos)
	if math.Abs(p.Vel.Len()-KnockbackSpeed) > eps {
		t.Errorf("degenerate knockback should use a default direction, got %v", p.Vel)
	}
}

func TestDragAppliesWithoutThrust(t *testing.T) {
	p := newTestPlayer()
	p.Vel = Vec2{X: 100}

	p.Update(testContext(1))
	want := 100 * (1 - PlayerDrag)
	if math.Abs(p.Vel.X-want) > eps {
		t.Errorf("velocity %v, want %v", p.Vel.X, want)
	}
}

func TestThrustIsClamped(t *testing.T) {
	p := newTestPlayer()
	ctx := testContext(0.1)
	ctx.Input.Up = true

	for range 100 {
		p.Update(ctx)
	}
	if p.Vel.Len() > PlayerMaxSpeed+eps {
		t.Errorf("speed %v exceeds max %v", p.Vel.Len(), PlayerMaxSpeed)
	}

	p.ActivateSpeedBoost()
	for range 20 {
		p.Update(ctx)
	}
	if p.Vel.Len() <= PlayerMaxSpeed {
		t.Errorf("boost should raise the speed cap, got %v", p.Vel.Len())
	}
	if p.Vel.Len() > PlayerMaxSpeed*SpeedBoostMultiplier+eps {
		t.Errorf("boosted speed %v exceeds boosted cap", p.Vel.Len())
	}
	if ctx.Effects.(*recordEffects).count(EffectBoostExhaust) == 0 {
		t.Error("expected boost exhaust while boosted")
	}
}

func TestShootRespectsCooldown(t *testing.T) {
	p := newTestPlayer()
	ctx := testContext(0.1)
	ctx.Input.Fire = true
	sp := ctx.Spawner.(*collectSpawner)

	for range 3 {
		p.Update(ctx)
	}
	if len(sp.objs) != 1 {
		t.Fatalf("expected 1 shot within the cooldown, got %d", len(sp.objs))
	}
	p.Update(ctx)
	if len(sp.objs) != 2 {
		t.Errorf("expected a second shot after the cooldown, got %d", len(sp.objs))
	}
	shot := sp.objs[0].(*Shot)
	if math.Abs(shot.Vel.Len()-ShotSpeed) > eps {
		t.Errorf("shot speed %v", shot.Vel.Len())
	}
}

func TestFireRocketsWithoutAmmo(t *testing.T) {
	p := newTestPlayer()
	ctx := testContext(0.016)

	if p.FireRockets(ctx) {
		t.Error("FireRockets with 0 ammo should fail")
	}
	if n := len(ctx.Spawner.(*collectSpawner).objs); n != 0 {
		t.Errorf("expected no rockets spawned, got %d", n)
	}
	if p.RocketTimer != 0 {
		t.Error("a failed volley must not start the cooldown")
	}
}

func TestFireRocketsSpawnsVolley(t *testing.T) {
	p := newTestPlayer()
	p.Rockets.AddAmmo(1)
	ctx := testContext(0.016)

	if !p.FireRockets(ctx) {
		t.Fatal("expected volley to fire")
	}
	if n := len(ctx.Spawner.(*collectSpawner).objs); n != RocketsPerVolley {
		t.Errorf("expected %d rockets, got %d", RocketsPerVolley, n)
	}
	if p.FireRockets(ctx) {
		t.Error("cooldown should block an immediate second volley")
	}
}

func TestWarpChargeAutoExecutes(t *testing.T) {
	p := newTestPlayer()
	fx := &recordEffects{}

	p.StartWarpCharge(fx)
	if !p.WarpCharging() {
		t.Fatal("expected charging")
	}

	warps := 0
	for _, dt := range []float64{1, 1, 1, 0.5} {
		if p.UpdateWarpCharge(dt, testScreen, fx) {
			warps++
		}
	}
	if warps != 1 {
		t.Fatalf("expected exactly one warp, got %d", warps)
	}
	if p.Pos != (Vec2{X: 640, Y: 360 + WarpDistance}) {
		t.Errorf("warped to %v", p.Pos)
	}
	if p.WarpCharging() || p.CanWarp() {
		t.Error("warp should be on cooldown and idle")
	}
	if p.UpdateWarpCharge(5, testScreen, fx) {
		t.Error("no second warp expected")
	}
	if fx.count(EffectWarp) != 1 {
		t.Errorf("expected one warp effect, got %d", fx.count(EffectWarp))
	}
}

func TestWarpChargeFiresOnFrameSteps(t *testing.T) {
	const dt = 1.0 / 60
	frames := int(math.Round(WarpChargeTime / dt))

	p := newTestPlayer()
	p.StartWarpCharge(nil)
	warps := 0
	for range frames {
		if p.UpdateWarpCharge(dt, testScreen, nil) {
			warps++
		}
	}
	if warps != 1 || p.WarpCharging() {
		t.Errorf("%d frames of %v: %d warps, charging %v", frames, dt, warps, p.WarpCharging())
	}
}

func TestWarpReleaseEarlyAndWrap(t *testing.T) {
	p := NewPlayer(Vec2{X: 640, Y: 600})
	p.Vel = Vec2{X: 50}

	p.StartWarpCharge(nil)
	if !p.ReleaseWarp(testScreen, nil) {
		t.Fatal("release while charging should warp")
	}
	// 600 + 200 = 800 > 720 + 20, wraps by 760.
	if math.Abs(p.Pos.Y-40) > eps || p.Pos.X != 640 {
		t.Errorf("expected wrapped destination (640,40), got %v", p.Pos)
	}
	if math.Abs(p.Vel.X) > eps || math.Abs(p.Vel.Y-50) > eps {
		t.Errorf("speed should be kept and redirected forward, got %v", p.Vel)
	}
}

func TestWarpBlockedDuringCooldown(t *testing.T) {
	p := newTestPlayer()
	p.WarpCooldown = 1

	p.StartWarpCharge(nil)
	if p.WarpCharging() {
		t.Error("charging should not start during cooldown")
	}
	if p.ReleaseWarp(testScreen, nil) {
		t.Error("release without a charge must not warp")
	}
}

func TestInvincibilityUsesRealTime(t *testing.T) {
	p := newTestPlayer()
	p.Invincible = 1
	ctx := testContext(0.15)
	ctx.RealDt = 1

	p.Update(ctx)
	if p.IsInvincible() {
		t.Errorf("invincibility should count real time, %v left", p.Invincible)
	}
}
