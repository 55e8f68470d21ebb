package object

import "testing"

func TestPowerUpEffects(t *testing.T) {
	tests := []struct {
		kind  PowerUpKind
		check func(*Player) bool
	}{
		{PowerUpShield, func(p *Player) bool { return p.Shield }},
		{PowerUpSpeed, func(p *Player) bool { return p.Boost == SpeedBoostDuration }},
		{PowerUpRocketAmmo, func(p *Player) bool { return p.Rockets.Ammo() == 1 }},
		{PowerUpMineAmmo, func(p *Player) bool { return p.Mines.Ammo() == 1 }},
	}
	for _, tt := range tests {
		p := newTestPlayer()
		pu := NewPowerUp(tt.kind, Vec2{}, 0)
		if !pu.Apply(p) {
			t.Errorf("%v: first Apply should succeed", tt.kind)
		}
		if !tt.check(p) {
			t.Errorf("%v: effect not applied", tt.kind)
		}
		if pu.Apply(p) {
			t.Errorf("%v: pickup applied twice", tt.kind)
		}
	}
}

func TestPowerUpApplyOnceKeepsAmmoCount(t *testing.T) {
	p := newTestPlayer()
	pu := NewPowerUp(PowerUpRocketAmmo, Vec2{}, 0)
	pu.Apply(p)
	pu.Apply(p)
	if p.Rockets.Ammo() != 1 {
		t.Errorf("expected ammo 1, got %d", p.Rockets.Ammo())
	}
}

func TestPowerUpExpiresAndWraps(t *testing.T) {
	pu := NewPowerUp(PowerUpShield, Vec2{X: testScreen.Width + PowerUpRadius + 1, Y: 50}, 90)
	ctx := testContext(0.01)
	pu.Update(ctx)
	if pu.Pos.X > 0 {
		t.Errorf("pickup should wrap to the left edge, got %v", pu.Pos.X)
	}

	ctx.Dt = PowerUpLifetime
	if !pu.Update(ctx) {
		t.Error("pickup should expire")
	}
}

func TestPowerUpDriftsAtFixedSpeed(t *testing.T) {
	for _, kind := range []PowerUpKind{PowerUpShield, PowerUpSpeed, PowerUpRocketAmmo, PowerUpMineAmmo} {
		pu := NewPowerUp(kind, Vec2{}, 45)
		if d := pu.Vel.Len() - PowerUpDriftSpeed; d > eps || d < -eps {
			t.Errorf("%v drifts at %v, want %v", kind, pu.Vel.Len(), PowerUpDriftSpeed)
		}
	}
}
