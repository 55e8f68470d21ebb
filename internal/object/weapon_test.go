package object

import (
	"math"
	"math/rand"
	"testing"
)

func TestAmmoStaysInBounds(t *testing.T) {
	w := NewRocketLauncher()
	if w.Ammo() != 0 {
		t.Fatalf("launcher should start empty, got %d", w.Ammo())
	}

	w.AddAmmo(10)
	if w.Ammo() != RocketMaxAmmo {
		t.Errorf("AddAmmo should clamp to %d, got %d", RocketMaxAmmo, w.Ammo())
	}
	w.AddAmmo(-5)
	if w.Ammo() != RocketMaxAmmo {
		t.Errorf("negative AddAmmo should be ignored, got %d", w.Ammo())
	}
}

func TestUseAmmo(t *testing.T) {
	tests := []struct {
		have, use int
		ok        bool
		left      int
	}{
		{3, 1, true, 2},
		{3, 3, true, 0},
		{2, 3, false, 2},
		{0, 1, false, 0},
		{0, 0, true, 0},
	}
	for _, tt := range tests {
		w := NewWeapon[int]("test", 5, tt.have, nil)
		if ok := w.UseAmmo(tt.use); ok != tt.ok {
			t.Errorf("UseAmmo(%d) with %d = %v, want %v", tt.use, tt.have, ok, tt.ok)
		}
		if w.Ammo() != tt.left {
			t.Errorf("ammo after UseAmmo(%d) with %d = %d, want %d", tt.use, tt.have, w.Ammo(), tt.left)
		}
	}
}

func TestFireWithoutAmmoReturnsNothing(t *testing.T) {
	if got := NewRocketLauncher().Fire(Launch{}); got != nil {
		t.Errorf("expected no rockets, got %d", len(got))
	}
	if got := NewMineLayer().Fire(Launch{}); got != nil {
		t.Errorf("expected no mines, got %d", len(got))
	}
}

func TestRocketVolleyCostsOneAmmo(t *testing.T) {
	w := NewRocketLauncher()
	w.AddAmmo(2)

	rockets := w.Fire(Launch{Pos: Vec2{X: 100, Y: 100}, Rotation: 30})
	if len(rockets) != RocketsPerVolley {
		t.Fatalf("expected %d rockets, got %d", RocketsPerVolley, len(rockets))
	}
	if w.Ammo() != 1 {
		t.Errorf("volley should cost one ammo, left %d", w.Ammo())
	}

	want := []float64{15, 30, 45}
	for i, r := range rockets {
		if math.Abs(r.Rotation-want[i]) > eps {
			t.Errorf("rocket %d rotation %v, want %v", i, r.Rotation, want[i])
		}
	}
}

func TestMineDeploysBehindShip(t *testing.T) {
	w := NewMineLayer()
	w.AddAmmo(1)

	mines := w.Fire(Launch{Pos: Vec2{X: 100, Y: 100}, Rotation: 0, Rand: rand.New(rand.NewSource(2))})
	if len(mines) != 1 {
		t.Fatalf("expected one mine, got %d", len(mines))
	}
	m := mines[0]
	if math.Abs(m.Pos.X-100) > eps || math.Abs(m.Pos.Y-(100-MineDeployDistance)) > eps {
		t.Errorf("mine at %v, want behind the ship", m.Pos)
	}
	if m.Armed() {
		t.Error("fresh mine must not be armed")
	}
	if w.Ammo() != 0 {
		t.Errorf("expected ammo 0, got %d", w.Ammo())
	}
}
