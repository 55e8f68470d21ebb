package object

import (
	"math"
	"testing"
)

func TestMineArmsAfterDelay(t *testing.T) {
	m := NewMine(Vec2{X: 100, Y: 100}, Vec2{}, 0)
	ctx := testContext(0.2)

	m.Update(ctx)
	m.Update(ctx)
	if m.Armed() {
		t.Error("mine armed too early")
	}
	m.Update(ctx)
	if !m.Armed() {
		t.Error("mine should be armed after the delay")
	}
}

func TestMineVelocityDecays(t *testing.T) {
	m := NewMine(Vec2{X: 100, Y: 100}, Vec2{X: 100}, 0)
	want := Vec2{X: 100 * MineDriftScale, Y: MineDriftSpeed}
	if math.Abs(m.Vel.X-want.X) > eps || math.Abs(m.Vel.Y-want.Y) > eps {
		t.Fatalf("initial velocity %v, want %v", m.Vel, want)
	}

	m.Update(testContext(0.016))
	if math.Abs(m.Vel.Len()-want.Len()*MineFriction) > eps {
		t.Errorf("velocity should shrink by the friction factor, got %v", m.Vel.Len())
	}
}

func TestMineExpires(t *testing.T) {
	m := NewMine(Vec2{}, Vec2{}, 0)
	ctx := testContext(MineLifetime / 2)
	if m.Update(ctx) {
		t.Fatal("mine expired early")
	}
	if !m.Update(ctx) {
		t.Error("mine should expire after its lifetime")
	}
}

func TestInBlastMeasuresToAsteroidEdge(t *testing.T) {
	m := NewMine(Vec2{}, Vec2{}, 0)
	tests := []struct {
		dist, radius float64
		want         bool
	}{
		{100, 20, true},
		{139, 20, true},
		{140, 20, false},
		{179, 60, true},
		{181, 60, false},
	}
	for _, tt := range tests {
		a := &Asteroid{Body: Body{Pos: Vec2{X: tt.dist}, Radius: tt.radius}}
		if got := m.InBlast(a); got != tt.want {
			t.Errorf("dist %v radius %v: got %v, want %v", tt.dist, tt.radius, got, tt.want)
		}
	}
}
