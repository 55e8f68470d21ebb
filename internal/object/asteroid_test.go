package object

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewAsteroidOutline(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 200 {
		a := NewAsteroid(Vec2{}, Vec2{}, 40, rng)
		if n := len(a.Ratios); n < 7 || n > 12 {
			t.Fatalf("vertex count %d out of [7,12]", n)
		}
		for _, r := range a.Ratios {
			if r < 0.7 || r >= 1.0 {
				t.Fatalf("ratio %v out of [0.7,1.0)", r)
			}
		}
	}
}

func TestPolygonFollowsRotation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := NewAsteroid(Vec2{X: 100, Y: 100}, Vec2{}, 40, rng)

	before := a.Polygon(nil)
	first := before[0]
	a.Rotation += 90
	after := a.Polygon(before)

	if len(after) != len(a.Ratios) {
		t.Fatalf("expected %d vertices, got %d", len(a.Ratios), len(after))
	}
	if after[0] == first {
		t.Error("polygon should change with rotation")
	}
	for i, v := range after {
		d := v.Distance(a.Pos)
		want := a.Radius * a.Ratios[i]
		if math.Abs(d-want) > eps {
			t.Errorf("vertex %d at distance %v, want %v", i, d, want)
		}
	}
}

func TestSplitProducesSmallerChildren(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, radius := range []float64{40, 60} {
		a := NewAsteroid(Vec2{X: 500, Y: 300}, Vec2{X: 50, Y: 10}, radius, rng)
		children := a.Split(0, rng)

		if !a.IsDestroyed() {
			t.Error("parent must be destroyed")
		}
		if len(children) != 2 {
			t.Fatalf("radius %v: expected 2 children, got %d", radius, len(children))
		}
		for _, c := range children {
			if c.Radius >= radius || c.Radius <= 0 {
				t.Errorf("child radius %v not in (0, %v)", c.Radius, radius)
			}
			if c.Radius != radius-AsteroidMinRadius {
				t.Errorf("child radius %v, want %v", c.Radius, radius-AsteroidMinRadius)
			}
		}
	}
}

func TestSplitAtMinimumRadiusHasNoChildren(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, radius := range []float64{AsteroidMinRadius, 10} {
		a := NewAsteroid(Vec2{}, Vec2{X: 10}, radius, rng)
		if children := a.Split(0, rng); len(children) != 0 {
			t.Errorf("radius %v produced %d children", radius, len(children))
		}
		if !a.IsDestroyed() {
			t.Error("asteroid should still be destroyed")
		}
	}
}

func TestSplitRespectsPopulationCap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := NewAsteroid(Vec2{}, Vec2{X: 10}, 60, rng)
	if children := a.Split(AsteroidMaxCount, rng); len(children) != 0 {
		t.Errorf("expected no children at the cap, got %d", len(children))
	}
}

func TestSplitChildGeometry(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for range 100 {
		parentVel := Vec2{X: 60, Y: -20}
		a := NewAsteroid(Vec2{X: 640, Y: 360}, parentVel, 60, rng)
		children := a.Split(0, rng)

		parentAngle := parentVel.Bearing()
		wantSpeed := parentVel.Len() * 1.2
		var left, right bool
		for _, c := range children {
			if math.Abs(c.Vel.Len()-wantSpeed) > eps {
				t.Fatalf("child speed %v, want %v", c.Vel.Len(), wantSpeed)
			}
			turn := normalize(c.Vel.Bearing() - parentAngle)
			switch {
			case turn >= 20-eps && turn <= 50+eps:
				left = true
			case turn <= -20+eps && turn >= -50-eps:
				right = true
			default:
				t.Fatalf("child turned by %v degrees", turn)
			}
			if d := c.Pos.Distance(a.Pos); d < 2.5*c.Radius-eps {
				t.Errorf("child only %v from parent, want >= %v", d, 2.5*c.Radius)
			}
		}
		if !left || !right {
			t.Fatal("expected one child on each side")
		}
	}
}

func TestSplitStationaryParentUsesDefaultDirections(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	a := NewAsteroid(Vec2{X: 640, Y: 360}, Vec2{}, 40, rng)
	children := a.Split(0, rng)

	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if children[0].Pos != (Vec2{X: 640 + 50, Y: 360}) || children[1].Pos != (Vec2{X: 640 - 50, Y: 360}) {
		t.Errorf("unexpected child positions %v %v", children[0].Pos, children[1].Pos)
	}
}

func TestSpawnerHonorsRateAndCap(t *testing.T) {
	live := 0
	s := NewAsteroidSpawner(func() int { return live })
	ctx := testContext(0.5)
	sp := ctx.Spawner.(*collectSpawner)

	s.Update(ctx)
	if len(sp.objs) != 0 {
		t.Fatal("spawned before the rate elapsed")
	}
	s.Update(ctx)
	if len(sp.objs) != 1 {
		t.Fatalf("expected one spawn, got %d", len(sp.objs))
	}

	a := sp.objs[0].(*Asteroid)
	if a.Radius != 20 && a.Radius != 40 && a.Radius != 60 {
		t.Errorf("unexpected radius %v", a.Radius)
	}
	if !testScreen.Outside(a.Pos, a.Radius-eps) {
		t.Errorf("asteroid should start on the edge, got %v", a.Pos)
	}
	if speed := a.Vel.Len(); speed < spawnMinSpeed-eps || speed > spawnMaxSpeed+eps {
		t.Errorf("speed %v out of range", speed)
	}

	live = AsteroidMaxCount
	s.Update(ctx)
	s.Update(ctx)
	if len(sp.objs) != 1 {
		t.Error("spawner must stop at the population cap")
	}
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
