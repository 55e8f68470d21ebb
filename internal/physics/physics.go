// Package physics provides vector math, collision tests and a broad-phase grid.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap reports whether two circles overlap strictly
// (centers closer than the sum of radii).
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	minDist := ra + rb
	return DistanceSquared(a.X, a.Y, b.X, b.Y) < minDist*minDist
}

// Triangle is a closed triangle given by its three corners.
type Triangle [3]Vec2

// ContainsPoint uses the sign of the edge cross products. Points on an edge count as inside.
func (t Triangle) ContainsPoint(p Vec2) bool {
	d1 := cross(p, t[0], t[1])
	d2 := cross(p, t[1], t[2])
	d3 := cross(p, t[2], t[0])

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// OverlapsCircle reports whether the circle touches the triangle: either its
// center lies inside, or the nearest point on some edge is closer than r.
func (t Triangle) OverlapsCircle(c Vec2, r float64) bool {
	if t.ContainsPoint(c) {
		return true
	}
	for i := range 3 {
		q := ClosestPointOnSegment(c, t[i], t[(i+1)%3])
		if c.Sub(q).LenSquared() < r*r {
			return true
		}
	}
	return false
}

// ClosestPointOnSegment projects p onto segment ab, clamped to its ends.
func ClosestPointOnSegment(p, a, b Vec2) Vec2 {
	ab := b.Sub(a)
	l2 := ab.LenSquared()
	if l2 == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	return a.Add(ab.Scale(t))
}

func cross(p, a, b Vec2) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}
