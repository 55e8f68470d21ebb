package physics

import "math"

// Vec2 is a 2D vector in playfield units. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Heading returns the unit vector for a rotation in degrees.
// Rotation 0 points along +Y; positive angles turn from +X toward +Y.
func Heading(deg float64) Vec2 {
	return Vec2{0, 1}.Rotate(deg)
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the vector magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSquared avoids the sqrt when only comparing lengths.
func (v Vec2) LenSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return Distance(v.X, v.Y, o.X, o.Y)
}

// Normalize returns the unit vector of v, or fallback when v has zero length.
func (v Vec2) Normalize(fallback Vec2) Vec2 {
	l := v.Len()
	if l == 0 {
		return fallback
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate rotates v by deg degrees.
func (v Vec2) Rotate(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// ClampLen shortens v to at most max, keeping its direction.
func (v Vec2) ClampLen(max float64) Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// Lerp moves v toward o by t (0..1).
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Bearing returns the rotation in degrees whose Heading points along v.
// Zero vectors yield 0.
func (v Vec2) Bearing() float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return math.Atan2(-v.X, v.Y) * 180 / math.Pi
}

// NormalizeAngle maps deg into (-180, 180].
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
