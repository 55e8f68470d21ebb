// Package render draws a game onto a terminal canvas. The shape helpers in
// this file are frontend neutral and shared with the desktop window.
package render

import (
	"math"

	"github.com/tomz197/warpfield/internal/config"
	"github.com/tomz197/warpfield/internal/object"
	"github.com/tomz197/warpfield/internal/physics"
)

type Vec2 = object.Vec2

// Segment is a straight stroke.
type Segment [2]Vec2

const (
	shieldGap      = 10.0
	warpDash       = 10.0
	warpDashGap    = 8.0
	blinkWarnTime  = 3.0 // Pickups and mines blink during their last seconds
	mineSpikeCount = 6
	aoeDashes      = 24
)

// ShipVisible applies the invincibility blink.
func ShipVisible(p *object.Player) bool {
	return object.ShouldRenderBlink(p.Invincible, config.InvincibleBlinkHz)
}

// ShieldTriangle is the ship outline grown by a uniform gap and shifted by
// the shield's lag offset.
func ShieldTriangle(p *object.Player) physics.Triangle {
	center := p.Pos.Add(p.ShieldOffset)
	forward := p.Forward()
	right := physics.Heading(p.Rotation + 90)

	back := center.Sub(forward.Scale(p.Radius + shieldGap))
	side := right.Scale(p.Radius/1.5 + shieldGap)
	return physics.Triangle{
		center.Add(forward.Scale(p.Radius + shieldGap)),
		back.Sub(side),
		back.Add(side),
	}
}

// RocketShape returns the rocket body triangle and its two fins.
func RocketShape(r *object.Rocket) (body physics.Triangle, fins [2]Segment) {
	forward := physics.Heading(r.Rotation)
	right := physics.Heading(r.Rotation + 90).Scale(r.Radius / 2)

	tail := r.Pos.Sub(forward.Scale(r.Radius * 0.7))
	body = physics.Triangle{r.Pos.Add(forward.Scale(r.Radius)), tail.Sub(right), tail.Add(right)}

	finBase := r.Pos.Sub(forward.Scale(r.Radius * 0.5))
	fins[0] = Segment{body[1], finBase.Sub(right.Scale(1.5))}
	fins[1] = Segment{body[2], finBase.Add(right.Scale(1.5))}
	return body, fins
}

// MinePulse is the breathing scale of a mine at time t seconds.
func MinePulse(t float64) float64 {
	return 0.8 + 0.2*math.Sin(t*4)
}

// MineWarning reports whether an expiring mine shows its warning color.
func MineWarning(m *object.Mine) bool {
	return m.Lifetime < blinkWarnTime && int(m.Lifetime*4)%2 == 0
}

// MineSpikes returns the spike strokes of a mine turning with time t.
func MineSpikes(m *object.Mine, t float64) []Segment {
	length := m.Radius * 1.8 * MinePulse(t)
	out := make([]Segment, mineSpikeCount)
	for i := range out {
		dir := physics.Heading(t*90 + float64(i)*360/mineSpikeCount)
		out[i] = Segment{m.Pos, m.Pos.Add(dir.Scale(length))}
	}
	return out
}

// MineReach returns every other arc segment of the blast radius outline.
func MineReach(m *object.Mine, t float64) []Segment {
	out := make([]Segment, 0, aoeDashes/2)
	step := 2 * math.Pi / aoeDashes
	for i := 0; i < aoeDashes; i += 2 {
		a0 := float64(i)*step + t*0.5
		a1 := a0 + step
		out = append(out, Segment{
			m.Pos.Add(Vec2{X: math.Cos(a0), Y: math.Sin(a0)}.Scale(object.MineExplosionRadius)),
			m.Pos.Add(Vec2{X: math.Cos(a1), Y: math.Sin(a1)}.Scale(object.MineExplosionRadius)),
		})
	}
	return out
}

// PowerUpVisible blinks a pickup during its last seconds.
func PowerUpVisible(p *object.PowerUp) bool {
	return p.Lifetime >= blinkWarnTime || int(p.Lifetime*5)%2 != 0
}

// PowerUpPulse is the ring scale of a pickup at time t seconds.
func PowerUpPulse(t float64) float64 {
	return 0.7 + 0.3*math.Sin(t*2)
}

// PowerUpIcon returns the strokes of the symbol drawn inside a pickup ring.
func PowerUpIcon(kind object.PowerUpKind, c Vec2) []Segment {
	switch kind {
	case object.PowerUpShield:
		return polyline(hexagon(c, 6), true)
	case object.PowerUpSpeed:
		var out []Segment
		for _, dx := range []float64{-4, 0, 4} {
			out = append(out, polyline([]Vec2{
				{X: c.X + dx - 3, Y: c.Y - 6},
				{X: c.X + dx + 3, Y: c.Y},
				{X: c.X + dx - 3, Y: c.Y + 6},
			}, false)...)
		}
		return out
	case object.PowerUpRocketAmmo:
		return polyline([]Vec2{{X: c.X, Y: c.Y - 6}, {X: c.X - 3, Y: c.Y + 6}, {X: c.X + 3, Y: c.Y + 6}}, true)
	case object.PowerUpMineAmmo:
		var out []Segment
		for i := range 4 {
			a := float64(i)*math.Pi/2 + math.Pi/4
			out = append(out, Segment{c, c.Add(Vec2{X: math.Cos(a), Y: math.Sin(a)}.Scale(9))})
		}
		return out
	}
	return nil
}

// Dashes splits the line from a to b into dash strokes.
func Dashes(a, b Vec2, dash, gap float64) []Segment {
	d := b.Sub(a)
	length := d.Len()
	if length == 0 {
		return nil
	}
	dir := d.Scale(1 / length)

	var out []Segment
	for pos := 0.0; pos < length; pos += dash + gap {
		end := min(pos+dash, length)
		out = append(out, Segment{a.Add(dir.Scale(pos)), a.Add(dir.Scale(end))})
	}
	return out
}

// WarpPreview returns the dashed line to the warp destination and the dashed
// ghost outline, or nil when no warp is charging.
func WarpPreview(p *object.Player, s object.Screen) []Segment {
	if !p.WarpCharging() {
		return nil
	}
	ghost := p.WarpGhost(s)
	out := Dashes(p.Pos, p.WarpDestination(s), warpDash, warpDashGap)
	for i := range ghost {
		out = append(out, Dashes(ghost[i], ghost[(i+1)%3], warpDash/2, warpDashGap/2)...)
	}
	return out
}

func hexagon(c Vec2, size float64) []Vec2 {
	pts := make([]Vec2, 6)
	for i := range pts {
		a := (60*float64(i) - 90) * math.Pi / 180
		pts[i] = Vec2{X: c.X + math.Cos(a)*size, Y: c.Y + math.Sin(a)*size}
	}
	return pts
}

func polyline(pts []Vec2, closed bool) []Segment {
	n := len(pts) - 1
	if closed {
		n++
	}
	out := make([]Segment, 0, n)
	for i := range n {
		out = append(out, Segment{pts[i], pts[(i+1)%len(pts)]})
	}
	return out
}
