package render

import (
	"github.com/tomz197/warpfield/internal/draw"
	"github.com/tomz197/warpfield/internal/fx"
	"github.com/tomz197/warpfield/internal/game"
	"github.com/tomz197/warpfield/internal/object"
)

// ParticleColor maps a particle palette and its remaining life to a terminal color.
func ParticleColor(p fx.Palette, fade float64) draw.Color {
	switch p {
	case fx.PaletteFire:
		switch {
		case fade > 0.66:
			return draw.ColorYellow
		case fade > 0.33:
			return draw.ColorOrange
		}
		return draw.ColorRed
	case fx.PaletteIce:
		if fade > 0.5 {
			return draw.ColorBrightCyan
		}
		return draw.ColorCyan
	case fx.PaletteWarp:
		if fade > 0.5 {
			return draw.ColorMagenta
		}
		return draw.ColorBlue
	case fx.PaletteBlast:
		switch {
		case fade > 0.75:
			return draw.ColorWhite
		case fade > 0.4:
			return draw.ColorYellow
		}
		return draw.ColorOrange
	}
	if fade > 0.5 {
		return draw.ColorGray
	}
	return draw.ColorDarkGray
}

func starColor(brightness float64) draw.Color {
	switch {
	case brightness > 0.5:
		return draw.ColorWhite
	case brightness > 0.3:
		return draw.ColorGray
	}
	return draw.ColorDarkGray
}

// drawScene paints the playfield of g onto c. t is wall-clock seconds and
// drives the cosmetic pulses.
func (r *Terminal) drawScene(g *game.Game, layer *fx.Layer, t float64) {
	c := r.Canvas

	c.SetShift(object.Vec2{})
	for _, st := range layer.Stars.Stars {
		c.Set(st.Pos, starColor(st.Brightness))
	}

	if layer.Shake.Active() {
		c.SetShift(layer.Shake.Offset)
	}
	defer c.SetShift(object.Vec2{})

	s := g.Session
	if s == nil || g.State == game.StateGameOver {
		for _, a := range g.Backdrop {
			r.poly = a.Polygon(r.poly)
			c.DrawPolygon(r.poly, draw.ColorDarkGray, false)
		}
	}
	if s != nil {
		r.drawSession(s, t)
	}

	for _, ring := range layer.Particles.Rings() {
		c.DrawCircle(ring.Center, ring.Radius(), draw.ColorRed, false)
	}
	for _, p := range layer.Particles.Items() {
		c.Dot(p.Pos, p.Size, ParticleColor(p.Palette, p.Fade()))
		if p.Length > 0 {
			tail := p.Pos.Sub(p.Vel.Normalize(object.Vec2{}).Scale(p.Length * p.Fade()))
			c.DrawLine(p.Pos, tail, ParticleColor(p.Palette, p.Fade()))
		}
	}
}

func (r *Terminal) drawSession(s *game.Session, t float64) {
	c := r.Canvas

	for _, a := range s.Asteroids {
		r.poly = a.Polygon(r.poly)
		c.DrawPolygon(r.poly, draw.ColorGray, false)
	}

	for _, m := range s.Mines {
		core, spikes := draw.ColorGray, draw.ColorDarkGray
		if m.Armed() {
			core, spikes = draw.ColorRed, draw.ColorRed
			for _, seg := range MineReach(m, t) {
				c.DrawLine(seg[0], seg[1], draw.ColorRed)
			}
		}
		if MineWarning(m) {
			core = draw.ColorWhite
		}
		for _, seg := range MineSpikes(m, t) {
			c.DrawLine(seg[0], seg[1], spikes)
		}
		c.DrawCircle(m.Pos, m.Radius*MinePulse(t), core, true)
	}

	for _, p := range s.PowerUps {
		if !PowerUpVisible(p) {
			continue
		}
		color := PowerUpColor(p.Kind)
		c.DrawCircle(p.Pos, p.Radius*PowerUpPulse(t), color, false)
		for _, seg := range PowerUpIcon(p.Kind, p.Pos) {
			c.DrawLine(seg[0], seg[1], color)
		}
	}

	for _, sh := range s.Shots {
		c.Dot(sh.Pos, 4, draw.ColorWhite)
	}

	for _, rk := range s.Rockets {
		body, fins := RocketShape(rk)
		c.DrawPolygon(body[:], draw.ColorOrange, true)
		for _, f := range fins {
			c.DrawLine(f[0], f[1], draw.ColorRed)
		}
	}

	p := s.Player
	for _, seg := range WarpPreview(p, s.Screen) {
		c.DrawLine(seg[0], seg[1], draw.ColorCyan)
	}
	if !ShipVisible(p) {
		return
	}
	if p.Shield {
		shield := ShieldTriangle(p)
		c.DrawPolygon(shield[:], draw.ColorBlue, false)
	}
	hull := p.Hitbox()
	color := draw.ColorWhite
	if p.Boosted() {
		color = draw.ColorYellow
	}
	c.DrawPolygon(hull[:], color, false)
}

// PowerUpColor is the ring and icon color of a pickup.
func PowerUpColor(k object.PowerUpKind) draw.Color {
	switch k {
	case object.PowerUpShield:
		return draw.ColorBrightCyan
	case object.PowerUpSpeed:
		return draw.ColorYellow
	case object.PowerUpRocketAmmo:
		return draw.ColorOrange
	case object.PowerUpMineAmmo:
		return draw.ColorRed
	}
	return draw.ColorWhite
}
