package desktop

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/warpfield/internal/draw"
	"github.com/tomz197/warpfield/internal/game"
	"github.com/tomz197/warpfield/internal/object"
	"github.com/tomz197/warpfield/internal/render"
)

// Debug font cell size.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

const strokeWidth = 2

var palette = map[draw.Color]color.RGBA{
	draw.ColorWhite:      {R: 240, G: 240, B: 240, A: 255},
	draw.ColorGray:       {R: 170, G: 170, B: 170, A: 255},
	draw.ColorDarkGray:   {R: 90, G: 90, B: 90, A: 255},
	draw.ColorRed:        {R: 230, G: 60, B: 50, A: 255},
	draw.ColorOrange:     {R: 255, G: 150, B: 40, A: 255},
	draw.ColorYellow:     {R: 255, G: 230, B: 80, A: 255},
	draw.ColorCyan:       {R: 40, G: 180, B: 200, A: 255},
	draw.ColorBrightCyan: {R: 110, G: 240, B: 255, A: 255},
	draw.ColorBlue:       {R: 70, G: 120, B: 255, A: 255},
	draw.ColorMagenta:    {R: 220, G: 80, B: 230, A: 255},
	draw.ColorGreen:      {R: 90, G: 220, B: 110, A: 255},
}

// RGBA maps a terminal color to the window palette.
func RGBA(c draw.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return color.RGBA{A: 255}
}

// surface strokes playfield geometry with an optional shake offset.
type surface struct {
	dst *ebiten.Image
	off object.Vec2
}

func (s surface) line(a, b object.Vec2, c draw.Color) {
	a, b = a.Add(s.off), b.Add(s.off)
	vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeWidth, RGBA(c), true)
}

func (s surface) segments(segs []render.Segment, c draw.Color) {
	for _, seg := range segs {
		s.line(seg[0], seg[1], c)
	}
}

func (s surface) polygon(pts []object.Vec2, c draw.Color) {
	for i := range pts {
		s.line(pts[i], pts[(i+1)%len(pts)], c)
	}
}

func (s surface) circle(center object.Vec2, r float64, c draw.Color, filled bool) {
	p := center.Add(s.off)
	if filled {
		vector.DrawFilledCircle(s.dst, float32(p.X), float32(p.Y), float32(r), RGBA(c), true)
		return
	}
	vector.StrokeCircle(s.dst, float32(p.X), float32(p.Y), float32(r), strokeWidth, RGBA(c), true)
}

// Draw paints the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g := w.Game
	now := time.Now()
	t := float64(now.UnixMilli()) / 1000

	s := surface{dst: screen}
	for _, st := range w.Layer.Stars.Stars {
		shade := uint8(st.Brightness * 255)
		vector.DrawFilledCircle(screen, float32(st.Pos.X), float32(st.Pos.Y), float32(st.Size/2),
			color.RGBA{R: shade, G: shade, B: shade, A: 255}, false)
	}

	if w.Layer.Shake.Active() {
		s.off = w.Layer.Shake.Offset
	}
	if g.Session == nil || g.State == game.StateGameOver {
		var poly []object.Vec2
		for _, a := range g.Backdrop {
			poly = a.Polygon(poly)
			s.polygon(poly, draw.ColorDarkGray)
		}
	}
	if g.Session != nil {
		drawSession(s, g.Session, t)
	}

	for _, ring := range w.Layer.Particles.Rings() {
		s.circle(ring.Center, ring.Radius(), draw.ColorRed, false)
	}
	for _, p := range w.Layer.Particles.Items() {
		c := render.ParticleColor(p.Palette, p.Fade())
		if p.Length > 0 {
			tail := p.Pos.Sub(p.Vel.Normalize(object.Vec2{}).Scale(p.Length * p.Fade()))
			s.line(p.Pos, tail, c)
			continue
		}
		s.circle(p.Pos, p.Size/2, c, true)
	}

	w.drawUI(screen, now)
}

func drawSession(s surface, sess *game.Session, t float64) {
	var poly []object.Vec2
	for _, a := range sess.Asteroids {
		poly = a.Polygon(poly)
		s.polygon(poly, draw.ColorGray)
	}

	for _, m := range sess.Mines {
		core, spikes := draw.ColorGray, draw.ColorDarkGray
		if m.Armed() {
			core, spikes = draw.ColorRed, draw.ColorRed
			s.segments(render.MineReach(m, t), draw.ColorRed)
		}
		if render.MineWarning(m) {
			core = draw.ColorWhite
		}
		s.segments(render.MineSpikes(m, t), spikes)
		s.circle(m.Pos, m.Radius*render.MinePulse(t), core, true)
	}

	for _, p := range sess.PowerUps {
		if !render.PowerUpVisible(p) {
			continue
		}
		c := render.PowerUpColor(p.Kind)
		s.circle(p.Pos, p.Radius*render.PowerUpPulse(t), c, false)
		s.segments(render.PowerUpIcon(p.Kind, p.Pos), c)
	}

	for _, sh := range sess.Shots {
		s.circle(sh.Pos, 2, draw.ColorWhite, true)
	}

	for _, rk := range sess.Rockets {
		body, fins := render.RocketShape(rk)
		s.polygon(body[:], draw.ColorOrange)
		s.segments(fins[:], draw.ColorRed)
	}

	p := sess.Player
	s.segments(render.WarpPreview(p, sess.Screen), draw.ColorCyan)
	if !render.ShipVisible(p) {
		return
	}
	if p.Shield {
		shield := render.ShieldTriangle(p)
		s.polygon(shield[:], draw.ColorBlue)
	}
	hull := p.Hitbox()
	c := draw.ColorWhite
	if p.Boosted() {
		c = draw.ColorYellow
	}
	s.polygon(hull[:], c)
}

func (w *Window) drawUI(screen *ebiten.Image, now time.Time) {
	g := w.Game
	cx := int(w.screen.Width) / 2
	cy := int(w.screen.Height) / 2
	blink := now.UnixMilli()/600%2 == 0

	switch g.State {
	case game.StateMenu:
		top := cy - 6*glyphHeight
		top = printArt(screen, cx, top, render.TitleArt)
		printCentered(screen, cx, top+glyphHeight, "~ Asteroids on your desktop ~")
		printCentered(screen, cx, top+3*glyphHeight, "WASD / arrows move   SPACE shoot   1 rockets   2 mines")
		printCentered(screen, cx, top+4*glyphHeight, "hold E to warp   P / ESC pause   Q quit")
		if blink {
			printCentered(screen, cx, top+6*glyphHeight, ">>  Press SPACE to Start  <<")
		}
	case game.StatePlaying:
		drawHUD(screen, g.HUD(), int(w.screen.Width))
	case game.StatePaused:
		drawHUD(screen, g.HUD(), int(w.screen.Width))
		top := printArt(screen, cx, cy-3*glyphHeight, render.PausedArt)
		if blink {
			printCentered(screen, cx, top+glyphHeight, ">>  Press SPACE to Resume  <<")
		}
		printCentered(screen, cx, top+3*glyphHeight, "Press ESC for Menu")
	case game.StateGameOver:
		top := printArt(screen, cx, cy-4*glyphHeight, render.GameOverArt)
		printCentered(screen, cx, top+glyphHeight, fmt.Sprintf("Final Score: %d", g.HUD().Score))
		if blink {
			printCentered(screen, cx, top+3*glyphHeight, ">>  Press SPACE to Play Again  <<")
		}
		printCentered(screen, cx, top+5*glyphHeight, "Press ESC for Menu")
	}
}

// drawHUD prints the HUD columns with a tone swatch in front of each line.
func drawHUD(screen *ebiten.Image, h game.HUD, width int) {
	left, right := render.HUDLines(h)
	for i, l := range left {
		hudLine(screen, 12, 8+i*glyphHeight, l)
	}
	for i, l := range right {
		hudLine(screen, width-12-len(l.Text)*glyphWidth, 8+i*glyphHeight, l)
	}
}

func hudLine(screen *ebiten.Image, x, y int, l render.Line) {
	vector.DrawFilledRect(screen, float32(x-8), float32(y+5), 4, 6, RGBA(render.ToneColor(l.Tone)), false)
	ebitenutil.DebugPrintAt(screen, l.Text, x, y)
}

func printCentered(screen *ebiten.Image, cx, y int, s string) {
	ebitenutil.DebugPrintAt(screen, s, cx-len(s)*glyphWidth/2, y)
}

// printArt prints art centered on cx from row y and returns the row below it.
func printArt(screen *ebiten.Image, cx, y int, art []string) int {
	for _, line := range art {
		printCentered(screen, cx, y, line)
		y += glyphHeight
	}
	return y
}
