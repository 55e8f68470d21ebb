package render

import (
	"bytes"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/warpfield/internal/draw"
	"github.com/tomz197/warpfield/internal/fx"
	"github.com/tomz197/warpfield/internal/game"
	"github.com/tomz197/warpfield/internal/input"
	"github.com/tomz197/warpfield/internal/object"
)

const eps = 1e-9

func TestShieldTriangleSurroundsShip(t *testing.T) {
	p := object.NewPlayer(Vec2{X: 100, Y: 100})
	shield := ShieldTriangle(p)
	hull := p.Hitbox()

	if d := shield[0].Distance(hull[0]); math.Abs(d-shieldGap) > eps {
		t.Errorf("tip gap %v, want %v", d, shieldGap)
	}
	for _, v := range hull {
		if !shield.ContainsPoint(v) {
			t.Errorf("hull vertex %v outside the shield", v)
		}
	}

	p.ShieldOffset = Vec2{X: 5}
	moved := ShieldTriangle(p)
	if d := moved[0].Sub(shield[0]); math.Abs(d.X-5) > eps || math.Abs(d.Y) > eps {
		t.Errorf("shield should follow its offset, moved by %v", d)
	}
}

func TestRocketShapePointsForward(t *testing.T) {
	r := object.NewRocket(Vec2{X: 50, Y: 50}, 0, Vec2{})
	body, fins := RocketShape(r)
	if body[0].Y <= r.Pos.Y || body[1].Y >= r.Pos.Y {
		t.Errorf("rocket facing +Y should have its tip ahead: %v", body)
	}
	for _, f := range fins {
		if f[0] != body[1] && f[0] != body[2] {
			t.Error("fins should start at the tail corners")
		}
	}
}

func TestBlinkRules(t *testing.T) {
	p := object.NewPlayer(Vec2{})
	p.Invincible = 0
	if !ShipVisible(p) {
		t.Error("ship without invincibility must be visible")
	}
	p.Invincible = 1.05 // phase 10
	if ShipVisible(p) {
		t.Error("even blink phase should hide the ship")
	}

	pu := object.NewPowerUp(object.PowerUpShield, Vec2{}, 0)
	if !PowerUpVisible(pu) {
		t.Error("fresh pickup must be visible")
	}
	pu.Lifetime = 1.1 // int(5.5) = 5
	if !PowerUpVisible(pu) {
		t.Error("odd phase should show the pickup")
	}
	pu.Lifetime = 1.3 // int(6.5) = 6
	if PowerUpVisible(pu) {
		t.Error("even phase should hide an expiring pickup")
	}

	m := object.NewMine(Vec2{}, Vec2{}, 0)
	if MineWarning(m) {
		t.Error("fresh mine should not warn")
	}
	m.Lifetime = 1.0
	if !MineWarning(m) {
		t.Error("expiring mine should warn on even phases")
	}
}

func TestMineGeometry(t *testing.T) {
	m := object.NewMine(Vec2{X: 10, Y: 10}, Vec2{}, 0)
	spikes := MineSpikes(m, 0)
	if len(spikes) != mineSpikeCount {
		t.Fatalf("expected %d spikes, got %d", mineSpikeCount, len(spikes))
	}
	want := m.Radius * 1.8 * MinePulse(0)
	for _, s := range spikes {
		if d := s[1].Distance(m.Pos); math.Abs(d-want) > eps {
			t.Errorf("spike length %v, want %v", d, want)
		}
	}

	reach := MineReach(m, 0)
	if len(reach) != aoeDashes/2 {
		t.Fatalf("expected %d dashes, got %d", aoeDashes/2, len(reach))
	}
	if d := reach[0][0].Distance(m.Pos); math.Abs(d-object.MineExplosionRadius) > eps {
		t.Errorf("reach drawn at %v, want %v", d, object.MineExplosionRadius)
	}
}

func TestDashes(t *testing.T) {
	segs := Dashes(Vec2{}, Vec2{X: 30}, 10, 5)
	if len(segs) != 2 {
		t.Fatalf("expected 2 dashes, got %d: %v", len(segs), segs)
	}
	if segs[1][0].X != 15 || segs[1][1].X != 25 {
		t.Errorf("second dash %v", segs[1])
	}
	if Dashes(Vec2{}, Vec2{}, 10, 5) != nil {
		t.Error("zero length line has no dashes")
	}
}

func TestWarpPreviewOnlyWhileCharging(t *testing.T) {
	s := object.Screen{Width: 1280, Height: 720}
	p := object.NewPlayer(s.Center())
	if WarpPreview(p, s) != nil {
		t.Error("no preview without a charge")
	}
	p.StartWarpCharge(nil)
	if len(WarpPreview(p, s)) == 0 {
		t.Error("charging warp should show a preview")
	}
}

func TestPowerUpIcons(t *testing.T) {
	for _, k := range []object.PowerUpKind{object.PowerUpShield, object.PowerUpSpeed, object.PowerUpRocketAmmo, object.PowerUpMineAmmo} {
		if len(PowerUpIcon(k, Vec2{})) == 0 {
			t.Errorf("%v has no icon", k)
		}
	}
}

func TestHUDLines(t *testing.T) {
	left, right := HUDLines(game.HUD{Score: 120, Lives: 2, Rockets: 2, MaxRockets: 3, Shield: true})
	if !strings.HasPrefix(left[0].Text, "Score: 120") || !strings.HasPrefix(left[1].Text, "Lives: 2") {
		t.Errorf("unexpected score lines %+v", left[:2])
	}
	if left[2].Tone != ToneReady {
		t.Errorf("warp should be ready, got %+v", left[2])
	}
	if left[3].Tone != ToneShield || left[4].Tone != ToneDim {
		t.Errorf("unexpected shield/speed lines %+v", left[3:])
	}
	if !strings.Contains(right[0].Text, "2/3") || right[0].Tone != ToneRocket {
		t.Errorf("unexpected rocket line %+v", right[0])
	}
	if !strings.Contains(right[1].Text, "---") || right[1].Tone != ToneDim {
		t.Errorf("unexpected mine line %+v", right[1])
	}

	left, _ = HUDLines(game.HUD{WarpCooldown: 2.5})
	if !strings.Contains(left[2].Text, "2.5s") || left[2].Tone != ToneDim {
		t.Errorf("cooldown line %+v", left[2])
	}
	left, _ = HUDLines(game.HUD{WarpCharging: true, WarpCharge: 1})
	if left[2].Tone != ToneCharging {
		t.Errorf("charging line %+v", left[2])
	}
}

func TestHUDLinesKeepWidth(t *testing.T) {
	a, _ := HUDLines(game.HUD{Score: 99999})
	b, _ := HUDLines(game.HUD{Score: 1})
	if len(a[0].Text) != len(b[0].Text) {
		t.Error("score field should be fixed width")
	}
}

func TestParticleColorFades(t *testing.T) {
	if ParticleColor(fx.PaletteFire, 1) != draw.ColorYellow || ParticleColor(fx.PaletteFire, 0.1) != draw.ColorRed {
		t.Error("fire should cool from yellow to red")
	}
	if ParticleColor(fx.PaletteDust, 0.1) != draw.ColorDarkGray {
		t.Error("dust should fade to dark gray")
	}
}

func newTestFrame(t *testing.T) (*game.Game, *fx.Layer, *Terminal, *bytes.Buffer) {
	t.Helper()
	rng := rand.New(rand.NewSource(5))
	g := game.New(game.Options{Rand: rng})
	layer := fx.NewLayer(g.Screen(), rng)
	var out bytes.Buffer
	return g, layer, NewTerminal(&out, g.Screen(), 120, 40), &out
}

func TestFrameDrawsMenuAndHUD(t *testing.T) {
	g, layer, term, out := newTestFrame(t)
	now := time.UnixMilli(0)

	if err := term.Frame(g, layer, Overlay{}, now); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\033[H\033[2J") {
		t.Error("first frame should clear the terminal")
	}
	if !strings.Contains(out.String(), "Press SPACE to Start") {
		t.Error("menu prompt missing")
	}

	g.Update(0.016, input.Input{Confirm: true})
	out.Reset()
	if err := term.Frame(g, layer, Overlay{}, now); err != nil {
		t.Fatal(err)
	}
	frame := out.String()
	if !strings.Contains(frame, "\033[H\033[2J") {
		t.Error("state change should clear the terminal")
	}
	if !strings.Contains(frame, "Score: 0") || !strings.Contains(frame, "WARP: READY") {
		t.Errorf("HUD missing from frame")
	}

	out.Reset()
	if err := term.Frame(g, layer, Overlay{}, now); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "\033[H\033[2J") {
		t.Error("steady frames should not clear the terminal")
	}
}

func TestFrameOverlays(t *testing.T) {
	g, layer, term, out := newTestFrame(t)
	now := time.UnixMilli(0)

	term.Frame(g, layer, Overlay{Inactive: true, DisconnectIn: 30 * time.Second}, now)
	if !strings.Contains(out.String(), "INACTIVITY WARNING") || !strings.Contains(out.String(), "in 30 seconds") {
		t.Error("inactivity warning missing")
	}

	out.Reset()
	term.Frame(g, layer, Overlay{Shutdown: true, ShutdownIn: 1500 * time.Millisecond}, now)
	if !strings.Contains(out.String(), "SERVER SHUTTING DOWN") || !strings.Contains(out.String(), "in 2 seconds") {
		t.Error("shutdown notice missing")
	}
}

func TestResizeClearsOnChange(t *testing.T) {
	g, layer, term, out := newTestFrame(t)
	term.Frame(g, layer, Overlay{}, time.UnixMilli(0))

	out.Reset()
	term.Resize(120, 40)
	term.Text.Flush()
	if out.Len() != 0 {
		t.Error("same size should not clear")
	}

	term.Resize(300, 100)
	term.Text.Flush()
	if !strings.Contains(out.String(), "\033[H\033[2J") {
		t.Error("resize should clear the terminal")
	}
	if term.Canvas.TerminalWidth() != 240 || term.Canvas.OffsetCol() != 30 {
		t.Errorf("canvas %d cols at offset %d", term.Canvas.TerminalWidth(), term.Canvas.OffsetCol())
	}
}
