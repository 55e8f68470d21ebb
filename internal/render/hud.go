package render

import (
	"fmt"

	"github.com/tomz197/warpfield/internal/draw"
	"github.com/tomz197/warpfield/internal/game"
	"github.com/tomz197/warpfield/internal/object"
)

// Tone is the color role of a HUD line.
type Tone int

const (
	ToneNormal Tone = iota
	ToneDim
	ToneCharging
	ToneReady
	ToneShield
	ToneBoost
	ToneRocket
	ToneMine
)

// Line is one HUD text line.
type Line struct {
	Text string
	Tone Tone
}

// HUDLines builds the left and right HUD columns. Fields are padded to a
// fixed width so shorter values overwrite longer ones on a terminal.
func HUDLines(h game.HUD) (left, right []Line) {
	left = []Line{
		{fmt.Sprintf("Score: %-8d", h.Score), ToneNormal},
		{fmt.Sprintf("Lives: %-3d", h.Lives), ToneNormal},
	}

	switch {
	case h.WarpCooldown > 0:
		left = append(left, Line{fmt.Sprintf("WARP: %-12s", seconds(h.WarpCooldown)), ToneDim})
	case h.WarpCharging:
		left = append(left, Line{fmt.Sprintf("WARP: %-5s %s", seconds(h.WarpCharge), draw.Bar(1-h.WarpCharge/object.WarpChargeTime, 6)), ToneCharging})
	default:
		left = append(left, Line{"WARP: READY [E]   ", ToneReady})
	}

	if h.Shield {
		left = append(left, Line{"SHIELD: ACTIVE", ToneShield})
	} else {
		left = append(left, Line{"SHIELD: ---   ", ToneDim})
	}
	if h.Boost > 0 {
		left = append(left, Line{fmt.Sprintf("SPEED: %-6s", seconds(h.Boost)), ToneBoost})
	} else {
		left = append(left, Line{"SPEED: ---   ", ToneDim})
	}

	right = []Line{
		ammoLine("[1] ROCKETS", h.Rockets, h.MaxRockets, ToneRocket),
		ammoLine("[2] MINES", h.Mines, h.MaxMines, ToneMine),
	}
	return left, right
}

func ammoLine(label string, ammo, maxAmmo int, tone Tone) Line {
	if ammo <= 0 {
		return Line{fmt.Sprintf("%s: %-5s", label, "---"), ToneDim}
	}
	return Line{fmt.Sprintf("%s: %-5s", label, fmt.Sprintf("%d/%d", ammo, maxAmmo)), tone}
}

func seconds(v float64) string {
	return fmt.Sprintf("%.1fs", max(v, 0))
}

// ToneColor maps a HUD tone to a terminal color.
func ToneColor(t Tone) draw.Color {
	switch t {
	case ToneDim:
		return draw.ColorDarkGray
	case ToneCharging:
		return draw.ColorYellow
	case ToneReady:
		return draw.ColorBrightCyan
	case ToneShield:
		return draw.ColorBlue
	case ToneBoost:
		return draw.ColorGreen
	case ToneRocket:
		return draw.ColorOrange
	case ToneMine:
		return draw.ColorRed
	}
	return draw.ColorWhite
}
