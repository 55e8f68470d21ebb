package render

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tomz197/warpfield/internal/draw"
	"github.com/tomz197/warpfield/internal/game"
)

// promptVisible blinks prompts at a steady pace.
func promptVisible(now time.Time) bool {
	return now.UnixMilli()/600%2 == 0
}

// leader joins a key and its action with dots to a fixed width.
func leader(key, action string) string {
	const width = 28
	dots := max(width-len(key)-len(action)-2, 1)
	return key + " " + strings.Repeat(".", dots) + " " + action
}

// drawUI draws the text overlay for the current state.
func (r *Terminal) drawUI(g *game.Game, ov Overlay, now time.Time) {
	cols := r.Canvas.TerminalWidth()
	rows := r.Canvas.TerminalHeight()
	cx, cy := cols/2, rows/2

	switch {
	case ov.Shutdown:
		r.drawShutdown(cx, cy, ov.ShutdownIn)
		return
	case ov.Inactive:
		r.drawInactivity(cx, cy, ov.DisconnectIn)
		return
	}

	switch g.State {
	case game.StateMenu:
		r.drawMenu(cx, cy, now)
	case game.StatePlaying:
		r.drawHUD(g.HUD(), cols)
	case game.StatePaused:
		r.drawHUD(g.HUD(), cols)
		r.drawPaused(cx, cy, now)
	case game.StateGameOver:
		r.drawGameOver(cx, cy, g.HUD().Score, now)
	}
}

// centered writes s so that its middle sits on column cx.
func (r *Terminal) centered(cx, row int, s string, color draw.Color) {
	r.Text.WriteColorAt(cx-utf8.RuneCountInString(s)/2, row, s, color)
}

func (r *Terminal) drawArt(cx, top int, art []string, color draw.Color) {
	for i, line := range art {
		r.centered(cx, top+i, line, color)
	}
}

func (r *Terminal) drawHUD(h game.HUD, cols int) {
	left, right := HUDLines(h)
	for i, l := range left {
		r.Text.WriteColorAt(2, 1+i, l.Text, ToneColor(l.Tone))
	}
	for i, l := range right {
		r.Text.WriteColorAt(cols-utf8.RuneCountInString(l.Text), 1+i, l.Text, ToneColor(l.Tone))
	}
}

func (r *Terminal) drawMenu(cx, cy int, now time.Time) {
	top := cy - 8
	r.drawArt(cx, top, TitleArt, draw.ColorBrightCyan)
	r.centered(cx, top+len(TitleArt)+1, "~ Asteroids in your terminal ~", draw.ColorGray)

	controls := []string{
		leader("W S / Up Down", "Thrust"),
		leader("A D / < >", "Rotate"),
		leader("SPACE", "Shoot"),
		leader("1 / R", "Rockets"),
		leader("2 / M", "Mines"),
		leader("E (hold)", "Warp"),
		leader("P / ESC", "Pause"),
		leader("Q", "Quit"),
	}
	y := top + len(TitleArt) + 3
	r.centered(cx, y, "Controls", draw.ColorWhite)
	for i, line := range controls {
		r.centered(cx, y+1+i, line, draw.ColorGray)
	}

	if promptVisible(now) {
		r.centered(cx, y+len(controls)+2, ">>  Press SPACE to Start  <<", draw.ColorWhite)
	}
}

func (r *Terminal) drawPaused(cx, cy int, now time.Time) {
	top := cy - 4
	r.drawArt(cx, top, PausedArt, draw.ColorWhite)
	if promptVisible(now) {
		r.centered(cx, top+len(PausedArt)+1, ">>  Press SPACE to Resume  <<", draw.ColorWhite)
	}
	r.centered(cx, top+len(PausedArt)+3, "Press ESC for Menu", draw.ColorGray)
}

func (r *Terminal) drawGameOver(cx, cy, score int, now time.Time) {
	top := cy - 5
	r.drawArt(cx, top, GameOverArt, draw.ColorRed)
	r.centered(cx, top+len(GameOverArt)+1, fmt.Sprintf("Final Score: %d", score), draw.ColorWhite)
	if promptVisible(now) {
		r.centered(cx, top+len(GameOverArt)+3, ">>  Press SPACE to Play Again  <<", draw.ColorWhite)
	}
	r.centered(cx, top+len(GameOverArt)+5, "Press ESC for Menu", draw.ColorGray)
}

func (r *Terminal) drawInactivity(cx, cy int, left time.Duration) {
	r.centered(cx, cy-2, "INACTIVITY WARNING", draw.ColorYellow)
	r.centered(cx, cy, fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(left.Seconds()),
	), draw.ColorWhite)
	r.centered(cx, cy+2, "Press any key to continue", draw.ColorGray)
}

func (r *Terminal) drawShutdown(cx, cy int, left time.Duration) {
	r.centered(cx, cy-3, "SERVER SHUTTING DOWN", draw.ColorRed)
	r.centered(cx, cy-1, "The server is restarting for maintenance.", draw.ColorWhite)
	r.centered(cx, cy, "Please reconnect in a moment.", draw.ColorWhite)
	r.centered(cx, cy+2, fmt.Sprintf("Disconnecting in %d seconds...", int(left.Seconds())+1), draw.ColorGray)
	r.centered(cx, cy+4, "Press Q to disconnect now", draw.ColorGray)
}
