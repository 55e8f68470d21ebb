package render

import (
	"io"
	"time"

	"github.com/tomz197/warpfield/internal/config"
	"github.com/tomz197/warpfield/internal/draw"
	"github.com/tomz197/warpfield/internal/fx"
	"github.com/tomz197/warpfield/internal/game"
	"github.com/tomz197/warpfield/internal/object"
)

// Overlay holds connection level notices drawn above the game.
type Overlay struct {
	Inactive     bool
	DisconnectIn time.Duration
	Shutdown     bool
	ShutdownIn   time.Duration
}

// Terminal draws frames of one game onto one terminal.
type Terminal struct {
	Canvas *draw.Canvas
	Text   *draw.ChunkWriter

	w    io.Writer
	poly []object.Vec2

	shown       game.State
	shownNotice Overlay
	started     bool
}

// NewTerminal creates a renderer for a screen-sized playfield on a terminal
// of the given size.
func NewTerminal(w io.Writer, screen object.Screen, termWidth, termHeight int) *Terminal {
	r := &Terminal{w: w}
	rw, rh, col, row := draw.ClampTermSize(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)
	r.Canvas = draw.NewScaledCanvas(rw, rh, screen.Width, screen.Height)
	r.Canvas.SetOffset(col, row)
	r.Text = draw.NewChunkWriter(w, r.Canvas)
	return r
}

// Resize adapts to a new terminal size. On an actual change the terminal is
// cleared so nothing from the old layout lingers.
func (r *Terminal) Resize(termWidth, termHeight int) {
	rw, rh, col, row := draw.ClampTermSize(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)
	c := r.Canvas
	if rw == c.TerminalWidth() && rh == c.TerminalHeight() && col == c.OffsetCol() && row == c.OffsetRow() {
		return
	}
	r.Text.WriteString("\033[H\033[2J")
	c.Resize(rw, rh)
	c.SetOffset(col, row)
	c.ForceRedraw()
}

// Frame draws one frame and flushes it to the terminal.
func (r *Terminal) Frame(g *game.Game, layer *fx.Layer, ov Overlay, now time.Time) error {
	notice := Overlay{Inactive: ov.Inactive, Shutdown: ov.Shutdown}
	if !r.started || g.State != r.shown || notice != r.shownNotice {
		r.Text.WriteString("\033[H\033[2J")
		r.Canvas.ForceRedraw()
		r.shown = g.State
		r.shownNotice = notice
		r.started = true
	}

	t := float64(now.UnixMilli()) / 1000
	r.Canvas.Clear()
	r.drawScene(g, layer, t)
	r.Canvas.Render(r.Text)
	r.Canvas.RenderBorder(r.Text)

	r.drawUI(g, ov, now)
	return r.Text.Flush()
}

// Close clears the terminal.
func (r *Terminal) Close() error {
	r.Text.WriteString(draw.ColorReset + "\033[H\033[2J")
	return r.Text.Flush()
}
