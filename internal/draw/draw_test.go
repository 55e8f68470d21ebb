package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestShadeLevel(t *testing.T) {
	tests := []struct {
		in   float64
		want rune
	}{
		{-1, BlockEmpty},
		{0, BlockEmpty},
		{0.3, BlockLight},
		{0.5, BlockMedium},
		{0.8, BlockDark},
		{1, BlockFull},
		{2, BlockFull},
	}
	for _, tt := range tests {
		if got := ShadeLevel(tt.in); got != tt.want {
			t.Errorf("ShadeLevel(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		fraction float64
		want     string
	}{
		{0, "░░░░"},
		{1, "████"},
		{0.5, "██░░"},
		{0.625, "██▒░"},
		{1.5, "████"},
	}
	for _, tt := range tests {
		if got := Bar(tt.fraction, 4); got != tt.want {
			t.Errorf("Bar(%v) = %q, want %q", tt.fraction, got, tt.want)
		}
	}
}

func TestColorCodes(t *testing.T) {
	if ColorRed.Fg() != "\033[91m" || ColorRed.Bg() != "\033[101m" {
		t.Errorf("unexpected red codes %q %q", ColorRed.Fg(), ColorRed.Bg())
	}
	if Color(200).Fg() != ColorNone.Fg() {
		t.Error("unknown colors should fall back to the default")
	}
}

func TestCanvasScalesLogicalCoordinates(t *testing.T) {
	c := NewScaledCanvas(64, 18, 1280, 720)
	c.Set(Point{X: 640, Y: 360}, ColorWhite)
	if c.Pixel(32, 18) != ColorWhite {
		t.Error("centre should map to the middle pixel")
	}

	c.Clear()
	c.SetShift(Point{X: 20, Y: 20})
	c.Set(Point{X: 0, Y: 0}, ColorRed)
	if c.Pixel(1, 1) != ColorRed {
		t.Error("shift should move drawing")
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.DrawLine(Point{X: 0, Y: 0}, Point{X: 9, Y: 9}, ColorGreen)
	for i := range 10 {
		if c.Pixel(i, i) != ColorGreen {
			t.Fatalf("diagonal pixel %d not set", i)
		}
	}
}

func TestDrawPolygonFilled(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	square := []Point{{X: 2, Y: 2}, {X: 10, Y: 2}, {X: 10, Y: 10}, {X: 2, Y: 10}}
	c.DrawPolygon(square, ColorYellow, true)
	if c.Pixel(6, 6) != ColorYellow {
		t.Error("interior should be filled")
	}

	c.Clear()
	c.DrawPolygon(square, ColorYellow, false)
	if c.Pixel(6, 6) != ColorNone || c.Pixel(2, 6) != ColorYellow {
		t.Error("outline only should leave the interior empty")
	}
}

func TestDrawCircle(t *testing.T) {
	c := NewScaledCanvas(40, 20, 40, 40)
	c.DrawCircle(Point{X: 20, Y: 20}, 10, ColorCyan, false)
	if c.Pixel(30, 20) != ColorCyan || c.Pixel(20, 10) != ColorCyan {
		t.Error("circle should pass through its extremes")
	}
	if c.Pixel(20, 20) != ColorNone {
		t.Error("outline should not fill the centre")
	}
	c.DrawCircle(Point{X: 20, Y: 20}, 10, ColorCyan, true)
	if c.Pixel(20, 20) != ColorCyan {
		t.Error("filled circle should cover the centre")
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(4, 1, 4, 2)
	c.setPixel(0, 0, ColorWhite)
	c.setPixel(1, 1, ColorWhite)
	c.setPixel(2, 0, ColorRed)
	c.setPixel(2, 1, ColorRed)
	c.setPixel(3, 0, ColorRed)
	c.setPixel(3, 1, ColorBlue)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()
	for _, want := range []string{"▀", "▄", "█", ColorBlue.Bg()} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q: %q", want, out)
		}
	}
}

func TestRenderOnlyChangedCells(t *testing.T) {
	c := NewScaledCanvas(8, 2, 8, 4)
	c.setPixel(1, 0, ColorWhite)

	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.Contains(buf.String(), "▀") {
		t.Fatal("first frame should draw the pixel")
	}

	buf.Reset()
	c.Render(&buf)
	if strings.ContainsAny(buf.String(), "▀▄█ ") {
		t.Errorf("unchanged frame should emit no cells: %q", buf.String())
	}

	c.Clear()
	buf.Reset()
	c.Render(&buf)
	if !strings.Contains(buf.String(), "\033[1;2H ") {
		t.Errorf("cleared pixel should be erased: %q", buf.String())
	}

	c.MarkTextDirty(1, 2, 3)
	buf.Reset()
	c.Render(&buf)
	if !strings.Contains(buf.String(), "\033[2;1H   ") {
		t.Errorf("dirty text cells should be repainted: %q", buf.String())
	}
}

func TestChunkWriterClipsAndMarks(t *testing.T) {
	c := NewScaledCanvas(10, 3, 10, 6)
	var out bytes.Buffer
	cw := NewChunkWriter(&out, c)

	var frame bytes.Buffer
	c.Render(&frame) // Settle the canvas

	cw.WriteAt(8, 1, "Score")
	cw.WriteAt(-1, 2, "abc")
	cw.WriteAt(1, 9, "hidden")
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "\033[1;8HSco") || strings.Contains(got, "Scor") {
		t.Errorf("text should be clipped at the right edge: %q", got)
	}
	if !strings.Contains(got, "\033[2;1Hc") {
		t.Errorf("text should be clipped at the left edge: %q", got)
	}
	if strings.Contains(got, "hidden") {
		t.Error("rows outside the canvas should be dropped")
	}

	frame.Reset()
	c.Render(&frame)
	if !strings.Contains(frame.String(), "\033[1;8H   ") {
		t.Errorf("cells under text should be repainted: %q", frame.String())
	}
}

func TestChunkWriterAppliesOffset(t *testing.T) {
	c := NewScaledCanvas(10, 3, 10, 6)
	c.SetOffset(5, 2)
	var out bytes.Buffer
	cw := NewChunkWriter(&out, c)
	cw.WriteAt(1, 1, "x")
	cw.Flush()
	if !strings.Contains(out.String(), "\033[3;6Hx") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestClampTermSize(t *testing.T) {
	w, h, col, row := ClampTermSize(300, 100, 200, 60)
	if w != 200 || h != 60 || col != 50 || row != 20 {
		t.Errorf("got %d %d %d %d", w, h, col, row)
	}
	w, h, col, row = ClampTermSize(80, 24, 200, 60)
	if w != 80 || h != 24 || col != 0 || row != 0 {
		t.Errorf("small terminal should be used as is, got %d %d %d %d", w, h, col, row)
	}
}
