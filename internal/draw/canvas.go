package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// cell is what one terminal character shows.
type cell struct {
	ch     rune
	fg, bg Color
}

// dirty never matches a real cell, forcing a repaint.
var dirty = cell{ch: -1}

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
// Render only emits the cells that changed since the previous frame.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]
	shown          []cell  // What the terminal currently displays

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight
	shift         Point   // Logical offset added to every coordinate (screen shake)

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth, termHeight = max(termWidth, 1), max(termHeight, 1)
	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]Color, c.subPixelHeight*termWidth)
		c.shown = make([]cell, termHeight*termWidth)
		c.ForceRedraw()
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// SetShift moves everything drawn afterwards by d logical units.
func (c *Canvas) SetShift(d Point) {
	c.shift = d
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render repaint every cell, used after the
// terminal was cleared or resized.
func (c *Canvas) ForceRedraw() {
	for i := range c.shown {
		c.shown[i] = dirty
	}
}

// MarkTextDirty records that text overwrote n cells starting at the 1-based
// canvas position (col, row), so the next Render restores them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	row--
	if row < 0 || row >= c.termHeight {
		return
	}
	for x := max(col-1, 0); x < min(col-1+n, c.termWidth); x++ {
		c.shown[row*c.termWidth+x] = dirty
	}
}

// toPixel converts a logical coordinate to fractional pixel space.
func (c *Canvas) toPixel(p Point) (float64, float64) {
	return (p.X + c.shift.X) * c.scaleX, (p.Y + c.shift.Y) * c.scaleY
}

func (c *Canvas) setPixel(x, y int, color Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = color
	}
}

// Pixel returns the color at pixel coordinates, ColorNone when outside.
func (c *Canvas) Pixel(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return ColorNone
	}
	return c.pixels[y*c.termWidth+x]
}

// Set plots a single logical point.
func (c *Canvas) Set(p Point, color Color) {
	x, y := c.toPixel(p)
	c.setPixel(int(math.Round(x)), int(math.Round(y)), color)
}

// Dot plots a square of roughly size logical units, at least one pixel.
func (c *Canvas) Dot(p Point, size float64, color Color) {
	x, y := c.toPixel(p)
	w := max(1, int(math.Round(size*c.scaleX)))
	h := max(1, int(math.Round(size*c.scaleY)))
	x0 := int(math.Round(x)) - w/2
	y0 := int(math.Round(y)) - h/2
	for dy := range h {
		for dx := range w {
			c.setPixel(x0+dx, y0+dy, color)
		}
	}
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, color Color) {
	fx1, fy1 := c.toPixel(p1)
	fx2, fy2 := c.toPixel(p2)
	x1, y1 := int(math.Round(fx1)), int(math.Round(fy1))
	x2, y2 := int(math.Round(fx2)), int(math.Round(fy2))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1, color)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed polygon, filling the interior when filled is set.
func (c *Canvas) DrawPolygon(points []Point, color Color, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points, color)
	}
	n := len(points)
	for i := range n {
		c.DrawLine(points[i], points[(i+1)%n], color)
	}
}

// DrawCircle draws a circle outline, or a disc when filled is set.
func (c *Canvas) DrawCircle(center Point, radius float64, color Color, filled bool) {
	if radius <= 0 {
		c.Set(center, color)
		return
	}
	// Enough segments that each one spans about two pixels.
	circumference := 2 * math.Pi * radius * max(c.scaleX, c.scaleY)
	n := min(max(int(circumference/2), 8), 96)

	pts := c.BorrowPoints(n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	c.DrawPolygon(pts, color, filled)
}

// fillPolygon fills a polygon using the scanline algorithm in pixel space.
func (c *Canvas) fillPolygon(points []Point, color Color) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i].X, scaled[i].Y = c.toPixel(p)
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5
		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := range n {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, color)
			}
		}
	}
}

// cellAt folds the two pixels of a terminal cell into one character.
func (c *Canvas) cellAt(row, col int) cell {
	top := c.pixels[row*2*c.termWidth+col]
	bottom := c.pixels[(row*2+1)*c.termWidth+col]

	switch {
	case top == ColorNone && bottom == ColorNone:
		return cell{ch: BlockEmpty}
	case top == bottom:
		return cell{ch: BlockFull, fg: top}
	case bottom == ColorNone:
		return cell{ch: BlockUpperHalf, fg: top}
	case top == ColorNone:
		return cell{ch: BlockLowerHalf, fg: bottom}
	default:
		return cell{ch: BlockUpperHalf, fg: top, bg: bottom}
	}
}

// Render writes the cells that changed since the last Render.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	var fg, bg Color
	c.renderBuf.WriteString(ColorReset)
	for row := range c.termHeight {
		cursorCol := -1 // Column the terminal cursor sits on, -1 when unknown
		for col := range c.termWidth {
			cur := c.cellAt(row, col)
			idx := row*c.termWidth + col
			if c.shown[idx] == cur {
				continue
			}
			c.shown[idx] = cur

			if cursorCol != col {
				c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			if cur.fg != fg {
				c.renderBuf.WriteString(cur.fg.Fg())
				fg = cur.fg
			}
			if cur.bg != bg {
				c.renderBuf.WriteString(cur.bg.Bg())
				bg = cur.bg
			}
			c.renderBuf.WriteRune(cur.ch)
			cursorCol = col + 1
		}
	}
	c.renderBuf.WriteString(ColorReset)

	io.WriteString(w, c.renderBuf.String())
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	c.renderBuf.Reset()
	c.renderBuf.WriteString(fgCodes[ColorDarkGray])
	if hasV {
		if hasH {
			c.moveCursor(left, top)
			c.renderBuf.WriteString("┌" + line + "┐")
			c.moveCursor(left, bottom)
			c.renderBuf.WriteString("└" + line + "┘")
		} else {
			c.moveCursor(c.offsetCol+1, top)
			c.renderBuf.WriteString(line)
			c.moveCursor(c.offsetCol+1, bottom)
			c.renderBuf.WriteString(line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			c.moveCursor(left, row)
			c.renderBuf.WriteString("│")
			c.moveCursor(right, row)
			c.renderBuf.WriteString("│")
		}
	}
	c.renderBuf.WriteString(ColorReset)
	io.WriteString(w, c.renderBuf.String())
}

// LogicalWidth returns the logical width (target resolution).
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height.
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based canvas position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(p Point) (col, row int) {
	x, y := c.toPixel(p)
	return int(math.Round(x)) + 1, int(math.Round(y))/2 + 1
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
