package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes to write at once. It stays under a
// typical MTU so frames flow smoothly over SSH.
const maxChunkSize = 1400

// ChunkWriter accumulates a frame of terminal output and writes it in chunks.
// Text placed with WriteAt is reported to the attached canvas so the cells
// under it are repainted on the next frame.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte
	canvas *Canvas
}

// NewChunkWriter creates a ChunkWriter that writes to w and positions text
// relative to canvas.
func NewChunkWriter(w io.Writer, canvas *Canvas) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		canvas: canvas,
	}
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based
// canvas coordinates; the canvas offset is applied automatically.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.canvas.OffsetRow()), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.canvas.OffsetCol()), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer so the canvas can render into the frame.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends raw output, escape sequences included.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteAt writes plain text at a 1-based canvas position. Text falling
// outside the canvas is clipped.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.WriteColorAt(col, row, s, ColorNone)
}

// WriteColorAt is WriteAt with a foreground color.
func (cw *ChunkWriter) WriteColorAt(col, row int, s string, color Color) {
	width := cw.canvas.TerminalWidth()
	if row < 1 || row > cw.canvas.TerminalHeight() || col > width {
		return
	}
	if col < 1 {
		s = skipRunes(s, 1-col)
		col = 1
	}
	if n := utf8.RuneCountInString(s); col+n-1 > width {
		s = string([]rune(s)[:width-col+1])
	}
	if s == "" {
		return
	}

	cw.MoveCursor(col, row)
	if color != ColorNone {
		cw.buf.WriteString(color.Fg())
	}
	cw.buf.WriteString(s)
	if color != ColorNone {
		cw.buf.WriteString(ColorReset)
	}
	cw.canvas.MarkTextDirty(col, row, utf8.RuneCountInString(s))
}

func skipRunes(s string, n int) string {
	for range n {
		if s == "" {
			return s
		}
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
	}
	return s
}

// Ensure ChunkWriter satisfies io.Writer.
var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated frame to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClampTermSize clamps terminal dimensions to the max render resolution and
// computes the offset that centres the render area.
func ClampTermSize(termWidth, termHeight, maxWidth, maxHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, maxWidth)
	renderHeight = min(termHeight, maxHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	io.WriteString(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	io.WriteString(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	io.WriteString(w, "\033[?25h")
}
