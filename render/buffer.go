package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is a single terminal cell in the frame buffer
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is the off-screen cell grid composed each frame and flushed to the
// terminal in one pass
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates a buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height
func (b *Buffer) Height() int { return b.height }

// Resize reallocates the grid; content is discarded since every renderer
// redraws the full frame anyway
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b.width = width
	b.height = height
	b.cells = make([]Cell, width*height)
}

// Clear fills the whole buffer with the given rune and style
func (b *Buffer) Clear(r rune, style tcell.Style) {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: r, Style: style}
	}
}

// Set writes one cell; out-of-bounds writes are dropped
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get reads one cell; out-of-bounds reads return the zero cell
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Text writes a string left-to-right from (x, y)
func (b *Buffer) Text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		b.Set(x+i, y, r, style)
	}
}

// TextCentered writes a string centered on cx
func (b *Buffer) TextCentered(cx, y int, s string, style tcell.Style) {
	rs := []rune(s)
	b.Text(cx-len(rs)/2, y, s, style)
}

// FillRect fills the rectangle [x, x+w) × [y, y+h)
func (b *Buffer) FillRect(x, y, w, h int, r rune, style tcell.Style) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			b.Set(xx, yy, r, style)
		}
	}
}

// Flush pushes the buffer to the terminal and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, c.Style)
		}
	}
	screen.Show()
}
