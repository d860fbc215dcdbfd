// Package tui is the interactive terminal studio: a bubbletea program that
// previews the live geometry on a braille canvas and binds the keyboard to
// the studio controls.
package tui

import (
	"math"
	"strings"

	"github.com/scottkirkwood/forma"
)

// brailleBase is the empty 2x4 dot cell; dot bits are ORed onto it.
const brailleBase = 0x2800

// Canvas is a terminal drawing surface at braille-dot resolution. A canvas
// of w x h character cells addresses 2w x 4h dots, (0,0) the top-left dot.
type Canvas struct {
	cells  []rune
	width  int
	height int
}

// NewCanvas returns a cleared canvas of width x height character cells.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		cells:  make([]rune, width*height),
		width:  width,
		height: height,
	}
	c.Clear()
	return c
}

// DotWidth is the horizontal dot resolution.
func (c *Canvas) DotWidth() int { return c.width * 2 }

// DotHeight is the vertical dot resolution.
func (c *Canvas) DotHeight() int { return c.height * 4 }

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = brailleBase
	}
}

// Set turns on the dot at (x, y). Out-of-range dots are dropped.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.width*2 || y >= c.height*4 {
		return
	}
	c.cells[(y/4)*c.width+x/2] |= rune(dotBit(x%2, y%4))
}

// dotBit maps a dot position inside one cell to its bit in the braille
// block: rows 0..2 carry bits 1, 2, 4 shifted by three for the right
// column, row 3 uses 0x40 and 0x80.
func dotBit(dx, dy int) int {
	if dy == 3 {
		if dx == 0 {
			return 0x40
		}
		return 0x80
	}
	return (1 << dy) << (dx * 3)
}

// DrawLine sets every dot on the segment from (x0, y0) to (x1, y1),
// endpoints included.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// String renders the canvas as height lines of width runes each.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow((c.width*3 + 1) * c.height) // braille runes take 3 bytes
	for row := 0; row < c.height; row++ {
		for col := 0; col < c.width; col++ {
			b.WriteRune(c.cells[row*c.width+col])
		}
		if row < c.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// dotMargin keeps geometry a couple of dots off the canvas edge.
const dotMargin = 2.0

// dotView maps world coordinates onto the dot grid with one uniform scale
// and a Y flip, world up becoming screen up. Braille dots render close to
// square in a terminal cell, so a single scale serves both axes.
type dotView struct {
	scale  float64
	center forma.Pt
	dw, dh int
}

// fitDots builds the view that centers b on a dw x dh dot grid.
func fitDots(b forma.Bounds, dw, dh int) dotView {
	v := dotView{scale: 1, dw: dw, dh: dh}
	if b.Empty() {
		return v
	}
	v.center = b.Center()
	availW := float64(dw) - 2*dotMargin
	availH := float64(dh) - 2*dotMargin
	if availW <= 0 || availH <= 0 {
		return v
	}
	sx, sy := math.Inf(1), math.Inf(1)
	if b.W() > 0 {
		sx = availW / b.W()
	}
	if b.H() > 0 {
		sy = availH / b.H()
	}
	if scale := math.Min(sx, sy); !math.IsInf(scale, 1) {
		v.scale = scale
	}
	return v
}

// dot maps one world point to dot coordinates.
func (v dotView) dot(p forma.Pt) (int, int) {
	x := float64(v.dw)/2 + (p.X-v.center.X)*v.scale
	y := float64(v.dh)/2 - (p.Y-v.center.Y)*v.scale
	return int(math.Round(x)), int(math.Round(y))
}
