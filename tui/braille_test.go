package tui

import (
	"testing"

	"github.com/scottkirkwood/forma"
)

func TestDotBit(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   int
	}{
		{0, 0, 0x01},
		{1, 0, 0x08},
		{0, 1, 0x02},
		{1, 1, 0x10},
		{0, 2, 0x04},
		{1, 2, 0x20},
		{0, 3, 0x40},
		{1, 3, 0x80},
	}
	for _, tt := range tests {
		if got := dotBit(tt.dx, tt.dy); got != tt.want {
			t.Errorf("dotBit(%d, %d) = %#x, want %#x", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	want := string([]rune{brailleBase | 0x01, brailleBase | 0x80})
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCanvasSetOutOfRange(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)
	c.Set(0, -1)
	want := string([]rune{brailleBase, brailleBase})
	if got := c.String(); got != want {
		t.Errorf("out of range dots landed: %q", got)
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 2)
	c.DrawLine(0, 0, 5, 7)
	c.Clear()
	for _, r := range c.cells {
		if r != brailleBase {
			t.Fatalf("cell %#x survived Clear", r)
		}
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0)
	want := string([]rune{
		brailleBase | 0x09, brailleBase | 0x09,
		brailleBase | 0x09, brailleBase | 0x09,
	})
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDrawLineVertical(t *testing.T) {
	c := NewCanvas(1, 1)
	c.DrawLine(0, 0, 0, 3)
	want := string([]rune{brailleBase | 0x47})
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	c := NewCanvas(2, 1)
	c.DrawLine(0, 0, 3, 3)
	// dots (0,0) (1,1) (2,2) (3,3)
	want := string([]rune{brailleBase | 0x11, brailleBase | 0x84})
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func dotOn(c *Canvas, x, y int) bool {
	return c.cells[(y/4)*c.width+x/2]&rune(dotBit(x%2, y%4)) != 0
}

func TestDrawLineEndpoints(t *testing.T) {
	lines := [][4]int{
		{1, 1, 6, 7},
		{6, 7, 1, 1},
		{0, 5, 7, 2},
		{3, 3, 3, 3},
	}
	for _, l := range lines {
		c := NewCanvas(4, 2)
		c.DrawLine(l[0], l[1], l[2], l[3])
		if !dotOn(c, l[0], l[1]) || !dotOn(c, l[2], l[3]) {
			t.Errorf("DrawLine%v dropped an endpoint", l)
		}
	}
}

func TestStringShape(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := 1
	for _, r := range c.String() {
		if r == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Errorf("String() has %d lines, want 2", lines)
	}
}

func TestFitDotsSquare(t *testing.T) {
	b := forma.BoundsOf([]forma.Pt{{X: 0, Y: 0}, {X: 10, Y: 10}})
	v := fitDots(b, 24, 24)
	if v.scale != 2 {
		t.Fatalf("scale = %v, want 2", v.scale)
	}
	tests := []struct {
		world        forma.Pt
		wantX, wantY int
	}{
		{forma.Pt{X: 5, Y: 5}, 12, 12},
		{forma.Pt{X: 0, Y: 0}, 2, 22}, // world up is screen up
		{forma.Pt{X: 10, Y: 10}, 22, 2},
	}
	for _, tt := range tests {
		x, y := v.dot(tt.world)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("dot(%v) = (%d, %d), want (%d, %d)", tt.world, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestFitDotsWide(t *testing.T) {
	b := forma.BoundsOf([]forma.Pt{{X: 0, Y: 0}, {X: 20, Y: 10}})
	v := fitDots(b, 24, 24)
	if v.scale != 1 {
		t.Errorf("scale = %v, want the tight axis to win with 1", v.scale)
	}
}

func TestFitDotsDegenerate(t *testing.T) {
	v := fitDots(forma.EmptyBounds(), 40, 20)
	if v.scale != 1 {
		t.Errorf("empty bounds scale = %v, want 1", v.scale)
	}
	if x, y := v.dot(forma.Pt{}); x != 20 || y != 10 {
		t.Errorf("origin lands at (%d, %d), want mid grid", x, y)
	}

	point := forma.BoundsOf([]forma.Pt{{X: 3, Y: 4}})
	v = fitDots(point, 40, 20)
	if v.scale != 1 {
		t.Errorf("single point scale = %v, want 1", v.scale)
	}
	if x, y := v.dot(forma.Pt{X: 3, Y: 4}); x != 20 || y != 10 {
		t.Errorf("point lands at (%d, %d), want mid grid", x, y)
	}
}
