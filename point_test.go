package forma

import (
	"math"
	"testing"
)

const testEps = 1e-9

func approxPt(a, b Pt) bool {
	return math.Abs(a.X-b.X) <= testEps && math.Abs(a.Y-b.Y) <= testEps
}

func TestPolar(t *testing.T) {
	tests := []struct {
		from     Pt
		r, angle float64
		want     Pt
	}{
		{Pt{0, 0}, 1, 0, Pt{1, 0}},
		{Pt{0, 0}, 2, math.Pi / 2, Pt{0, 2}},
		{Pt{1, 1}, 1, math.Pi, Pt{0, 1}},
		{Pt{3, 4}, 0, 1.234, Pt{3, 4}},
	}
	for _, tt := range tests {
		if got := tt.from.Polar(tt.r, tt.angle); !approxPt(got, tt.want) {
			t.Errorf("%v.Polar(%v, %v) = %v, want %v", tt.from, tt.r, tt.angle, got, tt.want)
		}
	}
}

func TestDist(t *testing.T) {
	if got := (Pt{0, 0}).Dist(Pt{3, 4}); math.Abs(got-5) > testEps {
		t.Errorf("Dist = %v, want 5", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !(Pt{1, -2}).IsFinite() {
		t.Errorf("Pt{1,-2} should be finite")
	}
	if (Pt{math.NaN(), 0}).IsFinite() {
		t.Errorf("NaN point should not be finite")
	}
	if (Pt{0, math.Inf(1)}).IsFinite() {
		t.Errorf("Inf point should not be finite")
	}
}

func TestBounds(t *testing.T) {
	b := BoundsOf([]Pt{{1, 2}, {-3, 5}, {4, -1}})
	want := Bounds{MinX: -3, MinY: -1, MaxX: 4, MaxY: 5}
	if b != want {
		t.Errorf("BoundsOf = %+v, want %+v", b, want)
	}
	if got := b.W(); got != 7 {
		t.Errorf("W = %v, want 7", got)
	}
	if got := b.H(); got != 6 {
		t.Errorf("H = %v, want 6", got)
	}
	if got := b.Center(); !approxPt(got, Pt{0.5, 2}) {
		t.Errorf("Center = %v, want (0.5, 2)", got)
	}
	if got := b.Pad(1); got != (Bounds{-4, -2, 5, 6}) {
		t.Errorf("Pad(1) = %+v", got)
	}
}

func TestEmptyBounds(t *testing.T) {
	b := EmptyBounds()
	if !b.Empty() {
		t.Errorf("EmptyBounds should be empty")
	}
	if b.W() != 0 || b.H() != 0 {
		t.Errorf("empty bounds should have zero extent, got %v x %v", b.W(), b.H())
	}
	b.Extend(Pt{2, 3})
	if b.Empty() {
		t.Errorf("bounds with a point should not be empty")
	}
	if b.W() != 0 || b.H() != 0 {
		t.Errorf("single point bounds should have zero extent")
	}
}
