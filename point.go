// Package forma holds the shared geometry and file plumbing for the forma
// design studio.
package forma

import (
	"math"
)

// Pt is a point or direction vector in 2D cartesian space.
type Pt struct {
	X, Y float64
}

// P constructs a Pt from its coordinates.
func P(x, y float64) Pt {
	return Pt{X: x, Y: y}
}

// Add returns p translated by q.
func (p Pt) Add(q Pt) Pt {
	return Pt{p.X + q.X, p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Pt) Sub(q Pt) Pt {
	return Pt{p.X - q.X, p.Y - q.Y}
}

// Scale returns p with both coordinates multiplied by s.
func (p Pt) Scale(s float64) Pt {
	return Pt{p.X * s, p.Y * s}
}

// Polar returns the point r units away from p along heading angle (radians).
func (p Pt) Polar(r, angle float64) Pt {
	sin, cos := math.Sincos(angle)
	return Pt{p.X + r*cos, p.Y + r*sin}
}

// Dist returns the euclidean distance between p and q.
func (p Pt) Dist(q Pt) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// IsFinite reports whether both coordinates are real numbers.
func (p Pt) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Bounds is an axis-aligned box accumulated from points.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyBounds returns a Bounds that the first Extend collapses onto its point.
func EmptyBounds() Bounds {
	return Bounds{
		MinX: math.MaxFloat64, MinY: math.MaxFloat64,
		MaxX: -math.MaxFloat64, MaxY: -math.MaxFloat64,
	}
}

// BoundsOf accumulates the bounding box of pts.
func BoundsOf(pts []Pt) Bounds {
	b := EmptyBounds()
	for _, p := range pts {
		b.Extend(p)
	}
	return b
}

// Extend grows b to include p.
func (b *Bounds) Extend(p Pt) {
	b.MinX = math.Min(b.MinX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MaxY = math.Max(b.MaxY, p.Y)
}

// Union grows b to include all of o.
func (b *Bounds) Union(o Bounds) {
	if o.Empty() {
		return
	}
	b.Extend(Pt{o.MinX, o.MinY})
	b.Extend(Pt{o.MaxX, o.MaxY})
}

// Empty reports whether no point has been added yet.
func (b Bounds) Empty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// W is the width of the box, zero when empty.
func (b Bounds) W() float64 {
	if b.Empty() {
		return 0
	}
	return b.MaxX - b.MinX
}

// H is the height of the box, zero when empty.
func (b Bounds) H() float64 {
	if b.Empty() {
		return 0
	}
	return b.MaxY - b.MinY
}

// Center returns the middle of the box.
func (b Bounds) Center() Pt {
	return Pt{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

// Pad returns b grown by m on every side.
func (b Bounds) Pad(m float64) Bounds {
	if b.Empty() {
		return b
	}
	return Bounds{b.MinX - m, b.MinY - m, b.MaxX + m, b.MaxY + m}
}
