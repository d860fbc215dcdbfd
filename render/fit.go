// Package render turns the studio's world-space geometry into documents:
// SVG markup, raster frames, and animated growth GIFs, all inside the fixed
// 500x500 logical frame.
package render

import (
	"math"

	"github.com/scottkirkwood/forma"
	"github.com/scottkirkwood/forma/fractal"
)

const (
	// FrameSize is the logical side of every exported document.
	FrameSize = 500
	// FrameMargin keeps geometry off the document edge.
	FrameMargin = 20
)

// Viewport maps world coordinates onto a square document frame with one
// uniform scale (aspect preserving) and a Y flip, world up becoming
// document up.
type Viewport struct {
	scale  float64
	center forma.Pt // world point that lands mid-frame
	size   float64  // document side length
}

// FitBounds builds the viewport that centers b inside a size by size frame,
// leaving margin document units of breathing room on the tight axis.
func FitBounds(b forma.Bounds, size, margin float64) Viewport {
	v := Viewport{scale: 1, size: size}
	if b.Empty() {
		return v
	}
	v.center = b.Center()
	avail := size - 2*margin
	if avail <= 0 {
		avail = size
	}
	sx, sy := math.Inf(1), math.Inf(1)
	if b.W() > 0 {
		sx = avail / b.W()
	}
	if b.H() > 0 {
		sy = avail / b.H()
	}
	if scale := math.Min(sx, sy); !math.IsInf(scale, 1) {
		v.scale = scale
	}
	return v
}

// Apply maps one world point into document coordinates.
func (v Viewport) Apply(p forma.Pt) forma.Pt {
	return forma.Pt{
		X: v.size/2 + (p.X-v.center.X)*v.scale,
		Y: v.size/2 - (p.Y-v.center.Y)*v.scale,
	}
}

// ApplyAll maps a whole polyline.
func (v Viewport) ApplyAll(pts []forma.Pt) []forma.Pt {
	out := make([]forma.Pt, len(pts))
	for i, p := range pts {
		out[i] = v.Apply(p)
	}
	return out
}

// Scale is the world-to-document multiplier.
func (v Viewport) Scale() float64 {
	return v.scale
}

// SegmentsBounds accumulates the box around every segment endpoint.
func SegmentsBounds(segs []fractal.Segment) forma.Bounds {
	b := forma.EmptyBounds()
	for _, s := range segs {
		b.Extend(s.From)
		b.Extend(s.To)
	}
	return b
}

// TreeViewport fits the fully grown, wind-still tree for p, so every frame
// of a growth or sway animation shares one stable mapping instead of
// re-zooming as the geometry moves.
func TreeViewport(p fractal.Params, size, margin float64) Viewport {
	full := fractal.Generate(fractal.Frame{Params: p, Growth: 1})
	return FitBounds(SegmentsBounds(full), size, margin)
}
