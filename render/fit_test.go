package render

import (
	"math"
	"testing"

	"github.com/scottkirkwood/forma"
	"github.com/scottkirkwood/forma/fractal"
)

func TestFitBoundsWide(t *testing.T) {
	b := forma.Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 50}
	v := FitBounds(b, 500, 20)
	if math.Abs(v.Scale()-4.6) > 1e-9 {
		t.Fatalf("scale = %v, want 4.6 (width limited)", v.Scale())
	}
	lo := v.Apply(forma.Pt{X: 0, Y: 0})
	hi := v.Apply(forma.Pt{X: 100, Y: 50})
	// X fills margin to margin; Y centers and flips, so the world bottom
	// lands below the middle of the document.
	if math.Abs(lo.X-20) > 1e-9 || math.Abs(lo.Y-365) > 1e-9 {
		t.Errorf("low corner mapped to %v, want (20, 365)", lo)
	}
	if math.Abs(hi.X-480) > 1e-9 || math.Abs(hi.Y-135) > 1e-9 {
		t.Errorf("high corner mapped to %v, want (480, 135)", hi)
	}
}

func TestFitBoundsTall(t *testing.T) {
	b := forma.Bounds{MinX: 0, MinY: 0, MaxX: 50, MaxY: 100}
	v := FitBounds(b, 500, 20)
	if math.Abs(v.Scale()-4.6) > 1e-9 {
		t.Fatalf("scale = %v, want 4.6 (height limited)", v.Scale())
	}
	// Aspect preserved: the slim axis does not stretch to fill.
	lo := v.Apply(forma.Pt{X: 0, Y: 0})
	hi := v.Apply(forma.Pt{X: 50, Y: 100})
	if w := hi.X - lo.X; math.Abs(w-230) > 1e-9 {
		t.Errorf("mapped width = %v, want 230", w)
	}
	if h := lo.Y - hi.Y; math.Abs(h-460) > 1e-9 {
		t.Errorf("mapped height = %v, want 460", h)
	}
}

func TestFitYFlip(t *testing.T) {
	b := forma.Bounds{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}
	v := FitBounds(b, 500, 0)
	up := v.Apply(forma.Pt{X: 0, Y: 1})
	down := v.Apply(forma.Pt{X: 0, Y: -1})
	if up.Y >= down.Y {
		t.Errorf("world up should map above world down: up=%v down=%v", up, down)
	}
}

func TestFitDegenerateBounds(t *testing.T) {
	v := FitBounds(forma.EmptyBounds(), 500, 20)
	if got := v.Apply(forma.Pt{}); got != (forma.Pt{X: 250, Y: 250}) {
		t.Errorf("empty bounds: origin mapped to %v, want frame center", got)
	}

	single := forma.BoundsOf([]forma.Pt{{X: 3, Y: 4}})
	v = FitBounds(single, 500, 20)
	if got := v.Apply(forma.Pt{X: 3, Y: 4}); got != (forma.Pt{X: 250, Y: 250}) {
		t.Errorf("single point mapped to %v, want frame center", got)
	}
	if v.Scale() != 1 {
		t.Errorf("single point scale = %v, want 1", v.Scale())
	}
}

func TestTreeViewportContainsFullTree(t *testing.T) {
	p := fractal.DefaultParams()
	v := TreeViewport(p, FrameSize, FrameMargin)
	if v != TreeViewport(p, FrameSize, FrameMargin) {
		t.Fatalf("viewport not deterministic for identical params")
	}
	for _, s := range fractal.Generate(fractal.Frame{Params: p, Growth: 1}) {
		for _, pt := range []forma.Pt{v.Apply(s.From), v.Apply(s.To)} {
			if pt.X < 0 || pt.X > FrameSize || pt.Y < 0 || pt.Y > FrameSize {
				t.Fatalf("full grown point outside the frame: %v", pt)
			}
		}
	}
}
