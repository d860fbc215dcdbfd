package render

import (
	"image"

	"github.com/aquilax/go-perlin"
	"github.com/fogleman/gg"
	"github.com/scottkirkwood/forma"
	"github.com/scottkirkwood/forma/fractal"
	"github.com/scottkirkwood/forma/superformula"
)

const (
	grainScale = 1.0 / 90 // world pixels per noise unit
	grainAlpha = 0.04
)

// Paper clears dc to the paper color and, when seeded with grain, speckles
// it with perlin noise so large flat exports do not look sterile.
func Paper(dc *gg.Context, grain bool, seed int64) {
	dc.SetHexColor(paperColor)
	dc.Clear()
	if !grain {
		return
	}
	noise := perlin.NewPerlin(2, 2, 2, seed)
	w, h := dc.Width(), dc.Height()
	dc.SetRGBA(0.1, 0.1, 0.08, grainAlpha)
	for y := 0; y < h; y += 3 {
		for x := 0; x < w; x += 3 {
			if noise.Noise2D(float64(x)*grainScale, float64(y)*grainScale) > 0.18 {
				dc.DrawPoint(float64(x), float64(y), 1)
				dc.Fill()
			}
		}
	}
}

// RasterTree paints one tree frame at size pixels square.
func RasterTree(f fractal.Frame, size int, grain bool, seed int64) image.Image {
	dc := gg.NewContext(size, size)
	Paper(dc, grain, seed)

	scale := float64(size) / FrameSize
	v := TreeViewport(f.Params, float64(size), FrameMargin*scale)
	dc.SetLineCap(gg.LineCapRound)
	for _, s := range fractal.Generate(f) {
		a, b := v.Apply(s.From), v.Apply(s.To)
		dc.SetRGB(s.Color.R, s.Color.G, s.Color.B)
		dc.SetLineWidth(s.Width * scale)
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		dc.Stroke()
	}
	return dc.Image()
}

// RasterCurve paints a superformula curve at size pixels square.
func RasterCurve(p superformula.Params, size int, grain bool, seed int64) image.Image {
	dc := gg.NewContext(size, size)
	Paper(dc, grain, seed)

	pts := superformula.Eval(p, forma.Pt{}, 1)
	scale := float64(size) / FrameSize
	v := FitBounds(forma.BoundsOf(pts), float64(size), FrameMargin*scale)

	doc := v.ApplyAll(pts)
	dc.SetHexColor(inkColor)
	dc.SetLineWidth(curveStrokeWidth * scale)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.MoveTo(doc[0].X, doc[0].Y)
	for _, p := range doc[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	dc.Stroke()
	return dc.Image()
}
