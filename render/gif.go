package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/scottkirkwood/forma"
	"github.com/scottkirkwood/forma/fractal"
)

const (
	gifFrameDelay = 4    // hundredths of a second per frame
	tickRate      = 60.0 // animation ticks per second of wind time
)

// GrowthGIF renders the grow-out ramp as a looping animation. frames are
// spread evenly over growth 0..1; when wind is on, a half-length tail of
// sway-only frames follows the fully grown tree and the wind clock runs at
// the pace the live animation would have produced.
func GrowthGIF(p fractal.Params, frames, size int, wind bool) *gif.GIF {
	if frames < 2 {
		frames = 2
	}
	p = p.Clamped()
	pal := treePalette(p)
	// One tick advances growth by GrowthStep, so the full ramp spans
	// 1/GrowthStep ticks of wind time.
	rampSeconds := 1 / fractal.GrowthStep / tickRate

	out := &gif.GIF{}
	addFrame := func(growth, time float64) {
		img := RasterTree(fractal.Frame{Params: p, Growth: growth, Wind: wind, Time: time}, size, false, 0)
		paletted := image.NewPaletted(img.Bounds(), pal)
		draw.FloydSteinberg.Draw(paletted, img.Bounds(), img, image.Point{})
		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, gifFrameDelay)
	}

	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		addFrame(t, t*rampSeconds)
	}
	if wind {
		for i := 1; i <= frames/2; i++ {
			addFrame(1, rampSeconds+float64(i)*gifFrameDelay/100)
		}
	}
	return out
}

// treePalette collects the exact depth colors plus paper tones, giving the
// dither a tight palette instead of a generic 256 color cube.
func treePalette(p fractal.Params) color.Palette {
	pal := color.Palette{}
	if paper, err := colorful.Hex(paperColor); err == nil {
		pal = append(pal, paper)
	}
	if ink, err := colorful.Hex(inkColor); err == nil {
		pal = append(pal, ink)
	}
	maxDepth := forma.ClampInt(p.Depth, 0, fractal.MaxDepth)
	for d := 0; d <= maxDepth; d++ {
		c := fractal.DepthColor(d, maxDepth)
		pal = append(pal, c)
		// A darker shade per depth helps the dithered antialiasing edges.
		pal = append(pal, colorful.Color{R: c.R * 0.6, G: c.G * 0.6, B: c.B * 0.6})
	}
	pal = append(pal, color.White, color.Black)
	return pal
}
