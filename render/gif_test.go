package render

import (
	"bytes"
	"testing"

	"github.com/scottkirkwood/forma/fractal"
)

func TestGrowthGIFFrameCount(t *testing.T) {
	p := fractal.Params{Angle: 25, Depth: 3, LengthMultiplier: 0.7, BranchCount: 2}
	tests := []struct {
		frames int
		wind   bool
		want   int
	}{
		{10, false, 10},
		{10, true, 15}, // half-length sway tail after full growth
		{0, false, 2},  // degenerate request still yields a ramp
	}
	for _, tt := range tests {
		g := GrowthGIF(p, tt.frames, 48, tt.wind)
		if len(g.Image) != tt.want {
			t.Errorf("GrowthGIF(frames=%d, wind=%v) has %d frames, want %d",
				tt.frames, tt.wind, len(g.Image), tt.want)
		}
		if len(g.Delay) != len(g.Image) {
			t.Errorf("delay count %d does not match frame count %d", len(g.Delay), len(g.Image))
		}
		if g.LoopCount != 0 {
			t.Errorf("LoopCount = %d, want 0 (loop forever)", g.LoopCount)
		}
	}
}

func TestGrowthGIFFrames(t *testing.T) {
	p := fractal.DefaultParams()
	p.Depth = 3
	const size = 48
	g := GrowthGIF(p, 6, size, false)

	for i, frame := range g.Image {
		b := frame.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Fatalf("frame %d is %dx%d, want %dx%d", i, b.Dx(), b.Dy(), size, size)
		}
		if len(frame.Palette) > 256 {
			t.Fatalf("frame %d palette has %d colors, not encodable", i, len(frame.Palette))
		}
	}
	for i, d := range g.Delay {
		if d <= 0 {
			t.Errorf("frame %d delay = %d, want positive", i, d)
		}
	}
	first, last := g.Image[0], g.Image[len(g.Image)-1]
	if bytes.Equal(first.Pix, last.Pix) {
		t.Errorf("first and final frames are identical, growth ramp did not draw")
	}
}
