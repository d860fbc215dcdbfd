package fractal

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/scottkirkwood/forma"
)

func grownFrame(p Params) Frame {
	return Frame{Params: p, Growth: 1}
}

func TestSegmentCount(t *testing.T) {
	tests := []struct {
		branches, depth, want int
	}{
		{2, 0, 1},
		{2, 1, 3},
		{2, 3, 15},
		{2, 9, 1023},
		{3, 0, 1},
		{3, 1, 4},
		{3, 2, 13},
		{3, 15, 21523360},
	}
	for _, tt := range tests {
		if got := SegmentCount(tt.branches, tt.depth); got != tt.want {
			t.Errorf("SegmentCount(%d, %d) = %d, want %d", tt.branches, tt.depth, got, tt.want)
		}
	}
}

func TestGenerateCounts(t *testing.T) {
	for _, branches := range []int{2, 3} {
		for depth := 1; depth <= 6; depth++ {
			p := DefaultParams()
			p.BranchCount = branches
			p.Depth = depth
			segs := Generate(grownFrame(p))
			if want := SegmentCount(branches, depth); len(segs) != want {
				t.Errorf("branches=%d depth=%d: %d segments, want %d",
					branches, depth, len(segs), want)
			}
		}
	}
}

func TestTrunkOnly(t *testing.T) {
	for _, branches := range []int{2, 3} {
		p := DefaultParams()
		p.BranchCount = branches
		p.Depth = 0
		segs := Generate(grownFrame(p))
		if len(segs) != 1 {
			t.Fatalf("branches=%d: depth 0 yielded %d segments, want the trunk only",
				branches, len(segs))
		}
		if segs[0].From != (forma.Pt{}) {
			t.Errorf("trunk not rooted at the origin: %v", segs[0].From)
		}
	}
}

func TestTrunkPointsUp(t *testing.T) {
	segs := Generate(grownFrame(DefaultParams()))
	trunk := segs[0]
	if trunk.Depth != 0 {
		t.Fatalf("first segment has depth %d, want the trunk", trunk.Depth)
	}
	if math.Abs(trunk.To.X) > 1e-9 || math.Abs(trunk.To.Y-BaseLength) > 1e-9 {
		t.Errorf("trunk tip = %v, want (0, %v)", trunk.To, BaseLength)
	}
}

func TestGrowthZeroDegenerate(t *testing.T) {
	p := DefaultParams()
	p.Depth = 4
	for _, seg := range Generate(Frame{Params: p}) {
		if seg.From != seg.To {
			t.Fatalf("growth 0 should collapse every segment, got %v -> %v",
				seg.From, seg.To)
		}
	}
}

func TestGrowthSaturates(t *testing.T) {
	p := DefaultParams()
	p.Depth = 5
	// growth of 2/depth pushes the scale min(1, g*depth/2) to exactly 1,
	// so every branch draws its full length.
	f := Frame{Params: p, Growth: 2 / float64(p.Depth)}
	for _, seg := range Generate(f) {
		want := BaseLength * math.Pow(p.LengthMultiplier, float64(seg.Depth))
		if got := seg.From.Dist(seg.To); math.Abs(got-want) > 1e-6 {
			t.Fatalf("depth %d segment length %v, want %v", seg.Depth, got, want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := DefaultParams()
	p.Depth = 5
	f := Frame{Params: p, Growth: 0.4, Wind: true, Time: 3.7}
	if diff := cmp.Diff(Generate(f), Generate(f)); diff != "" {
		t.Errorf("same frame generated different trees:\n%s", diff)
	}
}

func TestWindSwaysTipsNotTrunk(t *testing.T) {
	p := DefaultParams()
	p.Depth = 4
	a := Generate(Frame{Params: p, Growth: 1, Wind: true, Time: 1})
	b := Generate(Frame{Params: p, Growth: 1, Wind: true, Time: 2})

	if a[0] != b[0] {
		t.Errorf("trunk moved with wind: %v vs %v", a[0], b[0])
	}
	last := len(a) - 1
	if a[last].To == b[last].To {
		t.Errorf("deepest tip did not sway between times: %v", a[last].To)
	}
}

func TestWindOffDisablesSway(t *testing.T) {
	p := DefaultParams()
	p.Depth = 3
	a := Generate(Frame{Params: p, Growth: 1, Time: 1})
	b := Generate(Frame{Params: p, Growth: 1, Time: 100})
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("time leaked into a wind-off tree:\n%s", diff)
	}
}

func TestGenerateFiniteHostileParams(t *testing.T) {
	frames := []Frame{
		{Params: Params{Angle: math.NaN(), Depth: 3, LengthMultiplier: 0.5, BranchCount: 2}, Growth: 1},
		{Params: Params{Angle: math.Inf(1), Depth: 3, LengthMultiplier: 2, BranchCount: 7}, Growth: 5},
		{Params: Params{Angle: -400, Depth: -2, LengthMultiplier: -1, BranchCount: 0}, Growth: math.NaN()},
	}
	for i, f := range frames {
		for j, seg := range Generate(f) {
			if !seg.From.IsFinite() || !seg.To.IsFinite() {
				t.Fatalf("frame %d segment %d not finite: %+v", i, j, seg)
			}
		}
	}
}

func TestBudgetDepth(t *testing.T) {
	tests := []struct {
		branches, depth, want int
	}{
		{3, 10, 10},
		{3, 15, 15}, // exactly the ceiling
		{3, 16, 15},
		{3, 40, 15},
		{2, 15, 15},
		{2, 40, 23}, // binary trees fit deeper under the same budget
	}
	for _, tt := range tests {
		if got := budgetDepth(tt.branches, tt.depth); got != tt.want {
			t.Errorf("budgetDepth(%d, %d) = %d, want %d",
				tt.branches, tt.depth, got, tt.want)
		}
	}
}

func TestColorPolicy(t *testing.T) {
	if got, want := DepthColor(0, 10), colorful.Hsl(baseHue, saturation, baseLight); got != want {
		t.Errorf("trunk color %v, want %v", got, want)
	}
	if got, want := DepthColor(10, 10), colorful.Hsl(tipHue, saturation, tipLight); got != want {
		t.Errorf("tip color %v, want %v", got, want)
	}
	mid := colorful.Hsl(
		forma.Lerp(baseHue, tipHue, 0.5),
		saturation,
		forma.Lerp(baseLight, tipLight, 0.5))
	if got := DepthColor(5, 10); got != mid {
		t.Errorf("midway color %v, want %v", got, mid)
	}
}

func TestWidthPolicy(t *testing.T) {
	if got := DepthWidth(0, 10); got != TrunkWidth {
		t.Errorf("trunk width %v, want %v", got, TrunkWidth)
	}
	if got := DepthWidth(5, 10); got != TrunkWidth/2 {
		t.Errorf("midway width %v, want %v", got, TrunkWidth/2)
	}
	if got := DepthWidth(10, 10); got != MinWidth {
		t.Errorf("tip width %v, want the %v floor", got, MinWidth)
	}
}

func TestClampedParams(t *testing.T) {
	p := Params{Angle: 120, Depth: 40, LengthMultiplier: 1.5, BranchCount: 9}
	want := Params{Angle: MaxAngle, Depth: MaxDepth, LengthMultiplier: maxMultiplier, BranchCount: 3}
	if diff := cmp.Diff(want, p.Clamped()); diff != "" {
		t.Errorf("Clamped mismatch (-want +got):\n%s", diff)
	}
}
