// Package fractal grows the studio's recursive branching trees: a trunk at
// the origin splitting into two or three children per level, with a uniform
// grow-outward animation and a depth-weighted wind sway.
package fractal

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/scottkirkwood/forma"
)

const (
	BaseLength = 110.0 // trunk length, world units
	TrunkWidth = 10.0  // stroke width at depth 0
	MinWidth   = 0.5   // tips never get thinner than this

	baseHue    = 160.0 // degrees at the trunk
	tipHue     = 200.0 // degrees at the deepest tips
	saturation = 0.65
	baseLight  = 0.50
	tipLight   = 0.30

	windFreq = 2.0 // sway cycles scale, per second of wind time
	windAmpl = 0.6 // degrees of sway per depth unit
)

// Segment is one directed branch of the tree.
type Segment struct {
	From, To forma.Pt
	Depth    int // 0 = trunk
	Color    colorful.Color
	Width    float64
}

// Frame is the immutable snapshot handed to Generate: parameters plus the
// animation inputs. Passing it by value keeps the same call usable from the
// live tick loop and from offline export.
type Frame struct {
	Params Params
	Growth float64 // 0..1 fraction of the grow-out animation
	Wind   bool
	Time   float64 // seconds of accumulated wind clock
}

// branch is one pending walk entry on the explicit work stack.
type branch struct {
	origin forma.Pt
	angle  float64 // heading in radians
	length float64 // full (ungrown) length in world units
	remain int     // levels left below this one
	depth  int     // 0 = trunk
}

// Generate walks the tree with an explicit work stack (deep ternary trees
// would otherwise eat the call stack) and returns every segment, trunk
// first. The trunk roots at the origin pointing up; callers map world
// coordinates onto their output frame.
//
// The walk never fails: hostile parameters clamp, a segment budget caps the
// effective depth, and every emitted coordinate is finite.
func Generate(f Frame) []Segment {
	p := f.Params
	p.Angle = forma.Clamp(p.Angle, 0, MaxAngle)
	p.LengthMultiplier = forma.Clamp(p.LengthMultiplier, minMultiplier, maxMultiplier)
	p.BranchCount = forma.ClampInt(p.BranchCount, 2, 3)
	if p.Depth < 0 {
		p.Depth = 0
	}
	depth := budgetDepth(p.BranchCount, p.Depth)

	// Growth scales every branch at once: the tree expands outward
	// uniformly instead of revealing one level at a time.
	growScale := math.Min(1, forma.Clamp(f.Growth, 0, 1)*float64(p.Depth)/2)
	spread := forma.Radians(p.Angle)

	segs := make([]Segment, 0, SegmentCount(p.BranchCount, depth))
	stack := []branch{{
		angle:  math.Pi / 2,
		length: BaseLength,
		remain: depth,
	}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		angle := b.angle
		if f.Wind {
			angle += windAngle(f.Time, b.depth)
		}
		end := b.origin.Polar(b.length*growScale, angle)
		segs = append(segs, Segment{
			From:  b.origin,
			To:    end,
			Depth: b.depth,
			Color: DepthColor(b.depth, depth),
			Width: DepthWidth(b.depth, depth),
		})
		if b.remain < 1 {
			continue
		}
		// Children sprout from the drawn tip and inherit the swayed
		// heading, so wind accumulates toward the extremities.
		next := branch{
			origin: end,
			length: b.length * p.LengthMultiplier,
			remain: b.remain - 1,
			depth:  b.depth + 1,
		}
		next.angle = angle + spread
		stack = append(stack, next)
		next.angle = angle - spread
		stack = append(stack, next)
		if p.BranchCount > 2 {
			next.angle = angle
			stack = append(stack, next)
		}
	}
	return segs
}

// windAngle models tip flexibility: deeper (thinner) branches sway more,
// and the trunk not at all.
func windAngle(time float64, depth int) float64 {
	d := float64(depth)
	return forma.Radians(math.Sin(time*windFreq+d) * d * windAmpl)
}

func depthFrac(depth, maxDepth int) float64 {
	if maxDepth <= 0 {
		return 0
	}
	return float64(depth) / float64(maxDepth)
}

// DepthColor fades the hue from trunk to tip and darkens on the way.
func DepthColor(depth, maxDepth int) colorful.Color {
	t := depthFrac(depth, maxDepth)
	return colorful.Hsl(
		forma.Lerp(baseHue, tipHue, t),
		saturation,
		forma.Lerp(baseLight, tipLight, t))
}

// DepthWidth thins the stroke linearly with depth, floored so the finest
// tips stay visible.
func DepthWidth(depth, maxDepth int) float64 {
	return math.Max(MinWidth, forma.Lerp(TrunkWidth, 0, depthFrac(depth, maxDepth)))
}
