package fractal

import (
	"github.com/scottkirkwood/forma"
)

const (
	MaxAngle = 90.0 // degrees of branch spread
	MinDepth = 1
	MaxDepth = 15

	minMultiplier = 0.05 // child shrink factor stays inside (0,1)
	maxMultiplier = 0.95

	// MaxSegments bounds one generation pass. A full ternary tree at the
	// deepest control setting has (3^16-1)/2 segments; anything past that
	// gets its effective depth capped instead of erroring.
	MaxSegments = 21523360
)

// Params are the structural knobs of the tree.
type Params struct {
	Angle            float64 // degrees between trunk and child headings
	Depth            int     // recursion levels below the trunk
	LengthMultiplier float64 // child length as a fraction of the parent
	BranchCount      int     // 2 or 3 children per branch
}

// DefaultParams returns the tree shown before the user touches anything.
func DefaultParams() Params {
	return Params{
		Angle:            25,
		Depth:            9,
		LengthMultiplier: 0.67,
		BranchCount:      2,
	}
}

// Clamped returns p forced into the control ranges the studio exposes.
// Out of range values clip to the boundary, they never error or wrap.
func (p Params) Clamped() Params {
	p.Angle = forma.Clamp(p.Angle, 0, MaxAngle)
	p.Depth = forma.ClampInt(p.Depth, MinDepth, MaxDepth)
	p.LengthMultiplier = forma.Clamp(p.LengthMultiplier, minMultiplier, maxMultiplier)
	p.BranchCount = forma.ClampInt(p.BranchCount, 2, 3)
	return p
}

// SegmentCount returns how many segments a full tree of the given depth
// holds: 2^(d+1)-1 branches for binary, (3^(d+1)-1)/2 for ternary.
func SegmentCount(branches, depth int) int {
	if depth < 0 {
		return 0
	}
	if depth > 30 {
		depth = 30 // billions of segments already, callers only budget-check
	}
	count, layer := 0, 1
	for d := 0; d <= depth; d++ {
		count += layer
		layer *= branches
	}
	return count
}

// budgetDepth caps depth so the full tree stays under MaxSegments.
func budgetDepth(branches, depth int) int {
	for depth > 0 && SegmentCount(branches, depth) > MaxSegments {
		depth--
	}
	return depth
}
