package fractal

import (
	"math"
)

// GrowthStep is how far the growth fraction advances each animation tick.
const GrowthStep = 0.01

// Phase is where the grow-out animation currently stands.
type Phase int

const (
	Growing Phase = iota
	Grown
)

func (p Phase) String() string {
	if p == Grown {
		return "grown"
	}
	return "growing"
}

// GrowthState drives the grow-out animation and the wind clock for one view.
// Exactly one tick consumer mutates it, so it carries no locks.
type GrowthState struct {
	Growth    float64 // 0..1
	Animating bool    // false freezes growth, wind keeps blowing
	Wind      bool
	Time      float64 // seconds of accumulated wind clock

	lastDepth int
}

// NewGrowthState starts a fresh animation for a tree of the given depth.
func NewGrowthState(depth int) *GrowthState {
	return &GrowthState{Animating: true, lastDepth: depth}
}

// Phase reports Growing until the fraction saturates at 1.
func (g *GrowthState) Phase() Phase {
	if g.Growth >= 1 {
		return Grown
	}
	return Growing
}

// Tick advances one animation step: growth first, then the wind clock.
// dt is the wall-clock seconds since the previous tick and only feeds the
// wind; growth moves by the fixed GrowthStep per tick.
func (g *GrowthState) Tick(dt float64) {
	if g.Animating && g.Growth < 1 {
		g.Growth = math.Min(1, g.Growth+GrowthStep)
	}
	if g.Wind {
		g.Time += dt
	}
}

// Reset restarts the growth ramp from zero.
func (g *GrowthState) Reset() {
	g.Growth = 0
	g.Animating = true
}

// SyncDepth re-zeros growth whenever the structural depth changed, so a
// stale partially grown frame never renders against a mismatched tree.
// It runs before the growth advance on each tick.
func (g *GrowthState) SyncDepth(depth int) {
	if depth != g.lastDepth {
		g.lastDepth = depth
		g.Reset()
	}
}

// Frame snapshots the animation state against p for one generation pass.
func (g *GrowthState) Frame(p Params) Frame {
	return Frame{Params: p, Growth: g.Growth, Wind: g.Wind, Time: g.Time}
}
