package superformula

import (
	"math/rand/v2"

	"github.com/scottkirkwood/forma"
)

const (
	// MaxRadius caps the polar radius so spiky exponent combinations stay
	// inside the frame.
	MaxRadius = 20.0

	DefaultResolution = 360  // samples around the full circle
	MaxResolution     = 4096 // keeps one evaluation tractable

	minExponent = 0.001 // n1..n3 must stay positive
	maxExponent = 100.0
	minScale    = 0.01 // a and b divide, keep them off zero
	maxScale    = 10.0
)

// Params are the knobs of the supershape equation.
type Params struct {
	M          int     // symmetry count (petals)
	N1, N2, N3 float64 // shape exponents
	A, B       float64 // scale denominators
	Resolution int     // sample count over [0, 2pi]
}

// DefaultParams returns the curve shown before the user touches anything.
func DefaultParams() Params {
	return Params{
		M:          6,
		N1:         1,
		N2:         1.7,
		N3:         1.7,
		A:          1,
		B:          1,
		Resolution: DefaultResolution,
	}
}

// Clamped returns p with every field forced into its legal range.
// Out of range values clip to the boundary, they never error or wrap.
func (p Params) Clamped() Params {
	if p.M < 0 {
		p.M = 0
	}
	p.N1 = forma.Clamp(p.N1, minExponent, maxExponent)
	p.N2 = forma.Clamp(p.N2, minExponent, maxExponent)
	p.N3 = forma.Clamp(p.N3, minExponent, maxExponent)
	p.A = forma.Clamp(p.A, minScale, maxScale)
	p.B = forma.Clamp(p.B, minScale, maxScale)
	p.Resolution = forma.ClampInt(p.Resolution, 1, MaxResolution)
	return p
}

// Randomize returns a fresh parameter set drawn from rng: m in [2,17],
// n1 in [0.1,10.1), n2 and n3 in [0.1,5.1), a=b=1. Resolution carries over.
func (p Params) Randomize(rng *rand.Rand) Params {
	p.M = 2 + rng.IntN(16)
	p.N1 = 0.1 + rng.Float64()*10
	p.N2 = 0.1 + rng.Float64()*5
	p.N3 = 0.1 + rng.Float64()*5
	p.A = 1
	p.B = 1
	return p
}
