// Package superformula evaluates Gielis supershapes, the polar curves behind
// the studio's parametric shape mode.
// See https://en.wikipedia.org/wiki/Superformula for the equation.
package superformula

import (
	"math"

	"github.com/scottkirkwood/forma"
)

// Radius evaluates the supershape radius at angle phi (radians).
// A zero sum of terms collapses to r=0 rather than dividing by zero, and the
// result never exceeds MaxRadius.
func Radius(p Params, phi float64) float64 {
	arg := float64(p.M) * phi / 4
	sin, cos := math.Sincos(arg)
	t1 := math.Pow(math.Abs(cos/p.A), p.N2)
	t2 := math.Pow(math.Abs(sin/p.B), p.N3)
	sum := t1 + t2
	if sum == 0 {
		return 0 // degenerate pinch, collapse to the center
	}
	r := math.Pow(sum, -1/p.N1)
	if r > MaxRadius {
		r = MaxRadius
	}
	return r
}

// Eval samples the closed curve at phi = i*2pi/resolution for i in
// [0, resolution], so it returns resolution+1 points with the final sample
// at exactly 2pi closing the shape. Points are scaled and translated onto
// center. The call is pure: p is clamped to its legal ranges internally and
// every emitted coordinate is finite.
func Eval(p Params, center forma.Pt, scale float64) []forma.Pt {
	p = p.Clamped()
	pts := make([]forma.Pt, 0, p.Resolution+1)
	for i := 0; i <= p.Resolution; i++ {
		phi := float64(i) * 2 * math.Pi / float64(p.Resolution)
		r := Radius(p, phi)
		sin, cos := math.Sincos(phi)
		pts = append(pts, forma.Pt{
			X: center.X + r*cos*scale,
			Y: center.Y + r*sin*scale,
		})
	}
	return pts
}

// Profile samples just the radius over a full turn, for plotting.
func Profile(p Params, samples int) []float64 {
	p = p.Clamped()
	if samples < 1 {
		samples = 1
	}
	rs := make([]float64, samples)
	for i := range rs {
		phi := float64(i) * 2 * math.Pi / float64(samples)
		rs[i] = Radius(p, phi)
	}
	return rs
}
