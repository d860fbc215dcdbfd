package forma

import (
	"math"
)

// colinearEps treats near-zero cross products as colinear so that float
// noise does not flip the orientation tests.
const colinearEps = 1e-9

// Line is a segment between two points.
type Line struct {
	A, B Pt
}

// Crosses returns true if the other line crosses line.
// Basically, line intersection but looking at end points.
func (l Line) Crosses(other Line) bool {
	return Crosses(l.A, l.B, other.A, other.B)
}

// Classic segment intersection, see https://bit.ly/3jyKGah
func onSegment(p, q, r Pt) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// To find orientation of ordered triplet (p, q, r).
// The function returns following values
// 0 --> p, q and r are colinear
// 1 --> Clockwise
// 2 --> Counterclockwise
func orientation(p, q, r Pt) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if math.Abs(val) < colinearEps {
		return 0 // colinear
	}
	if val > 0 {
		return 1 // clockwise
	}
	return 2 // counterclock wise
}

// Crosses returns true if line segment `p1`, `q1` and `p2`, `q2` crosses.
func Crosses(p1, q1, p2, q2 Pt) bool {
	// Find the four orientations needed for general and
	// special cases
	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	// General case
	if o1 != o2 && o3 != o4 {
		return true
	}
	// Special Cases
	// p1, q1 and p2 are colinear and p2 lies on segment p1q1
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	// p1, q1 and q2 are colinear and q2 lies on segment p1q1
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	// p2, q2 and p1 are colinear and p1 lies on segment p2q2
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	// p2, q2 and q1 are colinear and q1 lies on segment p2q2
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}
	return false // Doesn't fall in any of the above cases
}

// SelfIntersects reports whether any two non-adjacent segments of the
// polyline cross. The final point may repeat the first to close the shape;
// adjacent segments sharing an endpoint never count.
func SelfIntersects(pts []Pt) bool {
	n := len(pts) - 1 // segment count
	if n < 3 {
		return false
	}
	closed := pts[0] == pts[n]
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if closed && i == 0 && j == n-1 {
				continue // first and last segment share the closing point
			}
			if Crosses(pts[i], pts[i+1], pts[j], pts[j+1]) {
				return true
			}
		}
	}
	return false
}
