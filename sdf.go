package mapshade

import "github.com/chewxy/math32"

// epsilon floors every denominator in the package so that degenerate input
// (zero-length segments, zero preempt, collapsed rects) yields a clamped
// value instead of NaN propagation.
const epsilon = 1e-6

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothstep is the Hermite interpolation 3t^2-2t^3 of x over [e0, e1].
// All band edges in the distance-field renderers go through this so the
// anti-aliased transition width is a single, explicit parameter.
func smoothstep(e0, e1, x float32) float32 {
	t := clamp((x-e0)/math32.Max(e1-e0, epsilon), 0, 1)
	return t * t * (3 - 2*t)
}

// DistPointSegment returns the distance from p to the segment [a, b] and
// the parameter t in [0, 1] of the closest point. When p projects inside
// the segment this is the perpendicular distance; at or beyond an endpoint
// it is the distance to that endpoint.
func DistPointSegment(p, a, b Point) (dist, t float32) {
	ab := b.Sub(a)
	ap := p.Sub(a)
	t = clamp(ap.Dot(ab)/math32.Max(ab.LengthSquared(), epsilon), 0, 1)
	closest := a.Add(ab.Mul(t))
	return p.Distance(closest), t
}

// fillCoverage converts a distance field value into coverage for a filled
// band [0, r]: 1 inside, 0 outside, smoothstepped over the aa half-width.
func fillCoverage(d, r, aa float32) float32 {
	return 1 - smoothstep(r-aa, r+aa, d)
}

// bandCoverage converts a distance field value into coverage for an
// annular band [r0, r1] with anti-aliased edges.
func bandCoverage(d, r0, r1, aa float32) float32 {
	return smoothstep(r0-aa, r0+aa, d) * (1 - smoothstep(r1-aa, r1+aa, d))
}

// ringCoverage is coverage for a stroked circle of radius r and half
// stroke width hw around center c.
func ringCoverage(p, c Point, r, hw, aa float32) float32 {
	d := math32.Abs(p.Distance(c) - r)
	return 1 - smoothstep(hw-aa, hw+aa, d)
}

// DistPointQuad returns the signed distance from p to the quadrilateral
// with corners q (in order). Negative inside, positive outside. The quad
// may be non-convex or degenerate; winding is resolved by crossing count.
// Selection boxes are rotated quads, so this cannot assume axis alignment.
func DistPointQuad(p Point, q [4]Point) float32 {
	d := float32(math32.MaxFloat32)
	inside := false
	j := 3
	for i := 0; i < 4; i++ {
		ed, _ := DistPointSegment(p, q[j], q[i])
		if ed < d {
			d = ed
		}
		// Ray crossing test against edge (q[j], q[i]).
		if (q[i].Y > p.Y) != (q[j].Y > p.Y) {
			x := q[j].X + (p.Y-q[j].Y)/(q[i].Y-q[j].Y)*(q[i].X-q[j].X)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	if inside {
		return -d
	}
	return d
}

// quadStrokeCoverage is coverage for a border-only stroke of half width hw
// along the edges of quad q.
func quadStrokeCoverage(p Point, q [4]Point, hw, aa float32) float32 {
	d := math32.Abs(DistPointQuad(p, q))
	return 1 - smoothstep(hw-aa, hw+aa, d)
}

// arcMask returns 1 when the angle of p around c lies within the arc
// starting at a0 spanning sweep radians (counterclockwise), softened at
// both angular edges by aaAngle.
func arcMask(p, c Point, a0, sweep, aaAngle float32) float32 {
	d := p.Sub(c)
	ang := math32.Atan2(d.Y, d.X) - a0
	ang = math32.Mod(ang, 2*math32.Pi)
	if ang < 0 {
		ang += 2 * math32.Pi
	}
	return smoothstep(0, aaAngle, ang) * (1 - smoothstep(sweep-aaAngle, sweep, ang))
}
