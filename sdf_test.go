package mapshade

import "testing"

func TestDistPointSegment(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 10, Y: 0}
	cases := []struct {
		name  string
		p     Point
		dist  float32
		param float32
	}{
		{"perpendicular", Point{X: 5, Y: 3}, 3, 0.5},
		{"on segment", Point{X: 2, Y: 0}, 0, 0.2},
		{"before start", Point{X: -4, Y: 3}, 5, 0},
		{"past end", Point{X: 13, Y: 4}, 5, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, u := DistPointSegment(c.p, a, b)
			floatNear(t, d, c.dist, 1e-5)
			floatNear(t, u, c.param, 1e-5)
		})
	}
}

func TestDistPointSegmentDegenerate(t *testing.T) {
	a := Point{X: 3, Y: 4}
	d, u := DistPointSegment(Point{}, a, a)
	floatNear(t, d, 5, 1e-5)
	floatNear(t, u, 0, 1e-5)
}

func TestDistPointQuadSign(t *testing.T) {
	sq := [4]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	if d := DistPointQuad(Point{X: 5, Y: 5}, sq); d >= 0 {
		t.Errorf("center should be inside, got %v", d)
	}
	floatNear(t, DistPointQuad(Point{X: 5, Y: 5}, sq), -5, 1e-5)
	floatNear(t, DistPointQuad(Point{X: 15, Y: 5}, sq), 5, 1e-5)
	floatNear(t, DistPointQuad(Point{X: 5, Y: -2}, sq), 2, 1e-5)
}

func TestDistPointQuadRotated(t *testing.T) {
	// Unit diamond: a square rotated 45 degrees.
	dm := [4]Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	if d := DistPointQuad(Point{}, dm); d >= 0 {
		t.Errorf("diamond center should be inside, got %v", d)
	}
	if d := DistPointQuad(Point{X: 1.5, Y: 0}, dm); d <= 0 {
		t.Errorf("outside diamond reported inside, got %v", d)
	}
}

func TestSmoothstepEdges(t *testing.T) {
	floatNear(t, smoothstep(0, 1, -1), 0, 0)
	floatNear(t, smoothstep(0, 1, 0), 0, 0)
	floatNear(t, smoothstep(0, 1, 0.5), 0.5, 1e-6)
	floatNear(t, smoothstep(0, 1, 1), 1, 0)
	floatNear(t, smoothstep(0, 1, 2), 1, 0)
}

func TestCoverageBands(t *testing.T) {
	// Well inside / outside the band the coverage is saturated.
	floatNear(t, fillCoverage(0, 10, 1), 1, 1e-6)
	floatNear(t, fillCoverage(20, 10, 1), 0, 1e-6)
	floatNear(t, bandCoverage(5, 4, 8, 0.5), 1, 1e-6)
	floatNear(t, bandCoverage(2, 4, 8, 0.5), 0, 1e-6)
	floatNear(t, bandCoverage(10, 4, 8, 0.5), 0, 1e-6)
}

func TestRingCoverage(t *testing.T) {
	c := Point{X: 50, Y: 50}
	floatNear(t, ringCoverage(Point{X: 60, Y: 50}, c, 10, 2, 0.5), 1, 1e-6)
	floatNear(t, ringCoverage(Point{X: 50, Y: 50}, c, 10, 2, 0.5), 0, 1e-6)
}

func TestArcMask(t *testing.T) {
	c := Point{}
	// Arc from angle 0 sweeping pi: the point at +Y (angle pi/2) is in,
	// the point at -Y (angle -pi/2) is out.
	if m := arcMask(Point{X: 0, Y: 1}, c, 0, 3.14159, 0.01); m < 0.99 {
		t.Errorf("mid-arc mask %v", m)
	}
	if m := arcMask(Point{X: 0, Y: -1}, c, 0, 3.14159, 0.01); m > 0.01 {
		t.Errorf("off-arc mask %v", m)
	}
}
