package mapshade

import "testing"

func TestBeatfieldRoundTrip(t *testing.T) {
	pf := R(100, 50, 100+1024, 50+768) // 2x zoom
	pts := []Point{
		{X: 0, Y: 0},
		{X: 256, Y: 192},
		{X: 512, Y: 384},
		{X: -30, Y: 500}, // out of bounds still maps linearly
	}
	for _, p := range pts {
		got := ScreenToBeatfield(BeatfieldToScreen(p, pf), pf)
		if absf(got.X-p.X) > 1e-3 || absf(got.Y-p.Y) > 1e-3 {
			t.Errorf("round trip %+v -> %+v", p, got)
		}
	}
}

func TestBeatfieldToScreenCorners(t *testing.T) {
	pf := R(10, 20, 10+512, 20+384) // 1x
	got := BeatfieldToScreen(Point{}, pf)
	if got.X != 10 || got.Y != 20 {
		t.Errorf("origin maps to %+v", got)
	}
	got = BeatfieldToScreen(Point{X: 512, Y: 384}, pf)
	if got.X != 522 || got.Y != 404 {
		t.Errorf("far corner maps to %+v", got)
	}
}

func TestOsuRoundTrip(t *testing.T) {
	osu := R(-5, 0, -5+320, 240) // 0.5x
	p := Point{X: 640, Y: 480}
	got := ScreenToOsu(OsuToScreen(p, osu), osu)
	if absf(got.X-p.X) > 1e-3 || absf(got.Y-p.Y) > 1e-3 {
		t.Errorf("round trip %+v -> %+v", p, got)
	}
}

func TestBeatfieldScale(t *testing.T) {
	floatNear(t, BeatfieldScale(R(0, 0, 1024, 768)), 2, 1e-6)
	floatNear(t, BeatfieldScale(R(0, 0, 256, 192)), 0.5, 1e-6)
	// Degenerate rect clamps instead of dividing by zero.
	if BeatfieldScale(R(0, 0, 0, 0)) <= 0 {
		t.Error("degenerate playfield produced non-positive scale")
	}
}
