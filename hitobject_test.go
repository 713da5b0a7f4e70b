package mapshade

import "testing"

func TestCircleQuadCenterTint(t *testing.T) {
	f := testFrame()
	q := circleQuad(f, 0)

	// Sample just outside the combo digit stamp but inside the base
	// sprite.
	got := q.shade(Point{X: 128 + 11, Y: 96}).Unpremultiply()
	colorNear(t, got, f.Objects[0].ComboColor, 1e-3)
}

func TestCircleQuadInvisibleBeforeAppear(t *testing.T) {
	f := testFrame()
	f.State.TimeMS = -100 // object appears at 0
	q := circleQuad(f, 0)
	if c := q.shade(Point{X: 128, Y: 96}); !c.Negligible() {
		t.Errorf("pre-appearance circle shaded %+v", c)
	}
}

func TestCircleQuadGrowsAfterHit(t *testing.T) {
	f := testFrame()
	before := circleQuad(f, 0).rect
	f.State.TimeMS = 600 + fadeOutMS
	after := circleQuad(f, 0).rect
	if after.Width() <= before.Width() {
		t.Errorf("quad did not grow after hit: %v -> %v", before.Width(), after.Width())
	}
}

func TestCircleQuadSelectedStaysPut(t *testing.T) {
	f := testFrame()
	f.Objects[0].Selected = true
	before := circleQuad(f, 0).rect
	f.State.TimeMS = 600 + fadeOutMS
	after := circleQuad(f, 0).rect
	floatNear(t, after.Width(), before.Width(), 1e-4)
}

func TestOffBoundsTintSelection(t *testing.T) {
	s := &testFrame().State

	if _, on := offBoundsTint(s, Point{X: 128, Y: 96}); on {
		t.Error("in-bounds center tinted")
	}
	if c, on := offBoundsTint(s, Point{X: -10, Y: 96}); !on || c != s.OffscreenPlayfieldTint {
		t.Errorf("left of playfield: %+v %v", c, on)
	}
	if c, on := offBoundsTint(s, Point{X: -100, Y: 96}); !on || c != s.OffscreenOsuTint {
		t.Errorf("left of osu bounds: %+v %v", c, on)
	}
}

func TestComboDigitStamp(t *testing.T) {
	f := testFrame()
	// Combo 1 with unit aspect: one 0.35-wide digit centered in UV.
	if a := comboDigitAlpha(f, 1, Point{X: 0.5, Y: 0.5}); a != 1 {
		t.Errorf("digit center alpha %v", a)
	}
	if a := comboDigitAlpha(f, 1, Point{X: 0.9, Y: 0.5}); a != 0 {
		t.Errorf("outside digit group alpha %v", a)
	}
	// Three digits cover more horizontal span than one.
	if a := comboDigitAlpha(f, 123, Point{X: 0.1, Y: 0.5}); a != 1 {
		t.Errorf("wide group left digit alpha %v", a)
	}
}

func TestObjectQuadsOrder(t *testing.T) {
	f := testFrame()
	f.Objects = append(f.Objects, f.Objects[0])
	f.Objects[1].Center = Point{X: 100, Y: 100}
	quads := objectQuads(f)
	if len(quads) != 2 {
		t.Fatalf("expected 2 quads, got %d", len(quads))
	}
	// Later objects emit first so earlier ones composite on top.
	c1 := BeatfieldToScreen(f.Objects[1].Center, f.State.PlayfieldRect)
	if !quads[0].rect.Contains(c1) {
		t.Error("first emitted quad is not the later object")
	}
}

func TestApplyTintPreservesAlpha(t *testing.T) {
	in := RGBA{R: 0.2, G: 0.8, B: 0.2, A: 0.6}.Premultiply()
	out := applyTint(in, RGBA{R: 1, G: 0, B: 0, A: 1})
	floatNear(t, out.A, in.A, 1e-5)
	got := out.Unpremultiply()
	colorNear(t, got, RGBA{R: 1, G: 0, B: 0, A: 0.6}, 1e-5)
}

func TestBoxlessSliderDrawsOnlyHead(t *testing.T) {
	f := testSliderFrame()
	withBoxes := objectQuads(f)

	f.Objects[0].BoxCount = 0
	boxless := objectQuads(f)
	if len(boxless) != 1 {
		t.Fatalf("box-less slider emitted %d quads, want just the head circle", len(boxless))
	}
	if len(withBoxes) <= len(boxless) {
		t.Fatalf("slider with boxes emitted %d quads", len(withBoxes))
	}
}
