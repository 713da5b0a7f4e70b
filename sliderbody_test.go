package mapshade

import "testing"

// testSliderFrame returns a frame with one L-shaped slider: two segments
// from (60,60) to (160,60) to (160,160) in beatmap space, one box,
// currently fully visible.
func testSliderFrame() *Frame {
	f := testFrame()
	f.Objects = []HitObjectRecord{{
		Center:             Point{X: 60, Y: 60},
		Radius:             20,
		TimeMS:             600,
		Preempt:            600,
		ComboColor:         RGBA{R: 0.2, G: 0.6, B: 1, A: 1},
		IsSlider:           true,
		EndCenter:          Point{X: 160, Y: 160},
		Slides:             1,
		StartBorderColor:   RGBA{R: 0, G: 1, B: 0, A: 1},
		EndBorderColor:     RGBA{R: 1, G: 0, B: 1, A: 1},
		SlideDurationMS:    400,
		EndTimeMS:          1000,
		HeadRotation:       Point{X: 1, Y: 0},
		EndRotation:        Point{X: 0, Y: 1},
		ApproachStartScale: 4,
		ApproachEndScale:   1,
		BoxStart:           0,
		BoxCount:           1,
	}}
	f.Segments = []SliderSegmentRecord{
		{A: Point{X: 60, Y: 60}, B: Point{X: 160, Y: 60}, AProgress: 0, BProgress: 0.5},
		{A: Point{X: 160, Y: 60}, B: Point{X: 160, Y: 160}, AProgress: 0.5, BProgress: 1},
	}
	f.Boxes = []SliderBoxRecord{{
		Min: Point{X: 30, Y: 30}, Max: Point{X: 190, Y: 190},
		SegStart: 0, SegCount: 2, Object: 0,
	}}
	return f
}

func TestSliderBodyRidgeAtCorner(t *testing.T) {
	f := testSliderFrame()
	quads := sliderBodyQuads(f, 0)
	if len(quads) != 1 {
		t.Fatalf("expected 1 box quad, got %d", len(quads))
	}

	// The corner (160, 60) lies on both segments: min distance 0, so the
	// fill shades pure ridge color.
	px := BeatfieldToScreen(Point{X: 160, Y: 60}, f.State.PlayfieldRect)
	got := quads[0].shade(px).Unpremultiply()
	colorNear(t, got, f.State.SliderRidgeColor, 5e-2)
}

func TestSliderBodyTransparentOutsideStroke(t *testing.T) {
	f := testSliderFrame()
	quads := sliderBodyQuads(f, 0)

	// (60, 160) is the far corner of the L, distance ~100 beatmap units
	// from both segments, far outside the stroke.
	px := BeatfieldToScreen(Point{X: 60, Y: 160}, f.State.PlayfieldRect)
	if c := quads[0].shade(px); !c.Negligible() {
		t.Errorf("far pixel shaded %+v", c)
	}
}

func TestSliderBodyBorderGradient(t *testing.T) {
	f := testSliderFrame()
	quads := sliderBodyQuads(f, 0)
	h := &f.Objects[0]

	// A point in the inner border band near the path start should lean
	// toward the start border color; near the end, toward the end color.
	bandD := (h.Radius + (h.Radius - f.State.SliderBorderPx)) / 2
	nearStart := BeatfieldToScreen(Point{X: 70, Y: 60 - bandD}, f.State.PlayfieldRect)
	nearEnd := BeatfieldToScreen(Point{X: 160 + bandD, Y: 150}, f.State.PlayfieldRect)

	cs := quads[0].shade(nearStart).Unpremultiply()
	ce := quads[0].shade(nearEnd).Unpremultiply()
	if !(cs.G > cs.R) {
		t.Errorf("near-start border %+v not leaning to start color", cs)
	}
	if !(ce.R > ce.G) {
		t.Errorf("near-end border %+v not leaning to end color", ce)
	}
}

func TestSliderBodyFadesLinearly(t *testing.T) {
	f := testSliderFrame()
	px := BeatfieldToScreen(Point{X: 100, Y: 60}, f.State.PlayfieldRect)

	f.State.TimeMS = 1000 + fadeOutMS/2
	half := sliderBodyQuads(f, 0)[0].shade(px).A
	f.State.TimeMS = 1000 + fadeOutMS
	gone := sliderBodyQuads(f, 0)[0].shade(px).A

	floatNear(t, half, 0.5, 0.05)
	floatNear(t, gone, 0, 1e-5)
}

func TestSliderBodySegmentCaps(t *testing.T) {
	f := testSliderFrame()
	// A box claiming more segments than exist must clamp, not panic.
	f.Boxes[0].SegCount = 9999
	quads := sliderBodyQuads(f, 0)
	px := BeatfieldToScreen(Point{X: 100, Y: 60}, f.State.PlayfieldRect)
	if c := quads[0].shade(px); c.Negligible() {
		t.Error("clamped scan lost the stroke")
	}
}
