package mapshade

import "testing"

// testSprites is a minimal solid-color sprite set: shading tests can then
// assert exact tints without decoding real skin textures.
func testSprites() *SpriteSet {
	white := SolidSprite(RGBA{R: 1, G: 1, B: 1, A: 1})
	set := &SpriteSet{
		HitCircle:        white,
		HitCircleOverlay: nil,
		ApproachCircle:   white,
		SliderEnd:        white,
		ReverseArrow:     white,
		SliderBall:       white,
		FollowCircle:     SolidSprite(RGBA{R: 1, G: 1, B: 1, A: 0.5}),
	}
	for i := range set.Digits {
		set.Digits[i] = white
	}
	return set
}

func testSkin() SkinMeta {
	return SkinMeta{
		HitCircle: 1, HitCircleOverlay: 1,
		SliderStart: 1, SliderStartOverlay: 1,
		SliderEnd: 1, SliderEndOverlay: 1,
		ReverseArrow: 1, SliderBall: 1, FollowCircle: 1,
	}
}

func testDigits() DigitsMeta {
	var m DigitsMeta
	for i := range m.UV {
		m.UV[i] = DigitUV{Scale: Point{X: 1, Y: 1}}
	}
	m.MaxSize = Point{X: 64, Y: 64}
	return m
}

// testFrame is a 256x192 screen whose playfield covers it exactly (0.5x
// beatmap scale) with one fully visible circle at the beatmap center.
func testFrame() *Frame {
	f := &Frame{
		State: FrameState{
			ScreenW: 256, ScreenH: 192,
			TimeMS:        600,
			PlayfieldRect: R(0, 0, 256, 192),
			OsuRect:       R(-32, -24, 288, 216),
			HUDOpacity:    1,
			PlaybackRate:  1,
			SongTotalMS:   60000,

			PlayfieldColor:       RGBA{R: 0.05, G: 0.05, B: 0.08, A: 1},
			PlayfieldBorderColor: RGBA{R: 0.4, G: 0.4, B: 0.5, A: 1},
			GameplayColor:        RGBA{R: 0.03, G: 0.03, B: 0.05, A: 1},
			GameplayBorderColor:  RGBA{R: 0.3, G: 0.3, B: 0.4, A: 1},
			OuterColor:           RGBA{R: 0.01, G: 0.01, B: 0.02, A: 1},

			SliderRidgeColor: RGBA{R: 0.9, G: 0.9, B: 0.9, A: 1},
			SliderBodyColor:  RGBA{R: 0.2, G: 0.2, B: 0.2, A: 1},
			SliderBorderPx:   6,
			SliderOuterPx:    3,

			OffscreenPlayfieldTint: RGBA{R: 1, G: 0.5, B: 0, A: 0.5},
			OffscreenOsuTint:       RGBA{R: 1, G: 0, B: 0, A: 0.7},
		},
		Objects: []HitObjectRecord{{
			Center:             Point{X: 256, Y: 192},
			Radius:             36,
			TimeMS:             600,
			Preempt:            600,
			Combo:              1,
			ComboColor:         RGBA{R: 1, G: 0.2, B: 0.2, A: 1},
			ApproachStartScale: 4,
			ApproachEndScale:   1,
		}},
		Skin:    testSkin(),
		Digits:  testDigits(),
		Sprites: testSprites(),
	}
	return f
}

func TestRenderFrameBackground(t *testing.T) {
	r := NewRendererWithWorkers(2)
	defer r.Close()

	f := testFrame()
	f.Objects = nil
	dst := NewFramebuffer(256, 192)
	r.RenderFrame(dst, f)

	got := dst.At(10, 100).Unpremultiply()
	colorNear(t, got, f.State.PlayfieldColor, 1e-3)
}

func TestRenderFrameCircleTint(t *testing.T) {
	r := NewRendererWithWorkers(2)
	defer r.Close()

	f := testFrame()
	dst := NewFramebuffer(256, 192)
	r.RenderFrame(dst, f)

	// The circle center sits at screen (128, 96); a solid white base
	// sprite comes out as the combo color. Offset past the digit stamp so
	// only base tint is sampled.
	got := dst.At(128+11, 96).Unpremultiply()
	colorNear(t, got, f.Objects[0].ComboColor, 1e-3)
}

func TestRenderFrameDeterministic(t *testing.T) {
	r := NewRendererWithWorkers(4)
	defer r.Close()

	f := testFrame()
	a := NewFramebuffer(256, 192)
	b := NewFramebuffer(256, 192)
	r.RenderFrame(a, f)
	r.RenderFrame(b, f)

	for i := range a.Pix() {
		if a.Pix()[i] != b.Pix()[i] {
			t.Fatalf("pixel float %d differs between identical renders", i)
		}
	}
}

func TestShadeTileRespectsQuadBounds(t *testing.T) {
	f := testFrame()
	f.Objects = nil
	f.State.HUDOpacity = 0
	f.State.ScreenW = 64
	f.State.ScreenH = 64
	f.State.PlayfieldRect = R(0, 0, 32, 32)
	f.State.OsuRect = R(0, 0, 40, 40)

	r := NewRendererWithWorkers(1)
	defer r.Close()
	dst := NewFramebuffer(64, 64)
	r.RenderFrame(dst, f)

	// The background quad is fullscreen, so even the far corner outside
	// all field rects gets the outer color.
	colorNear(t, dst.At(63, 63).Unpremultiply(), f.State.OuterColor, 1e-3)
}

func TestFullscreenRect(t *testing.T) {
	s := &FrameState{ScreenW: 640, ScreenH: 480}
	r := fullscreenRect(s)
	if r.X0 != 0 || r.Y0 != 0 || r.X1 != 640 || r.Y1 != 480 {
		t.Errorf("fullscreen rect %+v", r)
	}
}
