package mapshade

// Hit circles are drawn as screen-aligned quads shaded per pixel: approach
// circle behind, then base sprite tinted by the combo color, combo-number
// digits, and the untinted overlay sprite on top. A slider's head circle
// goes through the same path.

// objectQuads emits the draw quads for all hit objects, back-to-front
// (later list entries first) so earlier objects cover later ones. For each
// slider the body boxes and caps are emitted before its head circle so the
// head covers its own body. Caps render only for sliders listed in the
// producer's cap draw list; an empty list means every slider. A slider
// with no body boxes draws only its head circle.
func objectQuads(f *Frame) []quad {
	capDrawn := func(uint32) bool { return true }
	if len(f.SliderDraw) > 0 {
		set := make(map[uint32]bool, len(f.SliderDraw))
		for _, idx := range f.SliderDraw {
			set[idx] = true
		}
		capDrawn = func(i uint32) bool { return set[i] }
	}

	quads := make([]quad, 0, 4*len(f.Objects))
	for i := len(f.Objects) - 1; i >= 0; i-- {
		h := &f.Objects[i]
		if h.IsSlider && h.BoxCount > 0 {
			quads = append(quads, sliderBodyQuads(f, uint32(i))...)
			if capDrawn(uint32(i)) {
				if q, ok := sliderCapQuad(f, uint32(i)); ok {
					quads = append(quads, q)
				}
			}
		}
		quads = append(quads, circleQuad(f, uint32(i)))
	}
	return quads
}

// circleQuad builds the quad and shade function for one hit object's
// head circle.
func circleQuad(f *Frame, idx uint32) quad {
	s := &f.State
	h := &f.Objects[idx]
	now := s.TimeMS

	center := BeatfieldToScreen(h.Center, s.PlayfieldRect)
	radius := h.Radius * BeatfieldScale(s.PlayfieldRect)

	// One growth evaluation feeds both the quad extent and the per-pixel
	// UV remap; deriving them separately pops visibly.
	growth := Growth(now, h.EndTime(), growthTargetCircle, h.Selected)

	maxScale := max32(f.Skin.MaxScale(), max32(h.ApproachStartScale, max32(h.ApproachEndScale, 1)))
	half := radius * maxScale * growth

	bodyAlpha := ObjectAlpha(now, h.TimeMS, h.Preempt, h.EndTime(), h.Selected,
		s.SelectedFadeInCap, s.SelectedFadeOutCap)
	// The approach circle fades on its own curve, keyed to the hit time,
	// and never receives the selected-opacity floor.
	approachAlpha := FadeIn(now, h.TimeMS, h.Preempt) * FadeOutCircle(now, h.TimeMS)
	approachScale := ApproachScale(now, h.TimeMS, h.Preempt, h.ApproachStartScale, h.ApproachEndScale)

	baseTint := h.ComboColor
	if h.Selected {
		side := &s.Selections[h.SelectedSide]
		baseTint = baseTint.Mix(side.Colors[RoleComboColor], s.SelectionMixStrength)
	}

	tint, tintOn := offBoundsTint(s, center)

	shade := func(px Point) Premul {
		if bodyAlpha <= alphaCutoff && approachAlpha <= alphaCutoff {
			return Premul{}
		}
		// Un-grown offset from center in screen pixels.
		d := px.Sub(center).Mul(1 / growth)

		var acc Premul

		// Approach circle, behind the hit body, not grown.
		if approachAlpha > alphaCutoff && f.Sprites != nil && f.Sprites.ApproachCircle != nil {
			dRaw := px.Sub(center)
			ar := radius * approachScale
			uv := Point{X: 0.5 + dRaw.X/(2*ar), Y: 0.5 + dRaw.Y/(2*ar)}
			c := f.Sprites.ApproachCircle.Sample(uv)
			c.R *= h.ComboColor.R
			c.G *= h.ComboColor.G
			c.B *= h.ComboColor.B
			acc = acc.Over(c.Scaled(approachAlpha))
		}

		if bodyAlpha > alphaCutoff && f.Sprites != nil {
			// Base sprite, tinted. Skin-authored oversized sprites span
			// skinScale/maxScale of the quad.
			br := radius * f.Skin.HitCircle
			uv := Point{X: 0.5 + d.X/(2*br), Y: 0.5 + d.Y/(2*br)}
			base := f.Sprites.HitCircle.Sample(uv)
			base.R *= baseTint.R
			base.G *= baseTint.G
			base.B *= baseTint.B
			acc = acc.Over(base.Scaled(bodyAlpha))

			// Combo digits in un-grown base UV space.
			if a := comboDigitAlpha(f, h.Combo, uv); a > 0 {
				acc = acc.Over(RGBA{R: 1, G: 1, B: 1, A: a * bodyAlpha})
			}

			// Overlay sprite, untinted.
			if f.Sprites.HitCircleOverlay != nil {
				or := radius * f.Skin.HitCircleOverlay
				ouv := Point{X: 0.5 + d.X/(2*or), Y: 0.5 + d.Y/(2*or)}
				over := f.Sprites.HitCircleOverlay.Sample(ouv)
				acc = acc.Over(over.Scaled(bodyAlpha))
			}
		}

		if tintOn {
			acc = applyTint(acc, tint)
		}
		return acc
	}

	return quad{
		rect:  R(center.X-half, center.Y-half, center.X+half, center.Y+half),
		shade: shade,
	}
}

// comboDigitAlpha returns the digit-atlas coverage of the combo number at
// the base-sprite UV. Up to 3 digits are laid out centered as a group,
// each with its own atlas aspect ratio.
func comboDigitAlpha(f *Frame, combo uint32, uv Point) float32 {
	if f.Sprites == nil {
		return 0
	}
	if combo > 999 {
		combo = 999
	}
	var digits [3]int
	n := 0
	if combo == 0 {
		digits[0], n = 0, 1
	} else {
		for v := combo; v > 0 && n < 3; v /= 10 {
			digits[n] = int(v % 10)
			n++
		}
		// digits were collected least-significant first.
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			digits[i], digits[j] = digits[j], digits[i]
		}
	}

	// Digit cell height as a fraction of the base sprite; widths follow
	// the per-digit atlas aspect so the group is centered as a whole.
	const digitH = 0.35
	var widths [3]float32
	var total float32
	for i := 0; i < n; i++ {
		widths[i] = digitH * f.Digits.Aspect(digits[i])
		total += widths[i]
	}

	x := 0.5 - total/2
	for i := 0; i < n; i++ {
		if uv.X >= x && uv.X < x+widths[i] && uv.Y >= 0.5-digitH/2 && uv.Y < 0.5+digitH/2 {
			d := digits[i]
			sp := f.Sprites.Digits[d]
			if sp == nil {
				return 0
			}
			local := Point{
				X: (uv.X - x) / widths[i],
				Y: (uv.Y - (0.5 - digitH/2)) / digitH,
			}
			remapped := Point{
				X: local.X*f.Digits.UV[d].Scale.X + f.Digits.UV[d].Offset.X,
				Y: local.Y*f.Digits.UV[d].Scale.Y + f.Digits.UV[d].Offset.Y,
			}
			return sp.Sample(remapped).A
		}
		x += widths[i]
	}
	return 0
}

// offBoundsTint resolves the recolor applied to objects whose center sits
// outside the playfield or outside the osu coordinate bounds. Only the
// center position matters: edge pixels of an on-screen object are never
// tinted.
func offBoundsTint(s *FrameState, centerScreen Point) (RGBA, bool) {
	switch {
	case !s.OsuRect.Contains(centerScreen):
		return s.OffscreenOsuTint, true
	case !s.PlayfieldRect.Contains(centerScreen):
		return s.OffscreenPlayfieldTint, true
	default:
		return RGBA{}, false
	}
}

// applyTint mixes the off-bounds tint into an already-composited
// premultiplied contribution, preserving its alpha.
func applyTint(acc Premul, tint RGBA) Premul {
	if acc.A <= alphaCutoff {
		return acc
	}
	c := acc.Unpremultiply()
	c.R = lerp(c.R, tint.R, tint.A)
	c.G = lerp(c.G, tint.G, tint.A)
	c.B = lerp(c.B, tint.B, tint.A)
	return c.Premultiply()
}
