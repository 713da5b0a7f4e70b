package mapshade

import "github.com/chewxy/math32"

// Slider caps: the end-cap sprite at whichever endpoint the slider finishes
// on, plus reverse arrows at endpoints the ball will bounce off. All cap
// sprites for one slider share a single quad spanning both endpoints.

// sliderCapQuad builds the cap quad for slider idx. ok is false when the
// object is not a slider or the sprite set is missing.
func sliderCapQuad(f *Frame, idx uint32) (quad, bool) {
	h := &f.Objects[idx]
	if !h.IsSlider || f.Sprites == nil {
		return quad{}, false
	}
	s := &f.State
	now := s.TimeMS

	start := BeatfieldToScreen(h.Center, s.PlayfieldRect)
	end := BeatfieldToScreen(h.EndCenter, s.PlayfieldRect)
	radius := h.Radius * BeatfieldScale(s.PlayfieldRect)

	growth := Growth(now, h.EndTimeMS, growthTargetCap, h.Selected)
	capScale := max32(f.Skin.SliderEnd,
		max32(f.Skin.SliderEndOverlay, max32(f.Skin.ReverseArrow, 1)))
	half := radius * capScale * growth

	alpha := SliderAlpha(now, h.TimeMS, h.Preempt, h.EndTimeMS, h.Selected,
		s.SelectedFadeInCap, s.SelectedFadeOutCap)

	// Even slide counts bring the ball back to the start; the cap sprite
	// sits at the final resting point and takes that end's border color.
	finalPt, finalTint := end, h.EndBorderColor
	if h.Slides%2 == 0 {
		finalPt, finalTint = start, h.StartBorderColor
	}

	arrowAtEnd := h.Slides >= 2
	arrowAtStart := h.Slides >= 3

	headScreen := start
	tint, tintOn := offBoundsTint(s, headScreen)

	rect := R(
		math32.Min(start.X, end.X)-half, math32.Min(start.Y, end.Y)-half,
		math32.Max(start.X, end.X)+half, math32.Max(start.Y, end.Y)+half,
	)

	shade := func(px Point) Premul {
		if alpha <= alphaCutoff {
			return Premul{}
		}
		var acc Premul

		// End cap at the final point: base tinted, overlay untinted.
		if f.Sprites.SliderEnd != nil {
			d := px.Sub(finalPt).Mul(1 / growth)
			er := radius * f.Skin.SliderEnd
			uv := Point{X: 0.5 + d.X/(2*er), Y: 0.5 + d.Y/(2*er)}
			c := f.Sprites.SliderEnd.Sample(uv)
			c.R *= finalTint.R
			c.G *= finalTint.G
			c.B *= finalTint.B
			acc = acc.Over(c)
			if f.Sprites.SliderEndOverlay != nil {
				or := radius * f.Skin.SliderEndOverlay
				ouv := Point{X: 0.5 + d.X/(2*or), Y: 0.5 + d.Y/(2*or)}
				acc = acc.Over(f.Sprites.SliderEndOverlay.Sample(ouv))
			}
		}

		if f.Sprites.ReverseArrow != nil {
			if arrowAtEnd {
				acc = acc.Over(arrowSample(f, px, end, h.EndRotation, radius, growth))
			}
			if arrowAtStart {
				acc = acc.Over(arrowSample(f, px, start, h.HeadRotation, radius, growth))
			}
		}

		if acc.A <= alphaCutoff {
			return Premul{}
		}
		out := Premul{R: acc.R * alpha, G: acc.G * alpha, B: acc.B * alpha, A: acc.A * alpha}
		if tintOn {
			out = applyTint(out, tint)
		}
		return out
	}

	return quad{rect: rect, shade: shade}, true
}

// arrowSample samples the reverse-arrow sprite at center, rotated to point
// along the stored path tangent. Sampling coordinates are rotated by the
// inverse angle instead of rotating the sprite.
func arrowSample(f *Frame, px, center, tangent Point, radius, growth float32) RGBA {
	d := px.Sub(center).Mul(1 / growth).RotateByInverse(tangent)
	ar := radius * max32(f.Skin.ReverseArrow, epsilon)
	uv := Point{X: 0.5 + d.X/(2*ar), Y: 0.5 + d.Y/(2*ar)}
	return f.Sprites.ReverseArrow.Sample(uv)
}
