package mapshade

// Slider bodies are stroked from their polyline approximation with a
// signed-distance scan: each pixel finds the nearest ridge segment in its
// box's range and shades three concentric bands around it. Boxes keep the
// per-pixel scan local; a long slider is many boxes, not one huge scan.

// sliderBodyQuads emits one quad per body box of object idx.
func sliderBodyQuads(f *Frame, idx uint32) []quad {
	h := &f.Objects[idx]
	if h.BoxCount == 0 {
		return nil
	}
	quads := make([]quad, 0, h.BoxCount)
	for b := h.BoxStart; b < h.BoxStart+h.BoxCount && int(b) < len(f.Boxes); b++ {
		quads = append(quads, sliderBoxQuad(f, idx, b))
	}
	return quads
}

func sliderBoxQuad(f *Frame, idx, boxIdx uint32) quad {
	s := &f.State
	h := &f.Objects[idx]
	box := &f.Boxes[boxIdx]
	now := s.TimeMS

	scale := BeatfieldScale(s.PlayfieldRect)
	// Antialias half-width: one screen pixel, in beatmap units.
	aa := 1 / max32(scale, epsilon)

	baseR := h.Radius
	innerR := max32(baseR-s.SliderBorderPx, epsilon)
	outerR := baseR + s.SliderOuterPx

	alpha := SliderAlpha(now, h.TimeMS, h.Preempt, h.EndTimeMS, h.Selected,
		s.SelectedFadeInCap, s.SelectedFadeOutCap)

	segStart := int(box.SegStart)
	segEnd := segStart + int(box.SegCount)
	if n := segStart + MaxSegmentsPerScan; segEnd > n {
		segEnd = n
	}
	if segEnd > len(f.Segments) {
		segEnd = len(f.Segments)
	}

	headScreen := BeatfieldToScreen(h.Center, s.PlayfieldRect)
	tint, tintOn := offBoundsTint(s, headScreen)

	p0 := BeatfieldToScreen(box.Min, s.PlayfieldRect)
	p1 := BeatfieldToScreen(box.Max, s.PlayfieldRect)
	rect := R(p0.X, p0.Y, p1.X, p1.Y).Expand(1)

	shade := func(px Point) Premul {
		if alpha <= alphaCutoff {
			return Premul{}
		}
		b := ScreenToBeatfield(px, s.PlayfieldRect)

		best := float32(1e30)
		var bestProg float32
		for i := segStart; i < segEnd; i++ {
			seg := &f.Segments[i]
			d, t := DistPointSegment(b, seg.A, seg.B)
			if d < best {
				best = d
				bestProg = lerp(seg.AProgress, seg.BProgress, t)
			}
		}
		if best >= outerR+aa {
			return Premul{}
		}

		cov := 1 - smoothstep(outerR-aa, outerR+aa, best)
		if cov <= alphaCutoff {
			return Premul{}
		}

		// Fill blends ridge color at the spine into the body color at the
		// inner border.
		c := s.SliderRidgeColor.Mix(s.SliderBodyColor, clamp(best/innerR, 0, 1))
		border := h.StartBorderColor.Mix(h.EndBorderColor, clamp(bestProg, 0, 1))
		c = c.Mix(border, smoothstep(innerR-aa, innerR+aa, best))
		c = c.Mix(h.StartBorderColor, smoothstep(baseR-aa, baseR+aa, best))

		out := c.WithAlpha(c.A * cov * alpha).Premultiply()
		if tintOn {
			out = applyTint(out, tint)
		}
		return out
	}

	return quad{rect: rect, shade: shade}
}
