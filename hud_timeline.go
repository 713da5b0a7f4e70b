package mapshade

// The song timeline is a horizontal bar mapping the whole song duration to
// its rect. Interval marks (kiai, break) tint their time span, point marks
// (bookmark, redline) draw one-pixel ticks, and everything left of the
// play cursor is desaturated toward the past tint.

var (
	timelineTrackColor    = RGBA{R: 0.10, G: 0.10, B: 0.13, A: 0.9}
	timelineProgressColor = RGBA{R: 0.22, G: 0.40, B: 0.65, A: 0.9}
	kiaiMarkColor         = RGBA{R: 1, G: 0.65, B: 0.15, A: 0.45}
	breakMarkColor        = RGBA{R: 0.30, G: 0.55, B: 0.90, A: 0.35}
	bookmarkColor         = RGBA{R: 0.30, G: 0.60, B: 1, A: 1}
	redlineColor          = RGBA{R: 1, G: 0.25, B: 0.25, A: 1}
)

// timelineBarQuads emits the song-timeline bar quad, or nothing when the
// bar rect is unset.
func timelineBarQuads(f *Frame) []quad {
	s := &f.State
	r := s.TimelineRect
	if r.Empty() || s.HUDOpacity <= alphaCutoff {
		return nil
	}

	total := max32(s.SongTotalMS, epsilon)
	timeToX := func(t float32) float32 {
		return r.X0 + clamp(t/total, 0, 1)*r.Width()
	}
	cursorX := timeToX(s.TimeMS)
	opacity := s.HUDOpacity
	marks := f.TimelineMarks

	shade := func(px Point) Premul {
		var acc Premul
		acc = acc.Over(timelineTrackColor)
		if px.X < cursorX {
			acc = acc.Over(timelineProgressColor)
		}

		for i := range marks {
			m := &marks[i]
			switch m.Kind {
			case MarkKiai:
				if px.X >= timeToX(m.Start) && px.X < timeToX(m.End) {
					acc = acc.Over(kiaiMarkColor)
				}
			case MarkBreak:
				if px.X >= timeToX(m.Start) && px.X < timeToX(m.End) {
					acc = acc.Over(breakMarkColor)
				}
			case MarkBookmark:
				if x := timeToX(m.Start); px.X >= x && px.X < x+1 {
					acc = acc.Over(bookmarkColor)
				}
			case MarkRedline:
				if x := timeToX(m.Start); px.X >= x && px.X < x+1 {
					acc = acc.Over(redlineColor)
				}
			}
		}

		if px.X < cursorX && acc.A > alphaCutoff {
			c := acc.Unpremultiply().Desaturate(s.TimelinePastGrayscale)
			c = c.Mix(s.TimelinePastTint.WithAlpha(c.A), s.TimelinePastTint.A)
			acc = c.Premultiply()
		}
		if onRectBorder(px, r) {
			acc = acc.Over(hudBorderColor)
		}
		return Premul{R: acc.R * opacity, G: acc.G * opacity, B: acc.B * opacity, A: acc.A * opacity}
	}
	return []quad{{rect: r.Expand(1), shade: shade}}
}
