package mapshade

import "github.com/chewxy/math32"

// The top timeline shows every hit object in the visible window as a round
// marker; a slider is a chain of slide-start, repeat and slide-end points
// stroked as one horizontal capsule. Consecutive points of one chain are
// grouped and each group shades as a unit so the capsule body, outline and
// selection ring stay continuous across repeats.

// timelineGroup is one contiguous chain of points, by index range into
// Frame.TimelinePoints.
type timelineGroup struct {
	start, end int // [start, end)
}

// groupTimelinePoints splits the point list into chains. A slide-start
// point opens a chain that runs through repeats to the slide-end; any other
// point is a chain of one. Points only chain while their selection flags
// agree, so a partially selected slider splits visually.
func groupTimelinePoints(points []TimelinePointRecord) []timelineGroup {
	var groups []timelineGroup
	for i := 0; i < len(points); {
		j := i + 1
		if points[i].Flags&TimelineSlideStart != 0 {
			sel := points[i].Flags & (TimelineSelected | TimelineSelectedByLeft)
			for j < len(points) {
				f := points[j].Flags
				if f&(TimelineSlideRepeat|TimelineSlideEnd) == 0 {
					break
				}
				if f&(TimelineSelected|TimelineSelectedByLeft) != sel {
					break
				}
				j++
				if f&TimelineSlideEnd != 0 {
					break
				}
			}
		}
		groups = append(groups, timelineGroup{start: i, end: j})
		i = j
	}
	return groups
}

// timelineGroupQuads emits one quad per chain, latest chain first so
// earlier objects end up on top.
func timelineGroupQuads(f *Frame) []quad {
	s := &f.State
	if s.TopTimelineRect.Empty() || s.HUDOpacity <= alphaCutoff {
		return nil
	}
	groups := groupTimelinePoints(f.TimelinePoints)
	quads := make([]quad, 0, len(groups))
	for i := len(groups) - 1; i >= 0; i-- {
		if q, ok := timelineGroupQuad(f, groups[i]); ok {
			quads = append(quads, q)
		}
	}
	return quads
}

func timelineGroupQuad(f *Frame, g timelineGroup) (quad, bool) {
	s := &f.State
	points := f.TimelinePoints[g.start:g.end]
	first := &points[0]
	last := &points[len(points)-1]

	baseR := 0.40 * s.TopTimelineRect.Height() * first.RadiusMult
	const outlinePx = 1.5
	const selectionGapPx = 2
	const aa = 1

	ext := baseR + outlinePx + selectionGapPx + outlinePx + aa
	x0 := math32.Min(first.X, last.X)
	x1 := math32.Max(first.X, last.X)
	cy := first.CenterY
	rect := R(x0-ext, cy-ext, x1+ext, cy+ext)
	if !rect.Intersects(s.TopTimelineRect.Expand(ext)) {
		return quad{}, false
	}

	selected := first.Flags&TimelineSelected != 0
	side := SideRight
	if first.Flags&TimelineSelectedByLeft != 0 {
		side = SideLeft
	}
	ringColor := s.Selections[side].Colors[RoleBorder]

	body := first.Color
	past := first.X < s.TimelineCurrentX
	if past {
		body = body.Desaturate(s.TimelinePastGrayscale)
		body = body.Mix(s.TimelinePastObjectTint.WithAlpha(body.A), s.TimelinePastObjectTint.A)
	}
	outline := s.TimelineOutlineColor
	opacity := s.HUDOpacity
	a, b := Point{X: x0, Y: cy}, Point{X: x1, Y: cy}

	shade := func(px Point) Premul {
		d, _ := DistPointSegment(px, a, b)
		var acc Premul

		if cov := fillCoverage(d, baseR, aa); cov > alphaCutoff {
			acc = acc.Over(body.WithAlpha(body.A * cov))
		}
		if cov := bandCoverage(d, baseR-outlinePx, baseR+outlinePx, aa); cov > alphaCutoff {
			acc = acc.Over(outline.WithAlpha(outline.A * cov))
		}
		if selected {
			ringR := baseR + outlinePx + selectionGapPx
			if cov := bandCoverage(d, ringR-outlinePx, ringR+outlinePx, aa); cov > alphaCutoff {
				acc = acc.Over(ringColor.WithAlpha(ringColor.A * cov))
			}
		}

		// Role markers over the capsule: end first, repeats, then the
		// start so overlapping short chains keep the start readable.
		for i := len(points) - 1; i >= 0; i-- {
			p := &points[i]
			acc = acc.Over(timelineRoleMarker(px, p, baseR, aa))
		}

		if acc.A <= alphaCutoff {
			return Premul{}
		}
		return Premul{R: acc.R * opacity, G: acc.G * opacity, B: acc.B * opacity, A: acc.A * opacity}
	}
	return quad{rect: rect, shade: shade}, true
}

// timelineRoleMarker shades the per-point glyph: a ring on slide starts, a
// solid dot on repeats, a hollow dot on slide ends.
func timelineRoleMarker(px Point, p *TimelinePointRecord, baseR, aa float32) RGBA {
	c := Point{X: p.X, Y: p.CenterY}
	d := px.Distance(c)
	markerWhite := RGBA{R: 1, G: 1, B: 1, A: 0.9}
	switch {
	case p.Flags&TimelineSlideRepeat != 0:
		return markerWhite.WithAlpha(markerWhite.A * fillCoverage(d, baseR*0.30, aa))
	case p.Flags&TimelineSlideEnd != 0:
		return markerWhite.WithAlpha(markerWhite.A * bandCoverage(d, baseR*0.22, baseR*0.38, aa))
	case p.Flags&TimelineSlideStart != 0, p.Flags&TimelineSliderOrSpinner == 0:
		return markerWhite.WithAlpha(markerWhite.A * bandCoverage(d, baseR*0.55, baseR*0.70, aa))
	default:
		return RGBA{}
	}
}
