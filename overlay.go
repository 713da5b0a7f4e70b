package mapshade

import "github.com/chewxy/math32"

// The overlay pass draws everything that sits above the HUD: the loading
// spinner, break and spinner indicators, cursor snap/drag markers and the
// slider ball with its follow circle.

const (
	spinnerRadiusPx  = 24
	spinnerStrokePx  = 4
	spinnerSweepRad  = 4.5
	spinnerTurnsPerS = 1.2

	breakBarWidthFrac = 0.5
	breakBarHeightPx  = 6

	indicatorRadiusPx = 48
	indicatorStrokePx = 5
)

func overlayQuads(f *Frame) []quad {
	s := &f.State
	quads := make([]quad, 0, 6)

	if s.Loading {
		quads = append(quads, loadingSpinnerQuad(s))
	}
	if s.IsBreak && s.BreakTime[1] > s.BreakTime[0] {
		quads = append(quads, breakIndicatorQuad(s))
	}
	if s.SpinnerState != SpinnerNone && s.SpinnerTime[1] > s.SpinnerTime[0] {
		quads = append(quads, spinnerIndicatorQuad(s))
	}
	if s.Slider.Active {
		quads = append(quads, sliderBallQuads(f)...)
	}
	if s.SnapMarkerRadiusPx > 0 && s.SnapMarkerColor.A > 0 {
		quads = append(quads, cursorMarkerQuad(s.CursorPos, s.SnapMarkerColor, s.SnapMarkerRadiusPx))
	}
	if dragging(s) && s.DragMarkerRadiusPx > 0 {
		quads = append(quads, cursorMarkerQuad(s.CursorPos, s.DragMarkerColor, s.DragMarkerRadiusPx))
	}
	return quads
}

func dragging(s *FrameState) bool {
	return s.Selections[SideLeft].Dragging || s.Selections[SideRight].Dragging
}

// loadingSpinnerQuad draws a rotating arc at screen center while assets are
// still streaming in.
func loadingSpinnerQuad(s *FrameState) quad {
	c := Point{X: s.ScreenW / 2, Y: s.ScreenH / 2}
	a0 := math32.Mod(s.TimeElapsedMS/1000*spinnerTurnsPerS, 1) * 2 * math32.Pi
	ext := float32(spinnerRadiusPx + spinnerStrokePx + 1)

	shade := func(px Point) Premul {
		cov := ringCoverage(px, c, spinnerRadiusPx, spinnerStrokePx, 1)
		cov *= arcMask(px, c, a0, spinnerSweepRad, 0.15)
		if cov <= alphaCutoff {
			return Premul{}
		}
		return RGBA{R: 1, G: 1, B: 1, A: cov * 0.9}.Premultiply()
	}
	return quad{rect: R(c.X-ext, c.Y-ext, c.X+ext, c.Y+ext), shade: shade}
}

// breakIndicatorQuad draws the break progress bar across the playfield
// center, draining left to right over the break interval.
func breakIndicatorQuad(s *FrameState) quad {
	pf := s.PlayfieldRect
	w := pf.Width() * breakBarWidthFrac
	c := pf.Center()
	r := R(c.X-w/2, c.Y-breakBarHeightPx/2, c.X+w/2, c.Y+breakBarHeightPx/2)
	frac := clamp((s.TimeMS-s.BreakTime[0])/max32(s.BreakTime[1]-s.BreakTime[0], epsilon), 0, 1)

	shade := func(px Point) Premul {
		var acc Premul
		acc = acc.Over(RGBA{R: 0, G: 0, B: 0, A: 0.4})
		if px.X < r.X0+r.Width()*(1-frac) {
			acc = acc.Over(RGBA{R: 1, G: 1, B: 1, A: 0.85})
		}
		if onRectBorder(px, r) {
			acc = acc.Over(hudBorderColor)
		}
		return acc
	}
	return quad{rect: r.Expand(1), shade: shade}
}

// spinnerIndicatorQuad draws the spinner countdown ring: the remaining
// fraction of the spinner interval as an arc, green once cleared.
func spinnerIndicatorQuad(s *FrameState) quad {
	c := s.PlayfieldRect.Center()
	frac := clamp((s.TimeMS-s.SpinnerTime[0])/max32(s.SpinnerTime[1]-s.SpinnerTime[0], epsilon), 0, 1)
	sweep := (1 - frac) * 2 * math32.Pi
	col := RGBA{R: 1, G: 1, B: 1, A: 0.85}
	if s.SpinnerState == SpinnerCleared {
		col = RGBA{R: 0.3, G: 0.95, B: 0.4, A: 0.9}
	}
	ext := float32(indicatorRadiusPx + indicatorStrokePx + 1)

	shade := func(px Point) Premul {
		cov := ringCoverage(px, c, indicatorRadiusPx, indicatorStrokePx, 1)
		if sweep < 2*math32.Pi-epsilon {
			cov *= arcMask(px, c, -math32.Pi/2, sweep, 0.1)
		}
		if cov <= alphaCutoff {
			return Premul{}
		}
		return col.WithAlpha(col.A * cov).Premultiply()
	}
	return quad{rect: R(c.X-ext, c.Y-ext, c.X+ext, c.Y+ext), shade: shade}
}

// sliderBallQuads draws the ball sprite rotated along the path tangent and
// the follow circle scaled by the configured factor, both at the active
// slider's playback position.
func sliderBallQuads(f *Frame) []quad {
	s := &f.State
	sl := &s.Slider
	center := BeatfieldToScreen(sl.Position, s.PlayfieldRect)
	radius := sl.Radius * BeatfieldScale(s.PlayfieldRect)
	var quads []quad

	if f.Sprites != nil && f.Sprites.FollowCircle != nil {
		fr := radius * max32(f.Skin.FollowCircle, epsilon) * max32(sl.FollowScale, epsilon)
		shade := func(px Point) Premul {
			uv := Point{X: 0.5 + (px.X-center.X)/(2*fr), Y: 0.5 + (px.Y-center.Y)/(2*fr)}
			return f.Sprites.FollowCircle.Sample(uv).Premultiply()
		}
		quads = append(quads, quad{
			rect:  R(center.X-fr, center.Y-fr, center.X+fr, center.Y+fr),
			shade: shade,
		})
	}

	dir := sl.Direction
	if dir.LengthSquared() < epsilon {
		dir = Point{X: 1}
	}
	if f.Sprites != nil && f.Sprites.SliderBall != nil {
		br := radius * max32(f.Skin.SliderBall, epsilon)
		tint := sl.Color
		shade := func(px Point) Premul {
			d := px.Sub(center).RotateByInverse(dir)
			uv := Point{X: 0.5 + d.X/(2*br), Y: 0.5 + d.Y/(2*br)}
			c := f.Sprites.SliderBall.Sample(uv)
			c.R *= tint.R
			c.G *= tint.G
			c.B *= tint.B
			return c.Premultiply()
		}
		quads = append(quads, quad{
			rect:  R(center.X-br, center.Y-br, center.X+br, center.Y+br),
			shade: shade,
		})
	}
	return quads
}

// cursorMarkerQuad draws a ring marker at a cursor-tracked position.
func cursorMarkerQuad(at Point, col RGBA, radius float32) quad {
	ext := radius + 2.5
	shade := func(px Point) Premul {
		cov := ringCoverage(px, at, radius, 1.5, 1)
		if cov <= alphaCutoff {
			return Premul{}
		}
		return col.WithAlpha(col.A * cov).Premultiply()
	}
	return quad{rect: R(at.X-ext, at.Y-ext, at.X+ext, at.Y+ext), shade: shade}
}
