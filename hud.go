package mapshade

import (
	"strconv"

	"github.com/chewxy/math32"
)

// The HUD is a set of rectangular panels composited in declaration order.
// Panels share one look: a translucent two-tone background, a one-pixel
// border, an optional proportional fill bar, and bitmap-font text rows.
// Everything is multiplied by the global HUD opacity.

var (
	hudPanelColor  = RGBA{R: 0.07, G: 0.07, B: 0.10, A: 0.85}
	hudPanelAccent = RGBA{R: 0.12, G: 0.12, B: 0.17, A: 0.85}
	hudBorderColor = RGBA{R: 0.45, G: 0.45, B: 0.55, A: 0.9}
	hudTextColor   = RGBA{R: 0.92, G: 0.92, B: 0.95, A: 1}
	hudFillColor   = RGBA{R: 0.25, G: 0.55, B: 0.95, A: 0.6}
)

// hudTextHeight is the cell height of panel text rows, screen pixels.
const hudTextHeight = 14

type panel struct {
	rect      Rect
	fill      float32 // fill-bar fraction, < 0 for none
	fillColor RGBA
	lines     []TextLine
}

// quad renders the panel. The top row band uses the accent tone so stacked
// readouts stay visually separated.
func (p panel) quad(opacity float32) quad {
	r := p.rect
	shade := func(px Point) Premul {
		var acc Premul
		bg := hudPanelColor
		if px.Y < r.Y0+hudTextHeight+4 {
			bg = hudPanelAccent
		}
		acc = acc.Over(bg)
		if p.fill >= 0 {
			if px.X < r.X0+r.Width()*clamp(p.fill, 0, 1) {
				acc = acc.Over(p.fillColor)
			}
		}
		for _, line := range p.lines {
			if a := line.Alpha(px); a > 0 {
				acc = acc.Over(hudTextColor.WithAlpha(hudTextColor.A * a))
			}
		}
		if onRectBorder(px, r) {
			acc = acc.Over(hudBorderColor)
		}
		return Premul{R: acc.R * opacity, G: acc.G * opacity, B: acc.B * opacity, A: acc.A * opacity}
	}
	return quad{rect: r.Expand(1), shade: shade}
}

// hudQuads emits all HUD panels and widgets for the frame.
func hudQuads(f *Frame) []quad {
	s := &f.State
	if s.HUDOpacity <= alphaCutoff {
		return nil
	}
	quads := make([]quad, 0, 16)

	if !s.StatsBoxRect.Empty() {
		quads = append(quads, statsPanel(s).quad(s.HUDOpacity))
		quads = append(quads, meterPanels(s)...)
	}
	if !s.PlayPauseRect.Empty() {
		quads = append(quads, playPauseQuad(s))
	}
	quads = append(quads, undoStackQuads(s)...)
	quads = append(quads, selectionPanelQuads(s)...)
	quads = append(quads, selectionQuads(s)...)
	return quads
}

// statsPanel lays out the performance and transport readouts.
func statsPanel(s *FrameState) panel {
	r := s.StatsBoxRect
	x := r.X0 + 6
	y := r.Y0 + 4
	row := func(text string) TextLine {
		l := LeftAligned(text, Point{X: x, Y: y}, hudTextHeight)
		y += hudTextHeight + 3
		return l
	}
	lines := []TextLine{
		row("FPS " + PadLeft(FormatFixedX10(s.FPSx10), 6)),
		row("LOW " + PadLeft(FormatFixedX10(s.FPSLowx10), 6)),
		row("CPU " + PadLeft(FormatFixedX10(s.CPUPassx10), 5) + "MS"),
		row("GPU " + PadLeft(FormatFixedX10(s.GPUPassx10), 5) + "MS"),
		row("T   " + FormatTimeMS(s.TimeMS)),
		row("RATE X" + FormatFixedX10(uint32(s.PlaybackRate*10+0.5))),
		row(statusText(s)),
	}
	if s.UndoCount > 0 {
		lines = append(lines, row("UNDO "+strconv.FormatUint(uint64(s.UndoCount), 10)))
	}
	return panel{rect: r, fill: -1, lines: lines}
}

// undoStackQuads renders the undo/redo history as a stack of buttons, one
// row per recorded state: the state name on the left, its age on the right.
// The current state carries the accent tone; hovered and clicked rows
// brighten toward the text color.
func undoStackQuads(s *FrameState) []quad {
	quads := make([]quad, 0, len(s.UndoStack))
	for i := range s.UndoStack {
		if row := &s.UndoStack[i]; !row.Rect.Empty() {
			quads = append(quads, undoRowQuad(row, s.HUDOpacity))
		}
	}
	return quads
}

func undoRowQuad(row *UndoStackRow, opacity float32) quad {
	r := row.Rect
	bg := hudPanelColor
	if row.Kind == UndoRowCurrent {
		bg = hudPanelAccent
	}
	switch {
	case row.Clicked:
		bg = bg.Mix(hudTextColor, 0.25)
	case row.Hovered:
		bg = bg.Mix(hudTextColor, 0.12)
	}
	ty := r.Y0 + (r.Height()-hudTextHeight)/2
	lines := []TextLine{
		LeftAligned(row.Name, Point{X: r.X0 + 6, Y: ty}, hudTextHeight),
		RightAligned(FormatTimeMS(row.AgeMS), Point{X: r.X1 - 6, Y: ty}, hudTextHeight),
	}
	shade := func(px Point) Premul {
		var acc Premul
		acc = acc.Over(bg)
		for _, line := range lines {
			if a := line.Alpha(px); a > 0 {
				acc = acc.Over(hudTextColor.WithAlpha(hudTextColor.A * a))
			}
		}
		if onRectBorder(px, r) {
			acc = acc.Over(hudBorderColor)
		}
		return Premul{R: acc.R * opacity, G: acc.G * opacity, B: acc.B * opacity, A: acc.A * opacity}
	}
	return quad{rect: r.Expand(1), shade: shade}
}

// statusText summarizes the transport and section state in one row.
func statusText(s *FrameState) string {
	out := "PAUSED"
	if s.Playing {
		out = "PLAYING"
	}
	switch {
	case s.IsBreak:
		out += " BREAK"
	case s.IsKiai:
		out += " KIAI"
	}
	return out
}

// meterPanels are the volume, hitsound and zoom bars stacked under the
// stats box, each a labeled fill bar.
func meterPanels(s *FrameState) []quad {
	const barH = hudTextHeight + 8
	r := s.StatsBoxRect
	y := r.Y1 + 4
	make1 := func(label string, frac float32) quad {
		br := R(r.X0, y, r.X1, y+barH)
		y += barH + 4
		p := panel{
			rect:      br,
			fill:      frac,
			fillColor: hudFillColor,
			lines: []TextLine{
				LeftAligned(label, Point{X: br.X0 + 6, Y: br.Y0 + 4}, hudTextHeight),
			},
		}
		return p.quad(s.HUDOpacity)
	}
	return []quad{
		make1("VOL", s.AudioVolume),
		make1("HIT", s.HitsoundVolume),
		make1("ZOOM", clamp(s.TimelineZoom/8, 0, 1)),
	}
}

// playPauseQuad draws the transport button: a right-pointing triangle while
// paused, two vertical bars while playing. Glyph coverage is geometric, not
// sprite based, so the button scales with its rect.
func playPauseQuad(s *FrameState) quad {
	r := s.PlayPauseRect
	opacity := s.HUDOpacity
	playing := s.Playing
	inner := r.Expand(-r.Width() * 0.28)

	shade := func(px Point) Premul {
		var acc Premul
		acc = acc.Over(hudPanelColor)
		cov := float32(0)
		if playing {
			// Pause: two bars, each a third of the inner width.
			w := inner.Width() / 3
			if inner.Contains(px) {
				lx := px.X - inner.X0
				if lx < w || lx >= 2*w {
					cov = 1
				}
			}
		} else {
			// Play: triangle from the inner left edge to the right midpoint.
			if inner.Contains(px) {
				ty := (px.Y - inner.Y0) / max32(inner.Height(), epsilon) // 0..1
				tx := (px.X - inner.X0) / max32(inner.Width(), epsilon)
				half := 1 - 2*math32.Abs(ty-0.5)
				if tx <= half {
					cov = 1
				}
			}
		}
		if cov > 0 {
			acc = acc.Over(hudTextColor.WithAlpha(hudTextColor.A * cov))
		}
		if onRectBorder(px, r) {
			acc = acc.Over(hudBorderColor)
		}
		return Premul{R: acc.R * opacity, G: acc.G * opacity, B: acc.B * opacity, A: acc.A * opacity}
	}
	return quad{rect: r.Expand(1), shade: shade}
}

// selectionPanelQuads renders the per-side selection detail readouts.
func selectionPanelQuads(s *FrameState) []quad {
	var quads []quad
	for side := range s.Selections {
		sel := &s.Selections[side]
		if !sel.Exists || sel.OverlayRect.Empty() {
			continue
		}
		r := sel.OverlayRect
		x := r.X0 + 6
		y := r.Y0 + 4
		row := func(text string) TextLine {
			l := LeftAligned(text, Point{X: x, Y: y}, hudTextHeight)
			y += hudTextHeight + 3
			return l
		}
		name := "L"
		if SelectionSide(side) == SideRight {
			name = "R"
		}
		lines := []TextLine{
			row("SEL " + name),
			row("X " + FormatSigned(int(sel.OriginPlayfield.X))),
			row("Y " + FormatSigned(int(sel.OriginPlayfield.Y))),
			row("DX " + FormatSigned(int(sel.MovedPlayfield.X-sel.OriginPlayfield.X))),
			row("DY " + FormatSigned(int(sel.MovedPlayfield.Y-sel.OriginPlayfield.Y))),
			row("ROT " + FormatSigned(int(sel.RotationDegrees))),
			row("SCL X" + FormatFixedX10(uint32(sel.Scale*10+0.5))),
		}
		quads = append(quads, panel{rect: r, fill: -1, lines: lines}.quad(s.HUDOpacity))
	}
	return quads
}
