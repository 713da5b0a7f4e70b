package mapshade

// Selection overlays. Each selection side draws a possibly rotated quad
// with an interior tint and a border-only stroke, plus the origin handle as
// concentric rings. Both sides use the same code path with their own role
// palette; there is no per-side branching beyond the palette lookup.

const (
	selectionStrokePx  = 1.5
	originHandleRadius = 7
	originHandleStroke = 1.5
	originHandleDotR   = 2.5
	selectionAAWidth   = 1
)

// selectionQuads emits the selection box and origin-handle quads for every
// active side.
func selectionQuads(s *FrameState) []quad {
	var quads []quad
	for side := range s.Selections {
		sel := &s.Selections[side]
		if !sel.Exists {
			continue
		}
		quads = append(quads, selectionBoxQuad(s, sel))
		quads = append(quads, originHandleQuad(s, sel, sel.Origin))
		if sel.Dragging {
			quads = append(quads, originHandleQuad(s, sel, sel.Dragged))
			if dr, ok := dragRect(sel); ok {
				quads = append(quads, dragRectQuad(s, sel, dr))
			}
		}
	}
	return quads
}

func selectionBoxQuad(s *FrameState, sel *SelectionState) quad {
	corners := sel.Quad
	border := sel.BorderColor()
	tint := sel.Colors[RoleTint]
	switch {
	case sel.Dragging:
		tint = sel.Colors[RoleTintDragging]
	case sel.Hovered:
		tint = sel.Colors[RoleTintHovered]
	}
	opacity := s.HUDOpacity

	r := R(corners[0].X, corners[0].Y, corners[0].X, corners[0].Y)
	for _, c := range corners[1:] {
		r = r.Union(R(c.X, c.Y, c.X, c.Y))
	}
	r = r.Expand(selectionStrokePx + selectionAAWidth)

	shade := func(px Point) Premul {
		d := DistPointQuad(px, corners)
		var acc Premul
		if d < 0 {
			acc = acc.Over(tint)
		}
		if cov := quadStrokeCoverage(px, corners, selectionStrokePx, selectionAAWidth); cov > 0 {
			acc = acc.Over(border.WithAlpha(border.A * cov))
		}
		return Premul{R: acc.R * opacity, G: acc.G * opacity, B: acc.B * opacity, A: acc.A * opacity}
	}
	return quad{rect: r, shade: shade}
}

// dragRect is the axis-aligned rubber band spanned by the drag origin and
// the current cursor. Degenerate spans produce no rectangle.
func dragRect(sel *SelectionState) (Rect, bool) {
	r := R(sel.Origin.X, sel.Origin.Y, sel.Dragged.X, sel.Dragged.Y).Canon()
	if r.Width() < 1 || r.Height() < 1 {
		return Rect{}, false
	}
	return r, true
}

// dragRectQuad draws the drag-select rubber band: a translucent interior in
// the side's drag-rectangle color under a solid one-pixel outline.
func dragRectQuad(s *FrameState, sel *SelectionState, r Rect) quad {
	c := sel.Colors[RoleDragRectangle]
	opacity := s.HUDOpacity

	shade := func(px Point) Premul {
		var acc Premul
		acc = acc.Over(c)
		if onRectBorder(px, r) {
			acc = acc.Over(c.WithAlpha(1))
		}
		return Premul{R: acc.R * opacity, G: acc.G * opacity, B: acc.B * opacity, A: acc.A * opacity}
	}
	return quad{rect: r.Expand(1), shade: shade}
}

// originHandleQuad draws the draggable origin marker: an outer ring plus a
// solid center dot, colored by the side's interaction state.
func originHandleQuad(s *FrameState, sel *SelectionState, at Point) quad {
	c := sel.OriginColor()
	opacity := s.HUDOpacity
	ext := float32(originHandleRadius + originHandleStroke + selectionAAWidth)

	shade := func(px Point) Premul {
		cov := ringCoverage(px, at, originHandleRadius, originHandleStroke, selectionAAWidth)
		cov = max32(cov, fillCoverage(px.Distance(at), originHandleDotR, selectionAAWidth))
		if cov <= alphaCutoff {
			return Premul{}
		}
		a := c.A * cov * opacity
		return Premul{R: c.R * a, G: c.G * a, B: c.B * a, A: a}
	}
	return quad{
		rect:  R(at.X-ext, at.Y-ext, at.X+ext, at.Y+ext),
		shade: shade,
	}
}
