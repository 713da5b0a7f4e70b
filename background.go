package mapshade

// The background pass paints the three nested coordinate fields: the outer
// region, the 640x480 gameplay area and the 512x384 playfield, each with a
// one-pixel border. During a break the field fills are lightened so the
// editor reads as "resting".

func backgroundQuads(f *Frame) []quad {
	s := &f.State

	playfield := s.PlayfieldColor
	gameplay := s.GameplayColor
	outer := s.OuterColor
	if s.IsBreak {
		playfield = playfield.Lighten(s.BreakLightness)
		gameplay = gameplay.Lighten(s.BreakLightness)
		outer = outer.Lighten(s.BreakLightness)
	}

	pf := s.PlayfieldRect
	osu := s.OsuRect
	pfBorder := s.PlayfieldBorderColor
	osuBorder := s.GameplayBorderColor

	shade := func(px Point) Premul {
		var acc Premul

		switch {
		case pf.Contains(px):
			acc = acc.Over(playfield)
		case osu.Contains(px):
			acc = acc.Over(gameplay)
		default:
			acc = acc.Over(outer)
		}

		// 1px borders drawn over the fills.
		if onRectBorder(px, osu) {
			acc = acc.Over(osuBorder)
		}
		if onRectBorder(px, pf) {
			acc = acc.Over(pfBorder)
		}
		return acc
	}

	return []quad{{rect: fullscreenRect(s), shade: shade}}
}

// onRectBorder reports whether the pixel center lies on the one-pixel
// outline of r.
func onRectBorder(px Point, r Rect) bool {
	if px.X < r.X0-1 || px.X >= r.X1+1 || px.Y < r.Y0-1 || px.Y >= r.Y1+1 {
		return false
	}
	inside := px.X >= r.X0 && px.X < r.X1 && px.Y >= r.Y0 && px.Y < r.Y1
	core := px.X >= r.X0+1 && px.X < r.X1-1 && px.Y >= r.Y0+1 && px.Y < r.Y1-1
	return inside && !core
}
