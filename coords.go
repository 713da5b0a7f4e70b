package mapshade

// Beatmap positions are authored in a fixed 512x384 logical space; the full
// playable screen is a fixed 640x480 logical space vertically offset from
// it. Both are mapped to screen pixels through the per-frame playfield and
// osu rects supplied by the host. The mapping is a uniform scale plus
// translation; the host keeps the two axis scales locked (aspect-preserving
// layout), and behavior is undefined if they ever diverge.
const (
	BeatfieldWidth  = 512
	BeatfieldHeight = 384
	OsuWidth        = 640
	OsuHeight       = 480
)

// BeatfieldToScreen maps a beatmap-space point into screen pixels through
// the playfield rect.
func BeatfieldToScreen(p Point, playfield Rect) Point {
	return Point{
		X: playfield.X0 + p.X*playfield.Width()/BeatfieldWidth,
		Y: playfield.Y0 + p.Y*playfield.Height()/BeatfieldHeight,
	}
}

// ScreenToBeatfield is the inverse of BeatfieldToScreen.
func ScreenToBeatfield(p Point, playfield Rect) Point {
	return Point{
		X: (p.X - playfield.X0) * BeatfieldWidth / max32(playfield.Width(), epsilon),
		Y: (p.Y - playfield.Y0) * BeatfieldHeight / max32(playfield.Height(), epsilon),
	}
}

// OsuToScreen maps an osu-space point into screen pixels through the osu
// rect.
func OsuToScreen(p Point, osu Rect) Point {
	return Point{
		X: osu.X0 + p.X*osu.Width()/OsuWidth,
		Y: osu.Y0 + p.Y*osu.Height()/OsuHeight,
	}
}

// ScreenToOsu is the inverse of OsuToScreen.
func ScreenToOsu(p Point, osu Rect) Point {
	return Point{
		X: (p.X - osu.X0) * OsuWidth / max32(osu.Width(), epsilon),
		Y: (p.Y - osu.Y0) * OsuHeight / max32(osu.Height(), epsilon),
	}
}

// BeatfieldScale returns the screen pixels per beatmap unit. Anti-alias
// half-widths are divided by this so edge widths are constant in screen
// pixels regardless of playfield zoom.
func BeatfieldScale(playfield Rect) float32 {
	return max32(playfield.Width()/BeatfieldWidth, epsilon)
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
