package mapshade

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a straight (non-premultiplied) color with components in
// the range [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Scaled returns the color with its alpha multiplied by s.
// The color channels are left untouched; premultiplication happens only
// inside the Over operator.
func (c RGBA) Scaled(s float32) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A * s}
}

// WithAlpha returns the color with alpha replaced by a.
func (c RGBA) WithAlpha(a float32) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Mix linearly interpolates toward o by t in straight space.
func (c RGBA) Mix(o RGBA, t float32) RGBA {
	return RGBA{
		R: lerp(c.R, o.R, t),
		G: lerp(c.G, o.G, t),
		B: lerp(c.B, o.B, t),
		A: lerp(c.A, o.A, t),
	}
}

// Premultiply converts the color to premultiplied form.
func (c RGBA) Premultiply() Premul {
	return Premul{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Premul represents a premultiplied color: each channel is pre-scaled by
// alpha, so source-over compositing is a single fused multiply-add and the
// operator is associative. Every accumulator in this package is Premul.
type Premul struct {
	R, G, B, A float32
}

// Over composites the straight color src over the premultiplied dst and
// returns the premultiplied result:
//
//	out.rgb = src.rgb*src.a + dst.rgb*(1-src.a)
//	out.a   = src.a         + dst.a  *(1-src.a)
//
// This is the single compositing operator every renderer in the package
// accumulates through.
func (d Premul) Over(src RGBA) Premul {
	inv := 1 - src.A
	return Premul{
		R: src.R*src.A + d.R*inv,
		G: src.G*src.A + d.G*inv,
		B: src.B*src.A + d.B*inv,
		A: src.A + d.A*inv,
	}
}

// OverPremul composites an already-premultiplied src over dst. Used when a
// renderer has internally composited a multi-layer contribution and the
// result is merged into the stage accumulator.
func (d Premul) OverPremul(src Premul) Premul {
	inv := 1 - src.A
	return Premul{
		R: src.R + d.R*inv,
		G: src.G + d.G*inv,
		B: src.B + d.B*inv,
		A: src.A + d.A*inv,
	}
}

// Negligible reports whether the color contributes nothing visible.
// Pixels for which this is true may be skipped entirely.
func (d Premul) Negligible() bool {
	return d.A <= alphaCutoff
}

// Unpremultiply converts back to straight color. Fully transparent
// premultiplied colors map to the zero RGBA.
func (d Premul) Unpremultiply() RGBA {
	if d.A < epsilon {
		return RGBA{}
	}
	return RGBA{R: d.R / d.A, G: d.G / d.A, B: d.B / d.A, A: d.A}
}

// Color converts the premultiplied value to the standard library's
// premultiplied color.RGBA.
func (d Premul) Color() color.RGBA {
	return color.RGBA{
		R: uint8(clamp(d.R, 0, 1)*255 + 0.5),
		G: uint8(clamp(d.G, 0, 1)*255 + 0.5),
		B: uint8(clamp(d.B, 0, 1)*255 + 0.5),
		A: uint8(clamp(d.A, 0, 1)*255 + 0.5),
	}
}

// alphaCutoff is the threshold below which a composited pixel is treated as
// fully transparent and not written.
const alphaCutoff = 1e-6

// Lighten raises the color's lightness by t in HSL space, used for the
// break-time field brightening. t=0 is the identity.
func (c RGBA) Lighten(t float32) RGBA {
	if t <= 0 {
		return c
	}
	cf := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
	h, s, l := cf.Hsl()
	l += (1 - l) * float64(t)
	out := colorful.Hsl(h, s, l).Clamped()
	return RGBA{R: float32(out.R), G: float32(out.G), B: float32(out.B), A: c.A}
}

// Desaturate moves the color toward its luminance by t, used for the
// timeline "past" shading. t=1 is full grayscale.
func (c RGBA) Desaturate(t float32) RGBA {
	if t <= 0 {
		return c
	}
	cf := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
	l, _, _ := cf.Luv()
	gray := float32(l)
	return RGBA{
		R: lerp(c.R, gray, t),
		G: lerp(c.G, gray, t),
		B: lerp(c.B, gray, t),
		A: c.A,
	}
}
