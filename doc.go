// Package mapshade is a per-pixel rendering and compositing core for a
// rhythm-game beatmap editor.
//
// # Overview
//
// mapshade draws playable objects (circular hit markers, distance-field
// slider bodies, slider caps and reverse arrows), an editor HUD (timeline,
// stat panels, selection overlays, play controls) and auxiliary overlays
// (loading spinner, break/spinner indicators, slider ball). Every shape is
// evaluated procedurally per output pixel from distance fields and analytic
// coverage functions; there are no precomputed meshes or pre-rasterized
// glyphs.
//
// # Quick Start
//
//	import "github.com/osukit/mapshade"
//
//	r := mapshade.NewRenderer()
//	defer r.Close()
//
//	fb := mapshade.NewFramebuffer(1920, 1080)
//	r.RenderFrame(fb, frame) // frame built by the host editor each tick
//
// # Architecture
//
// The host editor produces an immutable Frame each tick: global FrameState
// plus record slices for hit objects, slider segments/boxes and timeline
// points/marks. RenderFrame evaluates the fixed stage order (background,
// hit objects back-to-front, HUD, timeline, overlay) as pure per-pixel
// functions, parallelized over 64x64 screen tiles by a work-stealing worker
// pool. All layering goes through a single premultiplied source-over
// operator, so the output buffer is always valid premultiplied color.
//
// The library is organized into:
//   - Public API: Frame, Renderer, Framebuffer, RGBA/Premul, Point, Rect
//   - Shading: coords, anim, sdf, glyph, sprite samplers
//   - Internal: parallel (tile grid + worker pool)
package mapshade
