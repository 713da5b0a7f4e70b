package mapshade

import (
	"github.com/osukit/mapshade/internal/parallel"
)

// shadeFunc evaluates one element's premultiplied contribution at a pixel
// center. Implementations are pure: they read only the closure's immutable
// per-frame data.
type shadeFunc func(px Point) Premul

// quad is one screen-aligned draw quad: a bounding rect plus the shade
// function evaluated for pixels inside it. Quads are the unit of spatial
// culling; rect must contain every pixel the shade function can touch.
type quad struct {
	rect  Rect
	shade shadeFunc
}

// Renderer executes the fixed pipeline over screen tiles. It holds only
// the worker pool; all per-frame state arrives through RenderFrame and is
// discarded when the call returns.
type Renderer struct {
	pool *parallel.WorkerPool
}

// NewRenderer creates a renderer with one worker per logical CPU.
func NewRenderer() *Renderer {
	return NewRendererWithWorkers(0)
}

// NewRendererWithWorkers creates a renderer with an explicit worker count
// (0 means GOMAXPROCS).
func NewRendererWithWorkers(workers int) *Renderer {
	r := &Renderer{pool: parallel.NewWorkerPool(workers)}
	Logger().Debug("renderer created", "workers", r.pool.Workers())
	return r
}

// Close releases the worker pool. The renderer must not be used after.
func (r *Renderer) Close() {
	r.pool.Close()
}

// RenderFrame shades one frame into dst. The pipeline stage order is
// fixed: background, then hit objects back-to-front (slider body, slider
// caps, then circle per object, so the head circle covers its own body and
// earlier objects cover later ones), then HUD, timeline sub-layers, and
// the overlay pass last so markers render above everything.
//
// dst is written disjointly per tile; frame must not be mutated until
// RenderFrame returns. A frame superseded by a newer one should simply not
// be rendered; partial results are never merged.
func (r *Renderer) RenderFrame(dst *Framebuffer, frame *Frame) {
	quads := make([]quad, 0, 64+4*len(frame.Objects))
	quads = append(quads, backgroundQuads(frame)...)
	quads = append(quads, objectQuads(frame)...)
	quads = append(quads, hudQuads(frame)...)
	quads = append(quads, timelineBarQuads(frame)...)
	quads = append(quads, timelineGroupQuads(frame)...)
	quads = append(quads, overlayQuads(frame)...)

	tiles := parallel.Tiles(dst.Width(), dst.Height())
	work := make([]func(), len(tiles))
	for i, tile := range tiles {
		tile := tile
		work[i] = func() { shadeTile(dst, tile, quads) }
	}
	r.pool.ExecuteAll(work)
}

// shadeTile composites every quad overlapping the tile, in pipeline order,
// into the tile's region of dst.
func shadeTile(dst *Framebuffer, tile parallel.Tile, quads []quad) {
	tileRect := R(
		float32(tile.X0), float32(tile.Y0),
		float32(tile.X0+tile.Width), float32(tile.Y0+tile.Height),
	)

	// Pre-filter quads for this tile; most tiles intersect few.
	local := make([]quad, 0, 16)
	for _, q := range quads {
		if q.rect.Intersects(tileRect) {
			local = append(local, q)
		}
	}
	if len(local) == 0 {
		return
	}

	for y := tile.Y0; y < tile.Y0+tile.Height; y++ {
		for x := tile.X0; x < tile.X0+tile.Width; x++ {
			px := Point{X: float32(x) + 0.5, Y: float32(y) + 0.5}
			acc := dst.At(x, y)
			wrote := false
			for _, q := range local {
				if px.X < q.rect.X0 || px.X >= q.rect.X1 || px.Y < q.rect.Y0 || px.Y >= q.rect.Y1 {
					continue
				}
				c := q.shade(px)
				if c.Negligible() {
					continue
				}
				acc = acc.OverPremul(c)
				wrote = true
			}
			if wrote {
				dst.Set(x, y, acc)
			}
		}
	}
}

// fullscreenRect is the quad rect covering the whole frame.
func fullscreenRect(s *FrameState) Rect {
	return R(0, 0, s.ScreenW, s.ScreenH)
}
