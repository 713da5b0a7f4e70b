package parallel

// Tile size constants. 64x64 keeps a tile's framebuffer region inside L1
// and gives the pool enough items to balance uneven shading cost.
const (
	// TileWidth is the width of a tile in pixels.
	TileWidth = 64

	// TileHeight is the height of a tile in pixels.
	TileHeight = 64
)

// Tile is a rectangular screen region shaded by one work item. Tiles do
// not own pixels; they address disjoint regions of the shared output
// buffer, which is what makes the tile loop lock-free.
type Tile struct {
	// X0, Y0 are the top-left pixel coordinates in screen space.
	X0, Y0 int

	// Width and Height are the actual dimensions; edge tiles are clamped
	// to the screen.
	Width, Height int
}

// Tiles splits a width x height screen into row-major tiles.
func Tiles(width, height int) []Tile {
	if width <= 0 || height <= 0 {
		return nil
	}
	tilesX := (width + TileWidth - 1) / TileWidth
	tilesY := (height + TileHeight - 1) / TileHeight

	out := make([]Tile, 0, tilesX*tilesY)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			t := Tile{
				X0:     tx * TileWidth,
				Y0:     ty * TileHeight,
				Width:  TileWidth,
				Height: TileHeight,
			}
			if t.X0+t.Width > width {
				t.Width = width - t.X0
			}
			if t.Y0+t.Height > height {
				t.Height = height - t.Y0
			}
			out = append(out, t)
		}
	}
	return out
}
