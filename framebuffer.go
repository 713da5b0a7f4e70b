package mapshade

import (
	"image"
	"image/png"
	"os"
)

// Framebuffer is a rectangular buffer of premultiplied float32 RGBA
// pixels. Stages composite into it in the fixed pipeline order; the host
// reads it out (or converts it) after RenderFrame returns.
type Framebuffer struct {
	width  int
	height int
	pix    []float32 // RGBA, 4 floats per pixel, premultiplied
}

// NewFramebuffer creates a cleared framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]float32, width*height*4),
	}
}

// Width returns the width of the framebuffer.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the height of the framebuffer.
func (f *Framebuffer) Height() int {
	return f.height
}

// Pix returns the raw premultiplied pixel data.
func (f *Framebuffer) Pix() []float32 {
	return f.pix
}

// At returns the premultiplied color of a single pixel.
func (f *Framebuffer) At(x, y int) Premul {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Premul{}
	}
	i := (y*f.width + x) * 4
	return Premul{R: f.pix[i], G: f.pix[i+1], B: f.pix[i+2], A: f.pix[i+3]}
}

// Set writes the premultiplied color of a single pixel.
func (f *Framebuffer) Set(x, y int, c Premul) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.pix[i] = c.R
	f.pix[i+1] = c.G
	f.pix[i+2] = c.B
	f.pix[i+3] = c.A
}

// Clear fills the framebuffer with a premultiplied color.
func (f *Framebuffer) Clear(c Premul) {
	for i := 0; i < len(f.pix); i += 4 {
		f.pix[i] = c.R
		f.pix[i+1] = c.G
		f.pix[i+2] = c.B
		f.pix[i+3] = c.A
	}
}

// ToImage converts the framebuffer to a premultiplied image.RGBA.
func (f *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.At(x, y).Color()
			i := img.PixOffset(x, y)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}

// SavePNG saves the framebuffer to a PNG file. Intended for tests and
// debugging snapshots, not the frame path.
func (f *Framebuffer) SavePNG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()
	return png.Encode(file, f.ToImage())
}
