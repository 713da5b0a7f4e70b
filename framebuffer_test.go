package mapshade

import "testing"

func TestFramebufferSetAt(t *testing.T) {
	fb := NewFramebuffer(8, 4)
	c := Premul{R: 0.5, G: 0.25, B: 0.125, A: 0.5}
	fb.Set(3, 2, c)
	if got := fb.At(3, 2); got != c {
		t.Errorf("got %+v, want %+v", got, c)
	}
	if got := fb.At(0, 0); got != (Premul{}) {
		t.Errorf("untouched pixel %+v", got)
	}
}

func TestFramebufferOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Set(-1, 0, Premul{A: 1}) // must not panic or alias
	fb.Set(4, 4, Premul{A: 1})
	if got := fb.At(-1, 0); got != (Premul{}) {
		t.Errorf("out-of-bounds read %+v", got)
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	c := Premul{R: 0.1, G: 0.2, B: 0.3, A: 1}
	fb.Clear(c)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if fb.At(x, y) != c {
				t.Fatalf("pixel (%d,%d) = %+v", x, y, fb.At(x, y))
			}
		}
	}
}

func TestFramebufferToImage(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Set(0, 0, RGBA{R: 1, G: 0, B: 0, A: 1}.Premultiply())
	img := fb.ToImage()
	i := img.PixOffset(0, 0)
	if img.Pix[i] != 255 || img.Pix[i+1] != 0 || img.Pix[i+3] != 255 {
		t.Errorf("pixel bytes %v", img.Pix[i:i+4])
	}
	i = img.PixOffset(1, 0)
	if img.Pix[i+3] != 0 {
		t.Errorf("transparent pixel alpha %d", img.Pix[i+3])
	}
}
