package mapshade

import (
	"fmt"
	"image"
	"os"

	"github.com/chewxy/math32"
	xdraw "golang.org/x/image/draw"
	// Register the decoders skins actually ship.
	_ "image/jpeg"
	_ "image/png"
)

// Sprite is a decoded skin texture stored as straight float32 RGBA, sampled
// bilinearly in normalized UV space. UVs outside [0,1] sample transparent,
// so oversized quads never smear sprite edges.
type Sprite struct {
	width  int
	height int
	pix    []float32 // RGBA, straight alpha
}

// SpriteFromImage converts an image into a sampleable sprite.
func SpriteFromImage(img image.Image) *Sprite {
	b := img.Bounds()
	s := &Sprite{
		width:  b.Dx(),
		height: b.Dy(),
		pix:    make([]float32, b.Dx()*b.Dy()*4),
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, a := img.At(x, y).RGBA()
			// RGBA() is premultiplied 16-bit; store straight.
			af := float32(a) / 65535
			if af > 0 {
				s.pix[i] = float32(r) / 65535 / af
				s.pix[i+1] = float32(g) / 65535 / af
				s.pix[i+2] = float32(bb) / 65535 / af
			}
			s.pix[i+3] = af
			i += 4
		}
	}
	return s
}

// LoadSprite decodes an image file into a sprite. When nominal > 0 and the
// decoded image is larger, it is downscaled to nominal pixels on its long
// side first (Catmull-Rom), matching how skins pre-filter oversized
// textures.
func LoadSprite(path string, nominal int) (*Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", path, err)
	}

	b := img.Bounds()
	long := b.Dx()
	if b.Dy() > long {
		long = b.Dy()
	}
	if nominal > 0 && long > nominal {
		sw := b.Dx() * nominal / long
		sh := b.Dy() * nominal / long
		dst := image.NewRGBA(image.Rect(0, 0, sw, sh))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
		img = dst
	}
	sp := SpriteFromImage(img)
	Logger().Debug("sprite loaded", "path", path, "w", sp.width, "h", sp.height)
	return sp, nil
}

// at returns the straight texel color, clamping coordinates to the edge
// texel. Bilinear taps near the sprite border must repeat the edge rather
// than blend toward transparent; the hard transparency cut lives in Sample's
// UV range check.
func (s *Sprite) at(x, y int) RGBA {
	if x < 0 {
		x = 0
	} else if x >= s.width {
		x = s.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= s.height {
		y = s.height - 1
	}
	i := (y*s.width + x) * 4
	return RGBA{R: s.pix[i], G: s.pix[i+1], B: s.pix[i+2], A: s.pix[i+3]}
}

// Sample bilinearly samples the sprite at normalized uv. Out-of-range UVs
// return transparent.
func (s *Sprite) Sample(uv Point) RGBA {
	if s == nil || s.width == 0 || s.height == 0 {
		return RGBA{}
	}
	if uv.X < 0 || uv.X > 1 || uv.Y < 0 || uv.Y > 1 {
		return RGBA{}
	}
	fx := uv.X*float32(s.width) - 0.5
	fy := uv.Y*float32(s.height) - 0.5
	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := s.at(x0, y0)
	c10 := s.at(x0+1, y0)
	c01 := s.at(x0, y0+1)
	c11 := s.at(x0+1, y0+1)
	top := c00.Mix(c10, tx)
	bot := c01.Mix(c11, tx)
	return top.Mix(bot, ty)
}

// SolidSprite returns a 1x1 sprite of a constant color, useful in tests.
func SolidSprite(c RGBA) *Sprite {
	return &Sprite{width: 1, height: 1, pix: []float32{c.R, c.G, c.B, c.A}}
}

// SpriteSet holds every skin texture the renderers sample.
type SpriteSet struct {
	HitCircle        *Sprite
	HitCircleOverlay *Sprite
	ApproachCircle   *Sprite
	SliderEnd        *Sprite
	SliderEndOverlay *Sprite
	ReverseArrow     *Sprite
	SliderBall       *Sprite
	FollowCircle     *Sprite

	// Digits is the combo-number atlas, one sprite per digit 0-9.
	Digits [10]*Sprite
}

// spriteNominalPx is the stock sprite size the skin scale factors are
// relative to.
const spriteNominalPx = 128

// LoadSpriteSet loads the standard skin sprites from dir using the stock
// osu! file names. Missing optional sprites degrade to nil (samplers treat
// nil as transparent); the hit circle itself is required.
func LoadSpriteSet(dir string) (*SpriteSet, error) {
	must := func(name string) (*Sprite, error) {
		return LoadSprite(dir+"/"+name+".png", 0)
	}
	opt := func(name string) *Sprite {
		sp, err := LoadSprite(dir+"/"+name+".png", 0)
		if err != nil {
			Logger().Warn("optional sprite missing", "name", name, "err", err)
			return nil
		}
		return sp
	}

	hit, err := must("hitcircle")
	if err != nil {
		return nil, err
	}
	set := &SpriteSet{
		HitCircle:        hit,
		HitCircleOverlay: opt("hitcircleoverlay"),
		ApproachCircle:   opt("approachcircle"),
		SliderEnd:        opt("sliderendcircle"),
		SliderEndOverlay: opt("sliderendcircleoverlay"),
		ReverseArrow:     opt("reversearrow"),
		SliderBall:       opt("sliderb0"),
		FollowCircle:     opt("sliderfollowcircle"),
	}
	for d := 0; d < 10; d++ {
		set.Digits[d] = opt(fmt.Sprintf("default-%d", d))
	}
	Logger().Info("sprite set loaded", "dir", dir)
	return set, nil
}
