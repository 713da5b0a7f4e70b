package mapshade

import "testing"

func TestFontZeroTopRow(t *testing.T) {
	rows := glyphRows('0')
	if rows[0] != 0b01110 {
		t.Errorf("'0' top row = %05b, want 01110", rows[0])
	}
}

func TestFontSpaceIsBlank(t *testing.T) {
	rows := glyphRows(' ')
	for i, r := range rows {
		if r != 0 {
			t.Errorf("space row %d = %05b, want blank", i, r)
		}
	}
}

func TestFontLowercaseFolds(t *testing.T) {
	if glyphRows('a') != glyphRows('A') {
		t.Error("lowercase lookup should fold onto uppercase")
	}
}

func TestFontUnknownIsBlank(t *testing.T) {
	for _, code := range []byte{0, 31, 127, 200} {
		if glyphRows(code) != ([7]uint8{}) {
			t.Errorf("code %d should render blank", code)
		}
	}
}

func TestGlyphAlphaSamplesBitmap(t *testing.T) {
	// A 7px cell has 1px pitch; 'I' row 1 is 00100: only the center
	// column is set.
	top := Point{X: 0, Y: 0}
	if a := GlyphAlpha(Point{X: 2.5, Y: 1.5}, top, 7, 'I'); a != 1 {
		t.Errorf("center column alpha %v, want 1", a)
	}
	if a := GlyphAlpha(Point{X: 0.5, Y: 1.5}, top, 7, 'I'); a != 0 {
		t.Errorf("left column alpha %v, want 0", a)
	}
	if a := GlyphAlpha(Point{X: -1, Y: 1.5}, top, 7, 'I'); a != 0 {
		t.Errorf("outside cell alpha %v, want 0", a)
	}
}

func TestTextLineAdvance(t *testing.T) {
	l := LeftAligned("AB", Point{}, 7)
	// Pitch is 1 at cell height 7; the second glyph starts 6 pitches in.
	if a := l.Alpha(Point{X: 6 + 0.5, Y: 1.5}); a == 0 {
		t.Error("second glyph did not render at its advance")
	}
	floatNear(t, l.Width(), 12, 1e-6)
}

func TestRightAligned(t *testing.T) {
	l := RightAligned("XY", Point{X: 100, Y: 0}, 7)
	floatNear(t, l.Origin.X, 100-TextWidth(2, 7), 1e-6)
}

func TestFormatFixedX10(t *testing.T) {
	cases := []struct {
		in   uint32
		want string
	}{
		{0, "0.0"},
		{5, "0.5"},
		{1234, "123.4"},
	}
	for _, c := range cases {
		if got := FormatFixedX10(c.in); got != c.want {
			t.Errorf("FormatFixedX10(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatTimeMS(t *testing.T) {
	cases := []struct {
		in   float32
		want string
	}{
		{0, "0:00.000"},
		{61500, "1:01.500"},
		{-5, "0:00.000"},
	}
	for _, c := range cases {
		if got := FormatTimeMS(c.in); got != c.want {
			t.Errorf("FormatTimeMS(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	if got := FormatSigned(7); got != "+7" {
		t.Errorf("got %q", got)
	}
	if got := FormatSigned(-3); got != "-3" {
		t.Errorf("got %q", got)
	}
}
