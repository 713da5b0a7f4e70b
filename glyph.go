package mapshade

import (
	"strconv"

	"github.com/chewxy/math32"
)

// The HUD renders all text from a fixed 5x7 bitmap font: seven 5-bit rows
// per glyph, bit 4 being the leftmost column. Coverage is binary; there is
// no anti-aliasing and no shaping. Letters are uppercase-folded at lookup
// time, unknown codes render blank.

// font5x7 covers ASCII 32..126, indexed by code-32. Lowercase rows are
// intentionally zero; lookups fold them onto the uppercase entries.
var font5x7 = [95][7]uint8{
	' ' - 32:  {0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000},
	'!' - 32:  {0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00000, 0b00100},
	'"' - 32:  {0b01010, 0b01010, 0b01010, 0b00000, 0b00000, 0b00000, 0b00000},
	'#' - 32:  {0b01010, 0b01010, 0b11111, 0b01010, 0b11111, 0b01010, 0b01010},
	'$' - 32:  {0b00100, 0b01111, 0b10100, 0b01110, 0b00101, 0b11110, 0b00100},
	'%' - 32:  {0b11000, 0b11001, 0b00010, 0b00100, 0b01000, 0b10011, 0b00011},
	'&' - 32:  {0b01100, 0b10010, 0b10100, 0b01000, 0b10101, 0b10010, 0b01101},
	'\'' - 32: {0b01100, 0b00100, 0b01000, 0b00000, 0b00000, 0b00000, 0b00000},
	'(' - 32:  {0b00010, 0b00100, 0b01000, 0b01000, 0b01000, 0b00100, 0b00010},
	')' - 32:  {0b01000, 0b00100, 0b00010, 0b00010, 0b00010, 0b00100, 0b01000},
	'*' - 32:  {0b00000, 0b00100, 0b10101, 0b01110, 0b10101, 0b00100, 0b00000},
	'+' - 32:  {0b00000, 0b00100, 0b00100, 0b11111, 0b00100, 0b00100, 0b00000},
	',' - 32:  {0b00000, 0b00000, 0b00000, 0b00000, 0b01100, 0b00100, 0b01000},
	'-' - 32:  {0b00000, 0b00000, 0b00000, 0b11111, 0b00000, 0b00000, 0b00000},
	'.' - 32:  {0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b01100, 0b01100},
	'/' - 32:  {0b00000, 0b00001, 0b00010, 0b00100, 0b01000, 0b10000, 0b00000},
	'0' - 32:  {0b01110, 0b10001, 0b10011, 0b10101, 0b11001, 0b10001, 0b01110},
	'1' - 32:  {0b00100, 0b01100, 0b00100, 0b00100, 0b00100, 0b00100, 0b01110},
	'2' - 32:  {0b01110, 0b10001, 0b00001, 0b00010, 0b00100, 0b01000, 0b11111},
	'3' - 32:  {0b11111, 0b00010, 0b00100, 0b00010, 0b00001, 0b10001, 0b01110},
	'4' - 32:  {0b00010, 0b00110, 0b01010, 0b10010, 0b11111, 0b00010, 0b00010},
	'5' - 32:  {0b11111, 0b10000, 0b11110, 0b00001, 0b00001, 0b10001, 0b01110},
	'6' - 32:  {0b00110, 0b01000, 0b10000, 0b11110, 0b10001, 0b10001, 0b01110},
	'7' - 32:  {0b11111, 0b00001, 0b00010, 0b00100, 0b01000, 0b01000, 0b01000},
	'8' - 32:  {0b01110, 0b10001, 0b10001, 0b01110, 0b10001, 0b10001, 0b01110},
	'9' - 32:  {0b01110, 0b10001, 0b10001, 0b01111, 0b00001, 0b00010, 0b01100},
	':' - 32:  {0b00000, 0b01100, 0b01100, 0b00000, 0b01100, 0b01100, 0b00000},
	';' - 32:  {0b00000, 0b01100, 0b01100, 0b00000, 0b01100, 0b00100, 0b01000},
	'<' - 32:  {0b00010, 0b00100, 0b01000, 0b10000, 0b01000, 0b00100, 0b00010},
	'=' - 32:  {0b00000, 0b00000, 0b11111, 0b00000, 0b11111, 0b00000, 0b00000},
	'>' - 32:  {0b01000, 0b00100, 0b00010, 0b00001, 0b00010, 0b00100, 0b01000},
	'?' - 32:  {0b01110, 0b10001, 0b00001, 0b00010, 0b00100, 0b00000, 0b00100},
	'@' - 32:  {0b01110, 0b10001, 0b00001, 0b01101, 0b10101, 0b10101, 0b01110},
	'A' - 32:  {0b01110, 0b10001, 0b10001, 0b10001, 0b11111, 0b10001, 0b10001},
	'B' - 32:  {0b11110, 0b10001, 0b10001, 0b11110, 0b10001, 0b10001, 0b11110},
	'C' - 32:  {0b01110, 0b10001, 0b10000, 0b10000, 0b10000, 0b10001, 0b01110},
	'D' - 32:  {0b11100, 0b10010, 0b10001, 0b10001, 0b10001, 0b10010, 0b11100},
	'E' - 32:  {0b11111, 0b10000, 0b10000, 0b11110, 0b10000, 0b10000, 0b11111},
	'F' - 32:  {0b11111, 0b10000, 0b10000, 0b11110, 0b10000, 0b10000, 0b10000},
	'G' - 32:  {0b01110, 0b10001, 0b10000, 0b10111, 0b10001, 0b10001, 0b01111},
	'H' - 32:  {0b10001, 0b10001, 0b10001, 0b11111, 0b10001, 0b10001, 0b10001},
	'I' - 32:  {0b01110, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b01110},
	'J' - 32:  {0b00111, 0b00010, 0b00010, 0b00010, 0b00010, 0b10010, 0b01100},
	'K' - 32:  {0b10001, 0b10010, 0b10100, 0b11000, 0b10100, 0b10010, 0b10001},
	'L' - 32:  {0b10000, 0b10000, 0b10000, 0b10000, 0b10000, 0b10000, 0b11111},
	'M' - 32:  {0b10001, 0b11011, 0b10101, 0b10101, 0b10001, 0b10001, 0b10001},
	'N' - 32:  {0b10001, 0b10001, 0b11001, 0b10101, 0b10011, 0b10001, 0b10001},
	'O' - 32:  {0b01110, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01110},
	'P' - 32:  {0b11110, 0b10001, 0b10001, 0b11110, 0b10000, 0b10000, 0b10000},
	'Q' - 32:  {0b01110, 0b10001, 0b10001, 0b10001, 0b10101, 0b10010, 0b01101},
	'R' - 32:  {0b11110, 0b10001, 0b10001, 0b11110, 0b10100, 0b10010, 0b10001},
	'S' - 32:  {0b01111, 0b10000, 0b10000, 0b01110, 0b00001, 0b00001, 0b11110},
	'T' - 32:  {0b11111, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100},
	'U' - 32:  {0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01110},
	'V' - 32:  {0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01010, 0b00100},
	'W' - 32:  {0b10001, 0b10001, 0b10001, 0b10101, 0b10101, 0b10101, 0b01010},
	'X' - 32:  {0b10001, 0b10001, 0b01010, 0b00100, 0b01010, 0b10001, 0b10001},
	'Y' - 32:  {0b10001, 0b10001, 0b10001, 0b01010, 0b00100, 0b00100, 0b00100},
	'Z' - 32:  {0b11111, 0b00001, 0b00010, 0b00100, 0b01000, 0b10000, 0b11111},
	'[' - 32:  {0b01110, 0b01000, 0b01000, 0b01000, 0b01000, 0b01000, 0b01110},
	'\\' - 32: {0b00000, 0b10000, 0b01000, 0b00100, 0b00010, 0b00001, 0b00000},
	']' - 32:  {0b01110, 0b00010, 0b00010, 0b00010, 0b00010, 0b00010, 0b01110},
	'^' - 32:  {0b00100, 0b01010, 0b10001, 0b00000, 0b00000, 0b00000, 0b00000},
	'_' - 32:  {0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b11111},
	'`' - 32:  {0b01000, 0b00100, 0b00010, 0b00000, 0b00000, 0b00000, 0b00000},
	'{' - 32:  {0b00010, 0b00100, 0b00100, 0b01000, 0b00100, 0b00100, 0b00010},
	'|' - 32:  {0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100},
	'}' - 32:  {0b01000, 0b00100, 0b00100, 0b00010, 0b00100, 0b00100, 0b01000},
	'~' - 32:  {0b00000, 0b00000, 0b01000, 0b10101, 0b00010, 0b00000, 0b00000},
}

// glyphRows returns the row bitmap for a character code, folding lowercase
// letters. Codes outside 32..126 have no coverage.
func glyphRows(code byte) [7]uint8 {
	if code >= 'a' && code <= 'z' {
		code -= 'a' - 'A'
	}
	if code < 32 || code > 126 {
		return [7]uint8{}
	}
	return font5x7[code-32]
}

// GlyphAlpha returns binary coverage of the glyph for code at pixel p,
// given the glyph cell's top-left corner and height. The pixel pitch is
// cellHeight/7 on both axes, so a cell is 5 pitches wide.
func GlyphAlpha(p, cellTopLeft Point, cellHeight float32, code byte) float32 {
	pitch := cellHeight / 7
	if pitch < epsilon {
		return 0
	}
	col := math32.Floor((p.X - cellTopLeft.X) / pitch)
	row := math32.Floor((p.Y - cellTopLeft.Y) / pitch)
	if col < 0 || col >= 5 || row < 0 || row >= 7 {
		return 0
	}
	rows := glyphRows(code)
	if rows[int(row)]&(1<<(4-uint(col))) != 0 {
		return 1
	}
	return 0
}

// TextLine is a single line of bitmap text anchored at Origin (top-left of
// the first glyph cell). Each glyph advances 6 pixel pitches, so text width
// is a pure function of character count and value columns stay fixed-width
// as long as the producer pads values to a fixed count.
type TextLine struct {
	Origin     Point
	CellHeight float32
	Text       string
}

// glyphAdvance is the per-character advance in pixel pitches (5 columns
// plus 1 gap).
const glyphAdvance = 6

// TextWidth returns the width in pixels of n characters at cellHeight.
func TextWidth(n int, cellHeight float32) float32 {
	return float32(n) * glyphAdvance * cellHeight / 7
}

// LeftAligned lays out text with its top-left corner at origin.
func LeftAligned(text string, origin Point, cellHeight float32) TextLine {
	return TextLine{Origin: origin, CellHeight: cellHeight, Text: text}
}

// RightAligned lays out text so its last glyph cell ends at right.
func RightAligned(text string, right Point, cellHeight float32) TextLine {
	return TextLine{
		Origin:     Point{X: right.X - TextWidth(len(text), cellHeight), Y: right.Y},
		CellHeight: cellHeight,
		Text:       text,
	}
}

// Alpha returns the binary coverage of the line at pixel p.
func (t TextLine) Alpha(p Point) float32 {
	pitch := t.CellHeight / 7
	if pitch < epsilon || len(t.Text) == 0 {
		return 0
	}
	i := int(math32.Floor((p.X - t.Origin.X) / (glyphAdvance * pitch)))
	if i < 0 || i >= len(t.Text) {
		return 0
	}
	cell := Point{X: t.Origin.X + float32(i)*glyphAdvance*pitch, Y: t.Origin.Y}
	return GlyphAlpha(p, cell, t.CellHeight, t.Text[i])
}

// Width returns the line's width in pixels.
func (t TextLine) Width() float32 {
	return TextWidth(len(t.Text), t.CellHeight)
}

// FormatFixedX10 renders a value stored as tenths ("x10" readouts such as
// FPS and pass timings) with exactly one decimal place.
func FormatFixedX10(v uint32) string {
	return strconv.FormatUint(uint64(v/10), 10) + "." + strconv.FormatUint(uint64(v%10), 10)
}

// FormatSigned renders v with an explicit sign, so signed readout columns
// keep a constant character count for equal digit counts.
func FormatSigned(v int) string {
	if v >= 0 {
		return "+" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// FormatTimeMS renders a millisecond timestamp as m:ss.mmm.
func FormatTimeMS(ms float32) string {
	if ms < 0 {
		ms = 0
	}
	total := int(ms)
	m := total / 60000
	s := (total / 1000) % 60
	frac := total % 1000
	out := strconv.Itoa(m) + ":"
	if s < 10 {
		out += "0"
	}
	out += strconv.Itoa(s) + "."
	switch {
	case frac < 10:
		out += "00"
	case frac < 100:
		out += "0"
	}
	return out + strconv.Itoa(frac)
}

// PadLeft pads s with spaces to n characters so right-aligned value
// columns keep their width regardless of magnitude.
func PadLeft(s string, n int) string {
	for len(s) < n {
		s = " " + s
	}
	return s
}
