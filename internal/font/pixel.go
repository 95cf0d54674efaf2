// Package font holds the data model for a compressed bitmap font: glyph
// bitmaps, the shared dictionary, and the data file that ties them together.
package font

import (
	"fmt"
	"sort"
)

// Pixel is a single 4-bit intensity value. 0 is background, 15 is
// foreground; values in between are antialiasing levels.
type Pixel uint8

const (
	// PixelBackground is the privileged all-clear intensity.
	PixelBackground Pixel = 0
	// PixelForeground is the privileged all-set intensity.
	PixelForeground Pixel = 15
)

func (p Pixel) valid() bool {
	return p <= PixelForeground
}

// Glyph is a rectangular raster of pixels plus the character codes that
// render as this exact bitmap. Glyphs are immutable after construction:
// callers that need a different bitmap build a new Glyph.
type Glyph struct {
	Width, Height int
	Pixels        []Pixel // row-major, length Width*Height
	Bearing       int     // horizontal offset applied when rendering
	Advance       int     // horizontal pen increment after drawing
	Codes         []rune  // ascending, deduplicated, non-empty
}

// NewGlyph constructs a glyph from a row-major pixel buffer and a set of
// character codes. The codes slice is copied, sorted, and deduplicated.
func NewGlyph(width, height int, pixels []Pixel, bearing, advance int, codes []rune) (Glyph, error) {
	if width < 0 || height < 0 {
		return Glyph{}, fmt.Errorf("font: negative glyph dimension %dx%d", width, height)
	}
	if len(pixels) != width*height {
		return Glyph{}, fmt.Errorf("font: glyph %dx%d needs %d pixels, got %d", width, height, width*height, len(pixels))
	}
	for i, p := range pixels {
		if !p.valid() {
			return Glyph{}, fmt.Errorf("font: pixel %d out of range: %d", i, p)
		}
	}
	if len(codes) == 0 {
		return Glyph{}, fmt.Errorf("font: glyph has no character codes")
	}

	cp := make([]rune, len(codes))
	copy(cp, codes)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	dedup := cp[:1]
	for _, c := range cp[1:] {
		if c != dedup[len(dedup)-1] {
			dedup = append(dedup, c)
		}
	}

	pp := make([]Pixel, len(pixels))
	copy(pp, pixels)

	return Glyph{
		Width:   width,
		Height:  height,
		Pixels:  pp,
		Bearing: bearing,
		Advance: advance,
		Codes:   dedup,
	}, nil
}

// At returns the pixel at (x, y) by indexing the row-major buffer
// directly, matching the teacher's direct-index bitfont accessors. It
// panics only when y*Width+x falls outside the buffer; x is not checked
// against Width on its own.
func (g Glyph) At(x, y int) Pixel {
	return g.Pixels[y*g.Width+x]
}

// Sequence returns the flattened, reading-order pixel sequence.
func (g Glyph) Sequence() []Pixel {
	out := make([]Pixel, len(g.Pixels))
	copy(out, g.Pixels)
	return out
}

// Render produces a human-readable grid for debugging, one line per row,
// using a space for background, 'X' for foreground, and one hex digit
// (1-9, A-E) for intermediate intensities.
func (g Glyph) Render() string {
	out := make([]byte, 0, (g.Width+1)*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch p := g.At(x, y); p {
			case PixelBackground:
				out = append(out, ' ')
			case PixelForeground:
				out = append(out, 'X')
			default:
				out = append(out, "0123456789ABCDEF"[p])
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
