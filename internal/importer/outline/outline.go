// Package outline imports fonts from a scalable TTF/OTF outline into this
// repository's fixed 4bpp font.DataFile model, rasterizing each glyph
// outline at a caller-chosen pixel size.
package outline

import (
	"fmt"
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/manmuqingshan/mcufont/internal/font"
)

// Options controls how Import rasterizes a scalable font down to a fixed
// raster grid.
type Options struct {
	// PixelSize is the em square's rendering size in pixels; it sets the
	// data file's MaxWidth. MaxHeight is the scaled ascent plus descent
	// (PixelSize only if that sum is not positive).
	PixelSize int
	// Codes restricts import to these codepoints. A nil slice imports the
	// printable ASCII range that the font actually has outlines for.
	Codes []rune
	// Monochrome collapses each glyph's antialiased coverage down to pure
	// background/foreground pixels instead of 16 grey levels (the
	// original CLI's "bw" import flag).
	Monochrome bool
}

// Import parses a TTF/OTF from data and rasterizes the requested glyphs
// into a font.DataFile, seeded with font.InitialDictionary.
func Import(data []byte, opts Options) (*font.DataFile, error) {
	if opts.PixelSize <= 0 {
		return nil, fmt.Errorf("outline: PixelSize must be positive")
	}

	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}

	var buf sfnt.Buffer
	familyName, err := fnt.Name(&buf, sfnt.NameIDFamily)
	if err != nil || familyName == "" {
		familyName = "Unknown"
	}

	ppem := fixed.I(opts.PixelSize)
	metrics, err := fnt.Metrics(&buf, ppem, xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}
	ascent := metrics.Ascent.Round()
	maxHeight := ascent + metrics.Descent.Round()
	if maxHeight <= 0 {
		maxHeight = opts.PixelSize
	}
	maxWidth := opts.PixelSize

	codes := opts.Codes
	if codes == nil {
		codes = printableCodepoints(fnt, &buf)
	}

	glyphs := make([]font.Glyph, 0, len(codes))
	for _, r := range codes {
		gi, err := fnt.GlyphIndex(&buf, r)
		if err != nil || gi == 0 {
			continue // no outline for this codepoint
		}
		adv, err := fnt.GlyphAdvance(&buf, gi, ppem, xfont.HintingNone)
		if err != nil {
			continue
		}
		pixels, err := rasterize(fnt, &buf, gi, ppem, maxWidth, maxHeight, ascent, opts.Monochrome)
		if err != nil {
			return nil, err
		}
		g, err := font.NewGlyph(maxWidth, maxHeight, pixels, 0, adv.Round(), []rune{r})
		if err != nil {
			return nil, err
		}
		glyphs = append(glyphs, g)
	}

	info := font.FontInfo{
		MaxWidth:   maxWidth,
		MaxHeight:  maxHeight,
		BaselineY:  ascent,
		LineHeight: maxHeight,
		FontName:   familyName,
	}

	return font.NewDataFile(info, font.InitialDictionary(), glyphs)
}

func printableCodepoints(fnt *sfnt.Font, buf *sfnt.Buffer) []rune {
	var out []rune
	for r := rune(0x20); r <= 0x7e; r++ {
		if gi, err := fnt.GlyphIndex(buf, r); err == nil && gi != 0 {
			out = append(out, r)
		}
	}
	return out
}

// rasterize renders one glyph outline to a width x height 4bpp coverage
// bitmap. It feeds the outline segments straight from sfnt.Font.LoadGlyph
// into a vector.Rasterizer -- the technique the x/image packages document
// for their own rasterizer -- rather than going through a font.Face text
// drawer, so a single glyph cell can be rasterized without laying out a
// whole string.
func rasterize(fnt *sfnt.Font, buf *sfnt.Buffer, gi sfnt.GlyphIndex, ppem fixed.Int26_6, width, height, ascent int, monochrome bool) ([]font.Pixel, error) {
	segs, err := fnt.LoadGlyph(buf, gi, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}

	rast := vector.NewRasterizer(width, height)
	// The font's coordinate space has y increasing upward from the
	// baseline; the raster's has y increasing downward from the top of
	// the cell, so every point is flipped against the ascent.
	toXY := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X) / 64, float32(ascent) - float32(p.Y)/64
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := toXY(seg.Args[0])
			rast.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := toXY(seg.Args[0])
			rast.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := toXY(seg.Args[0])
			x, y := toXY(seg.Args[1])
			rast.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c0x, c0y := toXY(seg.Args[0])
			c1x, c1y := toXY(seg.Args[1])
			x, y := toXY(seg.Args[2])
			rast.CubeTo(c0x, c0y, c1x, c1y, x, y)
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	rast.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	pixels := make([]font.Pixel, width*height)
	for i, a := range dst.Pix {
		if monochrome {
			if a >= 128 {
				pixels[i] = font.PixelForeground
			}
			continue
		}
		pixels[i] = font.Pixel(a >> 4) // quantize 8-bit coverage to 4bpp
	}
	return pixels, nil
}
