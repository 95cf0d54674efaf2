// Package bitmap imports a glyph-sheet image (a raster font laid out as
// one character per column-run, in alphabet order) into this repository's
// font.DataFile model.
package bitmap

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"unicode/utf8"

	"github.com/manmuqingshan/mcufont/internal/font"
)

// Options crops the sheet before scanning it for glyphs.
type Options struct {
	Offset image.Point
	Size   image.Point
}

// Import decodes a glyph sheet and assigns one glyph per rune of alphabet,
// in sheet order, with blank columns of pixels treated as glyph
// boundaries and a greyscale histogram distinguishing foreground from
// background (the assumption is that the background colors occur far more
// often across the image than any single foreground color).
func Import(r io.Reader, alphabet string, opts *Options) (*font.DataFile, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	var offset, size image.Point
	if opts != nil {
		offset, size = opts.Offset, opts.Size
	}

	bounds := img.Bounds()
	bounds.Min = offset
	if size.X != 0 {
		bounds.Max.X = bounds.Min.X + size.X
	}
	if size.Y != 0 {
		bounds.Max.Y = bounds.Min.Y + size.Y
	}
	height := bounds.Dy()

	clrs, threshold := histogram(img)
	isForeground := func(c color.Color) bool {
		gc := color.GrayModel.Convert(c).(color.Gray)
		return clrs[gc.Y] <= threshold
	}

	type cell struct {
		code  rune
		width int
		cols  [][]bool // cols[x][y]
	}
	var cells []cell

	curAlpha := alphabet
	var curCols [][]bool
	emit := func() {
		if len(curCols) == 0 || len(curAlpha) == 0 {
			curCols = nil
			return
		}
		code, n := utf8.DecodeRuneInString(curAlpha)
		curAlpha = curAlpha[n:]
		cells = append(cells, cell{code: code, width: len(curCols), cols: curCols})
		curCols = nil
	}

	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		col := make([]bool, height)
		isEmpty := true
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			if isForeground(img.At(x, y)) {
				col[y-bounds.Min.Y] = true
				isEmpty = false
			}
		}
		if isEmpty {
			emit()
			continue
		}
		curCols = append(curCols, col)
	}
	emit() // the sheet's final glyph has no trailing blank column

	maxWidth := 0
	for _, c := range cells {
		if c.width > maxWidth {
			maxWidth = c.width
		}
	}

	glyphs := make([]font.Glyph, 0, len(cells))
	for _, c := range cells {
		pixels := make([]font.Pixel, maxWidth*height)
		for x, col := range c.cols {
			for y, set := range col {
				if set {
					pixels[y*maxWidth+x] = font.PixelForeground
				}
			}
		}
		g, err := font.NewGlyph(maxWidth, height, pixels, 0, maxWidth, []rune{c.code})
		if err != nil {
			return nil, err
		}
		glyphs = append(glyphs, g)
	}

	info := font.FontInfo{
		MaxWidth:   maxWidth,
		MaxHeight:  height,
		LineHeight: height,
	}

	return font.NewDataFile(info, font.InitialDictionary(), glyphs)
}

// histogram counts how many pixels of the whole image (not just the
// cropped scan window) fall on each grey level, and picks a threshold
// pixel count below which a grey level is assumed to be foreground rather
// than background: halve the threshold until the levels above it account
// for at least half of all pixels, on the assumption that background is
// the dominant color.
func histogram(img image.Image) (clrs map[uint8]int, threshold int) {
	b := img.Bounds()
	pxc := 0
	clrs = make(map[uint8]int)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gc := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			clrs[gc.Y]++
			pxc++
		}
	}

	pxt := pxc
	pxd := 0
	for pxd < (pxc/2) && pxt > 0 {
		pxt /= 2
		pxd = 0
		for _, n := range clrs {
			if n > pxt {
				pxd += n
			}
		}
	}
	return clrs, pxt
}
