// Package bdf imports fonts from the Adobe BDF (Glyph Bitmap Distribution
// Format) text format into this repository's font.DataFile model.
//
// https://www.adobe.com/content/dam/acom/en/devnet/font/pdfs/5005.BDF_Spec.pdf
package bdf

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/manmuqingshan/mcufont/internal/font"
)

type rawChar struct {
	encoding rune
	bbx      [4]int // width, height, x-offset, y-offset-from-baseline
}

// Import reads a BDF font definition from r and returns the data file it
// describes: one glyph per encoded character, bitmaps padded to the font's
// common bounding box (§6), with distinct codes sharing an identical bitmap
// collapsed into a single glyph (§3). The dictionary is seeded with
// font.InitialDictionary rather than left empty.
func Import(r io.Reader) (*font.DataFile, error) {
	s := bufio.NewScanner(r)

	var fontName string
	var bbox [4]int
	numGlyphs := 0

	for s.Scan() {
		parts := strings.SplitN(s.Text(), " ", 2)
		arg := ""
		if len(parts) == 2 {
			arg = parts[1]
		}
		switch parts[0] {
		case "FONT":
			fontName = arg
		case "FONTBOUNDINGBOX":
			fmt.Sscanf(arg, "%d %d %d %d", &bbox[0], &bbox[1], &bbox[2], &bbox[3])
		case "CHARS":
			fmt.Sscanf(arg, "%d", &numGlyphs)
		}
		if numGlyphs > 0 {
			break
		}
	}
	if numGlyphs == 0 {
		return nil, fmt.Errorf("bdf: missing CHARS count")
	}

	maxWidth, maxHeight := bbox[0], bbox[1]
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("bdf: missing or empty FONTBOUNDINGBOX")
	}

	bitmaps := make(map[string][]font.Pixel)
	codesByKey := make(map[string]map[rune]bool)
	var order []string

	for i := 0; i < numGlyphs; i++ {
		for s.Scan() && !strings.HasPrefix(s.Text(), "STARTCHAR") {
		}

		var ch rawChar
		for s.Scan() {
			line := s.Text()
			if line == "BITMAP" {
				break
			}
			parts := strings.SplitN(line, " ", 2)
			arg := ""
			if len(parts) == 2 {
				arg = parts[1]
			}
			switch parts[0] {
			case "ENCODING":
				var nc int
				fmt.Sscanf(arg, "%d", &nc)
				ch.encoding = rune(nc)
			case "BBX":
				fmt.Sscanf(arg, "%d %d %d %d", &ch.bbx[0], &ch.bbx[1], &ch.bbx[2], &ch.bbx[3])
			}
		}

		leftPad := ch.bbx[2]
		if leftPad < 0 {
			// negative left offsets aren't representable in a padded,
			// non-negative raster; clamp rather than reject the glyph.
			leftPad = 0
		}
		// BBX's y-offset is measured from the baseline. Convert to a
		// from-top offset: ascent is the FONTBOUNDINGBOX height plus its
		// (usually negative) y-offset, and the
		// glyph's first bitmap row sits ascent - y_offset - height pixels
		// below the top of the common bounding box.
		topPad := (bbox[1] + bbox[3]) - ch.bbx[3] - ch.bbx[1]

		pixels := make([]font.Pixel, maxWidth*maxHeight)
		widthBytes := ((ch.bbx[0] - 1) / 8) + 1
		for h := 0; h < ch.bbx[1]; h++ {
			if !s.Scan() {
				return nil, fmt.Errorf("bdf: truncated bitmap for char %q", ch.encoding)
			}
			var raw uint32
			fmt.Sscanf(s.Text(), "%X", &raw)
			raster := fmt.Sprintf("%032b", raw)
			o := 32 - widthBytes*8
			raster = raster[o : o+ch.bbx[0]]

			y := topPad + h
			if y < 0 || y >= maxHeight {
				continue
			}
			for x := 0; x < ch.bbx[0] && leftPad+x < maxWidth; x++ {
				if raster[x] == '1' {
					pixels[y*maxWidth+leftPad+x] = font.PixelForeground
				}
			}
		}
		s.Scan() // ENDCHAR

		key := string(pixelBytes(pixels))
		if _, ok := bitmaps[key]; !ok {
			bitmaps[key] = pixels
			codesByKey[key] = make(map[rune]bool)
			order = append(order, key)
		}
		codesByKey[key][ch.encoding] = true
	}

	info := font.FontInfo{
		MaxWidth:   maxWidth,
		MaxHeight:  maxHeight,
		BaselineX:  0,
		BaselineY:  bbox[1] + bbox[3],
		LineHeight: maxHeight,
		FontName:   fontName,
	}

	glyphs := make([]font.Glyph, 0, len(order))
	for _, key := range order {
		codes := font.SortedCodes(codesByKey[key])
		g, err := font.NewGlyph(maxWidth, maxHeight, bitmaps[key], 0, maxWidth, codes)
		if err != nil {
			return nil, err
		}
		glyphs = append(glyphs, g)
	}

	return font.NewDataFile(info, font.InitialDictionary(), glyphs)
}

func pixelBytes(pixels []font.Pixel) []byte {
	b := make([]byte, len(pixels))
	for i, p := range pixels {
		b[i] = byte(p)
	}
	return b
}
