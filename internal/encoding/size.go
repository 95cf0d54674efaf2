package encoding

import "github.com/manmuqingshan/mcufont/internal/font"

// headerOverhead is the fixed per-file cost (font_info + counts) charged
// once per data file, on top of the per-entry and per-glyph costs. It
// must stay constant for EncodedSize to be reproducible across equal
// data files (§4.4).
const headerOverhead = 16

// EncodedSize returns the exact number of bytes EncodeFont's output would
// occupy once serialized: one length byte per dictionary entry plus its
// bytes, one length word (2 bytes) per glyph plus its stream, and the
// fixed header overhead. The optimizer's accept/reject decisions depend
// on this being exact and reproducible.
func EncodedSize(f *font.DataFile) (int, error) {
	ef, err := EncodeFont(f)
	if err != nil {
		return 0, err
	}
	return EncodedFontSize(ef), nil
}

// EncodedFontSize sums the size of an already-computed EncodedFont,
// letting a caller that has just called EncodeFont avoid a redundant
// encode.
func EncodedFontSize(ef *EncodedFont) int {
	total := headerOverhead
	for _, e := range ef.RLEDictionary {
		total += 1 + len(e)
	}
	for _, e := range ef.RefDictionary {
		total += 1 + len(e)
	}
	for _, g := range ef.Glyphs {
		total += 2 + len(g)
	}
	return total
}
