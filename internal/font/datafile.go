package font

// DataFile is the tuple (font_info, dictionary, glyphs) of §3, the
// exclusively-caller-owned value that the encoder and size estimator
// borrow read-only and the optimizer borrows exclusively for one
// iteration. It is value-like: every mutation constructs a new DataFile
// rather than editing one in place, so bitmaps can be shared by
// reference across versions (§4.2, §9).
type DataFile struct {
	info FontInfo
	dict Dictionary
	// glyphs and their character-code lists; codes are the ones actually
	// live on this DataFile (a Filter may have dropped some of a
	// Glyph's original Codes).
	glyphs []Glyph
}

// NewDataFile validates the four invariants of §3 and returns a DataFile,
// or one of the sentinel errors from errors.go if a check fails. Bitmap
// storage is shared with the glyphs slice passed in, never copied, since
// bitmaps are immutable after import (§9).
func NewDataFile(info FontInfo, dict Dictionary, glyphs []Glyph) (*DataFile, error) {
	if err := dict.validate(); err != nil {
		return nil, err
	}

	seen := make(map[rune]bool)
	for _, g := range glyphs {
		if g.Width != info.MaxWidth || g.Height != info.MaxHeight {
			return nil, ErrGlyphSize
		}
		for _, c := range g.Codes {
			if seen[c] {
				return nil, ErrDuplicateCharCode
			}
			seen[c] = true
		}
	}

	gs := make([]Glyph, len(glyphs))
	copy(gs, glyphs)

	return &DataFile{info: info, dict: dict.Clone(), glyphs: gs}, nil
}

// GlyphCount returns the number of unique glyphs.
func (f *DataFile) GlyphCount() int { return len(f.glyphs) }

// GlyphAt returns the glyph at index i, in glyph-list order.
func (f *DataFile) GlyphAt(i int) Glyph { return f.glyphs[i] }

// FontInfo returns the font-wide metadata.
func (f *DataFile) FontInfo() FontInfo { return f.info }

// Dictionary returns the current dictionary. Callers must not mutate the
// returned slice; use WithDictionary to produce a new DataFile.
func (f *DataFile) Dictionary() Dictionary { return f.dict }

// WithDictionary constructs a new DataFile sharing this one's bitmaps but
// carrying a new dictionary, per §4.2's "mutation by the optimizer"
// contract. It re-validates the new dictionary.
func (f *DataFile) WithDictionary(dict Dictionary) (*DataFile, error) {
	if err := dict.validate(); err != nil {
		return nil, err
	}
	return &DataFile{info: f.info, dict: dict.Clone(), glyphs: f.glyphs}, nil
}

// Filter restricts every glyph's character-code list to the codes for
// which keep returns true, dropping glyphs left with no codes. Bitmaps of
// surviving glyphs and the dictionary are unchanged (scenario 6).
func (f *DataFile) Filter(keep func(rune) bool) (*DataFile, error) {
	newGlyphs := make([]Glyph, 0, len(f.glyphs))
	for _, g := range f.glyphs {
		codes := g.Codes[:0:0]
		for _, c := range g.Codes {
			if keep(c) {
				codes = append(codes, c)
			}
		}
		if len(codes) == 0 {
			continue
		}
		ng := g
		ng.Codes = codes
		newGlyphs = append(newGlyphs, ng)
	}
	return NewDataFile(f.info, f.dict, newGlyphs)
}

// GlyphIndexForCode returns the index of the glyph tagged with code c, or
// -1 if no glyph carries it (§3 invariant 3 guarantees at most one).
func (f *DataFile) GlyphIndexForCode(c rune) int {
	for i, g := range f.glyphs {
		for _, gc := range g.Codes {
			if gc == c {
				return i
			}
		}
	}
	return -1
}
