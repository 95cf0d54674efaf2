package encoding

import (
	"github.com/manmuqingshan/mcufont/internal/font"
)

// expandEntry recursively expands dictionary entry idx to the pixel
// sequence it represents, following dict-ref tokens into earlier entries.
// Dictionary.validate() guarantees acyclicity, so this always terminates.
func expandEntry(dict font.Dictionary, idx int) ([]font.Pixel, error) {
	entry := dict[idx]
	var out []font.Pixel
	for _, b := range entry.Bytes {
		t, ok := parseToken(b, len(dict))
		if !ok {
			return nil, ErrOverflow
		}
		switch t.kind {
		case kindZeroRun:
			for i := 0; i < t.run; i++ {
				out = append(out, font.PixelBackground)
			}
		case kindFifteenRun:
			for i := 0; i < t.run; i++ {
				out = append(out, font.PixelForeground)
			}
		case kindLiteralPair:
			out = append(out, t.hi, t.lo)
		case kindDictRef:
			sub, err := expandEntry(dict, t.dictIndex)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
	}
	return out, nil
}

// matchLen reports how many leading pixels of seq equal a dictionary
// entry's expansion, i.e. how much of seq that entry's token would consume if
// chosen. 0 means no match.
func matchLen(seq []font.Pixel, expansion []font.Pixel) int {
	if len(expansion) > len(seq) || len(expansion) == 0 {
		return 0
	}
	for i, p := range expansion {
		if seq[i] != p {
			return 0
		}
	}
	return len(expansion)
}

// EncodeGlyph deterministically tokenizes a glyph's pixel sequence against
// dict, per §4.3: at each position it picks the token consuming the
// longest matching prefix, breaking ties by (1) dictionary reference over
// run over literal pair, (2) lower dictionary index over higher. It never
// emits a zero-length token, and covers the bitmap's W*H pixels exactly.
func EncodeGlyph(g font.Glyph, dict font.Dictionary) ([]byte, error) {
	seq := g.Sequence()
	out := make([]byte, 0, len(seq))

	// Pre-expand every dictionary entry once; glyphs are typically much
	// larger than the dictionary, so this avoids re-walking REF chains
	// at every position.
	expansions := make([][]font.Pixel, len(dict))
	for i := range dict {
		exp, err := expandEntry(dict, i)
		if err != nil {
			return nil, err
		}
		expansions[i] = exp
	}

	for pos := 0; pos < len(seq); {
		remaining := seq[pos:]

		// Candidate lengths in each category; the greedy rule picks the
		// longest across ALL categories, breaking ties (1) dict ref over
		// run over literal pair, (2) lower dictionary index over higher
		// (§4.3). Dictionary entries are scanned in ascending index
		// order and only replace the best on a strictly longer match, so
		// a length tie among dict entries already resolves to the
		// lowest index.
		dictLen, dictIdx := 0, -1
		for i, exp := range expansions {
			if m := matchLen(remaining, exp); m > dictLen {
				dictLen = m
				dictIdx = i
			}
		}

		runLen, runKind := longestRun(remaining)

		literalLen := 0
		if len(remaining) >= 2 && isLiteralValue(remaining[0]) && isLiteralValue(remaining[1]) {
			literalLen = 2
		}

		var t token
		var consume int
		switch {
		case dictLen > 0 && dictLen >= runLen && dictLen >= literalLen:
			t, consume = token{kind: kindDictRef, dictIndex: dictIdx}, dictLen
		case runLen > 0 && runLen >= literalLen:
			t, consume = token{kind: runKind, run: runLen}, runLen
		case literalLen > 0:
			t, consume = token{kind: kindLiteralPair, hi: remaining[0], lo: remaining[1]}, literalLen
		default:
			// A non-privileged pixel that no dictionary entry covers and
			// that is not followed by another non-privileged pixel has no
			// token: the format has no single-pixel literal. It is
			// reported as the encoder overflow error.
			return nil, ErrOverflow
		}

		b, ok := tokenByte(t, len(dict))
		if !ok {
			return nil, ErrOverflow
		}
		out = append(out, b)
		pos += consume
	}

	return out, nil
}

// longestRun returns the longest background or foreground run starting at
// the head of seq, capped at the respective maximum run length, and which
// kind of run it is. Returns (0, 0) if seq doesn't start with 0 or 15.
func longestRun(seq []font.Pixel) (int, kind) {
	if len(seq) == 0 {
		return 0, 0
	}
	switch seq[0] {
	case font.PixelBackground:
		n := 0
		for n < len(seq) && n < font.ZeroRunMax && seq[n] == font.PixelBackground {
			n++
		}
		return n, kindZeroRun
	case font.PixelForeground:
		n := 0
		for n < len(seq) && n < font.FifteenRunMax && seq[n] == font.PixelForeground {
			n++
		}
		return n, kindFifteenRun
	default:
		return 0, 0
	}
}

// EncodedFont is the batch output of the encoder: the RLE dictionary, the
// REF dictionary, and the per-glyph token streams in glyph-list order
// (§4.3, §6's "Encoded font value").
type EncodedFont struct {
	RLEDictionary [][]byte
	RefDictionary [][]byte
	Glyphs        [][]byte
}

// EncodeFont runs EncodeGlyph across every glyph of f and separates the
// dictionary into its RLE and REF byte strings.
func EncodeFont(f *font.DataFile) (*EncodedFont, error) {
	dict := f.Dictionary()

	ef := &EncodedFont{}
	for _, e := range dict {
		if e.Kind == font.RLE {
			ef.RLEDictionary = append(ef.RLEDictionary, append([]byte(nil), e.Bytes...))
		} else {
			ef.RefDictionary = append(ef.RefDictionary, append([]byte(nil), e.Bytes...))
		}
	}

	for i := 0; i < f.GlyphCount(); i++ {
		stream, err := EncodeGlyph(f.GlyphAt(i), dict)
		if err != nil {
			return nil, err
		}
		ef.Glyphs = append(ef.Glyphs, stream)
	}

	return ef, nil
}
