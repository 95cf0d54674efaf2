package optimize

import (
	"math/rand"

	"github.com/manmuqingshan/mcufont/internal/encoding"
	"github.com/manmuqingshan/mcufont/internal/font"
)

// minEntryLen and maxEntryLen mirror §3's dictionary entry length bound.
const (
	minEntryLen = 2
	maxEntryLen = 15
)

// glyphStreams re-encodes every glyph of f under its current dictionary,
// for operators that harvest substrings from real streams. Encoder
// overflow here means f itself is unencodable, which mutate operators
// treat the same as "nothing to harvest".
func glyphStreams(f *font.DataFile) ([][]byte, bool) {
	ef, err := encoding.EncodeFont(f)
	if err != nil {
		return nil, false
	}
	return ef.Glyphs, true
}

// randSubstring returns a random contiguous slice of length [minEntryLen,
// maxEntryLen] from a non-empty byte string, or false if it's too short
// to take any such slice from.
func randSubstring(rng *rand.Rand, s []byte) ([]byte, bool) {
	if len(s) < minEntryLen {
		return nil, false
	}
	maxLen := maxEntryLen
	if maxLen > len(s) {
		maxLen = len(s)
	}
	length := minEntryLen + rng.Intn(maxLen-minEntryLen+1)
	start := rng.Intn(len(s) - length + 1)
	out := make([]byte, length)
	copy(out, s[start:start+length])
	return out, true
}

// mutateReplace is operator 1: replace a random dictionary entry with a
// fresh candidate sampled from (a) a substring of a glyph stream, (b) a
// substring of another dictionary entry, or (c) the concatenation of two
// short token sequences.
func mutateReplace(f *font.DataFile, rng *rand.Rand) (font.Dictionary, bool) {
	dict := f.Dictionary()
	if len(dict) == 0 {
		return nil, false
	}

	target := rng.Intn(len(dict))

	var fresh []byte
	var ok bool
	switch rng.Intn(3) {
	case 0:
		streams, have := glyphStreams(f)
		if !have || len(streams) == 0 {
			return nil, false
		}
		fresh, ok = randSubstring(rng, streams[rng.Intn(len(streams))])
	case 1:
		if len(dict) < 2 {
			return nil, false
		}
		src := rng.Intn(len(dict))
		fresh, ok = randSubstring(rng, dict[src].Bytes)
	default:
		a := dict[rng.Intn(len(dict))].Bytes
		b := dict[rng.Intn(len(dict))].Bytes
		if len(a) == 0 || len(b) == 0 {
			return nil, false
		}
		cat := append(append([]byte(nil), a...), b...)
		if len(cat) > maxEntryLen {
			cat = cat[:maxEntryLen]
		}
		fresh, ok = cat, len(cat) >= minEntryLen
	}
	if !ok {
		return nil, false
	}

	out := dict.Clone()
	out[target] = font.DictEntry{Kind: dict[target].Kind, Bytes: fresh}
	return out, true
}

// mutateExtend is operator 2: grow a random dictionary entry by one token
// taken from a neighbouring position in a real glyph stream -- either the
// token immediately before or after an occurrence of the entry's current
// expansion-equivalent byte run within a glyph stream.
func mutateExtend(f *font.DataFile, rng *rand.Rand) (font.Dictionary, bool) {
	dict := f.Dictionary()
	if len(dict) == 0 {
		return nil, false
	}
	streams, have := glyphStreams(f)
	if !have {
		return nil, false
	}

	target := rng.Intn(len(dict))
	entry := dict[target]
	if len(entry.Bytes) >= maxEntryLen {
		return nil, false
	}

	neighbour, ok := findNeighbourToken(streams, entry.Bytes, rng)
	if !ok {
		return nil, false
	}

	var newBytes []byte
	if rng.Intn(2) == 0 {
		newBytes = append([]byte{neighbour}, entry.Bytes...)
	} else {
		newBytes = append(append([]byte(nil), entry.Bytes...), neighbour)
	}

	out := dict.Clone()
	out[target] = font.DictEntry{Kind: entry.Kind, Bytes: newBytes}
	return out, true
}

// findNeighbourToken scans glyph streams for an occurrence of needle and
// returns the byte immediately before or after it (picked at random among
// all occurrences found), matching §4.2's operator 2 description ("drawn
// from neighbours observed in real glyph streams").
func findNeighbourToken(streams [][]byte, needle []byte, rng *rand.Rand) (byte, bool) {
	if len(needle) == 0 {
		return 0, false
	}
	var candidates []byte
	for _, s := range streams {
		for i := 0; i+len(needle) <= len(s); i++ {
			if !bytesEqual(s[i:i+len(needle)], needle) {
				continue
			}
			if i > 0 {
				candidates = append(candidates, s[i-1])
			}
			if i+len(needle) < len(s) {
				candidates = append(candidates, s[i+len(needle)])
			}
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// mutateTrim is operator 3: shrink a random dictionary entry by one token
// from either end.
func mutateTrim(f *font.DataFile, rng *rand.Rand) (font.Dictionary, bool) {
	dict := f.Dictionary()
	if len(dict) == 0 {
		return nil, false
	}

	target := rng.Intn(len(dict))
	entry := dict[target]
	if len(entry.Bytes) <= minEntryLen {
		return nil, false
	}

	var newBytes []byte
	if rng.Intn(2) == 0 {
		newBytes = append([]byte(nil), entry.Bytes[1:]...)
	} else {
		newBytes = append([]byte(nil), entry.Bytes[:len(entry.Bytes)-1]...)
	}

	out := dict.Clone()
	out[target] = font.DictEntry{Kind: entry.Kind, Bytes: newBytes}
	return out, true
}

// mutatePromote is operator 4: scan glyph streams for the most common
// 3-8 byte window not yet represented by any dictionary entry, and append
// it as a fresh entry.
func mutatePromote(f *font.DataFile, rng *rand.Rand) (font.Dictionary, bool) {
	dict := f.Dictionary()
	if len(dict) >= 255-font.DictStart {
		return nil, false
	}
	streams, have := glyphStreams(f)
	if !have {
		return nil, false
	}

	counts := make(map[string]int)
	for _, s := range streams {
		for winLen := 3; winLen <= 8 && winLen <= len(s); winLen++ {
			for i := 0; i+winLen <= len(s); i++ {
				counts[string(s[i:i+winLen])]++
			}
		}
	}

	already := make(map[string]bool, len(dict))
	for _, e := range dict {
		already[string(e.Bytes)] = true
	}

	best := ""
	bestCount := 1 // require at least one repeat to be worth promoting
	for w, c := range counts {
		if already[w] || c <= bestCount {
			continue
		}
		best = w
		bestCount = c
	}
	if best == "" {
		return nil, false
	}

	// New entries default to REF kind: a promoted window is a substring
	// of an already-encoded glyph stream, so it may itself contain
	// dictionary references, which only REF entries are allowed to.
	out := append(dict.Clone(), font.DictEntry{Kind: font.REF, Bytes: []byte(best)})
	_ = rng // kept for signature symmetry with the other operators
	return out, true
}

// mutateSwap is operator 5: swap two dictionary entries of the same kind.
// Only affects greedy tie-breaking directly, but renumbering afterwards
// can unlock further improvements (§4.5).
func mutateSwap(f *font.DataFile, rng *rand.Rand) (font.Dictionary, bool) {
	dict := f.Dictionary()
	if len(dict) < 2 {
		return nil, false
	}

	i := rng.Intn(len(dict))
	j := rng.Intn(len(dict))
	if i == j || dict[i].Kind != dict[j].Kind {
		return nil, false
	}

	out := dict.Clone()
	out[i], out[j] = out[j], out[i]
	return out, true
}
