package optimize

import "github.com/manmuqingshan/mcufont/internal/font"

// renumber restores §3's partition (RLE entries before REF entries) and
// rewrites every dictionary reference -- in later dictionary entries --
// to its new index, in one pass, per §9's "build a remapping table and
// apply it in one pass, not patch in place" note. Glyph streams are never
// patched here: they hold no stored dictionary references because they
// are always regenerated fresh by the encoder against whatever dictionary
// is current (§4.3), so there is nothing in them to renumber.
func renumber(dict font.Dictionary) font.Dictionary {
	order := make([]int, 0, len(dict))
	for i, e := range dict {
		if e.Kind == font.RLE {
			order = append(order, i)
		}
	}
	for i, e := range dict {
		if e.Kind == font.REF {
			order = append(order, i)
		}
	}

	remap := make([]int, len(dict))
	for newIdx, oldIdx := range order {
		remap[oldIdx] = newIdx
	}

	out := make(font.Dictionary, len(dict))
	for newIdx, oldIdx := range order {
		e := dict[oldIdx]
		if e.Kind == font.RLE {
			b := make([]byte, len(e.Bytes))
			copy(b, e.Bytes)
			out[newIdx] = font.DictEntry{Kind: font.RLE, Bytes: b}
			continue
		}
		out[newIdx] = font.DictEntry{Kind: font.REF, Bytes: rewriteRefs(e.Bytes, remap, len(dict))}
	}

	return out
}

// rewriteRefs applies remap to every dictionary-reference byte in bytes,
// leaving run and literal-pair tokens untouched.
func rewriteRefs(bytes []byte, remap []int, dictLen int) []byte {
	out := make([]byte, len(bytes))
	for i, b := range bytes {
		if idx, ok := font.DictRefIndex(b, dictLen); ok {
			out[i] = byte(font.DictStart + remap[idx])
			continue
		}
		out[i] = b
	}
	return out
}
