// Package optimize implements the randomized local search (C5) that
// evolves a font's dictionary to shrink its total encoded size.
package optimize

import (
	"math/rand"

	"github.com/manmuqingshan/mcufont/internal/encoding"
	"github.com/manmuqingshan/mcufont/internal/font"
)

// Optimize performs exactly one iteration of §4.5's state machine: sample
// a mutation, apply it to a working copy, re-encode, measure, and commit
// only on strict improvement. Measuring re-encodes every glyph of the
// candidate, not only the glyphs the mutation affects. It never loops
// internally -- the caller drives iteration count and timing (§4.5, §5).
// The returned bool reports whether a mutation was committed; when false
// the returned DataFile is identical to f.
//
// rng is a parameter rather than process-global state (§9's "RNG
// injection" note) so tests can drive it deterministically. The data file
// does not carry a seed: Load skips a RandomSeed line and Save writes none.
func Optimize(f *font.DataFile, rng *rand.Rand) (*font.DataFile, bool) {
	baseSize, err := encoding.EncodedSize(f)
	if err != nil {
		// A data file that doesn't even encode under its own dictionary
		// is a caller bug (§4.3's "indicates a caller bug"); nothing to
		// optimize from here.
		return f, false
	}

	candidate := proposeMutation(f, rng)
	if candidate == nil {
		return f, false
	}

	newSize, err := encoding.EncodedSize(candidate)
	if err != nil {
		// §4.5 failure semantics: overflow/cycle proposals are discarded
		// silently, not surfaced as an error.
		return f, false
	}

	if newSize < baseSize {
		return candidate, true
	}
	return f, false
}

// proposeMutation samples one of the five mutation operators with equal
// weight, applies it to a copy of f's dictionary, renumbers the result, and returns
// the resulting candidate DataFile, or nil if the operator had nothing to
// do (e.g. an empty dictionary can't be trimmed) or the result would
// violate an invariant (too large, cyclic -- discarded per §4.5).
func proposeMutation(f *font.DataFile, rng *rand.Rand) *font.DataFile {
	ops := []func(*font.DataFile, *rand.Rand) (font.Dictionary, bool){
		mutateReplace,
		mutateExtend,
		mutateTrim,
		mutatePromote,
		mutateSwap,
	}

	op := ops[rng.Intn(len(ops))]
	dict, ok := op(f, rng)
	if !ok {
		return nil
	}

	dict = renumber(dict)

	candidate, err := f.WithDictionary(dict)
	if err != nil {
		return nil
	}
	return candidate
}
