// Package encoding implements the deterministic greedy encoder (C3) and
// exact size estimator (C4) of the compression pipeline: turning a glyph
// bitmap plus a dictionary into a byte stream of run-length and
// dictionary-reference tokens, and measuring the encoded cost of a whole
// font under its current dictionary.
package encoding

import (
	"github.com/manmuqingshan/mcufont/internal/font"
)

// kind tags the four token categories of §4.3. Converting to and from the
// single-byte wire representation happens in exactly one place (tokenByte
// / parseToken) per §9, so the two directions can never drift apart.
type kind int

const (
	kindZeroRun kind = iota
	kindFifteenRun
	kindDictRef
	kindLiteralPair
)

// token is the tagged-variant in-memory form of one wire byte.
type token struct {
	kind kind

	run       int        // kindZeroRun / kindFifteenRun: run length
	dictIndex int         // kindDictRef: dictionary index
	hi, lo    font.Pixel  // kindLiteralPair: the two packed pixel values
}

// literalPairSpan is the number of distinct (hi, lo) pairs in [1,14]x[1,14].
const literalPairSpan = 14 * 14

// literalBase is the first byte value assigned to a literal pair. Pinned
// statically at the top of the byte space (rather than immediately after
// the dictionary-reference range, which would grow and shrink with the
// dictionary) per SPEC_FULL.md's literal-pair open-question decision: a
// dictionary mutation changes how many bytes are valid dict-ref tokens,
// but never reassigns what a literal-pair byte means.
const literalBase = 256 - literalPairSpan

// tokenByte converts t to its wire byte given the current dictionary
// length. ok is false if this token has no representable byte (a
// dictionary reference past maxDictEntries can't happen by construction;
// this exists for symmetry with parseToken and defensive bounds checks).
func tokenByte(t token, dictLen int) (b byte, ok bool) {
	switch t.kind {
	case kindZeroRun:
		if t.run < 1 || t.run > font.ZeroRunMax {
			return 0, false
		}
		return byte(t.run), true
	case kindFifteenRun:
		if t.run < 1 || t.run > font.FifteenRunMax {
			return 0, false
		}
		return byte(15 + t.run), true
	case kindDictRef:
		if t.dictIndex < 0 || t.dictIndex >= dictLen {
			return 0, false
		}
		v := font.DictStart + t.dictIndex
		if v >= literalBase {
			return 0, false
		}
		return byte(v), true
	case kindLiteralPair:
		if !isLiteralValue(t.hi) || !isLiteralValue(t.lo) {
			return 0, false
		}
		idx := int(t.hi-1)*14 + int(t.lo-1)
		return byte(literalBase + idx), true
	}
	return 0, false
}

// parseToken converts a wire byte back to a token given the dictionary
// length. ok is false for the reserved terminator byte, or a byte in the
// dead zone between the end of the current dictionary and literalBase
// (a dict-ref slot the dictionary hasn't grown into yet).
func parseToken(b byte, dictLen int) (token, bool) {
	v := int(b)
	switch {
	case v == 0:
		return token{}, false
	case v <= font.ZeroRunMax:
		return token{kind: kindZeroRun, run: v}, true
	case v <= 15+font.FifteenRunMax:
		return token{kind: kindFifteenRun, run: v - 15}, true
	case v < font.DictStart+dictLen:
		return token{kind: kindDictRef, dictIndex: v - font.DictStart}, true
	case v < literalBase:
		return token{}, false
	default:
		idx := v - literalBase
		return token{
			kind: kindLiteralPair,
			hi:   font.Pixel(idx/14) + 1,
			lo:   font.Pixel(idx%14) + 1,
		}, true
	}
}

func isLiteralValue(p font.Pixel) bool {
	return p >= 1 && p <= 14
}
