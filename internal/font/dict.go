package font

// Wire-format constants shared between the data model (for the
// acyclicity invariant) and the encoder (internal/encoding), which needs
// the exact same byte layout to tokenize against a dictionary. They live
// here, next to the Dictionary type, because §3's invariants are defined
// in terms of them.
const (
	// DictStart is the first dictionary index; indices below it are
	// reserved for the terminator and run tokens (§4.3).
	DictStart = 24

	// literalPairSpan is the number of distinct (hi, lo) pixel pairs in
	// [1,14]x[1,14], excluding the privileged 0/15 values.
	literalPairSpan = 14 * 14

	// maxDictEntries resolves SPEC_FULL.md's literal-pair open question:
	// the literal-pair byte range is pinned statically to the top of the
	// byte space (256-literalPairSpan .. 255) so that a dictionary
	// mutation -- which changes the *number* of dictionary entries --
	// never reinterprets an already-written literal-pair byte in an RLE
	// or REF entry. That leaves the dictionary-reference range a fixed
	// span immediately after the run tokens, which is what bounds
	// maxDictEntries (tighter than a literal reading of "255 -
	// DICT_START" would allow, but self-consistent: every byte value is
	// assigned to exactly one category regardless of dictionary size).
	maxDictEntries = 256 - DictStart - literalPairSpan

	// ZeroRunMax is the longest background run a single token can
	// express (byte range 1..15).
	ZeroRunMax = 15

	// FifteenRunMax is the longest foreground run a single token can
	// express (byte range 16..23). Fixed at 8 per SPEC_FULL.md's open
	// question decision: the 8-wide byte range (16..23) only
	// self-consistently supports a max run of 8.
	FifteenRunMax = 8
)

// DictRefIndex reports whether b is a dictionary-reference token given a
// dictionary of length dictLen, and if so which index it refers to. It is
// used by the acyclicity check here, by Save's reference counts and by the
// optimizer's renumbering pass; internal/encoding decodes the same layout
// in its own parseToken.
func DictRefIndex(b byte, dictLen int) (int, bool) {
	if int(b) < DictStart {
		return 0, false
	}
	idx := int(b) - DictStart
	if idx >= dictLen {
		return 0, false
	}
	return idx, true
}

// EntryKind distinguishes the two dictionary entry shapes (§3).
type EntryKind int

const (
	// RLE entries expand to a pixel sequence.
	RLE EntryKind = iota
	// REF entries expand to a token sequence that may reference
	// strictly earlier dictionary entries.
	REF
)

func (k EntryKind) String() string {
	if k == RLE {
		return "rle"
	}
	return "ref"
}

// DictEntry is one dictionary slot: a short byte string (2-15 bytes) in
// the token alphabet, tagged with its kind. Modeled as a tagged value in
// an indexed arena, per §9, rather than a pointer graph: references are
// raw indices and acyclicity is "index < self".
type DictEntry struct {
	Kind  EntryKind
	Bytes []byte
}

func (e DictEntry) clone() DictEntry {
	b := make([]byte, len(e.Bytes))
	copy(b, e.Bytes)
	return DictEntry{Kind: e.Kind, Bytes: b}
}

// Dictionary is the ordered sequence of entries, RLE prefix then REF
// suffix, referenced by position.
type Dictionary []DictEntry

// Clone returns a deep copy, so a caller can mutate it without aliasing
// the original data file's dictionary.
func (d Dictionary) Clone() Dictionary {
	out := make(Dictionary, len(d))
	for i, e := range d {
		out[i] = e.clone()
	}
	return out
}

// validate checks invariants 2 and 4 of §3: size bound, RLE-before-REF
// partitioning, entry byte-length bound, and acyclicity.
func (d Dictionary) validate() error {
	if len(d) > maxDictEntries {
		return ErrDictTooLarge
	}

	seenRef := false
	for _, e := range d {
		if e.Kind == RLE {
			if seenRef {
				return ErrDictNotPartitioned
			}
		} else {
			seenRef = true
		}
		if len(e.Bytes) < 2 || len(e.Bytes) > 15 {
			return ErrDictEntryLength
		}
	}

	for i, e := range d {
		if e.Kind == RLE {
			for _, b := range e.Bytes {
				if _, ok := DictRefIndex(b, len(d)); ok {
					return ErrRLEHasReference
				}
			}
			continue
		}
		for _, b := range e.Bytes {
			if idx, ok := DictRefIndex(b, len(d)); ok && idx >= i {
				return ErrDictCycle
			}
		}
	}

	return nil
}
