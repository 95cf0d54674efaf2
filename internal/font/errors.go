package font

import "fmt"

// Sentinel errors for §7 error kind 2, invariant violation on construction.
// Callers can test for a specific cause with errors.Is.
var (
	ErrGlyphSize          = fmt.Errorf("font: glyph dimensions do not match font bounding box")
	ErrDictTooLarge       = fmt.Errorf("font: dictionary exceeds %d entries", maxDictEntries)
	ErrDictNotPartitioned = fmt.Errorf("font: dictionary is not RLE-prefix, REF-suffix")
	ErrDictEntryLength    = fmt.Errorf("font: dictionary entry length out of range [2,15]")
	ErrRLEHasReference    = fmt.Errorf("font: RLE dictionary entry contains a dictionary reference")
	ErrDictCycle          = fmt.Errorf("font: dictionary contains a reference cycle")
	ErrDuplicateCharCode  = fmt.Errorf("font: character code appears in more than one glyph")
)

// ParseError is returned for §7 error kind 1, malformed persistence: it
// carries the 1-based line number so a caller can point a user at the
// offending directive, the way a compiler error would.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("font: line %d: %s", e.Line, e.Message)
}

func parseErrorf(line int, format string, args ...any) error {
	return &ParseError{Line: line, Message: fmt.Sprintf(format, args...)}
}
