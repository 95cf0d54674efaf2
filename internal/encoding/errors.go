package encoding

import "fmt"

// ErrOverflow is §7 error kind 3: a dictionary (or, degenerately, a single
// glyph) needs more than the 255 available token values to represent.
// Non-fatal to the optimizer: the caller discards the proposal that
// triggered it.
var ErrOverflow = fmt.Errorf("encoding: token space exhausted (255-entry limit)")
