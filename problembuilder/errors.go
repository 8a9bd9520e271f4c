package problembuilder

import "errors"

// ErrNoBuildFunc indicates ParallelLoad was called with a nil build
// function at some index; every slot must produce a problem, even a
// trivially empty one, so the caller's downstream solves line up with
// their roots by index.
var ErrNoBuildFunc = errors.New("problembuilder: nil build function")
