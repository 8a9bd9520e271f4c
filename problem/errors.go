package problem

import "errors"

// ErrUnknownNode names a lookup against a NodeId the problem never
// registered — either via Register or AllocateNode. Transfer and
// ChangeDetectorFor report that case through their boolean result and do
// not return this error.
var ErrUnknownNode = errors.New("problem: unknown node id")
