package solver

import "errors"

// ErrRootHasNoValue indicates SolveProblem's post-condition was violated:
// the worklist drained without ever assigning a value to root. A missing
// transfer function for root itself is reported earlier, as
// ErrMissingTransferFunction; every other path through recompute
// installs a value before the point leaves the call stack.
var ErrRootHasNoValue = errors.New("solver: root has no value after solve")

// ErrMissingTransferFunction indicates recompute reached a point whose
// node has no registered TransferFunc (spec §7). Fatal: the solver does
// not guess a default transfer function.
var ErrMissingTransferFunction = errors.New("solver: missing transfer function for node")

// ErrNilProblem indicates SolveProblem was called with a nil problem.
var ErrNilProblem = errors.New("solver: problem must not be nil")
