// Package lattice defines the algebraic contract the solver core consumes
// for a value type V, and nothing else: a bottom element and a join. Top
// and meet are not part of this contract — widening (lattice.Reversed
// aside) is a per-problem concern supplied through an iteration bound, not
// a lattice operation (see the problem package).
package lattice

// Lattice is the algebraic contract a client value type V must satisfy.
// Join must be commutative, associative, idempotent, and monotone; the
// core never verifies this and a violation may produce an incorrect fixed
// point, but must not corrupt graph invariants (spec §4.1).
type Lattice[V any] interface {
	// Bottom is the optimistic starting approximation for any point.
	Bottom() V
	// Join combines two approximations into their least upper bound.
	Join(a, b V) V
}

// Func adapts two plain functions into a Lattice, for clients who would
// rather not declare a named type per value domain.
type Func[V any] struct {
	BottomFn func() V
	JoinFn   func(a, b V) V
}

func (f Func[V]) Bottom() V         { return f.BottomFn() }
func (f Func[V]) Join(a, b V) V     { return f.JoinFn(a, b) }

// Ordered is satisfied by a client type whose values admit a total order,
// used to build reversed-order wrappers (spec §9, design note on
// "orphan lattice instances / newtype-reversed Arity ordering").
type Ordered[T any] interface {
	// Compare returns <0 if this precedes other, 0 if equal, >0 if this
	// follows other.
	Compare(other T) int
}

// Reversed wraps an Ordered value and inverts its comparison, for clients
// who need "more is less" semantics (e.g. arity, where more arguments
// means more information) without writing a second concrete type.
type Reversed[T Ordered[T]] struct {
	Value T
}

// Compare implements Ordered by negating the wrapped value's comparison.
func (r Reversed[T]) Compare(other Reversed[T]) int {
	return -r.Value.Compare(other.Value)
}
