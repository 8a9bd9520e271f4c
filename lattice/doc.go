// Package lattice is the smallest package in this module: it exists only
// so solver and problem can share one name for "the algebra a value type
// must satisfy" without either depending on the other's internals.
package lattice
