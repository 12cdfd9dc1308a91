// Package bitmask lets a defined integer type be used safely as a set of
// bit flags. A flag enumeration opts in by declaring an AllFlags method,
// typically built with Universe:
//
//	type Permission uint8
//
//	const (
//		PermRead Permission = 1 << iota
//		PermWrite
//		PermExec
//	)
//
//	func (Permission) AllFlags() Permission {
//		return bitmask.Universe(PermRead, PermWrite, PermExec)
//	}
//
// Only types with an AllFlags method satisfy the Flag constraint, so Set
// cannot be instantiated for a plain enumeration or mix values of two
// different enumerations - both mistakes are compile errors, not runtime
// checks. Declaring AllFlags twice for the same type is likewise a compile
// error, so a type cannot be registered with two conflicting universes.
//
// A type from another package cannot receive methods, so it is opted in
// through a local defined type over it (for example
// "type Mode os.FileMode" plus an AllFlags method). The local type behaves
// exactly like an in-package enumeration.
package bitmask

import "golang.org/x/exp/constraints"

// A Flag is a defined integer type that has been opted in to flag-set
// arithmetic by declaring an AllFlags method. AllFlags returns the union of
// every value the enumeration considers a valid flag; Not complements
// against it rather than against the full bit width.
type Flag[E any] interface {
	constraints.Integer
	AllFlags() E
}

// Universe combines the given flags with bitwise or, for use as the return
// value of an AllFlags method. With no arguments it returns all bits of the
// underlying type set.
func Universe[E constraints.Integer](flags ...E) E {
	if len(flags) == 0 {
		var none E
		return ^none
	}
	return fold(flags)
}

func fold[E constraints.Integer](flags []E) E {
	var union E
	for _, flag := range flags {
		union |= flag
	}
	return union
}

func compare[E constraints.Integer](a, b E) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// A Set is a set of flags of one registered enumeration, stored as a single
// mask of the enumeration's width. The zero value is the empty set. Sets
// are plain comparable values; == and != work directly between two sets of
// the same enumeration.
type Set[E Flag[E]] struct {
	bits E
}

// Of returns the set containing the union of the given flags.
func Of[E Flag[E]](flags ...E) Set[E] {
	return Set[E]{bits: fold(flags)}
}

// FromBits returns the set for an arbitrary mask value. The mask is not
// required to be a subset of the registered universe.
func FromBits[E Flag[E]](bits E) Set[E] {
	return Set[E]{bits: bits}
}

// All returns the set of every flag registered for E.
func All[E Flag[E]]() Set[E] {
	var zero E
	return Set[E]{bits: zero.AllFlags()}
}

// Bits returns the mask. When the set holds several flags, or bits outside
// the registered universe, the result is not a declared enumerator of E.
func (s Set[E]) Bits() E {
	return s.bits
}

// IsEmpty reports whether no flag is set.
func (s Set[E]) IsEmpty() bool {
	return s.bits == 0
}

// Or returns the set with the given flags added.
func (s Set[E]) Or(flags ...E) Set[E] {
	return Set[E]{bits: s.bits | fold(flags)}
}

// And returns the set intersected with the union of the given flags.
func (s Set[E]) And(flags ...E) Set[E] {
	return Set[E]{bits: s.bits & fold(flags)}
}

// Xor returns the set with the union of the given flags toggled.
func (s Set[E]) Xor(flags ...E) Set[E] {
	return Set[E]{bits: s.bits ^ fold(flags)}
}

// Union returns the union of the two sets.
func (s Set[E]) Union(other Set[E]) Set[E] {
	return Set[E]{bits: s.bits | other.bits}
}

// Intersect returns the intersection of the two sets.
func (s Set[E]) Intersect(other Set[E]) Set[E] {
	return Set[E]{bits: s.bits & other.bits}
}

// SymDiff returns the symmetric difference of the two sets.
func (s Set[E]) SymDiff(other Set[E]) Set[E] {
	return Set[E]{bits: s.bits ^ other.bits}
}

// Not returns the complement of the set within the registered universe,
// mask ^ AllFlags. It is not a complement of the full integer width, so
// complementing never introduces flags that were not declared valid.
func (s Set[E]) Not() Set[E] {
	return Set[E]{bits: s.bits ^ s.bits.AllFlags()}
}

// Set adds the given flags to the set and returns the receiver for
// chaining.
func (s *Set[E]) Set(flags ...E) *Set[E] {
	s.bits |= fold(flags)
	return s
}

// Only keeps the bits covered by the union of the given flags and discards
// the rest, returning the receiver for chaining.
func (s *Set[E]) Only(flags ...E) *Set[E] {
	s.bits &= fold(flags)
	return s
}

// Toggle flips the bits of the union of the given flags and returns the
// receiver for chaining.
func (s *Set[E]) Toggle(flags ...E) *Set[E] {
	s.bits ^= fold(flags)
	return s
}

// Remove toggles the given flags off by xor rather than masking them out:
// removing a flag that is currently clear sets it. Callers that need an
// unconditional clear should use Only with the complement instead.
func (s *Set[E]) Remove(flags ...E) *Set[E] {
	s.bits ^= fold(flags)
	return s
}

// Clear empties the set and returns the receiver for chaining.
func (s *Set[E]) Clear() *Set[E] {
	s.bits = 0
	return s
}

// Merge adds every flag of the other set, returning the receiver.
func (s *Set[E]) Merge(other Set[E]) *Set[E] {
	s.bits |= other.bits
	return s
}

// Keep intersects the set with the other set, returning the receiver.
func (s *Set[E]) Keep(other Set[E]) *Set[E] {
	s.bits &= other.bits
	return s
}

// Flip toggles every flag of the other set, returning the receiver. It has
// the same xor behavior as Remove.
func (s *Set[E]) Flip(other Set[E]) *Set[E] {
	s.bits ^= other.bits
	return s
}

// Has reports whether every bit of the union of the given flags is present.
// A multi-flag argument therefore asks "are ALL of these set", not "any".
func (s Set[E]) Has(flags ...E) bool {
	union := fold(flags)
	return s.bits&union == union
}

// HasSet reports whether every flag of the other set is present.
func (s Set[E]) HasSet(other Set[E]) bool {
	return s.bits&other.bits == other.bits
}

// Is reports whether the mask satisfies the given match.
func (s Set[E]) Is(match Match[E]) bool {
	return match(s.bits)
}

// Cmp compares the two masks numerically, returning -1, 0, or +1.
func (s Set[E]) Cmp(other Set[E]) int {
	return compare(s.bits, other.bits)
}

// CmpBits compares the mask against a raw value numerically, returning -1,
// 0, or +1.
func (s Set[E]) CmpBits(bits E) int {
	return compare(s.bits, bits)
}
