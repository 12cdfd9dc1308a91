package bitmask

// Package-level forms for combining bare flag values without wrapping them
// in a Set first. Of covers the or form.

// And returns the intersection of two bare flag values as a set.
func And[E Flag[E]](left, right E) Set[E] {
	return Set[E]{bits: left & right}
}

// Xor returns the symmetric difference of two bare flag values as a set.
func Xor[E Flag[E]](left, right E) Set[E] {
	return Set[E]{bits: left ^ right}
}

// Not returns the complement of a bare flag value within the registered
// universe as a set.
func Not[E Flag[E]](flag E) Set[E] {
	return Of(flag).Not()
}

// Cmp compares a raw value on the left against a set on the right,
// numerically. Cmp(bits, s) agrees with -s.CmpBits(bits).
func Cmp[E Flag[E]](bits E, s Set[E]) int {
	return -s.CmpBits(bits)
}
