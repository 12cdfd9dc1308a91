package bitmask

// A Match is a predicate over a mask value, usable with Set.Is.
type Match[E Flag[E]] func(value E) bool

// MatchAll matches masks that have every bit of test set.
func MatchAll[E Flag[E]](test E) Match[E] {
	return func(value E) bool {
		return value&test == test
	}
}

// MatchOnly matches masks that have no bits outside of test.
func MatchOnly[E Flag[E]](test E) Match[E] {
	return func(value E) bool {
		return value&test == value
	}
}

// MatchExact matches masks equal to test.
func MatchExact[E Flag[E]](test E) Match[E] {
	return func(value E) bool {
		return value == test
	}
}

// MatchAny matches masks that share at least one bit with test.
func MatchAny[E Flag[E]](test E) Match[E] {
	return func(value E) bool {
		return value&test != 0
	}
}

// MatchNone matches masks that share no bits with test.
func MatchNone[E Flag[E]](test E) Match[E] {
	return func(value E) bool {
		return value&test == 0
	}
}

// MatchEmpty matches the empty mask.
func MatchEmpty[E Flag[E]]() Match[E] {
	return func(value E) bool {
		return value == 0
	}
}

// MatchNot inverts a match.
func MatchNot[E Flag[E]](not Match[E]) Match[E] {
	return func(value E) bool {
		return !not(value)
	}
}

// MatchAnd matches when every given match does.
func MatchAnd[E Flag[E]](ands ...Match[E]) Match[E] {
	return func(value E) bool {
		for _, and := range ands {
			if !and(value) {
				return false
			}
		}
		return true
	}
}

// MatchOr matches when any given match does.
func MatchOr[E Flag[E]](ors ...Match[E]) Match[E] {
	return func(value E) bool {
		for _, or := range ors {
			if or(value) {
				return true
			}
		}
		return false
	}
}
