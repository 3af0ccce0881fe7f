package perm

import "errors"

var (
	// ErrIllFormed is returned by WellFormed when a permutation's domain and
	// range differ, i.e. the mapping is a partial injection rather than a
	// true permutation. Construction does not forbid ill-formed mappings;
	// callers that need the guarantee must check explicitly.
	ErrIllFormed = errors.New("permutation domain and range differ")

	// ErrInvalidGenerators is returned by Closure when the generators are
	// not all permutations of the same letters. It is reported before any
	// composition is attempted.
	ErrInvalidGenerators = errors.New("generators drawn from different domains")

	// ErrBadArrangement is returned by FromArrangement when the target is
	// not a rearrangement of the reference order.
	ErrBadArrangement = errors.New("target is not a rearrangement of the reference order")
)
