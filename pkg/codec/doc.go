// Package codec maps mathematical objects to and from unique non-negative
// integers: permutations by factorial-number-system rank (plus an
// alternate inversion-sequence rank), graphs by edge bitmask, integer sets
// by bitmask, and integer sequences by prime-exponent encoding. Group
// classes and whole groups serialize to canonical JSON strings built from
// these integers.
//
// All encodings are exact: values are math/big integers and every codec
// round-trips. Decoders reject negative input with [ErrInvalidInput].
package codec
