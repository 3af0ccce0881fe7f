// Package perm implements an algebra of bijections and permutations over
// integer letters, together with cycle structure views and group closure.
//
// A [Bijection] stores only its non-identity pairs: any element it does not
// map explicitly maps to itself. Equality and canonical keys are defined
// over the non-identity pairs alone, so two bijections built over different
// ambient sets compare equal whenever they move the same elements the same
// way. A bijection and its inverse are two views over one shared pair of
// maps, so taking the inverse is free and involutive.
//
// A [Permutation] is a bijection over an explicit ordered domain (its
// "letters"), immutable after construction. Permutations can be built from
// an explicit mapping, from a sequence read as the image of 1..n, or from a
// target arrangement relative to a reference order.
//
// [Closure] computes the finite group generated by a set of permutations by
// round-based saturation; [CyclicGroup] is the single-generator special
// case. [CycleDecomposition] and [CycleCount] expose a permutation's cycle
// structure; matching cycle counts identify conjugate permutations without
// comparing explicit cycles.
package perm
