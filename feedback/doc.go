// Package feedback turns a batch of user assertions (core.Feedback) into
// the forced constraints the enumerator and lattice decoder consume
// (§4.8): forced labels, forced boundaries, forced entity types, and a
// cloned, assertion-aligned span set.
//
// Build never mutates its input spans; it works on a deep copy, mirroring
// the clone-then-mutate idiom used elsewhere for structural copies.
package feedback
