// Package lattice implements the emission/transition scoring (§4.4) and
// the windowed Viterbi decoder with beam carry-over (§4.6): a window's
// lattice is a contiguous 2-D array indexed by (column, state-index),
// back-pointers are integer indices, and decoding never allocates a
// graph or pointer structure (§9 "Lattice memory").
package lattice
