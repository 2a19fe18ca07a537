// Package cache precomputes, once per document, the values the lattice
// decoder reads on every window: per-line boundary base scores, per-span
// feature vectors and text, and per-line enumerated state spaces (§4.5,
// §9 "Caches as owned arrays").
//
// A DecodeCaches value owns its arrays outright and is built fresh for
// one decode; it is never mutated after BuildCaches returns.
package cache
