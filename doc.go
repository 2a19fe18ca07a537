// Package fieldlattice (fieldlattice) is a feature-weighted joint Viterbi
// decoder for pulling structured Record/Entity/Field data out of
// semi-structured text.
//
// 🚀 What is fieldlattice?
//
//	A small, dependency-light decoding pipeline that brings together:
//
//	  • Constrained state enumeration: per-line candidate boundary/label
//	    joint states, capped and forced by schema and feedback
//	  • A windowed Viterbi lattice: feature-weighted emission/transition
//	    scoring with beam carry-over between windows
//	  • A record assembler: folds the decoded path back into nested
//	    Record → Entity → Field spans with softmax confidence
//
// ✨ Why choose fieldlattice?
//
//   - Schema-driven    — fields, cardinalities, and validators come from
//     one core.FieldSchema; nothing is hard-coded per document shape
//   - Correctable      — a feedback context lets a caller force boundaries
//     and labels onto a document without retraining any weights
//   - Streamable       — the windowed driver decodes arbitrarily long
//     documents with bounded lookahead and restarts cleanly
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/       — Line, Span, FieldSchema, JointState/Sequence, Feedback
//	feature/    — the Feature interface and the default line/span features
//	label/      — the replaceable label-scoring Model
//	enumstate/  — constrained per-line joint state enumeration
//	cache/      — one-pass-per-document feature and state-space caches
//	lattice/    — emission/transition scoring and the windowed decoder
//	feedback/   — the feedback context builder
//	entitytype/ — the Primary/Guardian/Unknown annotator
//	assemble/   — folds a decoded sequence into RecordSpans
//	stream/     — the windowed streaming driver
//	telemetry/  — the Logger/Recorder observability interfaces
//
// Quick ASCII example of the pipeline:
//
//	lines ──▶ enumstate ──▶ cache ──▶ lattice.Decode ──▶ assemble.Assemble
//	                                       ▲
//	                                  feedback.Build
//
// Dive into DESIGN.md for the grounding behind every package's shape.
//
//	go get github.com/katalvlaran/fieldlattice
package fieldlattice
