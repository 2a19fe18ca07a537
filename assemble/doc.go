// Package assemble folds a decoded core.JointSequence and its backing
// spans into the nested RecordSpan -> EntitySpan -> FieldSpan output
// shape (§4.9 of the spec):
//
//   - partition lines into records on every Begin boundary;
//   - inside a record, group contiguous runs of identical EntityType
//     into EntitySpans, dropping all-noise Unknown lines;
//   - score every included span's assigned label with a softmax over the
//     schema's full label set, stabilised against overflow.
//
// Assemble always runs the entitytype annotator first; the annotator
// classifies only lines that carry no classification yet, so entity types
// forced by feedback are kept, and callers never have to remember the
// ordering themselves.
package assemble
