// Package entitytype classifies each Begin line of a decoded sequence as
// Primary, Guardian, or Unknown using the fixed linear weight tables from
// the spec's glossary (§4.10), then propagates each classification
// forward onto the Continuation lines of the same record and runs the
// Guardian-needs-a-preceding-Primary post-pass.
package entitytype
