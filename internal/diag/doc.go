// Package diag defines the diagnostic model shared by all pipeline phases.
//
//   - Deterministic, serialisable data structures capturing findings from
//     scanning (and, later, parsing).
//   - Light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting layers.
//
// Diagnostics are accumulated, never used to short-circuit a scan: every
// line is attempted, every finding recorded, and the caller sees the full
// list next to whatever partial results survived. The Bag is append-only;
// it never reorders or deduplicates what was added.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt.
package diag
