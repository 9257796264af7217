// Package dag stores the merged precedence edge set as a directed
// multigraph and linearizes it with a deterministic Kahn-style elimination.
// Node IDs are opaque strings; determinism comes from always emitting the
// smallest eligible ID, so callers must key nodes by a value-based total
// order rather than anything address- or hash-derived.
package dag
