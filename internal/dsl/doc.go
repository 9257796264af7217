// Package dsl lexes and parses the relation directive language: one
// directive per physical line, relating two (optionally theme-qualified)
// plugin names with "<<" or ">>" and an optional integer degree.
//
// Parsing is best-effort. A bad character or a malformed line is recorded on
// the run's diagnostics collector and skipped; it never aborts the batch.
package dsl
