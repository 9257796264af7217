// Package sequence resolves partial-order directives, written per theme in
// the relation language, into one deterministic total execution order for
// plugins.
//
// The pipeline inside a resolution run: parse each theme's text (package
// dsl), qualify raw names into (theme, name) identities, normalize every
// relation to forward form, linearize anchor-sharing relation groups into
// pairwise edges with the degree tie-break, and topologically sort the
// merged edge set (package dag). Contradictions surface as *OrderError;
// everything recoverable lands on the run's diagnostics collector instead.
package sequence
