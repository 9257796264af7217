package sequence

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/pluginseq/internal/dag"
	"github.com/vk/pluginseq/internal/diag"
	"github.com/vk/pluginseq/internal/dsl"
)

// OrderError reports a contradiction in the merged precedence edges. The run
// is aborted; there is no partial order to return. Remaining names the
// identities whose constraints could not be resolved.
type OrderError struct {
	Remaining []ID
}

// Error implements the error interface for OrderError.
func (e *OrderError) Error() string {
	names := make([]string, len(e.Remaining))
	for i, id := range e.Remaining {
		names[i] = id.String()
	}
	return fmt.Sprintf("ordering contradiction among: %s", strings.Join(names, ", "))
}

// Resolver turns per-theme directive text into a single total execution
// order. Each theme's text is parsed and qualified independently via
// Analyze; Sequence then merges every theme's expressions into one batch and
// computes the global order. A Resolver is scoped to one resolution run and
// is not safe for concurrent use.
type Resolver struct {
	collector *diag.Collector
	exprs     map[string][]Expr
}

// New returns a Resolver with a fresh diagnostics collector.
func New() *Resolver {
	return &Resolver{
		collector: diag.NewCollector(),
		exprs:     make(map[string][]Expr),
	}
}

// Analyze parses the given theme's directive text and stores its qualified
// expressions. Lexical, syntax, and operand-format problems accumulate as
// diagnostics rather than failing the call; directives that parsed cleanly
// still contribute to the order. Repeated calls for the same theme
// accumulate into its expression list.
func (r *Resolver) Analyze(theme, text string) {
	raw := dsl.Parse(theme, text, r.collector)
	r.exprs[theme] = append(r.exprs[theme], qualify(theme, raw, r.collector)...)
}

// Diagnostics exposes the collector populated by Analyze. A non-empty
// collector means some directives were dropped and the resolved order
// deserves review before being trusted.
func (r *Resolver) Diagnostics() *diag.Collector {
	return r.collector
}

// Sequence computes the global execution order over every analyzed theme.
//
// All themes' expressions are concatenated into one batch, normalized,
// linearized into precedence edges, and topologically sorted. Identities
// that appear only as successors, together with fully unconstrained names,
// are appended after the constrained prefix; their relative order among
// themselves is NOT guaranteed by this API, only that it is identical for
// identical input. HEAD/TAIL anchors never appear in the result.
//
// A cycle in the merged edges yields an *OrderError and no order at all.
func (r *Resolver) Sequence() ([]ID, error) {
	themes := make([]string, 0, len(r.exprs))
	for theme := range r.exprs {
		themes = append(themes, theme)
	}
	sort.Strings(themes)

	var all []Expr
	for _, theme := range themes {
		all = append(all, r.exprs[theme]...)
	}

	constrained, unconstrained := normalize(all)
	edges := chainEdges(constrained)

	g := dag.New()
	byKey := make(map[string]ID)
	for _, e := range edges {
		from, to := e.From.Key(), e.To.Key()
		byKey[from], byKey[to] = e.From, e.To
		g.AddNode(from)
		g.AddNode(to)
		if err := g.AddEdge(from, to); err != nil {
			// A self-referential constraint is the smallest possible cycle.
			return nil, &OrderError{Remaining: []ID{e.From}}
		}
	}

	order, leaves, err := g.Sort()
	if err != nil {
		var cerr *dag.CycleError
		if errors.As(err, &cerr) {
			remaining := make([]ID, len(cerr.Remaining))
			for i, key := range cerr.Remaining {
				remaining[i] = byKey[key]
			}
			return nil, &OrderError{Remaining: remaining}
		}
		return nil, err
	}

	emitted := make(map[ID]bool, len(order))
	result := make([]ID, 0, len(order)+len(leaves)+len(unconstrained))
	for _, key := range order {
		id := byKey[key]
		emitted[id] = true
		result = append(result, id)
	}

	// Left-behind items: pure successors plus unconstrained names, minus
	// anything the elimination loop already placed. Sorted by value key for
	// reproducibility, though callers must not rely on that order.
	tailSet := make(map[ID]bool)
	for _, key := range leaves {
		if id := byKey[key]; !emitted[id] {
			tailSet[id] = true
		}
	}
	for _, id := range unconstrained {
		if !emitted[id] {
			tailSet[id] = true
		}
	}
	tail := make([]ID, 0, len(tailSet))
	for id := range tailSet {
		tail = append(tail, id)
	}
	sort.Slice(tail, func(i, j int) bool { return tail[i].Key() < tail[j].Key() })
	result = append(result, tail...)

	// The sentinels have done their anchoring work; drop them.
	final := result[:0]
	for _, id := range result {
		if !id.IsSentinel() {
			final = append(final, id)
		}
	}
	return final, nil
}
