package sequence

import "sort"

// edge is one pairwise "strictly precedes" constraint emitted by chain
// building.
type edge struct {
	From ID
	To   ID
}

// chainEdges groups the normalized expressions by shared anchor operand and
// linearizes each group into a chain of pairwise edges.
//
// A group of relations sharing a left anchor x is ordered by ascending
// degree and becomes x ≺ r0 ≺ r1 ≺ … : the lower the degree, the sooner
// after the anchor. A group sharing a right anchor y is ordered by
// descending degree and becomes l0 ≺ l1 ≺ … ≺ y: the higher the degree, the
// farther ahead of the shared successor. Ties on degree are broken by the
// value key of the opposite operand, never by input order, so the emitted
// edge list is a pure function of the expression set.
func chainEdges(exprs []Expr) []edge {
	edges := make([]edge, 0, 2*len(exprs))

	byLeft := make([]Expr, len(exprs))
	copy(byLeft, exprs)
	sort.Slice(byLeft, func(i, j int) bool {
		a, b := byLeft[i], byLeft[j]
		if a.Left != b.Left {
			return a.Left.Key() < b.Left.Key()
		}
		if a.Rel.Degree != b.Rel.Degree {
			return a.Rel.Degree < b.Rel.Degree
		}
		return a.Right.Key() < b.Right.Key()
	})
	for _, group := range groupBy(byLeft, func(e Expr) ID { return e.Left }) {
		// Anchor edge first, then the degree-ascending chain of right
		// operands.
		edges = append(edges, edge{From: group[0].Left, To: group[0].Right})
		for i := 1; i < len(group); i++ {
			edges = append(edges, edge{From: group[i-1].Right, To: group[i].Right})
		}
	}

	byRight := make([]Expr, len(exprs))
	copy(byRight, exprs)
	sort.Slice(byRight, func(i, j int) bool {
		a, b := byRight[i], byRight[j]
		if a.Right != b.Right {
			return a.Right.Key() < b.Right.Key()
		}
		if a.Rel.Degree != b.Rel.Degree {
			return a.Rel.Degree > b.Rel.Degree
		}
		return a.Left.Key() < b.Left.Key()
	})
	for _, group := range groupBy(byRight, func(e Expr) ID { return e.Right }) {
		// Degree-descending chain of left operands, closed by the anchor
		// edge.
		for i := 1; i < len(group); i++ {
			edges = append(edges, edge{From: group[i-1].Left, To: group[i].Left})
		}
		last := group[len(group)-1]
		edges = append(edges, edge{From: last.Left, To: last.Right})
	}

	return edges
}

// groupBy splits a sorted expression list into runs sharing one anchor.
func groupBy(sorted []Expr, anchor func(Expr) ID) [][]Expr {
	var groups [][]Expr
	for start := 0; start < len(sorted); {
		end := start + 1
		for end < len(sorted) && anchor(sorted[end]) == anchor(sorted[start]) {
			end++
		}
		groups = append(groups, sorted[start:end])
		start = end
	}
	return groups
}
