package sequence

// normalize prepares the concatenated expression list for chain building.
// Unconstrained expressions are pulled out into the returned identity set,
// and every remaining reverse-form relation is rewritten to forward form by
// swapping its operands, so that afterwards each expression reads "Left
// strictly precedes Right" with a degree.
func normalize(exprs []Expr) (constrained []Expr, unconstrained []ID) {
	constrained = make([]Expr, 0, len(exprs))
	for _, e := range exprs {
		if e.Rel == nil {
			unconstrained = append(unconstrained, e.Left)
			continue
		}

		rel := Rel{Forward: true, Degree: e.Rel.Degree}
		if e.Rel.Forward {
			constrained = append(constrained, Expr{Left: e.Left, Right: e.Right, Rel: &rel})
		} else {
			constrained = append(constrained, Expr{Left: e.Right, Right: e.Left, Rel: &rel})
		}
	}
	return constrained, unconstrained
}
