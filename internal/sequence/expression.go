package sequence

// Rel is a directional precedence relation with a tie-break degree. The
// degree is only meaningful among relations sharing the same anchor operand.
type Rel struct {
	// Forward is true once the relation reads "Left strictly precedes
	// Right". Reverse-form relations are rewritten during normalization.
	Forward bool
	Degree  int
}

// Expr is a relation expression over qualified plugin identities. A nil Rel
// marks an unconstrained expression: a bare name with no ordering demand.
type Expr struct {
	Left  ID
	Right ID
	Rel   *Rel
}
