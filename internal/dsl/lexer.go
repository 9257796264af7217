package dsl

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// relLexer tokenizes one physical line of directive text. The trailing
// catch-all rule turns every unrecognized character into an Illegal token
// instead of failing the whole line, so lexical errors can be reported and
// skipped individually.
var relLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "LeftOp", Pattern: `<<`},
	{Name: "RightOp", Pattern: `>>`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Illegal", Pattern: `.`},
})

// directive is the participle grammar for a single line:
//
//	directive := operand? relation operand? | operand
//	relation  := '<<' degree? | degree? '>>'
//	operand   := identifier ('.' identifier)*
//
// The grammar is deliberately looser than the language in one spot: an
// operand may carry any number of dots, so that over-qualified names fall
// out as operand-format diagnostics during qualification rather than
// syntax errors here.
type directive struct {
	Left *operandNode `parser:"@@?"`
	Tail *relTail     `parser:"@@?"`
}

// relTail is the operator and optional right operand of a directive.
type relTail struct {
	Rel   relationNode `parser:"@@"`
	Right *operandNode `parser:"@@?"`
}

type operandNode struct {
	Parts []string `parser:"@Ident ( Dot @Ident )*"`
}

type relationNode struct {
	Forward *forwardRel `parser:"@@"`
	Reverse *reverseRel `parser:"| @@"`
}

// forwardRel is "<<" with an optional trailing degree: `a <<2 b`.
type forwardRel struct {
	Degree *int `parser:"LeftOp @Int?"`
}

// reverseRel is ">>" with an optional leading degree: `b 2>> a`.
type reverseRel struct {
	Degree *int `parser:"@Int? RightOp"`
}

var lineParser = participle.MustBuild[directive](
	participle.Lexer(relLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// rel folds the parsed operator into its direction and degree. An absent
// degree literal means degree zero.
func (r relationNode) rel() Rel {
	switch {
	case r.Forward != nil:
		return Rel{Forward: true, Degree: degreeOf(r.Forward.Degree)}
	default:
		return Rel{Forward: false, Degree: degreeOf(r.Reverse.Degree)}
	}
}

// opToken returns the operator literal for diagnostics.
func (r relationNode) opToken() string {
	if r.Forward != nil {
		return "<<"
	}
	return ">>"
}

func degreeOf(d *int) int {
	if d == nil {
		return 0
	}
	return *d
}
