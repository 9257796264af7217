package sequence

import (
	"strings"

	"github.com/vk/pluginseq/internal/diag"
	"github.com/vk/pluginseq/internal/dsl"
)

// qualify rewrites the raw operands of parsed expressions into plugin
// identities. A bare name is qualified under the given theme; a single-dot
// name is an explicit (theme, name) reference, allowing directives to order
// plugins across themes. An operand with more than one dot is an
// operand-format error: it is recorded on the collector and the containing
// expression is dropped.
func qualify(theme string, raw []dsl.Expr, c *diag.Collector) []Expr {
	exprs := make([]Expr, 0, len(raw))
	for _, re := range raw {
		left, ok := qualifyOperand(theme, re.Left)
		if !ok {
			c.Operand(theme, re.Line, strings.Join(re.Left, "."))
			continue
		}

		if re.Rel == nil {
			exprs = append(exprs, Expr{Left: left})
			continue
		}

		right, ok := qualifyOperand(theme, re.Right)
		if !ok {
			c.Operand(theme, re.Line, strings.Join(re.Right, "."))
			continue
		}

		rel := Rel{Forward: re.Rel.Forward, Degree: re.Rel.Degree}
		exprs = append(exprs, Expr{Left: left, Right: right, Rel: &rel})
	}
	return exprs
}

// qualifyOperand maps identifier parts to an identity. Sentinels stay
// unqualified.
func qualifyOperand(theme string, parts []string) (ID, bool) {
	switch len(parts) {
	case 1:
		switch parts[0] {
		case dsl.Head:
			return Head, true
		case dsl.Tail:
			return Tail, true
		}
		return ID{Theme: theme, Name: parts[0]}, true
	case 2:
		return ID{Theme: parts[0], Name: parts[1]}, true
	default:
		return ID{}, false
	}
}
