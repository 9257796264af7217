package dsl

import (
	"errors"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/vk/pluginseq/internal/diag"
)

// Sentinel operand names substituted when a directive omits an operand. A
// missing left operand stands for "the start of everything", a missing right
// operand for "the end of everything".
const (
	Head = "HEAD"
	Tail = "TAIL"
)

// Rel is the operator of a directive: a direction plus an integer degree
// used to break ties among relations sharing an anchor operand.
type Rel struct {
	// Forward is true for "a << b" (left precedes right) and false for the
	// right-to-left form "b >> a".
	Forward bool
	Degree  int
}

// Expr is one parsed directive. Operands are raw dotted-identifier parts; a
// nil Rel marks a bare, unconstrained operand with no right-hand side.
type Expr struct {
	Left  []string
	Right []string
	Rel   *Rel
	// Line is the 1-based physical line within the directive text.
	Line int
}

// Parse extracts one relation expression per physical line of text. Blank
// lines are skipped. Failures never abort the batch: unrecognized characters
// are recorded on the collector and skipped, and a line that does not match
// the grammar is recorded and discarded whole, with parsing resuming on the
// next line.
func Parse(theme, text string, c *diag.Collector) []Expr {
	var exprs []Expr
	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := scrubIllegal(theme, lineNo, raw, c)
		if strings.TrimSpace(line) == "" {
			continue
		}

		node, err := lineParser.ParseString("", line)
		if err != nil {
			token, discarded := locateFailure(line, err)
			c.Syntax(theme, lineNo, token, discarded)
			continue
		}

		expr, ok := node.expr(lineNo)
		if !ok {
			c.Syntax(theme, lineNo, node.Tail.Rel.opToken(), strings.TrimSpace(line))
			continue
		}
		exprs = append(exprs, expr)
	}
	return exprs
}

// scrubIllegal lexes one line, records every Illegal token as a lexical
// diagnostic, and blanks the offending characters out of the returned line
// so that the surrounding tokens still parse.
func scrubIllegal(theme string, lineNo int, line string, c *diag.Collector) string {
	lx, err := relLexer.LexString("", line)
	if err != nil {
		c.Lexical(theme, lineNo, line)
		return ""
	}
	tokens, err := lexer.ConsumeAll(lx)
	if err != nil {
		c.Lexical(theme, lineNo, line)
		return ""
	}

	illegal := relLexer.Symbols()["Illegal"]
	cleaned := []byte(line)
	for _, tok := range tokens {
		if tok.Type != illegal {
			continue
		}
		c.Lexical(theme, lineNo, tok.Value)
		for i := 0; i < len(tok.Value); i++ {
			cleaned[tok.Pos.Offset+i] = ' '
		}
	}
	return string(cleaned)
}

// locateFailure extracts the offending token and the text discarded during
// resynchronization from a participle parse error.
func locateFailure(line string, err error) (token, discarded string) {
	var unexpected *participle.UnexpectedTokenError
	if errors.As(err, &unexpected) {
		off := unexpected.Unexpected.Pos.Offset
		if off >= 0 && off <= len(line) {
			return unexpected.Unexpected.Value, strings.TrimSpace(line[off:])
		}
		return unexpected.Unexpected.Value, strings.TrimSpace(line)
	}

	var perr participle.Error
	if errors.As(err, &perr) {
		off := perr.Position().Offset
		if off >= 0 && off <= len(line) {
			rest := strings.TrimSpace(line[off:])
			return firstToken(rest), rest
		}
	}
	return firstToken(strings.TrimSpace(line)), strings.TrimSpace(line)
}

func firstToken(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return s
}

// expr converts the parse tree into an Expr, applying the sentinel defaults
// for omitted operands. It reports false for a directive that consists of an
// operator with no operand on either side, which the grammar cannot reject
// on its own.
func (d *directive) expr(lineNo int) (Expr, bool) {
	if d.Tail == nil {
		// Bare operand: unconstrained, no relation recorded.
		return Expr{Left: d.Left.Parts, Line: lineNo}, true
	}

	if d.Left == nil && d.Tail.Right == nil {
		return Expr{}, false
	}

	rel := d.Tail.Rel.rel()
	e := Expr{Rel: &rel, Line: lineNo}

	if d.Left != nil {
		e.Left = d.Left.Parts
	} else {
		e.Left = []string{Head}
	}
	if d.Tail.Right != nil {
		e.Right = d.Tail.Right.Parts
	} else {
		e.Right = []string{Tail}
	}
	return e, true
}
