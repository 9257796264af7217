// Package diag collects non-fatal diagnostics raised while parsing and
// qualifying relation directives. A Collector is scoped to a single
// resolution run: create one at run start, read it once at run end. It is
// not safe for concurrent use; concurrent resolution runs must each own
// their own Collector.
package diag

import (
	"fmt"
	"sort"
)

// Kind classifies a diagnostic entry.
type Kind int

const (
	// KindLexical marks an unrecognized character that was skipped.
	KindLexical Kind = iota
	// KindSyntax marks a directive line that did not match the grammar and
	// was discarded up to the next line boundary.
	KindSyntax
	// KindOperand marks an operand with more than one namespace separator;
	// the containing expression was dropped.
	KindOperand
)

// Entry is a single recorded diagnostic, keyed by the theme whose directive
// text produced it.
type Entry struct {
	Theme string
	Line  int
	Kind  Kind
	// Token is the offending character, token, or operand text.
	Token string
	// Discarded holds the text thrown away during resynchronization. Only
	// set for KindSyntax.
	Discarded string
}

// String renders the entry as a human-readable one-liner.
func (e Entry) String() string {
	switch e.Kind {
	case KindLexical:
		return fmt.Sprintf("theme '%s': illegal character %q on line %d", e.Theme, e.Token, e.Line)
	case KindSyntax:
		return fmt.Sprintf("theme '%s': syntax error near %q on line %d, discarded %q", e.Theme, e.Token, e.Line, e.Discarded)
	case KindOperand:
		return fmt.Sprintf("theme '%s': malformed operand %q on line %d", e.Theme, e.Token, e.Line)
	default:
		return fmt.Sprintf("theme '%s': unknown diagnostic on line %d", e.Theme, e.Line)
	}
}

// Collector accumulates diagnostics for one resolution run.
type Collector struct {
	entries []Entry
	themes  map[string]bool
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{themes: make(map[string]bool)}
}

// Lexical records an unrecognized character.
func (c *Collector) Lexical(theme string, line int, char string) {
	c.add(Entry{Theme: theme, Line: line, Kind: KindLexical, Token: char})
}

// Syntax records a grammar violation together with the text discarded while
// resynchronizing to the next line.
func (c *Collector) Syntax(theme string, line int, token, discarded string) {
	c.add(Entry{Theme: theme, Line: line, Kind: KindSyntax, Token: token, Discarded: discarded})
}

// Operand records a malformed operand whose expression was dropped.
func (c *Collector) Operand(theme string, line int, operand string) {
	c.add(Entry{Theme: theme, Line: line, Kind: KindOperand, Token: operand})
}

func (c *Collector) add(e Entry) {
	c.entries = append(c.entries, e)
	c.themes[e.Theme] = true
}

// HadErrors reports whether any diagnostic has been recorded.
func (c *Collector) HadErrors() bool {
	return len(c.entries) > 0
}

// ThemeHadErrors reports whether the given theme produced any diagnostic,
// meaning its resolved contribution should not be fully trusted.
func (c *Collector) ThemeHadErrors(theme string) bool {
	return c.themes[theme]
}

// Entries returns all recorded diagnostics in insertion order.
func (c *Collector) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Report renders every diagnostic as a human-readable line, ordered by theme
// name, then line number, then insertion order.
func (c *Collector) Report() []string {
	entries := c.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Theme != entries[j].Theme {
			return entries[i].Theme < entries[j].Theme
		}
		return entries[i].Line < entries[j].Line
	})

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.String())
	}
	return lines
}
