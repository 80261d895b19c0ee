package search

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/dcmtag/internal/tree"
)

// Statuses for searches that never ran. Neither is an error; both are
// normal, user-reportable states.
const (
	StatusEnterText   = "enter search text"
	StatusSelectField = "select at least one field"
)

// Fields selects which node attributes a search examines. Enabled fields
// combine with OR: a node matches when any one of them contains the query.
type Fields struct {
	Tag   bool
	Name  bool
	Value bool
}

// Any reports whether at least one field is enabled.
func (f Fields) Any() bool {
	return f.Tag || f.Name || f.Value
}

// Engine computes the ordered match list for a query over the flattened tree
// and walks it cyclically. The cursor is -1 while no result is active; the
// engine owns the Highlight marking the current result.
type Engine struct {
	query     string
	fields    Fields
	matches   []*tree.Node
	cursor    int
	highlight Highlight
}

// NewEngine returns an engine with no active search.
func NewEngine() *Engine {
	return &Engine{cursor: -1}
}

// Run recomputes the match list for query against the forest and returns a
// status line. An empty (or whitespace) query, or no enabled fields, clears
// any previous results and highlight without searching. When there are
// matches the engine immediately advances to the first one, so the caller
// observes cursor 0 and a highlighted node without a separate step.
func (e *Engine) Run(forest []*tree.Node, query string, fields Fields) string {
	e.Reset()
	e.query = query
	e.fields = fields

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return StatusEnterText
	}
	if !fields.Any() {
		return StatusSelectField
	}

	for _, node := range tree.Flatten(forest) {
		if matches(node, needle, fields) {
			e.matches = append(e.matches, node)
		}
	}

	if len(e.matches) == 0 {
		return fmt.Sprintf("no matches for %s", needle)
	}
	e.advance(1)
	return fmt.Sprintf("%d matches", len(e.matches))
}

// Next moves to the following match, wrapping past the last back to the
// first. With no matches it is a no-op and returns an empty status.
func (e *Engine) Next() string {
	return e.advance(1)
}

// Previous moves to the prior match, wrapping before the first back to the
// last. With no matches it is a no-op and returns an empty status.
func (e *Engine) Previous() string {
	return e.advance(-1)
}

func (e *Engine) advance(direction int) string {
	n := len(e.matches)
	if n == 0 {
		return ""
	}
	// Non-negative modulo so retreating from -1 or 0 wraps to the end.
	e.cursor = ((e.cursor+direction)%n + n) % n
	e.highlight.Clear()
	e.highlight.Set(e.matches[e.cursor])
	return fmt.Sprintf("result %d/%d", e.cursor+1, n)
}

// Reset discards matches, cursor and highlight, returning the engine to the
// no-active-search state.
func (e *Engine) Reset() {
	e.query = ""
	e.fields = Fields{}
	e.matches = nil
	e.cursor = -1
	e.highlight.Clear()
}

// Current returns the highlighted node, or nil when no result is active.
func (e *Engine) Current() *tree.Node {
	return e.highlight.Current()
}

// IsCurrent reports whether node is the highlighted result.
func (e *Engine) IsCurrent(node *tree.Node) bool {
	return e.highlight.Is(node)
}

// Matches returns the match list in flattened document order.
func (e *Engine) Matches() []*tree.Node {
	return e.matches
}

// Cursor returns the index of the current result, or -1.
func (e *Engine) Cursor() int {
	return e.cursor
}

// Query returns the query the current match list was computed from.
func (e *Engine) Query() string {
	return e.query
}

func matches(node *tree.Node, needle string, fields Fields) bool {
	if fields.Tag && contains(node.TagLabel, needle) {
		return true
	}
	if fields.Name && contains(node.Name, needle) {
		return true
	}
	if fields.Value && contains(node.Value, needle) {
		return true
	}
	return false
}

func contains(field, needle string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), needle)
}
