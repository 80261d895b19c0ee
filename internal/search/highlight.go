package search

import "github.com/kk-code-lab/dcmtag/internal/tree"

// Highlight tracks the single node currently marked as the active search
// result. Holding one reference keeps clearing O(1) instead of sweeping the
// whole tree, and guarantees at most one node is ever marked.
type Highlight struct {
	current *tree.Node
}

// Set marks node as the current result, replacing any previous mark.
func (h *Highlight) Set(node *tree.Node) {
	h.current = node
}

// Clear removes the mark; no node is current afterwards.
func (h *Highlight) Clear() {
	h.current = nil
}

// Current returns the marked node, or nil when none is marked.
func (h *Highlight) Current() *tree.Node {
	return h.current
}

// Is reports whether node is the currently marked node.
func (h *Highlight) Is(node *tree.Node) bool {
	return node != nil && node == h.current
}
