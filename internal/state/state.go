package state

import (
	searchpkg "github.com/kk-code-lab/dcmtag/internal/search"
	treepkg "github.com/kk-code-lab/dcmtag/internal/tree"
)

// chromeRows is the screen space taken by header, search bar and status line.
const chromeRows = 3

// Row is one visible line of the tree panel.
type Row struct {
	Node  *treepkg.Node
	Depth int
}

// SearchField names one of the three searchable columns.
type SearchField int

const (
	FieldTag SearchField = iota
	FieldName
	FieldValue
)

// AppState is the single source of truth.
type AppState struct {
	// Loaded file
	FilePath string
	Forest   []*treepkg.Node

	// Derived display model
	Rows     []Row
	expanded map[*treepkg.Node]bool
	parents  map[*treepkg.Node]*treepkg.Node

	// Selection & viewport
	SelectedIndex int
	ScrollOffset  int

	// Search
	Engine       *searchpkg.Engine
	SearchActive bool   // search bar has input focus
	SearchQuery  string // live input buffer
	SearchFields searchpkg.Fields

	// Open-file prompt
	PromptActive bool
	PromptInput  string

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Status line
	Status    string
	LastError error
}

// NewAppState returns an empty state with all search fields enabled, matching
// the original viewer's defaults.
func NewAppState() *AppState {
	return &AppState{
		Engine:       searchpkg.NewEngine(),
		SearchFields: searchpkg.Fields{Tag: true, Name: true, Value: true},
		Status:       "Ready",
	}
}

// CurrentRow returns the selected visible row, or nil when the tree is empty.
func (s *AppState) CurrentRow() *Row {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Rows) {
		return nil
	}
	return &s.Rows[s.SelectedIndex]
}

// IsExpanded reports whether node's children are currently visible.
func (s *AppState) IsExpanded(node *treepkg.Node) bool {
	return s.expanded[node]
}

func (s *AppState) setExpanded(node *treepkg.Node, open bool) {
	if s.expanded == nil {
		s.expanded = make(map[*treepkg.Node]bool)
	}
	if open {
		s.expanded[node] = true
	} else {
		delete(s.expanded, node)
	}
}

// rebuildRows recomputes the visible-row list from the forest and the
// expansion set. Children appear only under expanded parents.
func (s *AppState) rebuildRows() {
	s.Rows = s.Rows[:0]
	var walk func(nodes []*treepkg.Node, depth int)
	walk = func(nodes []*treepkg.Node, depth int) {
		for _, node := range nodes {
			s.Rows = append(s.Rows, Row{Node: node, Depth: depth})
			if len(node.Children) > 0 && s.expanded[node] {
				walk(node.Children, depth+1)
			}
		}
	}
	walk(s.Forest, 0)
	if s.SelectedIndex >= len(s.Rows) {
		s.SelectedIndex = len(s.Rows) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}

// rebuildParents recomputes the child-to-parent index used for expanding a
// node's ancestors.
func (s *AppState) rebuildParents() {
	s.parents = make(map[*treepkg.Node]*treepkg.Node)
	treepkg.Walk(s.Forest, func(node, parent *treepkg.Node) {
		s.parents[node] = parent
	})
}

// revealNode expands every ancestor of node, rebuilds the rows and moves the
// selection onto it, scrolling it into view. Mirrors the original viewer's
// scroll-to-result behavior.
func (s *AppState) revealNode(node *treepkg.Node) {
	for parent := s.parents[node]; parent != nil; parent = s.parents[parent] {
		s.setExpanded(parent, true)
	}
	s.rebuildRows()
	for i := range s.Rows {
		if s.Rows[i].Node == node {
			s.SelectedIndex = i
			break
		}
	}
	s.clampScroll()
}

// treeHeight returns how many rows of the tree panel fit on screen.
func (s *AppState) treeHeight() int {
	h := s.ScreenHeight - chromeRows
	if h < 1 {
		h = 1
	}
	return h
}

// clampScroll keeps the selection inside the visible window.
func (s *AppState) clampScroll() {
	height := s.treeHeight()
	if s.SelectedIndex < s.ScrollOffset {
		s.ScrollOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ScrollOffset+height {
		s.ScrollOffset = s.SelectedIndex - height + 1
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}
