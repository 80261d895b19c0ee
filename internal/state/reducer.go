package state

// StateReducer applies actions to the AppState.
type StateReducer struct{}

// NewStateReducer creates a reducer.
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies one action. State is mutated in place; the returned pointer
// is the same state, kept for call-site symmetry with error handling.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case NavigateDownAction:
		if state.SelectedIndex < len(state.Rows)-1 {
			state.SelectedIndex++
			state.clampScroll()
		}
		return state, nil

	case NavigateUpAction:
		if state.SelectedIndex > 0 {
			state.SelectedIndex--
			state.clampScroll()
		}
		return state, nil

	case PageDownAction:
		if len(state.Rows) > 0 {
			state.SelectedIndex += state.treeHeight()
			if state.SelectedIndex > len(state.Rows)-1 {
				state.SelectedIndex = len(state.Rows) - 1
			}
			state.clampScroll()
		}
		return state, nil

	case PageUpAction:
		if len(state.Rows) > 0 {
			state.SelectedIndex -= state.treeHeight()
			if state.SelectedIndex < 0 {
				state.SelectedIndex = 0
			}
			state.clampScroll()
		}
		return state, nil

	case GoHomeAction:
		if len(state.Rows) > 0 {
			state.SelectedIndex = 0
			state.clampScroll()
		}
		return state, nil

	case GoEndAction:
		if len(state.Rows) > 0 {
			state.SelectedIndex = len(state.Rows) - 1
			state.clampScroll()
		}
		return state, nil

	case ToggleExpandAction:
		row := state.CurrentRow()
		if row == nil || len(row.Node.Children) == 0 {
			return state, nil
		}
		state.setExpanded(row.Node, !state.IsExpanded(row.Node))
		state.rebuildRows()
		state.clampScroll()
		return state, nil

	case ExpandAction:
		row := state.CurrentRow()
		if row == nil || len(row.Node.Children) == 0 || state.IsExpanded(row.Node) {
			return state, nil
		}
		state.setExpanded(row.Node, true)
		state.rebuildRows()
		state.clampScroll()
		return state, nil

	case CollapseAction:
		row := state.CurrentRow()
		if row == nil {
			return state, nil
		}
		// Collapse the node itself, or jump to its parent when it has no
		// open children.
		if len(row.Node.Children) > 0 && state.IsExpanded(row.Node) {
			state.setExpanded(row.Node, false)
			state.rebuildRows()
			state.clampScroll()
			return state, nil
		}
		if parent := state.parents[row.Node]; parent != nil {
			for i := range state.Rows {
				if state.Rows[i].Node == parent {
					state.SelectedIndex = i
					break
				}
			}
			state.clampScroll()
		}
		return state, nil

	// ===== SEARCH =====

	case SearchStartAction:
		state.SearchActive = true
		state.PromptActive = false
		return state, nil

	case SearchCharAction:
		state.SearchQuery += string(a.Char)
		r.runSearch(state)
		return state, nil

	case SearchBackspaceAction:
		if state.SearchQuery != "" {
			runes := []rune(state.SearchQuery)
			state.SearchQuery = string(runes[:len(runes)-1])
			r.runSearch(state)
		}
		return state, nil

	case SearchCommitAction:
		state.SearchActive = false
		return state, nil

	case SearchClearAction:
		state.SearchActive = false
		state.SearchQuery = ""
		state.Engine.Reset()
		state.Status = "Ready"
		return state, nil

	case ToggleFieldAction:
		switch a.Field {
		case FieldTag:
			state.SearchFields.Tag = !state.SearchFields.Tag
		case FieldName:
			state.SearchFields.Name = !state.SearchFields.Name
		case FieldValue:
			state.SearchFields.Value = !state.SearchFields.Value
		}
		if state.SearchQuery != "" {
			r.runSearch(state)
		}
		return state, nil

	case NextResultAction:
		if status := state.Engine.Next(); status != "" {
			state.Status = status
			state.revealNode(state.Engine.Current())
		}
		return state, nil

	case PrevResultAction:
		if status := state.Engine.Previous(); status != "" {
			state.Status = status
			state.revealNode(state.Engine.Current())
		}
		return state, nil

	// ===== FILE =====

	case LoadFileAction:
		if err := LoadFile(state, a.Path); err != nil {
			state.LastError = err
			state.Status = err.Error()
		}
		return state, nil

	case PromptStartAction:
		state.PromptActive = true
		state.SearchActive = false
		state.PromptInput = ""
		return state, nil

	case PromptCharAction:
		state.PromptInput += string(a.Char)
		return state, nil

	case PromptBackspaceAction:
		if state.PromptInput != "" {
			runes := []rune(state.PromptInput)
			state.PromptInput = string(runes[:len(runes)-1])
		}
		return state, nil

	case PromptCancelAction:
		state.PromptActive = false
		state.PromptInput = ""
		return state, nil

	case PromptSubmitAction:
		path := state.PromptInput
		state.PromptActive = false
		state.PromptInput = ""
		if path == "" {
			return state, nil
		}
		if err := LoadFile(state, path); err != nil {
			state.LastError = err
			state.Status = err.Error()
		}
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.clampScroll()
		return state, nil

	default:
		return state, nil
	}
}

// runSearch re-runs the engine over the current forest and, when a result is
// active, reveals it. The engine auto-advances to the first match, so the
// status reports the match count while the first result is highlighted.
func (r *StateReducer) runSearch(state *AppState) {
	state.Status = state.Engine.Run(state.Forest, state.SearchQuery, state.SearchFields)
	if current := state.Engine.Current(); current != nil {
		state.revealNode(current)
	}
}
