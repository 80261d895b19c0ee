package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type PageUpAction struct{}
type PageDownAction struct{}
type GoHomeAction struct{}
type GoEndAction struct{}
type ToggleExpandAction struct{}
type ExpandAction struct{}
type CollapseAction struct{}

// ===== SEARCH ACTIONS =====

type SearchStartAction struct{}
type SearchCharAction struct {
	Char rune
}
type SearchBackspaceAction struct{}
type SearchCommitAction struct{} // leave the search bar, keep results
type SearchClearAction struct{}  // leave the search bar, drop query and results
type ToggleFieldAction struct {
	Field SearchField
}
type NextResultAction struct{}
type PrevResultAction struct{}

// ===== FILE ACTIONS =====

type LoadFileAction struct {
	Path string
}
type PromptStartAction struct{}
type PromptCharAction struct {
	Char rune
}
type PromptBackspaceAction struct{}
type PromptCancelAction struct{}
type PromptSubmitAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
