package input

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/dcmtag/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. Returns false when the
// application should quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	inSearch := ih.state != nil && ih.state.SearchActive
	inPrompt := ih.state != nil && ih.state.PromptActive

	// Keys that work in every mode.
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case tcell.KeyF2:
		ih.actionChan <- statepkg.PrevResultAction{}
		return true
	case tcell.KeyF3:
		ih.actionChan <- statepkg.NextResultAction{}
		return true
	case tcell.KeyF5:
		ih.actionChan <- statepkg.ToggleFieldAction{Field: statepkg.FieldTag}
		return true
	case tcell.KeyF6:
		ih.actionChan <- statepkg.ToggleFieldAction{Field: statepkg.FieldName}
		return true
	case tcell.KeyF7:
		ih.actionChan <- statepkg.ToggleFieldAction{Field: statepkg.FieldValue}
		return true
	}

	if inPrompt {
		switch ev.Key() {
		case tcell.KeyEscape:
			ih.actionChan <- statepkg.PromptCancelAction{}
		case tcell.KeyEnter:
			ih.actionChan <- statepkg.PromptSubmitAction{}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			ih.actionChan <- statepkg.PromptBackspaceAction{}
		case tcell.KeyRune:
			ih.actionChan <- statepkg.PromptCharAction{Char: ev.Rune()}
		}
		return true
	}

	if inSearch {
		switch ev.Key() {
		case tcell.KeyEscape:
			ih.actionChan <- statepkg.SearchClearAction{}
		case tcell.KeyEnter:
			ih.actionChan <- statepkg.SearchCommitAction{}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			ih.actionChan <- statepkg.SearchBackspaceAction{}
		case tcell.KeyDown:
			ih.actionChan <- statepkg.NextResultAction{}
		case tcell.KeyUp:
			ih.actionChan <- statepkg.PrevResultAction{}
		case tcell.KeyRune:
			ih.actionChan <- statepkg.SearchCharAction{Char: ev.Rune()}
		}
		return true
	}

	switch ev.Key() {
	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
		return true
	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
		return true
	case tcell.KeyLeft:
		ih.actionChan <- statepkg.CollapseAction{}
		return true
	case tcell.KeyRight:
		ih.actionChan <- statepkg.ExpandAction{}
		return true
	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.PageUpAction{}
		return true
	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.PageDownAction{}
		return true
	case tcell.KeyHome:
		ih.actionChan <- statepkg.GoHomeAction{}
		return true
	case tcell.KeyEnd:
		ih.actionChan <- statepkg.GoEndAction{}
		return true
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.ToggleExpandAction{}
		return true
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.SearchClearAction{}
		return true
	}

	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'q', 'Q':
			ih.actionChan <- statepkg.QuitAction{}
			return false
		case '/':
			ih.actionChan <- statepkg.SearchStartAction{}
		case 'o', 'O':
			ih.actionChan <- statepkg.PromptStartAction{}
		case ' ':
			ih.actionChan <- statepkg.ToggleExpandAction{}
		case 'j':
			ih.actionChan <- statepkg.NavigateDownAction{}
		case 'k':
			ih.actionChan <- statepkg.NavigateUpAction{}
		case 'n':
			ih.actionChan <- statepkg.NextResultAction{}
		case 'N', 'p':
			ih.actionChan <- statepkg.PrevResultAction{}
		case 'g':
			ih.actionChan <- statepkg.GoHomeAction{}
		case 'G':
			ih.actionChan <- statepkg.GoEndAction{}
		}
	}
	return true
}
