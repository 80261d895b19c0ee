package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/dcmtag/internal/state"
)

func newHandler(state *statepkg.AppState) (*InputHandler, chan statepkg.Action) {
	actionChan := make(chan statepkg.Action, 10)
	ih := NewInputHandler(actionChan)
	ih.SetState(state)
	return ih, actionChan
}

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func expectAction(t *testing.T, actionChan chan statepkg.Action, want statepkg.Action) {
	t.Helper()
	select {
	case got := <-actionChan:
		if got != want {
			t.Errorf("got %T%+v, want %T%+v", got, got, want, want)
		}
	default:
		t.Errorf("no action emitted, want %T", want)
	}
}

func TestTreeModeKeys(t *testing.T) {
	state := statepkg.NewAppState()
	ih, actionChan := newHandler(state)

	tests := []struct {
		name   string
		event  *tcell.EventKey
		expect statepkg.Action
	}{
		{"down arrow", keyEvent(tcell.KeyDown, 0), statepkg.NavigateDownAction{}},
		{"up arrow", keyEvent(tcell.KeyUp, 0), statepkg.NavigateUpAction{}},
		{"left collapses", keyEvent(tcell.KeyLeft, 0), statepkg.CollapseAction{}},
		{"right expands", keyEvent(tcell.KeyRight, 0), statepkg.ExpandAction{}},
		{"enter toggles", keyEvent(tcell.KeyEnter, 0), statepkg.ToggleExpandAction{}},
		{"slash starts search", keyEvent(tcell.KeyRune, '/'), statepkg.SearchStartAction{}},
		{"o opens prompt", keyEvent(tcell.KeyRune, 'o'), statepkg.PromptStartAction{}},
		{"F2 previous result", keyEvent(tcell.KeyF2, 0), statepkg.PrevResultAction{}},
		{"F3 next result", keyEvent(tcell.KeyF3, 0), statepkg.NextResultAction{}},
		{"F5 toggles tag field", keyEvent(tcell.KeyF5, 0), statepkg.ToggleFieldAction{Field: statepkg.FieldTag}},
		{"j navigates down", keyEvent(tcell.KeyRune, 'j'), statepkg.NavigateDownAction{}},
		{"G jumps to end", keyEvent(tcell.KeyRune, 'G'), statepkg.GoEndAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !ih.ProcessEvent(tt.event) {
				t.Fatal("event should not quit")
			}
			expectAction(t, actionChan, tt.expect)
		})
	}
}

func TestQuitKeys(t *testing.T) {
	state := statepkg.NewAppState()
	ih, actionChan := newHandler(state)

	if ih.ProcessEvent(keyEvent(tcell.KeyRune, 'q')) {
		t.Error("q should request quit")
	}
	expectAction(t, actionChan, statepkg.QuitAction{})

	if ih.ProcessEvent(keyEvent(tcell.KeyCtrlC, 0)) {
		t.Error("ctrl-c should request quit")
	}
	expectAction(t, actionChan, statepkg.QuitAction{})
}

func TestSearchModeKeys(t *testing.T) {
	state := statepkg.NewAppState()
	state.SearchActive = true
	ih, actionChan := newHandler(state)

	ih.ProcessEvent(keyEvent(tcell.KeyRune, 'x'))
	expectAction(t, actionChan, statepkg.SearchCharAction{Char: 'x'})

	ih.ProcessEvent(keyEvent(tcell.KeyBackspace2, 0))
	expectAction(t, actionChan, statepkg.SearchBackspaceAction{})

	ih.ProcessEvent(keyEvent(tcell.KeyEnter, 0))
	expectAction(t, actionChan, statepkg.SearchCommitAction{})

	ih.ProcessEvent(keyEvent(tcell.KeyEscape, 0))
	expectAction(t, actionChan, statepkg.SearchClearAction{})

	// q types into the query instead of quitting.
	if !ih.ProcessEvent(keyEvent(tcell.KeyRune, 'q')) {
		t.Error("q in search mode must not quit")
	}
	expectAction(t, actionChan, statepkg.SearchCharAction{Char: 'q'})
}

func TestPromptModeKeys(t *testing.T) {
	state := statepkg.NewAppState()
	state.PromptActive = true
	ih, actionChan := newHandler(state)

	ih.ProcessEvent(keyEvent(tcell.KeyRune, '/'))
	expectAction(t, actionChan, statepkg.PromptCharAction{Char: '/'})

	ih.ProcessEvent(keyEvent(tcell.KeyEnter, 0))
	expectAction(t, actionChan, statepkg.PromptSubmitAction{})

	ih.ProcessEvent(keyEvent(tcell.KeyEscape, 0))
	expectAction(t, actionChan, statepkg.PromptCancelAction{})
}

func TestResizeEmitsResizeAction(t *testing.T) {
	state := statepkg.NewAppState()
	ih, actionChan := newHandler(state)

	ih.ProcessEvent(tcell.NewEventResize(120, 40))
	expectAction(t, actionChan, statepkg.ResizeAction{Width: 120, Height: 40})
}
