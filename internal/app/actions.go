package app

import (
	statepkg "github.com/kk-code-lab/dcmtag/internal/state"
)

// handleAction applies one action to the state. Reports whether a redraw is
// needed.
func (app *Application) handleAction(action statepkg.Action) bool {
	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	default:
		if _, err := app.reducer.Reduce(app.state, action); err != nil {
			app.state.LastError = err
			app.state.Status = err.Error()
		}
		return true
	}
}

// processActions drains any queued actions without blocking.
func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}
