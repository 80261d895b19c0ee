package app

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/dcmtag/internal/state"
	inputui "github.com/kk-code-lab/dcmtag/internal/ui/input"
	renderui "github.com/kk-code-lab/dcmtag/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	shouldQuit bool
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	return nil
}

// CurrentFilePath returns the successfully opened file, for session
// persistence on exit.
func (app *Application) CurrentFilePath() string {
	if app.state == nil {
		return ""
	}
	return app.state.FilePath
}
