package app

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/dcmtag/internal/state"
	inputui "github.com/kk-code-lab/dcmtag/internal/ui/input"
	renderui "github.com/kk-code-lab/dcmtag/internal/ui/render"
)

// Options configures application startup.
type Options struct {
	// Path is the DICOM file to open immediately; empty starts with no
	// file loaded.
	Path string
}

// NewApplication initializes the screen and wires state, reducer, renderer
// and input together. An unreadable startup file is reported through the
// status line, not treated as fatal.
func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	state := statepkg.NewAppState()
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 10)
	reducer := statepkg.NewStateReducer()
	renderer := renderui.NewRenderer(screen)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	app := &Application{
		screen:   screen,
		state:    state,
		reducer:  reducer,
		renderer: renderer,
		input:    inputHandler,
		actionCh: actionCh,
	}

	if opts.Path != "" {
		app.handleAction(statepkg.LoadFileAction{Path: opts.Path})
	}
	return app, nil
}

// Run drives the event loop until quit.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}
