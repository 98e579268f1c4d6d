package app

import (
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/jordannakamoto/ils/internal/config"
	"github.com/jordannakamoto/ils/internal/fileops"
	fsutil "github.com/jordannakamoto/ils/internal/fs"
	"github.com/jordannakamoto/ils/internal/log"
	"github.com/jordannakamoto/ils/internal/preview"
	statepkg "github.com/jordannakamoto/ils/internal/state"
	"github.com/jordannakamoto/ils/internal/ui/input"
	renderui "github.com/jordannakamoto/ils/internal/ui/render"
	"github.com/jordannakamoto/ils/internal/undo"
)

// watchDebounce coalesces bursts of filesystem events into one reload.
const watchDebounce = 100 * time.Millisecond

func NewApplication(startDir string, cfg config.Config) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	editorCmd, _ := detectEditorCommand()
	palette := cfg.Colors.Resolve()

	state := &statepkg.AppState{
		Mode:           statepkg.Normal{},
		ShowHidden:     cfg.Settings.ShowHidden,
		PreviewVisible: cfg.Settings.PreviewOnStart,
		SplitRatio:     config.LoadSplitRatio(),
		FS:             fsutil.OS{},
		Settings:       cfg.Settings,
	}
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	// A finished preview extraction needs a redraw even when no key
	// arrives; an interrupt event wakes the loop.
	notify := func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
	state.Preview = preview.NewBuilder(fsutil.OS{}, preview.PDFExtractor{}, notify, palette.Base)

	if err := statepkg.LoadDirectory(state, startDir); err != nil {
		screen.Fini()
		return nil, err
	}

	if len(cfg.Warnings) > 0 {
		state.StatusMessage = strings.Join(cfg.Warnings, "; ")
		state.StatusIsError = true
	}

	actionCh := make(chan statepkg.Action, 10)
	inputHandler := input.NewInputHandler(actionCh, cfg.Keys)
	inputHandler.SetState(state)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warnf("directory watcher unavailable: %v", err)
		watcher = nil
	} else if err := watcher.Add(state.CurrentPath); err != nil {
		log.Warnf("cannot watch %s: %v", state.CurrentPath, err)
	}

	app := &Application{
		screen:     screen,
		state:      state,
		reducer:    statepkg.NewStateReducer(fileops.Ops{}, undo.NewLog(fileops.Ops{})),
		renderer:   renderui.NewRenderer(screen, palette, cfg.Keys),
		input:      inputHandler,
		actionCh:   actionCh,
		watcher:    watcher,
		watchedDir: state.CurrentPath,
		editorCmd:  editorCmd,
		cfg:        cfg,
	}
	return app, nil
}

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

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	var watchEvents chan fsnotify.Event
	var watchErrors chan error
	if app.watcher != nil {
		watchEvents = app.watcher.Events
		watchErrors = app.watcher.Errors
	}

	refreshTimer := time.NewTimer(watchDebounce)
	if !refreshTimer.Stop() {
		<-refreshTimer.C
	}
	var refreshCh <-chan time.Time

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
		case <-watchEvents:
			refreshTimer.Reset(watchDebounce)
			refreshCh = refreshTimer.C
		case err := <-watchErrors:
			if err != nil {
				log.Warnf("watcher error: %v", err)
			}
		case <-refreshCh:
			refreshCh = nil
			if app.handleAction(statepkg.RefreshAction{}) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
		app.syncWatcher()
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !app.input.ProcessEvent(ev) {
			app.quit()
		}
	case *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.quit()
		}
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

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

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.quit()
		return false
	case statepkg.QuitChangeDirAction:
		app.exitPath = app.state.CurrentPath
		app.quit()
		return false
	case statepkg.RevealAction:
		app.handleReveal()
		app.quit()
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.OpenAction:
		return app.handleOpen()
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		log.Errorf("action %T failed: %v", action, err)
		app.state.StatusMessage = err.Error()
		app.state.StatusIsError = true
	}
	return true
}

// syncWatcher follows the state into a new directory.
func (app *Application) syncWatcher() {
	if app.watcher == nil || app.state.CurrentPath == app.watchedDir {
		return
	}
	_ = app.watcher.Remove(app.watchedDir)
	if err := app.watcher.Add(app.state.CurrentPath); err != nil {
		log.Warnf("cannot watch %s: %v", app.state.CurrentPath, err)
	}
	app.watchedDir = app.state.CurrentPath
}

func (app *Application) quit() {
	app.shouldQuit = true
	if err := config.SaveSplitRatio(app.state.SplitRatio); err != nil {
		log.Warnf("cannot save preview split: %v", err)
	}
}
