package app

import (
	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/jordannakamoto/ils/internal/config"
	statepkg "github.com/jordannakamoto/ils/internal/state"
	inputui "github.com/jordannakamoto/ils/internal/ui/input"
	renderui "github.com/jordannakamoto/ils/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	watcher    *fsnotify.Watcher
	watchedDir string
	shouldQuit bool
	exitPath   string
	editorCmd  []string
	cfg        config.Config
}

// Close cleans up resources.
func (app *Application) Close() error {
	if app.watcher != nil {
		_ = app.watcher.Close()
	}
	close(app.actionCh)
	app.screen.Fini()
	return nil
}

// ExitPath returns the directory the shell wrapper should cd into, or
// "" when the user quit in place.
func (app *Application) ExitPath() string {
	return app.exitPath
}
