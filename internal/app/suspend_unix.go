//go:build !windows

package app

import (
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/jordannakamoto/ils/internal/log"
	statepkg "github.com/jordannakamoto/ils/internal/state"
)

func (app *Application) suspendToShell() {
	// Return terminal control to the shell before stopping the process.
	_ = app.screen.Suspend()
	// Stop only this process; avoid signalling the entire process group
	// (which can include the wrapper shell function/process that launched
	// ils, breaking job control like `fg`).
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		return false
	}
	app.screen.Sync()
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	// The terminal may have been resized while stopped; a ResizeAction
	// refreshes the grid geometry along with the dimensions.
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		if _, err := app.reducer.Reduce(app.state, statepkg.ResizeAction{Width: w, Height: h}); err != nil {
			log.Errorf("resize after resume: %v", err)
		}
	}
	return true
}
