package app

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	fsutil "github.com/jordannakamoto/ils/internal/fs"
	"github.com/jordannakamoto/ils/internal/log"
	statepkg "github.com/jordannakamoto/ils/internal/state"
)

// handleOpen enters a selected directory, or hands a selected file to
// the editor (falling back to the pager when no editor resolves).
func (app *Application) handleOpen() bool {
	entry := app.state.Selected()
	if entry == nil {
		return true
	}

	if app.state.FS.IsDir(entry.FullPath) {
		if _, err := app.reducer.Reduce(app.state, statepkg.EnterDirectoryAction{}); err != nil {
			app.reportError(err)
		}
		return true
	}

	if len(app.editorCmd) > 0 {
		if err := app.openFileInEditor(entry.FullPath); err != nil {
			app.reportError(err)
		} else if app.state.Settings.ExitAfterEdit {
			app.exitPath = app.state.CurrentPath
			app.quit()
			return false
		}
	} else if err := app.openFileInPager(entry.FullPath); err != nil {
		app.reportError(err)
	}

	// The file may have been edited while the screen was suspended.
	if app.state.Preview != nil {
		app.state.Preview.Cache().Invalidate(entry.FullPath)
	}
	if _, err := app.reducer.Reduce(app.state, statepkg.RefreshAction{}); err != nil {
		app.reportError(err)
	}
	return true
}

func (app *Application) reportError(err error) {
	log.Errorf("%v", err)
	app.state.StatusMessage = err.Error()
	app.state.StatusIsError = true
}

// handleReveal shows the selection in the system file manager.
func (app *Application) handleReveal() {
	target := app.state.SelectedPath()
	if target == "" {
		target = app.state.CurrentPath
	}

	args := revealArgs(runtime.GOOS, target, exec.LookPath)
	if len(args) == 0 {
		return
	}
	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		log.Warnf("reveal failed: %v", err)
		return
	}
	// Detach; quitting should not wait on the file manager.
	go func() { _ = cmd.Wait() }()
}

func (app *Application) pagerArgs(filePath string) []string {
	base := detectPagerCommand(runtime.GOOS, os.Getenv("PAGER"), pagerLookPath)
	if len(base) == 0 {
		return nil
	}

	args := make([]string, len(base)+1)
	copy(args, base)
	args[len(base)] = filePath
	return args
}

func (app *Application) openFileInPager(filePath string) error {
	sample, err := fsutil.ReadTextSample(filePath)
	if err != nil {
		return fmt.Errorf("cannot read file: %w", err)
	}
	if !fsutil.IsTextFile(filePath, sample) {
		return nil
	}

	pagerArgs := app.pagerArgs(filePath)
	if len(pagerArgs) == 0 {
		return fmt.Errorf("no pager command available")
	}

	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return app.openFileInPagerFallback(pagerArgs)
	}
	defer func() {
		_ = tty.Close()
	}()

	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}

	cmd := exec.Command(pagerArgs[0], pagerArgs[1:]...)
	cmd.Stdin = tty
	cmd.Stdout = tty
	cmd.Stderr = tty
	runErr := cmd.Run()

	if err := app.screen.Resume(); err != nil {
		return fmt.Errorf("failed to resume screen: %w", err)
	}
	app.screen.Sync()
	return runErr
}

func (app *Application) openFileInPagerFallback(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no pager command available")
	}
	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}
	defer func() {
		_ = app.screen.Resume()
	}()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (app *Application) openFileInEditor(filePath string) error {
	if len(app.editorCmd) == 0 {
		return fmt.Errorf("no editor configured")
	}

	editorArgs := app.editorArgsWithFile(filePath)
	useTTY := runtime.GOOS != "windows"
	var tty *os.File
	var err error

	if useTTY {
		tty, err = os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if err != nil {
			return app.openFileInEditorFallback(editorArgs)
		}
		defer func() {
			_ = tty.Close()
		}()
	}

	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}

	cmd := exec.Command(editorArgs[0], editorArgs[1:]...)
	if useTTY {
		cmd.Stdin = tty
		cmd.Stdout = tty
		cmd.Stderr = tty
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	runErr := cmd.Run()

	if err := app.screen.Resume(); err != nil {
		return fmt.Errorf("failed to resume screen: %w", err)
	}
	app.screen.Sync()
	return runErr
}

func (app *Application) openFileInEditorFallback(args []string) error {
	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}
	defer func() {
		_ = app.screen.Resume()
		app.screen.Sync()
	}()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (app *Application) editorArgsWithFile(filePath string) []string {
	args := make([]string, len(app.editorCmd)+1)
	copy(args, app.editorCmd)
	args[len(app.editorCmd)] = filePath
	return args
}

func revealArgs(goos, target string, lookPath func(string) (string, error)) []string {
	switch goos {
	case "darwin":
		if path, err := lookPath("open"); err == nil {
			return []string{path, "-R", target}
		}
	case "windows":
		return []string{"explorer", "/select," + target}
	default:
		// Most Linux file managers cannot select a file; open its
		// directory instead.
		dir := target
		if info, err := os.Stat(target); err != nil || !info.IsDir() {
			dir = filepath.Dir(target)
		}
		if path, err := lookPath("xdg-open"); err == nil {
			return []string{path, dir}
		}
	}
	return nil
}
