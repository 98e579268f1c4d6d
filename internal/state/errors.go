package state

import (
	"errors"
	"fmt"
	"os"
)

// NavError wraps a failed directory load. The browser never aborts on
// one: the previous listing stays on screen and the error surfaces in
// the status line.
type NavError struct {
	Path string
	Err  error
}

func (e *NavError) Error() string {
	if e.Permission() {
		return fmt.Sprintf("permission denied: %s", e.Path)
	}
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

func (e *NavError) Unwrap() error {
	return e.Err
}

// Permission reports whether the load failed on access rights rather
// than the directory disappearing or being unreadable for other
// reasons.
func (e *NavError) Permission() bool {
	return errors.Is(e.Err, os.ErrPermission)
}
