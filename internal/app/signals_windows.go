//go:build windows

package app

import "os"

// No SIGCONT on Windows; nothing to resume from.
func contSignals() []os.Signal {
	return nil
}
