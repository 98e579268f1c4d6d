//go:build !windows

package shellsetup

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// DetectParentShellName names the process that spawned us, which is
// normally the interactive shell.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}

	// /proc is the cheap path on Linux.
	if comm, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", ppid)); err == nil {
		return strings.TrimSpace(string(comm))
	}

	out, err := exec.Command("ps", "-o", "comm=", "-p", strconv.Itoa(ppid)).Output()
	if err != nil {
		return ""
	}
	name := strings.TrimSpace(string(out))
	return strings.TrimPrefix(name, "-")
}
