package shellsetup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetectShellInternal(t *testing.T) {
	tests := []struct {
		name          string
		goos          string
		envShell      string
		envComspec    string
		parent        func() string
		expectedShell string
	}{
		{
			name:          "uses SHELL when set",
			goos:          "linux",
			envShell:      "/bin/zsh",
			expectedShell: "zsh",
		},
		{
			name:          "falls back to parent shell",
			goos:          "linux",
			parent:        func() string { return "/usr/bin/bash" },
			expectedShell: "bash",
		},
		{
			name:          "powershell canonicalizes to pwsh",
			goos:          "linux",
			envShell:      "powershell",
			expectedShell: "pwsh",
		},
		{
			name:          "windows prefers COMSPEC",
			goos:          "windows",
			envComspec:    `C:\Windows\System32\cmd.exe`,
			expectedShell: "cmd",
		},
		{
			name:          "windows fallback",
			goos:          "windows",
			expectedShell: "pwsh",
		},
		{
			name:          "unix fallback",
			goos:          "linux",
			expectedShell: "bash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := func(key string) string {
				switch key {
				case "SHELL":
					return tt.envShell
				case "COMSPEC":
					return tt.envComspec
				default:
					return ""
				}
			}
			got := detectShellInternal(tt.goos, env, tt.parent)
			if got != tt.expectedShell {
				t.Fatalf("detectShellInternal() = %q, want %q", got, tt.expectedShell)
			}
		})
	}
}

func TestResultFileNameIsPerProcess(t *testing.T) {
	if got := ResultFileName(1234); got != "ils_cd_1234" {
		t.Fatalf("ResultFileName(1234) = %q", got)
	}
	if ResultFileName(1) == ResultFileName(2) {
		t.Fatal("result files for different PIDs must differ")
	}
}

func TestInstallAppendsOnceToRcFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SHELL", "/bin/zsh")

	cfg := Config{DetectParent: func() string { return "zsh" }}

	rcFile, err := Install(cfg)
	if err != nil {
		t.Fatalf("install: %v", err)
	}
	if rcFile != filepath.Join(home, ".zshrc") {
		t.Fatalf("expected zshrc target, got %q", rcFile)
	}

	first, err := os.ReadFile(rcFile)
	if err != nil {
		t.Fatalf("read rc file: %v", err)
	}
	if !strings.Contains(string(first), installMarker) {
		t.Fatalf("marker missing from rc file: %q", string(first))
	}
	if !strings.Contains(string(first), "--setup") {
		t.Fatalf("setup eval missing from rc file: %q", string(first))
	}

	if _, err := Install(cfg); err != nil {
		t.Fatalf("second install: %v", err)
	}
	second, err := os.ReadFile(rcFile)
	if err != nil {
		t.Fatalf("re-read rc file: %v", err)
	}
	if string(first) != string(second) {
		t.Fatal("second install modified the rc file")
	}
}
