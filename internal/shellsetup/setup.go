package shellsetup

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

type ParentShellFunc func() string

type Config struct {
	DetectParent ParentShellFunc
}

// ResultFileName is the per-process file the wrapper reads to cd after
// the browser exits. The PID keeps concurrent instances apart.
func ResultFileName(pid int) string {
	return fmt.Sprintf("ils_cd_%d", pid)
}

// PrintSetup emits a shell function wrapping the binary so the parent
// shell can change directory to wherever the browser exited.
func PrintSetup(shellOverride string, cfg Config) {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}

	shell := normalizeShellName(shellOverride)
	if shell == "" {
		shell = detectShell(parent)
	}
	shell = canonicalShellName(shell)

	binPath, err := os.Executable()
	if err != nil {
		binPath = "ils"
	}
	quoted := strconv.Quote(binPath)

	switch shell {
	case "fish":
		fmt.Printf(`function ils
    command %s $argv &
    set ils_pid $last_pid
    wait $ils_pid

    set tmp_dir "/tmp"
    if set -q TMPDIR
        set tmp_dir "$TMPDIR"
    end
    set result_file "$tmp_dir/ils_cd_$ils_pid"
    if test -f "$result_file" -a ! -L "$result_file" -a -O "$result_file"
        set dest (cat "$result_file" 2>/dev/null)
        if test -d "$dest" 2>/dev/null
            builtin cd "$dest"
        end
    end
    rm -f "$result_file" 2>/dev/null
end
`, quoted)
	case "pwsh", "powershell":
		fmt.Printf(`function ils {
    param([Parameter(ValueFromRemainingArguments=$true)][string[]]$Args)
    $process = Start-Process -FilePath %s -ArgumentList $Args -NoNewWindow -PassThru
    $process.WaitForExit()

    $resultFile = Join-Path $env:TEMP "ils_cd_$($process.Id)"
    try {
        if (Test-Path $resultFile -PathType Leaf) {
            $dest = Get-Content $resultFile -Raw -ErrorAction SilentlyContinue | ForEach-Object { $_.Trim() }
            if ((Test-Path $dest -PathType Container) -and -not [string]::IsNullOrEmpty($dest)) {
                Set-Location $dest
            }
        }
    } finally {
        Remove-Item $resultFile -ErrorAction SilentlyContinue
    }
}
`, quoted)
	default:
		// bash, zsh, and anything POSIX enough.
		fmt.Printf(`ils() {
    command %s "$@" &
    ils_pid=$!
    wait $ils_pid

    result_file="${TMPDIR:-/tmp}/ils_cd_$ils_pid"
    if [ -f "$result_file" ] && [ ! -L "$result_file" ] && [ -O "$result_file" ]; then
        dest=$(cat "$result_file" 2>/dev/null)
        rm -f "$result_file"
        if [ -d "$dest" ] 2>/dev/null; then
            cd "$dest"
        fi
    else
        rm -f "$result_file" 2>/dev/null
    fi
}
`, quoted)
	}
}

const installMarker = "# ils shell integration"

// Install appends the wrapper to the shell's rc file so new sessions
// pick it up, and reports the file it wrote. Running it twice is a
// no-op.
func Install(cfg Config) (string, error) {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}
	shell := detectShell(parent)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate home directory: %w", err)
	}

	var rcFile string
	switch shell {
	case "zsh":
		rcFile = path.Join(home, ".zshrc")
	case "fish":
		rcFile = path.Join(home, ".config", "fish", "config.fish")
	case "bash":
		rcFile = path.Join(home, ".bashrc")
	default:
		rcFile = path.Join(home, ".profile")
	}

	if data, err := os.ReadFile(rcFile); err == nil && strings.Contains(string(data), installMarker) {
		return rcFile, nil
	}

	binPath, err := os.Executable()
	if err != nil {
		binPath = "ils"
	}

	snippet := fmt.Sprintf("\n%s\neval \"$(%s --setup %s)\"\n", installMarker, strconv.Quote(binPath), shell)
	if shell == "fish" {
		snippet = fmt.Sprintf("\n%s\n%s --setup fish | source\n", installMarker, strconv.Quote(binPath))
	}

	f, err := os.OpenFile(rcFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()
	if _, err := f.WriteString(snippet); err != nil {
		return "", err
	}
	return rcFile, nil
}

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := canonicalShellName(normalizeShellName(parent())); shell != "" {
			return shell
		}
	}

	if strings.EqualFold(goos, "windows") {
		if shell := canonicalShellName(normalizeShellName(getenv("COMSPEC"))); shell != "" {
			switch shell {
			case "pwsh", "cmd":
				return shell
			}
		}
		return "pwsh"
	}

	return "bash"
}

func canonicalShellName(name string) string {
	switch name {
	case "powershell":
		return "pwsh"
	default:
		return name
	}
}

func normalizeShellName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	value = extractExecutable(value)
	if value == "" {
		return ""
	}

	value = strings.Trim(value, `"'`)
	value = strings.ReplaceAll(value, "\\", "/")
	base := path.Base(value)
	base = strings.ToLower(base)
	base = strings.TrimSuffix(base, ".exe")
	return strings.TrimSpace(base)
}

func extractExecutable(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if strings.HasPrefix(value, "\"") {
		value = value[1:]
		if idx := strings.IndexRune(value, '"'); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if strings.HasPrefix(value, "'") {
		value = value[1:]
		if idx := strings.IndexRune(value, '\''); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}

	return value
}
