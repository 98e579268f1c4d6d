package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/jordannakamoto/ils/internal/app"
	"github.com/jordannakamoto/ils/internal/config"
	"github.com/jordannakamoto/ils/internal/log"
	"github.com/jordannakamoto/ils/internal/shellsetup"
)

func printHelp() {
	fmt.Print(`ils - keyboard-driven terminal file browser

USAGE:
    ils [OPTIONS] [DIR]

OPTIONS:
    -h, --help            Show this help message and exit
    -s, --setup [SHELL]   Output shell integration snippet (optionally force SHELL)
        --install         Add shell integration to your shell rc file
                          and write default config files
`)
}

var parentShellDetector = shellsetup.DetectParentShellName

func main() {
	// UTF-8 fallback so non-ASCII names render on limited terminals.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	startDir := ""
	if len(os.Args) > 1 {
		arg := os.Args[1]
		switch {
		case arg == "-h" || arg == "--help":
			printHelp()
			os.Exit(0)
		case arg == "-s" || arg == "--setup":
			shellOverride := ""
			if len(os.Args) > 2 {
				shellOverride = os.Args[2]
			}
			shellsetup.PrintSetup(shellOverride, shellsetup.Config{DetectParent: parentShellDetector})
			os.Exit(0)
		case strings.HasPrefix(arg, "--setup="):
			shellOverride := strings.TrimPrefix(arg, "--setup=")
			shellsetup.PrintSetup(shellOverride, shellsetup.Config{DetectParent: parentShellDetector})
			os.Exit(0)
		case arg == "--install":
			runInstall()
			os.Exit(0)
		default:
			startDir = arg
		}
	}

	cfg := config.Load()
	if dir, err := config.Dir(); err == nil {
		if err := log.Setup(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		}
	}

	if startDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
			os.Exit(1)
		}
		startDir = cwd
	}
	if abs, err := filepath.Abs(startDir); err == nil {
		startDir = abs
	}

	app, err := apppkg.NewApplication(startDir, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()

	// The wrapper function installed by --setup reads this file and
	// cds into it. The PID keeps concurrent instances apart.
	if path := app.ExitPath(); path != "" {
		resultFile := filepath.Join(os.TempDir(), shellsetup.ResultFileName(os.Getpid()))
		if err := os.WriteFile(resultFile, []byte(path), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not write result file: %v\n", err)
		}
	}
}

func runInstall() {
	rcFile, err := shellsetup.Install(shellsetup.Config{DetectParent: parentShellDetector})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Shell integration added to %s\n", rcFile)

	configDir, err := config.WriteDefaults()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not write default config: %v\n", err)
		return
	}
	fmt.Printf("Default configuration written to %s\n", configDir)
	fmt.Println("Restart your shell or source the rc file to use ils.")
}
