// Package opener hands paths to external programs: the platform
// opener, a user-chosen application, or a terminal.
package opener

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// openArgv picks the platform opener for a path.
func openArgv(path string) []string {
	if runtime.GOOS == "darwin" {
		return []string{"open", path}
	}
	return []string{"xdg-open", path}
}

// Open hands the path to the platform opener.
func Open(ctx context.Context, path string) error {
	argv := openArgv(path)
	if _, err := exec.LookPath(argv[0]); err != nil {
		return fmt.Errorf("no opener for %s: %w", path, err)
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("open %s: %w", path, err)
		}
		return fmt.Errorf("open %s: %s", path, msg)
	}
	return nil
}

// OpenWith runs a user-supplied command line with the path appended.
func OpenWith(ctx context.Context, command, path string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return fmt.Errorf("empty command")
	}
	if _, err := exec.LookPath(fields[0]); err != nil {
		return fmt.Errorf("%s not available: %w", fields[0], err)
	}
	argv := append(fields, path)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open with %s: %w", fields[0], err)
	}
	return cmd.Process.Release()
}

// terminalArgv resolves the terminal emulator to spawn: $TERMINAL
// first, then the usual suspects.
func terminalArgv() ([]string, error) {
	if term := os.Getenv("TERMINAL"); term != "" {
		return strings.Fields(term), nil
	}
	for _, candidate := range []string{"x-terminal-emulator", "alacritty", "kitty", "foot", "gnome-terminal", "konsole", "xterm"} {
		if _, err := exec.LookPath(candidate); err == nil {
			return []string{candidate}, nil
		}
	}
	return nil, fmt.Errorf("no terminal emulator found")
}

// Terminal spawns a terminal in dir and leaves it running.
func Terminal(dir string) error {
	argv, err := terminalArgv()
	if err != nil {
		return err
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn terminal: %w", err)
	}
	return cmd.Process.Release()
}

// NewWindow spawns another instance of this program in a fresh
// terminal, showing dir.
func NewWindow(dir string) error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	argv, err := terminalArgv()
	if err != nil {
		return err
	}
	argv = append(argv, "-e", exe, dir)
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn window: %w", err)
	}
	return cmd.Process.Release()
}
