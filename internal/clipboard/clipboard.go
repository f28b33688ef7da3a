// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool available")

// Copier writes text to a clipboard.
type Copier interface {
	Copy(text string) error
}

// System copies through the platform's clipboard command.
type System struct {
	goos     string
	lookPath func(string) (string, error)
	run      func(name string, args []string, stdin string) error
}

// NewSystem returns a copier for the current platform.
func NewSystem() *System {
	return &System{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		run: func(name string, args []string, stdin string) error {
			cmd := exec.Command(name, args...)
			cmd.Stdin = strings.NewReader(stdin)
			return cmd.Run()
		},
	}
}

// Copy writes text to the clipboard.
func (s *System) Copy(text string) error {
	name, args, ok := s.command()
	if !ok {
		return ErrUnavailable
	}
	if err := s.run(name, args, text); err != nil {
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}

// Available reports whether a clipboard tool was found.
func (s *System) Available() bool {
	_, _, ok := s.command()
	return ok
}

// command picks the clipboard tool: pbcopy on macOS, clip on Windows,
// xclip then xsel elsewhere.
func (s *System) command() (string, []string, bool) {
	switch s.goos {
	case "darwin":
		if _, err := s.lookPath("pbcopy"); err == nil {
			return "pbcopy", nil, true
		}
	case "windows":
		return "cmd", []string{"/c", "clip"}, true
	default:
		if _, err := s.lookPath("xclip"); err == nil {
			return "xclip", []string{"-selection", "clipboard"}, true
		}
		if _, err := s.lookPath("xsel"); err == nil {
			return "xsel", []string{"--clipboard", "--input"}, true
		}
	}
	return "", nil, false
}
