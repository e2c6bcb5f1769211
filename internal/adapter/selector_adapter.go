package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
)

const (
	// DefaultSelectorCommand is the external fuzzy finder.
	DefaultSelectorCommand = "fzf"
	// DefaultSelectorPrompt is shown by the selector.
	DefaultSelectorPrompt = "Select decoder: "
)

var (
	// ErrSelectionCancelled is returned when the selector exits non-zero or
	// cannot be started.
	ErrSelectionCancelled = errors.New("selection cancelled")
	// ErrNoSelection is returned when the selector exits cleanly but prints
	// nothing.
	ErrNoSelection = errors.New("no decoder selected")
)

// SelectorAdapter delegates choosing one candidate to the user.
type SelectorAdapter interface {
	Select(ctx context.Context, candidates []string) (string, error)
}

// ExecSelectorAdapter runs an fzf-compatible process: candidates on stdin,
// the choice on stdout.
type ExecSelectorAdapter struct {
	command string
	prompt  string
	stderr  io.Writer
}

// NewExecSelectorAdapter constructs an ExecSelectorAdapter. stderr receives
// the selector's own diagnostics and, when the executable is missing, the
// candidate list.
func NewExecSelectorAdapter(command, prompt string, stderr io.Writer) *ExecSelectorAdapter {
	if strings.TrimSpace(command) == "" {
		command = DefaultSelectorCommand
	}

	if prompt == "" {
		prompt = DefaultSelectorPrompt
	}

	return &ExecSelectorAdapter{command: command, prompt: prompt, stderr: stderr}
}

// Select runs the selector and returns the trimmed selection.
func (a *ExecSelectorAdapter) Select(ctx context.Context, candidates []string) (string, error) {
	// #nosec G204 - the command comes from local configuration
	cmd := exec.CommandContext(ctx, a.command, "--prompt="+a.prompt)
	cmd.Stdin = strings.NewReader(strings.Join(candidates, "\n"))
	cmd.Stderr = a.stderr

	var stdout bytes.Buffer

	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			slog.Debug("Selector exited", "command", a.command, "code", exitErr.ExitCode())
			return "", ErrSelectionCancelled
		}

		slog.Error("Failed to launch selector", "command", a.command, "error", err)
		a.printUnavailable(err, candidates)

		return "", fmt.Errorf("%w: %w", ErrSelectionCancelled, err)
	}

	selected := strings.TrimSpace(stdout.String())
	if selected == "" {
		return "", ErrNoSelection
	}

	return selected, nil
}

func (a *ExecSelectorAdapter) printUnavailable(err error, candidates []string) {
	if a.stderr == nil {
		return
	}

	if errors.Is(err, exec.ErrNotFound) {
		_, _ = fmt.Fprintf(a.stderr, "%s not found. Please install %s to use interactive mode.\n", a.command, a.command)
	} else {
		_, _ = fmt.Fprintf(a.stderr, "Error launching %s: %v\n", a.command, err)
	}

	_, _ = fmt.Fprintln(a.stderr, "Available decoders:")

	for _, candidate := range candidates {
		_, _ = fmt.Fprintf(a.stderr, "  %s\n", candidate)
	}
}
