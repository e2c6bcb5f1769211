package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

// DefaultCompilerCommand is the Elm compiler executable.
const DefaultCompilerCommand = "elm"

// killWaitDelay bounds how long Compile waits for the compiler's output pipes
// after the process was killed.
const killWaitDelay = time.Second

// CompilerAdapter abstracts the external compiler: a source file goes in,
// executable program text comes out.
type CompilerAdapter interface {
	// Compile builds sourceFile from inside workDir (the project directory, so
	// the compiler sees its descriptor) and returns the produced JavaScript.
	// A rejected program yields a *CompileError.
	Compile(ctx context.Context, workDir, sourceFile m.Path) (string, error)
}

// CompileError carries the compiler diagnostics of a rejected program.
type CompileError struct {
	Diagnostics string
	Err         error
}

func (e *CompileError) Error() string {
	if e.Diagnostics == "" {
		return fmt.Sprintf("compilation failed: %v", e.Err)
	}

	return e.Diagnostics
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// LocalElmCompilerAdapter runs `elm make` through os/exec.
type LocalElmCompilerAdapter struct {
	command string
}

// NewLocalElmCompilerAdapter constructs a compiler adapter for the given
// executable; an empty command falls back to DefaultCompilerCommand.
func NewLocalElmCompilerAdapter(command string) *LocalElmCompilerAdapter {
	if strings.TrimSpace(command) == "" {
		command = DefaultCompilerCommand
	}

	return &LocalElmCompilerAdapter{command: command}
}

// Compile runs `elm make <sourceFile> --output=<tmp>.js` and returns the
// output file's contents. Context cancellation kills the compiler and is
// returned unwrapped so callers can tell a timeout from a rejection.
func (a *LocalElmCompilerAdapter) Compile(ctx context.Context, workDir, sourceFile m.Path) (string, error) {
	output, err := os.CreateTemp("", "elmdecode-*.js")
	if err != nil {
		return "", fmt.Errorf("create compiler output file: %w", err)
	}

	outputPath := output.Name()
	_ = output.Close()

	defer func() {
		_ = os.Remove(outputPath)
	}()

	// #nosec G204 - the command comes from local configuration
	cmd := exec.CommandContext(ctx, a.command, "make", string(sourceFile), "--output="+outputPath)
	cmd.Dir = string(workDir)
	cmd.WaitDelay = killWaitDelay

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}

		if errors.Is(err, exec.ErrNotFound) {
			return "", &CompileError{Diagnostics: fmt.Sprintf("%s not found on PATH", a.command), Err: err}
		}

		diagnostics := strings.TrimSpace(stderr.String() + stdout.String())

		return "", &CompileError{Diagnostics: diagnostics, Err: err}
	}

	// #nosec G304 - outputPath was created above
	program, err := os.ReadFile(outputPath)
	if err != nil {
		return "", fmt.Errorf("read compiler output: %w", err)
	}

	return string(program), nil
}
