package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"elmdecode.dev/pkg/elmdecode/internal/adapter"
	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

// Engine compiles a host program and runs it on one input.
type Engine interface {
	// Run writes hostSource to a temporary file, compiles it from workDir and
	// executes the result with input in a fresh isolated context. Every
	// failure the program can produce is reported inside the result; the
	// returned error is a *CompilationError, or the context error when the
	// run was cancelled rather than timed out.
	Run(ctx context.Context, workDir m.Path, hostSource string, input json.RawMessage) (m.ExecutionResult, error)
}

type engine struct {
	fsAdapter       adapter.SourceFSAdapter
	compilerAdapter adapter.CompilerAdapter
	runtimeAdapter  adapter.RuntimeAdapter
}

// NewEngine constructs an Engine from its capabilities.
func NewEngine(
	fsAdapter adapter.SourceFSAdapter,
	compilerAdapter adapter.CompilerAdapter,
	runtimeAdapter adapter.RuntimeAdapter,
) Engine {
	return &engine{
		fsAdapter:       fsAdapter,
		compilerAdapter: compilerAdapter,
		runtimeAdapter:  runtimeAdapter,
	}
}

func (e *engine) Run(ctx context.Context, workDir m.Path, hostSource string, input json.RawMessage) (m.ExecutionResult, error) {
	runID := uuid.NewString()

	sourceFile, err := e.fsAdapter.CreateTempFile(ctx, hostFilePattern(runID), []byte(hostSource))
	if err != nil {
		if res, ok := interrupted(ctx); ok {
			return res, cancellation(ctx)
		}

		return m.ExecutionResult{}, &CompilationError{Diagnostics: fmt.Sprintf("write host program: %v", err)}
	}

	defer e.removeTemp(sourceFile)

	slog.Debug("Compiling host program", "run", runID, "file", sourceFile, "workDir", workDir)

	program, err := e.compilerAdapter.Compile(ctx, workDir, sourceFile)
	if err != nil {
		if res, ok := interrupted(ctx); ok {
			return res, cancellation(ctx)
		}

		var compileErr *adapter.CompileError
		if errors.As(err, &compileErr) {
			return m.ExecutionResult{}, &CompilationError{Diagnostics: compileErr.Diagnostics}
		}

		return m.ExecutionResult{}, &CompilationError{Diagnostics: err.Error()}
	}

	loaded, err := e.runtimeAdapter.Load(ctx, program, m.HostModuleName)
	if err != nil {
		if res, ok := interrupted(ctx); ok {
			return res, cancellation(ctx)
		}

		return m.ErrorResult(m.FailureRuntime, runtimeMessage(err)), nil
	}

	if !json.Valid(input) {
		return m.ErrorResult(m.FailureInput, ErrInput.Error()+": input is not a valid JSON document"), nil
	}

	result, err := loaded.Run(ctx, input)
	if err != nil {
		if res, ok := interrupted(ctx); ok {
			return res, cancellation(ctx)
		}

		return m.ErrorResult(m.FailureRuntime, runtimeMessage(err)), nil
	}

	slog.Debug("Host program finished", "run", runID, "tag", result.Tag)

	return result, nil
}

func (e *engine) removeTemp(path m.Path) {
	if err := e.fsAdapter.Remove(context.Background(), path); err != nil {
		slog.Error("Failed to remove host program", "path", path, "error", err)
	}
}

// hostFilePattern yields DecodeRunner_<id>_<random>.elm in the temp dir.
func hostFilePattern(runID string) string {
	return fmt.Sprintf("%s_%s_*.elm", m.HostModuleName, runID)
}

// interrupted maps an expired deadline onto a Timeout result. A plain
// cancellation has no result.
func interrupted(ctx context.Context) (m.ExecutionResult, bool) {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return m.ErrorResult(m.FailureTimeout, "execution timed out"), true
	case ctx.Err() != nil:
		return m.ExecutionResult{}, true
	default:
		return m.ExecutionResult{}, false
	}
}

// cancellation returns nil for a timeout, which is reported as a result, and
// the context error for an aborted run.
func cancellation(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil
	}

	return ctx.Err()
}

func runtimeMessage(err error) string {
	var runtimeErr *adapter.RuntimeError
	if errors.As(err, &runtimeErr) {
		return runtimeErr.Error()
	}

	return fmt.Sprintf("Runtime error: %v", err)
}
