package domain

import (
	"errors"
	"fmt"

	"elmdecode.dev/pkg/elmdecode/internal/adapter"
	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

var (
	// ErrConfiguration marks a missing or invalid project descriptor.
	ErrConfiguration = errors.New("configuration error")
	// ErrInput marks standard input that is not a single JSON document.
	ErrInput = errors.New("JSON syntax error")
	// ErrNoCandidates is returned when a mode needs a target but discovery
	// found none.
	ErrNoCandidates = errors.New("no decoders found in project")
	// ErrTargetNotFound is returned when a module cannot be resolved to a file
	// under any source root.
	ErrTargetNotFound = errors.New("decoder not found")
	// ErrModulePatch wraps failures to expose a symbol in a module that was
	// found, such as ErrStaleBackup or a write error.
	ErrModulePatch = errors.New("cannot patch module")
	// ErrAllCandidatesFailed is returned by try-all when nothing succeeded.
	ErrAllCandidatesFailed = errors.New("all decoders failed")
	// ErrSelectionCancelled is returned when the selector was aborted.
	ErrSelectionCancelled = adapter.ErrSelectionCancelled
	// ErrNoSelection is returned when the selector returned nothing.
	ErrNoSelection = adapter.ErrNoSelection
)

// CompilationError is returned by the engine when the compiler rejected the
// synthesized host program.
type CompilationError struct {
	Diagnostics string
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("Elm compilation failed: %s", e.Diagnostics)
}

// OutcomeError reports a run that finished without a decoded value. Its
// message is the rendered failure, so printing it is the user-facing report.
type OutcomeError struct {
	Outcome m.Outcome
}

func (e *OutcomeError) Error() string {
	switch e.Outcome.Result.Failure {
	case m.FailureDecode, m.FailureRuntime, m.FailureInput:
		return e.Outcome.Result.Value
	case m.FailureCompilation:
		return fmt.Sprintf("Elm compilation failed: %s", e.Outcome.Result.Value)
	default:
		return fmt.Sprintf("%s failure: %s", e.Outcome.Result.Failure, e.Outcome.Result.Value)
	}
}

// Kind returns the failure kind of the wrapped outcome.
func (e *OutcomeError) Kind() m.FailureKind {
	return e.Outcome.Result.Failure
}

// ErrStaleBackup is returned when a module's backup file already exists
// without a patch owned by this process, typically left by an interrupted
// run. The user has to restore or remove it first.
var ErrStaleBackup = errors.New("backup file already exists")
