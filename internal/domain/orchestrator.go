package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

// Orchestrator runs the full mutate, synthesize and execute cycle for one
// candidate and always leaves the project as it found it.
type Orchestrator interface {
	RunCandidate(ctx context.Context, project m.ProjectDescriptor, candidate m.Candidate, input json.RawMessage) (m.Outcome, error)
}

type orchestrator struct {
	mutator     ModuleMutator
	synthesizer Synthesizer
	engine      Engine
}

// NewOrchestrator constructs an Orchestrator from the mutator, the host
// program synthesizer and the execution engine.
func NewOrchestrator(mutator ModuleMutator, synthesizer Synthesizer, engine Engine) Orchestrator {
	return &orchestrator{
		mutator:     mutator,
		synthesizer: synthesizer,
		engine:      engine,
	}
}

// RunCandidate returns the outcome of decoding input with candidate. A
// compiler rejection is an outcome, not an error. Errors are reserved for
// conditions that stop the cycle before anything ran: an unresolvable module
// or a module that cannot be patched (the outcome carries FailureTargetNotFound
// or FailurePatch), or a cancelled context.
func (to *orchestrator) RunCandidate(ctx context.Context, project m.ProjectDescriptor, candidate m.Candidate, input json.RawMessage) (m.Outcome, error) {
	outcome := m.Outcome{Candidate: candidate}

	if err := ctx.Err(); err != nil {
		return outcome, err
	}

	module, symbol := candidate.Module(), candidate.Symbol()
	if module == "" {
		outcome.Result = m.ErrorResult(m.FailureTargetNotFound, fmt.Sprintf("%s: %s is not a qualified name", ErrTargetNotFound, candidate))
		return outcome, fmt.Errorf("%w: %s is not a qualified name", ErrTargetNotFound, candidate)
	}

	release, err := to.mutator.EnsureVisible(ctx, project.RootPaths(), module, symbol)
	if err != nil {
		if errors.Is(err, ErrTargetNotFound) {
			outcome.Result = m.ErrorResult(m.FailureTargetNotFound, err.Error())
			return outcome, err
		}

		err = fmt.Errorf("%w: %w", ErrModulePatch, err)
		outcome.Result = m.ErrorResult(m.FailurePatch, err.Error())

		return outcome, err
	}

	if release != nil {
		defer release()
	}

	source, err := to.synthesizer.Synthesize(module, symbol)
	if err != nil {
		return outcome, err
	}

	result, err := to.engine.Run(ctx, project.Dir, source, input)
	if err != nil {
		var compileErr *CompilationError
		if errors.As(err, &compileErr) {
			slog.Debug("Compilation failed", "candidate", candidate, "diagnostics", compileErr.Diagnostics)
			outcome.Result = m.ErrorResult(m.FailureCompilation, compileErr.Diagnostics)

			return outcome, nil
		}

		return outcome, err
	}

	slog.Debug("Candidate finished", "candidate", candidate, "tag", result.Tag, "failure", result.Failure)
	outcome.Result = result

	return outcome, nil
}
