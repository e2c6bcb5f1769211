package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"elmdecode.dev/pkg/elmdecode/internal/adapter"
	"elmdecode.dev/pkg/elmdecode/internal/controller"
	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

// RunArgs contains the arguments of a single-target run.
type RunArgs struct {
	Descriptor m.Path
	Target     string
	Input      io.Reader
	Timeout    time.Duration
}

// DiscoverArgs contains the arguments of a discovery listing.
type DiscoverArgs struct {
	Descriptor m.Path
}

// InteractiveArgs contains the arguments of an interactive run.
type InteractiveArgs struct {
	Descriptor m.Path
	Input      io.Reader
	Timeout    time.Duration
}

// TryAllArgs contains the arguments of a try-all run.
type TryAllArgs struct {
	Descriptor m.Path
	Input      io.Reader
	// Parallel bounds concurrent candidates; 0 means unbounded.
	Parallel int
	// Timeout applies to each candidate separately; 0 disables it.
	Timeout time.Duration
	// Report, when set, is where the TryAllReport is saved.
	Report m.Path
}

// ViewArgs contains the arguments for showing a saved try-all report.
type ViewArgs struct {
	Report m.Path
}

// Workflow implements the command-line modes.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Discover(ctx context.Context, args DiscoverArgs) error
	Interactive(ctx context.Context, args InteractiveArgs) error
	TryAll(ctx context.Context, args TryAllArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.ProjectAdapter
	adapter.ReportStore
	controller.UI
	Orchestrator

	scanner  Scanner
	selector adapter.SelectorAdapter
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	projectAdapter adapter.ProjectAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	scanner Scanner,
	selector adapter.SelectorAdapter,
	orchestrator Orchestrator,
) Workflow {
	return &workflow{
		ProjectAdapter: projectAdapter,
		ReportStore:    reportStore,
		UI:             ui,
		Orchestrator:   orchestrator,
		scanner:        scanner,
		selector:       selector,
	}
}

// Run decodes stdin with one named decoder. The descriptor is validated
// first, then the input, and only then is any file touched.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	project, err := w.loadProject(ctx, args.Descriptor)
	if err != nil {
		return err
	}

	input, err := ReadInput(args.Input)
	if err != nil {
		return err
	}

	return w.runAndDisplay(ctx, project, m.Candidate(args.Target), input, args.Timeout)
}

// Discover prints every candidate; an empty project is not an error.
func (w *workflow) Discover(ctx context.Context, args DiscoverArgs) error {
	project, err := w.loadProject(ctx, args.Descriptor)
	if err != nil {
		return err
	}

	candidates, err := w.scanner.Discover(ctx, project.RootPaths())
	if err != nil {
		return fmt.Errorf("discover decoders: %w", err)
	}

	return w.DisplayCandidates(ctx, candidates)
}

// Interactive buffers stdin, lets the user pick a candidate and runs it.
func (w *workflow) Interactive(ctx context.Context, args InteractiveArgs) error {
	project, err := w.loadProject(ctx, args.Descriptor)
	if err != nil {
		return err
	}

	input, err := ReadInput(args.Input)
	if err != nil {
		return err
	}

	candidates, err := w.discoverRequired(ctx, project)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		names = append(names, string(candidate))
	}

	selected, err := w.selector.Select(ctx, names)
	if err != nil {
		slog.Info("Selection ended without a decoder", "error", err)
		return err
	}

	slog.Info("Decoder selected", "candidate", selected)

	return w.runAndDisplay(ctx, project, m.Candidate(selected), input, args.Timeout)
}

// TryAll runs every candidate concurrently on the same input. It fails only
// when nothing succeeded.
func (w *workflow) TryAll(ctx context.Context, args TryAllArgs) error {
	project, err := w.loadProject(ctx, args.Descriptor)
	if err != nil {
		return err
	}

	input, err := ReadInput(args.Input)
	if err != nil {
		return err
	}

	candidates, err := w.discoverRequired(ctx, project)
	if err != nil {
		return err
	}

	w.DisplayTryAllStart(ctx, len(candidates))

	report, err := w.tryAll(ctx, project, candidates, input, args)
	if err != nil {
		return err
	}

	if err := w.DisplayTryAllReport(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if args.Report != "" {
		if err := w.SaveReport(ctx, args.Report, report); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	if succeeded, _ := report.Partition(); len(succeeded) == 0 {
		return ErrAllCandidatesFailed
	}

	return nil
}

// View prints a report saved by TryAll, in the same layout.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if args.Report == "" {
		return fmt.Errorf("%w: no report path given", ErrConfiguration)
	}

	report, err := w.LoadReport(ctx, args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	return w.DisplayTryAllReport(ctx, report)
}

func (w *workflow) tryAll(ctx context.Context, project m.ProjectDescriptor, candidates []m.Candidate, input json.RawMessage, args TryAllArgs) (m.TryAllReport, error) {
	outcomes := make([]m.Outcome, len(candidates))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Parallel > 0 {
		group.SetLimit(args.Parallel)
	}

	for i, candidate := range candidates {
		group.Go(func() error {
			outcome, err := w.runWithTimeout(groupCtx, project, candidate, input, args.Timeout)
			if err != nil {
				// Only an aborted run stops the whole batch; everything else is
				// recorded against its candidate.
				if ctxErr := groupCtx.Err(); ctxErr != nil {
					return ctxErr
				}

				outcome = failedOutcome(candidate, err)
			}

			slog.Debug("Candidate completed", "candidate", candidate, "failure", outcome.Result.Failure)
			outcomes[i] = outcome

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return m.TryAllReport{}, err
	}

	return m.TryAllReport{Input: string(input), Outcomes: outcomes}, nil
}

func (w *workflow) runAndDisplay(ctx context.Context, project m.ProjectDescriptor, candidate m.Candidate, input json.RawMessage, timeout time.Duration) error {
	outcome, err := w.runWithTimeout(ctx, project, candidate, input, timeout)
	if err != nil {
		return err
	}

	if !outcome.Result.Succeeded() {
		return &OutcomeError{Outcome: outcome}
	}

	return w.DisplayResult(ctx, outcome)
}

func (w *workflow) runWithTimeout(ctx context.Context, project m.ProjectDescriptor, candidate m.Candidate, input json.RawMessage, timeout time.Duration) (m.Outcome, error) {
	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return w.RunCandidate(ctx, project, candidate, input)
}

func (w *workflow) loadProject(ctx context.Context, descriptor m.Path) (m.ProjectDescriptor, error) {
	if descriptor == "" {
		descriptor = adapter.DefaultDescriptorName
	}

	project, err := w.LoadDescriptor(ctx, descriptor)
	if err != nil {
		slog.Error("Failed to load project descriptor", "path", descriptor, "error", err)
		return m.ProjectDescriptor{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return project, nil
}

func (w *workflow) discoverRequired(ctx context.Context, project m.ProjectDescriptor) ([]m.Candidate, error) {
	candidates, err := w.scanner.Discover(ctx, project.RootPaths())
	if err != nil {
		return nil, fmt.Errorf("discover decoders: %w", err)
	}

	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	return candidates, nil
}

func failedOutcome(candidate m.Candidate, err error) m.Outcome {
	kind := m.FailureRuntime

	switch {
	case errors.Is(err, ErrTargetNotFound):
		kind = m.FailureTargetNotFound
	case errors.Is(err, ErrModulePatch):
		kind = m.FailurePatch
	}

	return m.Outcome{Candidate: candidate, Result: m.ErrorResult(kind, err.Error())}
}
