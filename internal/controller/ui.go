// Package controller provides the presentation layer: how discovered
// decoders, single results and try-all reports reach the terminal.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

// UI defines how workflow results are displayed.
// Implementations write results to stdout and progress or diagnostics to
// stderr so stdout stays pipeable.
type UI interface {
	// DisplayCandidates prints one qualified name per line.
	DisplayCandidates(ctx context.Context, candidates []m.Candidate) error
	// DisplayResult prints the rendered value of a successful run.
	DisplayResult(ctx context.Context, outcome m.Outcome) error
	// DisplayTryAllStart announces how many decoders are about to run.
	DisplayTryAllStart(ctx context.Context, count int)
	// DisplayTryAllReport prints the results block of a try-all run.
	DisplayTryAllReport(ctx context.Context, report m.TryAllReport) error
}

// NewUI returns the UI for cmd. Styling is enabled only when stdout is a
// terminal.
func NewUI(cmd *cobra.Command, styled bool) UI {
	return NewSimpleUI(cmd, styled)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
