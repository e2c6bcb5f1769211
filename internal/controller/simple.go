package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

// PreviewLimit is the number of characters of a rendered value shown per
// successful decoder in a try-all report.
const PreviewLimit = 100

const detailLimit = 60

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	previewStyle = lipgloss.NewStyle().Faint(true)
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI. With styled set, headings are colored.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// DisplayCandidates prints the qualified names, one per line.
func (s *SimpleUI) DisplayCandidates(ctx context.Context, candidates []m.Candidate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, candidate := range candidates {
		s.printf("%s\n", candidate)
	}

	return nil
}

// DisplayResult prints the rendered value.
func (s *SimpleUI) DisplayResult(ctx context.Context, outcome m.Outcome) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", outcome.Result.Value)

	return nil
}

// DisplayTryAllStart prints the number of decoders about to be tried.
func (s *SimpleUI) DisplayTryAllStart(ctx context.Context, count int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Found %d decoders. Trying all...\n\n", count)
}

// DisplayTryAllReport prints the summary, the successful decoders with a
// preview of their value, then a table of the failed ones.
func (s *SimpleUI) DisplayTryAllReport(ctx context.Context, report m.TryAllReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	succeeded, failed := report.Partition()

	s.printf("\n%s\n", s.style(headingStyle, "=== RESULTS ==="))
	s.printf("%d succeeded, %d failed\n\n", len(succeeded), len(failed))

	if len(succeeded) > 0 {
		s.printf("%s\n", s.style(successStyle, "✅ SUCCESSFUL DECODERS:"))

		for _, outcome := range succeeded {
			s.printf("  %s\n", outcome.Candidate)
			s.printf("    → %s\n", s.style(previewStyle, Preview(outcome.Result.Value, PreviewLimit)))
		}

		s.printf("\n")
	}

	if len(failed) > 0 {
		s.printf("%s\n", s.style(failureStyle, "❌ FAILED DECODERS:"))
		s.printf("%s", renderFailureTable(failed))
	}

	return nil
}

// Preview returns the first line of value, cut to limit characters with a
// trailing "..." when longer.
func Preview(value string, limit int) string {
	line, _, _ := strings.Cut(value, "\n")

	runes := []rune(line)
	if len(runes) <= limit {
		return line
	}

	return string(runes[:limit]) + "..."
}

func renderFailureTable(failed []m.Outcome) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Decoder", "Failure", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, outcome := range failed {
		table.Append([]string{
			string(outcome.Candidate),
			outcome.Result.Failure.String(),
			Preview(outcome.Result.Value, detailLimit),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) style(st lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}

	return st.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
