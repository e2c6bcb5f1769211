package cmd

import (
	"github.com/spf13/cobra"

	"elmdecode.dev/pkg/elmdecode/internal/domain"
	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <report.yaml>",
		Short: "Show a report saved by try-all --report",
		Long: `Print a report written by "try-all --report" in the same layout try-all
uses: successful decoders with a preview, then a table of failures.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return currentWorkflow(cmd).View(cmd.Context(), domain.ViewArgs{Report: m.Path(args[0])})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
