package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"elmdecode.dev/pkg/elmdecode/internal/domain"
	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

const tryAllLongDescription = `Run every discovered decoder against the JSON value read from stdin.

Decoders run concurrently, each with its own timeout. Successful decoders are
listed first with a preview of their result, followed by a table of the
failed ones. The command exits with status 0 when at least one decoder
succeeded.

Examples:
  cat user.json | elmdecode try-all
  elmdecode try-all --parallel 4 --report report.yaml < user.json`

var (
	tryParallelFlag int
	tryReportFlag   string
)

// tryAllCmd represents the try-all command.
var tryAllCmd = newTryAllCmd()

func newTryAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "try-all",
		Short: "Run every decoder against stdin and summarize",
		Long:  tryAllLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return currentWorkflow(cmd).TryAll(cmd.Context(), domain.TryAllArgs{
				Descriptor: m.Path(descriptorPath()),
				Input:      cmd.InOrStdin(),
				Parallel:   viper.GetInt(runParallelConfigKey),
				Timeout:    runTimeout(),
				Report:     m.Path(tryReportFlag),
			})
		},
	}

	configureTryAllFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(tryAllCmd)
}

func configureTryAllFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&tryParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "maximum decoders run at once (0 runs all at once)")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
	cmd.Flags().StringVar(&tryReportFlag, reportFlagName, "", "write a YAML report of all outcomes to this file")
}
