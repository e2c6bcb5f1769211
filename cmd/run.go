package cmd

import (
	"github.com/spf13/cobra"
)

const runLongDescription = `Run a single decoder against the JSON value read from stdin.

The target is the fully qualified decoder name, for example Api.User.decoder.
A decoder its module does not expose is exposed for the duration of the run.
The decoded value is printed on stdout; any failure is printed on stderr and
the command exits with status 1.

Examples:
  echo '42' | elmdecode run Counter.decoder
  elmdecode run Api.User.decoder < user.json`

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <Module.decoder>",
		Short: "Run one decoder against stdin",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTarget(cmd, args[0])
		},
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
