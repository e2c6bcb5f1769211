package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"elmdecode.dev/pkg/elmdecode/internal/domain"
	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

const discoverLongDescription = `List every decoder found in the project's source directories, one per line.

When a JSON value is piped on stdin, or --interactive is given, the list is
handed to the selector instead and the chosen decoder is run against the
input. The selector is fzf unless selector.command says otherwise; the value
"builtin" uses the bundled terminal list.

Examples:
  elmdecode discover
  cat user.json | elmdecode discover
  elmdecode discover --interactive < user.json`

var discoverInteractiveFlag bool

// discoverCmd represents the discover command.
var discoverCmd = newDiscoverCmd()

func newDiscoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "List decoders, or pick one to run when input is piped",
		Long:  discoverLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			descriptor := m.Path(descriptorPath())
			input := cmd.InOrStdin()

			if !discoverInteractiveFlag && !pipedInput(input) {
				return currentWorkflow(cmd).Discover(cmd.Context(), domain.DiscoverArgs{Descriptor: descriptor})
			}

			return currentWorkflow(cmd).Interactive(cmd.Context(), domain.InteractiveArgs{
				Descriptor: descriptor,
				Input:      input,
				Timeout:    runTimeout(),
			})
		},
	}

	cmd.Flags().BoolVarP(&discoverInteractiveFlag, interactiveFlagName, "i", false, "pick a decoder with the selector and run it against stdin")

	return cmd
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}

// pipedInput reports whether r is a pipe or a regular file. Terminals, the
// null device and readers that are not files count as no input.
func pipedInput(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}

	if term.IsTerminal(int(file.Fd())) {
		return false
	}

	info, err := file.Stat()
	if err != nil {
		return false
	}

	mode := info.Mode()

	return mode&os.ModeNamedPipe != 0 || mode.IsRegular()
}
