// Package cmd provides the root command and CLI setup for elmdecode.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"elmdecode.dev/pkg/elmdecode/internal/adapter"
	"elmdecode.dev/pkg/elmdecode/internal/controller"
	"elmdecode.dev/pkg/elmdecode/internal/domain"
	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

// workflow is built on first use from the resolved configuration. Tests
// replace it with a mock before executing a command.
var workflow domain.Workflow

var (
	projectDirFlag string
	descriptorFlag string
	timeoutFlag    int
	verboseFlag    bool
	logFileFlag    string
)

const rootLongDescription = `elmdecode runs a single Elm JSON decoder against a value read from stdin
and prints the decoded result, without writing a test harness.

Decoders are discovered by scanning the source-directories of elm.json for
top-level declarations of type Decoder. A decoder that its module does not
expose is made visible for the duration of the run and the module is
restored afterwards.

Examples:
  echo '42' | elmdecode Main.counterDecoder
  elmdecode discover
  cat user.json | elmdecode discover --interactive
  cat user.json | elmdecode try-all`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "elmdecode [Module.decoder]",
		Short:         "Run Elm JSON decoders from the command line",
		Long:          rootLongDescription,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return configLoadErr
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return runTarget(cmd, args[0])
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&projectDirFlag, projectFlagName, "C", viper.GetString(projectDirKey), "directory containing the Elm project")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(projectFlagName), projectDirKey)

	cmd.PersistentFlags().StringVar(&descriptorFlag, descriptorFlagName, viper.GetString(projectDescriptorKey), "project descriptor file name")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(descriptorFlagName), projectDescriptorKey)

	cmd.PersistentFlags().IntVarP(&timeoutFlag, timeoutFlagName, "t", viper.GetInt(runTimeoutKey), "per-decoder timeout in seconds (0 disables it)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(timeoutFlagName), runTimeoutKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// currentWorkflow returns the configured workflow, building it for cmd when
// none was injected.
func currentWorkflow(cmd *cobra.Command) domain.Workflow {
	if workflow == nil {
		workflow = newWorkflow(cmd)
	}

	return workflow
}

func newWorkflow(cmd *cobra.Command) domain.Workflow {
	fsAdapter := adapter.NewLocalSourceFSAdapter()
	engine := domain.NewEngine(
		fsAdapter,
		adapter.NewLocalElmCompilerAdapter(viper.GetString(compilerCommandKey)),
		adapter.NewGojaRuntimeAdapter(),
	)
	orchestrator := domain.NewOrchestrator(domain.NewModuleMutator(fsAdapter), domain.NewSynthesizer(), engine)

	return domain.NewWorkflow(
		adapter.NewLocalProjectAdapter(fsAdapter),
		adapter.NewYAMLReportStore(fsAdapter),
		controller.NewUI(cmd, controller.IsTTY(os.Stdout)),
		domain.NewScanner(fsAdapter, nil),
		newSelector(cmd),
		orchestrator,
	)
}

func newSelector(cmd *cobra.Command) adapter.SelectorAdapter {
	command := viper.GetString(selectorCommandKey)
	prompt := viper.GetString(selectorPromptKey)

	if command == controller.BuiltinSelectorCommand {
		return controller.NewTUISelector(prompt, nil, cmd.ErrOrStderr())
	}

	return adapter.NewExecSelectorAdapter(command, prompt, cmd.ErrOrStderr())
}

func runTarget(cmd *cobra.Command, target string) error {
	return currentWorkflow(cmd).Run(cmd.Context(), domain.RunArgs{
		Descriptor: m.Path(descriptorPath()),
		Target:     target,
		Input:      cmd.InOrStdin(),
		Timeout:    runTimeout(),
	})
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt cancels the running decoders so patched modules are restored
// before exiting.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
