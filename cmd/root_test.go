package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"elmdecode.dev/pkg/elmdecode/internal/adapter"
	"elmdecode.dev/pkg/elmdecode/internal/controller"
	"elmdecode.dev/pkg/elmdecode/internal/domain"
	domainmocks "elmdecode.dev/pkg/elmdecode/internal/domain/mocks"
	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

// resetConfig restores viper to its package defaults before and after a test,
// so flags bound by one command tree do not leak into the next.
func resetConfig(t *testing.T) {
	t.Helper()

	viper.Reset()
	initConfig()
	viper.Set(logFilenameKey, filepath.Join(t.TempDir(), "elmdecode.log"))

	t.Cleanup(func() {
		viper.Reset()
		initConfig()
	})
}

// chdirWithConfig moves into a temp dir holding elmdecode.yaml with content
// and reloads the configuration from it.
func chdirWithConfig(t *testing.T, content string) {
	t.Helper()

	resetConfig(t)

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, configFileName), []byte(content), 0o644))
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	viper.Reset()
	initConfig()
}

// useWorkflow swaps the package workflow for w until the test ends.
func useWorkflow(t *testing.T, w domain.Workflow) {
	t.Helper()

	originalWorkflow := workflow
	workflow = w

	t.Cleanup(func() { workflow = originalWorkflow })
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "elmdecode [Module.decoder]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.True(t, cmd.SilenceErrors)
	assert.True(t, cmd.SilenceUsage)

	for _, name := range []string{projectFlagName, descriptorFlagName, timeoutFlagName, verboseFlagName, logFileFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	resetConfig(t)

	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "top-level declarations of type Decoder")
}

func TestRootCmd_PositionalTargetRuns(t *testing.T) {
	resetConfig(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("42"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Target == "Counter.decoder" &&
			args.Descriptor == m.Path("elm.json") &&
			args.Timeout == time.Minute &&
			args.Input != nil
	})).Return(nil)

	cmd.SetArgs([]string{"Counter.decoder"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_ProjectAndTimeoutFlags(t *testing.T) {
	resetConfig(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("42"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Descriptor == m.Path(filepath.Join("app", "other.json")) &&
			args.Timeout == 5*time.Second
	})).Return(nil)

	cmd.SetArgs([]string{"-C", "app", "--descriptor", "other.json", "-t", "5", "Counter.decoder"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_ZeroTimeoutDisablesIt(t *testing.T) {
	resetConfig(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("42"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Timeout == 0
	})).Return(nil)

	cmd.SetArgs([]string{"--timeout", "0", "Counter.decoder"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_PropagatesWorkflowError(t *testing.T) {
	resetConfig(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("42"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	failure := &domain.OutcomeError{Outcome: m.Outcome{
		Candidate: "Counter.decoder",
		Result:    m.ErrorResult(m.FailureDecode, "Expecting an INT"),
	}}
	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).Return(failure)

	cmd.SetArgs([]string{"Counter.decoder"})
	err := cmd.Execute()
	require.ErrorIs(t, err, failure)
	assert.Equal(t, "Expecting an INT", err.Error())
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	resetConfig(t)

	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"A.decoder", "B.decoder"})
	require.Error(t, cmd.Execute())
}

func TestRootCmd_InvalidConfigFile(t *testing.T) {
	chdirWithConfig(t, "run: [unclosed\n")
	require.Error(t, configLoadErr)

	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("42"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"Counter.decoder"})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestRootCmd_ConfigFileValues(t *testing.T) {
	chdirWithConfig(t, "project:\n  dir: web\nrun:\n  timeout: 7\n")
	require.NoError(t, configLoadErr)

	assert.Equal(t, filepath.Join("web", "elm.json"), descriptorPath())
	assert.Equal(t, 7*time.Second, runTimeout())
}

func TestCurrentWorkflow_BuildsOnce(t *testing.T) {
	resetConfig(t)
	useWorkflow(t, nil)

	cmd := newRootCmd()

	first := currentWorkflow(cmd)
	require.NotNil(t, first)
	assert.Same(t, first, currentWorkflow(cmd))
}

func TestNewSelector(t *testing.T) {
	resetConfig(t)

	cmd := newRootCmd()

	_, isExec := newSelector(cmd).(*adapter.ExecSelectorAdapter)
	assert.True(t, isExec)

	viper.Set(selectorCommandKey, controller.BuiltinSelectorCommand)

	_, isTUI := newSelector(cmd).(*controller.TUISelector)
	assert.True(t, isTUI)
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	var sawContext bool

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sawContext = cmd.Context().Done() != nil
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	Execute()

	assert.True(t, sawContext)
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				return fmt.Errorf("selection cancelled")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		assert.Equal(t, 1, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), "selection cancelled")
}
