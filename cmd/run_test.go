package cmd

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"elmdecode.dev/pkg/elmdecode/internal/domain"
	domainmocks "elmdecode.dev/pkg/elmdecode/internal/domain/mocks"
	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

func TestRunCmd_RunsTarget(t *testing.T) {
	resetConfig(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetIn(strings.NewReader(`{"id": 1}`))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Target == "Api.User.decoder" &&
			args.Descriptor == m.Path("elm.json") &&
			args.Timeout == time.Minute
	})).Return(nil)

	cmd.SetArgs([]string{"run", "Api.User.decoder"})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_RequiresTarget(t *testing.T) {
	resetConfig(t)

	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"run"})
	require.Error(t, cmd.Execute())
}

func TestRunCmd_PassesStdinThrough(t *testing.T) {
	resetConfig(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetIn(strings.NewReader("42"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	var input string

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, args domain.RunArgs) error {
			data, err := io.ReadAll(args.Input)
			input = string(data)

			return err
		})

	cmd.SetArgs([]string{"run", "Counter.decoder"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "42", input)
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run <Module.decoder>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, runLongDescription, cmd.Long)
}
