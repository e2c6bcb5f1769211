package cmd

import (
	"bytes"
	"os"
	"path/filepath"
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

func newDiscoverTestCmd(t *testing.T, mockWorkflow *domainmocks.MockWorkflow) *bytes.Buffer {
	t.Helper()

	resetConfig(t)
	useWorkflow(t, mockWorkflow)
	discoverInteractiveFlag = false

	return &bytes.Buffer{}
}

func TestDiscoverCmd_ListsWithoutInput(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	out := newDiscoverTestCmd(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newDiscoverCmd())
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Discover(mock.Anything, domain.DiscoverArgs{Descriptor: m.Path("elm.json")}).Return(nil)

	cmd.SetArgs([]string{"discover"})
	require.NoError(t, cmd.Execute())
}

func TestDiscoverCmd_InteractiveFlag(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	out := newDiscoverTestCmd(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newDiscoverCmd())
	cmd.SetIn(strings.NewReader("42"))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Interactive(mock.Anything, mock.MatchedBy(func(args domain.InteractiveArgs) bool {
		return args.Descriptor == m.Path(filepath.Join("app", "elm.json")) &&
			args.Timeout == time.Minute &&
			args.Input != nil
	})).Return(nil)

	cmd.SetArgs([]string{"discover", "-C", "app", "--interactive"})
	require.NoError(t, cmd.Execute())
}

func TestDiscoverCmd_PipedFileIsInteractive(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	out := newDiscoverTestCmd(t, mockWorkflow)

	inputPath := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(inputPath, []byte("42"), 0o644))

	input, err := os.Open(inputPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = input.Close() })

	cmd := newRootCmd()
	cmd.AddCommand(newDiscoverCmd())
	cmd.SetIn(input)
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Interactive(mock.Anything, mock.Anything).Return(domain.ErrSelectionCancelled)

	cmd.SetArgs([]string{"discover"})
	err = cmd.Execute()
	require.ErrorIs(t, err, domain.ErrSelectionCancelled)
}

func TestDiscoverCmd_RejectsArgs(t *testing.T) {
	out := newDiscoverTestCmd(t, domainmocks.NewMockWorkflow(t))

	cmd := newRootCmd()
	cmd.AddCommand(newDiscoverCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"discover", "Counter.decoder"})
	require.Error(t, cmd.Execute())
}

func TestPipedInput(t *testing.T) {
	t.Run("reader that is not a file", func(t *testing.T) {
		assert.False(t, pipedInput(strings.NewReader("42")))
	})

	t.Run("pipe", func(t *testing.T) {
		r, w, err := os.Pipe()
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = r.Close()
			_ = w.Close()
		})

		assert.True(t, pipedInput(r))
	})

	t.Run("regular file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "input.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

		f, err := os.Open(path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = f.Close() })

		assert.True(t, pipedInput(f))
	})

	t.Run("null device", func(t *testing.T) {
		f, err := os.Open(os.DevNull)
		require.NoError(t, err)
		t.Cleanup(func() { _ = f.Close() })

		assert.False(t, pipedInput(f))
	})

	t.Run("closed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "input.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

		f, err := os.Open(path)
		require.NoError(t, err)
		require.NoError(t, f.Close())

		assert.False(t, pipedInput(f))
	})
}

func TestNewDiscoverCmd(t *testing.T) {
	cmd := newDiscoverCmd()

	assert.Equal(t, "discover", cmd.Use)
	assert.Equal(t, discoverLongDescription, cmd.Long)

	flag := cmd.Flags().Lookup(interactiveFlagName)
	require.NotNil(t, flag)
	assert.Equal(t, "i", flag.Shorthand)
}
